// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package safesql

import "fmt"

// Value is one input to the quoting functions: plain untrusted text (Text),
// an already-safe fragment (SQL), or the missing value NA. The set of
// implementations is closed.
type Value interface {
	value()
}

// Text is plain text of unknown provenance. Quoting escapes it under the
// selected dialect before it may appear in a statement.
type Text string

func (Text) value() {}

func (SQL) value() {}

type missingValue struct{}

func (missingValue) value() {}

// NA is the missing-value marker. QuoteString maps it to the unquoted NULL
// keyword; QuoteIdentifier rejects it with ErrInvalidArgument.
var NA Value = missingValue{}

// sqlNull is the SQL null literal, emitted without quotes so the engine
// reads it as NULL rather than as the text 'NULL'.
var sqlNull = SQL{"NULL"}

// QuoteIdentifier escapes values for use as SQL identifiers (table, column
// or other schema object names) under dialect d, returning one safe
// fragment per input, in input order.
//
// Inputs that are already SQL pass through unchanged, so quoting is
// idempotent. NA fails with ErrInvalidArgument: identifiers have no null
// form. A nil dialect selects ANSI.
//
// Identifiers cannot be bound as prepared-statement parameters in most
// dialects, so textual escaping is the only injection defense for them.
func QuoteIdentifier(d Dialect, values ...Value) ([]SQL, error) {
	if d == nil {
		d = ANSI
	}
	out := make([]SQL, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case SQL:
			out[i] = v
		case Text:
			q, err := d.quoteIdentifier(string(v))
			if err != nil {
				return nil, fmt.Errorf("safesql: identifier %d: %w", i, err)
			}
			out[i] = SQL{q}
		case missingValue:
			return nil, fmt.Errorf("safesql: identifier %d: missing value: %w", i, ErrInvalidArgument)
		default:
			return nil, fmt.Errorf("safesql: identifier %d: nil value: %w", i, ErrInvalidArgument)
		}
	}
	return out, nil
}

// QuoteString escapes values for use as SQL string literals under dialect
// d, returning one safe fragment per input, in input order.
//
// Inputs that are already SQL pass through unchanged, so quoting is
// idempotent. NA maps to the unquoted NULL keyword; that conversion happens
// here, ahead of dialect dispatch, so every dialect honors it. A nil
// dialect selects ANSI.
func QuoteString(d Dialect, values ...Value) ([]SQL, error) {
	if d == nil {
		d = ANSI
	}
	out := make([]SQL, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case SQL:
			out[i] = v
		case missingValue:
			out[i] = sqlNull
		case Text:
			q, err := d.quoteString(string(v))
			if err != nil {
				return nil, fmt.Errorf("safesql: literal %d: %w", i, err)
			}
			out[i] = SQL{q}
		default:
			return nil, fmt.Errorf("safesql: literal %d: nil value: %w", i, ErrInvalidArgument)
		}
	}
	return out, nil
}
