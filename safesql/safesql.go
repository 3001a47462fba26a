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

// Package safesql provides safe-by-construction SQL text.
//
// The package is built around the SQL type: a fragment of SQL source text
// that is known to need no further escaping before being sent to a database
// engine. Code that assembles statements out of SQL values instead of plain
// strings cannot accidentally splice attacker-controlled text into a query,
// because the only ways to obtain a SQL value are:
//
//   - promoting a compile-time constant with New,
//   - formatting a number with NewFromInt64 or NewFromUint64,
//   - escaping untrusted text with QuoteIdentifier or QuoteString,
//   - composing existing SQL values with Concat, Join or Split,
//   - an explicit, reviewable assertion via the uncheckedconversions or
//     legacyconversions packages.
//
// QuoteIdentifier and QuoteString implement the escaping conventions of a
// small, closed set of dialects (see Dialect) and never re-escape a value
// that is already SQL, so quoting is idempotent by construction.
//
// The database handle wrappers in this package mirror database/sql but take
// SQL values wherever the standard package takes a query string, and carry
// the Dialect matching their driver so quoting and querying stay in sync.
package safesql

import (
	"strconv"
	"strings"

	"github.com/google/go-safesql/safesql/internal/raw"
)

func init() {
	// Initialize the bypass mechanism for unchecked and legacy conversions.
	raw.SQL = func(unsafe string) SQL { return SQL{unsafe} }
}

type stringConstant string

// SQL is a fragment of SQL source text that is safe to include in a
// statement as-is. The zero value is the empty fragment.
//
// A SQL value is immutable and comparable; values are freely copyable and
// safe for concurrent use.
type SQL struct {
	s string
}

// New constructs a SQL fragment from a compile-time constant string.
// Since the stringConstant type is unexported the only way to call this
// function outside of this package is to pass a string literal or an
// untyped string constant.
func New(text stringConstant) SQL { return SQL{string(text)} }

// NewFromUint64 constructs a SQL fragment holding the decimal rendering of i.
func NewFromUint64(i uint64) SQL { return SQL{strconv.FormatUint(i, 10)} }

// NewFromInt64 constructs a SQL fragment holding the decimal rendering of i.
func NewFromInt64(i int64) SQL { return SQL{strconv.FormatInt(i, 10)} }

// Concat concatenates the given fragments into one.
//
// Note: this function should not be abused to create arbitrary queries from
// user input, it is just a helper to compose fragments at runtime.
func Concat(frags ...SQL) SQL {
	return Join(frags, SQL{})
}

// Join joins the given fragments with the given separator the same way
// strings.Join would.
func Join(frags []SQL, sep SQL) SQL {
	accum := make([]string, 0, len(frags))
	for _, f := range frags {
		accum = append(accum, f.s)
	}
	return SQL{strings.Join(accum, sep.s)}
}

// Split functions as strings.Split but for SQL fragments.
func Split(s SQL, sep SQL) []SQL {
	spl := strings.Split(s.s, sep.s)
	accum := make([]SQL, 0, len(spl))
	for _, s := range spl {
		accum = append(accum, SQL{s})
	}
	return accum
}

// String returns the fragment as plain text. This is the only conversion
// from SQL back to string: callers must opt in explicitly, a SQL value never
// flows into an API expecting plain text by accident.
func (s SQL) String() string { return s.s }

// GoString implements fmt.GoStringer so that %#v renders the fragment with a
// tag distinguishing it from an ordinary string. The rendering is for human
// inspection only and is never parsed back.
func (s SQL) GoString() string { return "<SQL> " + s.s }
