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

import "errors"

// ErrInvalidArgument reports an input that has no representation in the
// requested position, such as the missing value NA passed to
// QuoteIdentifier: SQL identifiers have no null form.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEncoding reports text that cannot be faithfully escaped under the
// selected dialect (invalid UTF-8, NUL bytes, or control characters the
// dialect has no escape syntax for). Quoting fails rather than truncate or
// substitute characters, since injection safety depends on faithful
// escaping.
var ErrEncoding = errors.New("text not representable in SQL")
