// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uncheckedconversions provides functions to create values of
// safesql types from plain strings. Uses of these functions could
// potentially result in instances of safesql types that violate their type
// contracts, and hence result in security vulnerabilities.
package uncheckedconversions

import (
	"github.com/google/go-safesql/safesql"
	"github.com/google/go-safesql/safesql/internal/raw"
)

var sqlCtor = raw.SQL.(func(string) safesql.SQL)

// SQLFromStringKnownToSatisfyTypeContract promotes the given string to a
// safe SQL fragment without any escaping. Only strings known to be under
// the programmer's control should be passed to this function: it is the
// trust boundary of the package, no validation is performed.
//
// One example of correct use would be promoting a query retrieved from a
// trusted, runtime-only query storage that user input cannot reach.
func SQLFromStringKnownToSatisfyTypeContract(trusted string) safesql.SQL {
	return sqlCtor(trusted)
}
