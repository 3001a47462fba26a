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

// Package raw provides the bypass mechanism backing the unchecked and
// legacy conversions packages. It works as a proxy between safesql and any
// other "conversions" package.
//
// The safesql package assigns the unexported constructor for SQL at init()
// time. Since this package is in internal/ it can only be imported by a
// parent package, so it is known at compile time that the constructor is
// not unsafely passed around.
package raw

// SQL is the constructor for a safesql.SQL to be used by the unchecked and
// legacy conversions packages. This variable is assigned by the safesql
// package at init time. It is an empty interface to avoid a cyclic
// dependency between safesql and this package.
var SQL interface{}
