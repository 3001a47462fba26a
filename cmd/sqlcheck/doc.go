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

// Sqlcheck reports code that handles SQL statements as plain strings.
//
// The safesql package only delivers its guarantee when nothing else in the
// program sends strings to a database engine. Sqlcheck closes that gap: run
// as part of CI it reports imports of database/sql and calls to its
// plain-string query surface (Query, Exec, Prepare and friends), pointing
// callers at the safesql wrappers instead. Under the hood it is a standard
// go/analysis checker (https://pkg.go.dev/golang.org/x/tools/go/analysis),
// so it understands the usual analyzer flags and resolves fully qualified
// names through the type checker rather than by matching source text.
//
// # Usage
//
//	$ sqlcheck ./...
//	main.go:5:2: risky API "database/sql": import github.com/google/go-safesql/safesql instead
//
// # Config
//
// Teams can ban additional APIs, or exempt packages, through JSON files
// passed via -config (comma-separated):
//
//	{
//		"functions": [
//			{
//				"name": "github.com/example/orm.RawQuery",
//				"msg": "banned by the security team",
//				"exemptions": [
//					{
//						"justification": "generated code, reviewed separately",
//						"allowedPkg": "github.com/example/gen/*"
//					}
//				]
//			}
//		],
//		"imports": []
//	}
//
// Checks from separate config files apply independently: if two files ban
// the same API, two diagnostics are reported.
package main
