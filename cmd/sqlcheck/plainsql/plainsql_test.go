// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plainsql

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestPlainSQLAnalyzer(t *testing.T) {
	t.Parallel()
	tests := []struct {
		desc  string
		files map[string]string
	}{
		{
			desc: "no SQL surface",
			files: map[string]string{
				"main/test.go": `
				package main

				func main() {}
				`,
			},
		},
		{
			desc: "database/sql usage reported",
			files: map[string]string{
				"main/test.go": `
				package main

				import "database/sql" // want "risky API \"database/sql\": import github.com/google/go-safesql/safesql instead"

				func main() {
					db, _ := sql.Open("mysql", "dsn") // want "risky API \"database/sql.Open\": use safesql.Open, which pairs the handle with its quoting dialect"
					db.Query("SELECT 1")              // want "risky API \"database/sql.Query\": it takes the query as a plain string; use the safesql wrappers so queries are safe by construction"
				}
				`,
			},
		},
		{
			desc: "extra bans from config",
			files: map[string]string{
				"config.json": `
				{
					"functions": [
						{
							"name": "fmt.Sprintf",
							"msg": "do not format queries by hand"
						}
					]
				}
				`,
				"main/test.go": `
				package main

				import "fmt"

				func main() {
					_ = fmt.Sprintf("SELECT %s", "x") // want "risky API \"fmt.Sprintf\": do not format queries by hand"
				}
				`,
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			t.Parallel()
			dir, cleanup, err := analysistest.WriteFiles(test.files)
			if err != nil {
				t.Fatalf("WriteFiles() returned err: %v", err)
			}
			defer cleanup()

			a := NewAnalyzer()
			if _, ok := test.files["config.json"]; ok {
				if err := a.Flags.Set("config", filepath.Join(dir, "src", "config.json")); err != nil {
					t.Fatalf("setting config flag: %v", err)
				}
			}
			analysistest.Run(t, dir, a, "main")
		})
	}
}

func TestSelfExemption(t *testing.T) {
	t.Parallel()
	entries := defaultImports
	for _, e := range entries {
		if len(e.Exemptions) == 0 {
			t.Errorf("default ban on %q has no exemption for the safesql wrappers", e.Name)
		}
		for _, ex := range e.Exemptions {
			if !strings.Contains(ex.AllowedPkg, "go-safesql") {
				t.Errorf("exemption %q does not cover the safesql module", ex.AllowedPkg)
			}
		}
	}
}
