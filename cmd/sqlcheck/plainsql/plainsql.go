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

// Package plainsql implements the analyzer behind the sqlcheck command.
//
// The analyzer reports uses of APIs that accept SQL statements as plain
// strings, most notably the query surface of database/sql, so that a
// codebase can be held to the safesql rule: every string reaching a
// database engine is of type safesql.SQL. Additional risky APIs can be
// supplied through JSON config files.
package plainsql

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// RiskyAPI names one fully qualified function or import path that should
// not appear in checked code.
type RiskyAPI struct {
	Name       string      `json:"name"` // fully qualified identifier or import path
	Msg        string      `json:"msg"`  // rationale shown with the diagnostic
	Exemptions []Exemption `json:"exemptions"`
}

// Exemption skips reporting for packages matching AllowedPkg, a pattern in
// filepath.Match syntax.
type Exemption struct {
	Justification string `json:"justification"`
	AllowedPkg    string `json:"allowedPkg"`
}

const useSafesql = "it takes the query as a plain string; use the safesql wrappers so queries are safe by construction"

// selfExemptions keep the analyzer quiet about the safesql package itself,
// which wraps database/sql by design.
var selfExemptions = []Exemption{
	{Justification: "safesql wraps database/sql", AllowedPkg: "github.com/google/go-safesql/*"},
}

var defaultFunctions = []RiskyAPI{
	{Name: "database/sql.Query", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.QueryContext", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.QueryRow", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.QueryRowContext", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.Exec", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.ExecContext", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.Prepare", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.PrepareContext", Msg: useSafesql, Exemptions: selfExemptions},
	{Name: "database/sql.Open", Msg: "use safesql.Open, which pairs the handle with its quoting dialect", Exemptions: selfExemptions},
	{Name: "database/sql.OpenDB", Msg: "use safesql.OpenDB, which pairs the handle with its quoting dialect", Exemptions: selfExemptions},
}

var defaultImports = []RiskyAPI{
	{Name: "database/sql", Msg: "import github.com/google/go-safesql/safesql instead", Exemptions: selfExemptions},
}

// NewAnalyzer returns an analyzer that reports plain-string SQL APIs.
func NewAnalyzer() *analysis.Analyzer {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.String("config", "", "comma-separated JSON files naming additional risky APIs")

	return &analysis.Analyzer{
		Name:  "plainsql",
		Doc:   "reports APIs that accept SQL statements as plain strings",
		Run:   run,
		Flags: *fs,
	}
}

func run(pass *analysis.Pass) (interface{}, error) {
	fns, imports, err := rules(pass.Analyzer.Flags.Lookup("config").Value.String())
	if err != nil {
		return nil, err
	}

	for _, f := range pass.Files {
		for _, i := range f.Imports {
			if err := reportIfRisky(pass, strings.Trim(i.Path.Value, `"`), imports, i.Pos()); err != nil {
				return nil, err
			}
		}
	}
	for id, obj := range pass.TypesInfo.Uses {
		fn, ok := obj.(*types.Func)
		if !ok || fn.Pkg() == nil {
			continue
		}
		name := fmt.Sprintf("%s.%s", fn.Pkg().Path(), fn.Name())
		if err := reportIfRisky(pass, name, fns, id.Pos()); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// rules builds the name-to-entries maps from the built-in defaults plus any
// config files.
func rules(cfgFlag string) (fns, imports map[string][]RiskyAPI, err error) {
	fns = riskyAPIMap(defaultFunctions)
	imports = riskyAPIMap(defaultImports)
	if cfgFlag == "" {
		return fns, imports, nil
	}
	for _, file := range strings.Split(cfgFlag, ",") {
		cfg, err := readConfig(file)
		if err != nil {
			return nil, nil, err
		}
		for _, api := range cfg.Functions {
			fns[api.Name] = append(fns[api.Name], api)
		}
		for _, api := range cfg.Imports {
			imports[api.Name] = append(imports[api.Name], api)
		}
	}
	return fns, imports, nil
}

// config is the format of the files passed through the -config flag.
type config struct {
	Functions []RiskyAPI `json:"functions"`
	Imports   []RiskyAPI `json:"imports"`
}

func readConfig(filename string) (*config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func reportIfRisky(pass *analysis.Pass, apiName string, risky map[string][]RiskyAPI, pos token.Pos) error {
	entries, found := risky[apiName]
	if !found {
		return nil
	}
	allowed, err := isPkgAllowed(pass.Pkg, entries)
	if err != nil {
		return err
	}
	if allowed {
		return nil
	}
	for _, e := range entries {
		pass.Report(analysis.Diagnostic{
			Pos:     pos,
			Message: fmt.Sprintf("risky API %q: %s", apiName, e.Msg),
		})
	}
	return nil
}

// isPkgAllowed checks whether the package under analysis is exempted from
// reporting any of the given entries.
func isPkgAllowed(pkg *types.Package, entries []RiskyAPI) (bool, error) {
	for _, entry := range entries {
		for _, e := range entry.Exemptions {
			match, err := filepath.Match(e.AllowedPkg, pkg.Path())
			if err != nil {
				return false, err
			}
			if match {
				return true, nil
			}
		}
	}
	return false, nil
}

// riskyAPIMap builds a mapping of fully qualified API name to all its
// entries.
func riskyAPIMap(apis []RiskyAPI) map[string][]RiskyAPI {
	m := make(map[string][]RiskyAPI)
	for _, api := range apis {
		m[api.Name] = append(m[api.Name], api)
	}
	return m
}
