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

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Dialect selects a backend quoting convention for QuoteIdentifier and
// QuoteString. The set of dialects is closed: pass-through of already-safe
// values and the NA-to-NULL rule live in the exported quoting functions,
// ahead of dialect dispatch, so no convention can re-escape a safe fragment
// or mis-render a missing value.
//
// Dialect values are stateless and safe for concurrent use.
type Dialect interface {
	quoteIdentifier(s string) (string, error)
	quoteString(s string) (string, error)
}

// The supported quoting conventions.
var (
	// ANSI is the SQL-92 default: identifiers in double quotes with
	// embedded double quotes doubled, literals in single quotes with
	// embedded single quotes doubled.
	ANSI Dialect = ansi{}

	// MySQL uses backtick-delimited identifiers and backslash escaping
	// inside single-quoted literals.
	MySQL Dialect = mysql{}

	// Postgres uses ANSI identifiers and escape-string literals (E'...'),
	// which behave the same regardless of the server's
	// standard_conforming_strings setting.
	Postgres Dialect = postgres{}

	// SQLite follows the ANSI convention.
	SQLite Dialect = sqlite{}

	// SQLServer uses bracket-delimited identifiers and ANSI literals.
	SQLServer Dialect = sqlserver{}
)

// DialectForDriver returns the dialect conventionally associated with a
// database/sql driver name. Unknown drivers get ANSI.
func DialectForDriver(driverName string) Dialect {
	switch driverName {
	case "mysql":
		return MySQL
	case "postgres", "pgx", "pq":
		return Postgres
	case "sqlite", "sqlite3":
		return SQLite
	case "sqlserver", "mssql":
		return SQLServer
	}
	return ANSI
}

// checkText reports whether s can be embedded faithfully in SQL source
// text: it must be valid UTF-8 and free of control characters other than
// tab, newline and carriage return. Non-ASCII text passes through quoting
// unchanged; only the delimiter characters are ever rewritten.
func checkText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8", ErrEncoding)
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 0x20, c == '\t', c == '\n', c == '\r':
		default:
			return fmt.Errorf("%w: control character %q", ErrEncoding, rune(s[i]))
		}
	}
	return nil
}

type ansi struct{}

func (ansi) quoteIdentifier(s string) (string, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`, nil
}

func (ansi) quoteString(s string) (string, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'", nil
}

type mysql struct{}

// mysqlLiteral doubles single quotes and backslash-escapes the characters
// MySQL treats specially inside single-quoted strings.
var mysqlLiteral = strings.NewReplacer(
	`\`, `\\`,
	`'`, `''`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

func (mysql) quoteIdentifier(s string) (string, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return "`" + strings.ReplaceAll(s, "`", "``") + "`", nil
}

func (mysql) quoteString(s string) (string, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return "'" + mysqlLiteral.Replace(s) + "'", nil
}

type postgres struct{ ansi }

// pgLiteral adds backslashes before the special characters of the escape
// string syntax. Quote marks are doubled so the result is valid regardless
// of the backslash_quote parameter.
var pgLiteral = strings.NewReplacer(
	`'`, `''`,
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

// quoteString uses the escape string syntax so that backslashes behave
// consistently regardless of standard_conforming_strings. The space before
// the E keeps it from changing the meaning of an adjacent keyword or
// identifier.
func (postgres) quoteString(s string) (string, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return " E'" + pgLiteral.Replace(s) + "'", nil
}

type sqlite struct{ ansi }

type sqlserver struct{ ansi }

func (sqlserver) quoteIdentifier(s string) (string, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	return "[" + strings.ReplaceAll(s, "]", "]]") + "]", nil
}
