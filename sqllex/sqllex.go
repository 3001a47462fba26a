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

// Package sqllex locates the quoted and commented regions of SQL source
// text without parsing its grammar.
//
// Tools that need to operate on statement text, such as splitting a script
// on statement separators or searching for a keyword, must not look inside
// string literals, quoted identifiers or comments. Parse returns those
// regions for a given set of quoting and comment conventions; Mask and
// SplitStatements build on it.
//
// The scanner is pure and stateless: it reads only its arguments and is
// safe for concurrent use.
package sqllex

import (
	"fmt"
	"strings"

	"github.com/google/go-safesql/safesql"
)

// QuoteSpec describes one quoting convention of a dialect.
type QuoteSpec struct {
	// Start and End delimit the quoted text.
	Start, End byte
	// Escape, when nonzero, escapes the following character inside the
	// quotes (backslash in MySQL literals).
	Escape byte
	// DoubleEscape marks that a doubled End character stands for a literal
	// End character, as in SQL-92 '' and "".
	DoubleEscape bool
}

// CommentSpec describes one comment convention of a dialect.
type CommentSpec struct {
	// Start opens the comment, End closes it ("--" and "\n", "/*" and "*/").
	Start, End string
	// EndRequired marks conventions whose terminator may not be omitted at
	// end of input: an unclosed /* */ is an error, an unclosed -- is not.
	EndRequired bool
}

// Region is a half-open span [Offset, Offset+Length) of the scanned text
// covering one quoted value or comment, delimiters included.
type Region struct {
	Offset, Length int
}

// ParseError reports text the scanner could not consume, with the byte
// offset of the offending construct.
type ParseError struct {
	Offset int
	msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sqllex: offset %d: %s", e.Offset, e.msg)
}

// Specs returns the quoting and comment conventions matching a safesql
// dialect.
func Specs(d safesql.Dialect) ([]QuoteSpec, []CommentSpec) {
	quotes := []QuoteSpec{
		{Start: '\'', End: '\'', DoubleEscape: true},
		{Start: '"', End: '"', DoubleEscape: true},
	}
	comments := []CommentSpec{
		{Start: "--", End: "\n"},
		{Start: "/*", End: "*/", EndRequired: true},
	}
	switch d {
	case safesql.MySQL:
		quotes[0].Escape = '\\'
		quotes = append(quotes, QuoteSpec{Start: '`', End: '`', DoubleEscape: true})
		comments = append(comments, CommentSpec{Start: "#", End: "\n"})
	case safesql.SQLServer:
		quotes = append(quotes, QuoteSpec{Start: '[', End: ']', DoubleEscape: true})
	}
	return quotes, comments
}

// Parse scans query and returns the regions covered by quoted text or
// comments under the given conventions, in order of appearance. An
// unterminated quote, or an unterminated comment whose terminator is
// required, yields a *ParseError carrying the offset where the region
// began.
func Parse(query string, quotes []QuoteSpec, comments []CommentSpec) ([]Region, error) {
	var regions []Region
	for i := 0; i < len(query); {
		if n, ok, err := scanComment(query[i:], comments); err != nil {
			return nil, &ParseError{Offset: i + err.Offset, msg: err.msg}
		} else if ok {
			regions = append(regions, Region{Offset: i, Length: n})
			i += n
			continue
		}
		if n, ok, err := scanQuote(query[i:], quotes); err != nil {
			return nil, &ParseError{Offset: i + err.Offset, msg: err.msg}
		} else if ok {
			regions = append(regions, Region{Offset: i, Length: n})
			i += n
			continue
		}
		i++
	}
	return regions, nil
}

// scanComment consumes one comment at the start of s, if any, returning its
// length.
func scanComment(s string, comments []CommentSpec) (int, bool, *ParseError) {
	for _, c := range comments {
		if !strings.HasPrefix(s, c.Start) {
			continue
		}
		end := strings.Index(s[len(c.Start):], c.End)
		if end < 0 {
			if c.EndRequired {
				return 0, false, &ParseError{msg: fmt.Sprintf("unterminated comment, missing %q", c.End)}
			}
			return len(s), true, nil
		}
		return len(c.Start) + end + len(c.End), true, nil
	}
	return 0, false, nil
}

// scanQuote consumes one quoted value at the start of s, if any, returning
// its length.
func scanQuote(s string, quotes []QuoteSpec) (int, bool, *ParseError) {
	for _, q := range quotes {
		if len(s) == 0 || s[0] != q.Start {
			continue
		}
		for i := 1; i < len(s); i++ {
			c := s[i]
			// Escape may equal End (doubling handled below), so only
			// treat it as an escape when they differ.
			if q.Escape != 0 && c == q.Escape && q.Escape != q.End {
				i++
				continue
			}
			if c == q.End {
				if q.DoubleEscape && i+1 < len(s) && s[i+1] == q.End {
					i++
					continue
				}
				return i + 1, true, nil
			}
		}
		return 0, false, &ParseError{msg: fmt.Sprintf("unterminated quote, missing %q", rune(q.End))}
	}
	return 0, false, nil
}

// Mask returns query with every byte inside the given regions replaced by a
// space, so that positional searches (for separators, keywords, operators)
// cannot match inside quoted text or comments. Offsets outside the regions
// are unchanged.
func Mask(query string, regions []Region) string {
	if len(regions) == 0 {
		return query
	}
	b := []byte(query)
	for _, r := range regions {
		for i := r.Offset; i < r.Offset+r.Length && i < len(b); i++ {
			b[i] = ' '
		}
	}
	return string(b)
}

// SplitStatements splits a script into statements on semicolons appearing
// outside quoted text and comments. Separators are dropped, statements are
// returned with surrounding whitespace trimmed, and statements containing
// only whitespace and comments are omitted.
func SplitStatements(query string, quotes []QuoteSpec, comments []CommentSpec) ([]string, error) {
	regions, err := Parse(query, quotes, comments)
	if err != nil {
		return nil, err
	}
	masked := Mask(query, regions)
	var stmts []string
	start := 0
	for i := 0; i <= len(masked); i++ {
		if i < len(masked) && masked[i] != ';' {
			continue
		}
		if strings.TrimSpace(masked[start:i]) != "" {
			stmts = append(stmts, strings.TrimSpace(query[start:i]))
		}
		start = i + 1
	}
	return stmts, nil
}
