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

package sqllex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/go-safesql/safesql"
)

func TestParse(t *testing.T) {
	ansiQuotes, ansiComments := Specs(safesql.ANSI)
	mysqlQuotes, mysqlComments := Specs(safesql.MySQL)

	var tests = []struct {
		name       string
		query      string
		quotes     []QuoteSpec
		comments   []CommentSpec
		want       []Region
		wantOffset int // -1 for success
	}{
		{
			name:       "plain statement",
			query:      "select 1",
			wantOffset: -1,
		},
		{
			name:       "single quoted literal",
			query:      "select 'a;b' from t",
			want:       []Region{{Offset: 7, Length: 5}},
			wantOffset: -1,
		},
		{
			name:       "doubled quote inside literal",
			query:      "'it''s'",
			want:       []Region{{Offset: 0, Length: 7}},
			wantOffset: -1,
		},
		{
			name:       "quoted identifier",
			query:      `select "a""b" from t`,
			want:       []Region{{Offset: 7, Length: 6}},
			wantOffset: -1,
		},
		{
			name:       "line comment to end of input",
			query:      "select 1 -- hi",
			want:       []Region{{Offset: 9, Length: 5}},
			wantOffset: -1,
		},
		{
			name:       "line comment includes terminator",
			query:      "-- hi\nselect 1",
			want:       []Region{{Offset: 0, Length: 6}},
			wantOffset: -1,
		},
		{
			name:       "block comment",
			query:      "select /* x; */ 1",
			want:       []Region{{Offset: 7, Length: 8}},
			wantOffset: -1,
		},
		{
			name:       "quote delimiters inside comment ignored",
			query:      "/* don't */ select 1",
			want:       []Region{{Offset: 0, Length: 11}},
			wantOffset: -1,
		},
		{
			name:       "unterminated quote",
			query:      "select 'abc",
			wantOffset: 7,
		},
		{
			name:       "unterminated block comment",
			query:      "select 1 /* x",
			wantOffset: 9,
		},
		{
			name:       "mysql backslash escape",
			query:      `select 'a\'b' from t`,
			quotes:     mysqlQuotes,
			comments:   mysqlComments,
			want:       []Region{{Offset: 7, Length: 6}},
			wantOffset: -1,
		},
		{
			name:       "mysql backtick identifier",
			query:      "select `a``b` from t",
			quotes:     mysqlQuotes,
			comments:   mysqlComments,
			want:       []Region{{Offset: 7, Length: 6}},
			wantOffset: -1,
		},
		{
			name:       "mysql hash comment",
			query:      "select 1 # done",
			quotes:     mysqlQuotes,
			comments:   mysqlComments,
			want:       []Region{{Offset: 9, Length: 6}},
			wantOffset: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, comments := tt.quotes, tt.comments
			if quotes == nil {
				quotes, comments = ansiQuotes, ansiComments
			}
			got, err := Parse(tt.query, quotes, comments)
			if tt.wantOffset >= 0 {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("err: %v, want *ParseError", err)
				}
				if perr.Offset != tt.wantOffset {
					t.Fatalf("error offset: %d, want: %d (%v)", perr.Offset, tt.wantOffset, perr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("-want +got: %s", diff)
			}
		})
	}
}

func TestMask(t *testing.T) {
	quotes, comments := Specs(safesql.ANSI)
	const query = "select ';' -- x"
	regions, err := Parse(query, quotes, comments)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Mask(query, regions), "select          "[:len(query)]; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
}

func TestSplitStatements(t *testing.T) {
	ansiQuotes, ansiComments := Specs(safesql.ANSI)

	var tests = []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "two statements",
			query: "select 1; select 2",
			want:  []string{"select 1", "select 2"},
		},
		{
			name:  "separator inside literal",
			query: "insert into t values ('a;b'); select 1",
			want:  []string{"insert into t values ('a;b')", "select 1"},
		},
		{
			name:  "separator inside comment",
			query: "select 1 /* a;b */; select 2",
			want:  []string{"select 1 /* a;b */", "select 2"},
		},
		{
			name:  "trailing comment dropped",
			query: "select 1; -- done",
			want:  []string{"select 1"},
		},
		{
			name:  "empty statements dropped",
			query: ";;select 1;;",
			want:  []string{"select 1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitStatements(tt.query, ansiQuotes, ansiComments)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("-want +got: %s", diff)
			}
		})
	}
}
