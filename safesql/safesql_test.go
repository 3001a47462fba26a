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

package safesql

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConcat(t *testing.T) {
	var tests = []struct {
		name  string
		frags []SQL
		want  SQL
	}{
		{name: "nothing"},
		{
			name:  "one word",
			frags: []SQL{New("foo")},
			want:  New("foo"),
		},
		{
			name:  "two words",
			frags: []SQL{New("foo"), New("ffa")},
			want:  New("fooffa"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Concat(tt.frags...)
			if got != tt.want {
				t.Errorf("got: %v, want: %v", got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	var tests = []struct {
		name  string
		frags []SQL
		sep   SQL
		want  SQL
	}{
		{name: "nothing"},
		{
			name:  "one word",
			frags: []SQL{New("foo")},
			sep:   New("bar"),
			want:  New("foo"),
		},
		{
			name:  "two words",
			frags: []SQL{New("foo"), New("ffa")},
			sep:   New("bar"),
			want:  New("foobarffa"),
		},
		{
			name:  "empty sep",
			frags: []SQL{New("foo"), New("ffa")},
			want:  New("fooffa"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Join(tt.frags, tt.sep)
			if got != tt.want {
				t.Errorf("got: %v, want: %v", got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	var tests = []struct {
		name string
		in   SQL
		sep  SQL
		want []SQL
	}{
		{name: "nothing"},
		{
			name: "no sep",
			in:   New("foo"),
			sep:  New("bar"),
			want: []SQL{New("foo")},
		},
		{
			name: "two words",
			in:   New("foobarffa"),
			sep:  New("bar"),
			want: []SQL{New("foo"), New("ffa")},
		},
		{
			name: "empty sep",
			in:   New("foo"),
			want: []SQL{New("f"), New("o"), New("o")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in, tt.sep)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty(), cmp.AllowUnexported(SQL{})); diff != "" {
				t.Errorf("-want +got: %s", diff)
			}
		})
	}
}

func TestNumericConstructors(t *testing.T) {
	if got, want := NewFromUint64(42), New("42"); got != want {
		t.Errorf("NewFromUint64(42) got: %v, want: %v", got, want)
	}
	if got, want := NewFromInt64(-7), New("-7"); got != want {
		t.Errorf("NewFromInt64(-7) got: %v, want: %v", got, want)
	}
}

func TestStringConversion(t *testing.T) {
	if got, want := New("SELECT 1").String(), "SELECT 1"; got != want {
		t.Errorf("String() got: %q, want: %q", got, want)
	}
}

func TestGoStringTag(t *testing.T) {
	got := fmt.Sprintf("%#v", New("SELECT 1"))
	if want := "<SQL> SELECT 1"; got != want {
		t.Errorf("%%#v got: %q, want: %q", got, want)
	}
}
