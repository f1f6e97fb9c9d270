package regex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPreprocess(t *testing.T) {
	tests := map[string]struct {
		givenRe     string
		givenMaxLen int
		wantOut     string
		wantErr     bool
	}{
		"empty": {
			givenRe: "",
			wantOut: "",
		},
		"single literal": {
			givenRe: "a",
			wantOut: "a",
		},
		"literals": {
			givenRe: "abc",
			wantOut: "a.b.c",
		},
		"explicit concatenation is kept": {
			givenRe: "a.b",
			wantOut: "a.b",
		},
		"union": {
			givenRe: "a|b",
			wantOut: "a|b",
		},
		"star then literal": {
			givenRe: "a*b*",
			wantOut: "a*.b*",
		},
		"group then literal": {
			givenRe: "(a|b)*c",
			wantOut: "(a|b)*.c",
		},
		"literal then group": {
			givenRe: "a(b)",
			wantOut: "a.(b)",
		},
		"group then group": {
			givenRe: "(a)(b)",
			wantOut: "(a).(b)",
		},
		"star then group": {
			givenRe: "a*(b)",
			wantOut: "a*.(b)",
		},
		"repeated star": {
			givenRe: "a**",
			wantOut: "a**",
		},
		"fits exactly": {
			givenRe:     "abc",
			givenMaxLen: 5,
			wantOut:     "a.b.c",
		},
		"too long": {
			givenRe:     "abc",
			givenMaxLen: 4,
			wantErr:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			gotOut, gotErr := Preprocess(tt.givenRe, tt.givenMaxLen)

			// then
			if tt.wantErr {
				var capErr *CapacityError
				if !errors.As(gotErr, &capErr) {
					t.Fatalf("want CapacityError, got %v", gotErr)
				}
				var parseErr *ParseError
				if !errors.As(gotErr, &parseErr) {
					t.Fatalf("want ParseError, got %v", gotErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("Preprocess: %v", gotErr)
			}
			if d := cmp.Diff(tt.wantOut, gotOut); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := map[string]struct {
		givenInfix  string
		givenMaxLen int
		wantPostfix string
		wantErrPos  int
		wantErr     bool
	}{
		"concatenation": {
			givenInfix:  "a.b",
			wantPostfix: "ab.",
		},
		"concatenation is left associative": {
			givenInfix:  "a.b.c",
			wantPostfix: "ab.c.",
		},
		"union": {
			givenInfix:  "a|b",
			wantPostfix: "ab|",
		},
		"star": {
			givenInfix:  "a*",
			wantPostfix: "a*",
		},
		"repeated star": {
			givenInfix:  "a**",
			wantPostfix: "a**",
		},
		"concatenation binds tighter than union 1": {
			givenInfix:  "a|b.c",
			wantPostfix: "abc.|",
		},
		"concatenation binds tighter than union 2": {
			givenInfix:  "a.b|c",
			wantPostfix: "ab.c|",
		},
		"star binds tighter than concatenation": {
			givenInfix:  "a.b*",
			wantPostfix: "ab*.",
		},
		"group": {
			givenInfix:  "(a|b)*.c",
			wantPostfix: "ab|*c.",
		},
		"nested groups": {
			givenInfix:  "((a))",
			wantPostfix: "a",
		},
		"unmatched ')'": {
			givenInfix: "a)",
			wantErr:    true,
			wantErrPos: 1,
		},
		"unmatched '('": {
			givenInfix: "(a|b",
			wantErr:    true,
			wantErrPos: 0,
		},
		"inner unmatched '('": {
			givenInfix: "a.((b)",
			wantErr:    true,
			wantErrPos: 2,
		},
		"unexpected character": {
			givenInfix: "a.+",
			wantErr:    true,
			wantErrPos: 2,
		},
		"output too long": {
			givenInfix:  "a.b.c",
			givenMaxLen: 4,
			wantErr:     true,
			wantErrPos:  5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			gotPostfix, gotErr := ToPostfix(tt.givenInfix, tt.givenMaxLen)

			// then
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(gotErr, &parseErr) {
					t.Fatalf("want ParseError, got %v", gotErr)
				}
				if d := cmp.Diff(tt.wantErrPos, parseErr.Pos); d != "" {
					t.Errorf("error position diff (-want +got):\n%s", d)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("ToPostfix: %v", gotErr)
			}
			if d := cmp.Diff(tt.wantPostfix, gotPostfix); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestScan(t *testing.T) {
	tests := map[string]struct {
		givenRe    string
		wantErr    bool
		wantErrPos int
	}{
		"empty":                  {givenRe: ""},
		"all token kinds":        {givenRe: "(aZ09|b)*.c"},
		"plus is not supported":  {givenRe: "ab+", wantErr: true, wantErrPos: 2},
		"space is not supported": {givenRe: "a b", wantErr: true, wantErrPos: 1},
		"brackets are not supported": {
			givenRe:    "[ab]",
			wantErr:    true,
			wantErrPos: 0,
		},
		"escapes are not supported": {
			givenRe:    `a\*`,
			wantErr:    true,
			wantErrPos: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			gotErr := scan(tt.givenRe)

			// then
			if !tt.wantErr {
				if gotErr != nil {
					t.Fatalf("scan: %v", gotErr)
				}
				return
			}
			var parseErr *ParseError
			if !errors.As(gotErr, &parseErr) {
				t.Fatalf("want ParseError, got %v", gotErr)
			}
			if d := cmp.Diff(tt.wantErrPos, parseErr.Pos); d != "" {
				t.Errorf("error position diff (-want +got):\n%s", d)
			}
		})
	}
}
