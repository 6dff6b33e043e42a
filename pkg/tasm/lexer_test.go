// Copyright (C) 2021  Antonio Lassandro
// Copyright (c) 2020 Davidson Francis <davidsondfgl@gmail.com>

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package tasm

import "testing"

func TestLexLineBasic(t *testing.T) {
	tokens, errs := lexLine("  add %r1, $5 # trailing comment", 1, "t.tan")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []TokType{TokIdent, TokPercent, TokIdent, TokComma, TokDollar, TokIdent}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token[%d].Type = %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestLexLineLabel(t *testing.T) {
	tokens, errs := lexLine("loop: add %r1, %r2", 1, "t.tan")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != TokIdent || tokens[0].Value != "loop" {
		t.Fatalf("tokens[0] = %+v, want ident 'loop'", tokens[0])
	}
	if tokens[1].Type != TokColon {
		t.Fatalf("tokens[1] = %+v, want colon", tokens[1])
	}
}

func TestLexLineDirectiveIgnored(t *testing.T) {
	tokens, errs := lexLine("  .org 0x0", 1, "t.tan")
	if len(tokens) != 0 || len(errs) != 0 {
		t.Fatalf("directive line should lex to nothing, got tokens=%v errs=%v", tokens, errs)
	}
}

func TestLexLineSemicolonComment(t *testing.T) {
	tokens, _ := lexLine("nop ; comment", 1, "t.tan")
	if len(tokens) != 1 || tokens[0].Value != "nop" {
		t.Fatalf("tokens = %+v, want just 'nop'", tokens)
	}
}

func TestLexLineUnrecognizedChar(t *testing.T) {
	_, errs := lexLine("add %r1, @5", 1, "t.tan")
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one LexError", errs)
	}
	if _, ok := errs[0].(*LexError); !ok {
		t.Fatalf("errs[0] = %T, want *LexError", errs[0])
	}
}

func TestParseNumberBases(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"10", 10},
		{"0x1F", 31},
		{"0X1f", 31},
		{"010", 8},
		{"-16", -16},
		{"0", 0},
	}

	for _, c := range cases {
		got, ok := parseNumber(c.in)
		if !ok {
			t.Errorf("parseNumber(%q) failed", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("parseNumber(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseNumberInvalid(t *testing.T) {
	if _, ok := parseNumber("not-a-number-either"); ok {
		t.Fatal("parseNumber accepted garbage")
	}
}

func TestParseRegisterName(t *testing.T) {
	for _, s := range []string{"r0", "R0", "r7", "R7"} {
		if _, ok := parseRegisterName(s); !ok {
			t.Errorf("parseRegisterName(%q) failed", s)
		}
	}
	for _, s := range []string{"r8", "rr", "x1", "r"} {
		if _, ok := parseRegisterName(s); ok {
			t.Errorf("parseRegisterName(%q) succeeded, want failure", s)
		}
	}
}
