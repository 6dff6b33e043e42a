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

package tisa_test

import (
	"testing"

	"github.com/davidsondfgl/tangle/pkg/tisa"
)

func TestLookupCaseInsensitive(t *testing.T) {
	for _, m := range []string{"add", "ADD", "Add", "aDd"} {
		entry, ok := tisa.Lookup(m)
		if !ok {
			t.Fatalf("Lookup(%q) failed", m)
		}
		if entry.Opcode != tisa.OpADD {
			t.Fatalf("Lookup(%q).Opcode = %d, want %d", m, entry.Opcode, tisa.OpADD)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := tisa.Lookup("frobnicate"); ok {
		t.Fatal("Lookup(\"frobnicate\") succeeded, want failure")
	}
}

// TestOpcodeNumbering pins the hardware-authoritative numbering from
// the architecture notes, since a host-side header disagreeing with it
// has bitten this ISA before.
func TestOpcodeNumbering(t *testing.T) {
	want := map[string]tisa.Opcode{
		"or": 0, "and": 1, "xor": 2, "sll": 3, "slr": 4,
		"not": 5, "neg": 6, "add": 7, "sub": 8, "mov": 9,
		"movhi": 10, "movlo": 11, "cmp": 12,
		"je": 13, "jne": 14, "jgs": 15, "jgu": 16, "jls": 17, "jlu": 18,
		"jges": 19, "jgeu": 20, "jles": 21, "jleu": 22,
		"j": 23, "jal": 24, "lw": 25, "sw": 26,
	}

	for mnemonic, opcode := range want {
		entry, ok := tisa.Lookup(mnemonic)
		if !ok {
			t.Fatalf("Lookup(%q) failed", mnemonic)
		}
		if entry.Opcode != opcode {
			t.Errorf("Lookup(%q).Opcode = %d, want %d", mnemonic, entry.Opcode, opcode)
		}
	}
}

func TestNopAliasesNeg(t *testing.T) {
	entry, ok := tisa.Lookup("nop")
	if !ok {
		t.Fatal("Lookup(\"nop\") failed")
	}
	if entry.Opcode != tisa.OpNEG {
		t.Fatalf("nop opcode = %d, want %d (NEG)", entry.Opcode, tisa.OpNEG)
	}
	if entry.Grammar != tisa.GrammarNone {
		t.Fatalf("nop grammar = %d, want GrammarNone", entry.Grammar)
	}
}
