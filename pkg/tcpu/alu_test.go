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

package tcpu

import (
	"testing"

	"github.com/davidsondfgl/tangle/pkg/tisa"
)

func TestALUBitwiseOps(t *testing.T) {
	cases := []struct {
		op   tisa.Opcode
		a, b uint16
		want uint16
	}{
		{tisa.OpOR, 0x0F0F, 0x00FF, 0x0FFF},
		{tisa.OpAND, 0x0F0F, 0x00FF, 0x000F},
		{tisa.OpXOR, 0x0F0F, 0x00FF, 0x0FF0},
		{tisa.OpNOT, 0x0000, 0, 0xFFFF},
		{tisa.OpNEG, 0x0001, 0, 0xFFFF},
	}

	for _, c := range cases {
		result, _, _ := alu(c.op, c.a, c.b)
		if result != c.want {
			t.Errorf("alu(%v, %#04x, %#04x) = %#04x, want %#04x", c.op, c.a, c.b, result, c.want)
		}
	}
}

func TestALUBitwiseFlagsSetFlags(t *testing.T) {
	_, flags, setFlags := alu(tisa.OpOR, 0, 0)
	if !setFlags {
		t.Fatal("OR should be flag-producing")
	}
	if !flags.ZF {
		t.Fatal("OR(0,0) should set ZF")
	}
	if flags.SF || flags.CF || flags.OF {
		t.Fatalf("OR should only touch ZF/SF, got %+v", flags)
	}
}

func TestALUNotNegDoNotProduceFlags(t *testing.T) {
	if _, _, setFlags := alu(tisa.OpNOT, 0, 0); setFlags {
		t.Fatal("NOT must not be flag-producing")
	}
	if _, _, setFlags := alu(tisa.OpNEG, 0, 0); setFlags {
		t.Fatal("NEG must not be flag-producing")
	}
}

func TestALUAddNoOverflow(t *testing.T) {
	result, flags, setFlags := alu(tisa.OpADD, 1, 1)
	if !setFlags {
		t.Fatal("ADD should be flag-producing")
	}
	if result != 2 {
		t.Fatalf("result = %d, want 2", result)
	}
	if flags.ZF || flags.SF || flags.CF || flags.OF {
		t.Fatalf("unexpected flags for 1+1: %+v", flags)
	}
}

func TestALUAddCarryOut(t *testing.T) {
	result, flags, _ := alu(tisa.OpADD, 0xFFFF, 1)
	if result != 0 {
		t.Fatalf("result = %#04x, want 0", result)
	}
	if !flags.ZF || !flags.CF {
		t.Fatalf("0xffff+1 should set ZF and CF, got %+v", flags)
	}
	if flags.OF {
		t.Fatal("0xffff+1 should not set OF: signs of operands differ")
	}
}

func TestALUAddSignedOverflowPositive(t *testing.T) {
	// 0x7FFF (max positive int16) + 1 overflows into a negative result.
	result, flags, _ := alu(tisa.OpADD, 0x7FFF, 1)
	if result != 0x8000 {
		t.Fatalf("result = %#04x, want 0x8000", result)
	}
	if !flags.OF {
		t.Fatal("0x7fff+1 should set OF")
	}
	if !flags.SF {
		t.Fatal("0x7fff+1 should set SF")
	}
	if flags.CF {
		t.Fatal("0x7fff+1 should not set CF: no unsigned carry")
	}
}

func TestALUAddSignedOverflowNegative(t *testing.T) {
	// 0x8000 (min negative int16) + 0xFFFF (-1) overflows into a positive result.
	result, flags, _ := alu(tisa.OpADD, 0x8000, 0xFFFF)
	if result != 0x7FFF {
		t.Fatalf("result = %#04x, want 0x7fff", result)
	}
	if !flags.OF {
		t.Fatal("0x8000+(-1) should set OF")
	}
	if flags.SF {
		t.Fatal("0x8000+(-1) result is positive: SF should be clear")
	}
}

func TestALUSubBorrow(t *testing.T) {
	result, flags, setFlags := alu(tisa.OpSUB, 0, 1)
	if !setFlags {
		t.Fatal("SUB should be flag-producing")
	}
	if result != 0xFFFF {
		t.Fatalf("result = %#04x, want 0xffff", result)
	}
	if !flags.CF {
		t.Fatal("0-1 should set CF (borrow)")
	}
	if !flags.SF {
		t.Fatal("0-1 result is negative: SF should be set")
	}
}

func TestALUSubSignedOverflow(t *testing.T) {
	// MinInt16 - 1 overflows: 0x8000 - 1 = 0x7FFF, sign flips positive
	// with two operands of differing sign, so OF fires.
	result, flags, _ := alu(tisa.OpSUB, 0x8000, 1)
	if result != 0x7FFF {
		t.Fatalf("result = %#04x, want 0x7fff", result)
	}
	if !flags.OF {
		t.Fatal("0x8000-1 should set OF")
	}
}

func TestALUCmpMatchesSubButCallerMustNotWriteback(t *testing.T) {
	subResult, subFlags, _ := alu(tisa.OpSUB, 5, 3)
	cmpResult, cmpFlags, _ := alu(tisa.OpCMP, 5, 3)
	if subResult != cmpResult || subFlags != cmpFlags {
		t.Fatalf("CMP(5,3) = %#04x/%+v, want same as SUB(5,3) = %#04x/%+v", cmpResult, cmpFlags, subResult, subFlags)
	}
}

func TestALUMov(t *testing.T) {
	result, _, setFlags := alu(tisa.OpMOV, 0xAAAA, 0x1234)
	if setFlags {
		t.Fatal("MOV must not be flag-producing")
	}
	if result != 0x1234 {
		t.Fatalf("result = %#04x, want 0x1234 (source value)", result)
	}
}

func TestALUMovhiMovloRoundTrip(t *testing.T) {
	hi, _, _ := alu(tisa.OpMOVHI, 0, 0xAB)
	if hi != 0xAB00 {
		t.Fatalf("movhi result = %#04x, want 0xab00", hi)
	}
	lo, _, _ := alu(tisa.OpMOVLO, hi, 0xCD)
	if lo != 0xABCD {
		t.Fatalf("movlo result = %#04x, want 0xabcd", lo)
	}
}

func TestALUShifts(t *testing.T) {
	sll, _, setFlags := alu(tisa.OpSLL, 1, 4)
	if setFlags {
		t.Fatal("SLL must not be flag-producing")
	}
	if sll != 0x10 {
		t.Fatalf("sll result = %#04x, want 0x10", sll)
	}

	slr, _, _ := alu(tisa.OpSLR, 0x100, 4)
	if slr != 0x10 {
		t.Fatalf("slr result = %#04x, want 0x10", slr)
	}
}

func TestShiftCyclesOnlyForShifts(t *testing.T) {
	if got := shiftCycles(tisa.OpSLL, 5); got != 5 {
		t.Fatalf("shiftCycles(SLL, 5) = %d, want 5", got)
	}
	if got := shiftCycles(tisa.OpSLR, 0); got != 0 {
		t.Fatalf("shiftCycles(SLR, 0) = %d, want 0", got)
	}
	if got := shiftCycles(tisa.OpADD, 5); got != 0 {
		t.Fatalf("shiftCycles(ADD, 5) = %d, want 0", got)
	}
	if got := shiftCycles(tisa.OpSLL, 0xFF); got != 0xF {
		t.Fatalf("shiftCycles(SLL, 0xff) = %d, want 0xf (masked to 4 bits)", got)
	}
}
