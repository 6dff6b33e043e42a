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

import "github.com/davidsondfgl/tangle/pkg/tisa"

// branchTaken evaluates a conditional branch's condition against the
// flags latched from the previous flag-producing op.
func branchTaken(op tisa.Opcode, f Flags) bool {
	switch op {
	case tisa.OpJE:
		return f.ZF
	case tisa.OpJNE:
		return !f.ZF
	case tisa.OpJGS:
		return !f.ZF && f.SF == f.OF
	case tisa.OpJGU:
		return !f.CF && !f.ZF
	case tisa.OpJGES:
		return f.SF == f.OF
	case tisa.OpJGEU:
		return !f.CF
	case tisa.OpJLS:
		return f.SF != f.OF
	case tisa.OpJLU:
		return f.CF
	case tisa.OpJLES:
		return f.ZF || f.SF != f.OF
	case tisa.OpJLEU:
		return f.CF || f.ZF
	case tisa.OpJ, tisa.OpJAL:
		return true
	default:
		return false
	}
}

// isBranchOpcode reports whether op belongs to the branch class — the
// unconditional J/JAL share the taken/RD==0 dispatch logic below with
// the flag-tested conditional branches, they just never evaluate false.
func isBranchOpcode(op tisa.Opcode) bool {
	switch op {
	case tisa.OpJE, tisa.OpJNE, tisa.OpJGS, tisa.OpJGU, tisa.OpJLS, tisa.OpJLU,
		tisa.OpJGES, tisa.OpJGEU, tisa.OpJLES, tisa.OpJLEU, tisa.OpJ, tisa.OpJAL:
		return true
	default:
		return false
	}
}

// Decode implements §4.7: given a raw instruction word and the flags
// latched from the last flag-producing op, it produces everything EXECUTE
// needs without touching machine state.
func Decode(word uint16, flags Flags) Decoded {
	op := tisa.GetOpcode(word)
	rd := tisa.GetRD(word)
	rs := tisa.GetRS(word)

	d := Decoded{Opcode: op, RegDst: rd, RegSrc: rs, ALUOp: op}

	switch {
	case isBranchOpcode(op):
		taken := branchTaken(op, flags)
		if !taken {
			d.NextPC = NextPCInc
			break
		}
		if rd == 0 {
			d.NextPC = NextPCImm
			d.Imm = uint16(tisa.SignExtend8(tisa.GetIMM8(word)))
		} else {
			d.NextPC = NextPCReg
		}
		if op == tisa.OpJAL {
			d.RegWE = true
			d.InsnType = InsnBraJAL
		}

	case op == tisa.OpLW:
		d.ALUEn = true
		d.ALUOp = tisa.OpADD
		d.Imm = uint16(tisa.SignExtend5(tisa.GetIMM5(word)))
		d.RegWE = true
		d.InsnType = InsnMemLW
		d.NextPC = NextPCInc

	case op == tisa.OpSW:
		d.ALUEn = true
		d.ALUOp = tisa.OpADD
		d.Imm = uint16(tisa.SignExtend5(tisa.GetIMM5(word)))
		d.MemWE = true
		d.InsnType = InsnMemSW
		d.NextPC = NextPCInc

	case op == tisa.OpMOVHI || op == tisa.OpMOVLO:
		d.ALUEn = true
		d.Imm = tisa.GetIMM8(word)
		d.RegWE = true
		d.InsnType = InsnAMIRegImm
		d.NextPC = NextPCInc

	default: // OR, AND, XOR, SLL, SLR, NOT, NEG, ADD, SUB, MOV, CMP
		d.ALUEn = true
		d.Imm = tisa.GetIMM5(word)
		d.RegWE = op != tisa.OpCMP
		if rs != 0 {
			d.InsnType = InsnAMIRegReg
		} else {
			d.InsnType = InsnAMIRegImm
		}
		d.NextPC = NextPCInc
	}

	return d
}
