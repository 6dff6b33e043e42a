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

// Package tisa holds the Tangle instruction set: the opcode table, the
// bit-field layout of the 16-bit instruction word, and the operand-range
// constants the assembler and the reference CPU model must agree on.
//
// The numbering below is the hardware encoding (tangle_config.v), which is
// authoritative. The host C header historically disagreed with it on
// several opcodes (CMP, MOV, JE, LW, SW); that header is not reproduced
// here.
package tisa

// Opcode is the 5-bit value in bits 15..11 of an instruction word.
type Opcode uint8

const (
	OpOR  Opcode = 0
	OpAND Opcode = 1
	OpXOR Opcode = 2
	OpSLL Opcode = 3 // reserved
	OpSLR Opcode = 4 // reserved
	OpNOT Opcode = 5
	OpNEG Opcode = 6
	OpADD Opcode = 7
	OpSUB Opcode = 8
	OpMOV Opcode = 9

	OpMOVHI Opcode = 10
	OpMOVLO Opcode = 11
	OpCMP   Opcode = 12

	OpJE   Opcode = 13
	OpJNE  Opcode = 14
	OpJGS  Opcode = 15
	OpJGU  Opcode = 16
	OpJLS  Opcode = 17
	OpJLU  Opcode = 18
	OpJGES Opcode = 19
	OpJGEU Opcode = 20
	OpJLES Opcode = 21
	OpJLEU Opcode = 22

	OpJ   Opcode = 23
	OpJAL Opcode = 24

	OpLW Opcode = 25
	OpSW Opcode = 26
)

// Class groups opcodes by operand/encoding shape.
type Class uint8

const (
	ClassAMI Class = iota // ALU / Move / I-O: op rd, rs|imm|label
	ClassBRA              // Branch: jxx imm|label|rd
	ClassMEM              // Memory: lw/sw rd, $imm(rs)
)

// Grammar selects which operand parser a mnemonic uses.
type Grammar uint8

const (
	GrammarNone  Grammar = iota // nop
	GrammarOne                  // AMI single (not/neg), all branches
	GrammarTwo                  // binary AMI, mov, movhi, movlo
	GrammarThree                // lw/sw
)

// Bit-field layout of the 16-bit instruction word.
const (
	OpcodeShift = 11
	OpcodeMask  = 0x1F

	RDShift = 8
	RDMask  = 0x7

	RSShift = 5
	RSMask  = 0x7

	IMM5Mask = 0x1F
	IMM8Mask = 0xFF
)

// Operand ranges, named after tas.h's MIN_IMM_*/MAX_IMM_* macros. AMI
// reg/imm ranges are asymmetric because the sign is ignored: the field is
// unsigned 5 bits, but values in [-16,-1] are accepted and folded into
// [16,31] by two's complement truncation.
const (
	MinImmAMI = -(1 << 4)
	MaxImmAMI = (1 << 5) - 1

	MinImmBRA = -(1 << 7)
	MaxImmBRA = (1 << 7) - 1

	MinLoHiAMI = -(1 << 7)
	MaxLoHiAMI = (1 << 8) - 1

	MinImmMEM = -(1 << 4)
	MaxImmMEM = (1 << 4) - 1
)

// DefaultPCWidth is the reference implementation's program-counter width,
// giving a 64-word program space.
const DefaultPCWidth = 6

// NumRegisters is the size of the register file; r0 is hardwired to zero.
const NumRegisters = 8
