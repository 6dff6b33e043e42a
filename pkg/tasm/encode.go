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

import (
	"github.com/davidsondfgl/tangle/pkg/tisa"
)

// encodeContext carries everything a grammar handler needs besides the
// operand tokens themselves.
type encodeContext struct {
	entry    tisa.Entry
	mnemonic string
	file     string
	line     int
	pc       uint16
	labels   map[string]uint16
}

func trailingErr(ctx *encodeContext) error {
	return &OperandError{baseDiag{ctx.file, ctx.line}, ctx.mnemonic, "unexpected trailing operand data"}
}

func invalidOperand(ctx *encodeContext, reason string) error {
	return &OperandError{baseDiag{ctx.file, ctx.line}, ctx.mnemonic, reason}
}

// encodeNone handles nop: no operands permitted.
func encodeNone(ctx *encodeContext, operands []Token) (Record, error) {
	if len(operands) != 0 {
		return Record{}, trailingErr(ctx)
	}
	word := tisa.SetOpcode(0, ctx.entry.Opcode)
	return Record{Word: word, Class: ctx.entry.Class, PC: ctx.pc, Line: ctx.line}, nil
}

// encodeOne handles the single-operand AMI forms (not/neg) and every
// branch: a register, a literal immediate (branch only), or a label
// (branch only).
func encodeOne(ctx *encodeContext, operands []Token) (Record, error) {
	if len(operands) == 0 {
		return Record{}, invalidOperand(ctx, "missing operand")
	}

	word := tisa.SetOpcode(0, ctx.entry.Opcode)
	rec := Record{Class: ctx.entry.Class, PC: ctx.pc, Line: ctx.line}

	switch operands[0].Type {
	case TokPercent:
		if len(operands) < 2 || operands[1].Type != TokIdent {
			return Record{}, invalidOperand(ctx, "expected register name after '%'")
		}
		reg, ok := parseRegisterName(operands[1].Value)
		if !ok {
			return Record{}, invalidOperand(ctx, "invalid register")
		}
		if ctx.entry.Class == tisa.ClassBRA && reg == 0 {
			return Record{}, invalidOperand(ctx, "r0 is reserved to discriminate immediate-form branches")
		}
		if len(operands) > 2 {
			return Record{}, trailingErr(ctx)
		}
		word = tisa.SetRD(word, reg)

	case TokDollar:
		if ctx.entry.Class != tisa.ClassBRA {
			return Record{}, invalidOperand(ctx, "immediate values are only allowed inside branches")
		}
		if len(operands) < 2 || operands[1].Type != TokIdent {
			return Record{}, invalidOperand(ctx, "invalid number")
		}
		imm, ok := parseNumber(operands[1].Value)
		if !ok {
			return Record{}, invalidOperand(ctx, "invalid number")
		}
		if len(operands) > 2 {
			return Record{}, trailingErr(ctx)
		}
		if imm < tisa.MinImmBRA || imm > tisa.MaxImmBRA {
			return Record{}, &DisplacementOutOfRangeError{baseDiag{ctx.file, ctx.line}, "", "branch"}
		}
		word = tisa.SetIMM8(word, int32(imm))

	case TokIdent:
		if ctx.entry.Class != tisa.ClassBRA {
			return Record{}, invalidOperand(ctx, "labels are only allowed inside branches")
		}
		name := operands[0].Value
		if len(operands) > 1 {
			return Record{}, trailingErr(ctx)
		}
		if off, ok := ctx.labels[name]; ok {
			disp := int64(off) - int64(ctx.pc)
			if disp < tisa.MinImmBRA || disp > tisa.MaxImmBRA {
				return Record{}, &DisplacementOutOfRangeError{baseDiag{ctx.file, ctx.line}, name, "branch"}
			}
			word = tisa.SetIMM8(word, int32(disp))
		} else {
			rec.PendingLabel = name
		}

	default:
		return Record{}, invalidOperand(ctx, "expected a register, immediate, or label")
	}

	rec.Word = word
	return rec, nil
}

// isLoHi reports whether an opcode is movhi/movlo, the only two AMI
// opcodes with an 8-bit immediate field and no label support.
func isLoHi(op tisa.Opcode) bool {
	return op == tisa.OpMOVHI || op == tisa.OpMOVLO
}

// encodeTwo handles binary AMI ops, mov, movhi and movlo: "rd, (rs |
// $imm | label)".
func encodeTwo(ctx *encodeContext, operands []Token) (Record, error) {
	if len(operands) < 3 {
		return Record{}, invalidOperand(ctx, "expected 'rd, operand'")
	}
	if operands[0].Type != TokPercent || operands[1].Type != TokIdent {
		return Record{}, invalidOperand(ctx, "first operand must be a register")
	}
	rd, ok := parseRegisterName(operands[1].Value)
	if !ok {
		return Record{}, invalidOperand(ctx, "invalid register")
	}
	if operands[2].Type != TokComma {
		return Record{}, invalidOperand(ctx, "expected ',' after destination register")
	}

	word := tisa.SetOpcode(0, ctx.entry.Opcode)
	word = tisa.SetRD(word, rd)
	rec := Record{Class: ctx.entry.Class, PC: ctx.pc, Line: ctx.line}

	rest := operands[3:]
	if len(rest) == 0 {
		return Record{}, invalidOperand(ctx, "missing second operand")
	}

	switch rest[0].Type {
	case TokPercent:
		if isLoHi(ctx.entry.Opcode) {
			return Record{}, invalidOperand(ctx, "movhi/movlo require an immediate second operand")
		}
		if len(rest) < 2 || rest[1].Type != TokIdent {
			return Record{}, invalidOperand(ctx, "expected register name after '%'")
		}
		rs, ok := parseRegisterName(rest[1].Value)
		if !ok {
			return Record{}, invalidOperand(ctx, "invalid register")
		}
		if len(rest) > 2 {
			return Record{}, trailingErr(ctx)
		}
		word = tisa.SetRS(word, rs)

	case TokDollar:
		if len(rest) < 2 || rest[1].Type != TokIdent {
			return Record{}, invalidOperand(ctx, "invalid number")
		}
		imm, ok := parseNumber(rest[1].Value)
		if !ok {
			return Record{}, invalidOperand(ctx, "invalid number")
		}
		if len(rest) > 2 {
			return Record{}, trailingErr(ctx)
		}
		if isLoHi(ctx.entry.Opcode) {
			if imm < tisa.MinLoHiAMI || imm > tisa.MaxLoHiAMI {
				return Record{}, invalidOperand(ctx, "immediate out of range [-128,255]")
			}
			word = tisa.SetIMM8(word, int32(imm))
		} else {
			if imm < tisa.MinImmAMI || imm > tisa.MaxImmAMI {
				return Record{}, invalidOperand(ctx, "immediate out of range [-16,31]")
			}
			word = tisa.SetIMM5(word, int32(imm))
		}

	case TokIdent:
		if isLoHi(ctx.entry.Opcode) {
			return Record{}, invalidOperand(ctx, "movhi/movlo do not accept labels")
		}
		name := rest[0].Value
		if len(rest) > 1 {
			return Record{}, trailingErr(ctx)
		}
		if off, ok := ctx.labels[name]; ok {
			if int64(off) < tisa.MinImmAMI || int64(off) > tisa.MaxImmAMI {
				return Record{}, &DisplacementOutOfRangeError{baseDiag{ctx.file, ctx.line}, name, "ami"}
			}
			word = tisa.SetIMM5(word, int32(off))
		} else {
			rec.PendingLabel = name
		}

	default:
		return Record{}, invalidOperand(ctx, "expected a register, immediate, or label")
	}

	rec.Word = word
	return rec, nil
}

// encodeThree handles lw/sw: "rd, $imm(rs)".
func encodeThree(ctx *encodeContext, operands []Token) (Record, error) {
	const want = "expected 'rd, $imm(rs)'"

	if len(operands) != 9 {
		return Record{}, invalidOperand(ctx, want)
	}
	if operands[0].Type != TokPercent || operands[1].Type != TokIdent {
		return Record{}, invalidOperand(ctx, want)
	}
	rd, ok := parseRegisterName(operands[1].Value)
	if !ok {
		return Record{}, invalidOperand(ctx, "invalid register")
	}
	if operands[2].Type != TokComma {
		return Record{}, invalidOperand(ctx, want)
	}
	if operands[3].Type != TokDollar || operands[4].Type != TokIdent {
		return Record{}, invalidOperand(ctx, want)
	}
	imm, ok := parseNumber(operands[4].Value)
	if !ok {
		return Record{}, invalidOperand(ctx, "invalid number")
	}
	if imm < tisa.MinImmMEM || imm > tisa.MaxImmMEM {
		return Record{}, invalidOperand(ctx, "displacement out of range [-16,15]")
	}
	if operands[5].Type != TokLParen {
		return Record{}, invalidOperand(ctx, want)
	}
	if operands[6].Type != TokPercent || operands[7].Type != TokIdent {
		return Record{}, invalidOperand(ctx, want)
	}
	rs, ok := parseRegisterName(operands[7].Value)
	if !ok {
		return Record{}, invalidOperand(ctx, "invalid register")
	}
	if operands[8].Type != TokRParen {
		return Record{}, invalidOperand(ctx, want)
	}

	word := tisa.SetOpcode(0, ctx.entry.Opcode)
	word = tisa.SetRD(word, rd)
	word = tisa.SetRS(word, rs)
	word = tisa.SetIMM5(word, int32(imm))

	return Record{Word: word, Class: ctx.entry.Class, PC: ctx.pc, Line: ctx.line}, nil
}
