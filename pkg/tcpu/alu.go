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

// alu implements §4.6's op/flags table. For AMI ops a is the pre-op value
// of the destination register and b is the second operand (register or
// immediate, already extended by decode); for memory address computation
// a is the base register and b the sign-extended displacement. It returns the result and,
// when the op is flag-producing, the new flags; setFlags tells the
// caller whether to latch them.
func alu(op tisa.Opcode, a, b uint16) (result uint16, flags Flags, setFlags bool) {
	switch op {
	case tisa.OpOR:
		result = a | b
		return result, bitwiseFlags(result), true

	case tisa.OpAND:
		result = a & b
		return result, bitwiseFlags(result), true

	case tisa.OpXOR:
		result = a ^ b
		return result, bitwiseFlags(result), true

	case tisa.OpNOT:
		return ^a, Flags{}, false

	case tisa.OpNEG:
		return -a, Flags{}, false

	case tisa.OpADD:
		sum := uint32(a) + uint32(b)
		result = uint16(sum)
		f := Flags{
			ZF: result == 0,
			SF: result&0x8000 != 0,
			CF: sum > 0xFFFF,
			OF: (a&0x8000) == (b&0x8000) && (a&0x8000) != (result&0x8000),
		}
		return result, f, true

	case tisa.OpSUB, tisa.OpCMP:
		result = a - b
		f := Flags{
			ZF: result == 0,
			SF: result&0x8000 != 0,
			CF: a < b,
			OF: (a&0x8000) != (b&0x8000) && (a&0x8000) != (result&0x8000),
		}
		return result, f, true

	case tisa.OpMOV:
		return b, Flags{}, false

	case tisa.OpMOVHI:
		return (b & 0xFF) << 8, Flags{}, false

	case tisa.OpMOVLO:
		return a | b, Flags{}, false

	case tisa.OpSLL:
		return a << (b & 0xF), Flags{}, false

	case tisa.OpSLR:
		return a >> (b & 0xF), Flags{}, false

	default:
		return a, Flags{}, false
	}
}

func bitwiseFlags(result uint16) Flags {
	return Flags{ZF: result == 0, SF: result&0x8000 != 0}
}

// shiftCycles is how many WAIT_ALU ticks a shift instruction occupies,
// per §4.6's "shifts execute over multiple cycles" and §4.8's
// alu_busy/WAIT_ALU handshake. The reference core shifts one bit per
// cycle, so a shift by n takes n cycles and a shift by zero is free.
func shiftCycles(op tisa.Opcode, amount uint16) int {
	if op != tisa.OpSLL && op != tisa.OpSLR {
		return 0
	}
	return int(amount & 0xF)
}
