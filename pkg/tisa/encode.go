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

package tisa

// SetOpcode writes the 5-bit opcode into bits 15..11.
func SetOpcode(word uint16, op Opcode) uint16 {
	return word | (uint16(op)&OpcodeMask)<<OpcodeShift
}

// GetOpcode reads the 5-bit opcode out of bits 15..11.
func GetOpcode(word uint16) Opcode {
	return Opcode((word >> OpcodeShift) & OpcodeMask)
}

// SetRD writes the destination register field (bits 10..8).
func SetRD(word uint16, rd uint16) uint16 {
	return word | (rd&RDMask)<<RDShift
}

// GetRD reads the destination register field (bits 10..8).
func GetRD(word uint16) uint16 {
	return (word >> RDShift) & RDMask
}

// SetRS writes the source register field (bits 7..5).
func SetRS(word uint16, rs uint16) uint16 {
	return word | (rs&RSMask)<<RSShift
}

// GetRS reads the source register field (bits 7..5).
func GetRS(word uint16) uint16 {
	return (word >> RSShift) & RSMask
}

// SetIMM5 writes the 5-bit immediate field (bits 4..0), truncating to its
// two's complement representation.
func SetIMM5(word uint16, imm int32) uint16 {
	return word | uint16(imm)&IMM5Mask
}

// GetIMM5 reads the raw (unextended) 5-bit immediate field.
func GetIMM5(word uint16) uint16 {
	return word & IMM5Mask
}

// SetIMM8 writes the 8-bit immediate field (bits 7..0, overlapping the RS
// and IMM5 fields; used by branches and movhi/movlo), truncating to its
// two's complement representation.
func SetIMM8(word uint16, imm int32) uint16 {
	return word | uint16(imm)&IMM8Mask
}

// GetIMM8 reads the raw (unextended) 8-bit immediate field.
func GetIMM8(word uint16) uint16 {
	return word & IMM8Mask
}

// SignExtend5 sign-extends a 5-bit field to 16 bits.
func SignExtend5(value uint16) int16 {
	v := value & IMM5Mask
	if v&(1<<4) != 0 {
		v |= 0xFFE0
	}
	return int16(v)
}

// SignExtend8 sign-extends an 8-bit field to 16 bits.
func SignExtend8(value uint16) int16 {
	v := value & IMM8Mask
	if v&(1<<7) != 0 {
		v |= 0xFF00
	}
	return int16(v)
}

// PCMask returns the bitmask for a program counter of the given width.
func PCMask(width uint) uint16 {
	return uint16(1<<width) - 1
}
