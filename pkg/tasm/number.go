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

import "strconv"

// parseNumber accepts the customary C-style bases: leading 0x hex,
// leading 0 octal, else decimal, with an optional leading '-'. It
// reports "invalid number" style failures by returning ok=false; range
// checking against a field's width is the caller's job.
func parseNumber(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseRegisterName resolves "rN" (case-insensitive) to its register
// number, 0..7.
func parseRegisterName(s string) (uint16, bool) {
	if len(s) != 2 {
		return 0, false
	}
	if s[0] != 'r' && s[0] != 'R' {
		return 0, false
	}
	if s[1] < '0' || s[1] > '7' {
		return 0, false
	}
	return uint16(s[1] - '0'), true
}
