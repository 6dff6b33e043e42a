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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reset clears registers, memory, flags and the FSM back to their
// power-on state without reallocating the memory array.
func (m *Machine) Reset() {
	for i := range m.Registers {
		m.Registers[i] = 0
	}
	for i := range m.Memory {
		m.Memory[i] = 0
	}
	m.PC = 0
	m.Flags = Flags{}
	m.State = StateIdle
	m.insn = 0
	m.nextInsn = 0
	m.hasNextInsn = false
	m.memAddr = 0
	m.memLoad = 0
	m.decoded = Decoded{}
	m.aluOut = 0
	m.shiftLeft = 0
	m.Halted = false
	m.Ticks = 0
}

// LoadHex loads a program image in the format tas emits: a leading
// comment line, then one four-hex-digit instruction word per line. It
// resets the machine first.
func (m *Machine) LoadHex(r io.Reader) error {
	m.Reset()

	scanner := bufio.NewScanner(r)
	addr := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		word, err := strconv.ParseUint(line, 16, 16)
		if err != nil {
			return fmt.Errorf("line %d: %w", addr+1, err)
		}

		if addr >= len(m.Memory) {
			return fmt.Errorf("program exceeds %d-word memory", len(m.Memory))
		}

		m.Memory[addr] = uint16(word)
		addr++
	}

	return scanner.Err()
}

// RunUntilHalt clocks the machine until it observes the self-jump halt
// sentinel or budget ticks elapse, whichever comes first. It returns
// false if the budget was exhausted first.
func (m *Machine) RunUntilHalt(budget uint64) bool {
	for m.Ticks < budget {
		m.Step()
		if m.Halted {
			return true
		}
	}
	return false
}

// String renders the register file, flags and PC for debug output.
func (m *Machine) String() string {
	var b strings.Builder
	for i, r := range m.Registers {
		fmt.Fprintf(&b, "r%d=%#04x ", i, r)
	}
	fmt.Fprintf(&b, "pc=%#04x flags=%s state=%s", m.PC, m.Flags, m.State)
	return b.String()
}

// String renders the flag bits in ZSCO order, matching the ALU table
// in §4.6.
func (f Flags) String() string {
	bit := func(v bool, c byte) byte {
		if v {
			return c
		}
		return '-'
	}
	return string([]byte{
		bit(f.ZF, 'Z'),
		bit(f.SF, 'S'),
		bit(f.CF, 'C'),
		bit(f.OF, 'O'),
	})
}
