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

package debugger

import (
	"fmt"

	"github.com/davidsondfgl/tangle/pkg/tcpu"
)

// Step is called on every instruction boundary (WRITEBACK -> WAIT).
func (dbg *Debugger) Step(mc *tcpu.Machine) {
	if dbg.Break {
		dbg.HandleBreak(dbg, mc)
		return
	}

	for _, breakpoint := range dbg.Breakpoints {
		if mc.PC == breakpoint.Addr {
			dbg.HandleBreak(dbg, mc)
			break
		}
	}
}

// Read is called by the machine on every LW.
func (dbg *Debugger) Read(addr uint16, mc *tcpu.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleRead(addr, dbg, mc)
			break
		}
	}
}

// Write is called by the machine on every SW.
func (dbg *Debugger) Write(addr uint16, mc *tcpu.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleWrite(addr, dbg, mc)
			break
		}
	}
}

// PrintRegisters renders the register file, PC and flags.
func (dbg *Debugger) PrintRegisters(mc *tcpu.Machine) {
	for i, r := range mc.Registers {
		fmt.Printf("\033[1mr%d:\033[0m %#04x\t", i, r)
		if i == (len(mc.Registers)-1)/2 {
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Printf("\033[1mpc:\033[0m %#04x\t\033[1mflags:\033[0m %s\n", mc.PC, mc.Flags)
}

// PrintMem renders count words of memory starting at addr, four per
// line, annotating any address that has a label.
func (dbg *Debugger) PrintMem(mc *tcpu.Machine, addr, count uint16) {
	for i := addr; i < addr+count; i++ {
		if i == addr || (i-addr)%4 == 0 {
			if i != addr {
				fmt.Println()
			}
			if name, ok := dbg.LabelAt(i); ok {
				fmt.Printf("\033[1m[%#04x %s]\033[0m ", i, name)
			} else {
				fmt.Printf("\033[1m[%#04x]\033[0m ", i)
			}
		}

		result := mc.Memory[i]
		if result == 0 {
			fmt.Printf("\033[1;30m%#04x\033[0m ", result)
		} else {
			fmt.Printf("%#04x ", result)
		}
	}

	fmt.Println()
}

// PrintState renders the current FSM state, useful while single-cycle
// stepping through a multi-cycle instruction.
func (dbg *Debugger) PrintState(mc *tcpu.Machine) {
	fmt.Printf("\033[1mstate:\033[0m %s \033[1mticks:\033[0m %d\n", mc.State, mc.Ticks)
}
