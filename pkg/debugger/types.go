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

// Package debugger is an interactive breakpoint/watchpoint front end for
// a tcpu.Machine, driven by tsim's REPL.
package debugger

import (
	"os"

	"github.com/davidsondfgl/tangle/pkg/tasm"
	"github.com/davidsondfgl/tangle/pkg/tcpu"
)

type WatchpointType uint

const (
	ReadWatch WatchpointType = iota
	WriteWatch
	ReadWriteWatch
)

type Watchpoint struct {
	Addr uint16
	Type WatchpointType
}

type Breakpoint struct {
	Addr uint16
}

// Debugger holds breakpoint/watchpoint state and the optional debug
// symbol table (produced by "tas -debug") used to resolve labels while
// stepping. Source is not read by any printer: source lines are not
// echoed.
type Debugger struct {
	Break bool

	Breakpoints []Breakpoint
	Watchpoints []Watchpoint

	Source   *os.File
	SymTable *tasm.SymbolTable

	HandleBreak func(*Debugger, *tcpu.Machine)
	HandleRead  func(uint16, *Debugger, *tcpu.Machine)
	HandleWrite func(uint16, *Debugger, *tcpu.Machine)
}

// LabelAt reverse-looks-up the label defined at addr, if any.
func (dbg *Debugger) LabelAt(addr uint16) (string, bool) {
	if dbg.SymTable == nil {
		return "", false
	}
	for name, off := range dbg.SymTable.Labels {
		if off == addr {
			return name, true
		}
	}
	return "", false
}
