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

// Package tcpu is the executable reference model of the Tangle CPU: the
// register file, flag-producing ALU, decode unit, and the multi-cycle
// state machine that ties them to a unified instruction/data memory.
package tcpu

import "github.com/davidsondfgl/tangle/pkg/tisa"

// State is one step of the fetch/execute FSM.
type State int

const (
	StateIdle State = iota
	StateWait
	StateIFetch
	StateExecute
	StateWaitMem
	StateWaitALU
	StateWriteback
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateWait:
		return "WAIT"
	case StateIFetch:
		return "IFETCH"
	case StateExecute:
		return "EXECUTE"
	case StateWaitMem:
		return "WAIT_MEM"
	case StateWaitALU:
		return "WAIT_ALU"
	case StateWriteback:
		return "WRITEBACK"
	default:
		return "?"
	}
}

// NextPCKind is the decode unit's choice of how EXECUTE should compute
// the next program counter.
type NextPCKind int

const (
	NextPCInc NextPCKind = iota
	NextPCImm
	NextPCReg
)

// InsnType classifies a decoded instruction for the writeback stage.
type InsnType int

const (
	InsnNone InsnType = iota
	InsnAMIRegReg
	InsnAMIRegImm
	InsnBraJAL
	InsnMemLW
	InsnMemSW
)

// Flags holds the four condition flags. They are updated only by
// ALU operations that the §4.6 table marks as flag-producing; all other
// operations leave them exactly as they were.
type Flags struct {
	ZF bool
	SF bool
	CF bool
	OF bool
}

// Decoded is everything decode produces from a raw instruction word.
type Decoded struct {
	Opcode   tisa.Opcode
	RegDst   uint16
	RegSrc   uint16
	NextPC   NextPCKind
	InsnType InsnType
	ALUOp    tisa.Opcode
	Imm      uint16 // already sign/zero extended per §4.7
	RegWE    bool
	MemWE    bool
	ALUEn    bool
}

// Machine is the full state of one Tangle core: register file, unified
// memory, flags, program counter, and the FSM's pipeline scratch.
type Machine struct {
	Registers [tisa.NumRegisters]uint16
	Memory    []uint16
	PC        uint16
	PCWidth   uint
	Flags     Flags

	State State

	insn        uint16
	nextInsn    uint16
	hasNextInsn bool
	memAddr     uint16
	memLoad     uint16
	decoded     Decoded
	aluOut      uint16
	shiftLeft   int

	// Halted is set once the model observes a branch/jump that targets
	// its own address (nextpc == pc for a taken control transfer) — the
	// documented halt sentinel for programs that don't use a cycle
	// budget. EXECUTE sets it, but the FSM never reads it and keeps
	// stepping; it's an observation the driver can poll for.
	Halted bool

	// Ticks counts completed clock edges, for cycle-budget drivers.
	Ticks uint64

	// Debugger, if set, is notified on every instruction boundary and
	// every LW read and SW write; instruction fetches are not reported.
	// Defined as an interface here (rather than
	// importing pkg/debugger) so pkg/debugger can depend on tcpu instead
	// of the other way around.
	Debugger MachineDebugger
}

// MachineDebugger is the hook set a debugger front end implements to
// observe a running Machine.
type MachineDebugger interface {
	Step(*Machine)
	Read(addr uint16, m *Machine)
	Write(addr uint16, m *Machine)
}

// NewMachine allocates a machine with a 2^pcWidth-word unified memory.
func NewMachine(pcWidth uint) *Machine {
	if pcWidth == 0 {
		pcWidth = tisa.DefaultPCWidth
	}
	return &Machine{
		Memory:  make([]uint16, 1<<pcWidth),
		PCWidth: pcWidth,
		State:   StateIdle,
	}
}

// pcMask masks a value to the machine's program-counter width.
func (m *Machine) pcMask(v uint16) uint16 {
	return v & tisa.PCMask(m.PCWidth)
}

// WriteReg writes v to register r, except r0 which is wired to zero and
// silently discards all writes.
func (m *Machine) WriteReg(r uint16, v uint16) {
	if r == 0 {
		return
	}
	m.Registers[r&0x7] = v
}

// ReadReg reads register r; r0 always reads as zero.
func (m *Machine) ReadReg(r uint16) uint16 {
	if r == 0 {
		return 0
	}
	return m.Registers[r&0x7]
}
