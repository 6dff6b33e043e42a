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

const linkReg = 7

// Step advances the machine by exactly one simulated clock edge,
// following the IDLE/WAIT/IFETCH/EXECUTE/WAIT_MEM/WAIT_ALU/WRITEBACK
// cycle. WRITEBACK returns to WAIT rather than IFETCH directly: on
// real hardware the two are equivalent (the lookahead fetch that would
// let WRITEBACK skip straight to IFETCH is only ever valid a cycle
// after WAIT would've produced the same word), and folding them apart
// risks decoding a stale instruction. See Design Note on FSM
// WRITEBACK transition.
func (m *Machine) Step() {
	defer func() { m.Ticks++ }()

	switch m.State {
	case StateIdle:
		m.State = StateWait

	case StateWait:
		if m.hasNextInsn {
			m.insn = m.nextInsn
			m.hasNextInsn = false
		} else {
			m.insn = m.Memory[m.pcMask(m.PC)]
		}
		m.memAddr = m.pcMask(m.PC + 1)
		m.State = StateIFetch

	case StateIFetch:
		m.decoded = Decode(m.insn, m.Flags)
		switch m.decoded.NextPC {
		case NextPCImm:
			m.memAddr = m.pcMask(m.PC + m.decoded.Imm)
		case NextPCReg:
			m.memAddr = m.pcMask(m.ReadReg(m.decoded.RegDst))
		}
		m.State = StateExecute

	case StateExecute:
		m.stepExecute()

	case StateWaitMem:
		m.stepWaitMem()

	case StateWaitALU:
		m.shiftLeft--
		if m.shiftLeft <= 0 {
			m.PC = m.pcMask(m.PC + 1)
			m.State = StateWriteback
		}

	case StateWriteback:
		m.stepWriteback()
		m.State = StateWait
		if m.Debugger != nil {
			m.Debugger.Step(m)
		}
	}
}

func (m *Machine) stepExecute() {
	d := m.decoded

	if d.NextPC != NextPCInc {
		oldPC := m.PC
		if d.InsnType == InsnBraJAL {
			m.WriteReg(linkReg, m.pcMask(oldPC+1))
		}
		if m.pcMask(m.memAddr) == oldPC {
			m.Halted = true
		}
		m.PC = m.pcMask(m.memAddr)
		m.State = StateWaitMem
		return
	}

	switch d.InsnType {
	case InsnMemLW, InsnMemSW:
		base := m.ReadReg(d.RegSrc)
		addr, _, _ := alu(tisa.OpADD, base, d.Imm)
		m.memAddr = m.pcMask(addr)

		if d.InsnType == InsnMemSW && m.memAddr == m.pcMask(m.PC+1) {
			m.nextInsn = m.ReadReg(d.RegDst)
			m.hasNextInsn = true
		}
		m.State = StateWaitMem

	default:
		a := m.ReadReg(d.RegDst)
		b := d.Imm
		if d.InsnType == InsnAMIRegReg {
			b = m.ReadReg(d.RegSrc)
		}
		result, flags, setFlags := alu(d.ALUOp, a, b)
		m.aluOut = result
		if setFlags {
			m.Flags = flags
		}

		if n := shiftCycles(d.ALUOp, b); n > 0 {
			m.shiftLeft = n
			m.State = StateWaitALU
		} else {
			m.PC = m.pcMask(m.PC + 1)
			m.State = StateWriteback
		}
	}
}

func (m *Machine) stepWaitMem() {
	d := m.decoded
	switch d.InsnType {
	case InsnMemLW:
		m.memLoad = m.Memory[m.memAddr]
		if m.Debugger != nil {
			m.Debugger.Read(m.memAddr, m)
		}
		m.PC = m.pcMask(m.PC + 1)
	case InsnMemSW:
		m.PC = m.pcMask(m.PC + 1)
	}
	m.State = StateWriteback
}

func (m *Machine) stepWriteback() {
	d := m.decoded

	switch d.InsnType {
	case InsnMemLW:
		m.WriteReg(d.RegDst, m.memLoad)
	case InsnMemSW:
		m.Memory[m.memAddr] = m.ReadReg(d.RegDst)
		if m.Debugger != nil {
			m.Debugger.Write(m.memAddr, m)
		}
	case InsnBraJAL:
		// link register was already committed in EXECUTE.
	default:
		if d.RegWE {
			m.WriteReg(d.RegDst, m.aluOut)
		}
	}
}
