// This file is part of Gopher65816.
//
// Gopher65816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65816.  If not, see <https://www.gnu.org/licenses/>.

// Package monitor implements a single-key machine-language monitor. It
// steps the emulation one instruction at a time and inspects registers,
// stack and upcoming instructions. The monitor continues after memory
// faults, reporting them rather than terminating.
package monitor

import (
	"errors"
	"os"

	"github.com/gopher65816/gopher65816/disassembly"
	"github.com/gopher65816/gopher65816/hardware"
	"github.com/gopher65816/gopher65816/hardware/cpu/instructions"
	"github.com/gopher65816/gopher65816/hardware/memory/cpubus"
	"github.com/gopher65816/gopher65816/hardware/memory/memorymap"
	"github.com/gopher65816/gopher65816/monitor/easyterm"
)

const disasmWindow = 8

// Monitor is the container for the interactive monitor session.
type Monitor struct {
	term easyterm.Terminal
	con  *hardware.Console
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(con *hardware.Console) *Monitor {
	return &Monitor{con: con}
}

// Run the monitor session. Returns when the user quits.
func (m *Monitor) Run() error {
	err := m.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer m.term.CleanUp()

	m.term.CBreakMode()

	m.term.Print("s step, r registers, k stack, d disassemble, q quit\n")
	m.term.Print("%s\n", m.con.CPU.String())

	for {
		key, err := m.term.ReadKey()
		if err != nil {
			return err
		}

		switch key {
		case 's', ' ':
			m.step()

		case 'r':
			m.term.Print("%s\n", m.con.CPU.String())

		case 'k':
			m.stack()

		case 'd':
			err := disassembly.FromMemory(os.Stdout, m.con.CPU, disasmWindow)
			if err != nil {
				m.term.Print("error: %s\n", err)
			}

		case 'q', 0x03:
			return nil
		}
	}
}

func (m *Monitor) step() {
	err := m.con.Step()
	if err != nil {
		if errors.Is(err, cpubus.MemoryFault) {
			m.term.Print("%s\n", err)
			return
		}
		m.term.Print("error: %s\n", err)
		return
	}

	res := m.con.CPU.LastResult
	if res.Defn.Operator == instructions.Unknown {
		m.term.Print("unknown opcode at %06x\n", res.Address)
		return
	}
	if !res.Final {
		m.term.Print("block move in progress\n")
		return
	}

	bank, offset := memorymap.Decode(res.Address)
	m.term.Print("%02x:%04x %s\n", bank, offset, disassembly.FormatResult(res))
	m.term.Print("%s\n", m.con.CPU.String())
}

// stack prints every byte between the stack pointer and the stack base.
func (m *Monitor) stack() {
	sp := m.con.CPU.SP.Value()
	base := m.con.CPU.StackBase

	if sp >= base {
		m.term.Print("stack is empty\n")
		return
	}

	for addr := base; addr > sp; addr-- {
		v, err := m.con.Mem.Read8(memorymap.BankAddr(0, addr))
		if err != nil {
			m.term.Print("error: %s\n", err)
			return
		}
		m.term.Print("%04x: %02x\n", addr, v)
	}
}
