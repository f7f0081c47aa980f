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

package hardware

import (
	"github.com/gopher65816/gopher65816/hardware/cpu"
	"github.com/gopher65816/gopher65816/hardware/cpu/instructions"
	"github.com/gopher65816/gopher65816/hardware/memory"
	"github.com/gopher65816/gopher65816/logger"
)

// Console is the named structure for the emulated machine: the CPU and
// the memory it is attached to.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewConsole creates a Console around the supplied cartridge data. The
// returned console is reset and ready to step.
func NewConsole(cart []uint8) (*Console, error) {
	con := &Console{}
	con.Mem = memory.NewMemory(cart)
	con.CPU = cpu.NewCPU(con.Mem)

	err := con.Reset()
	if err != nil {
		return nil, err
	}

	return con, nil
}

// Reset the console to an initial state. The program counter is seeded
// from the cartridge reset vector.
func (con *Console) Reset() error {
	con.Mem.Reset()
	con.CPU.Reset()

	vec, err := con.Mem.ResetVector()
	if err != nil {
		return err
	}
	con.CPU.SetAddress(uint32(vec))

	logger.Logf("console", "reset vector %#04x", vec)

	return nil
}

// Step the console one instruction forward.
func (con *Console) Step() error {
	return con.CPU.Step()
}

// Run the console until the CPU decodes an opcode it does not
// implement, the check function returns false, or an error occurs.
// The check function is called after every step.
func (con *Console) Run(check func() (bool, error)) error {
	for {
		err := con.CPU.Step()
		if err != nil {
			return err
		}

		if con.CPU.LastResult.Defn.Operator == instructions.Unknown {
			logger.Logf("console", "unknown opcode at %#06x", con.CPU.LastResult.Address)
			return nil
		}

		cont, err := check()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
