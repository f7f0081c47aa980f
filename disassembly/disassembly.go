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

// Package disassembly renders decoded instructions as text. It is a
// pure projection from execution results and has no effect on the
// emulation.
package disassembly

import (
	"fmt"
	"io"

	"github.com/gopher65816/gopher65816/hardware/cpu"
	"github.com/gopher65816/gopher65816/hardware/cpu/execution"
	"github.com/gopher65816/gopher65816/hardware/cpu/instructions"
	"github.com/gopher65816/gopher65816/hardware/memory/memorymap"
)

// FormatResult returns the assembly text for a decoded instruction.
// For example, opcode 0xa9 with an 8-bit operand of 0x42 renders as
// "LDA #$42".
func FormatResult(res execution.Result) string {
	defn := res.Defn
	if defn == nil {
		return ""
	}

	data := res.InstructionData

	switch defn.AddressingMode {
	case instructions.Implied:
		return defn.Mnemonic
	case instructions.Immediate:
		if res.Data16 {
			return fmt.Sprintf("%s #$%04X", defn.Mnemonic, uint16(data))
		}
		return fmt.Sprintf("%s #$%02X", defn.Mnemonic, uint8(data))
	case instructions.Relative:
		d := uint8(data)
		if d&0x80 == 0x80 {
			return fmt.Sprintf("%s -$%02X", defn.Mnemonic, uint8(0x100-uint16(d)))
		}
		return fmt.Sprintf("%s +$%02X", defn.Mnemonic, d)
	case instructions.Absolute:
		return fmt.Sprintf("%s $%04X", defn.Mnemonic, uint16(data))
	case instructions.AbsoluteLong:
		return fmt.Sprintf("%s $%02X%04X", defn.Mnemonic, uint8(data>>16), uint16(data))
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("%s $%04X,X", defn.Mnemonic, uint16(data))
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("%s $%04X,Y", defn.Mnemonic, uint16(data))
	case instructions.AbsoluteLongIndexedX:
		return fmt.Sprintf("%s $%02X%04X,X", defn.Mnemonic, uint8(data>>16), uint16(data))
	case instructions.DirectPage:
		return fmt.Sprintf("%s $%02X", defn.Mnemonic, uint8(data))
	case instructions.DirectPageIndexedX:
		return fmt.Sprintf("%s $%02X,X", defn.Mnemonic, uint8(data))
	case instructions.DirectPageIndirectLong:
		return fmt.Sprintf("%s [$%02X]", defn.Mnemonic, uint8(data))
	case instructions.BlockMove:
		// rendered source bank first, as written in assembly
		return fmt.Sprintf("%s $%02X,$%02X", defn.Mnemonic, uint8(data>>8), uint8(data))
	}

	return defn.Mnemonic
}

// FromMemory disassembles from the CPU's current program address
// without disturbing the live CPU. Disassembly stops early at an
// unknown opcode.
//
// Operand widths are decided by the width flags at the moment of the
// call. Instructions beyond a REP, SEP or XCE in the disassembled
// range may therefore render with the wrong width.
func FromMemory(output io.Writer, mc *cpu.CPU, count int) error {
	snap := mc.Snapshot()

	for i := 0; i < count; i++ {
		err := snap.Decode()
		if err != nil {
			return err
		}

		res := snap.LastResult
		bank, offset := memorymap.Decode(res.Address)
		_, err = fmt.Fprintf(output, "%02x:%04x %s\n", bank, offset, FormatResult(res))
		if err != nil {
			return err
		}

		if res.Defn.Operator == instructions.Unknown {
			break
		}
	}

	return nil
}
