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

// Package execution tracks the result of instruction execution on the
// CPU. Packages outside of the hardware package can use this information
// for disassembly and monitoring.
package execution

import "github.com/gopher65816/gopher65816/hardware/cpu/instructions"

// Result records the execution details of the most recently decoded
// instruction.
type Result struct {
	// the full 24-bit address the instruction was decoded from
	Address uint32

	// a reference to the instruction definition. will be
	// instructions.UnknownDefn if the opcode is not implemented
	Defn *instructions.Definition

	// the operand of the instruction, if any. for block move
	// instructions the low byte is the destination bank and the next
	// byte is the source bank
	InstructionData uint32

	// whether the operand was fetched as a 16-bit quantity. affects how
	// immediate operands are rendered
	Data16 bool

	// the number of bytes read during instruction decoding, including
	// the opcode itself
	ByteCount int

	// whether this is a complete execution of the instruction. block
	// move instructions may yield before the move has completed, in
	// which case Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.Data16 = false
	r.ByteCount = 0
	r.Final = false
}
