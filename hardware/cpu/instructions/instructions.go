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

package instructions

import "fmt"

// AddressingMode describes how the operand bytes of an instruction are to
// be interpreted.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate // operand width decided by register width flags
	Relative  // relative addressing is used for branch instructions

	Absolute     // abs (bank-relative 16 bit offset)
	AbsoluteLong // abs long (16 bit offset plus explicit bank)

	AbsoluteIndexedX     // abs,X
	AbsoluteIndexedY     // abs,Y
	AbsoluteLongIndexedX // abs long,X

	DirectPage             // dp
	DirectPageIndexedX     // dp,X
	DirectPageIndirectLong // [dp]

	BlockMove // destination and source bank operands
)

// WidthGate describes which register width flag decides the number of
// operand bytes fetched for an Immediate mode instruction. It has no effect
// on any other addressing mode.
type WidthGate int

// List of width gates. The gated flags are overridden whenever the CPU is
// in emulation mode, in which case a single operand byte is always fetched.
const (
	Fixed  WidthGate = iota // operand size fixed by the addressing mode
	GateA                   // gated by MemorySelect (accumulator width)
	GateXY                  // gated by IndexRegisterWidth
)

// Operator identifies the operation performed by an instruction,
// irrespective of addressing mode.
type Operator int

// List of operators. Unknown is the zero value; it is the sentinel
// returned by the decoder for opcodes absent from the table.
const (
	Unknown Operator = iota

	Lda
	Ldx
	Ldy

	Sta
	Stx
	Sty
	Stz

	Adc
	Inc
	Inx
	Iny
	Dex
	Dey

	Asl

	Tax
	Tay
	Tdc
	Txs
	Xba

	Mvn

	Cmp
	Cpx

	Bcc
	Bcs
	Bne
	Beq
	Bra

	Pha
	Phb
	Phd
	Phx
	Phy
	Php
	Pea

	Pla
	Plb
	Pld
	Plx
	Ply
	Plp

	Jmp
	Jsr
	Jsl
	Rts
	Rtl

	Clc
	Sei
	Rep
	Sep
	Xce

	Brk
)

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Mnemonic       string
	AddressingMode AddressingMode
	Width          WidthGate
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Unknown {
		return "unknown instruction"
	}
	return fmt.Sprintf("%02x %s [mode=%d width=%d]", defn.OpCode, defn.Mnemonic, defn.AddressingMode, defn.Width)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative
}
