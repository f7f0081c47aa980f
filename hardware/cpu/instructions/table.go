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

// UnknownDefn is the sentinel definition returned by the decoder for
// opcodes absent from the table. It consumes no operand bytes and its
// execution is a no-op.
var UnknownDefn = &Definition{Operator: Unknown, Mnemonic: "???", AddressingMode: Implied}

var definitions = [...]Definition{
	// load from memory
	{OpCode: 0xa9, Operator: Lda, Mnemonic: "LDA", AddressingMode: Immediate, Width: GateA},
	{OpCode: 0xad, Operator: Lda, Mnemonic: "LDA", AddressingMode: Absolute},
	{OpCode: 0xa5, Operator: Lda, Mnemonic: "LDA", AddressingMode: DirectPage},
	{OpCode: 0xa7, Operator: Lda, Mnemonic: "LDA", AddressingMode: DirectPageIndirectLong},
	{OpCode: 0xbd, Operator: Lda, Mnemonic: "LDA", AddressingMode: AbsoluteIndexedX},
	{OpCode: 0xb9, Operator: Lda, Mnemonic: "LDA", AddressingMode: AbsoluteIndexedY},
	{OpCode: 0xbf, Operator: Lda, Mnemonic: "LDA", AddressingMode: AbsoluteLongIndexedX},
	{OpCode: 0xa2, Operator: Ldx, Mnemonic: "LDX", AddressingMode: Immediate, Width: GateXY},
	{OpCode: 0xa6, Operator: Ldx, Mnemonic: "LDX", AddressingMode: DirectPage},
	{OpCode: 0xa0, Operator: Ldy, Mnemonic: "LDY", AddressingMode: Immediate, Width: GateXY},
	{OpCode: 0xa4, Operator: Ldy, Mnemonic: "LDY", AddressingMode: DirectPage},

	// store to memory
	{OpCode: 0x8d, Operator: Sta, Mnemonic: "STA", AddressingMode: Absolute},
	{OpCode: 0x85, Operator: Sta, Mnemonic: "STA", AddressingMode: DirectPage},
	{OpCode: 0x9d, Operator: Sta, Mnemonic: "STA", AddressingMode: AbsoluteIndexedX},
	{OpCode: 0x9f, Operator: Sta, Mnemonic: "STA", AddressingMode: AbsoluteLongIndexedX},
	{OpCode: 0x95, Operator: Sta, Mnemonic: "STA", AddressingMode: DirectPageIndexedX},
	{OpCode: 0x8e, Operator: Stx, Mnemonic: "STX", AddressingMode: Absolute},
	{OpCode: 0x86, Operator: Stx, Mnemonic: "STX", AddressingMode: DirectPage},
	{OpCode: 0x84, Operator: Sty, Mnemonic: "STY", AddressingMode: DirectPage},
	{OpCode: 0x9c, Operator: Stz, Mnemonic: "STZ", AddressingMode: Absolute},
	{OpCode: 0x64, Operator: Stz, Mnemonic: "STZ", AddressingMode: DirectPage},
	{OpCode: 0x9e, Operator: Stz, Mnemonic: "STZ", AddressingMode: AbsoluteIndexedX},
	{OpCode: 0x74, Operator: Stz, Mnemonic: "STZ", AddressingMode: DirectPageIndexedX},

	// arithmetic
	{OpCode: 0x69, Operator: Adc, Mnemonic: "ADC", AddressingMode: Immediate, Width: GateA},
	{OpCode: 0x6d, Operator: Adc, Mnemonic: "ADC", AddressingMode: Absolute},
	{OpCode: 0x65, Operator: Adc, Mnemonic: "ADC", AddressingMode: DirectPage},
	{OpCode: 0xe6, Operator: Inc, Mnemonic: "INC", AddressingMode: DirectPage},
	{OpCode: 0xe8, Operator: Inx, Mnemonic: "INX", AddressingMode: Implied},
	{OpCode: 0xc8, Operator: Iny, Mnemonic: "INY", AddressingMode: Implied},
	{OpCode: 0xca, Operator: Dex, Mnemonic: "DEX", AddressingMode: Implied},
	{OpCode: 0x88, Operator: Dey, Mnemonic: "DEY", AddressingMode: Implied},

	// shifts
	{OpCode: 0x0a, Operator: Asl, Mnemonic: "ASL", AddressingMode: Implied},

	// register to register transfer
	{OpCode: 0xaa, Operator: Tax, Mnemonic: "TAX", AddressingMode: Implied},
	{OpCode: 0xa8, Operator: Tay, Mnemonic: "TAY", AddressingMode: Implied},
	{OpCode: 0x7b, Operator: Tdc, Mnemonic: "TDC", AddressingMode: Implied},
	{OpCode: 0x9a, Operator: Txs, Mnemonic: "TXS", AddressingMode: Implied},
	{OpCode: 0xeb, Operator: Xba, Mnemonic: "XBA", AddressingMode: Implied},

	// block moves
	{OpCode: 0x54, Operator: Mvn, Mnemonic: "MVN", AddressingMode: BlockMove},

	// comparison
	{OpCode: 0xc9, Operator: Cmp, Mnemonic: "CMP", AddressingMode: Immediate, Width: GateA},
	{OpCode: 0xcd, Operator: Cmp, Mnemonic: "CMP", AddressingMode: Absolute},
	{OpCode: 0xc5, Operator: Cmp, Mnemonic: "CMP", AddressingMode: DirectPage},
	{OpCode: 0xdf, Operator: Cmp, Mnemonic: "CMP", AddressingMode: AbsoluteLongIndexedX},
	{OpCode: 0xe0, Operator: Cpx, Mnemonic: "CPX", AddressingMode: Immediate, Width: GateXY},

	// branching
	{OpCode: 0x90, Operator: Bcc, Mnemonic: "BCC", AddressingMode: Relative},
	{OpCode: 0xb0, Operator: Bcs, Mnemonic: "BCS", AddressingMode: Relative},
	{OpCode: 0xd0, Operator: Bne, Mnemonic: "BNE", AddressingMode: Relative},
	{OpCode: 0xf0, Operator: Beq, Mnemonic: "BEQ", AddressingMode: Relative},
	{OpCode: 0x80, Operator: Bra, Mnemonic: "BRA", AddressingMode: Relative},

	// push to stack
	{OpCode: 0x48, Operator: Pha, Mnemonic: "PHA", AddressingMode: Implied},
	{OpCode: 0x8b, Operator: Phb, Mnemonic: "PHB", AddressingMode: Implied},
	{OpCode: 0x0b, Operator: Phd, Mnemonic: "PHD", AddressingMode: Implied},
	{OpCode: 0xda, Operator: Phx, Mnemonic: "PHX", AddressingMode: Implied},
	{OpCode: 0x5a, Operator: Phy, Mnemonic: "PHY", AddressingMode: Implied},
	{OpCode: 0x08, Operator: Php, Mnemonic: "PHP", AddressingMode: Implied},
	{OpCode: 0xf4, Operator: Pea, Mnemonic: "PEA", AddressingMode: Absolute},

	// pull from stack
	{OpCode: 0x68, Operator: Pla, Mnemonic: "PLA", AddressingMode: Implied},
	{OpCode: 0xab, Operator: Plb, Mnemonic: "PLB", AddressingMode: Implied},
	{OpCode: 0x2b, Operator: Pld, Mnemonic: "PLD", AddressingMode: Implied},
	{OpCode: 0xfa, Operator: Plx, Mnemonic: "PLX", AddressingMode: Implied},
	{OpCode: 0x7a, Operator: Ply, Mnemonic: "PLY", AddressingMode: Implied},
	{OpCode: 0x28, Operator: Plp, Mnemonic: "PLP", AddressingMode: Implied},

	// jumps and subroutines
	{OpCode: 0x4c, Operator: Jmp, Mnemonic: "JMP", AddressingMode: Absolute},
	{OpCode: 0x20, Operator: Jsr, Mnemonic: "JSR", AddressingMode: Absolute},
	{OpCode: 0x22, Operator: Jsl, Mnemonic: "JSL", AddressingMode: AbsoluteLong},
	{OpCode: 0x60, Operator: Rts, Mnemonic: "RTS", AddressingMode: Implied},
	{OpCode: 0x6b, Operator: Rtl, Mnemonic: "RTL", AddressingMode: Implied},

	// status flag changes
	{OpCode: 0x18, Operator: Clc, Mnemonic: "CLC", AddressingMode: Implied},
	{OpCode: 0x78, Operator: Sei, Mnemonic: "SEI", AddressingMode: Implied},
	{OpCode: 0xc2, Operator: Rep, Mnemonic: "REP", AddressingMode: Immediate},
	{OpCode: 0xe2, Operator: Sep, Mnemonic: "SEP", AddressingMode: Immediate},
	{OpCode: 0xfb, Operator: Xce, Mnemonic: "XCE", AddressingMode: Implied},

	// interrupts
	{OpCode: 0x00, Operator: Brk, Mnemonic: "BRK", AddressingMode: Implied},
}

// GetDefinitions returns the table of implemented instructions, indexed by
// opcode. Opcodes without a definition return nil; the decoder resolves
// these to the UnknownDefn sentinel.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		table[definitions[i].OpCode] = &definitions[i]
	}
	return table
}
