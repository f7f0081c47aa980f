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

package cpu

import (
	"fmt"

	"github.com/gopher65816/gopher65816/hardware/cpu/execution"
	"github.com/gopher65816/gopher65816/hardware/cpu/instructions"
	"github.com/gopher65816/gopher65816/hardware/cpu/registers"
	"github.com/gopher65816/gopher65816/hardware/memory/cpubus"
	"github.com/gopher65816/gopher65816/hardware/memory/memorymap"
	"github.com/gopher65816/gopher65816/logger"
)

// BlockCopyChunk is the maximum number of bytes a block move instruction
// copies in one call to Step(). Longer moves are suspended and resumed
// on subsequent calls, with LastResult.Final remaining false until the
// counter in A has wrapped.
const BlockCopyChunk = 1024

// CPU implements the 65816 processor found in the console.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	D      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the banks applied to the 16-bit program counter and to bank
	// relative addressing modes
	ProgramBank uint8
	DataBank    uint8

	// Emulation forces all register widths to 8 bits regardless of the
	// status register width flags
	Emulation bool

	// the value of SP at reset or at the most recent TXS. used by
	// monitors to walk the stack
	StackBase uint16

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// state of a suspended block move instruction
	blockCopy struct {
		active  bool
		srcBank uint8
	}

	// the most recently decoded/executed instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU
// structure.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		D:            registers.NewRegister(0, "D"),
		SP:           registers.NewRegister(0, "SP"),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy
// shares the memory bus with the original. Used by disassemblers to
// decode ahead without disturbing the live CPU.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Reset reinitialises all registers. The program counter is not seeded
// here; use SetAddress() with the value of the cartridge reset vector.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.D.Load(0)
	mc.SP.Load(0x01ff)
	mc.StackBase = 0x01ff
	mc.ProgramBank = 0
	mc.DataBank = 0
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Emulation = true
	mc.blockCopy.active = false
	mc.LastResult.Reset()
}

func (mc *CPU) String() string {
	e := 'n'
	if mc.Emulation {
		e = 'e'
	}
	return fmt.Sprintf("%02x:%s %s %s %s %s %s [%s] %c",
		mc.ProgramBank, mc.PC.String(),
		mc.A.String(), mc.X.String(), mc.Y.String(),
		mc.D.String(), mc.SP.String(),
		mc.Status.String(), e)
}

// Address returns the full 24-bit address of the next instruction to be
// decoded.
func (mc *CPU) Address() uint32 {
	return memorymap.BankAddr(mc.ProgramBank, mc.PC.Address())
}

// SetAddress sets the program bank and program counter such that the
// next instruction is decoded from the supplied 24-bit address.
func (mc *CPU) SetAddress(address uint32) {
	bank, offset := memorymap.Decode(address)
	mc.ProgramBank = bank
	mc.PC.Load(offset)
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Defn == nil
}

// the width of the accumulator. the status flag is overridden whenever
// emulation mode is active.
func (mc *CPU) eightBitA() bool {
	return mc.Emulation || mc.Status.MemorySelect8bit()
}

// the width of the index registers.
func (mc *CPU) eightBitXY() bool {
	return mc.Emulation || mc.Status.IndexRegister8bit()
}

func (mc *CPU) fetch8() (uint8, error) {
	v, err := mc.mem.Read8(memorymap.BankAddr(mc.ProgramBank, mc.PC.Address()))
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	return v, nil
}

func (mc *CPU) fetch16() (uint16, error) {
	lo, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (mc *CPU) fetchLong() (uint32, error) {
	lo, err := mc.fetch16()
	if err != nil {
		return 0, err
	}
	bank, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	return uint32(bank)<<16 | uint32(lo), nil
}

// the stack lives in bank zero. SP points at the next free byte:
// decrement after a push, increment before a pull.
func (mc *CPU) push8(data uint8) error {
	err := mc.mem.Write8(memorymap.BankAddr(0, mc.SP.Value()), data)
	if err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 1)
	return nil
}

// 16-bit values cross the stack as a single word access.
func (mc *CPU) push16(data uint16) error {
	err := mc.mem.Write16(memorymap.BankAddr(0, mc.SP.Value()-1), data)
	if err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 2)
	return nil
}

func (mc *CPU) pull8() (uint8, error) {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read8(memorymap.BankAddr(0, mc.SP.Value()))
}

func (mc *CPU) pull16() (uint16, error) {
	mc.SP.Load(mc.SP.Value() + 2)
	return mc.mem.Read16(memorymap.BankAddr(0, mc.SP.Value()-1))
}

// Decode fetches and decodes the instruction at the current program
// address, leaving the details in LastResult. The program counter is
// advanced past the instruction. Unrecognised opcodes resolve to the
// UnknownDefn sentinel and leave the program counter where it was.
func (mc *CPU) Decode() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Address()

	opcode, err := mc.mem.Read8(mc.LastResult.Address)
	if err != nil {
		return err
	}
	mc.LastResult.ByteCount = 1

	defn := mc.instructions[opcode]
	if defn == nil {
		// PC deliberately not advanced. stepping past an unknown
		// opcode is a run loop decision, not ours
		mc.LastResult.Defn = instructions.UnknownDefn
		mc.LastResult.Final = true
		return nil
	}

	mc.PC.Add(1)
	mc.LastResult.Defn = defn

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand

	case instructions.Immediate:
		var eight bool
		switch defn.Width {
		case instructions.GateA:
			eight = mc.eightBitA()
		case instructions.GateXY:
			eight = mc.eightBitXY()
		default:
			eight = true
		}
		if eight {
			v, err := mc.fetch8()
			if err != nil {
				return err
			}
			mc.LastResult.InstructionData = uint32(v)
			mc.LastResult.ByteCount++
		} else {
			v, err := mc.fetch16()
			if err != nil {
				return err
			}
			mc.LastResult.InstructionData = uint32(v)
			mc.LastResult.Data16 = true
			mc.LastResult.ByteCount += 2
		}

	case instructions.Relative, instructions.DirectPage,
		instructions.DirectPageIndexedX, instructions.DirectPageIndirectLong:
		v, err := mc.fetch8()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint32(v)
		mc.LastResult.ByteCount++

	case instructions.Absolute, instructions.AbsoluteIndexedX,
		instructions.AbsoluteIndexedY:
		v, err := mc.fetch16()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint32(v)
		mc.LastResult.ByteCount += 2

	case instructions.AbsoluteLong, instructions.AbsoluteLongIndexedX:
		v, err := mc.fetchLong()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = v
		mc.LastResult.ByteCount += 3

	case instructions.BlockMove:
		dest, err := mc.fetch8()
		if err != nil {
			return err
		}
		src, err := mc.fetch8()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint32(dest) | uint32(src)<<8
		mc.LastResult.ByteCount += 2
	}

	return nil
}

// effectiveAddress resolves the addressing mode of the decoded
// instruction to a 24-bit address. Direct page addresses wrap at 16
// bits and always refer to bank zero. Bank-relative absolute addresses
// use the data bank; indexing is applied to the full 24-bit address.
func (mc *CPU) effectiveAddress() (uint32, error) {
	data := mc.LastResult.InstructionData

	switch mc.LastResult.Defn.AddressingMode {
	case instructions.Absolute:
		return memorymap.BankAddr(mc.DataBank, uint16(data)), nil
	case instructions.AbsoluteLong:
		return data, nil
	case instructions.AbsoluteIndexedX:
		return memorymap.BankAddr(mc.DataBank, uint16(data)) + uint32(mc.X.Value()), nil
	case instructions.AbsoluteIndexedY:
		return memorymap.BankAddr(mc.DataBank, uint16(data)) + uint32(mc.Y.Value()), nil
	case instructions.AbsoluteLongIndexedX:
		return data + uint32(mc.X.Value()), nil
	case instructions.DirectPage:
		return uint32(mc.D.Value() + uint16(data)), nil
	case instructions.DirectPageIndexedX:
		return uint32(mc.D.Value() + uint16(data) + mc.X.Value()), nil
	case instructions.DirectPageIndirectLong:
		return mc.mem.ReadLong(uint32(mc.D.Value() + uint16(data)))
	}

	return 0, fmt.Errorf("cpu: %s does not address memory", mc.LastResult.Defn.Mnemonic)
}

// read the instruction operand at the width indicated; an 8-bit read is
// zero-extended.
func (mc *CPU) loadOperand(eightBit bool) (uint16, error) {
	if mc.LastResult.Defn.AddressingMode == instructions.Immediate {
		return uint16(mc.LastResult.InstructionData), nil
	}

	addr, err := mc.effectiveAddress()
	if err != nil {
		return 0, err
	}
	if eightBit {
		v, err := mc.mem.Read8(addr)
		return uint16(v), err
	}
	return mc.mem.Read16(addr)
}

func (mc *CPU) store(addr uint32, data uint16, eightBit bool) error {
	if eightBit {
		return mc.mem.Write8(addr, uint8(data))
	}
	return mc.mem.Write16(addr, data)
}

// Step decodes and executes one instruction. A suspended block move is
// resumed instead of decoding a new instruction. Memory faults are
// returned as-is; the CPU is left in a consistent state and can be
// stepped again by the caller if it chooses to continue.
func (mc *CPU) Step() error {
	if mc.blockCopy.active {
		return mc.advanceBlockCopy()
	}

	err := mc.Decode()
	if err != nil {
		return err
	}

	defn := mc.LastResult.Defn
	if defn.Operator == instructions.Unknown {
		return nil
	}

	data := mc.LastResult.InstructionData

	switch defn.Operator {
	case instructions.Lda:
		v, err := mc.loadOperand(mc.eightBitA())
		if err != nil {
			return err
		}
		if mc.eightBitA() {
			mc.A.Load8(uint8(v))
			mc.Status.SetNZ8(uint8(v))
		} else {
			mc.A.Load(v)
			mc.Status.SetNZ16(v)
		}

	case instructions.Ldx:
		v, err := mc.loadOperand(mc.eightBitXY())
		if err != nil {
			return err
		}
		if mc.eightBitXY() {
			mc.X.Load8(uint8(v))
			mc.Status.SetNZ8(uint8(v))
		} else {
			mc.X.Load(v)
			mc.Status.SetNZ16(v)
		}

	case instructions.Ldy:
		v, err := mc.loadOperand(mc.eightBitXY())
		if err != nil {
			return err
		}
		if mc.eightBitXY() {
			mc.Y.Load8(uint8(v))
			mc.Status.SetNZ8(uint8(v))
		} else {
			mc.Y.Load(v)
			mc.Status.SetNZ16(v)
		}

	case instructions.Sta:
		addr, err := mc.effectiveAddress()
		if err != nil {
			return err
		}
		err = mc.store(addr, mc.A.Value(), mc.eightBitA())
		if err != nil {
			return err
		}

	case instructions.Stx:
		addr, err := mc.effectiveAddress()
		if err != nil {
			return err
		}
		err = mc.store(addr, mc.X.Value(), mc.eightBitXY())
		if err != nil {
			return err
		}

	case instructions.Sty:
		addr, err := mc.effectiveAddress()
		if err != nil {
			return err
		}
		err = mc.store(addr, mc.Y.Value(), mc.eightBitXY())
		if err != nil {
			return err
		}

	case instructions.Stz:
		addr, err := mc.effectiveAddress()
		if err != nil {
			return err
		}
		err = mc.store(addr, 0, mc.eightBitA())
		if err != nil {
			return err
		}

	case instructions.Adc:
		v, err := mc.loadOperand(mc.eightBitA())
		if err != nil {
			return err
		}
		var carry, overflow bool
		if mc.eightBitA() {
			carry, overflow = mc.A.Add8(uint8(v), mc.Status.Carry)
			mc.Status.SetNZ8(mc.A.Value8())
		} else {
			carry, overflow = mc.A.Add(v, mc.Status.Carry)
			mc.Status.SetNZ16(mc.A.Value())
		}
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow

	case instructions.Inc:
		addr, err := mc.effectiveAddress()
		if err != nil {
			return err
		}
		if mc.eightBitA() {
			v, err := mc.mem.Read8(addr)
			if err != nil {
				return err
			}
			v++
			err = mc.mem.Write8(addr, v)
			if err != nil {
				return err
			}
			mc.Status.SetNZ8(v)
		} else {
			v, err := mc.mem.Read16(addr)
			if err != nil {
				return err
			}
			v++
			err = mc.mem.Write16(addr, v)
			if err != nil {
				return err
			}
			mc.Status.SetNZ16(v)
		}

	case instructions.Inx:
		if mc.eightBitXY() {
			mc.X.Increment8()
			mc.Status.SetNZ8(mc.X.Value8())
		} else {
			mc.X.Increment()
			mc.Status.SetNZ16(mc.X.Value())
		}

	case instructions.Iny:
		if mc.eightBitXY() {
			mc.Y.Increment8()
			mc.Status.SetNZ8(mc.Y.Value8())
		} else {
			mc.Y.Increment()
			mc.Status.SetNZ16(mc.Y.Value())
		}

	case instructions.Dex:
		if mc.eightBitXY() {
			mc.X.Decrement8()
			mc.Status.SetNZ8(mc.X.Value8())
		} else {
			mc.X.Decrement()
			mc.Status.SetNZ16(mc.X.Value())
		}

	case instructions.Dey:
		if mc.eightBitXY() {
			mc.Y.Decrement8()
			mc.Status.SetNZ8(mc.Y.Value8())
		} else {
			mc.Y.Decrement()
			mc.Status.SetNZ16(mc.Y.Value())
		}

	case instructions.Asl:
		if mc.eightBitA() {
			mc.Status.Carry = mc.A.ASL8()
			mc.Status.SetNZ8(mc.A.Value8())
		} else {
			mc.Status.Carry = mc.A.ASL()
			mc.Status.SetNZ16(mc.A.Value())
		}

	case instructions.Tax:
		if mc.eightBitXY() {
			mc.X.Load8(mc.A.Value8())
			mc.Status.SetNZ8(mc.X.Value8())
		} else {
			mc.X.Load(mc.A.Value())
			mc.Status.SetNZ16(mc.X.Value())
		}

	case instructions.Tay:
		if mc.eightBitXY() {
			mc.Y.Load8(mc.A.Value8())
			mc.Status.SetNZ8(mc.Y.Value8())
		} else {
			mc.Y.Load(mc.A.Value())
			mc.Status.SetNZ16(mc.Y.Value())
		}

	case instructions.Tdc:
		// always a 16-bit transfer, whatever the width flags say
		mc.A.Load(mc.D.Value())
		mc.Status.SetNZ16(mc.A.Value())

	case instructions.Txs:
		if mc.Emulation {
			mc.SP.Load(0x0100 | uint16(mc.X.Value8()))
		} else {
			mc.SP.Load(mc.X.Value())
		}
		mc.StackBase = mc.SP.Value()

	case instructions.Xba:
		mc.A.Swap()
		mc.Status.SetNZ8(mc.A.Value8())

	case instructions.Mvn:
		mc.DataBank = uint8(data)
		mc.blockCopy.active = true
		mc.blockCopy.srcBank = uint8(data >> 8)
		return mc.advanceBlockCopy()

	case instructions.Cmp:
		v, err := mc.loadOperand(mc.eightBitA())
		if err != nil {
			return err
		}
		if mc.eightBitA() {
			mc.Status.Compare8(mc.A.Value8(), uint8(v))
		} else {
			mc.Status.Compare16(mc.A.Value(), v)
		}

	case instructions.Cpx:
		v, err := mc.loadOperand(mc.eightBitXY())
		if err != nil {
			return err
		}
		if mc.eightBitXY() {
			mc.Status.Compare8(mc.X.Value8(), uint8(v))
		} else {
			mc.Status.Compare16(mc.X.Value(), v)
		}

	case instructions.Bcc:
		if !mc.Status.Carry {
			mc.PC.AddDisplacement(uint8(data))
		}

	case instructions.Bcs:
		if mc.Status.Carry {
			mc.PC.AddDisplacement(uint8(data))
		}

	case instructions.Bne:
		if !mc.Status.Zero {
			mc.PC.AddDisplacement(uint8(data))
		}

	case instructions.Beq:
		if mc.Status.Zero {
			mc.PC.AddDisplacement(uint8(data))
		}

	case instructions.Bra:
		mc.PC.AddDisplacement(uint8(data))

	case instructions.Pha:
		if mc.eightBitA() {
			err = mc.push8(mc.A.Value8())
		} else {
			err = mc.push16(mc.A.Value())
		}
		if err != nil {
			return err
		}

	case instructions.Phb:
		err = mc.push8(mc.DataBank)
		if err != nil {
			return err
		}

	case instructions.Phd:
		err = mc.push16(mc.D.Value())
		if err != nil {
			return err
		}

	case instructions.Phx:
		if mc.eightBitXY() {
			err = mc.push8(mc.X.Value8())
		} else {
			err = mc.push16(mc.X.Value())
		}
		if err != nil {
			return err
		}

	case instructions.Phy:
		if mc.eightBitXY() {
			err = mc.push8(mc.Y.Value8())
		} else {
			err = mc.push16(mc.Y.Value())
		}
		if err != nil {
			return err
		}

	case instructions.Php:
		err = mc.push8(mc.Status.Value())
		if err != nil {
			return err
		}

	case instructions.Pea:
		err = mc.push16(uint16(data))
		if err != nil {
			return err
		}

	case instructions.Pla:
		if mc.eightBitA() {
			v, err := mc.pull8()
			if err != nil {
				return err
			}
			mc.A.Load8(v)
			mc.Status.SetNZ8(v)
		} else {
			v, err := mc.pull16()
			if err != nil {
				return err
			}
			mc.A.Load(v)
			mc.Status.SetNZ16(v)
		}

	case instructions.Plb:
		v, err := mc.pull8()
		if err != nil {
			return err
		}
		mc.DataBank = v
		mc.Status.SetNZ8(v)

	case instructions.Pld:
		v, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.D.Load(v)
		mc.Status.SetNZ16(v)

	case instructions.Plx:
		if mc.eightBitXY() {
			v, err := mc.pull8()
			if err != nil {
				return err
			}
			mc.X.Load8(v)
			mc.Status.SetNZ8(v)
		} else {
			v, err := mc.pull16()
			if err != nil {
				return err
			}
			mc.X.Load(v)
			mc.Status.SetNZ16(v)
		}

	case instructions.Ply:
		if mc.eightBitXY() {
			v, err := mc.pull8()
			if err != nil {
				return err
			}
			mc.Y.Load8(v)
			mc.Status.SetNZ8(v)
		} else {
			v, err := mc.pull16()
			if err != nil {
				return err
			}
			mc.Y.Load(v)
			mc.Status.SetNZ16(v)
		}

	case instructions.Plp:
		v, err := mc.pull8()
		if err != nil {
			return err
		}
		mc.Status.Load(v)

	case instructions.Jmp:
		mc.PC.Load(uint16(data))

	case instructions.Jsr:
		err = mc.push16(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(uint16(data))

	case instructions.Jsl:
		err = mc.push16(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		err = mc.push8(mc.ProgramBank)
		if err != nil {
			return err
		}
		mc.ProgramBank = uint8(data >> 16)
		mc.PC.Load(uint16(data))

	case instructions.Rts:
		v, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(v + 1)

	case instructions.Rtl:
		bank, err := mc.pull8()
		if err != nil {
			return err
		}
		v, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.ProgramBank = bank
		mc.PC.Load(v + 1)

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Rep:
		mc.Status.Load(mc.Status.Value() &^ uint8(data))

	case instructions.Sep:
		mc.Status.Load(mc.Status.Value() | uint8(data))

	case instructions.Xce:
		// the width change takes effect from the very next step
		c := mc.Status.Carry
		mc.Status.Carry = !c
		mc.Emulation = c

	case instructions.Brk:
		// interrupts are not emulated

	default:
		return fmt.Errorf("cpu: unimplemented operator %d", defn.Operator)
	}

	mc.LastResult.Final = true

	return nil
}

// advanceBlockCopy copies up to BlockCopyChunk bytes of a block move.
// The counter lives in A and the cursors in X and Y, so the move
// survives across steps with no hidden state other than the source
// bank.
func (mc *CPU) advanceBlockCopy() error {
	for i := 0; i < BlockCopyChunk; i++ {
		if mc.A.Value() == 0xffff {
			mc.blockCopy.active = false
			mc.LastResult.Final = true
			return nil
		}

		v, err := mc.mem.Read8(memorymap.BankAddr(mc.blockCopy.srcBank, mc.X.Value()))
		if err != nil {
			return err
		}
		err = mc.mem.Write8(memorymap.BankAddr(mc.DataBank, mc.Y.Value()), v)
		if err != nil {
			return err
		}

		mc.A.Decrement()
		mc.X.Increment()
		mc.Y.Increment()
	}

	if mc.A.Value() == 0xffff {
		mc.blockCopy.active = false
		mc.LastResult.Final = true
		return nil
	}

	logger.Logf("cpu", "block move suspended with %d bytes remaining", int(mc.A.Value())+1)
	mc.LastResult.Final = false

	return nil
}
