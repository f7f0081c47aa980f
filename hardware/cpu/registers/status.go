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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// Bits four and five are dual-purpose. In native mode bit four selects the
// width of the index registers and bit five selects the width of the
// accumulator; in emulation mode bit four is the break flag and bit five is
// unused. Each of the two bits is stored exactly once and is exposed
// through accessors named for both meanings; the CPU chooses which accessor
// applies by consulting its emulation flag.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool

	// the dual-purpose bits. see the accessor functions
	bit4 bool
	bit5 bool
}

// NewStatusRegister is the preferred method of initialisation for the
// status register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status flags in the native mode order, NVMXDIZC. An
// upper-case letter indicates a set flag.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + 0x20)
		}
	}

	flag(sr.Negative, 'N')
	flag(sr.Overflow, 'V')
	flag(sr.bit5, 'M')
	flag(sr.bit4, 'X')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// IndexRegister8bit is the native mode meaning of bit four. When set, the X
// and Y registers operate on eight bits.
func (sr StatusRegister) IndexRegister8bit() bool {
	return sr.bit4
}

// SetIndexRegister8bit sets the native mode meaning of bit four.
func (sr *StatusRegister) SetIndexRegister8bit(set bool) {
	sr.bit4 = set
}

// Break is the emulation mode meaning of bit four.
func (sr StatusRegister) Break() bool {
	return sr.bit4
}

// SetBreak sets the emulation mode meaning of bit four.
func (sr *StatusRegister) SetBreak(set bool) {
	sr.bit4 = set
}

// MemorySelect8bit is the native mode meaning of bit five. When set, the
// accumulator operates on eight bits. The bit is unused in emulation mode.
func (sr StatusRegister) MemorySelect8bit() bool {
	return sr.bit5
}

// SetMemorySelect8bit sets the native mode meaning of bit five.
func (sr *StatusRegister) SetMemorySelect8bit(set bool) {
	sr.bit5 = set
}

// Value converts the StatusRegister struct into a value suitable for
// pushing onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Carry {
		v |= 0x01
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.bit4 {
		v |= 0x10
	}
	if sr.bit5 {
		v |= 0x20
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Negative {
		v |= 0x80
	}

	return v
}

// Load sets the flags according to the bits in the supplied value.
func (sr *StatusRegister) Load(v uint8) {
	sr.Carry = v&0x01 == 0x01
	sr.Zero = v&0x02 == 0x02
	sr.InterruptDisable = v&0x04 == 0x04
	sr.DecimalMode = v&0x08 == 0x08
	sr.bit4 = v&0x10 == 0x10
	sr.bit5 = v&0x20 == 0x20
	sr.Overflow = v&0x40 == 0x40
	sr.Negative = v&0x80 == 0x80
}

// SetNZ8 sets the Negative and Zero flags from an 8 bit result. The sign is
// taken from bit seven.
func (sr *StatusRegister) SetNZ8(val uint8) {
	sr.Negative = val&0x80 == 0x80
	sr.Zero = val == 0
}

// SetNZ16 sets the Negative and Zero flags from a 16 bit result. The sign
// is taken from bit fifteen.
func (sr *StatusRegister) SetNZ16(val uint16) {
	sr.Negative = val&0x8000 == 0x8000
	sr.Zero = val == 0
}

// Compare8 sets the Carry, Zero and Negative flags from the comparison of
// two 8 bit values. Carry is set when lhs is greater than or equal to rhs
// (unsigned).
func (sr *StatusRegister) Compare8(lhs uint8, rhs uint8) {
	res := lhs - rhs
	sr.SetNZ8(res)
	sr.Carry = lhs >= rhs
}

// Compare16 is the 16 bit form of Compare8.
func (sr *StatusRegister) Compare16(lhs uint16, rhs uint16) {
	res := lhs - rhs
	sr.SetNZ16(res)
	sr.Carry = lhs >= rhs
}
