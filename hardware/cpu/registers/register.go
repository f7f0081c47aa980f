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
	"fmt"
)

// Register is the general purpose 16 bit register type, used for A, X and Y
// as well as the stack pointer and the direct page register.
type Register struct {
	label string
	value uint16
}

// NewRegister creates a new register with an initial value and a label.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the full 16 bit value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Value8 returns the low byte of the register.
func (r Register) Value8() uint8 {
	return uint8(r.value)
}

// Load a 16 bit value into the register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// Load8 loads an 8 bit value into the register, clearing the upper byte.
func (r *Register) Load8(val uint8) {
	r.value = uint16(val)
}

// Add value to register with carry, as a 16 bit operation. Returns carry and
// overflow states. The returned carry is true when the wrapped result is
// numerically less than the value of the register before the addition.
func (r *Register) Add(val uint16, carry bool) (rcarry bool, overflow bool) {
	// note value of register before we change it
	v := r.value

	r.value += val
	if carry {
		r.value++
	}

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	overflow = ((v ^ r.value) & (val ^ r.value) & 0x8000) != 0

	// carry detection
	if v == r.value {
		rcarry = carry
	} else {
		rcarry = r.value < v
	}

	return rcarry, overflow
}

// Add8 is the 8 bit form of Add. The upper byte of the register takes no
// part in the addition and is cleared.
func (r *Register) Add8(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := uint8(r.value)

	res := v + val
	if carry {
		res++
	}

	overflow = ((v ^ res) & (val ^ res) & 0x80) != 0

	if v == res {
		rcarry = carry
	} else {
		rcarry = res < v
	}

	r.value = uint16(res)

	return rcarry, overflow
}

// Increment the register, wrapping at 16 bits.
func (r *Register) Increment() {
	r.value++
}

// Increment8 increments the low byte of the register, wrapping at 8 bits
// and clearing the upper byte.
func (r *Register) Increment8() {
	r.value = uint16(uint8(r.value) + 1)
}

// Decrement the register, wrapping at 16 bits.
func (r *Register) Decrement() {
	r.value--
}

// Decrement8 decrements the low byte of the register, wrapping at 8 bits
// and clearing the upper byte.
func (r *Register) Decrement8() {
	r.value = uint16(uint8(r.value) - 1)
}

// ASL (arithmetic shift left) shifts the register one bit to the left as a
// 16 bit operation. Returns the most significant bit as it was before the
// shift. If we think of the ASL operation as a multiply by two then the
// return value is the carry bit.
func (r *Register) ASL() bool {
	carry := r.value&0x8000 == 0x8000
	r.value <<= 1
	return carry
}

// ASL8 is the 8 bit form of ASL. The carry comes from bit seven and the
// upper byte of the register is cleared.
func (r *Register) ASL8() bool {
	v := uint8(r.value)
	carry := v&0x80 == 0x80
	r.value = uint16(v << 1)
	return carry
}

// Swap exchanges the high and low bytes of the register.
func (r *Register) Swap() {
	r.value = r.value<<8 | r.value>>8
}
