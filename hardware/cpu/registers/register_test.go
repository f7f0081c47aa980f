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

package registers_test

import (
	"testing"

	"github.com/gopher65816/gopher65816/hardware/cpu/registers"
	"github.com/gopher65816/gopher65816/test"
)

func TestLoad(t *testing.T) {
	r := registers.NewRegister(0, "A")

	r.Load(0x1234)
	test.Equate(t, r.Value(), 0x1234)
	test.Equate(t, r.Value8(), 0x34)

	// 8 bit loads clear the upper byte
	r.Load8(0x56)
	test.Equate(t, r.Value(), 0x0056)
}

func TestAdd(t *testing.T) {
	r := registers.NewRegister(0, "A")

	r.Load(0x0001)
	carry, overflow := r.Add(0x0001, false)
	test.Equate(t, r.Value(), 0x0002)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, false)

	// unsigned overflow wraps and sets carry
	r.Load(0xffff)
	carry, overflow = r.Add(0x0001, false)
	test.Equate(t, r.Value(), 0x0000)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// signed overflow
	r.Load(0x7fff)
	carry, overflow = r.Add(0x0001, false)
	test.Equate(t, r.Value(), 0x8000)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)

	// carry in
	r.Load(0x0000)
	carry, _ = r.Add(0x0000, true)
	test.Equate(t, r.Value(), 0x0001)
	test.Equate(t, carry, false)

	// adding 0xffff with carry leaves the register unchanged and the
	// carry set
	r.Load(0x0010)
	carry, _ = r.Add(0xffff, true)
	test.Equate(t, r.Value(), 0x0010)
	test.Equate(t, carry, true)
}

func TestAdd8(t *testing.T) {
	r := registers.NewRegister(0, "A")

	r.Load8(0xff)
	carry, overflow := r.Add8(0x01, false)
	test.Equate(t, r.Value(), 0x0000)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	r.Load8(0x7f)
	carry, overflow = r.Add8(0x01, false)
	test.Equate(t, r.Value(), 0x0080)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
}

func TestIncrementDecrement(t *testing.T) {
	r := registers.NewRegister(0xffff, "X")

	r.Increment()
	test.Equate(t, r.Value(), 0x0000)
	r.Decrement()
	test.Equate(t, r.Value(), 0xffff)

	// the 8 bit forms wrap at 8 bits and clear the upper byte
	r.Load(0x12ff)
	r.Increment8()
	test.Equate(t, r.Value(), 0x0000)
	r.Decrement8()
	test.Equate(t, r.Value(), 0x00ff)
}

func TestShift(t *testing.T) {
	r := registers.NewRegister(0x8001, "A")

	carry := r.ASL()
	test.Equate(t, r.Value(), 0x0002)
	test.Equate(t, carry, true)

	r.Load(0x0081)
	carry = r.ASL8()
	test.Equate(t, r.Value(), 0x0002)
	test.Equate(t, carry, true)
}

func TestSwap(t *testing.T) {
	r := registers.NewRegister(0x1234, "A")
	r.Swap()
	test.Equate(t, r.Value(), 0x3412)
	r.Swap()
	test.Equate(t, r.Value(), 0x1234)
}
