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

func TestStatusValueRoundTrip(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.Load(0xb5)
	test.Equate(t, sr.Value(), 0xb5)
	test.Equate(t, sr.Negative, true)
	test.Equate(t, sr.Overflow, false)
	test.Equate(t, sr.Carry, true)

	sr.Reset()
	test.Equate(t, sr.Value(), 0x00)
}

func TestDualPurposeBits(t *testing.T) {
	sr := registers.NewStatusRegister()

	// bit four is shared between the index width flag and the break
	// flag. setting one meaning is visible through the other
	sr.SetIndexRegister8bit(true)
	test.Equate(t, sr.Break(), true)
	test.Equate(t, sr.Value(), 0x10)

	sr.SetBreak(false)
	test.Equate(t, sr.IndexRegister8bit(), false)

	sr.SetMemorySelect8bit(true)
	test.Equate(t, sr.Value(), 0x20)
}

func TestStatusString(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.Equate(t, sr.String(), "nvmxdizc")

	sr.Zero = true
	sr.InterruptDisable = true
	test.Equate(t, sr.String(), "nvmxdIZc")

	sr.Load(0xff)
	test.Equate(t, sr.String(), "NVMXDIZC")
}

func TestSetNZ(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.SetNZ8(0x00)
	test.Equate(t, sr.Zero, true)
	test.Equate(t, sr.Negative, false)

	sr.SetNZ8(0x80)
	test.Equate(t, sr.Zero, false)
	test.Equate(t, sr.Negative, true)

	// the sign bit moves to bit fifteen for 16 bit results
	sr.SetNZ16(0x0080)
	test.Equate(t, sr.Negative, false)

	sr.SetNZ16(0x8000)
	test.Equate(t, sr.Negative, true)
}

func TestCompare(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.Compare8(0x40, 0x40)
	test.Equate(t, sr.Zero, true)
	test.Equate(t, sr.Carry, true)

	sr.Compare8(0x40, 0x41)
	test.Equate(t, sr.Zero, false)
	test.Equate(t, sr.Carry, false)
	test.Equate(t, sr.Negative, true)

	sr.Compare16(0x8000, 0x0001)
	test.Equate(t, sr.Carry, true)
	test.Equate(t, sr.Zero, false)
}
