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

package memorymap_test

import (
	"testing"

	"github.com/gopher65816/gopher65816/hardware/memory/memorymap"
	"github.com/gopher65816/gopher65816/test"
)

func TestBankAddr(t *testing.T) {
	test.Equate(t, memorymap.BankAddr(0x7e, 0x0010), 0x7e0010)
	test.Equate(t, memorymap.BankAddr(0x00, 0xffff), 0x00ffff)

	bank, offset := memorymap.Decode(0x123456)
	test.Equate(t, bank, 0x12)
	test.Equate(t, offset, 0x3456)
}

func TestMapAddress(t *testing.T) {
	mapping := func(address uint32, area memorymap.Area, idx uint32) {
		t.Helper()
		a, i := memorymap.MapAddress(address)
		if a != area {
			t.Errorf("address %#06x mapped to %s (wanted %s)", address, a, area)
		}
		test.Equate(t, i, idx)
	}

	// RAM window and mirrors
	mapping(0x000000, memorymap.RAM, 0x0000)
	mapping(0x001fff, memorymap.RAM, 0x1fff)
	mapping(0x3f0010, memorymap.RAM, 0x0010)
	mapping(0x7e0010, memorymap.RAM, 0x0010)
	mapping(0x7e8000, memorymap.RAM, 0x8000)

	// APU IO scratch registers
	mapping(0x002140, memorymap.APUIO, 0)
	mapping(0x002143, memorymap.APUIO, 3)

	// unimplemented hardware registers
	mapping(0x002000, memorymap.Placeholder, 0x2000)
	mapping(0x004200, memorymap.Placeholder, 0x4200)

	// cartridge windows
	mapping(0x008000, memorymap.Cartridge, 0x0000)
	mapping(0x018000, memorymap.Cartridge, 0x8000)
	mapping(0x01ffff, memorymap.Cartridge, 0xffff)
	mapping(0x3fffff, memorymap.Cartridge, 0x3f*0x8000+0x7fff)

	// everything else is undefined
	mapping(0x7f0000, memorymap.Undefined, 0)
	mapping(0x400000, memorymap.Undefined, 0)
	mapping(0xff8000, memorymap.Undefined, 0)
}
