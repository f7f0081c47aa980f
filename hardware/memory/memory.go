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

// Package memory implements the console memory system as seen by the
// CPU. Address decoding is handled by the memorymap package.
package memory

import (
	"fmt"

	"github.com/gopher65816/gopher65816/hardware/memory/cpubus"
	"github.com/gopher65816/gopher65816/hardware/memory/memorymap"
)

// ResetVector is the cartridge index of the 16-bit reset vector.
const ResetVector = uint32(0x7ffc)

// Memory is the monolithic representation of the memory in the console.
type Memory struct {
	ram   []uint8
	cart  []uint8
	apuio [4]uint8
}

// NewMemory is the preferred method of initialisation for Memory. The
// cartridge data is referenced directly, not copied.
func NewMemory(cart []uint8) *Memory {
	mem := &Memory{
		ram:  make([]uint8, 0x10000),
		cart: cart,
	}
	mem.Reset()
	return mem
}

// Reset contents of memory to the power-on state. Cartridge data is
// unaffected.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}

	// power-on handshake values for the APU IO ports
	mem.apuio = [4]uint8{0xaa, 0xbb, 0x00, 0x00}
}

// ResetVector returns the address the CPU starts execution from, as
// stored in the cartridge.
func (mem *Memory) ResetVector() (uint16, error) {
	if uint32(len(mem.cart)) < ResetVector+2 {
		return 0, fmt.Errorf("%w: cartridge too small for reset vector", cpubus.MemoryFault)
	}
	return uint16(mem.cart[ResetVector]) | uint16(mem.cart[ResetVector+1])<<8, nil
}

// Read8 is an implementation of the cpubus.Memory interface.
func (mem *Memory) Read8(address uint32) (uint8, error) {
	area, idx := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.ram[idx], nil
	case memorymap.APUIO:
		return mem.apuio[idx], nil
	case memorymap.Placeholder:
		return 0, nil
	case memorymap.Cartridge:
		if idx >= uint32(len(mem.cart)) {
			return 0, fmt.Errorf("%w: read of unmapped cartridge address %#06x", cpubus.MemoryFault, address)
		}
		return mem.cart[idx], nil
	}

	return 0, fmt.Errorf("%w: read of unmapped address %#06x", cpubus.MemoryFault, address)
}

// Read16 is an implementation of the cpubus.Memory interface.
func (mem *Memory) Read16(address uint32) (uint16, error) {
	lo, err := mem.Read8(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read8(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// ReadLong is an implementation of the cpubus.Memory interface.
func (mem *Memory) ReadLong(address uint32) (uint32, error) {
	lo, err := mem.Read16(address)
	if err != nil {
		return 0, err
	}
	bank, err := mem.Read8(address + 2)
	if err != nil {
		return 0, err
	}
	return uint32(bank)<<16 | uint32(lo), nil
}

// Write8 is an implementation of the cpubus.Memory interface.
func (mem *Memory) Write8(address uint32, data uint8) error {
	area, idx := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.ram[idx] = data
		return nil
	case memorymap.APUIO:
		mem.apuio[idx] = data
		return nil
	case memorymap.Placeholder:
		// unemulated hardware registers absorb writes
		return nil
	case memorymap.Cartridge:
		// ROM is not writeable
		return nil
	}

	return fmt.Errorf("%w: write of unmapped address %#06x", cpubus.MemoryFault, address)
}

// Write16 is an implementation of the cpubus.Memory interface.
func (mem *Memory) Write16(address uint32, data uint16) error {
	if err := mem.Write8(address, uint8(data)); err != nil {
		return err
	}
	return mem.Write8(address+1, uint8(data>>8))
}
