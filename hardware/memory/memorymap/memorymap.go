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

// Package memorymap facilitates the decoding of 24-bit addresses into
// the correct memory area. The console uses the "LoROM" arrangement:
// each bank in the system area maps a 32KB cartridge window into its
// upper half, with work RAM and hardware registers visible in the lower
// half.
//
// MapAddress() is used to identify the area an address points to, along
// with the index of the accessed byte within that area. For example,
// offset 0x8000 of bank 0x01 maps to index 0x8000 of the cartridge
// area.
package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas in the console.
const (
	Undefined Area = iota
	RAM
	APUIO
	Placeholder
	Cartridge
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case APUIO:
		return "APUIO"
	case Placeholder:
		return "Placeholder"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The origin and memtop of each memory area within a system bank.
const (
	OriginRAM   = uint16(0x0000)
	MemtopRAM   = uint16(0x1fff)
	OriginAPUIO = uint16(0x2140)
	MemtopAPUIO = uint16(0x2143)
	OriginROM   = uint16(0x8000)
	MemtopROM   = uint16(0xffff)
)

// Banks 0x00 to MemtopSystemBank share the system layout. RAMBank
// exposes the full 64KB of work RAM.
const (
	MemtopSystemBank = uint8(0x3f)
	RAMBank          = uint8(0x7e)
)

// ROMBankSize is the number of cartridge bytes visible in each system
// bank.
const ROMBankSize = uint32(0x8000)

// BankAddr packs a bank number and a 16-bit offset into a 24-bit
// address.
func BankAddr(bank uint8, offset uint16) uint32 {
	return uint32(bank)<<16 | uint32(offset)
}

// Decode splits a 24-bit address into its bank and offset parts.
func Decode(address uint32) (bank uint8, offset uint16) {
	return uint8(address >> 16), uint16(address)
}

// MapAddress identifies the memory area an address points to and the
// index of the addressed byte within that area. Addresses that map to
// no area at all return the Undefined area.
func MapAddress(address uint32) (Area, uint32) {
	bank, offset := Decode(address)

	if bank == RAMBank {
		return RAM, uint32(offset)
	}

	if bank > MemtopSystemBank {
		return Undefined, 0
	}

	switch {
	case offset <= MemtopRAM:
		return RAM, uint32(offset)
	case offset >= OriginAPUIO && offset <= MemtopAPUIO:
		return APUIO, uint32(offset - OriginAPUIO)
	case offset >= OriginROM:
		return Cartridge, uint32(offset-OriginROM) + uint32(bank)*ROMBankSize
	}

	return Placeholder, uint32(offset)
}
