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

// Package cpubus defines the memory bus as seen from the CPU. Addresses
// are full 24-bit bank:offset values packed into a uint32.
package cpubus

import "errors"

// MemoryFault is returned by bus implementations when an access cannot
// be satisfied. Implementations wrap it with detail about the failing
// address; callers test for it with errors.Is().
//
// A fault leaves the bus unchanged. The CPU stops cleanly on a fault
// and can be resumed.
var MemoryFault = errors.New("memory fault")

// Memory defines the operations for the memory system as seen by the
// CPU. Multi-byte accesses are little-endian.
type Memory interface {
	Read8(address uint32) (uint8, error)
	Read16(address uint32) (uint16, error)

	// ReadLong reads a 24-bit pointer, returned in the low bits of the
	// uint32
	ReadLong(address uint32) (uint32, error)

	Write8(address uint32, data uint8) error
	Write16(address uint32, data uint16) error
}
