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

// Package registers implements the registers found in the 65816. The three
// types are the: program counter, status register and the general Register
// type used for A, X, Y, the stack pointer and the direct page register.
//
// Unlike its 8 bit ancestors the 65816 changes the width of the A, X and Y
// registers at runtime, under control of the status register and the
// emulation flag. The Register type therefore always stores 16 bits and the
// width-sensitive operations come in pairs; the CPU decides at the point of
// execution which of the pair to call. The 8 bit forms keep the register
// within eight bits, clearing the upper byte.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly or through the SetNZ8()/SetNZ16() functions. For
// instance, in the CPU, we might have this sequence of function calls:
//
//	a.Load8(10)
//	sr.SetNZ8(a.Value8())
//
// The two dual-purpose status bits (bits four and five) are stored once
// each and are exposed through accessors named for both of their meanings.
package registers
