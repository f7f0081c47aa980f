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

// Package hardware is the base package for the emulated machine. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and ties the CPU to the
// memory it addresses. From here the emulation can either be run
// continuously, with a callback to check for continuation, or stepped
// one instruction at a time.
package hardware
