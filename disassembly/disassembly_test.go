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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/gopher65816/gopher65816/disassembly"
	"github.com/gopher65816/gopher65816/hardware/cpu"
	"github.com/gopher65816/gopher65816/test"
)

type mockMem struct {
	internal map[uint32]uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make(map[uint32]uint8)}
}

func (mem *mockMem) put(origin uint32, bytes ...uint8) {
	for i, b := range bytes {
		mem.internal[origin+uint32(i)] = b
	}
}

func (mem *mockMem) Read8(address uint32) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Read16(address uint32) (uint16, error) {
	lo, _ := mem.Read8(address)
	hi, _ := mem.Read8(address + 1)
	return uint16(lo) | uint16(hi)<<8, nil
}

func (mem *mockMem) ReadLong(address uint32) (uint32, error) {
	lo, _ := mem.Read16(address)
	bank, _ := mem.Read8(address + 2)
	return uint32(bank)<<16 | uint32(lo), nil
}

func (mem *mockMem) Write8(address uint32, data uint8) error {
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Write16(address uint32, data uint16) error {
	mem.Write8(address, uint8(data))
	return mem.Write8(address+1, uint8(data>>8))
}

// decode the instruction at the supplied address and render it.
func render(t *testing.T, mc *cpu.CPU, address uint32) string {
	t.Helper()
	mc.SetAddress(address)
	err := mc.Decode()
	if err != nil {
		t.Fatal(err)
	}
	return disassembly.FormatResult(mc.LastResult)
}

func TestFormatResult(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.put(0x4000, 0xa9, 0x42) // LDA immediate, 8-bit width
	mem.put(0x4010, 0xad, 0x00, 0x10)
	mem.put(0x4020, 0xa5, 0x10)
	mem.put(0x4030, 0xa7, 0x20)
	mem.put(0x4040, 0xbd, 0x00, 0x10)
	mem.put(0x4050, 0xb9, 0x00, 0x10)
	mem.put(0x4060, 0xbf, 0x00, 0x30, 0x02)
	mem.put(0x4070, 0x95, 0x10)
	mem.put(0x4080, 0x22, 0x00, 0x41, 0x02)
	mem.put(0x4090, 0x80, 0x10)
	mem.put(0x40a0, 0x80, 0xf0)
	mem.put(0x40b0, 0x54, 0x02, 0x01)
	mem.put(0x40c0, 0xc2, 0x30)
	mem.put(0x40d0, 0xfb)
	mem.put(0x40e0, 0xea)

	test.Equate(t, render(t, mc, 0x4000), "LDA #$42")
	test.Equate(t, render(t, mc, 0x4010), "LDA $1000")
	test.Equate(t, render(t, mc, 0x4020), "LDA $10")
	test.Equate(t, render(t, mc, 0x4030), "LDA [$20]")
	test.Equate(t, render(t, mc, 0x4040), "LDA $1000,X")
	test.Equate(t, render(t, mc, 0x4050), "LDA $1000,Y")
	test.Equate(t, render(t, mc, 0x4060), "LDA $023000,X")
	test.Equate(t, render(t, mc, 0x4070), "STA $10,X")
	test.Equate(t, render(t, mc, 0x4080), "JSL $024100")
	test.Equate(t, render(t, mc, 0x4090), "BRA +$10")
	test.Equate(t, render(t, mc, 0x40a0), "BRA -$10")
	test.Equate(t, render(t, mc, 0x40b0), "MVN $01,$02")
	test.Equate(t, render(t, mc, 0x40c0), "REP #$30")
	test.Equate(t, render(t, mc, 0x40d0), "XCE")
	test.Equate(t, render(t, mc, 0x40e0), "???")
}

func TestFormatResult16bit(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// immediate operands widen with the accumulator
	mc.Emulation = false
	mem.put(0x4000, 0xa9, 0x34, 0x12)
	test.Equate(t, render(t, mc, 0x4000), "LDA #$1234")

	mc.Status.SetMemorySelect8bit(true)
	mem.put(0x4010, 0xa9, 0x42)
	test.Equate(t, render(t, mc, 0x4010), "LDA #$42")
}

func TestFromMemory(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.SetAddress(0x8000)

	mem.put(0x8000, 0xa9, 0x42, 0x8d, 0x00, 0x10, 0xea)

	s := strings.Builder{}
	err := disassembly.FromMemory(&s, mc, 10)
	test.ExpectedSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.Equate(t, len(lines), 3)
	test.Equate(t, lines[0], "00:8000 LDA #$42")
	test.Equate(t, lines[1], "00:8002 STA $1000")
	test.Equate(t, lines[2], "00:8005 ???")

	// the live CPU is not disturbed
	test.Equate(t, mc.PC.Address(), 0x8000)
}
