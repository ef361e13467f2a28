// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package memorymap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

// register is a device that records the last address written to it
type register struct {
	address uint16
	data    uint8
	writes  int
}

func (r *register) Write(address uint16, data uint8) error {
	r.address = address
	r.data = data
	r.writes++
	return nil
}

func TestSmallRAM(t *testing.T) {
	ram := memory.NewRAM(0x0000, 0x0100)
	mem, err := memorymap.New(memorymap.Map("RAM", 0x0000, 0x00ff, ram))
	test.DemandSuccess(t, err)

	_, err = mem.Read(0x0100)
	var rerr cpubus.ReadError
	test.ExpectSuccess(t, errors.As(err, &rerr))
	test.ExpectEquality(t, rerr, cpubus.ReadError{Address: 0x0100})

	err = mem.Write(0x0100, 0x00)
	var werr cpubus.WriteError
	test.ExpectSuccess(t, errors.As(err, &werr))
	test.ExpectEquality(t, werr.Address, 0x0100)

	test.ExpectSuccess(t, mem.Write(0x0042, 0x99))
	v, err := mem.Read(0x0042)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x99)
}

func TestStrict(t *testing.T) {
	ram := memory.NewRAM(0x0000, 0x0100)

	_, err := memorymap.NewStrict(memorymap.Map("RAM", 0x0000, 0x00ff, ram))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "memorymap: no reader for address %04x"))

	// mirrored across the entire address space
	mem, err := memorymap.NewStrict(memorymap.Map("RAM", 0x0000, 0xffff, ram))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mem.Write(0xff01, 0x10))
	v, _ := mem.Read(0x0001)
	test.ExpectEquality(t, v, 0x10)

	// write-only register at the top of memory leaves the top address with
	// no reader
	reg := &register{}
	_, err = memorymap.NewStrict(
		memorymap.Map("RAM", 0x0000, 0xfffe, ram),
		memorymap.MapWriter("REG", 0xffff, 0xffff, reg),
	)
	test.ExpectSuccess(t, curated.Is(err, "memorymap: no reader for address %04x"))
	test.ExpectEquality(t, err.Error(), "memorymap: no reader for address ffff")
}

func TestInvalidBindings(t *testing.T) {
	ram := memory.NewRAM(0x0000, 0x0100)

	_, err := memorymap.New(memorymap.Map("", 0x0000, 0x00ff, ram))
	test.ExpectFailure(t, err)

	_, err = memorymap.New(memorymap.Map("RAM", 0x0100, 0x00ff, ram))
	test.ExpectFailure(t, err)

	_, err = memorymap.New(memorymap.Binding{Label: "nothing", Origin: 0x0000, Memtop: 0x00ff})
	test.ExpectFailure(t, err)
}

func TestFirstMatchWins(t *testing.T) {
	a := memory.NewRAM(0x0000, 0x1000)
	b := memory.NewRAM(0x0000, 0x1000)

	mem, err := memorymap.New(
		memorymap.Map("A", 0x0000, 0x07ff, a),
		memorymap.Map("B", 0x0000, 0x0fff, b),
	)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Write(0x0010, 0x01))
	test.ExpectSuccess(t, mem.Write(0x0810, 0x02))

	v, _ := a.Read(0x0010)
	test.ExpectEquality(t, v, 0x01)
	v, _ = b.Read(0x0010)
	test.ExpectEquality(t, v, 0x00)
	v, _ = b.Read(0x0810)
	test.ExpectEquality(t, v, 0x02)

	l, ok := mem.Owner(0x07ff, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "A")
	l, ok = mem.Owner(0x0800, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "B")
	_, ok = mem.Owner(0x1000, false)
	test.ExpectFailure(t, ok)
}

func TestSplitReadWrite(t *testing.T) {
	ram := memory.NewRAM(0x0000, 0x0100)
	reg := &register{}

	mem, err := memorymap.New(
		memorymap.MapWriter("REG", 0x0080, 0x0080, reg),
		memorymap.Map("RAM", 0x0000, 0x00ff, ram),
	)
	test.DemandSuccess(t, err)

	// write goes to the register and not the RAM
	test.ExpectSuccess(t, mem.Write(0x0080, 0x33))
	test.ExpectEquality(t, reg.writes, 1)
	test.ExpectEquality(t, reg.address, 0x0080)
	test.ExpectEquality(t, reg.data, 0x33)

	// read of the same address comes from the RAM
	v, err := mem.Read(0x0080)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)

	// the register does not support peek/poke
	test.ExpectFailure(t, mem.Poke(0x0080, 0x01))
	test.ExpectSuccess(t, mem.Poke(0x0081, 0x01))
	v, err = mem.Peek(0x0081)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x01)
}

func TestROMWrite(t *testing.T) {
	rom, err := memory.NewROM(0xfffc, []uint8{0x00, 0x02, 0x00, 0x00})
	test.DemandSuccess(t, err)

	mem, err := memorymap.New(memorymap.Map("ROM", 0xfffc, 0xffff, rom))
	test.DemandSuccess(t, err)

	err = mem.Write(0xfffd, 0x00)
	var werr cpubus.WriteError
	test.ExpectSuccess(t, errors.As(err, &werr))
	test.ExpectEquality(t, werr.Address, 0xfffd)

	v, err := mem.Read(0xfffd)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x02)
}

func TestShadowed(t *testing.T) {
	logger.Clear()

	a := memory.NewRAM(0x0000, 0x0100)
	b := memory.NewRAM(0x0000, 0x0100)
	_, err := memorymap.New(
		memorymap.Map("A", 0x0000, 0x00ff, a),
		memorymap.Map("B", 0x0010, 0x001f, b),
	)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "memorymap: B (0010 -> 001f) is entirely shadowed\n")
}

func TestSummary(t *testing.T) {
	ram := memory.NewRAM(0x0000, 0x0800)
	rom, err := memory.NewROM(0xc000, make([]uint8, 0x4000))
	test.DemandSuccess(t, err)
	reg := &register{}

	mem, err := memorymap.New(
		memorymap.Map("RAM", 0x0000, 0x1fff, ram),
		memorymap.MapWriter("REG", 0x4000, 0x4000, reg),
		memorymap.MapReader("ROM", 0xc000, 0xffff, rom),
	)
	test.DemandSuccess(t, err)

	expected := `read
0000 -> 1fff	RAM
2000 -> bfff	unmapped
c000 -> ffff	ROM
write
0000 -> 1fff	RAM
2000 -> 3fff	unmapped
4000 -> 4000	REG
4001 -> ffff	unmapped
`
	test.ExpectEquality(t, mem.Summary(), expected)
}
