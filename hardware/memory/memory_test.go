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

package memory_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRAM(t *testing.T) {
	ram := memory.NewRAM(0x0000, 0x0800)
	test.ExpectEquality(t, ram.Size(), 0x0800)

	test.ExpectSuccess(t, ram.Write(0x0042, 0xa9))
	v, err := ram.Read(0x0042)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xa9)

	// mirror
	v, err = ram.Read(0x0842)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xa9)

	test.ExpectSuccess(t, ram.Write(0x1fff, 0x55))
	v, _ = ram.Peek(0x07ff)
	test.ExpectEquality(t, v, 0x55)
}

func TestRAMOrigin(t *testing.T) {
	ram := memory.NewRAM(0x8000, 0x100)
	ram.Load(0x80fe, []uint8{0x01, 0x02, 0x03})

	v, _ := ram.Read(0x80fe)
	test.ExpectEquality(t, v, 0x01)
	v, _ = ram.Read(0x80ff)
	test.ExpectEquality(t, v, 0x02)

	// load wraps around to the origin
	v, _ = ram.Read(0x8000)
	test.ExpectEquality(t, v, 0x03)
}

func TestROM(t *testing.T) {
	_, err := memory.NewROM(0xf000, nil)
	test.ExpectFailure(t, err)

	data := []uint8{0xa9, 0x00}
	rom, err := memory.NewROM(0xf000, data)
	test.DemandSuccess(t, err)

	// changing the original data does not change the ROM
	data[0] = 0xea
	v, err := rom.Read(0xf000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xa9)

	err = rom.Write(0xf001, 0xff)
	var werr cpubus.WriteError
	test.ExpectSuccess(t, errors.As(err, &werr))
	test.ExpectEquality(t, werr.Address, 0xf001)

	v, _ = rom.Read(0xf001)
	test.ExpectEquality(t, v, 0x00)

	// poke is allowed to change ROM
	test.ExpectSuccess(t, rom.Poke(0xf001, 0xff))
	v, _ = rom.Peek(0xf001)
	test.ExpectEquality(t, v, 0xff)
}
