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

package memory

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// ROM is a block of read-only memory. Writing to ROM results in a
// cpubus.WriteError.
type ROM struct {
	origin uint16
	memory []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The data
// is copied into the ROM and so can be safely reused by the caller.
func NewROM(origin uint16, data []uint8) (*ROM, error) {
	if len(data) == 0 {
		return nil, curated.Errorf("rom: no data")
	}
	if len(data) > 0x10000 {
		return nil, curated.Errorf("rom: data larger than address space (%d bytes)", len(data))
	}
	rom := &ROM{
		origin: origin,
		memory: make([]uint8, len(data)),
	}
	copy(rom.memory, data)
	return rom, nil
}

func (rom *ROM) idx(address uint16) int {
	return int(address-rom.origin) % len(rom.memory)
}

// Size returns the number of bytes in the ROM.
func (rom *ROM) Size() int {
	return len(rom.memory)
}

// Read implements the cpubus.Reader interface.
func (rom *ROM) Read(address uint16) (uint8, error) {
	return rom.memory[rom.idx(address)], nil
}

// Write implements the cpubus.Writer interface. It always fails.
func (rom *ROM) Write(address uint16, data uint8) error {
	return cpubus.WriteError{Address: address}
}

// Peek implements the cpubus.Debugger interface.
func (rom *ROM) Peek(address uint16) (uint8, error) {
	return rom.Read(address)
}

// Poke implements the cpubus.Debugger interface. Unlike Write() the contents
// of the ROM are changed.
func (rom *ROM) Poke(address uint16, value uint8) error {
	rom.memory[rom.idx(address)] = value
	return nil
}

func (rom *ROM) String() string {
	return hexdump(rom.origin, rom.memory)
}
