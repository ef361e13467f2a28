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
	"fmt"
	"strings"
)

// RAM is a block of read/write memory.
type RAM struct {
	origin uint16
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. A size
// of zero or less is treated as a size of one.
func NewRAM(origin uint16, size int) *RAM {
	if size <= 0 {
		size = 1
	}
	if size > 0x10000 {
		size = 0x10000
	}
	return &RAM{
		origin: origin,
		memory: make([]uint8, size),
	}
}

func (ram *RAM) idx(address uint16) int {
	return int(address-ram.origin) % len(ram.memory)
}

// Size returns the number of bytes in the RAM.
func (ram *RAM) Size() int {
	return len(ram.memory)
}

// Read implements the cpubus.Reader interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[ram.idx(address)], nil
}

// Write implements the cpubus.Writer interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[ram.idx(address)] = data
	return nil
}

// Peek implements the cpubus.Debugger interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.Read(address)
}

// Poke implements the cpubus.Debugger interface.
func (ram *RAM) Poke(address uint16, value uint8) error {
	return ram.Write(address, value)
}

// Load copies data into RAM starting at the address. Data that extends past
// the end of the RAM wraps around to the origin.
func (ram *RAM) Load(address uint16, data []uint8) {
	for i, v := range data {
		ram.memory[ram.idx(address+uint16(i))] = v
	}
}

func (ram *RAM) String() string {
	return hexdump(ram.origin, ram.memory)
}

// hexdump is used by both RAM and ROM for their String() implementations.
func hexdump(origin uint16, memory []uint8) string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(memory); y += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", origin+uint16(y)))
		for x := y; x < y+16 && x < len(memory); x++ {
			s.WriteString(fmt.Sprintf(" %02x", memory[x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
