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

package cpubus

// Reader is implemented by devices that can be read by the CPU.
type Reader interface {
	Read(address uint16) (uint8, error)
}

// Writer is implemented by devices that can be written to by the CPU.
type Writer interface {
	Write(address uint16, data uint8) error
}

// Memory defines the operations for the memory system when accessed from the
// CPU. The memorymap.AddressSpace type implements this interface and maps the
// read/write address to the correct device, meaning that the CPU need not
// care which part of memory it is accessing.
//
// The address passed to a device is always the full 16bit address. It is up
// to the device to mask the address as required.
type Memory interface {
	Reader
	Writer
}

// Debugger defines the meta-operations for memory devices. These functions
// operate outside of the normal operation of the machine and must not cause
// any side effects in the device (a peripheral chip that clears a status bit
// on Read() must not do so on Peek() for example).
//
// Poke() is allowed to change memory that cannot be changed with Write(). ie.
// the contents of a ROM.
type Debugger interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
