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

// Package memorymap composes bus participants into a single address space.
//
// An AddressSpace is created from a list of bindings. Each binding claims a
// range of addresses for a device, for reading, for writing or for both.
//
//	ram := memory.NewRAM(0x0000, 0x0800)
//	rom, _ := memory.NewROM(0xc000, data)
//
//	mem, err := memorymap.New(
//		memorymap.Map("RAM", 0x0000, 0x1fff, ram),
//		memorymap.MapWriter("Console", 0x4000, 0x4000, con),
//		memorymap.Map("ROM", 0xc000, 0xffff, rom),
//	)
//
// Bindings are allowed to overlap. When more than one binding claims an
// address the binding appearing earliest in the list is used. Read and write
// ownership are resolved separately so a write-only device can sit in front
// of a read/write device without hiding it from reads.
//
// Ownership is resolved once, when the AddressSpace is created. Reading and
// writing is then a table lookup followed by a call to the owning device. The
// address passed to the device is the address presented on the bus, it is
// not adjusted. Values are never cached or transformed.
//
// An address space created with New() is allowed to have addresses with no
// owner. Accessing such an address results in a cpubus.ReadError or
// cpubus.WriteError. NewStrict() treats unowned addresses as a configuration
// error.
package memorymap
