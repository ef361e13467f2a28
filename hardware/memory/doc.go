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

// Package memory contains the simple bus participants used to build an
// address space: RAM and ROM. More complex chips live in their own packages
// and only need to satisfy the cpubus interfaces.
//
// Both types are given an origin and a size when they are created. The origin
// is subtracted from the address presented on the bus and the result is
// wrapped by the size. This means that a device bound to a range larger than
// its size is mirrored across that range.
//
//	ram := memory.NewRAM(0x0000, 0x0800)
//	v, _ := ram.Read(0x0801) // same as ram.Read(0x0001)
package memory
