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

// Package console implements a simple character device for programs running
// on the emulated CPU. It is not modelled on any real chip.
//
// The device occupies two addresses from its base address:
//
//	base+0	Data	write: output a byte. read: the next byte of input
//	base+1	Status	read only. bit 7 is set if input is waiting
//
// Reading the Data register when no input is waiting returns zero. Writing
// to the Status register results in a cpubus.WriteError.
//
// Input is read from an io.Reader in a separate goroutine so that the CPU is
// never blocked by a read. When the input is a terminal, the Terminal type
// can be used to put the terminal into cbreak mode so that key presses are
// delivered without waiting for the return key.
package console
