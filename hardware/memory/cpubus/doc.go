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

// Package cpubus defines the vocabulary spoken between the CPU and every chip
// that is attached to the address bus.
//
// The Reader and Writer interfaces are deliberately separate. A device that
// only implements Reader is read-only from the point of view of the CPU (a
// ROM for example) and a device that only implements Writer is a write-only
// register. The Memory interface combines the two and is the type the CPU
// requires when it is ticked.
//
// Errors returned by bus participants should be of type ReadError or
// WriteError. The errors carry the offending address and nothing else. They
// can be matched with errors.As() even when they have been wrapped.
//
//	var rerr cpubus.ReadError
//	if errors.As(err, &rerr) {
//		fmt.Printf("read from %04x failed", rerr.Address)
//	}
package cpubus
