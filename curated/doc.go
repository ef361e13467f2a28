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

// Package curated is a helper package for the plain Go error type. Curated
// errors are the "expected" errors of the emulation: configuration problems
// with an address space, misuse of the CPU between instructions, problems
// loading a program image. Errors raised by bus participants (ReadError and
// WriteError in the cpubus package) and by the CPU when it encounters an
// illegal opcode are typed errors and are not curated.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as fmt.Errorf().
// The pattern is kept and is used to identify the error later.
//
//	e := curated.Errorf("memorymap: binding %s: origin is after memtop", label)
//
//	if curated.Is(e, "memorymap: binding %s: origin is after memtop") {
//		fmt.Println("true")
//	}
//
// The Has() function checks whether the pattern occurs anywhere in the chain
// of curated errors.
//
//	f := curated.Errorf("machine: %v", e)
//	curated.Has(f, "memorymap: binding %s: origin is after memtop") // true
//	curated.Is(f, "memorymap: binding %s: origin is after memtop")  // false
//
// A curated error also implements Unwrap(). The first error found in the
// placeholder values is returned, meaning that typed errors wrapped by a
// curated error can still be found with errors.As().
//
//	err := mc.Tick(mem)
//	f := curated.Errorf("machine: %v", err)
//
//	var re cpubus.ReadError
//	if errors.As(f, &re) {
//		fmt.Printf("%04x", re.Address)
//	}
//
// The Error() implementation normalises the message by removing adjacent
// duplicate parts. This means a function can wrap an error with its own
// package prefix without worrying whether the callee did the same.
package curated
