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

// Package instructions defines the instruction set of the 6502. Every opcode
// from 0x00 to 0xff has a definition. Opcodes that are not part of the
// documented instruction set are defined with the KIL operator; the CPU halts
// when it decodes one.
//
//	defn := instructions.Lookup(0xa9)
//	fmt.Println(defn) // a9 LDA #nn (2 bytes, 2 cycles)
//
// The table is static. Lookup() returns a copy of the definition and so the
// table can never be changed by the caller.
package instructions
