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

package cpu

import "fmt"

// IllegalOpcode is returned by Tick() when an undefined opcode is fetched.
// The CPU is halted after this error.
type IllegalOpcode struct {
	Opcode  uint8
	Address uint16
}

func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("cpu: illegal opcode %02x at %04x", e.Opcode, e.Address)
}
