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

import "fmt"

// ReadError is returned by a Reader when an address cannot be read. Either
// because nothing is mapped at that address or because the device at that
// address refuses to be read.
type ReadError struct {
	Address uint16
}

func (e ReadError) Error() string {
	return fmt.Sprintf("bus read error: %04x", e.Address)
}

// WriteError is returned by a Writer when an address cannot be written to.
// Either because nothing is mapped at that address or because the device
// refuses to be written to.
type WriteError struct {
	Address uint16
}

func (e WriteError) Error() string {
	return fmt.Sprintf("bus write error: %04x", e.Address)
}
