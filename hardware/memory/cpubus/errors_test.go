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

package cpubus_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

func TestErrors(t *testing.T) {
	var err error

	err = cpubus.ReadError{Address: 0x0100}
	test.ExpectEquality(t, err.Error(), "bus read error: 0100")

	err = cpubus.WriteError{Address: 0xfffc}
	test.ExpectEquality(t, err.Error(), "bus write error: fffc")
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("tick: %w", cpubus.ReadError{Address: 0x1234})

	var rerr cpubus.ReadError
	test.ExpectSuccess(t, errors.As(err, &rerr))
	test.ExpectEquality(t, rerr.Address, 0x1234)

	var werr cpubus.WriteError
	test.ExpectFailure(t, errors.As(err, &werr))
}
