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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// Address is a flag value for a 16 bit address. Hexadecimal values can be
// given with a 0x or $ prefix. Values without a prefix are decimal.
type Address struct {
	Value uint16

	// whether the flag was specified on the command line
	Specified bool
}

func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("0x%04x", a.Value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return curated.Errorf("not a 16 bit address")
	}
	a.Value = uint16(v)
	a.Specified = true
	return nil
}
