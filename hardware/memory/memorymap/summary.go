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

package memorymap

import (
	"fmt"
	"strings"
)

// label used in the summary for addresses with no owner
const unownedLabel = "unmapped"

// Summary returns a single multiline string detailing all the areas in the
// address space, for reading and for writing. Useful for reference.
func (as *AddressSpace) Summary() string {
	s := strings.Builder{}
	s.WriteString("read\n")
	as.summarise(&s, &as.read)
	s.WriteString("write\n")
	as.summarise(&s, &as.write)
	return s.String()
}

func (as *AddressSpace) label(i int16) string {
	if i == unowned {
		return unownedLabel
	}
	return as.bindings[i].Label
}

func (as *AddressSpace) summarise(s *strings.Builder, table *[0x10000]int16) {
	current := table[0]
	sa := 0

	for a := 1; a < len(table); a++ {
		// print summary line whenever the owner changes. binding indexes are
		// compared rather than labels so that two bindings with the same
		// label are listed separately
		if table[a] != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, as.label(current)))
			current = table[a]
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, len(table)-1, as.label(current)))
}
