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
	"io"
	"strings"
)

// helpWriter buffers the output of the flag package so that it can be
// amended with mode information.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

// Help writes the buffered flag usage to output along with the mode path,
// the available sub-modes and any additional help.
func (hw *helpWriter) Help(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := hw.buffer.String()
	helpLines := strings.SplitN(s, "\n", 2)

	// flag package outputs a single usage line if there are no flags
	noFlags := s == "Usage:\n"

	if noFlags && len(subModes) == 0 && additionalHelp == "" {
		io.WriteString(output, "No help available")
		if path != "" {
			fmt.Fprintf(output, " for %s", path)
		}
		io.WriteString(output, "\n")
		return
	}

	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", helpLines[0], path)
	} else {
		fmt.Fprintf(output, "%s\n", helpLines[0])
	}

	if len(helpLines) > 1 {
		io.WriteString(output, helpLines[1])
	}

	if len(subModes) > 0 {
		if !noFlags {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
