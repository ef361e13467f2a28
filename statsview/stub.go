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

//go:build !statsview

package statsview

import (
	"io"
)

// Launch does nothing when the program is built without the statsview tag.
func Launch(output io.Writer) {
	io.WriteString(output, "stats server not available in this build\n")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
