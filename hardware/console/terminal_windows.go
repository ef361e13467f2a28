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

//go:build windows

package console

import (
	"os"

	"golang.org/x/term"
)

type terminalAttr struct {
	state *term.State
}

func (attr *terminalAttr) cbreak(input *os.File) error {
	state, err := term.MakeRaw(int(input.Fd()))
	if err != nil {
		return err
	}
	attr.state = state
	return nil
}

func (attr *terminalAttr) restore(input *os.File) error {
	return term.Restore(int(input.Fd()), attr.state)
}
