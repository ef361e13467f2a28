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

package console

import (
	"os"

	"github.com/jetsetilly/gopher6502/logger"
	"golang.org/x/term"
)

// Terminal controls the mode of the terminal that provides console input.
// If the input file is not a terminal then the Terminal does nothing.
type Terminal struct {
	input *os.File

	// whether the input is a real terminal
	real bool

	// whether the terminal is currently in cbreak mode
	cbreak bool

	attr terminalAttr
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(input *os.File) *Terminal {
	trm := &Terminal{
		input: input,
	}
	if input != nil {
		trm.real = term.IsTerminal(int(input.Fd()))
	}
	if !trm.real {
		logger.Log(logger.Allow, "console", "input is not a terminal")
	}
	return trm
}

// IsReal returns true if the input file is a terminal.
func (trm *Terminal) IsReal() bool {
	return trm.real
}

// CBreakMode puts the terminal into cbreak mode. Key presses are delivered
// immediately but signals such as ctrl-c are still handled by the terminal.
func (trm *Terminal) CBreakMode() error {
	if !trm.real || trm.cbreak {
		return nil
	}
	if err := trm.attr.cbreak(trm.input); err != nil {
		return err
	}
	trm.cbreak = true
	logger.Log(logger.Allow, "console", "terminal in cbreak mode")
	return nil
}

// Restore the terminal to the mode it was in before the call to CBreakMode().
func (trm *Terminal) Restore() error {
	if !trm.real || !trm.cbreak {
		return nil
	}
	if err := trm.attr.restore(trm.input); err != nil {
		return err
	}
	trm.cbreak = false
	return nil
}
