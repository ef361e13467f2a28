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

package registers

import (
	"strings"
)

// Bit masks for the flags of the status register.
const (
	MaskSign             = uint8(0x80)
	MaskOverflow         = uint8(0x40)
	MaskUnused           = uint8(0x20)
	MaskBreak            = uint8(0x10)
	MaskDecimalMode      = uint8(0x08)
	MaskInterruptDisable = uint8(0x04)
	MaskZero             = uint8(0x02)
	MaskCarry            = uint8(0x01)
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, set rune, unset rune) {
		if f {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= MaskSign
	}
	if sr.Overflow {
		v |= MaskOverflow
	}
	if sr.Break {
		v |= MaskBreak
	}
	if sr.DecimalMode {
		v |= MaskDecimalMode
	}
	if sr.InterruptDisable {
		v |= MaskInterruptDisable
	}
	if sr.Zero {
		v |= MaskZero
	}
	if sr.Carry {
		v |= MaskCarry
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= MaskUnused

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver. The unused bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&MaskSign == MaskSign
	sr.Overflow = v&MaskOverflow == MaskOverflow
	sr.Break = v&MaskBreak == MaskBreak
	sr.DecimalMode = v&MaskDecimalMode == MaskDecimalMode
	sr.InterruptDisable = v&MaskInterruptDisable == MaskInterruptDisable
	sr.Zero = v&MaskZero == MaskZero
	sr.Carry = v&MaskCarry == MaskCarry
}

// SetZN sets the zero and sign flags according to the value.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}
