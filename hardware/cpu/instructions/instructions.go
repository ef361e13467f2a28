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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind), Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// operand template for each addressing mode. used by the String() function
// of the Definition type
func (m AddressingMode) template() string {
	switch m {
	case Accumulator:
		return " A"
	case Immediate:
		return " #nn"
	case Relative:
		return " rr"
	case Absolute:
		return " nnnn"
	case ZeroPage:
		return " nn"
	case Indirect:
		return " (nnnn)"
	case IndexedIndirect:
		return " (nn,X)"
	case IndirectIndexed:
		return " (nn),Y"
	case AbsoluteIndexedX:
		return " nnnn,X"
	case AbsoluteIndexedY:
		return " nnnn,Y"
	case ZeroPageIndexedX:
		return " nn,X"
	case ZeroPageIndexedY:
		return " nn,Y"
	}
	return ""
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode

	// number of bytes including the opcode
	Bytes int

	// number of cycles not including any page fault or branch penalties
	Cycles int

	// whether the instruction takes an additional cycle when indexing crosses
	// a page boundary
	PageSensitive bool

	Effect EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s%s (%d bytes, %d cycles)", defn.OpCode, defn.Operator, defn.AddressingMode.template(), defn.Bytes, defn.Cycles)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsDefined returns false if the definition is not part of the documented
// instruction set.
func (defn Definition) IsDefined() bool {
	return defn.Operator != KIL
}

// Lookup returns the definition for the opcode.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}
