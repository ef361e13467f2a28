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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Interrupt identifies the hardware interrupt sequence executed in place of
// an instruction.
type Interrupt int

// List of interrupt types.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
	Reset
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case Reset:
		return "RESET"
	}
	return ""
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a copy of the instruction definition. not meaningful if Interrupt is
	// not NoInterrupt
	Defn instructions.Definition

	// the number of bytes read during instruction decode, including the
	// opcode. if this value is less than Defn.Bytes then the instruction is
	// still being decoded
	ByteCount int

	// the operand of the instruction, as read during decode. use ByteCount to
	// determine how much of the value is valid
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched) or not. testing
	// of this field should be used in conjunction with Defn.IsBranch()
	BranchSuccess bool

	// the hardware interrupt sequence being executed, if any
	Interrupt Interrupt

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}

	if r.Interrupt != NoInterrupt {
		s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Interrupt))
	} else {
		s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator))
		if r.Defn.Bytes > 1 && r.ByteCount == r.Defn.Bytes {
			s.WriteString(" ")
			s.WriteString(r.operand())
		}
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" (%s)", r.CPUBug))
	}
	if !r.Final {
		s.WriteString(" *")
	}

	return s.String()
}

// operand formatted according to the addressing mode.
func (r Result) operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		// the destination of the branch. the PC is two bytes on from the
		// address of the instruction when the offset is added
		dest := r.Address + 2 + uint16(int8(r.InstructionData))
		return fmt.Sprintf("$%04x", dest)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}
	return ""
}
