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
	"github.com/jetsetilly/gopher6502/curated"
)

// the number of cycles taken by an interrupt sequence
const interruptCycles = 7

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: not finalised")
	}

	if r.Interrupt != NoInterrupt {
		if r.Cycles != interruptCycles {
			return curated.Errorf("execution: number of cycles wrong for %s (%d instead of %d)", r.Interrupt, r.Cycles, interruptCycles)
		}
		return nil
	}

	if !r.Defn.IsDefined() {
		return curated.Errorf("execution: undefined opcode %02x", r.Defn.OpCode)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && !r.Defn.IsBranch() && r.PageFault {
		return curated.Errorf("execution: unexpected page fault for opcode %02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
		} else if r.PageFault {
			return curated.Errorf("execution: page fault for branch not taken [%s]", r.Defn.Operator)
		}
	}
	if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("execution: number of cycles wrong for opcode %02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
