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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestValidity(t *testing.T) {
	r := execution.Result{
		Address:   0x0200,
		Defn:      instructions.Lookup(0xbd),
		ByteCount: 3,
		Cycles:    4,
	}

	// not final
	test.ExpectFailure(t, r.IsValid())

	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())
	r.PageFault = true
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())
}

func TestValidityBranch(t *testing.T) {
	r := execution.Result{
		Address:   0x0200,
		Defn:      instructions.Lookup(0xd0),
		ByteCount: 2,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	// page fault is impossible if the branch is not taken
	r.BranchSuccess = false
	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())
}

func TestValidityInterrupt(t *testing.T) {
	r := execution.Result{
		Interrupt: execution.NMI,
		Cycles:    7,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 6
	test.ExpectFailure(t, r.IsValid())
}

func TestString(t *testing.T) {
	r := execution.Result{
		Address:         0x0200,
		Defn:            instructions.Lookup(0xd0),
		ByteCount:       2,
		InstructionData: 0xfe,
		Cycles:          3,
		BranchSuccess:   true,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0200 BNE $0200 [3]")

	r = execution.Result{
		Address:   0x0400,
		Defn:      instructions.Lookup(0xa9),
		ByteCount: 1,
		Cycles:    1,
	}
	test.ExpectEquality(t, r.String(), "0400 LDA [1] *")
}
