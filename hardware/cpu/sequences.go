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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// the micro-operations for every cycle after the fetch, for each kind of
// instruction. the sequences are shared and never modified

var (
	seqImplied   = []microOp{opImplied}
	seqImmediate = []microOp{opImmediate}

	seqZeroPageRead   = []microOp{opZeroPage, opRead}
	seqZeroPageWrite  = []microOp{opZeroPage, opWrite}
	seqZeroPageModify = []microOp{opZeroPage, opModifyRead, opModify, opModifyWrite}

	seqZeroPageXRead   = []microOp{opZeroPage, opIndexZeroPageX, opRead}
	seqZeroPageXWrite  = []microOp{opZeroPage, opIndexZeroPageX, opWrite}
	seqZeroPageXModify = []microOp{opZeroPage, opIndexZeroPageX, opModifyRead, opModify, opModifyWrite}
	seqZeroPageYRead   = []microOp{opZeroPage, opIndexZeroPageY, opRead}
	seqZeroPageYWrite  = []microOp{opZeroPage, opIndexZeroPageY, opWrite}

	seqAbsoluteRead   = []microOp{opAbsoluteLo, opAbsoluteHi, opRead}
	seqAbsoluteWrite  = []microOp{opAbsoluteLo, opAbsoluteHi, opWrite}
	seqAbsoluteModify = []microOp{opAbsoluteLo, opAbsoluteHi, opModifyRead, opModify, opModifyWrite}

	seqAbsoluteXRead   = []microOp{opAbsoluteLo, opAbsoluteHiX, opFixupRead, opRead}
	seqAbsoluteXWrite  = []microOp{opAbsoluteLo, opAbsoluteHiX, opFixup, opWrite}
	seqAbsoluteXModify = []microOp{opAbsoluteLo, opAbsoluteHiX, opFixup, opModifyRead, opModify, opModifyWrite}
	seqAbsoluteYRead   = []microOp{opAbsoluteLo, opAbsoluteHiY, opFixupRead, opRead}
	seqAbsoluteYWrite  = []microOp{opAbsoluteLo, opAbsoluteHiY, opFixup, opWrite}

	seqIndexedIndirectRead  = []microOp{opPointer, opPointerIndexX, opIndirectLo, opIndirectHi, opRead}
	seqIndexedIndirectWrite = []microOp{opPointer, opPointerIndexX, opIndirectLo, opIndirectHi, opWrite}

	seqIndirectIndexedRead  = []microOp{opPointer, opIndirectLo, opIndirectHiY, opFixupRead, opRead}
	seqIndirectIndexedWrite = []microOp{opPointer, opIndirectLo, opIndirectHiY, opFixup, opWrite}

	seqBranch      = []microOp{opBranch, opBranchTaken, opBranchFixup}
	seqJmpAbsolute = []microOp{opAbsoluteLo, opJmpAbsolute}
	seqJmpIndirect = []microOp{opAbsoluteLo, opAbsoluteHi, opJmpIndirectLo, opJmpIndirectHi}

	seqJSR = []microOp{opAbsoluteLo, opStackDummy, opPushPCH, opPushPCL, opJsr}
	seqRTS = []microOp{opDummyRead, opStackDummyInc, opPullPCL, opPullPCH, opIncrementPC}
	seqRTI = []microOp{opDummyRead, opStackDummyInc, opPullStatusInc, opPullPCL, opPullPCH}
	seqBRK = []microOp{opBrkPadding, opPushPCH, opPushPCL, opPushStatusBreak, opVectorLo, opVectorHi}

	seqPHA = []microOp{opDummyRead, opPushA}
	seqPHP = []microOp{opDummyRead, opPushStatusBreak}
	seqPLA = []microOp{opDummyRead, opStackDummyInc, opPullA}
	seqPLP = []microOp{opDummyRead, opStackDummyInc, opPullStatus}

	// hardware interrupts. the first cycle of the sequence replaces the fetch
	seqInterrupt = []microOp{opDummyRead, opPushPCH, opPushPCL, opPushStatus, opVectorLo, opVectorHi}
	seqReset     = []microOp{opDummyRead, opResetStack, opResetStack, opResetStack, opVectorLo, opVectorHi}
)

// sequence returns the micro-operations for the instruction definition. nil
// is returned for undefined opcodes.
func sequence(defn instructions.Definition) []microOp {
	switch defn.Operator {
	case instructions.KIL:
		return nil
	case instructions.JMP:
		if defn.AddressingMode == instructions.Indirect {
			return seqJmpIndirect
		}
		return seqJmpAbsolute
	case instructions.JSR:
		return seqJSR
	case instructions.RTS:
		return seqRTS
	case instructions.RTI:
		return seqRTI
	case instructions.BRK:
		return seqBRK
	case instructions.PHA:
		return seqPHA
	case instructions.PHP:
		return seqPHP
	case instructions.PLA:
		return seqPLA
	case instructions.PLP:
		return seqPLP
	}

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return seqImplied
	case instructions.Immediate:
		return seqImmediate
	case instructions.Relative:
		return seqBranch
	}

	// remaining instructions are categorised by their effect
	type key struct {
		mode   instructions.AddressingMode
		effect instructions.EffectCategory
	}

	switch (key{defn.AddressingMode, defn.Effect}) {
	case key{instructions.ZeroPage, instructions.Read}:
		return seqZeroPageRead
	case key{instructions.ZeroPage, instructions.Write}:
		return seqZeroPageWrite
	case key{instructions.ZeroPage, instructions.RMW}:
		return seqZeroPageModify
	case key{instructions.ZeroPageIndexedX, instructions.Read}:
		return seqZeroPageXRead
	case key{instructions.ZeroPageIndexedX, instructions.Write}:
		return seqZeroPageXWrite
	case key{instructions.ZeroPageIndexedX, instructions.RMW}:
		return seqZeroPageXModify
	case key{instructions.ZeroPageIndexedY, instructions.Read}:
		return seqZeroPageYRead
	case key{instructions.ZeroPageIndexedY, instructions.Write}:
		return seqZeroPageYWrite
	case key{instructions.Absolute, instructions.Read}:
		return seqAbsoluteRead
	case key{instructions.Absolute, instructions.Write}:
		return seqAbsoluteWrite
	case key{instructions.Absolute, instructions.RMW}:
		return seqAbsoluteModify
	case key{instructions.AbsoluteIndexedX, instructions.Read}:
		return seqAbsoluteXRead
	case key{instructions.AbsoluteIndexedX, instructions.Write}:
		return seqAbsoluteXWrite
	case key{instructions.AbsoluteIndexedX, instructions.RMW}:
		return seqAbsoluteXModify
	case key{instructions.AbsoluteIndexedY, instructions.Read}:
		return seqAbsoluteYRead
	case key{instructions.AbsoluteIndexedY, instructions.Write}:
		return seqAbsoluteYWrite
	case key{instructions.IndexedIndirect, instructions.Read}:
		return seqIndexedIndirectRead
	case key{instructions.IndexedIndirect, instructions.Write}:
		return seqIndexedIndirectWrite
	case key{instructions.IndirectIndexed, instructions.Read}:
		return seqIndirectIndexedRead
	case key{instructions.IndirectIndexed, instructions.Write}:
		return seqIndirectIndexedWrite
	}

	return nil
}
