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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// implied performs the operation of instructions with the implied or
// accumulator addressing modes.
func (mc *CPU) implied() {
	switch mc.defn.Operator {
	case instructions.CLC:
		mc.status.Carry = false
	case instructions.SEC:
		mc.status.Carry = true
	case instructions.CLI:
		mc.status.InterruptDisable = false
	case instructions.SEI:
		mc.status.InterruptDisable = true
	case instructions.CLV:
		mc.status.Overflow = false
	case instructions.CLD:
		mc.status.DecimalMode = false
	case instructions.SED:
		mc.status.DecimalMode = true
	case instructions.DEX:
		mc.x.Decrement()
		mc.status.SetZN(mc.x.Value())
	case instructions.DEY:
		mc.y.Decrement()
		mc.status.SetZN(mc.y.Value())
	case instructions.INX:
		mc.x.Increment()
		mc.status.SetZN(mc.x.Value())
	case instructions.INY:
		mc.y.Increment()
		mc.status.SetZN(mc.y.Value())
	case instructions.TAX:
		mc.x.Load(mc.a.Value())
		mc.status.SetZN(mc.x.Value())
	case instructions.TAY:
		mc.y.Load(mc.a.Value())
		mc.status.SetZN(mc.y.Value())
	case instructions.TSX:
		mc.x.Load(mc.sp.Value())
		mc.status.SetZN(mc.x.Value())
	case instructions.TXA:
		mc.a.Load(mc.x.Value())
		mc.status.SetZN(mc.a.Value())
	case instructions.TXS:
		// the only transfer that does not affect the flags
		mc.sp.Load(mc.x.Value())
	case instructions.TYA:
		mc.a.Load(mc.y.Value())
		mc.status.SetZN(mc.a.Value())
	case instructions.NOP:
	default:
		if mc.defn.AddressingMode == instructions.Accumulator {
			var v uint8
			v, mc.status = mc.modify(mc.a.Value())
			mc.a.Load(v)
		}
	}
}

// read performs the operation of instructions that read a value from memory
// or from the operand.
func (mc *CPU) read(v uint8) {
	switch mc.defn.Operator {
	case instructions.LDA:
		mc.a.Load(v)
		mc.status.SetZN(v)
	case instructions.LDX:
		mc.x.Load(v)
		mc.status.SetZN(v)
	case instructions.LDY:
		mc.y.Load(v)
		mc.status.SetZN(v)
	case instructions.AND:
		mc.a.AND(v)
		mc.status.SetZN(mc.a.Value())
	case instructions.ORA:
		mc.a.ORA(v)
		mc.status.SetZN(mc.a.Value())
	case instructions.EOR:
		mc.a.EOR(v)
		mc.status.SetZN(mc.a.Value())
	case instructions.ADC:
		if mc.status.DecimalMode {
			mc.status.Carry, mc.status.Zero, mc.status.Overflow, mc.status.Sign = mc.a.AddDecimal(v, mc.status.Carry)
		} else {
			mc.status.Carry, mc.status.Overflow = mc.a.Add(v, mc.status.Carry)
			mc.status.SetZN(mc.a.Value())
		}
	case instructions.SBC:
		if mc.status.DecimalMode {
			mc.status.Carry, mc.status.Zero, mc.status.Overflow, mc.status.Sign = mc.a.SubtractDecimal(v, mc.status.Carry)
		} else {
			mc.status.Carry, mc.status.Overflow = mc.a.Subtract(v, mc.status.Carry)
			mc.status.SetZN(mc.a.Value())
		}
	case instructions.CMP:
		mc.compare(mc.a, v)
	case instructions.CPX:
		mc.compare(mc.x, v)
	case instructions.CPY:
		mc.compare(mc.y, v)
	case instructions.BIT:
		r := mc.a
		r.AND(v)
		mc.status.Zero = r.IsZero()
		mc.status.Sign = v&0x80 == 0x80
		mc.status.Overflow = v&0x40 == 0x40
	}
}

// compare subtracts the value from a copy of the register.
func (mc *CPU) compare(r registers.Register, v uint8) {
	mc.status.Carry, _ = r.Subtract(v, true)
	mc.status.SetZN(r.Value())
}

// store returns the value to be written by a store instruction.
func (mc *CPU) store() uint8 {
	switch mc.defn.Operator {
	case instructions.STX:
		return mc.x.Value()
	case instructions.STY:
		return mc.y.Value()
	}
	return mc.a.Value()
}

// modify performs the operation of read-modify-write instructions. the status
// register is not changed, a copy with the new flags is returned instead.
func (mc *CPU) modify(v uint8) (uint8, registers.StatusRegister) {
	sr := mc.status
	r := registers.NewRegister(v, "")

	switch mc.defn.Operator {
	case instructions.ASL:
		sr.Carry = r.ASL()
	case instructions.LSR:
		sr.Carry = r.LSR()
	case instructions.ROL:
		sr.Carry = r.ROL(sr.Carry)
	case instructions.ROR:
		sr.Carry = r.ROR(sr.Carry)
	case instructions.INC:
		r.Increment()
	case instructions.DEC:
		r.Decrement()
	}

	sr.SetZN(r.Value())
	return r.Value(), sr
}

// branch returns true if the branch condition is met.
func (mc *CPU) branch() bool {
	switch mc.defn.Operator {
	case instructions.BCC:
		return !mc.status.Carry
	case instructions.BCS:
		return mc.status.Carry
	case instructions.BEQ:
		return mc.status.Zero
	case instructions.BNE:
		return !mc.status.Zero
	case instructions.BMI:
		return mc.status.Sign
	case instructions.BPL:
		return !mc.status.Sign
	case instructions.BVC:
		return !mc.status.Overflow
	case instructions.BVS:
		return mc.status.Overflow
	}
	return false
}
