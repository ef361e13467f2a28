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
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// microOp is one cycle of an instruction. the boolean return value is false
// if the micro-operation decided that it was not required, in which case the
// next micro-operation is run in the same cycle.
//
// a micro-operation makes at most one bus transaction and it is made before
// any change to the CPU. a micro-operation that returns false must not make a
// bus transaction or change anything.
type microOp func(mc *CPU, mem cpubus.Memory) (bool, error)

// phantomRead is a read whose value is not used. no bus transaction is made
// unless PhantomAccess is true.
func (mc *CPU) phantomRead(mem cpubus.Memory, address uint16) error {
	if !mc.PhantomAccess {
		return nil
	}
	_, err := mem.Read(address)
	return err
}

// phantomWrite is a write that is immediately overwritten. no bus transaction
// is made unless PhantomAccess is true.
func (mc *CPU) phantomWrite(mem cpubus.Memory, address uint16, data uint8) error {
	if !mc.PhantomAccess {
		return nil
	}
	return mem.Write(address, data)
}

// readOperand reads the byte at the PC as part of the instruction operand.
func (mc *CPU) readOperand(mem cpubus.Memory) (uint8, error) {
	v, err := mem.Read(mc.pc.Address())
	if err != nil {
		return 0, err
	}
	mc.pc.Increment()
	mc.lastResult.InstructionData |= uint16(v) << (8 * (mc.lastResult.ByteCount - 1))
	mc.lastResult.ByteCount++
	return v, nil
}

func (mc *CPU) stackAddress() uint16 {
	return cpubus.StackOrigin | mc.sp.Address()
}

func (mc *CPU) push(mem cpubus.Memory, data uint8) error {
	if err := mem.Write(mc.stackAddress(), data); err != nil {
		return err
	}
	mc.sp.Decrement()
	return nil
}

// dummy read of the byte following the opcode. the PC is not advanced
func opDummyRead(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.phantomRead(mem, mc.pc.Address())
}

// implied and accumulator instructions complete in the cycle after the fetch
func opImplied(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, mc.pc.Address()); err != nil {
		return false, err
	}
	mc.implied()
	return true, nil
}

func opImmediate(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	mc.read(v)
	return true, nil
}

func opZeroPage(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	mc.address = uint16(v)
	return true, nil
}

func indexZeroPage(mc *CPU, mem cpubus.Memory, idx uint8) (bool, error) {
	if err := mc.phantomRead(mem, mc.address); err != nil {
		return false, err
	}
	a := mc.address + uint16(idx)
	if a > 0xff {
		mc.lastResult.CPUBug = execution.ZeroPageIndexBug
	}
	mc.address = a & 0xff
	return true, nil
}

func opIndexZeroPageX(mc *CPU, mem cpubus.Memory) (bool, error) {
	return indexZeroPage(mc, mem, mc.x.Value())
}

func opIndexZeroPageY(mc *CPU, mem cpubus.Memory) (bool, error) {
	return indexZeroPage(mc, mem, mc.y.Value())
}

func opAbsoluteLo(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	mc.address = uint16(v)
	return true, nil
}

func opAbsoluteHi(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	mc.address |= uint16(v) << 8
	return true, nil
}

// index the effective address. the high byte is not corrected until the
// next cycle
func (mc *CPU) index(hi uint8, idx uint8) {
	base := (uint16(hi) << 8) | (mc.address & 0x00ff)
	mc.address = base + uint16(idx)
	mc.unfixed = (base & 0xff00) | (mc.address & 0x00ff)
	mc.pageFlt = mc.unfixed != mc.address
}

func absoluteHiIndexed(mc *CPU, mem cpubus.Memory, idx uint8) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	mc.index(v, idx)
	return true, nil
}

func opAbsoluteHiX(mc *CPU, mem cpubus.Memory) (bool, error) {
	return absoluteHiIndexed(mc, mem, mc.x.Value())
}

func opAbsoluteHiY(mc *CPU, mem cpubus.Memory) (bool, error) {
	return absoluteHiIndexed(mc, mem, mc.y.Value())
}

// the extra cycle for read instructions when indexing crosses a page. the
// value at the uncorrected address is read and discarded
func opFixupRead(mc *CPU, mem cpubus.Memory) (bool, error) {
	if !mc.pageFlt {
		return false, nil
	}
	if err := mc.phantomRead(mem, mc.unfixed); err != nil {
		return false, err
	}
	mc.lastResult.PageFault = true
	return true, nil
}

// write and read-modify-write instructions always take the extra cycle
func opFixup(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.phantomRead(mem, mc.unfixed)
}

func opPointer(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	mc.pointer = v
	return true, nil
}

func opPointerIndexX(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, uint16(mc.pointer)); err != nil {
		return false, err
	}
	mc.pointer += mc.x.Value()
	return true, nil
}

func opIndirectLo(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(uint16(mc.pointer))
	if err != nil {
		return false, err
	}
	mc.address = uint16(v)
	return true, nil
}

// the high byte of the pointer wraps around the zero page
func opIndirectHi(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(uint16(mc.pointer + 1))
	if err != nil {
		return false, err
	}
	mc.address |= uint16(v) << 8
	return true, nil
}

func opIndirectHiY(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(uint16(mc.pointer + 1))
	if err != nil {
		return false, err
	}
	mc.index(v, mc.y.Value())
	return true, nil
}

func opRead(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.address)
	if err != nil {
		return false, err
	}
	mc.read(v)
	return true, nil
}

func opWrite(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mem.Write(mc.address, mc.store())
}

func opModifyRead(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.address)
	if err != nil {
		return false, err
	}
	mc.value = v
	return true, nil
}

// the 6502 writes the unmodified value back while the operation is performed
func opModify(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomWrite(mem, mc.address, mc.value); err != nil {
		return false, err
	}
	mc.result, mc.pending = mc.modify(mc.value)
	return true, nil
}

// the status register is only updated once the result has been written
func opModifyWrite(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mem.Write(mc.address, mc.result); err != nil {
		return false, err
	}
	mc.status = mc.pending
	return true, nil
}

func opJmpAbsolute(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	mc.pc.Load((uint16(v) << 8) | (mc.address & 0x00ff))
	return true, nil
}

func opJmpIndirectLo(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.address)
	if err != nil {
		return false, err
	}
	mc.value = v
	return true, nil
}

// the high byte of the indirect address does not cross a page. JMP ($10ff)
// reads the high byte from $1000 and not $1100
func opJmpIndirectHi(mc *CPU, mem cpubus.Memory) (bool, error) {
	hiAddress := (mc.address & 0xff00) | ((mc.address + 1) & 0x00ff)
	v, err := mem.Read(hiAddress)
	if err != nil {
		return false, err
	}
	if mc.address&0x00ff == 0x00ff {
		mc.lastResult.CPUBug = execution.JmpIndirectAddressingBug
	}
	mc.pc.Load((uint16(v) << 8) | uint16(mc.value))
	return true, nil
}

// branch instructions end here if the branch is not taken
func opBranch(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mc.readOperand(mem)
	if err != nil {
		return false, err
	}
	if !mc.branch() {
		mc.done = true
		return true, nil
	}
	mc.value = v
	mc.lastResult.BranchSuccess = true
	return true, nil
}

// the low byte of the PC is adjusted. the branch ends here if the high byte
// does not need adjusting
func opBranchTaken(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, mc.pc.Address()); err != nil {
		return false, err
	}
	pc := mc.pc.Address()
	mc.address = pc + uint16(int8(mc.value))
	if mc.address&0xff00 == pc&0xff00 {
		mc.pc.Load(mc.address)
		mc.done = true
		return true, nil
	}
	mc.pc.Load((pc & 0xff00) | (mc.address & 0x00ff))
	mc.lastResult.PageFault = true
	return true, nil
}

func opBranchFixup(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, mc.pc.Address()); err != nil {
		return false, err
	}
	mc.pc.Load(mc.address)
	return true, nil
}

// internal cycle of JSR. the stack is read but the stack pointer is unchanged
func opStackDummy(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.phantomRead(mem, mc.stackAddress())
}

// first stack cycle of the pull instructions. the stack pointer is
// incremented ready for the pull
func opStackDummyInc(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, mc.stackAddress()); err != nil {
		return false, err
	}
	mc.sp.Increment()
	return true, nil
}

func opPushPCH(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.push(mem, mc.pc.Hi())
}

func opPushPCL(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.push(mem, mc.pc.Lo())
}

func opPushA(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.push(mem, mc.a.Value())
}

// PHP and BRK push the status register with the break flag set
func opPushStatusBreak(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.push(mem, mc.status.Value()|registers.MaskBreak)
}

// hardware interrupts push the status register with the break flag clear
func opPushStatus(mc *CPU, mem cpubus.Memory) (bool, error) {
	return true, mc.push(mem, mc.status.Value()&^registers.MaskBreak)
}

// during the reset sequence the stack writes become reads. the stack pointer
// is still decremented
func opResetStack(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, mc.stackAddress()); err != nil {
		return false, err
	}
	mc.sp.Decrement()
	return true, nil
}

func opPullA(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.stackAddress())
	if err != nil {
		return false, err
	}
	mc.a.Load(v)
	mc.status.SetZN(v)
	return true, nil
}

func opPullStatus(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.stackAddress())
	if err != nil {
		return false, err
	}
	mc.status.Load(v)
	return true, nil
}

// RTI pulls three values from the stack. the stack pointer is incremented
// after the first two
func opPullStatusInc(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.stackAddress())
	if err != nil {
		return false, err
	}
	mc.status.Load(v)
	mc.sp.Increment()
	return true, nil
}

func opPullPCL(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.stackAddress())
	if err != nil {
		return false, err
	}
	mc.address = uint16(v)
	mc.sp.Increment()
	return true, nil
}

func opPullPCH(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.stackAddress())
	if err != nil {
		return false, err
	}
	mc.pc.Load((uint16(v) << 8) | (mc.address & 0x00ff))
	return true, nil
}

// the address pulled by RTS is one less than the return address
func opIncrementPC(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, mc.pc.Address()); err != nil {
		return false, err
	}
	mc.pc.Increment()
	return true, nil
}

// the last cycle of JSR reads the high byte of the subroutine address. the PC
// at this point is the return address minus one and has already been pushed
func opJsr(mc *CPU, mem cpubus.Memory) (bool, error) {
	return opJmpAbsolute(mc, mem)
}

// the byte after BRK is read and skipped
func opBrkPadding(mc *CPU, mem cpubus.Memory) (bool, error) {
	if err := mc.phantomRead(mem, mc.pc.Address()); err != nil {
		return false, err
	}
	mc.pc.Increment()
	mc.lastResult.ByteCount++
	return true, nil
}

// the vector address for the current interrupt sequence. BRK uses the IRQ
// vector
func (mc *CPU) vector() uint16 {
	switch mc.interrupt {
	case execution.NMI:
		return cpubus.NMI
	case execution.Reset:
		return cpubus.Reset
	}
	return cpubus.IRQ
}

func opVectorLo(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.vector())
	if err != nil {
		return false, err
	}
	mc.address = uint16(v)
	mc.status.InterruptDisable = true
	return true, nil
}

func opVectorHi(mc *CPU, mem cpubus.Memory) (bool, error) {
	v, err := mem.Read(mc.vector() + 1)
	if err != nil {
		return false, err
	}
	mc.pc.Load((uint16(v) << 8) | (mc.address & 0x00ff))
	return true, nil
}
