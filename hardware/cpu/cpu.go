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
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// values of the registers after a call to Reset()
const (
	resetSP     = uint8(0xfd)
	resetStatus = uint8(0x24)
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	pc     registers.ProgramCounter
	a      registers.Register
	x      registers.Register
	y      registers.Register
	sp     registers.Register
	status registers.StatusRegister

	// PhantomAccess controls whether dummy cycles make a bus transaction.
	// When false, dummy cycles are internal to the CPU.
	PhantomAccess bool

	// the result of the last or current instruction
	lastResult execution.Result

	// the number of cycles of the current instruction that have completed.
	// zero means the next tick will fetch an opcode
	cycle int

	// the current instruction and the sequence of micro-operations that
	// complete it. step is the index of the next micro-operation
	defn instructions.Definition
	seq  []microOp
	step int

	// set by a micro-operation to end the instruction before the end of the
	// sequence
	done bool

	// latched values used by the micro-operations
	address uint16 // effective address
	unfixed uint16 // effective address before page correction
	pointer uint8  // zero page pointer for indirect addressing
	value   uint8  // data read during the instruction
	result  uint8  // result of a read-modify-write
	pending registers.StatusRegister
	pageFlt bool

	// the interrupt sequence being executed instead of an instruction
	interrupt execution.Interrupt

	// interrupt lines. irq is level sensitive. nmi and reset are latched
	irq   bool
	nmi   bool
	reset bool

	// non-nil if the CPU has halted. requires a reset
	halt error
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU should be reset with Reset() before use.
func NewCPU() *CPU {
	return &CPU{
		pc:     registers.NewProgramCounter(0),
		a:      registers.NewRegister(0, "A"),
		x:      registers.NewRegister(0, "X"),
		y:      registers.NewRegister(0, "Y"),
		sp:     registers.NewRegister(resetSP, "SP"),
		status: registers.NewStatusRegister(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.pc.Label(), mc.pc, mc.a, mc.x, mc.y, mc.sp, mc.status.Label(), mc.status)
}

// Reset puts the CPU into its power-on state and loads the PC with the
// address found at the reset vector. If mem is nil the PC is set to zero.
//
// The CPU is ready to fetch an opcode after a successful reset. Any pending
// interrupt is forgotten but the IRQ line is left as it is. On error the CPU
// is unchanged.
func (mc *CPU) Reset(mem cpubus.Reader) error {
	var pc uint16

	if mem != nil {
		lo, err := mem.Read(cpubus.Reset)
		if err != nil {
			return err
		}
		hi, err := mem.Read(cpubus.Reset + 1)
		if err != nil {
			return err
		}
		pc = (uint16(hi) << 8) | uint16(lo)
	}

	mc.pc.Load(pc)
	mc.a.Load(0)
	mc.x.Load(0)
	mc.y.Load(0)
	mc.sp.Load(resetSP)
	mc.status.Load(resetStatus)

	mc.lastResult.Reset()
	mc.endInstruction()
	mc.nmi = false
	mc.reset = false
	mc.halt = nil

	return nil
}

// endInstruction returns the CPU to the fetch state.
func (mc *CPU) endInstruction() {
	mc.cycle = 0
	mc.seq = nil
	mc.step = 0
	mc.done = false
	mc.pageFlt = false
	mc.interrupt = execution.NoInterrupt
}

// Registers is a copy of the register file.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

func (r Registers) String() string {
	var sr registers.StatusRegister
	sr.Load(r.Status)
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", r.PC, r.A, r.X, r.Y, r.SP, sr)
}

// Registers returns a copy of the register file. The unused bit of the
// status value is always set.
func (mc *CPU) Registers() Registers {
	return Registers{
		PC:     mc.pc.Address(),
		A:      mc.a.Value(),
		X:      mc.x.Value(),
		Y:      mc.y.Value(),
		SP:     mc.sp.Value(),
		Status: mc.status.Value(),
	}
}

// LoadRegisters sets every register. It is only valid when the CPU is at an
// instruction boundary.
func (mc *CPU) LoadRegisters(r Registers) error {
	if !mc.AtFetch() {
		return curated.Errorf("cpu: cannot load registers mid-instruction")
	}
	mc.pc.Load(r.PC)
	mc.a.Load(r.A)
	mc.x.Load(r.X)
	mc.y.Load(r.Y)
	mc.sp.Load(r.SP)
	mc.status.Load(r.Status)
	return nil
}

// Status returns a copy of the status register.
func (mc *CPU) Status() registers.StatusRegister {
	return mc.status
}

// LastResult returns a copy of the result of the last instruction. If the CPU
// is mid-instruction the result is for the current instruction and the Final
// field will be false.
func (mc *CPU) LastResult() execution.Result {
	return mc.lastResult
}

// Cycle returns the number of cycles of the current instruction that have
// completed. Zero means the next tick will fetch a new opcode.
func (mc *CPU) Cycle() int {
	return mc.cycle
}

// AtFetch returns true if the next tick will fetch a new opcode or begin an
// interrupt sequence.
func (mc *CPU) AtFetch() bool {
	return mc.cycle == 0
}

// Halted returns true if the CPU has halted because of an illegal opcode.
func (mc *CPU) Halted() bool {
	return mc.halt != nil
}

// SetIRQ sets the state of the IRQ line. The interrupt will be serviced at
// the next instruction boundary for as long as the line is held and the
// interrupt disable flag is clear.
func (mc *CPU) SetIRQ(active bool) {
	mc.irq = active
}

// TriggerNMI latches a non-maskable interrupt. The interrupt will be serviced
// at the next instruction boundary.
func (mc *CPU) TriggerNMI() {
	mc.nmi = true
}

// AssertReset schedules the reset sequence for the next instruction
// boundary. Unlike Reset() the registers are not put into their power-on
// state. The reset sequence is seven cycles long and behaves like an
// interrupt with the stack writes suppressed. A halted CPU can be recovered
// this way.
func (mc *CPU) AssertReset() {
	mc.reset = true
}
