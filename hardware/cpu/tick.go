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
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Tick advances the CPU by one clock cycle. At most one bus transaction is
// made with the mem argument.
//
// Errors from the bus are returned unchanged and leave the CPU exactly as it
// was before the call. Calling Tick() again will retry the same cycle.
func (mc *CPU) Tick(mem cpubus.Memory) error {
	if mc.halt != nil {
		if !mc.reset {
			return mc.halt
		}
		mc.halt = nil
	}

	if mc.cycle == 0 {
		return mc.fetch(mem)
	}

	return mc.execute(mem)
}

// fetch is the first cycle of every instruction. pending interrupts replace
// the instruction with an interrupt sequence.
func (mc *CPU) fetch(mem cpubus.Memory) error {
	interrupt := execution.NoInterrupt
	switch {
	case mc.reset:
		interrupt = execution.Reset
	case mc.nmi:
		interrupt = execution.NMI
	case mc.irq && !mc.status.InterruptDisable:
		interrupt = execution.IRQ
	}

	if interrupt != execution.NoInterrupt {
		// the opcode is read but is discarded and the PC is not advanced
		if err := mc.phantomRead(mem, mc.pc.Address()); err != nil {
			return err
		}

		switch interrupt {
		case execution.Reset:
			mc.reset = false
		case execution.NMI:
			mc.nmi = false
		}

		mc.lastResult = execution.Result{
			Address:   mc.pc.Address(),
			Interrupt: interrupt,
			Cycles:    1,
		}
		mc.interrupt = interrupt
		mc.defn = instructions.Definition{}
		if interrupt == execution.Reset {
			mc.seq = seqReset
		} else {
			mc.seq = seqInterrupt
		}
		mc.step = 0
		mc.cycle = 1
		return nil
	}

	opcode, err := mem.Read(mc.pc.Address())
	if err != nil {
		return err
	}

	defn := instructions.Lookup(opcode)
	if !defn.IsDefined() {
		mc.halt = IllegalOpcode{Opcode: opcode, Address: mc.pc.Address()}
		mc.lastResult = execution.Result{
			Address:   mc.pc.Address(),
			Defn:      defn,
			ByteCount: 1,
			Cycles:    1,
			Final:     true,
		}
		return mc.halt
	}

	mc.lastResult = execution.Result{
		Address:   mc.pc.Address(),
		Defn:      defn,
		ByteCount: 1,
		Cycles:    1,
	}
	mc.pc.Increment()
	mc.defn = defn
	mc.seq = sequence(defn)
	mc.step = 0
	mc.cycle = 1

	return nil
}

// execute runs micro-operations until one of them uses the cycle.
func (mc *CPU) execute(mem cpubus.Memory) error {
	step := mc.step

	for mc.step < len(mc.seq) {
		used, err := mc.seq[mc.step](mc, mem)
		if err != nil {
			// micro-operations that did not use the cycle changed nothing so
			// the step can be safely rewound
			mc.step = step
			return err
		}
		mc.step++

		if used {
			mc.cycle++
			mc.lastResult.Cycles++
			if mc.done || mc.step >= len(mc.seq) {
				mc.lastResult.Final = true
				mc.endInstruction()
			}
			return nil
		}
	}

	// a sequence must always end with a micro-operation that uses the cycle
	return curated.Errorf("cpu: no micro-operation for cycle %d of %s", mc.cycle, mc.defn)
}
