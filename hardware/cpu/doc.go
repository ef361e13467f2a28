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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// Execution is advanced one clock cycle at a time with the Tick() function.
// Each call to Tick() performs at most one bus transaction. The first cycle
// of every instruction fetches the opcode; the remaining cycles follow the
// documented cycle-by-cycle bus activity of the addressing mode and
// instruction. Between calls to Tick() the CPU remembers how far through the
// instruction it is. A machine that needs to clock other chips alongside the
// CPU does so between calls to Tick().
//
//	mc := cpu.NewCPU()
//	err := mc.Reset(mem)
//
//	for err == nil {
//		err = mc.Tick(mem)
//		tia.Step()
//	}
//
// The memory argument is borrowed for the duration of the tick. The CPU never
// keeps a reference to it.
//
// Errors returned by the memory are returned by Tick() unchanged. The tick is
// abandoned and no register or flag is changed. Undefined opcodes cause the
// CPU to halt with an IllegalOpcode error. A halted CPU continues to return
// the same error until it is reset, either with Reset() or by asserting the
// reset line with AssertReset().
//
// Interrupts are polled when an opcode is about to be fetched. If an
// interrupt is pending the fetch is replaced by the seven cycle interrupt
// sequence. The reset line has priority over NMI, which has priority over IRQ.
//
// Dummy cycles, where the real 6502 reads or writes a value that is then
// ignored, make no bus transaction unless the PhantomAccess field is true.
// Single step test suites that check every bus transaction require
// PhantomAccess to be true. Machines where reading a peripheral register has
// side effects will also want it.
//
// The LastResult() function can be probed for information about the last
// instruction executed, or about the current instruction if the CPU is
// mid-instruction. See the execution package for more information.
package cpu
