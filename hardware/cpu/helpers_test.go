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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

// the address at which test programs are placed
const origin = uint16(0x0200)

// busAccess is a record of a single bus transaction
type busAccess struct {
	address uint16
	data    uint8
	write   bool
}

// testMem is 64k of RAM that counts bus transactions
type testMem struct {
	internal []uint8

	// number of bus transactions in the current cycle. reset by step()
	transactions int

	// every bus transaction. cleared by the test as required
	log []busAccess

	// addresses that fail when read
	unreadable map[uint16]bool
}

func newTestMem() *testMem {
	return &testMem{
		internal:   make([]uint8, 0x10000),
		unreadable: make(map[uint16]bool),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	if mem.unreadable[address] {
		return 0, cpubus.ReadError{Address: address}
	}
	mem.transactions++
	mem.log = append(mem.log, busAccess{address: address, data: mem.internal[address]})
	return mem.internal[address], nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.transactions++
	mem.log = append(mem.log, busAccess{address: address, data: data, write: true})
	mem.internal[address] = data
	return nil
}

// load program at the origin and point the reset vector at it
func (mem *testMem) load(program ...uint8) {
	copy(mem.internal[origin:], program)
	mem.internal[cpubus.Reset] = uint8(origin & 0xff)
	mem.internal[cpubus.Reset+1] = uint8(origin >> 8)
}

// newTestCPU creates and resets a CPU
func newTestCPU(t *testing.T, mem *testMem) *cpu.CPU {
	t.Helper()
	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Reset(mem))
	return mc
}

// step runs the CPU until the end of the current instruction and returns the
// number of cycles it took. the number of bus transactions in every cycle
// is checked
func step(t *testing.T, mc *cpu.CPU, mem *testMem) int {
	t.Helper()

	var cycles int
	for {
		mem.transactions = 0
		test.DemandSuccess(t, mc.Tick(mem))
		cycles++

		if mc.PhantomAccess {
			test.DemandEquality(t, mem.transactions, 1, "bus transactions in cycle %d", cycles)
		} else if mem.transactions > 1 {
			t.Fatalf("too many bus transactions in cycle %d (%d)", cycles, mem.transactions)
		}

		if mc.AtFetch() {
			return cycles
		}

		if cycles > 10 {
			t.Fatalf("instruction has not finished after %d cycles", cycles)
		}
	}
}

// run a number of instructions
func run(t *testing.T, mc *cpu.CPU, mem *testMem, instructions int) {
	t.Helper()
	for _i := 0; _i < instructions; _i++ {
		step(t, mc, mem)
	}
}

// registers with modifications
func regs(mc *cpu.CPU, f func(r *cpu.Registers)) cpu.Registers {
	r := mc.Registers()
	f(&r)
	return r
}
