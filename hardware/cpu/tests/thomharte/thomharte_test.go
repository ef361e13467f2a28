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

package thomharte

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

// the posible memory events recorded by the memory implementation. also used to seal the memEvent
// types in the BusCycle test data
type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

type testMem struct {
	internal   []uint8
	addressBus uint16
	dataBus    uint8
	lastEvent  memEvent

	// number of bus transactions since the field was last reset
	transactions int
}

func newTestMem() *testMem {
	return &testMem{
		// the CPU has a 16bit address bus so the maximum amount of memory is 64k
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	mem.addressBus = address
	mem.dataBus = mem.internal[address]
	mem.lastEvent = read
	mem.transactions++
	return mem.dataBus, nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.addressBus = address
	mem.dataBus = data
	mem.internal[address] = data
	mem.lastEvent = write
	mem.transactions++
	return nil
}

type RAMEntry struct {
	Address uint16 `json:"0"`
	Value   uint8  `json:"1"`
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type to prevent recursion
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("6502", "v1")

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if errors.Is(err, fs.ErrNotExist) {
		t.Skipf("%s not present", testsPath)
	}
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range d {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		// files are named after the opcode they test. undefined opcodes halt
		// the CPU and can't be tested
		opcode, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), ".json"), 16, 8)
		if err != nil {
			continue
		}
		if !instructions.Lookup(uint8(opcode)).IsDefined() {
			t.Logf("skipping undefined opcode %02x", opcode)
			continue
		}

		testThomHarte(t, filepath.Join(testsPath, e.Name()))
	}
}

func testThomHarte(t *testing.T, testFile string) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU()
	mc.PhantomAccess = true
	test.DemandSuccess(t, mc.Reset(nil))

	for i, s := range tests {
		test.DemandSuccess(t, mc.LoadRegisters(cpu.Registers{
			PC:     uint16(s.Initial.PC),
			A:      uint8(s.Initial.A),
			X:      uint8(s.Initial.X),
			Y:      uint8(s.Initial.Y),
			SP:     uint8(s.Initial.S),
			Status: uint8(s.Initial.P),
		}))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		for cycle := 0; ; cycle++ {
			mem.transactions = 0
			if err := mc.Tick(mem); err != nil {
				t.Fatalf("%s: %s: %v", testFile, s.Name, err)
			}

			if cycle >= len(s.Cycles) {
				t.Fatalf("%s: %s: too many cycles (%d)", testFile, s.Name, cycle+1)
			}

			var fail bool

			fail = !test.ExpectEquality(t, mem.transactions, 1, testFile, i, "bus transactions") || fail
			fail = !test.ExpectEquality(t, mem.addressBus, s.Cycles[cycle].Address, testFile, i, "address bus") || fail
			fail = !test.ExpectEquality(t, mem.dataBus, s.Cycles[cycle].Data, testFile, i, "data bus") || fail
			fail = !test.ExpectEquality(t, mem.lastEvent, s.Cycles[cycle].Event, testFile, i, "memory event") || fail

			if fail {
				t.Logf("last instruction: %s", mc.LastResult().Defn)
				t.Fatalf("%s: failed on line %d, cycle %d", testFile, i, cycle)
			}

			if mc.AtFetch() {
				test.ExpectEquality(t, cycle+1, len(s.Cycles), testFile, i, "cycles")
				break
			}
		}

		r := mc.Registers()

		var fail bool

		fail = !test.ExpectEquality(t, r.PC, uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, r.A, uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, r.X, uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, r.Y, uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, r.SP, uint8(s.Final.S), testFile, i, "SP") || fail
		fail = !test.ExpectEquality(t, r.Status&0xef, uint8(s.Final.P)&0xef, testFile, i, "Status") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, i, "RAM %04x", r.Address) || fail
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult().Defn)
			t.Fatalf("%s: failed on line %d", testFile, i)
		}
	}
}
