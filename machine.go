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

package main

import (
	"io"
	"os"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/console"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
)

// machineConfig describes how a binary image is placed in the address space.
type machineConfig struct {
	// load address of the image
	load uint16

	// map the image as ROM. the rest of the address space is RAM
	rom bool

	// if useEntry is true then the PC is set to entry after reset.
	// otherwise the PC is taken from the reset vector
	entry    uint16
	useEntry bool

	// base address of the console device. zero means no console
	console uint16

	// console input and output. either can be nil
	output io.Writer
	input  io.Reader
}

// the reason the machine stopped running.
type stopReason string

const (
	stopTrap      stopReason = "trap"
	stopLimit     stopReason = "cycle limit"
	stopInterrupt stopReason = "interrupted"
)

// how often the quit channel is checked
const quitCheckCycles = 1024

// machine is the owner of the CPU and the address space.
type machine struct {
	mem *memorymap.AddressSpace
	mc  *cpu.CPU
	con *console.Console

	cycles       int
	instructions int
}

func newMachine(image []uint8, cfg machineConfig) (*machine, error) {
	if len(image) == 0 {
		return nil, curated.Errorf("machine: empty image")
	}
	if len(image) > 0x10000 {
		return nil, curated.Errorf("machine: image is larger than the address space (%d bytes)", len(image))
	}

	m := &machine{
		mc: cpu.NewCPU(),
	}

	var bindings []memorymap.Binding

	if cfg.console != 0 {
		var err error
		m.con, err = console.NewConsole(cfg.console, cfg.output, cfg.input)
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
		bindings = append(bindings, m.con.Binding())
	}

	ram := memory.NewRAM(0x0000, 0x10000)

	if cfg.rom {
		memtop := int(cfg.load) + len(image) - 1
		if memtop > 0xffff {
			return nil, curated.Errorf("machine: ROM does not fit at %04x (%d bytes)", cfg.load, len(image))
		}
		rom, err := memory.NewROM(cfg.load, image)
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
		bindings = append(bindings, memorymap.Map("ROM", cfg.load, uint16(memtop), rom))
	} else {
		ram.Load(cfg.load, image)
	}

	bindings = append(bindings, memorymap.Map("RAM", 0x0000, 0xffff, ram))

	var err error
	m.mem, err = memorymap.NewStrict(bindings...)
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	if err := m.mc.Reset(m.mem); err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	if cfg.useEntry {
		r := m.mc.Registers()
		r.PC = cfg.entry
		if err := m.mc.LoadRegisters(r); err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
	}

	logger.Logf(logger.Allow, "machine", "%d bytes at %04x. PC=%04x", len(image), cfg.load, m.mc.Registers().PC)

	return m, nil
}

// run the machine until the cycle limit is reached, the program traps, a
// signal is received on the quit channel or an error occurs. A limit of zero
// means no limit. A program traps if an instruction leaves the PC unchanged.
func (m *machine) run(limit int, trap bool, quit <-chan os.Signal) (stopReason, error) {
	for {
		if limit > 0 && m.cycles >= limit {
			return stopLimit, nil
		}

		if m.cycles%quitCheckCycles == 0 {
			select {
			case <-quit:
				return stopInterrupt, nil
			default:
			}
		}

		if err := m.mc.Tick(m.mem); err != nil {
			return "", curated.Errorf("machine: %v", err)
		}
		m.cycles++

		if m.mc.AtFetch() {
			m.instructions++

			res := m.mc.LastResult()
			if trap && res.Interrupt == execution.NoInterrupt && res.Address == m.mc.Registers().PC {
				logger.Logf(logger.Allow, "machine", "trapped at %04x", res.Address)
				return stopTrap, nil
			}
		}
	}
}
