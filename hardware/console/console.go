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

package console

import (
	"io"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
)

// register offsets from the base address.
const (
	Data   = 0x00
	Status = 0x01
)

// StatusInputReady is set in the Status register when a byte of input is
// waiting to be read.
const StatusInputReady = 0x80

// the number of input bytes that can be buffered before the input goroutine
// waits for the CPU to catch up
const inputBuffer = 256

// Console is a character device that can be mapped into an address space.
type Console struct {
	base   uint16
	output io.Writer

	// bytes read from the input by the input goroutine
	input chan uint8

	// the next byte of input. only valid if ready is true
	next  uint8
	ready bool
}

// the highest base address for which both registers fit in the address space
const maxBase = 0xffff - Status

// NewConsole is the preferred method of initialisation for the Console type.
// Either output or input can be nil. A nil output discards written bytes and
// a nil input means input is never ready.
//
// The registers occupy two addresses so the base address can be no higher
// than 0xfffe.
func NewConsole(base uint16, output io.Writer, input io.Reader) (*Console, error) {
	if base > maxBase {
		return nil, curated.Errorf("console: base address %04x leaves no room for the status register", base)
	}

	con := &Console{
		base:   base,
		output: output,
		input:  make(chan uint8, inputBuffer),
	}

	if input != nil {
		go con.read(input)
	}

	return con, nil
}

// read input until EOF or an error
func (con *Console) read(input io.Reader) {
	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 {
			con.input <- b[0]
		}
		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "console", err)
			}
			return
		}
	}
}

// Binding returns a memorymap.Binding for the console's registers.
func (con *Console) Binding() memorymap.Binding {
	return memorymap.Map("console", con.base, con.base+Status, con)
}

// poll the input channel without blocking
func (con *Console) poll() {
	if con.ready {
		return
	}
	select {
	case con.next = <-con.input:
		con.ready = true
	default:
	}
}

// Read implements the cpubus.Reader interface.
func (con *Console) Read(address uint16) (uint8, error) {
	switch address - con.base {
	case Data:
		con.poll()
		if !con.ready {
			return 0, nil
		}
		con.ready = false
		return con.next, nil
	case Status:
		con.poll()
		if con.ready {
			return StatusInputReady, nil
		}
		return 0, nil
	}
	return 0, cpubus.ReadError{Address: address}
}

// Write implements the cpubus.Writer interface.
func (con *Console) Write(address uint16, data uint8) error {
	if address-con.base != Data {
		return cpubus.WriteError{Address: address}
	}
	if con.output == nil {
		return nil
	}
	if _, err := con.output.Write([]byte{data}); err != nil {
		return curated.Errorf("console: %v", err)
	}
	return nil
}

// Peek implements the cpubus.Debugger interface. Peeking does not take input
// from the input goroutine. Input that has arrived but which has not yet been
// seen by a Read() is indicated by the Status register but the Data register
// will read as zero.
func (con *Console) Peek(address uint16) (uint8, error) {
	switch address - con.base {
	case Data:
		if con.ready {
			return con.next, nil
		}
		return 0, nil
	case Status:
		if con.ready || len(con.input) > 0 {
			return StatusInputReady, nil
		}
		return 0, nil
	}
	return 0, cpubus.ReadError{Address: address}
}

// Poke implements the cpubus.Debugger interface. The console registers can
// not be poked.
func (con *Console) Poke(address uint16, value uint8) error {
	return curated.Errorf("console: cannot poke %04x", address)
}
