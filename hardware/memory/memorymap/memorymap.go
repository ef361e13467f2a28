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

package memorymap

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Binding claims a range of addresses for a device. The range is inclusive
// of both Origin and Memtop.
//
// Reader and Writer can be the same device or different devices. One of them
// may be nil but not both.
type Binding struct {
	Label  string
	Origin uint16
	Memtop uint16
	Reader cpubus.Reader
	Writer cpubus.Writer
}

// Map creates a binding that both reads from and writes to the device.
func Map(label string, origin uint16, memtop uint16, mem cpubus.Memory) Binding {
	return Binding{
		Label:  label,
		Origin: origin,
		Memtop: memtop,
		Reader: mem,
		Writer: mem,
	}
}

// MapReader creates a binding that only reads from the device.
func MapReader(label string, origin uint16, memtop uint16, r cpubus.Reader) Binding {
	return Binding{
		Label:  label,
		Origin: origin,
		Memtop: memtop,
		Reader: r,
	}
}

// MapWriter creates a binding that only writes to the device.
func MapWriter(label string, origin uint16, memtop uint16, w cpubus.Writer) Binding {
	return Binding{
		Label:  label,
		Origin: origin,
		Memtop: memtop,
		Writer: w,
	}
}

func (b Binding) validate() error {
	if b.Label == "" {
		return curated.Errorf("memorymap: binding at %04x has no label", b.Origin)
	}
	if b.Origin > b.Memtop {
		return curated.Errorf("memorymap: %s: origin (%04x) is after memtop (%04x)", b.Label, b.Origin, b.Memtop)
	}
	if b.Reader == nil && b.Writer == nil {
		return curated.Errorf("memorymap: %s: no reader or writer", b.Label)
	}
	return nil
}

// the maximum number of bindings in an address space. binding indexes are
// stored as int16 in the dispatch tables
const maxBindings = 0x7fff

// value in the dispatch tables indicating no owner
const unowned = int16(-1)

// AddressSpace implements the cpubus.Memory interface by delegating every
// access to the device that owns the address.
type AddressSpace struct {
	bindings []Binding

	// index into the bindings slice for every address
	read  [0x10000]int16
	write [0x10000]int16
}

// New creates an AddressSpace from the list of bindings. Earlier bindings
// take precedence over later bindings. Addresses with no owner are allowed.
func New(bindings ...Binding) (*AddressSpace, error) {
	if len(bindings) > maxBindings {
		return nil, curated.Errorf("memorymap: too many bindings (%d)", len(bindings))
	}

	as := &AddressSpace{
		bindings: make([]Binding, len(bindings)),
	}
	copy(as.bindings, bindings)

	for i := range as.read {
		as.read[i] = unowned
		as.write[i] = unowned
	}

	for i, b := range as.bindings {
		if err := b.validate(); err != nil {
			return nil, err
		}

		var claimed bool

		// addresses are stored as int so that a memtop of 0xffff does not
		// cause the loop to wrap
		for a := int(b.Origin); a <= int(b.Memtop); a++ {
			if b.Reader != nil && as.read[a] == unowned {
				as.read[a] = int16(i)
				claimed = true
			}
			if b.Writer != nil && as.write[a] == unowned {
				as.write[a] = int16(i)
				claimed = true
			}
		}

		if !claimed {
			logger.Logf(logger.Allow, "memorymap", "%s (%04x -> %04x) is entirely shadowed", b.Label, b.Origin, b.Memtop)
		}
	}

	return as, nil
}

// NewStrict is like New() except that every address must have an owner for
// reading and an owner for writing.
func NewStrict(bindings ...Binding) (*AddressSpace, error) {
	as, err := New(bindings...)
	if err != nil {
		return nil, err
	}

	for a := range as.read {
		if as.read[a] == unowned {
			return nil, curated.Errorf("memorymap: no reader for address %04x", a)
		}
		if as.write[a] == unowned {
			return nil, curated.Errorf("memorymap: no writer for address %04x", a)
		}
	}

	return as, nil
}

// Read implements the cpubus.Reader interface.
func (as *AddressSpace) Read(address uint16) (uint8, error) {
	i := as.read[address]
	if i == unowned {
		return 0, cpubus.ReadError{Address: address}
	}
	return as.bindings[i].Reader.Read(address)
}

// Write implements the cpubus.Writer interface.
func (as *AddressSpace) Write(address uint16, data uint8) error {
	i := as.write[address]
	if i == unowned {
		return cpubus.WriteError{Address: address}
	}
	return as.bindings[i].Writer.Write(address, data)
}

// Peek implements the cpubus.Debugger interface. The read owner of the
// address must also implement cpubus.Debugger.
func (as *AddressSpace) Peek(address uint16) (uint8, error) {
	i := as.read[address]
	if i == unowned {
		return 0, cpubus.ReadError{Address: address}
	}
	if d, ok := as.bindings[i].Reader.(cpubus.Debugger); ok {
		return d.Peek(address)
	}
	return 0, curated.Errorf("memorymap: %s: cannot peek %04x", as.bindings[i].Label, address)
}

// Poke implements the cpubus.Debugger interface. The write owner of the
// address must also implement cpubus.Debugger.
func (as *AddressSpace) Poke(address uint16, value uint8) error {
	i := as.write[address]
	if i == unowned {
		return cpubus.WriteError{Address: address}
	}
	if d, ok := as.bindings[i].Writer.(cpubus.Debugger); ok {
		return d.Poke(address, value)
	}
	return curated.Errorf("memorymap: %s: cannot poke %04x", as.bindings[i].Label, address)
}

// Owner returns the label of the binding that owns the address for reading
// or for writing. The boolean return value is false if no binding owns the
// address.
func (as *AddressSpace) Owner(address uint16, write bool) (string, bool) {
	i := as.read[address]
	if write {
		i = as.write[address]
	}
	if i == unowned {
		return "", false
	}
	return as.bindings[i].Label, true
}

// Bindings returns a copy of the bindings used to create the address space.
func (as *AddressSpace) Bindings() []Binding {
	b := make([]Binding, len(as.bindings))
	copy(b, as.bindings)
	return b
}
