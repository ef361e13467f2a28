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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.String(), "test=00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectEquality(t, r8.Value(), 1)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, carry)
	r8.Load(1)
	carry, _ = r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, carry)
	r8.Load(1)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectSuccess(t, carry)

	// signed overflow on subtraction
	r8.Load(0x80)
	_, overflow = r8.Subtract(0x01, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectSuccess(t, overflow)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectFailure(t, carry)

	// increment and decrement wrap
	r8.Increment()
	test.ExpectEquality(t, r8.Value(), 0x00)
	r8.Decrement()
	test.ExpectEquality(t, r8.Value(), 0xff)
}

func TestAddSubtractRoundTrip(t *testing.T) {
	r8 := registers.NewRegister(0, "A")
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			r8.Load(uint8(a))
			r8.Add(uint8(b), false)
			r8.Subtract(uint8(b), true)
			if !test.ExpectEquality(t, r8.Value(), uint8(a), "%02x %02x", a, b) {
				return
			}
		}
	}
}

func TestZeroAndSign(t *testing.T) {
	r8 := registers.NewRegister(0, "A")
	sr := registers.NewStatusRegister()
	for v := 0; v <= 0xff; v++ {
		r8.Load(uint8(v))
		sr.SetZN(r8.Value())
		test.ExpectEquality(t, r8.IsZero(), v == 0)
		test.ExpectEquality(t, r8.IsNegative(), v&0x80 == 0x80)
		test.ExpectEquality(t, sr.Zero, v == 0)
		test.ExpectEquality(t, sr.Sign, v&0x80 == 0x80)
	}
}
