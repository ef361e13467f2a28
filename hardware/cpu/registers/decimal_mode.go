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

package registers

// the decimal mode functions follow the NMOS 6502 behaviour as described in
// Appendix A of "Decimal Mode" by Bruce Clark.
//
// http://www.6502.org/tutorials/decimal_mode.html#A
//
// the accumulator result is correct for valid BCD values. the flags are
// produced exactly as the NMOS chip produces them, including for invalid BCD
// values. the flags on the 65C02 differ.

// AddDecimal adds value to register as though both register and value are
// packed BCD numbers. Returns the carry, zero, overflow and sign states.
//
// The zero flag is taken from the binary addition. The sign and overflow
// flags are taken from an intermediate result, after the low nibble has been
// adjusted but before the high nibble has been adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	// zero flag as if it were a binary addition
	zero = uint8(a+b+c) == 0

	// low nibble
	al := (a & 0x0f) + (b & 0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	// intermediate result using signed arithmetic. the sign and overflow
	// flags are taken from this value
	s := int(int8(a&0xf0)) + int(int8(b&0xf0)) + al
	sign = s&0x80 == 0x80
	overflow = s < -128 || s > 127

	// high nibble
	res := (a & 0xf0) + (b & 0xf0) + al
	if res >= 0xa0 {
		res += 0x60
	}

	r.value = uint8(res)
	rcarry = res >= 0x100

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both register and
// value are packed BCD numbers. Returns the carry, zero, overflow and sign
// states.
//
// On the NMOS 6502 all flags are the same as for binary subtraction. Only the
// value in the register is adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	// flags from the binary subtraction
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	// low nibble
	al := (a & 0x0f) - (b & 0x0f) + c - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}

	// high nibble
	res := (a & 0xf0) - (b & 0xf0) + al
	if res < 0 {
		res -= 0x60
	}

	r.value = uint8(res)

	return rcarry, zero, overflow, sign
}
