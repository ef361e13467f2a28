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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes one of them
	// to be dropped
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	// plain errors are not curated
	p := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Has(p, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

type typedError struct {
	address uint16
}

func (e typedError) Error() string {
	return "typed error"
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapPattern, typedError{address: 0x1234})

	var te typedError
	test.ExpectSuccess(t, errors.As(e, &te))
	test.ExpectEquality(t, te.address, uint16(0x1234))

	// unwrapping through more than one level of curated error
	f := curated.Errorf("outer: %v", e)
	te = typedError{}
	test.ExpectSuccess(t, errors.As(f, &te))
	test.ExpectEquality(t, te.address, uint16(0x1234))

	// no error in the placeholder values
	g := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, errors.Unwrap(g) == nil)
}
