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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// so that the caller can decide whether to continue. The Demand*() functions
// call t.Fatalf() instead.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is a success if it is true and an error is a success if it is
// nil. The untyped nil value is considered a success. This may not be how we
// want to interpret nil in all situations but because of how errors usually
// work (nil to indicate no error) we need to interpret nil in this way.
//
// All functions accept an optional list of tags. The tags are printed at the
// start of any failure message and are useful when the test is being run over
// many values in a loop (eg. the opcode being tested).
//
// The CompareWriter type is an implementation of io.Writer that can be used
// to capture output and compare it with an expected string.
package test
