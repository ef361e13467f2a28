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

// Package functional_test runs the 6502 functional test as defined by Klaus
// Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binary is not part of the repository. Assemble 6502_functional_test.a65
// with the ROM_vectors option disabled and place 6502_functional_test.bin in
// this directory. The test is skipped if the binary is missing.
//
// The test program traps on failure by jumping to itself. The address of the
// trap is compared against the known address of the success trap.
package functional_test
