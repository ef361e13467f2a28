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

// Package thomharte contains 6502 single-step tests as created/maintained by
// Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included in the repository. Add the
// instructions you want to test from the 6502/v1 directory on Github to the
// 6502/v1 directory in this package. The test is skipped if the directory does
// not exist.
//
// The CPU is run with PhantomAccess enabled so that the bus activity of every
// cycle can be compared with the test data.
package thomharte
