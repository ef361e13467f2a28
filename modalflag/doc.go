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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are supplied with NewArgs() and parsed with Parse(). Sub-modes
// are added with AddSubModes(), the first being the default. After Parse()
// the Mode() function returns the selected mode. A new set of flags for that
// mode can then be added after a call to NewMode() and parsed with a second
// call to Parse().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MAP")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 0, "number of cycles to run for")
//		origin := md.AddAddress("load", 0x0000, "load address of binary")
//		p, err := md.Parse()
//		...
//	}
//
// Sub-mode comparisons are case insensitive. Flags that are not recognised at
// a level with sub-modes are assumed to belong to the default sub-mode.
package modalflag
