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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpAdditional(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"MAP", "-help"})
	md.AddSubModes("RUN", "MAP")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "MAP")

	md.NewMode()
	md.AdditionalHelp("prints the address space")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage: for MAP mode\n\nprints the address space\n"), tw.String())
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"map", "-rom", "image.bin"})
	md.AddSubModes("RUN", "MAP")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "MAP")

	md.NewMode()
	rom := md.AddBool("rom", false, "")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *rom)
	test.ExpectEquality(t, md.GetArg(0), "image.bin")
	test.ExpectEquality(t, md.Path(), "MAP")
}

func TestDefaultMode(t *testing.T) {
	// flags that belong to the default mode
	md := modalflag.Modes{}
	md.NewArgs([]string{"-cycles", "100", "image.bin"})
	md.AddSubModes("RUN", "MAP")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	cycles := md.AddInt("cycles", 0, "")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *cycles, 100)
	test.ExpectEquality(t, md.GetArg(0), "image.bin")

	// no flags and no mode
	md.NewArgs([]string{"image.bin"})
	md.AddSubModes("RUN", "MAP")
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "RUN")
	md.NewMode()
	_, _ = md.Parse()
	test.ExpectEquality(t, md.GetArg(0), "image.bin")
}

func TestAddress(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-load", "0x0400", "-entry", "$c000", "-console", "61440"})
	load := md.AddAddress("load", 0x0000, "")
	entry := md.AddAddress("entry", 0x0000, "")
	console := md.AddAddress("console", 0x0000, "")
	other := md.AddAddress("other", 0x1234, "")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, load.Value, 0x0400)
	test.ExpectEquality(t, entry.Value, 0xc000)
	test.ExpectEquality(t, console.Value, 0xf000)
	test.ExpectSuccess(t, console.Specified)
	test.ExpectEquality(t, other.Value, 0x1234)
	test.ExpectFailure(t, other.Specified)

	md.NewArgs([]string{"-load", "0x10000"})
	md.AddAddress("load", 0x0000, "")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}
