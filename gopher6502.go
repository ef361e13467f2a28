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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/console"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch processes the command line arguments and runs the selected mode.
// returns the exit value of the program
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "MAP")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "MAP":
		err = mapMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitOK
}

// the flags common to the RUN and MAP modes
type imageFlags struct {
	load    *modalflag.Address
	rom     *bool
	entry   *modalflag.Address
	console *modalflag.Address
}

func addImageFlags(md *modalflag.Modes) imageFlags {
	return imageFlags{
		load:    md.AddAddress("load", 0x0000, "load address of the binary image"),
		rom:     md.AddBool("rom", false, "map the binary image as ROM"),
		entry:   md.AddAddress("entry", 0x0000, "entry address. overrides the reset vector"),
		console: md.AddAddress("console", 0x0000, "base address of the console device (0x0001 to 0xfffe). zero for no console"),
	}
}

func (f imageFlags) config() machineConfig {
	return machineConfig{
		load:     f.load.Value,
		rom:      *f.rom,
		entry:    f.entry.Value,
		useEntry: f.entry.Specified,
		console:  f.console.Value,
	}
}

// loadImage reads the file named by the only remaining argument
func loadImage(md *modalflag.Modes) ([]uint8, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("binary image required for %s mode", md)
	case 1:
		image, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return nil, curated.Errorf("%v", err)
		}
		return image, nil
	}
	return nil, curated.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	imgFlags := addImageFlags(md)
	cycles := md.AddInt("cycles", 0, "number of cycles to run for. zero for no limit")
	trap := md.AddBool("trap", true, "stop when an instruction does not change the PC")
	dump := md.AddString("memviz", "", "write a graphviz representation of the CPU to file on stop")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(output)
	}

	image, err := loadImage(md)
	if err != nil {
		return err
	}

	cfg := imgFlags.config()
	cfg.output = output

	var trm *console.Terminal
	if cfg.console != 0 {
		cfg.input = os.Stdin
		trm = console.NewTerminal(os.Stdin)
	}

	m, err := newMachine(image, cfg)
	if err != nil {
		return err
	}

	if trm != nil {
		if err := trm.CBreakMode(); err != nil {
			return err
		}
		defer trm.Restore()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	defer signal.Stop(quit)

	reason, runErr := m.run(*cycles, *trap, quit)

	if *dump != "" {
		if err := writeMemviz(*dump, m); err != nil {
			logger.Log(logger.Allow, "memviz", err)
		}
	}

	report(output, m, reason)

	return runErr
}

// report the state of the machine
func report(output io.Writer, m *machine, reason stopReason) {
	if reason != "" {
		fmt.Fprintf(output, "\n* %s after %d instructions (%d cycles)\n", reason, m.instructions, m.cycles)
	} else {
		fmt.Fprintf(output, "\n* stopped after %d instructions (%d cycles)\n", m.instructions, m.cycles)
	}
	fmt.Fprintf(output, "%s\n", m.mc)
	fmt.Fprintf(output, "%s\n", m.mc.LastResult())
}

// the part of the CPU written by writeMemviz()
type cpuState struct {
	Registers  cpu.Registers
	LastResult execution.Result
}

func writeMemviz(filename string, m *machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, &cpuState{
		Registers:  m.mc.Registers(),
		LastResult: m.mc.LastResult(),
	})

	logger.Logf(logger.Allow, "memviz", "CPU state written to %s", filename)
	return nil
}

func mapMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("prints the address space for the binary image and flags")

	imgFlags := addImageFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := loadImage(md)
	if err != nil {
		return err
	}

	m, err := newMachine(image, imgFlags.config())
	if err != nil {
		return err
	}

	io.WriteString(output, m.mem.Summary())
	return nil
}
