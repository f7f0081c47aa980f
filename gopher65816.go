// This file is part of Gopher65816.
//
// Gopher65816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65816.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gopher65816/gopher65816/cartridgeloader"
	"github.com/gopher65816/gopher65816/disassembly"
	"github.com/gopher65816/gopher65816/hardware"
	"github.com/gopher65816/gopher65816/logger"
	"github.com/gopher65816/gopher65816/modalflag"
	"github.com/gopher65816/gopher65816/monitor"
	"github.com/gopher65816/gopher65816/performance"
	"github.com/gopher65816/gopher65816/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "MONITOR", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "MONITOR":
		err = monitorMode(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// load the cartridge named in the remaining arguments and build a
// console around it.
func createConsole(md *modalflag.Modes) (*hardware.Console, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge file required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		err := cartload.Load()
		if err != nil {
			return nil, err
		}

		logger.Logf("main", "cartridge %s (%s)", cartload.Filename, cartload.Hash)

		return hardware.NewConsole(cartload.Data)
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	trace := md.AddBool("trace", false, "print every instruction executed")
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available. rebuild with statsview build tag")
		}
	}

	con, err := createConsole(md)
	if err != nil {
		return err
	}

	// ctrl-c stops the run loop cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = con.Run(func() (bool, error) {
		if *trace {
			res := con.CPU.LastResult
			fmt.Printf("%06x %s\n", res.Address, disassembly.FormatResult(res))
		}

		select {
		case <-intChan:
			return false, nil
		default:
		}

		return true, nil
	})
	if err != nil {
		return err
	}

	fmt.Println(con.CPU.String())

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	count := md.AddInt("n", 64, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := createConsole(md)
	if err != nil {
		return err
	}

	return disassembly.FromMemory(md.Output, con.CPU, *count)
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := createConsole(md)
	if err != nil {
		return err
	}

	return monitor.NewMonitor(con).Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := createConsole(md)
	if err != nil {
		return err
	}

	prf := performance.ProfileNone
	if *profile {
		prf = performance.ProfileAll
	}

	return performance.Check(md.Output, con, *duration, prf)
}
