// Copyright (C) 2021  Antonio Lassandro
// Copyright (c) 2020 Davidson Francis <davidsondfgl@gmail.com>

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

// tsim loads a Tangle hex image and runs it on the reference CPU
// model, optionally under an interactive breakpoint/watchpoint
// debugger.
package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/davidsondfgl/tangle/pkg/debugger"
	"github.com/davidsondfgl/tangle/pkg/tasm"
	"github.com/davidsondfgl/tangle/pkg/tcpu"
	"github.com/davidsondfgl/tangle/pkg/tisa"
)

var helpvar bool
var debugvar bool
var shouldexit bool

const usage = "tsim [-h] [-debug] INPUT.hex"

// budget is the driver's documented termination convention for
// programs that never hit the self-jump halt sentinel (see §5 of the
// architecture notes: implementations must document their choice).
const budget = 1 << 20

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "h", false, "Displays command usage")
	flag.BoolVar(&debugvar, "debug", false, "Runs the machine in an interactive debug REPL")
	flag.Parse()
}

func run() int {
	if helpvar {
		fmt.Println(usage)
		return 1
	}

	args := flag.Args()
	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	file, err := os.Open(args[0])
	if err != nil {
		log.Println(err)
		return 1
	}
	defer file.Close()

	mc := tcpu.NewMachine(tisa.DefaultPCWidth)

	if err := mc.LoadHex(file); err != nil {
		log.Println(err)
		return 1
	}

	var dbg debugger.Debugger

	if debugvar {
		dbg.HandleBreak = handleBreak
		dbg.HandleRead = handleRead
		dbg.HandleWrite = handleWrite
		mc.Debugger = &dbg

		dbname := strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".tdb"
		if dbfile, err := os.Open(dbname); err == nil {
			var symtab tasm.SymbolTable
			if err := gob.NewDecoder(dbfile).Decode(&symtab); err == nil {
				dbg.SymTable = &symtab
			}
			dbfile.Close()
		}

		c := make(chan os.Signal, 1)
		defer close(c)
		signal.Notify(c, os.Interrupt)
		go func() {
			for range c {
				fmt.Println()
				dbg.Break = true
			}
		}()
	}

	enterRawTerm()
	defer exitRawTerm()

	if debugvar {
		debugREPL(&dbg, mc)
	}

	for !shouldexit && !mc.Halted && mc.Ticks < budget {
		mc.Step()
	}

	return 0
}

func main() {
	os.Exit(run())
}
