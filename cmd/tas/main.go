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

// tas is the Tangle assembler driver: parse -> relocate -> emit.
package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davidsondfgl/tangle/pkg/tasm"
)

var helpvar bool
var debugvar bool
var outvar string

const usage = "tas [-h] [-o OUTPUT] [-debug] INPUT"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "h", false, "Displays command usage")
	flag.BoolVar(
		&debugvar, "debug", false,
		"Emits a .tdb gob-encoded symbol table beside the output",
	)
	flag.StringVar(&outvar, "o", "", "Output file (default ram.hex)")
	flag.Parse()
}

func run() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 1
	}

	args := flag.Args()
	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	infile := args[0]
	file, err := os.Open(infile)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer file.Close()

	if outvar == "" {
		outvar = "ram.hex"
	}

	var symtab *tasm.SymbolTable
	if debugvar {
		symtab = &tasm.SymbolTable{Labels: make(map[string]uint16)}
	}

	records, errs := tasm.Assemble(filepath.Base(infile), file, symtab)
	if len(errs) > 0 {
		for _, err := range errs {
			log.Println(err)
		}
		return 1
	}

	out, err := os.Create(outvar)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer out.Close()

	if err := tasm.WriteHex(out, filepath.Base(infile), records); err != nil {
		log.Println(err)
		return 1
	}

	if debugvar {
		dbname := strings.TrimSuffix(outvar, filepath.Ext(outvar)) + ".tdb"

		dbfile, err := os.Create(dbname)
		if err != nil {
			log.Println(err)
			return 1
		}
		defer dbfile.Close()

		if err := gob.NewEncoder(dbfile).Encode(symtab); err != nil {
			log.Println(err)
			return 1
		}
	}

	return 0
}

func main() {
	os.Exit(run())
}
