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

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/davidsondfgl/tangle/pkg/debugger"
	"github.com/davidsondfgl/tangle/pkg/tcpu"
)

var lastcmd []string

func decodeHex(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	return uint16(v), err
}

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		if len(args) != 1 {
			log.Println("break add [0x####]")
			return
		}

		addr, err := decodeHex(args[0])
		if err != nil {
			log.Println(err)
			return
		}

		for _, bp := range dbg.Breakpoints {
			if bp.Addr == addr {
				return
			}
		}

		dbg.Breakpoints = append(dbg.Breakpoints, debugger.Breakpoint{Addr: addr})
		fmt.Printf("Breakpoint added [%#04x]\n", addr)

	case "l", "ls", "list":
		for i, bp := range dbg.Breakpoints {
			fmt.Printf("#%d: %#04x\n", i, bp.Addr)
		}

	case "r", "rm", "remove":
		if len(args) != 1 {
			log.Println("break remove [#]")
			return
		}

		i, err := strconv.Atoi(args[0])
		if err != nil || i < 0 || i >= len(dbg.Breakpoints) {
			log.Println("invalid breakpoint number")
			return
		}

		dbg.Breakpoints = append(dbg.Breakpoints[:i], dbg.Breakpoints[i+1:]...)
		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = nil
		fmt.Println("Breakpoints reset")

	default:
		log.Printf("break: '%s' is not a valid command\n", cmd)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|rm]"

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		if len(args) != 2 {
			log.Println("watch add [0x####] [read|write|readwrite]")
			return
		}

		addr, err := decodeHex(args[0])
		if err != nil {
			log.Println(err)
			return
		}

		var wtype debugger.WatchpointType
		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			log.Println(usage)
			return
		}

		dbg.Watchpoints = append(dbg.Watchpoints, debugger.Watchpoint{Addr: addr, Type: wtype})
		fmt.Printf("Watchpoint added [%#04x]\n", addr)

	case "l", "ls", "list":
		for i, wp := range dbg.Watchpoints {
			fmt.Printf("#%d: %#04x\n", i, wp.Addr)
		}

	case "r", "rm", "remove":
		if len(args) != 1 {
			log.Println("watch rm [#]")
			return
		}

		i, err := strconv.Atoi(args[0])
		if err != nil || i < 0 || i >= len(dbg.Watchpoints) {
			log.Println("invalid watchpoint number")
			return
		}

		dbg.Watchpoints = append(dbg.Watchpoints[:i], dbg.Watchpoints[i+1:]...)
		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = nil
		fmt.Println("Watchpoints reset")

	default:
		log.Printf("watch: '%s' is not a valid command\n", cmd)
	}
}

func debugReg(mc *tcpu.Machine, args []string) {
	const usage = "register [r#|pc] [0x####]"

	if len(args) == 0 {
		return
	}

	if len(args) != 2 {
		log.Println(usage)
		return
	}

	value, err := decodeHex(args[1])
	if err != nil {
		log.Println(err)
		return
	}

	name := strings.ToLower(args[0])
	if name == "pc" {
		mc.PC = value
		return
	}

	if len(name) == 2 && name[0] == 'r' {
		n := int(name[1] - '0')
		if n >= 0 && n < len(mc.Registers) {
			mc.WriteReg(uint16(n), value)
			return
		}
	}

	log.Println("invalid register")
}

func debugLabels(dbg *debugger.Debugger, args []string) {
	if dbg.SymTable == nil {
		fmt.Println("No symbol table loaded")
		return
	}

	names := make([]string, 0, len(dbg.SymTable.Labels))
	for name := range dbg.SymTable.Labels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("\033[1m[%#04x]\033[0m %s\n", dbg.SymTable.Labels[name], name)
	}
}

func debugJump(dbg *debugger.Debugger, mc *tcpu.Machine, args []string) {
	const usage = "jump [0x####|label]"

	if len(args) != 1 {
		fmt.Println(usage)
		return
	}

	if addr, err := decodeHex(args[0]); err == nil {
		mc.PC = addr
		fmt.Printf("\033[1mpc:\033[0m %#04x\n", addr)
		return
	}

	if dbg.SymTable != nil {
		if addr, ok := dbg.SymTable.Labels[args[0]]; ok {
			mc.PC = addr
			fmt.Printf("\033[1mpc:\033[0m %#04x \033[1;30m(%s)\033[0m\n", addr, args[0])
			return
		}
	}

	fmt.Printf("unable to find '%s'\n", args[0])
}

func debugMemory(mc *tcpu.Machine, dbg *debugger.Debugger, args []string) {
	const usage = "memory [0x####] [#]"

	var addr uint16 = mc.PC
	var size uint16 = 1

	if len(args) > 0 {
		a, err := decodeHex(args[0])
		if err != nil {
			log.Println(usage)
			return
		}
		addr = a
	}

	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Println(usage)
			return
		}
		size = uint16(n)
	}

	dbg.PrintMem(mc, addr, size)
}

func debugSet(mc *tcpu.Machine, args []string) {
	const usage = "set [0x####] [0x####]"

	if len(args) != 2 {
		log.Println(usage)
		return
	}

	addr, err := decodeHex(args[0])
	if err != nil {
		log.Println(err)
		return
	}

	value, err := decodeHex(args[1])
	if err != nil {
		log.Println(err)
		return
	}

	mc.Memory[addr] = value
}

func debugREPL(dbg *debugger.Debugger, mc *tcpu.Machine) {
	exitRawTerm()
	defer enterRawTerm()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\033[1;30m(tsim)\033[0m ")

		if !scanner.Scan() {
			fmt.Println()
			shouldexit = true
			return
		}

		args := strings.Fields(scanner.Text())

		if len(args) == 0 {
			if len(lastcmd) == 0 {
				continue
			}
			args = lastcmd
		} else {
			lastcmd = append([]string(nil), args...)
		}

		cmd := args[0]
		args = args[1:]

		switch cmd {
		case "b", "break":
			debugBreak(dbg, args)

		case "w", "watch":
			debugWatch(dbg, args)

		case "r", "reg", "registers":
			if len(args) == 0 {
				dbg.PrintRegisters(mc)
			} else {
				debugReg(mc, args)
			}

		case "l", "label", "labels":
			debugLabels(dbg, args)

		case "j", "jump":
			debugJump(dbg, mc, args)

		case "m", "mem", "memory":
			debugMemory(mc, dbg, args)

		case "set":
			debugSet(mc, args)

		case "state":
			dbg.PrintState(mc)

		case "c", "continue":
			dbg.Break = false
			return

		case "n", "next":
			dbg.Break = true
			return

		case "si", "stepi":
			mc.Step()
			dbg.PrintState(mc)

		case "q", "quit", "exit":
			shouldexit = true
			return

		case "clear":
			fmt.Print("\033[H\033[2J")

		case "reset":
			mc.Reset()

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func handleBreak(dbg *debugger.Debugger, mc *tcpu.Machine) {
	if !dbg.Break {
		fmt.Println()
		fmt.Println("Program stopped")
		dbg.PrintRegisters(mc)
	}
	debugREPL(dbg, mc)
}

func handleRead(addr uint16, dbg *debugger.Debugger, mc *tcpu.Machine) {
	fmt.Println()
	fmt.Printf("Watchpoint hit (read) at %#04x\n", addr)
	dbg.PrintMem(mc, addr, 1)
	debugREPL(dbg, mc)
}

func handleWrite(addr uint16, dbg *debugger.Debugger, mc *tcpu.Machine) {
	fmt.Println()
	fmt.Printf("Watchpoint hit (write) at %#04x\n", addr)
	dbg.PrintMem(mc, addr, 1)
	debugREPL(dbg, mc)
}
