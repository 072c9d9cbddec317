// Command coredbg runs the core's interactive single-step debugger
// against a raw binary blob, loaded at a configurable address. It does
// not understand iNES headers or any other container format — point it
// at a headerless 6502 program dump.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nullroute-six502/core/internal/coretrace"
)

func main() {
	path := flag.String("program", "", "path to a raw 6502 program binary")
	origin := flag.String("origin", "0x8000", "address to load the program at and reset into (hex with 0x prefix, or decimal)")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "coredbg: -program is required")
		os.Exit(2)
	}

	addr, err := strconv.ParseUint(trimHexPrefix(*origin), hexBase(*origin), 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coredbg: bad -origin %q: %v\n", *origin, err)
		os.Exit(2)
	}

	program, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coredbg: %v\n", err)
		os.Exit(1)
	}

	if err := coretrace.Run(program, uint16(addr)); err != nil {
		fmt.Fprintf(os.Stderr, "coredbg: %v\n", err)
		os.Exit(1)
	}
}

func hexBase(s string) int {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return 16
	}
	return 10
}

func trimHexPrefix(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
