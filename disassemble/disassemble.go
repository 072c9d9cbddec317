// Package disassemble implements a disassembler for the core's 6502
// opcodes, built on top of cpu.Describe so there is a single source of
// truth for mnemonic/mode/length instead of a second switch duplicating
// the dispatch table.
package disassemble

import (
	"fmt"

	"github.com/nullroute-six502/core/bus"
	"github.com/nullroute-six502/core/cpu"
)

// Step disassembles the instruction at pc, returning its text form and
// the number of bytes (including the opcode) the PC should advance to
// reach the next instruction. This does not interpret the instruction,
// so a JMP target is printed as an address, not followed.
func Step(pc uint16, b bus.Bus) (string, int) {
	opcode := b.Read(pc)
	name, mode, length := cpu.Describe(opcode)

	var operand string
	switch mode {
	case cpu.TagImplied, cpu.TagAccum:
		operand = ""
	case cpu.TagImm:
		operand = fmt.Sprintf(" #$%02X", b.Read(pc+1))
	case cpu.TagZP:
		operand = fmt.Sprintf(" $%02X", b.Read(pc+1))
	case cpu.TagZPX:
		operand = fmt.Sprintf(" $%02X,X", b.Read(pc+1))
	case cpu.TagZPY:
		operand = fmt.Sprintf(" $%02X,Y", b.Read(pc+1))
	case cpu.TagRelative:
		off := int16(int8(b.Read(pc + 1)))
		target := pc + 2 + uint16(off)
		operand = fmt.Sprintf(" $%04X", target)
	case cpu.TagAbs:
		operand = fmt.Sprintf(" $%04X", readWord(b, pc+1))
	case cpu.TagAbsX:
		operand = fmt.Sprintf(" $%04X,X", readWord(b, pc+1))
	case cpu.TagAbsY:
		operand = fmt.Sprintf(" $%04X,Y", readWord(b, pc+1))
	case cpu.TagIndirect:
		operand = fmt.Sprintf(" ($%04X)", readWord(b, pc+1))
	case cpu.TagIndX:
		operand = fmt.Sprintf(" ($%02X,X)", b.Read(pc+1))
	case cpu.TagIndY:
		operand = fmt.Sprintf(" ($%02X),Y", b.Read(pc+1))
	}

	return name + operand, length
}

func readWord(b bus.Bus, addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
