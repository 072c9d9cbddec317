package cpu

// ModeTag is a short, stable name for an addressing mode, exported so
// other packages (disassemble, coretrace) can format operands without
// reaching into the unexported opcode table themselves.
type ModeTag string

const (
	TagImplied  ModeTag = "impl"
	TagAccum    ModeTag = "acc"
	TagImm      ModeTag = "imm"
	TagZP       ModeTag = "zp"
	TagZPX      ModeTag = "zpx"
	TagZPY      ModeTag = "zpy"
	TagRelative ModeTag = "rel"
	TagAbs      ModeTag = "abs"
	TagAbsX     ModeTag = "absx"
	TagAbsY     ModeTag = "absy"
	TagIndirect ModeTag = "ind"
	TagIndX     ModeTag = "idx"
	TagIndY     ModeTag = "idy"
)

var modeTags = map[addrMode]ModeTag{
	modeImplied:         TagImplied,
	modeAccumulator:     TagAccum,
	modeImmediate:       TagImm,
	modeZeroPage:        TagZP,
	modeZeroPageX:       TagZPX,
	modeZeroPageY:       TagZPY,
	modeRelative:        TagRelative,
	modeAbsolute:        TagAbs,
	modeAbsoluteX:       TagAbsX,
	modeAbsoluteY:       TagAbsY,
	modeIndirect:        TagIndirect,
	modeIndexedIndirect: TagIndX,
	modeIndirectIndexed: TagIndY,
}

// operandBytes returns how many bytes after the opcode byte the mode
// consumes.
var operandBytes = map[ModeTag]int{
	TagImplied:  0,
	TagAccum:    0,
	TagImm:      1,
	TagZP:       1,
	TagZPX:      1,
	TagZPY:      1,
	TagRelative: 1,
	TagAbs:      2,
	TagAbsX:     2,
	TagAbsY:     2,
	TagIndirect: 2,
	TagIndX:     1,
	TagIndY:     1,
}

// Describe reports the mnemonic, addressing-mode tag, and total
// instruction length (opcode byte included) for opcode. Unfilled slots
// report mnemonic "???" with implied-length 1, matching the illegal-
// opcode-as-NOP policy's PC advance.
func Describe(opcode uint8) (name string, mode ModeTag, length int) {
	entry := opcodeTable[opcode]
	if entry.Op == nil {
		return "???", TagImplied, 1
	}
	tag := modeTags[entry.Mode]
	length = 1 + operandBytes[tag]
	if opcode == 0x00 {
		// BRK is implied-mode by addressing (it reads no operand), but
		// still occupies two bytes: the opcode and a signature byte the
		// resolver never consumes. A sequential disassembly walk needs
		// the real length to stride past it correctly.
		length = 2
	}
	return entry.Name, tag, length
}
