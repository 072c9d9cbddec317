package cpu

// opcodeEntry is one row of the dense 256-entry dispatch table: which
// mnemonic, which addressing mode, how many base cycles, whether a
// page-cross adds one more, and whether the resolver should read through
// effective_addr for this instruction.
type opcodeEntry struct {
	Name         string
	Mode         addrMode
	Cycles       uint8
	ExtraOnCross bool
	NeedsOperand bool
	Op           opFunc
}

// load is a load-family entry: needs the operand value, never charges a
// page-cross penalty.
func load(name string, mode addrMode, cycles uint8, op opFunc) opcodeEntry {
	return opcodeEntry{Name: name, Mode: mode, Cycles: cycles, NeedsOperand: true, Op: op}
}

// loadIndexed is a load-family entry using an indexed mode that does
// charge a page-cross penalty (Absolute,X/Y and (d),Y read variants).
func loadIndexed(name string, mode addrMode, cycles uint8, op opFunc) opcodeEntry {
	return opcodeEntry{Name: name, Mode: mode, Cycles: cycles, ExtraOnCross: true, NeedsOperand: true, Op: op}
}

// store is a store-family entry: only needs effective_addr, fixed cost.
func store(name string, mode addrMode, cycles uint8, op opFunc) opcodeEntry {
	return opcodeEntry{Name: name, Mode: mode, Cycles: cycles, Op: op}
}

// rmw is a read-modify-write entry: needs the operand, fixed cost (the
// table's base already reflects the dummy-write cycle real hardware
// spends, so no page-cross penalty is ever added).
func rmw(name string, mode addrMode, cycles uint8, op opFunc) opcodeEntry {
	return opcodeEntry{Name: name, Mode: mode, Cycles: cycles, NeedsOperand: true, Op: op}
}

// implied is a no-operand entry (register ops, flag ops, stack ops,
// system ops, and the accumulator-form shifts).
func implied(name string, mode addrMode, cycles uint8, op opFunc) opcodeEntry {
	return opcodeEntry{Name: name, Mode: mode, Cycles: cycles, Op: op}
}

// branchEntry is a relative-mode entry; taken/crossed extra cycles come back
// from the handler itself rather than from ExtraOnCross.
func branchEntry(name string, op opFunc) opcodeEntry {
	return opcodeEntry{Name: name, Mode: modeRelative, Cycles: 2, Op: op}
}

// opcodeTable is indexed by opcode byte. Unfilled entries (Op == nil) are
// the illegal-opcode reservation; the driver's illegalPolicy decides what
// happens when one is fetched.
var opcodeTable = [256]opcodeEntry{
	0x00: implied("BRK", modeImplied, 7, iBRK),
	0x01: load("ORA", modeIndexedIndirect, 6, iORA),
	0x05: load("ORA", modeZeroPage, 3, iORA),
	0x06: rmw("ASL", modeZeroPage, 5, iASL),
	0x08: implied("PHP", modeImplied, 3, iPHP),
	0x09: load("ORA", modeImmediate, 2, iORA),
	0x0A: implied("ASL", modeAccumulator, 2, iASL),
	0x0D: load("ORA", modeAbsolute, 4, iORA),
	0x0E: rmw("ASL", modeAbsolute, 6, iASL),

	0x10: branchEntry("BPL", iBPL),
	0x11: loadIndexed("ORA", modeIndirectIndexed, 5, iORA),
	0x15: load("ORA", modeZeroPageX, 4, iORA),
	0x16: rmw("ASL", modeZeroPageX, 6, iASL),
	0x18: implied("CLC", modeImplied, 2, iCLC),
	0x19: loadIndexed("ORA", modeAbsoluteY, 4, iORA),
	0x1D: loadIndexed("ORA", modeAbsoluteX, 4, iORA),
	0x1E: rmw("ASL", modeAbsoluteX, 7, iASL),

	0x20: implied("JSR", modeAbsolute, 6, iJSR),
	0x21: load("AND", modeIndexedIndirect, 6, iAND),
	0x24: load("BIT", modeZeroPage, 3, iBIT),
	0x25: load("AND", modeZeroPage, 3, iAND),
	0x26: rmw("ROL", modeZeroPage, 5, iROL),
	0x28: implied("PLP", modeImplied, 4, iPLP),
	0x29: load("AND", modeImmediate, 2, iAND),
	0x2A: implied("ROL", modeAccumulator, 2, iROL),
	0x2C: load("BIT", modeAbsolute, 4, iBIT),
	0x2D: load("AND", modeAbsolute, 4, iAND),
	0x2E: rmw("ROL", modeAbsolute, 6, iROL),

	0x30: branchEntry("BMI", iBMI),
	0x31: loadIndexed("AND", modeIndirectIndexed, 5, iAND),
	0x35: load("AND", modeZeroPageX, 4, iAND),
	0x36: rmw("ROL", modeZeroPageX, 6, iROL),
	0x38: implied("SEC", modeImplied, 2, iSEC),
	0x39: loadIndexed("AND", modeAbsoluteY, 4, iAND),
	0x3D: loadIndexed("AND", modeAbsoluteX, 4, iAND),
	0x3E: rmw("ROL", modeAbsoluteX, 7, iROL),

	0x40: implied("RTI", modeImplied, 6, iRTI),
	0x41: load("EOR", modeIndexedIndirect, 6, iEOR),
	0x45: load("EOR", modeZeroPage, 3, iEOR),
	0x46: rmw("LSR", modeZeroPage, 5, iLSR),
	0x48: implied("PHA", modeImplied, 3, iPHA),
	0x49: load("EOR", modeImmediate, 2, iEOR),
	0x4A: implied("LSR", modeAccumulator, 2, iLSR),
	0x4C: store("JMP", modeAbsolute, 3, iJMP),
	0x4D: load("EOR", modeAbsolute, 4, iEOR),
	0x4E: rmw("LSR", modeAbsolute, 6, iLSR),

	0x50: branchEntry("BVC", iBVC),
	0x51: loadIndexed("EOR", modeIndirectIndexed, 5, iEOR),
	0x55: load("EOR", modeZeroPageX, 4, iEOR),
	0x56: rmw("LSR", modeZeroPageX, 6, iLSR),
	0x58: implied("CLI", modeImplied, 2, iCLI),
	0x59: loadIndexed("EOR", modeAbsoluteY, 4, iEOR),
	0x5D: loadIndexed("EOR", modeAbsoluteX, 4, iEOR),
	0x5E: rmw("LSR", modeAbsoluteX, 7, iLSR),

	0x60: implied("RTS", modeImplied, 6, iRTS),
	0x61: load("ADC", modeIndexedIndirect, 6, iADC),
	0x65: load("ADC", modeZeroPage, 3, iADC),
	0x66: rmw("ROR", modeZeroPage, 5, iROR),
	0x68: implied("PLA", modeImplied, 4, iPLA),
	0x69: load("ADC", modeImmediate, 2, iADC),
	0x6A: implied("ROR", modeAccumulator, 2, iROR),
	0x6C: store("JMP", modeIndirect, 5, iJMP),
	0x6D: load("ADC", modeAbsolute, 4, iADC),
	0x6E: rmw("ROR", modeAbsolute, 6, iROR),

	0x70: branchEntry("BVS", iBVS),
	0x71: loadIndexed("ADC", modeIndirectIndexed, 5, iADC),
	0x75: load("ADC", modeZeroPageX, 4, iADC),
	0x76: rmw("ROR", modeZeroPageX, 6, iROR),
	0x78: implied("SEI", modeImplied, 2, iSEI),
	0x79: loadIndexed("ADC", modeAbsoluteY, 4, iADC),
	0x7D: loadIndexed("ADC", modeAbsoluteX, 4, iADC),
	0x7E: rmw("ROR", modeAbsoluteX, 7, iROR),

	0x81: store("STA", modeIndexedIndirect, 6, iSTA),
	0x84: store("STY", modeZeroPage, 3, iSTY),
	0x85: store("STA", modeZeroPage, 3, iSTA),
	0x86: store("STX", modeZeroPage, 3, iSTX),
	0x88: implied("DEY", modeImplied, 2, iDEY),
	0x8A: implied("TXA", modeImplied, 2, iTXA),
	0x8C: store("STY", modeAbsolute, 4, iSTY),
	0x8D: store("STA", modeAbsolute, 4, iSTA),
	0x8E: store("STX", modeAbsolute, 4, iSTX),

	0x90: branchEntry("BCC", iBCC),
	0x91: store("STA", modeIndirectIndexed, 6, iSTA),
	0x94: store("STY", modeZeroPageX, 4, iSTY),
	0x95: store("STA", modeZeroPageX, 4, iSTA),
	0x96: store("STX", modeZeroPageY, 4, iSTX),
	0x98: implied("TYA", modeImplied, 2, iTYA),
	0x99: store("STA", modeAbsoluteY, 5, iSTA),
	0x9A: implied("TXS", modeImplied, 2, iTXS),
	0x9D: store("STA", modeAbsoluteX, 5, iSTA),

	0xA0: load("LDY", modeImmediate, 2, iLDY),
	0xA1: load("LDA", modeIndexedIndirect, 6, iLDA),
	0xA2: load("LDX", modeImmediate, 2, iLDX),
	0xA4: load("LDY", modeZeroPage, 3, iLDY),
	0xA5: load("LDA", modeZeroPage, 3, iLDA),
	0xA6: load("LDX", modeZeroPage, 3, iLDX),
	0xA8: implied("TAY", modeImplied, 2, iTAY),
	0xA9: load("LDA", modeImmediate, 2, iLDA),
	0xAA: implied("TAX", modeImplied, 2, iTAX),
	0xAC: load("LDY", modeAbsolute, 4, iLDY),
	0xAD: load("LDA", modeAbsolute, 4, iLDA),
	0xAE: load("LDX", modeAbsolute, 4, iLDX),

	0xB0: branchEntry("BCS", iBCS),
	0xB1: loadIndexed("LDA", modeIndirectIndexed, 5, iLDA),
	0xB4: load("LDY", modeZeroPageX, 4, iLDY),
	0xB5: load("LDA", modeZeroPageX, 4, iLDA),
	0xB6: load("LDX", modeZeroPageY, 4, iLDX),
	0xB8: implied("CLV", modeImplied, 2, iCLV),
	0xB9: loadIndexed("LDA", modeAbsoluteY, 4, iLDA),
	0xBA: implied("TSX", modeImplied, 2, iTSX),
	0xBC: loadIndexed("LDY", modeAbsoluteX, 4, iLDY),
	0xBD: loadIndexed("LDA", modeAbsoluteX, 4, iLDA),
	0xBE: loadIndexed("LDX", modeAbsoluteY, 4, iLDX),

	0xC0: load("CPY", modeImmediate, 2, iCPY),
	0xC1: load("CMP", modeIndexedIndirect, 6, iCMP),
	0xC4: load("CPY", modeZeroPage, 3, iCPY),
	0xC5: load("CMP", modeZeroPage, 3, iCMP),
	0xC6: rmw("DEC", modeZeroPage, 5, iDEC),
	0xC8: implied("INY", modeImplied, 2, iINY),
	0xC9: load("CMP", modeImmediate, 2, iCMP),
	0xCA: implied("DEX", modeImplied, 2, iDEX),
	0xCC: load("CPY", modeAbsolute, 4, iCPY),
	0xCD: load("CMP", modeAbsolute, 4, iCMP),
	0xCE: rmw("DEC", modeAbsolute, 6, iDEC),

	0xD0: branchEntry("BNE", iBNE),
	0xD1: loadIndexed("CMP", modeIndirectIndexed, 5, iCMP),
	0xD5: load("CMP", modeZeroPageX, 4, iCMP),
	0xD6: rmw("DEC", modeZeroPageX, 6, iDEC),
	0xD8: implied("CLD", modeImplied, 2, iCLD),
	0xD9: loadIndexed("CMP", modeAbsoluteY, 4, iCMP),
	0xDD: loadIndexed("CMP", modeAbsoluteX, 4, iCMP),
	0xDE: rmw("DEC", modeAbsoluteX, 7, iDEC),

	0xE0: load("CPX", modeImmediate, 2, iCPX),
	0xE1: load("SBC", modeIndexedIndirect, 6, iSBC),
	0xE4: load("CPX", modeZeroPage, 3, iCPX),
	0xE5: load("SBC", modeZeroPage, 3, iSBC),
	0xE6: rmw("INC", modeZeroPage, 5, iINC),
	0xE8: implied("INX", modeImplied, 2, iINX),
	0xE9: load("SBC", modeImmediate, 2, iSBC),
	0xEA: implied("NOP", modeImplied, 2, iNOP),
	0xEC: load("CPX", modeAbsolute, 4, iCPX),
	0xED: load("SBC", modeAbsolute, 4, iSBC),
	0xEE: rmw("INC", modeAbsolute, 6, iINC),

	0xF0: branchEntry("BEQ", iBEQ),
	0xF1: loadIndexed("SBC", modeIndirectIndexed, 5, iSBC),
	0xF5: load("SBC", modeZeroPageX, 4, iSBC),
	0xF6: rmw("INC", modeZeroPageX, 6, iINC),
	0xF8: implied("SED", modeImplied, 2, iSED),
	0xF9: loadIndexed("SBC", modeAbsoluteY, 4, iSBC),
	0xFD: loadIndexed("SBC", modeAbsoluteX, 4, iSBC),
	0xFE: rmw("INC", modeAbsoluteX, 7, iINC),
}
