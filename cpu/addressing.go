package cpu

// addrMode enumerates the thirteen addressing modes the resolver knows
// how to compute.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (d,x)
	modeIndirectIndexed // (d),y
)

// resolve computes the effective address and/or operand for mode,
// advances PC past the instruction's operand bytes, and reports whether
// indexing crossed a page boundary. needsOperand controls whether the
// resolver reads through effective_addr into c.operand: load and RMW
// instructions want the value, store instructions only want the address.
func (c *Chip) resolve(mode addrMode, needsOperand bool) bool {
	switch mode {
	case modeImplied, modeAccumulator:
		return false

	case modeImmediate:
		c.effectiveAddr = c.PC
		c.operand = c.bus.Read(c.PC)
		c.PC++
		return false

	case modeZeroPage:
		lo := c.bus.Read(c.PC)
		c.PC++
		c.effectiveAddr = uint16(lo)
		if needsOperand {
			c.operand = c.bus.Read(c.effectiveAddr)
		}
		return false

	case modeZeroPageX:
		return c.resolveZeroPageIndexed(c.X, needsOperand)

	case modeZeroPageY:
		return c.resolveZeroPageIndexed(c.Y, needsOperand)

	case modeRelative:
		c.relOffset = int8(c.bus.Read(c.PC))
		c.PC++
		return false

	case modeAbsolute:
		c.effectiveAddr = c.read16(c.PC)
		c.PC += 2
		if needsOperand {
			c.operand = c.bus.Read(c.effectiveAddr)
		}
		return false

	case modeAbsoluteX:
		return c.resolveAbsoluteIndexed(c.X, needsOperand)

	case modeAbsoluteY:
		return c.resolveAbsoluteIndexed(c.Y, needsOperand)

	case modeIndirect:
		ptr := c.read16(c.PC)
		c.PC += 2
		lo := c.bus.Read(ptr)
		// The page-wrap bug: if the pointer's low byte is 0xFF, the high
		// byte is fetched from (ptr & 0xFF00), not (ptr + 1).
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.bus.Read(hiAddr)
		c.effectiveAddr = uint16(hi)<<8 | uint16(lo)
		return false

	case modeIndexedIndirect:
		zp := c.bus.Read(c.PC)
		c.PC++
		zp += c.X
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		c.effectiveAddr = uint16(hi)<<8 | uint16(lo)
		if needsOperand {
			c.operand = c.bus.Read(c.effectiveAddr)
		}
		return false

	case modeIndirectIndexed:
		zp := c.bus.Read(c.PC)
		c.PC++
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		eff := base + uint16(c.Y)
		crossed := (base & 0xFF00) != (eff & 0xFF00)
		c.effectiveAddr = eff
		if needsOperand {
			c.operand = c.bus.Read(c.effectiveAddr)
		}
		return crossed
	}
	return false
}

// resolveZeroPageIndexed implements Zero Page,X and Zero Page,Y: the base
// byte plus the index register wraps within the zero page, never
// crossing into page 1.
func (c *Chip) resolveZeroPageIndexed(reg uint8, needsOperand bool) bool {
	base := c.bus.Read(c.PC)
	c.PC++
	c.effectiveAddr = uint16(base + reg)
	if needsOperand {
		c.operand = c.bus.Read(c.effectiveAddr)
	}
	return false
}

// resolveAbsoluteIndexed implements Absolute,X and Absolute,Y, reporting
// whether adding the index register crossed a page.
func (c *Chip) resolveAbsoluteIndexed(reg uint8, needsOperand bool) bool {
	base := c.read16(c.PC)
	c.PC += 2
	eff := base + uint16(reg)
	crossed := (base & 0xFF00) != (eff & 0xFF00)
	c.effectiveAddr = eff
	if needsOperand {
		c.operand = c.bus.Read(c.effectiveAddr)
	}
	return crossed
}
