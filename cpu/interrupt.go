package cpu

// Tick advances the core by one clock. If the current instruction still
// owes cycles, this just counts one down. Otherwise the driver polls
// interrupts (NMI beats IRQ beats a normal fetch), services whichever
// applies or decodes and executes one instruction, and seeds
// cycles_remaining with that operation's total cost. Exactly one
// cycles_remaining decrement and one total_cycles increment happen per
// call, per spec.
func (c *Chip) Tick() error {
	c.totalCycles++

	if c.halted {
		return c.haltErr
	}

	if c.cyclesRemaining == 0 {
		cost, err := c.step()
		if err != nil {
			c.halted = true
			c.haltErr = err
			return err
		}
		// The call that triggered step() already counts as the first of
		// the charged cycles.
		c.cyclesRemaining = cost - 1
		return nil
	}

	c.cyclesRemaining--
	return nil
}

// step polls interrupts and, failing that, fetches, decodes, and
// executes exactly one instruction. It returns the total cycle cost to
// charge (base table cost plus any addressing/branch penalty).
func (c *Chip) step() (uint8, error) {
	if taken, cost := c.pollInterrupts(); taken {
		return cost, nil
	}

	c.opcode = c.bus.Read(c.PC)
	c.PC++
	entry := opcodeTable[c.opcode]

	if entry.Op == nil {
		return c.illegalOpcode()
	}

	c.pageCrossed = c.resolve(entry.Mode, entry.NeedsOperand)
	extra := entry.Op(c)
	if c.pageCrossed && entry.ExtraOnCross {
		extra++
	}
	return entry.Cycles + extra, nil
}

// pollInterrupts services a pending NMI or asserted IRQ if one applies,
// ahead of a normal fetch. NMI always wins when both are pending. IRQ is
// ignored (not consumed) while the interrupt-disable flag is set.
func (c *Chip) pollInterrupts() (bool, uint8) {
	nmi := c.nmiPending
	if c.nmiSender != nil && c.nmiSender.Raised() {
		nmi = true
	}
	if nmi {
		c.nmiPending = false
		c.serviceInterrupt(NMIVector, false)
		return true, 7
	}

	irqLine := c.irqAsserted
	if c.irqSender != nil && c.irqSender.Raised() {
		irqLine = true
	}
	if irqLine && !c.flag(FlagI) {
		c.serviceInterrupt(IRQVector, false)
		return true, 7
	}

	return false, 0
}

// serviceInterrupt pushes PC high, PC low, then P (forcing the unused
// bit to 1 and, for a hardware-triggered interrupt, B to 0), sets I, and
// loads PC from vector. brk distinguishes a software BRK from a hardware
// NMI/IRQ entry, which iBRK handles itself rather than through this path.
func (c *Chip) serviceInterrupt(vector uint16, brk bool) {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC & 0xFF))
	push := c.P | Flag5
	if brk {
		push |= FlagB
	} else {
		push &^= FlagB
	}
	c.push(push)
	c.P |= FlagI
	c.PC = c.read16(vector)
}

// illegalOpcode handles a fetch into one of the table's reserved slots
// per the configured policy.
func (c *Chip) illegalOpcode() (uint8, error) {
	switch c.illegalPolicy {
	case PolicyHalt:
		return 0, HaltedError{Opcode: c.opcode, PC: c.PC - 1}
	default:
		// Treat as an implied-mode NOP: no operand bytes consumed
		// beyond the opcode itself, base NOP cost.
		return 2, nil
	}
}
