package cpu

import "testing"

func TestNMIServicedAtBoundary(t *testing.T) {
	c, mem := newProgram(t, 0x8000, []uint8{0xEA, 0xEA, 0xEA}) // NOP NOP NOP
	mem.writeWord(NMIVector, 0x9000)

	c.cyclesRemaining = 0
	c.NMI()
	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC = 0x%04X, want 0x9000 after NMI", c.PC)
	}
	if c.CyclesRemaining() != 6 {
		t.Fatalf("CyclesRemaining = %d, want 6 (7-cycle service, first charged)", c.CyclesRemaining())
	}
}

func TestNMIPulseConsumedOnce(t *testing.T) {
	c, mem := newProgram(t, 0x8000, []uint8{0xEA, 0xEA})
	mem.writeWord(NMIVector, 0x9000)
	c.cyclesRemaining = 0
	c.NMI()

	for c.CyclesRemaining() != 0 {
		c.Tick()
	}
	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	// Drain the service's remaining cycles, then confirm the CPU goes
	// back to fetching instructions (the zero-filled handler at 0x9000
	// holds a BRK) instead of re-servicing NMI.
	for c.CyclesRemaining() != 0 {
		c.Tick()
	}
	pcAfterService := c.PC
	c.Tick()
	if c.PC == pcAfterService {
		t.Fatal("no instruction executed on the tick following NMI service")
	}
}

func TestIRQIgnoredWhileMasked(t *testing.T) {
	c, mem := newProgram(t, 0x8000, []uint8{0xEA})
	mem.writeWord(IRQVector, 0x9000)
	c.cyclesRemaining = 0
	c.P |= FlagI
	c.IRQ()

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC == 0x9000 {
		t.Fatal("IRQ serviced despite I flag set")
	}
}

func TestIRQServicedWhenUnmasked(t *testing.T) {
	c, mem := newProgram(t, 0x8000, []uint8{0xEA})
	mem.writeWord(IRQVector, 0x9000)
	c.cyclesRemaining = 0
	c.P &^= FlagI
	c.IRQ()

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC = 0x%04X, want 0x9000", c.PC)
	}
}

func TestClearIRQStopsServicing(t *testing.T) {
	c, mem := newProgram(t, 0x8000, []uint8{0xEA})
	mem.writeWord(IRQVector, 0x9000)
	c.cyclesRemaining = 0
	c.P &^= FlagI
	c.IRQ()
	c.ClearIRQ()

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC == 0x9000 {
		t.Fatal("IRQ serviced after ClearIRQ")
	}
}

func TestNMIPriorityOverIRQ(t *testing.T) {
	c, mem := newProgram(t, 0x8000, []uint8{0xEA})
	mem.writeWord(NMIVector, 0x9000)
	mem.writeWord(IRQVector, 0xA000)
	c.cyclesRemaining = 0
	c.P &^= FlagI
	c.IRQ()
	c.NMI()

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC = 0x%04X, want 0x9000 (NMI wins over IRQ)", c.PC)
	}
}

func TestIllegalOpcodeHaltPolicy(t *testing.T) {
	c, _ := newProgram(t, 0x8000, []uint8{0x02}) // reserved slot
	c.illegalPolicy = PolicyHalt
	c.cyclesRemaining = 0

	err := c.Tick()
	if err == nil {
		t.Fatal("expected an error from an illegal opcode under PolicyHalt")
	}
	if _, ok := err.(HaltedError); !ok {
		t.Fatalf("err = %T, want HaltedError", err)
	}

	// Once halted, every further Tick keeps returning the same error.
	if err2 := c.Tick(); err2 != err {
		t.Fatalf("second Tick returned %v, want the same halt error", err2)
	}
}

func TestIllegalOpcodeNOPPolicy(t *testing.T) {
	c, _ := newProgram(t, 0x8000, []uint8{0x02, 0xEA})
	c.illegalPolicy = PolicyTreatAsNOP
	c.cyclesRemaining = 0
	startPC := c.PC

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != startPC+1 {
		t.Fatalf("PC = 0x%04X, want 0x%04X (advanced past the illegal byte)", c.PC, startPC+1)
	}
}
