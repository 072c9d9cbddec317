package cpu

import "testing"

func TestResolveZeroPageIndexedWraps(t *testing.T) {
	c, mem := newProgram(t, 0x8000, nil)
	c.PC = 0x9000
	mem.Write(0x9000, 0xFF) // base
	c.X = 0x02               // 0xFF + 0x02 wraps to 0x01 within the zero page

	c.resolve(modeZeroPageX, false)
	if c.effectiveAddr != 0x0001 {
		t.Fatalf("effectiveAddr = 0x%04X, want 0x0001 (wrapped)", c.effectiveAddr)
	}
}

func TestResolveAbsoluteXPageCross(t *testing.T) {
	c, mem := newProgram(t, 0x8000, nil)
	c.PC = 0x9000
	mem.writeWord(0x9000, 0x80FF)
	c.X = 0x01

	crossed := c.resolve(modeAbsoluteX, false)
	if !crossed {
		t.Fatal("expected page cross for 0x80FF + 1")
	}
	if c.effectiveAddr != 0x8100 {
		t.Fatalf("effectiveAddr = 0x%04X, want 0x8100", c.effectiveAddr)
	}
}

func TestResolveAbsoluteXNoCross(t *testing.T) {
	c, mem := newProgram(t, 0x8000, nil)
	c.PC = 0x9000
	mem.writeWord(0x9000, 0x8000)
	c.X = 0x01

	crossed := c.resolve(modeAbsoluteX, false)
	if crossed {
		t.Fatal("did not expect a page cross for 0x8000 + 1")
	}
	if c.effectiveAddr != 0x8001 {
		t.Fatalf("effectiveAddr = 0x%04X, want 0x8001", c.effectiveAddr)
	}
}

func TestResolveIndexedIndirect(t *testing.T) {
	c, mem := newProgram(t, 0x8000, nil)
	c.PC = 0x9000
	mem.Write(0x9000, 0x20) // zero-page base
	c.X = 0x04
	mem.writeWord(0x0024, 0xC000) // (0x20+0x04) holds the target pointer
	mem.Write(0xC000, 0x55)

	c.resolve(modeIndexedIndirect, true)
	if c.effectiveAddr != 0xC000 {
		t.Fatalf("effectiveAddr = 0x%04X, want 0xC000", c.effectiveAddr)
	}
	if c.operand != 0x55 {
		t.Fatalf("operand = 0x%02X, want 0x55", c.operand)
	}
}

func TestResolveIndirectIndexed(t *testing.T) {
	c, mem := newProgram(t, 0x8000, nil)
	c.PC = 0x9000
	mem.Write(0x9000, 0x20) // zero-page pointer
	mem.writeWord(0x0020, 0x80F0)
	c.Y = 0x20 // 0x80F0 + 0x20 = 0x8110, crosses

	crossed := c.resolve(modeIndirectIndexed, false)
	if !crossed {
		t.Fatal("expected page cross")
	}
	if c.effectiveAddr != 0x8110 {
		t.Fatalf("effectiveAddr = 0x%04X, want 0x8110", c.effectiveAddr)
	}
}

func TestResolveImmediateAdvancesPC(t *testing.T) {
	c, mem := newProgram(t, 0x8000, nil)
	c.PC = 0x9000
	mem.Write(0x9000, 0x99)

	c.resolve(modeImmediate, true)
	if c.operand != 0x99 {
		t.Fatalf("operand = 0x%02X, want 0x99", c.operand)
	}
	if c.PC != 0x9001 {
		t.Fatalf("PC = 0x%04X, want 0x9001", c.PC)
	}
}
