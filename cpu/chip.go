// Package cpu implements the MOS 6502 core used by an NES-class emulator:
// register file, addressing modes, opcode dispatch, instruction executor
// and interrupt/clock driver, all decoupled from the rest of the system by
// the bus.Bus collaborator.
package cpu

import (
	"fmt"

	"github.com/nullroute-six502/core/bus"
	"github.com/nullroute-six502/core/irq"
)

// Status register bit positions. Bit 5 is wired high always; it has no
// name of its own beyond "unused".
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagZ uint8 = 1 << 1 // Zero
	FlagI uint8 = 1 << 2 // Interrupt disable
	FlagD uint8 = 1 << 3 // Decimal (storable, inert on the NES Ricoh variant)
	FlagB uint8 = 1 << 4 // Break (only meaningful in a pushed copy of P)
	Flag5 uint8 = 1 << 5 // Unused, always reads 1
	FlagV uint8 = 1 << 6 // Overflow
	FlagN uint8 = 1 << 7 // Negative
)

// Vector addresses the driver loads PC from.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

// IllegalPolicy selects what happens when the opcode table's reserved
// (undocumented) slots are fetched.
type IllegalPolicy int

const (
	// PolicyTreatAsNOP treats an illegal opcode as an implied-mode NOP:
	// it consumes its base cycles and advances PC past the opcode byte
	// only. Preferred for running test ROMs that poke illegal opcodes
	// incidentally (e.g. via self-modifying code) without meaning to
	// execute them.
	PolicyTreatAsNOP IllegalPolicy = iota
	// PolicyHalt stops the CPU and reports a HaltedError carrying the
	// opcode and PC.
	PolicyHalt
)

// InvalidState represents an invalid CPU state the core detected
// internally (a precondition violation, not a 6502 fault — the 6502 has
// no fault concept).
type InvalidState struct {
	Reason string
}

func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// HaltedError is returned when the CPU has halted, either because it hit
// an illegal opcode under PolicyHalt or because it was already halted on
// a previous Tick. Opcode and PC identify where execution stopped.
type HaltedError struct {
	Opcode uint8
	PC     uint16
}

func (e HaltedError) Error() string {
	return fmt.Sprintf("cpu halted: opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// Chip is the 6502 register file plus the transient latches used while
// decoding and executing the in-flight instruction.
type Chip struct {
	// Registers, per spec.
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	P  uint8

	cyclesRemaining uint8
	totalCycles     uint64

	bus bus.Bus

	// Transient latches, valid only during one instruction's decode and
	// execute phases.
	effectiveAddr uint16
	relOffset     int8
	operand       uint8
	opcode        uint8
	pageCrossed   bool

	illegalPolicy IllegalPolicy
	halted        bool
	haltErr       error

	nmiPending  bool
	irqAsserted bool

	// Optional pull-style interrupt collaborators, checked each time the
	// driver polls (in addition to the push-style NMI()/IRQ() below).
	nmiSender irq.Sender
	irqSender irq.Sender
}

// Snapshot is a read-only copy of externally observable core state, used
// by tests and tracers.
type Snapshot struct {
	PC          uint16
	SP          uint8
	A           uint8
	X           uint8
	Y           uint8
	P           uint8
	TotalCycles uint64
}

// Config configures a new Chip. Bus is required; everything else defaults
// sensibly when left zero.
type Config struct {
	Bus bus.Bus
	// IllegalPolicy governs illegal-opcode handling. Zero value is
	// PolicyTreatAsNOP.
	IllegalPolicy IllegalPolicy
	// NMISender and IRQSender are optional pull-style collaborators,
	// polled alongside the push-style NMI()/IRQ() methods.
	NMISender irq.Sender
	IRQSender irq.Sender
}

// New constructs a Chip bound to the given bus, performs RESET, and
// returns it ready to Tick.
func New(cfg Config) (*Chip, error) {
	if cfg.Bus == nil {
		return nil, InvalidState{Reason: "bus must not be nil"}
	}
	c := &Chip{
		bus:           cfg.Bus,
		illegalPolicy: cfg.IllegalPolicy,
		nmiSender:     cfg.NMISender,
		irqSender:     cfg.IRQSender,
	}
	c.Reset()
	return c, nil
}

// Reset runs the RESET sequence: clears A, X, Y, sets SP = 0xFD, sets
// P = 0x24 (I and the unused bit), loads PC from the reset vector, and
// charges 7 cycles. No stack push occurs; real hardware only ever
// observes the stack through SP here.
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagI | Flag5
	c.PC = c.read16(ResetVector)
	// Reset is invoked directly rather than through Tick, so the full
	// cost is still owed (contrast with Tick, which seeds cost-1 after
	// step() because the Tick call that triggered it already counts as
	// the first of the charged cycles).
	c.cyclesRemaining = 7
	c.halted = false
	c.haltErr = nil
	c.nmiPending = false
	c.irqAsserted = false
}

// NMI latches a pending non-maskable interrupt. NMI is edge-triggered:
// calling this multiple times before the core services it has the same
// effect as calling it once, and the latch clears the instant it's
// taken.
func (c *Chip) NMI() {
	c.nmiPending = true
}

// IRQ asserts the level-triggered IRQ line. The core services it at the
// next instruction boundary as long as the line stays asserted and the
// interrupt-disable flag is clear. While I is set the line is left
// asserted and not serviced; it is taken once I clears, unless ClearIRQ
// has deasserted it first.
func (c *Chip) IRQ() {
	c.irqAsserted = true
}

// ClearIRQ deasserts the IRQ line. A level-triggered source is expected
// to call this once its condition is serviced, mirroring how the source
// would physically stop driving the line low.
func (c *Chip) ClearIRQ() {
	c.irqAsserted = false
}

// Snapshot returns the externally observable core state for tracing and
// tests. Bit 5 of P always reads 1 regardless of internal bookkeeping.
func (c *Chip) Snapshot() Snapshot {
	return Snapshot{
		PC:          c.PC,
		SP:          c.SP,
		A:           c.A,
		X:           c.X,
		Y:           c.Y,
		P:           c.P | Flag5,
		TotalCycles: c.totalCycles,
	}
}

// CyclesRemaining reports how many more Tick calls are owed before the
// in-flight instruction completes and the next fetch can happen. It is
// zero exactly at instruction boundaries, which callers that want to
// single-step a whole instruction (rather than one raw clock pulse) use
// to know when to stop.
func (c *Chip) CyclesRemaining() uint8 {
	return c.cyclesRemaining
}

// read16 reads two consecutive bytes little-endian starting at addr.
func (c *Chip) read16(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// push writes val to the stack page and decrements SP, wrapping within
// page 0x01.
func (c *Chip) push(val uint8) {
	c.bus.Write(0x0100+uint16(c.SP), val)
	c.SP--
}

// pop increments SP and reads the stack page, wrapping within page 0x01.
func (c *Chip) pop() uint8 {
	c.SP++
	return c.bus.Read(0x0100 + uint16(c.SP))
}

func (c *Chip) setZN(v uint8) {
	if v == 0 {
		c.P |= FlagZ
	} else {
		c.P &^= FlagZ
	}
	if v&0x80 != 0 {
		c.P |= FlagN
	} else {
		c.P &^= FlagN
	}
}

func (c *Chip) setCarry(set bool) {
	if set {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
}

func (c *Chip) setOverflow(set bool) {
	if set {
		c.P |= FlagV
	} else {
		c.P &^= FlagV
	}
}

func (c *Chip) flag(mask uint8) bool {
	return c.P&mask != 0
}
