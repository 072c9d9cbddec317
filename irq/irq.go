// Package irq defines the basic interfaces for working with a 6502
// family interrupt. A receiver of interrupts (IRQ/NMI) implements this
// interface so other components which generate them can raise state
// without cross-coupling component logic.
// NOTE: Even though chips make a distinction between level and edge type
//
//	interrupts, the interface here doesn't care; Line below accounts
//	for the distinction on the host side.
package irq

// Sender defines the interface for an IRQ source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// Line is a small helper for host/device code implementing Sender. An
// edge Line latches a pending pulse on Set() (repeated calls before it is
// consumed still leave a single pulse) and clears itself the moment
// Raised() observes it, matching NMI's take-once
// semantics. A level Line stays Raised() for as long as the asserting
// device holds it with Set(), until Clear() is called, matching IRQ.
type Line struct {
	edge     bool
	asserted bool
	pending  bool
}

// NewEdgeLine returns a Line with NMI's edge-triggered semantics.
func NewEdgeLine() *Line {
	return &Line{edge: true}
}

// NewLevelLine returns a Line with IRQ's level-triggered semantics.
func NewLevelLine() *Line {
	return &Line{}
}

// Set asserts the line. For an edge Line this latches a pending pulse
// even if called again before it's consumed; for a level Line it simply
// holds the line high.
func (l *Line) Set() {
	l.asserted = true
	l.pending = true
}

// Clear deasserts the line. For an edge Line it has no effect: a pulse
// already latched is still delivered once.
func (l *Line) Clear() {
	l.asserted = false
}

// Raised implements Sender.
func (l *Line) Raised() bool {
	if l.edge {
		if !l.pending {
			return false
		}
		l.pending = false
		return true
	}
	return l.asserted
}
