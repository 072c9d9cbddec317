package irq

import "testing"

func TestEdgeLineLatchesUntilConsumed(t *testing.T) {
	l := NewEdgeLine()
	if l.Raised() {
		t.Fatal("fresh edge line reads raised")
	}
	l.Set()
	if !l.Raised() {
		t.Fatal("edge line did not latch after Set")
	}
	if l.Raised() {
		t.Fatal("edge line stayed raised after being consumed once")
	}
}

func TestEdgeLineCoalescesRepeatedSet(t *testing.T) {
	l := NewEdgeLine()
	l.Set()
	l.Set()
	if !l.Raised() {
		t.Fatal("expected raised after two Sets")
	}
	if l.Raised() {
		t.Fatal("a double Set should still only deliver one pulse")
	}
}

func TestLevelLineStaysRaisedUntilCleared(t *testing.T) {
	l := NewLevelLine()
	l.Set()
	if !l.Raised() || !l.Raised() {
		t.Fatal("level line should read raised repeatedly while asserted")
	}
	l.Clear()
	if l.Raised() {
		t.Fatal("level line still raised after Clear")
	}
}

func TestLineImplementsSender(t *testing.T) {
	var _ Sender = NewEdgeLine()
	var _ Sender = NewLevelLine()
}
