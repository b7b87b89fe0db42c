package board

import (
	"errors"
	"testing"
)

func TestFindPickSkipsDrainedOlderCell(t *testing.T) {
	b := newTestBoard()

	// t1: oldest deposit, t2: newer deposit, t3: drain the oldest.
	mustAdd(t, b, "A", 1, 1, "P1", 5)
	mustAdd(t, b, "A", 2, 1, "P1", 5)
	if _, err := b.Subtract("A", 1, 1, "P1", 5, "tester", ""); err != nil {
		t.Fatal(err)
	}

	pick, err := b.FindPick("P1")
	if err != nil {
		t.Fatalf("FindPick failed: %v", err)
	}
	if pick.Rack != "A" || pick.Row != 2 || pick.Col != 1 {
		t.Errorf("pick = (%s,%d,%d), want (A,2,1)", pick.Rack, pick.Row, pick.Col)
	}
	if pick.Quantity != 5 {
		t.Errorf("pick quantity = %d, want 5", pick.Quantity)
	}
}

func TestFindPickPrefersOldestDeposit(t *testing.T) {
	b := newTestBoard()
	mustAdd(t, b, "B", 1, 1, "P1", 3)
	mustAdd(t, b, "C", 2, 2, "P1", 9)

	pick, err := b.FindPick("P1")
	if err != nil {
		t.Fatal(err)
	}
	if pick.Rack != "B" || pick.Row != 1 || pick.Col != 1 {
		t.Errorf("pick = (%s,%d,%d), want oldest deposit (B,1,1)", pick.Rack, pick.Row, pick.Col)
	}
}

func TestFindPickSkipsOverwrittenCell(t *testing.T) {
	b := newTestBoard()
	mustAdd(t, b, "A", 1, 1, "P1", 5)
	if _, err := b.Subtract("A", 1, 1, "P1", 5, "tester", ""); err != nil {
		t.Fatal(err)
	}
	// Cell now holds a different part; the stale P1 add must be skipped.
	mustAdd(t, b, "A", 1, 1, "P2", 5)
	mustAdd(t, b, "A", 3, 1, "P1", 2)

	pick, err := b.FindPick("P1")
	if err != nil {
		t.Fatal(err)
	}
	if pick.Rack != "A" || pick.Row != 3 || pick.Col != 1 {
		t.Errorf("pick = (%s,%d,%d), want (A,3,1)", pick.Rack, pick.Row, pick.Col)
	}
}

func TestFindPickNotFound(t *testing.T) {
	b := newTestBoard()

	// No adds at all
	if _, err := b.FindPick("P1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound with no history, got %v", err)
	}

	// Adds exist but every deposit has been drained
	mustAdd(t, b, "A", 1, 1, "P1", 5)
	if _, err := b.Subtract("A", 1, 1, "P1", 5, "tester", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := b.FindPick("P1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after full drain, got %v", err)
	}
}

func TestFindPickDoesNotMutate(t *testing.T) {
	b := newTestBoard()
	mustAdd(t, b, "A", 1, 1, "P1", 5)
	before := b.Snapshot()

	if _, err := b.FindPick("P1"); err != nil {
		t.Fatal(err)
	}
	after := b.Snapshot()

	if len(before.Events) != len(after.Events) {
		t.Error("FindPick appended history")
	}
	if before.Racks[0].Cells[0][0] != after.Racks[0].Cells[0][0] {
		t.Error("FindPick changed cell state")
	}
}
