package store

import (
	"errors"
	"testing"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	b := board.NewWithDefaults()
	if _, err := b.Add("A", 1, 1, "10283026", 10, "Kittu", "first batch"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Add("E", 3, 8, "10291078", 25, "Kittu", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Subtract("A", 1, 1, "10283026", 4, "1306764", "dispatch"); err != nil {
		t.Fatal(err)
	}

	ms := NewMemStore()
	if err := Save(ms, b); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(ms)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got, want := loaded.TotalQuantity(), b.TotalQuantity(); got != want {
		t.Errorf("TotalQuantity after round trip = %d, want %d", got, want)
	}
	if got, want := len(loaded.Events()), len(b.Events()); got != want {
		t.Errorf("history length after round trip = %d, want %d", got, want)
	}
	if got, want := len(loaded.ListParts()), len(b.ListParts()); got != want {
		t.Errorf("catalog size after round trip = %d, want %d", got, want)
	}

	// FIFO resolution must survive the round trip.
	pick, err := loaded.FindPick("10283026")
	if err != nil {
		t.Fatalf("FindPick on loaded board: %v", err)
	}
	if pick.Rack != "A" || pick.Row != 1 || pick.Col != 1 || pick.Quantity != 6 {
		t.Errorf("pick after round trip = %+v", pick)
	}

	if err := loaded.VerifyReplay(); err != nil {
		t.Errorf("loaded board fails replay check: %v", err)
	}
}

func TestLoadEmptyStoreGivesEmptyBoard(t *testing.T) {
	b, err := Load(NewMemStore())
	if err != nil {
		t.Fatal(err)
	}
	if !b.Empty() {
		t.Error("loading absent tables should produce an empty board")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		table string
		row   Row
		field string
	}{
		{"part missing number", TablePartMaster, Row{"Weight": "1.0"}, "Part No"},
		{"part bad weight", TablePartMaster, Row{"Part No": "X", "Weight": "heavy"}, "Weight"},
		{"part negative weight", TablePartMaster, Row{"Part No": "X", "Weight": "-1"}, "Weight"},
		{"rack missing id", TableRacks, Row{"Row": "1", "Col": "1"}, "Rack"},
		{"rack bad row", TableRacks, Row{"Rack": "A", "Row": "one", "Col": "1"}, "Row"},
		{"history bad timestamp", TableHistory, Row{"Timestamp": "yesterday", "Action": "add"}, "Timestamp"},
		{"history bad action", TableHistory, Row{"Timestamp": "2025-01-01 08:00:00", "Action": "teleport"}, "Action"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ms := NewMemStore()
			if err := ms.WriteTable(tc.table, []Row{tc.row}); err != nil {
				t.Fatal(err)
			}
			_, err := Load(ms)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Table != tc.table || pe.Field != tc.field {
				t.Errorf("ParseError = %+v, want table %s field %s", pe, tc.table, tc.field)
			}
		})
	}
}

func TestLoadRejectsOutOfShapeCell(t *testing.T) {
	ms := NewMemStore()
	// Rack A is 3x3; row 4 cannot exist.
	err := ms.WriteTable(TableRacks, []Row{
		{"Rack": "A", "Row": "4", "Col": "1", "Part No": "P1", "Quantity": "5"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(ms); !errors.Is(err, board.ErrInvalidCoordinate) {
		t.Errorf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestSaveWritesFullGrid(t *testing.T) {
	ms := NewMemStore()
	if err := Save(ms, board.New()); err != nil {
		t.Fatal(err)
	}
	rows, err := ms.ReadTable(TableRacks)
	if err != nil {
		t.Fatal(err)
	}
	// One row per cell: sum over racks of FixedRows * ceil(slots/FixedRows).
	want := 0
	for _, slots := range board.RackSlots {
		cols := (slots + board.FixedRows - 1) / board.FixedRows
		want += board.FixedRows * cols
	}
	if len(rows) != want {
		t.Errorf("racks table has %d rows, want %d (full grid)", len(rows), want)
	}
}
