// Package store is the persistence gateway between the in-memory board and
// any tabular backing store. The boundary is deliberately spreadsheet-shaped:
// named tables of string rows, read whole and replaced whole. The board's
// correctness never depends on a save succeeding.
package store

import (
	"errors"
	"fmt"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
)

// Logical table names.
const (
	TablePartMaster = "part_master"
	TableRacks      = "racks"
	TableHistory    = "history"
)

// Row is one record of a logical table, keyed by user-facing column name.
type Row map[string]string

// TableStore reads and replaces whole logical tables. ReadTable returns an
// empty slice when the table is absent or empty. WriteTable replaces the
// entire table, creating it if needed.
type TableStore interface {
	ReadTable(name string) ([]Row, error)
	WriteTable(name string, rows []Row) error
}

// ParseError reports a malformed row at the persistence boundary. Malformed
// rows fail the whole load; silently defaulting missing fields is how the
// three data sets drift apart.
type ParseError struct {
	Table  string
	Index  int
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("table %s row %d field %q: %s", e.Table, e.Index, e.Field, e.Reason)
}

// Load reads all three tables and rebuilds the board. A board with no
// parts, no stock and no history comes back Empty(); the caller decides
// whether that means first boot.
func Load(ts TableStore) (*board.Board, error) {
	parts, err := loadParts(ts)
	if err != nil {
		return nil, err
	}
	cells, err := loadCells(ts)
	if err != nil {
		return nil, err
	}
	events, err := loadEvents(ts)
	if err != nil {
		return nil, err
	}
	return board.FromSnapshot(parts, cells, events)
}

// Save writes the full board state to all three tables. All tables are
// attempted even when one fails; the joined error reports every failure.
func Save(ts TableStore, b *board.Board) error {
	snap := b.Snapshot()

	var errs []error
	if err := ts.WriteTable(TablePartMaster, renderParts(snap.Parts)); err != nil {
		errs = append(errs, fmt.Errorf("save %s: %w", TablePartMaster, err))
	}
	if err := ts.WriteTable(TableRacks, renderCells(snap.Racks)); err != nil {
		errs = append(errs, fmt.Errorf("save %s: %w", TableRacks, err))
	}
	if err := ts.WriteTable(TableHistory, renderEvents(snap.Events)); err != nil {
		errs = append(errs, fmt.Errorf("save %s: %w", TableHistory, err))
	}
	return errors.Join(errs...)
}

func loadParts(ts TableStore) ([]board.Part, error) {
	rows, err := ts.ReadTable(TablePartMaster)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", TablePartMaster, err)
	}
	parts := make([]board.Part, 0, len(rows))
	for i, r := range rows {
		p, err := parsePartRow(i, r)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func loadCells(ts TableStore) ([]board.CellState, error) {
	rows, err := ts.ReadTable(TableRacks)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", TableRacks, err)
	}
	cells := make([]board.CellState, 0, len(rows))
	for i, r := range rows {
		c, err := parseRackRow(i, r)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func loadEvents(ts TableStore) ([]board.Event, error) {
	rows, err := ts.ReadTable(TableHistory)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", TableHistory, err)
	}
	events := make([]board.Event, 0, len(rows))
	for i, r := range rows {
		ev, err := parseHistoryRow(i, r)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
