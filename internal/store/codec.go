package store

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
)

// Timestamps are stored the way the original history sheet wrote them.
const timestampLayout = "2006-01-02 15:04:05"

// One parse function per table shape, shared by load and save paths: the
// gorm store runs the same functions when turning rows back into records,
// so a row that would not load is never written.

func parsePartRow(i int, r Row) (board.Part, error) {
	partNo := r["Part No"]
	if partNo == "" {
		return board.Part{}, &ParseError{Table: TablePartMaster, Index: i, Field: "Part No", Reason: "missing"}
	}
	weight, err := decimal.NewFromString(r["Weight"])
	if err != nil {
		return board.Part{}, &ParseError{Table: TablePartMaster, Index: i, Field: "Weight", Reason: err.Error()}
	}
	if weight.IsNegative() {
		return board.Part{}, &ParseError{Table: TablePartMaster, Index: i, Field: "Weight", Reason: "negative"}
	}
	tube, err := optionalInt(r["Tube Length (mm)"])
	if err != nil {
		return board.Part{}, &ParseError{Table: TablePartMaster, Index: i, Field: "Tube Length (mm)", Reason: err.Error()}
	}
	return board.Part{
		PartNo:     partNo,
		Weight:     weight,
		Customer:   r["Customer"],
		TubeLength: tube,
	}, nil
}

func renderParts(parts []board.Part) []Row {
	rows := make([]Row, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, Row{
			"Part No":          p.PartNo,
			"Weight":           p.Weight.String(),
			"Customer":         p.Customer,
			"Tube Length (mm)": strconv.Itoa(p.TubeLength),
		})
	}
	return rows
}

func parseRackRow(i int, r Row) (board.CellState, error) {
	rack := r["Rack"]
	if rack == "" {
		return board.CellState{}, &ParseError{Table: TableRacks, Index: i, Field: "Rack", Reason: "missing"}
	}
	row, err := requiredInt(r["Row"])
	if err != nil {
		return board.CellState{}, &ParseError{Table: TableRacks, Index: i, Field: "Row", Reason: err.Error()}
	}
	col, err := requiredInt(r["Col"])
	if err != nil {
		return board.CellState{}, &ParseError{Table: TableRacks, Index: i, Field: "Col", Reason: err.Error()}
	}
	qty, err := optionalInt(r["Quantity"])
	if err != nil {
		return board.CellState{}, &ParseError{Table: TableRacks, Index: i, Field: "Quantity", Reason: err.Error()}
	}
	return board.CellState{
		Rack:     rack,
		Row:      row,
		Col:      col,
		PartNo:   r["Part No"],
		Quantity: qty,
	}, nil
}

// renderCells flattens every cell of every rack, empty cells included, so
// the persisted table always describes the full grid.
func renderCells(racks []board.Rack) []Row {
	var rows []Row
	for _, rack := range racks {
		for i := 0; i < rack.Rows; i++ {
			for j := 0; j < rack.Cols; j++ {
				c := rack.Cells[i][j]
				rows = append(rows, Row{
					"Rack":     rack.ID,
					"Row":      strconv.Itoa(i + 1),
					"Col":      strconv.Itoa(j + 1),
					"Part No":  c.PartNo,
					"Quantity": strconv.Itoa(c.Quantity),
				})
			}
		}
	}
	return rows
}

func parseHistoryRow(i int, r Row) (board.Event, error) {
	ts, err := time.ParseInLocation(timestampLayout, r["Timestamp"], time.UTC)
	if err != nil {
		return board.Event{}, &ParseError{Table: TableHistory, Index: i, Field: "Timestamp", Reason: err.Error()}
	}
	action := board.Action(r["Action"])
	switch action {
	case board.ActionAdd, board.ActionSubtract, board.ActionMasterUpdate:
	default:
		return board.Event{}, &ParseError{Table: TableHistory, Index: i, Field: "Action", Reason: "unknown action " + r["Action"]}
	}
	row, err := optionalInt(r["Row"])
	if err != nil {
		return board.Event{}, &ParseError{Table: TableHistory, Index: i, Field: "Row", Reason: err.Error()}
	}
	col, err := optionalInt(r["Col"])
	if err != nil {
		return board.Event{}, &ParseError{Table: TableHistory, Index: i, Field: "Col", Reason: err.Error()}
	}
	qty, err := optionalInt(r["Quantity"])
	if err != nil {
		return board.Event{}, &ParseError{Table: TableHistory, Index: i, Field: "Quantity", Reason: err.Error()}
	}
	id := r["ID"]
	if id == "" {
		// Journals written before IDs were recorded still load.
		id = uuid.NewString()
	}
	return board.Event{
		ID:        id,
		Timestamp: ts,
		User:      r["User"],
		Action:    action,
		Rack:      r["Rack"],
		Row:       row,
		Col:       col,
		PartNo:    r["Part No"],
		Quantity:  qty,
		Note:      r["Note"],
	}, nil
}

func renderEvents(events []board.Event) []Row {
	rows := make([]Row, 0, len(events))
	for _, ev := range events {
		rows = append(rows, Row{
			"ID":        ev.ID,
			"Timestamp": ev.Timestamp.UTC().Format(timestampLayout),
			"User":      ev.User,
			"Action":    string(ev.Action),
			"Rack":      ev.Rack,
			"Row":       strconv.Itoa(ev.Row),
			"Col":       strconv.Itoa(ev.Col),
			"Part No":   ev.PartNo,
			"Quantity":  strconv.Itoa(ev.Quantity),
			"Note":      ev.Note,
		})
	}
	return rows
}

func requiredInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
