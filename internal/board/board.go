package board

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Deployment constants. Fixed at build time, not runtime-editable.
const (
	// CellCapacity is the maximum quantity a single cell may hold.
	CellCapacity = 25

	// FixedRows is the row count of every rack.
	FixedRows = 3
)

// PackagingWeight is added once to the weight of every non-empty cell.
var PackagingWeight = decimal.RequireFromString("25.0")

// RackSlots maps rack id to its total slot count. Column count is derived
// as ceil(slots / FixedRows).
var RackSlots = map[string]int{
	"A": 9, "B": 15, "C": 12, "D": 6, "E": 24, "F": 57,
}

// RackOrder is the display order of racks.
var RackOrder = []string{"A", "B", "C", "D", "E", "F"}

// Part holds the static attributes of one part number.
type Part struct {
	PartNo     string          `json:"part_no"`
	Weight     decimal.Decimal `json:"weight"`
	Customer   string          `json:"customer"`
	TubeLength int             `json:"tube_length_mm"`
}

// Cell is one storage slot. PartNo == "" always goes together with
// Quantity == 0.
type Cell struct {
	PartNo   string `json:"part_no"`
	Quantity int    `json:"quantity"`
}

// Rack is a fixed-shape grid of cells. Cells are indexed [row][col],
// 0-based internally; the public operations speak 1-based.
type Rack struct {
	ID    string
	Rows  int
	Cols  int
	Slots int
	Cells [][]Cell
}

// Board is the full in-memory session state: part catalog, rack grids and
// movement history. It is an explicit object handed to whoever needs it;
// there is no package-level instance. A single mutex serializes writers
// within the process. Concurrent processes against the same persisted
// store are not coordinated.
type Board struct {
	mu      sync.RWMutex
	catalog map[string]Part
	racks   map[string]*Rack
	history []Event

	now   func() time.Time
	newID func() string
}

// New returns an empty board: all racks built from RackSlots, no parts, no
// history.
func New() *Board {
	b := &Board{
		catalog: make(map[string]Part),
		racks:   make(map[string]*Rack),
		now:     time.Now,
		newID:   newEventID,
	}
	for id, slots := range RackSlots {
		b.racks[id] = newRack(id, slots)
	}
	return b
}

// NewWithDefaults returns a board pre-loaded with the stock part master
// used on first boot, before any catalog rows have been persisted.
func NewWithDefaults() *Board {
	b := New()
	for _, p := range []Part{
		{PartNo: "10283026", Weight: decimal.RequireFromString("8.05"), Customer: "Mahindra Pune", TubeLength: 1254},
		{PartNo: "10291078", Weight: decimal.RequireFromString("7.90"), Customer: "Mahindra Pune", TubeLength: 1245},
		{PartNo: "10282069", Weight: decimal.RequireFromString("8.95"), Customer: "Mahindra Pune", TubeLength: 1262},
	} {
		b.catalog[p.PartNo] = p
	}
	return b
}

func newRack(id string, slots int) *Rack {
	cols := int(math.Ceil(float64(slots) / float64(FixedRows)))
	cells := make([][]Cell, FixedRows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Rack{ID: id, Rows: FixedRows, Cols: cols, Slots: slots, Cells: cells}
}

// CellState is one flattened cell with its rack coordinate, 1-based, as
// exchanged with the persistence gateway.
type CellState struct {
	Rack     string
	Row      int
	Col      int
	PartNo   string
	Quantity int
}

// Snapshot is a deep copy of the entire board state, safe to read and
// serialize after the board has moved on.
type Snapshot struct {
	Parts  []Part
	Racks  []Rack
	Events []Event
}

// FromSnapshot rebuilds a board from persisted state. Cell rows outside
// the configured grid shape or violating the cell invariant are rejected:
// a snapshot that cannot be represented means the store and the deployment
// constants disagree, which is not recoverable here.
func FromSnapshot(parts []Part, cells []CellState, events []Event) (*Board, error) {
	b := New()
	for _, p := range parts {
		b.catalog[p.PartNo] = p
	}
	for _, c := range cells {
		rack, ok := b.racks[c.Rack]
		if !ok || c.Row < 1 || c.Row > rack.Rows || c.Col < 1 || c.Col > rack.Cols {
			return nil, fmt.Errorf("cell (%s,%d,%d): %w", c.Rack, c.Row, c.Col, ErrInvalidCoordinate)
		}
		if c.Quantity < 0 || c.Quantity > CellCapacity {
			return nil, fmt.Errorf("cell (%s,%d,%d): quantity %d out of range", c.Rack, c.Row, c.Col, c.Quantity)
		}
		if (c.Quantity == 0) != (c.PartNo == "") {
			return nil, fmt.Errorf("cell (%s,%d,%d): part %q with quantity %d breaks the empty-cell invariant",
				c.Rack, c.Row, c.Col, c.PartNo, c.Quantity)
		}
		rack.Cells[c.Row-1][c.Col-1] = Cell{PartNo: c.PartNo, Quantity: c.Quantity}
	}
	b.history = append(b.history, events...)
	return b, nil
}

// Snapshot returns a deep copy of the current state. Racks come out in
// RackOrder, parts in part-number order, events chronological-ascending.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Snapshot{
		Parts:  b.listPartsLocked(),
		Events: append([]Event(nil), b.history...),
	}
	for _, id := range RackOrder {
		r := b.racks[id]
		cp := Rack{ID: r.ID, Rows: r.Rows, Cols: r.Cols, Slots: r.Slots, Cells: make([][]Cell, r.Rows)}
		for i := range r.Cells {
			cp.Cells[i] = append([]Cell(nil), r.Cells[i]...)
		}
		s.Racks = append(s.Racks, cp)
	}
	return s
}

// Empty reports whether the board carries no parts, no stock and no
// history, i.e. nothing has ever been persisted.
func (b *Board) Empty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.catalog) == 0 && len(b.history) == 0 && b.totalQuantityLocked() == 0
}

func (b *Board) listPartsLocked() []Part {
	parts := make([]Part, 0, len(b.catalog))
	for _, p := range b.catalog {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNo < parts[j].PartNo })
	return parts
}

// cellAt resolves a 1-based coordinate to its cell, or ErrInvalidCoordinate.
func (b *Board) cellAt(rackID string, row, col int) (*Cell, error) {
	rack, ok := b.racks[rackID]
	if !ok {
		return nil, fmt.Errorf("rack %q: %w", rackID, ErrInvalidCoordinate)
	}
	if row < 1 || row > rack.Rows || col < 1 || col > rack.Cols {
		return nil, fmt.Errorf("(%s,%d,%d) outside %dx%d grid: %w",
			rackID, row, col, rack.Rows, rack.Cols, ErrInvalidCoordinate)
	}
	return &rack.Cells[row-1][col-1], nil
}
