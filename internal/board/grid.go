package board

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Add places qty units of partNo into the cell at (rackID, row, col),
// 1-based. The cell must be empty or already hold the same part, and the
// resulting quantity must not exceed CellCapacity. On success exactly one
// history event is appended and returned. On any error the board is left
// unchanged.
func (b *Board) Add(rackID string, row, col int, partNo string, qty int, user, note string) (Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cell, err := b.cellAt(rackID, row, col)
	if err != nil {
		return Event{}, err
	}
	if qty <= 0 {
		return Event{}, fmt.Errorf("add %d: %w", qty, ErrInvalidQuantity)
	}
	if cell.PartNo != "" && cell.PartNo != partNo {
		return Event{}, fmt.Errorf("(%s,%d,%d) holds %s: %w", rackID, row, col, cell.PartNo, ErrConflict)
	}
	if cell.Quantity+qty > CellCapacity {
		return Event{}, fmt.Errorf("(%s,%d,%d) %d+%d > %d: %w",
			rackID, row, col, cell.Quantity, qty, CellCapacity, ErrCapacityExceeded)
	}

	cell.PartNo = partNo
	cell.Quantity += qty
	return b.appendEvent(ActionAdd, rackID, row, col, partNo, qty, user, note), nil
}

// Subtract removes qty units of partNo from the cell at (rackID, row, col),
// 1-based. The cell must hold exactly that part with at least qty units;
// wrong part and insufficient quantity both surface as ErrMismatch. A cell
// drained to zero is reset to empty. On success exactly one history event
// is appended and returned.
func (b *Board) Subtract(rackID string, row, col int, partNo string, qty int, user, note string) (Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cell, err := b.cellAt(rackID, row, col)
	if err != nil {
		return Event{}, err
	}
	if qty <= 0 {
		return Event{}, fmt.Errorf("subtract %d: %w", qty, ErrInvalidQuantity)
	}
	if cell.PartNo != partNo {
		return Event{}, fmt.Errorf("(%s,%d,%d) holds %q, not %q: %w", rackID, row, col, cell.PartNo, partNo, ErrMismatch)
	}
	if cell.Quantity < qty {
		return Event{}, fmt.Errorf("(%s,%d,%d) has %d, need %d: %w", rackID, row, col, cell.Quantity, qty, ErrMismatch)
	}

	cell.Quantity -= qty
	if cell.Quantity == 0 {
		cell.PartNo = ""
	}
	return b.appendEvent(ActionSubtract, rackID, row, col, partNo, qty, user, note), nil
}

// TotalQuantity sums the quantity of every cell across all racks.
func (b *Board) TotalQuantity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.totalQuantityLocked()
}

func (b *Board) totalQuantityLocked() int {
	total := 0
	for _, rack := range b.racks {
		for _, row := range rack.Cells {
			for _, cell := range row {
				total += cell.Quantity
			}
		}
	}
	return total
}

// CellWeight reports the gross weight of a cell: quantity times the part's
// unit weight plus the packaging addend. Empty cells and cells holding an
// uncatalogued part weigh zero. Reporting only; validation never reads it.
func (b *Board) CellWeight(rackID string, row, col int) (decimal.Decimal, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cell, err := b.cellAt(rackID, row, col)
	if err != nil {
		return decimal.Zero, err
	}
	return b.cellWeightLocked(*cell), nil
}

func (b *Board) cellWeightLocked(cell Cell) decimal.Decimal {
	if cell.Quantity == 0 || cell.PartNo == "" {
		return decimal.Zero
	}
	part, ok := b.catalog[cell.PartNo]
	if !ok {
		return decimal.Zero
	}
	return part.Weight.Mul(decimal.NewFromInt(int64(cell.Quantity))).Add(PackagingWeight)
}
