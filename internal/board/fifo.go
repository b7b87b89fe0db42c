package board

import "fmt"

// Pick is the answer to "where do I draw this part from first".
type Pick struct {
	Rack     string `json:"rack"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	PartNo   string `json:"part_no"`
	Quantity int    `json:"quantity"`
}

// FindPick returns the FIFO pick target for partNo: it walks the history
// oldest-first and returns the first add event whose target cell still
// holds that part with positive quantity. Add events whose cell has since
// been drained or overwritten are skipped. ErrNotFound when no eligible
// cell remains.
//
// This is an approximation of true FIFO based on deposit order, not a
// per-lot ledger: a partial subtract from an older cell does not promote a
// newer cell ahead of it. Known limitation, kept deliberately.
func (b *Board) FindPick(partNo string) (Pick, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ev := range b.history {
		if ev.Action != ActionAdd || ev.PartNo != partNo {
			continue
		}
		rack, ok := b.racks[ev.Rack]
		if !ok || ev.Row < 1 || ev.Row > rack.Rows || ev.Col < 1 || ev.Col > rack.Cols {
			continue
		}
		cell := rack.Cells[ev.Row-1][ev.Col-1]
		if cell.PartNo == partNo && cell.Quantity > 0 {
			return Pick{
				Rack:     ev.Rack,
				Row:      ev.Row,
				Col:      ev.Col,
				PartNo:   partNo,
				Quantity: cell.Quantity,
			}, nil
		}
	}
	return Pick{}, fmt.Errorf("no stock of %s on the board: %w", partNo, ErrNotFound)
}
