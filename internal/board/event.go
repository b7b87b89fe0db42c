package board

import (
	"time"

	"github.com/google/uuid"
)

// Action is the kind of a history event.
type Action string

const (
	ActionAdd          Action = "add"
	ActionSubtract     Action = "subtract"
	ActionMasterUpdate Action = "master_update"
)

// Event is one immutable entry of the movement history. Row/Col are the
// 1-based coordinates the operator saw; they reference the cell by value,
// the cell may have changed since.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    Action    `json:"action"`
	Rack      string    `json:"rack"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	PartNo    string    `json:"part_no"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
}

func newEventID() string {
	return uuid.NewString()
}

// appendEvent records an accepted mutation. Called with b.mu held.
func (b *Board) appendEvent(action Action, rackID string, row, col int, partNo string, qty int, user, note string) Event {
	ev := Event{
		ID:        b.newID(),
		Timestamp: b.now().UTC(),
		User:      user,
		Action:    action,
		Rack:      rackID,
		Row:       row,
		Col:       col,
		PartNo:    partNo,
		Quantity:  qty,
		Note:      note,
	}
	b.history = append(b.history, ev)
	return ev
}

// Events returns the history in chronological-ascending order (the order
// FIFO resolution walks).
func (b *Board) Events() []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Event(nil), b.history...)
}

// EventsNewestFirst returns the history in reverse append order, the view
// the audit screen shows.
func (b *Board) EventsNewestFirst() []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Event, len(b.history))
	for i, ev := range b.history {
		out[len(b.history)-1-i] = ev
	}
	return out
}
