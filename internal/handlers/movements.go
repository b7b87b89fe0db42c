package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/store"
)

// MovementRequest represents one add or subtract against a cell
type MovementRequest struct {
	Rack     string `json:"rack"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	PartNo   string `json:"part_no"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// addMovement places stock into a cell
func (r *Router) addMovement(w http.ResponseWriter, req *http.Request) {
	r.applyMovement(w, req, r.board.Add)
}

// subtractMovement draws stock from a cell
func (r *Router) subtractMovement(w http.ResponseWriter, req *http.Request) {
	r.applyMovement(w, req, r.board.Subtract)
}

func (r *Router) applyMovement(w http.ResponseWriter, req *http.Request,
	op func(rack string, row, col int, partNo string, qty int, user, note string) (board.Event, error)) {

	var body MovementRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ev, err := op(body.Rack, body.Row, body.Col, body.PartNo, body.Quantity, actingUser(req), body.Note)
	if err != nil {
		respondError(w, movementStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"event":          ev,
		"persisted":      r.persist(),
		"total_quantity": r.board.TotalQuantity(),
	})
}

// movementStatus maps board validation errors to HTTP statuses
func movementStatus(err error) int {
	switch {
	case errors.Is(err, board.ErrInvalidCoordinate), errors.Is(err, board.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, board.ErrConflict), errors.Is(err, board.ErrCapacityExceeded), errors.Is(err, board.ErrMismatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// persist flushes the board to the gateway after an accepted mutation.
// A failed flush is logged and reported but never blocks the session;
// the in-memory board stays authoritative until the next save succeeds.
func (r *Router) persist() bool {
	if err := store.Save(r.store, r.board); err != nil {
		log.Printf("⚠️ Persistence failed, continuing in memory: %v", err)
		return false
	}
	return true
}
