package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
)

// PartRequest represents a part master upsert
type PartRequest struct {
	PartNo     string          `json:"part_no"`
	Weight     decimal.Decimal `json:"weight"`
	Customer   string          `json:"customer"`
	TubeLength int             `json:"tube_length_mm"`
}

// listParts returns the full part master
func (r *Router) listParts(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.board.ListParts())
}

// upsertPart inserts or overwrites one part master entry
func (r *Router) upsertPart(w http.ResponseWriter, req *http.Request) {
	var body PartRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.PartNo == "" {
		respondError(w, http.StatusBadRequest, "part_no is required")
		return
	}
	if body.Weight.IsNegative() {
		respondError(w, http.StatusBadRequest, "weight must not be negative")
		return
	}

	ev := r.board.UpsertPart(board.Part{
		PartNo:     body.PartNo,
		Weight:     body.Weight,
		Customer:   body.Customer,
		TubeLength: body.TubeLength,
	}, actingUser(req))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"event":     ev,
		"persisted": r.persist(),
	})
}
