package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
)

// CellView is one cell as shown on the board screen
type CellView struct {
	PartNo   string          `json:"part_no"`
	Quantity int             `json:"quantity"`
	Weight   decimal.Decimal `json:"weight"`
}

// RackView is one rack grid with per-cell weights
type RackView struct {
	Rack  string       `json:"rack"`
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
	Slots int          `json:"slots"`
	Cells [][]CellView `json:"cells"`
}

// getBoard returns the full board snapshot with weights
func (r *Router) getBoard(w http.ResponseWriter, req *http.Request) {
	snap := r.board.Snapshot()

	catalog := make(map[string]board.Part, len(snap.Parts))
	for _, p := range snap.Parts {
		catalog[p.PartNo] = p
	}

	totalWeight := decimal.Zero
	racks := make([]RackView, 0, len(snap.Racks))
	for _, rack := range snap.Racks {
		view := RackView{Rack: rack.ID, Rows: rack.Rows, Cols: rack.Cols, Slots: rack.Slots}
		for _, row := range rack.Cells {
			cells := make([]CellView, 0, len(row))
			for _, c := range row {
				weight := decimal.Zero
				if c.Quantity > 0 {
					if p, ok := catalog[c.PartNo]; ok {
						weight = p.Weight.Mul(decimal.NewFromInt(int64(c.Quantity))).Add(board.PackagingWeight)
					}
				}
				totalWeight = totalWeight.Add(weight)
				cells = append(cells, CellView{PartNo: c.PartNo, Quantity: c.Quantity, Weight: weight})
			}
			view.Cells = append(view.Cells, cells)
		}
		racks = append(racks, view)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"racks":          racks,
		"total_quantity": r.board.TotalQuantity(),
		"total_weight":   totalWeight,
	})
}

// verifyBoard replays the full history from empty and checks it
// reproduces the current grid
func (r *Router) verifyBoard(w http.ResponseWriter, req *http.Request) {
	if err := r.board.VerifyReplay(); err != nil {
		respondJSON(w, http.StatusConflict, map[string]interface{}{
			"consistent": false,
			"error":      err.Error(),
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"consistent": true,
		"events":     len(r.board.Events()),
	})
}

// listHistory returns movement events, newest first
func (r *Router) listHistory(w http.ResponseWriter, req *http.Request) {
	events := r.board.EventsNewestFirst()
	if s := req.URL.Query().Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		if limit < len(events) {
			events = events[:limit]
		}
	}
	respondJSON(w, http.StatusOK, events)
}

// findPick answers the FIFO "where do I pick from" query
func (r *Router) findPick(w http.ResponseWriter, req *http.Request) {
	partNo := mux.Vars(req)["partNo"]

	pick, err := r.board.FindPick(partNo)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, pick)
}
