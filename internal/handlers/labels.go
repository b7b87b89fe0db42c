package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/labels"
)

// rackLabels serves a printable QR label sheet for one rack
func (r *Router) rackLabels(w http.ResponseWriter, req *http.Request) {
	rack := mux.Vars(req)["rack"]

	slots, ok := board.RackSlots[rack]
	if !ok {
		respondError(w, http.StatusNotFound, "Unknown rack "+rack)
		return
	}
	cols := int(math.Ceil(float64(slots) / float64(board.FixedRows)))

	pdf, err := labels.GenerateRackLabelsPDF(rack, board.FixedRows, cols)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate labels")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=rack_%s_labels.pdf", rack))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
