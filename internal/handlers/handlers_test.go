package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/config"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/store"
)

// newTestRouter builds a router over a fresh board and an in-memory
// gateway. The user database is not wired: these tests exercise the board
// endpoints directly, below the auth middleware.
func newTestRouter() *Router {
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewRouter(nil, board.NewWithDefaults(), store.NewMemStore(), cfg)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(buf))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAddMovement(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r.addMovement, "/api/movements/add", MovementRequest{
		Rack: "A", Row: 1, Col: 1, PartNo: "10283026", Quantity: 10,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Persisted     bool `json:"persisted"`
		TotalQuantity int  `json:"total_quantity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Persisted {
		t.Error("movement should persist to the memory store")
	}
	if resp.TotalQuantity != 10 {
		t.Errorf("total_quantity = %d, want 10", resp.TotalQuantity)
	}
}

func TestMovementErrorStatuses(t *testing.T) {
	r := newTestRouter()

	if w := postJSON(t, r.addMovement, "/api/movements/add", MovementRequest{
		Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 20,
	}); w.Code != http.StatusOK {
		t.Fatalf("setup add failed: %s", w.Body.String())
	}

	cases := []struct {
		name    string
		handler http.HandlerFunc
		body    MovementRequest
		want    int
	}{
		{"bad coordinate", r.addMovement, MovementRequest{Rack: "Z", Row: 1, Col: 1, PartNo: "P1", Quantity: 1}, http.StatusBadRequest},
		{"zero quantity", r.addMovement, MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 0}, http.StatusBadRequest},
		{"conflict", r.addMovement, MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P2", Quantity: 1}, http.StatusConflict},
		{"over capacity", r.addMovement, MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 10}, http.StatusConflict},
		{"mismatch", r.subtractMovement, MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 25}, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, tc.handler, "/api/movements/x", tc.body)
			if w.Code != tc.want {
				t.Errorf("got %d, want %d: %s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestFindPickEndpoint(t *testing.T) {
	r := newTestRouter()

	postJSON(t, r.addMovement, "/x", MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 5})
	postJSON(t, r.addMovement, "/x", MovementRequest{Rack: "A", Row: 2, Col: 1, PartNo: "P1", Quantity: 5})
	postJSON(t, r.subtractMovement, "/x", MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 5})

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/pick/P1", nil), map[string]string{"partNo": "P1"})
	w := httptest.NewRecorder()
	r.findPick(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("pick returned %d: %s", w.Code, w.Body.String())
	}
	var pick board.Pick
	if err := json.Unmarshal(w.Body.Bytes(), &pick); err != nil {
		t.Fatal(err)
	}
	if pick.Rack != "A" || pick.Row != 2 || pick.Col != 1 {
		t.Errorf("pick = %+v, want (A,2,1)", pick)
	}

	// Unknown part is a 404, not a 500
	req = mux.SetURLVars(httptest.NewRequest("GET", "/api/pick/NOPE", nil), map[string]string{"partNo": "NOPE"})
	w = httptest.NewRecorder()
	r.findPick(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing part returned %d, want 404", w.Code)
	}
}

func TestUpsertPartAndList(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r.upsertPart, "/api/parts", map[string]interface{}{
		"part_no": "55001100", "weight": "3.25", "customer": "Tata Nashik", "tube_length_mm": 870,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("upsert returned %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest("GET", "/api/parts", nil)
	rec := httptest.NewRecorder()
	r.listParts(rec, req)

	var parts []board.Part
	if err := json.Unmarshal(rec.Body.Bytes(), &parts); err != nil {
		t.Fatal(err)
	}
	if len(parts) != 4 { // 3 defaults + 1 new
		t.Errorf("expected 4 parts, got %d", len(parts))
	}

	// Missing part number is rejected
	w = postJSON(t, r.upsertPart, "/api/parts", map[string]interface{}{"weight": "1.0"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("upsert without part_no returned %d, want 400", w.Code)
	}
}

func TestHistoryNewestFirstAndLimit(t *testing.T) {
	r := newTestRouter()
	postJSON(t, r.addMovement, "/x", MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 1})
	postJSON(t, r.addMovement, "/x", MovementRequest{Rack: "A", Row: 1, Col: 2, PartNo: "P2", Quantity: 2})

	req := httptest.NewRequest("GET", "/api/history?limit=1", nil)
	w := httptest.NewRecorder()
	r.listHistory(w, req)

	var events []board.Event
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("limit=1 returned %d events", len(events))
	}
	if events[0].PartNo != "P2" {
		t.Errorf("newest event should come first, got %s", events[0].PartNo)
	}
}

func TestVerifyBoardEndpoint(t *testing.T) {
	r := newTestRouter()
	postJSON(t, r.addMovement, "/x", MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "P1", Quantity: 5})

	req := httptest.NewRequest("GET", "/api/board/verify", nil)
	w := httptest.NewRecorder()
	r.verifyBoard(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("verify returned %d: %s", w.Code, w.Body.String())
	}
}

func TestGetBoardWeights(t *testing.T) {
	r := newTestRouter()
	// 10 * 8.05 + 25.0 packaging = 105.5
	postJSON(t, r.addMovement, "/x", MovementRequest{Rack: "A", Row: 1, Col: 1, PartNo: "10283026", Quantity: 10})

	req := httptest.NewRequest("GET", "/api/board", nil)
	w := httptest.NewRecorder()
	r.getBoard(w, req)

	var resp struct {
		Racks         []RackView `json:"racks"`
		TotalQuantity int        `json:"total_quantity"`
		TotalWeight   string     `json:"total_weight"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalQuantity != 10 {
		t.Errorf("total_quantity = %d, want 10", resp.TotalQuantity)
	}
	if resp.TotalWeight != "105.5" {
		t.Errorf("total_weight = %s, want 105.5", resp.TotalWeight)
	}
	if len(resp.Racks) != 6 {
		t.Errorf("expected 6 racks, got %d", len(resp.Racks))
	}
}

func TestRackLabelsEndpoint(t *testing.T) {
	r := newTestRouter()

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/labels/A", nil), map[string]string{"rack": "A"})
	w := httptest.NewRecorder()
	r.rackLabels(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("labels returned %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %s, want application/pdf", ct)
	}

	req = mux.SetURLVars(httptest.NewRequest("GET", "/api/labels/Z", nil), map[string]string{"rack": "Z"})
	w = httptest.NewRecorder()
	r.rackLabels(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown rack returned %d, want 404", w.Code)
	}
}
