package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/buildinfo"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/config"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/database"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/middleware"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/models"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/store"
)

// Router wraps the mux router with the session state it serves: the user
// database, the in-memory board and the gateway the board is flushed to.
type Router struct {
	*mux.Router
	db    *database.DB
	board *board.Board
	store store.TableStore
	cfg   *config.Config
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, b *board.Board, ts store.TableStore, cfg *config.Config) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		db:     db,
		board:  b,
		store:  ts,
		cfg:    cfg,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	api.Handle("/status", r.gate(models.RoleOutput, r.getStatus)).Methods("GET")

	api.Handle("/parts", r.gate(models.RoleOutput, r.listParts)).Methods("GET")
	api.Handle("/parts", r.gate(models.RoleMaster, r.upsertPart)).Methods("POST")

	api.Handle("/board", r.gate(models.RoleOutput, r.getBoard)).Methods("GET")
	api.Handle("/board/verify", r.gate(models.RoleMaster, r.verifyBoard)).Methods("GET")

	api.Handle("/movements/add", r.gate(models.RoleInput, r.addMovement)).Methods("POST")
	api.Handle("/movements/subtract", r.gate(models.RoleOutput, r.subtractMovement)).Methods("POST")

	api.Handle("/history", r.gate(models.RoleOutput, r.listHistory)).Methods("GET")
	api.Handle("/pick/{partNo}", r.gate(models.RoleOutput, r.findPick)).Methods("GET")

	api.Handle("/labels/{rack}", r.gate(models.RoleMaster, r.rackLabels)).Methods("GET")

	return r
}

// gate wraps a handler behind a minimum role
func (r *Router) gate(min string, h http.HandlerFunc) http.Handler {
	return middleware.RequireRole(min)(h)
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getStatus returns build and session info
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "running",
		"build_time":     buildinfo.BuildTime,
		"commit":         buildinfo.CommitHash,
		"started_at":     buildinfo.StartTime,
		"total_quantity": r.board.TotalQuantity(),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// actingUser resolves the authenticated username for history attribution.
// The identity always comes from the verified token, never from a request
// body.
func actingUser(req *http.Request) string {
	if name, ok := middleware.ClaimString(req.Context(), "username"); ok && name != "" {
		return name
	}
	return "unknown"
}
