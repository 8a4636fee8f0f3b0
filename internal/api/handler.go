// internal/api/handler.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frqgrade/backend/internal/grader"
	"github.com/frqgrade/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	grading *service.GradingService
	grader  grader.Grader
	model   string // reported by /health
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(gs *service.GradingService, g grader.Grader, model string, logger *slog.Logger) *Handler {
	return &Handler{
		grading: gs,
		grader:  g,
		model:   model,
		logger:  logger,
	}
}

// RegisterRoutes wires all endpoints onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /grade", h.grade)
	mux.HandleFunc("POST /grade/batch", h.gradeBatch)
}

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"max_points must be greater than zero"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorJSON writes a structured error response.
func errorJSON(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
