package api

import (
	"context"
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type HealthResponse struct {
	Status          string `json:"status" example:"healthy"`
	OllamaAvailable bool   `json:"ollama_available" example:"true"`
	Model           string `json:"model" example:"llama3.1:8b"`
}

type RootResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"FRQ grading service is running"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// probeTimeout bounds the health probe so /health answers quickly even when
// the backend is hanging.
const probeTimeout = 5 * time.Second

// health reports service and backend status.
// @Summary      Health check
// @Description  Probe the inference backend and report its reachability. Always returns 200; a down backend shows as status "degraded".
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	available := h.grader.Available(ctx)

	status := "healthy"
	if !available {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:          status,
		OllamaAvailable: available,
		Model:           h.model,
	})
}

// root is a plain service banner.
// @Summary      Service banner
// @Tags         Health
// @Produce      json
// @Success      200  {object}  RootResponse
// @Router       / [get]
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RootResponse{
		Status:  "ok",
		Message: "FRQ grading service is running",
	})
}
