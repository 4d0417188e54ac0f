// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/signal"
)

// SignalDependencies defines the interface for signal operations.
type SignalDependencies interface {
	ComputeSignal(ctx context.Context, dim model.Dimension) signal.Weighted
	CurrentAction(ctx context.Context, dim model.Dimension, ref time.Time) (signal.Weighted, signal.Action)
}

// SignalHandler handles weighted-signal and implied-action requests.
type SignalHandler struct {
	deps SignalDependencies
}

// NewSignalHandler creates a new signal handler.
func NewSignalHandler(deps SignalDependencies) *SignalHandler {
	return &SignalHandler{deps: deps}
}

type signalResponse struct {
	Dimension string `json:"dimension"`
	signal.Weighted
}

// HandleGetSignal handles GET /signal?dimension= requests.
func (h *SignalHandler) HandleGetSignal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	dim, err := dimensionParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusOK, signalResponse{
		Dimension: string(dim),
		Weighted:  h.deps.ComputeSignal(r.Context(), dim),
	})
}

type actionResponse struct {
	Dimension     string  `json:"dimension"`
	WeightedScore float64 `json:"weighted_score"`
	signal.Action
}

// HandleGetAction handles GET /action?dimension= requests.
func (h *SignalHandler) HandleGetAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	dim, err := dimensionParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	weighted, action := h.deps.CurrentAction(r.Context(), dim, time.Now().UTC())
	writeJSON(w, http.StatusOK, actionResponse{
		Dimension:     string(dim),
		WeightedScore: weighted.WeightedScore,
		Action:        action,
	})
}
