// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/signal"
)

// DriftDependencies defines the interface for drift operations.
type DriftDependencies interface {
	MeetingDrift(ctx context.Context, dim model.Dimension, ref time.Time) (signal.Drift, bool)
}

// DriftHandler handles meeting-to-meeting drift requests.
type DriftHandler struct {
	deps DriftDependencies
}

// NewDriftHandler creates a new drift handler.
func NewDriftHandler(deps DriftDependencies) *DriftHandler {
	return &DriftHandler{deps: deps}
}

// HandleGetDrift handles GET /drift?dimension= requests. Returns 404
// when no meeting has completed yet.
func (h *DriftHandler) HandleGetDrift(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	dim, err := dimensionParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	drift, ok := h.deps.MeetingDrift(r.Context(), dim, time.Now().UTC())
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	writeJSON(w, http.StatusOK, drift)
}

// BacktestDependencies defines the interface for backtest operations.
type BacktestDependencies interface {
	SignalVsDecisions(ctx context.Context, dim model.Dimension, n int, ref time.Time) signal.Backtest
}

// BacktestHandler handles signal-vs-decision backtest requests.
type BacktestHandler struct {
	deps BacktestDependencies
}

// NewBacktestHandler creates a new backtest handler.
func NewBacktestHandler(deps BacktestDependencies) *BacktestHandler {
	return &BacktestHandler{deps: deps}
}

// HandleGetBacktest handles GET /backtest?dimension=&n= requests.
func (h *BacktestHandler) HandleGetBacktest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	dim, err := dimensionParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.deps.SignalVsDecisions(r.Context(), dim, n, time.Now().UTC()))
}
