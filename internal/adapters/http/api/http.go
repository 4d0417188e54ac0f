// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/quantfold/fedgauge/internal/adapters/repository"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/signal"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Signal computations over the stance store.
	ComputeSignal(ctx context.Context, dim model.Dimension) signal.Weighted
	CurrentAction(ctx context.Context, dim model.Dimension, ref time.Time) (signal.Weighted, signal.Action)
	MeetingDrift(ctx context.Context, dim model.Dimension, ref time.Time) (signal.Drift, bool)
	SignalVsDecisions(ctx context.Context, dim model.Dimension, n int, ref time.Time) signal.Backtest

	// Stance history reads.
	History(ctx context.Context, name string) ([]model.StanceEntry, error)
	Latest(ctx context.Context, name string) (model.StanceEntry, error)

	// Participants lists the tracked roster.
	Participants(ctx context.Context) []ParticipantView

	// Calendar reads.
	NextMeeting(ref time.Time) (MeetingView, bool)
	IsBlackout(ref time.Time) bool
	BlackoutStart(ref time.Time) (time.Time, bool)

	// RefreshAll kicks off an asynchronous refresh cycle.
	RefreshAll(ctx context.Context) (runID string, jobs int)
}

// ParticipantView is the read shape for roster entries.
type ParticipantView struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Institution  string  `json:"institution"`
	Voter        bool    `json:"voter"`
	LatestScore  float64 `json:"latest_score"`
	LatestLabel  string  `json:"latest_label"`
	LatestDate   string  `json:"latest_date,omitempty"`
	LatestSource string  `json:"latest_source,omitempty"`
}

// MeetingView is the read shape for calendar entries.
type MeetingView struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Decision  string `json:"decision,omitempty"`
	DaysUntil int    `json:"days_until"`
}

// Server wires HTTP routes for the business API.
type Server struct {
	signalHandler       *SignalHandler
	driftHandler        *DriftHandler
	backtestHandler     *BacktestHandler
	participantsHandler *ParticipantsHandler
	blackoutHandler     *BlackoutHandler
	historyHandler      *HistoryHandler
	refreshHandler      *RefreshHandler
	healthHandler       *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		signalHandler:       NewSignalHandler(deps),
		driftHandler:        NewDriftHandler(deps),
		backtestHandler:     NewBacktestHandler(deps),
		participantsHandler: NewParticipantsHandler(deps),
		blackoutHandler:     NewBlackoutHandler(deps),
		historyHandler:      NewHistoryHandler(deps),
		refreshHandler:      NewRefreshHandler(deps),
		healthHandler:       NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/signal", MetricsMiddleware(s.signalHandler.HandleGetSignal, "signal"))
	mux.HandleFunc("/action", MetricsMiddleware(s.signalHandler.HandleGetAction, "action"))
	mux.HandleFunc("/drift", MetricsMiddleware(s.driftHandler.HandleGetDrift, "drift"))
	mux.HandleFunc("/backtest", MetricsMiddleware(s.backtestHandler.HandleGetBacktest, "backtest"))
	mux.HandleFunc("/participants", MetricsMiddleware(s.participantsHandler.HandleGetParticipants, "participants"))
	mux.HandleFunc("/blackout", MetricsMiddleware(s.blackoutHandler.HandleGetBlackout, "blackout"))
	mux.HandleFunc("/history/", MetricsMiddleware(s.historyHandler.HandleGetHistory, "history"))
	mux.HandleFunc("/refresh", MetricsMiddleware(s.refreshHandler.HandlePostRefresh, "refresh"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// dimensionParam reads the ?dimension= query parameter, defaulting to the
// overall blend. Unknown values are rejected.
func dimensionParam(r *http.Request) (model.Dimension, error) {
	switch strings.ToLower(r.URL.Query().Get("dimension")) {
	case "", string(model.DimensionOverall):
		return model.DimensionOverall, nil
	case string(model.DimensionPolicy):
		return model.DimensionPolicy, nil
	case string(model.DimensionBalanceSheet):
		return model.DimensionBalanceSheet, nil
	default:
		return "", ErrBadDimension
	}
}

func isNoHistory(err error) bool {
	return errors.Is(err, repository.ErrNoHistory)
}
