// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ParticipantsDependencies defines the interface for roster reads.
type ParticipantsDependencies interface {
	Participants(ctx context.Context) []ParticipantView
}

// ParticipantsHandler handles roster listing requests.
type ParticipantsHandler struct {
	deps ParticipantsDependencies
}

// NewParticipantsHandler creates a new participants handler.
func NewParticipantsHandler(deps ParticipantsDependencies) *ParticipantsHandler {
	return &ParticipantsHandler{deps: deps}
}

// HandleGetParticipants handles GET /participants requests.
func (h *ParticipantsHandler) HandleGetParticipants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Participants(r.Context()))
}

// BlackoutDependencies defines the interface for calendar reads.
type BlackoutDependencies interface {
	NextMeeting(ref time.Time) (MeetingView, bool)
	IsBlackout(ref time.Time) bool
	BlackoutStart(ref time.Time) (time.Time, bool)
}

// BlackoutHandler handles blackout and next-meeting requests.
type BlackoutHandler struct {
	deps BlackoutDependencies
}

// NewBlackoutHandler creates a new blackout handler.
func NewBlackoutHandler(deps BlackoutDependencies) *BlackoutHandler {
	return &BlackoutHandler{deps: deps}
}

type blackoutResponse struct {
	Blackout      bool         `json:"blackout"`
	BlackoutStart string       `json:"blackout_start,omitempty"`
	NextMeeting   *MeetingView `json:"next_meeting,omitempty"`
}

// HandleGetBlackout handles GET /blackout requests.
func (h *BlackoutHandler) HandleGetBlackout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	now := time.Now().UTC()
	resp := blackoutResponse{Blackout: h.deps.IsBlackout(now)}
	if next, ok := h.deps.NextMeeting(now); ok {
		resp.NextMeeting = &next
	}
	if start, ok := h.deps.BlackoutStart(now); ok {
		resp.BlackoutStart = start.Format("2006-01-02")
	}
	writeJSON(w, http.StatusOK, resp)
}

// HistoryHandler handles per-participant history requests.
type HistoryHandler struct {
	deps Dependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps Dependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleGetHistory handles GET /history/{name} requests.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/history/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	entries, err := h.deps.History(r.Context(), name)
	if err != nil {
		if isNoHistory(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// RefreshDependencies defines the interface for triggering refreshes.
type RefreshDependencies interface {
	RefreshAll(ctx context.Context) (string, int)
}

// RefreshHandler handles refresh trigger requests.
type RefreshHandler struct {
	deps RefreshDependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps RefreshDependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

type refreshResponse struct {
	RunID string `json:"run_id"`
	Jobs  int    `json:"jobs"`
}

// HandlePostRefresh handles POST /refresh requests. The cycle runs
// asynchronously; the response only acknowledges the enqueue.
func (h *RefreshHandler) HandlePostRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	runID, jobs := h.deps.RefreshAll(r.Context())
	writeJSON(w, http.StatusAccepted, refreshResponse{RunID: runID, Jobs: jobs})
}
