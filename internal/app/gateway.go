package app

import (
	"context"
	"time"

	"github.com/quantfold/fedgauge/internal/adapters/http/api"
	"github.com/quantfold/fedgauge/internal/adapters/repository"
	"github.com/quantfold/fedgauge/internal/calendar"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/roster"
	"github.com/quantfold/fedgauge/internal/domain/signal"
)

// Gateway bundles the read surface the HTTP layer needs: signal
// computations, stance history, the roster, the calendar, and the
// refresh trigger. It implements api.Dependencies.
type Gateway struct {
	service  *Service
	engine   *signal.Engine
	store    repository.Store
	roster   *roster.Roster
	calendar *calendar.Calendar

	hawkishThreshold float64
	dovishThreshold  float64
}

// GatewayOption applies a configuration option to the Gateway.
type GatewayOption func(*Gateway)

// WithGatewayThresholds sets the label cutoffs used for baseline
// fallback views.
func WithGatewayThresholds(hawkish, dovish float64) GatewayOption {
	return func(g *Gateway) {
		g.hawkishThreshold = hawkish
		g.dovishThreshold = dovish
	}
}

// NewGateway builds the API gateway over the service and its collaborators.
func NewGateway(svc *Service, engine *signal.Engine, store repository.Store, r *roster.Roster, cal *calendar.Calendar, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		service:          svc,
		engine:           engine,
		store:            store,
		roster:           r,
		calendar:         cal,
		hawkishThreshold: 1.5,
		dovishThreshold:  -1.5,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ComputeSignal implements api.Dependencies.
func (g *Gateway) ComputeSignal(ctx context.Context, dim model.Dimension) signal.Weighted {
	return g.engine.Compute(ctx, dim)
}

// CurrentAction implements api.Dependencies.
func (g *Gateway) CurrentAction(ctx context.Context, dim model.Dimension, ref time.Time) (signal.Weighted, signal.Action) {
	return g.engine.CurrentAction(ctx, dim, ref)
}

// MeetingDrift implements api.Dependencies.
func (g *Gateway) MeetingDrift(ctx context.Context, dim model.Dimension, ref time.Time) (signal.Drift, bool) {
	return g.engine.MeetingDrift(ctx, dim, ref)
}

// SignalVsDecisions implements api.Dependencies.
func (g *Gateway) SignalVsDecisions(ctx context.Context, dim model.Dimension, n int, ref time.Time) signal.Backtest {
	return g.engine.SignalVsDecisions(ctx, dim, n, ref)
}

// History implements api.Dependencies.
func (g *Gateway) History(ctx context.Context, name string) ([]model.StanceEntry, error) {
	return g.store.History(ctx, name)
}

// Latest implements api.Dependencies.
func (g *Gateway) Latest(ctx context.Context, name string) (model.StanceEntry, error) {
	return g.store.Latest(ctx, name)
}

// Participants implements api.Dependencies. Latest stances fall back to
// the baseline lean when a participant has no recorded history.
func (g *Gateway) Participants(ctx context.Context) []api.ParticipantView {
	var out []api.ParticipantView
	for _, p := range g.roster.All() {
		view := api.ParticipantView{
			Name:        p.Name,
			Title:       p.Title,
			Institution: p.Institution,
			Voter:       p.Voter,
		}
		if entry, err := g.store.Latest(ctx, p.Name); err == nil {
			view.LatestScore = entry.Score
			view.LatestLabel = string(entry.Label)
			view.LatestDate = entry.Date
			view.LatestSource = entry.Source
		} else {
			view.LatestScore = p.BaselineFor(false)
			view.LatestLabel = string(model.ScoreLabel(view.LatestScore, g.hawkishThreshold, g.dovishThreshold))
		}
		out = append(out, view)
	}
	return out
}

// NextMeeting implements api.Dependencies.
func (g *Gateway) NextMeeting(ref time.Time) (api.MeetingView, bool) {
	next, ok := g.calendar.Next(ref)
	if !ok {
		return api.MeetingView{}, false
	}
	days, _ := g.calendar.DaysUntilNext(ref)
	return api.MeetingView{
		StartDate: next.StartDate.Format("2006-01-02"),
		EndDate:   next.EndDate.Format("2006-01-02"),
		Decision:  next.Decision,
		DaysUntil: days,
	}, true
}

// IsBlackout implements api.Dependencies.
func (g *Gateway) IsBlackout(ref time.Time) bool {
	return g.calendar.IsBlackout(ref)
}

// BlackoutStart implements api.Dependencies.
func (g *Gateway) BlackoutStart(ref time.Time) (time.Time, bool) {
	next, ok := g.calendar.Next(ref)
	if !ok {
		return time.Time{}, false
	}
	return calendar.BlackoutStart(next), true
}

// RefreshAll implements api.Dependencies.
func (g *Gateway) RefreshAll(ctx context.Context) (string, int) {
	return g.service.RefreshAll(ctx)
}
