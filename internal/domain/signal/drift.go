package signal

import (
	"context"
	"time"

	"github.com/quantfold/fedgauge/internal/domain/model"
)

// Drift direction readings.
const (
	DriftHawkish = "hawkish shift"
	DriftDovish  = "dovish shift"
	DriftStable  = "stable"
)

// Drift describes how the committee signal moved since the last meeting.
type Drift struct {
	PreviousMeetingDate string  `json:"previous_meeting_date"`
	PreviousDecision    string  `json:"previous_decision,omitempty"`
	PreviousSignal      float64 `json:"previous_signal"`
	CurrentSignal       float64 `json:"current_signal"`
	Drift               float64 `json:"drift"`
	DriftDirection      string  `json:"drift_direction"`
}

// MeetingDrift compares the current weighted signal against the signal
// reconstructed as of the previous meeting's decision date. Returns false
// when no meeting has completed yet.
func (e *Engine) MeetingDrift(ctx context.Context, dim model.Dimension, ref time.Time) (Drift, bool) {
	prev, ok := e.calendar.Previous(ref)
	if !ok {
		return Drift{}, false
	}

	prevDate := prev.EndDate.Format("2006-01-02")
	prevSignal := e.computeAsOf(ctx, dim, prevDate)
	current := e.Compute(ctx, dim).WeightedScore
	drift := current - prevSignal

	direction := DriftStable
	switch {
	case drift > e.driftHawkish:
		direction = DriftHawkish
	case drift < e.driftDovish:
		direction = DriftDovish
	}

	return Drift{
		PreviousMeetingDate: prevDate,
		PreviousDecision:    prev.Decision,
		PreviousSignal:      round3(prevSignal),
		CurrentSignal:       round3(current),
		Drift:               round3(drift),
		DriftDirection:      direction,
	}, true
}

// BacktestResult compares one past meeting's reconstructed signal with
// the decision the committee actually took.
type BacktestResult struct {
	MeetingDate      string  `json:"meeting_date"`
	Decision         string  `json:"decision"`
	RateRange        string  `json:"rate_range"`
	SignalScore      float64 `json:"signal_score"`
	ImpliedAction    string  `json:"implied_action"`
	ImpliedDirection string  `json:"implied_direction"`
	Match            bool    `json:"match"`
	Note             string  `json:"note,omitempty"`
}

// Backtest is the per-meeting comparison plus the aggregate hit rate.
type Backtest struct {
	Results []BacktestResult `json:"results"`
	HitRate float64          `json:"hit_rate"`
}

// DefaultBacktestMeetings is the meeting window used when the caller
// does not pick one.
const DefaultBacktestMeetings = 6

// SignalVsDecisions reconstructs the weighted signal as of each of the
// last n decided meetings and checks whether its implied direction
// matched the actual decision.
func (e *Engine) SignalVsDecisions(ctx context.Context, dim model.Dimension, n int, ref time.Time) Backtest {
	if n <= 0 {
		n = DefaultBacktestMeetings
	}

	var out Backtest
	hits := 0
	for _, meeting := range e.calendar.PastMeetings(n, ref) {
		date := meeting.EndDate.Format("2006-01-02")
		score := e.computeAsOf(ctx, dim, date)
		action := e.ImpliedAction(score, ref)

		decision := meeting.Decision
		if decision == "" {
			decision = "hold"
		}
		match := action.Direction == decisionDirection(decision)
		if match {
			hits++
		}

		rateRange := "N/A"
		if meeting.RateLower != nil && meeting.RateUpper != nil {
			rateRange = formatRateRange(*meeting.RateLower, *meeting.RateUpper)
		}

		out.Results = append(out.Results, BacktestResult{
			MeetingDate:      date,
			Decision:         meeting.Decision,
			RateRange:        rateRange,
			SignalScore:      round3(score),
			ImpliedAction:    action.Action,
			ImpliedDirection: action.Direction,
			Match:            match,
			Note:             meeting.Note,
		})
	}

	if len(out.Results) > 0 {
		out.HitRate = round3(float64(hits) / float64(len(out.Results)))
	}
	return out
}
