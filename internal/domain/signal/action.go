package signal

import (
	"context"
	"strings"
	"time"

	"github.com/quantfold/fedgauge/internal/domain/model"
)

// Policy directions.
const (
	DirectionEasing     = "easing"
	DirectionNeutral    = "neutral"
	DirectionTightening = "tightening"
)

// ActionBand maps a half-open score interval [Min, Max) onto an expected
// policy action.
type ActionBand struct {
	Min         float64 `json:"min" koanf:"min"`
	Max         float64 `json:"max" koanf:"max"`
	Action      string  `json:"action" koanf:"action"`
	Direction   string  `json:"direction" koanf:"direction"`
	MagnitudeBP int     `json:"magnitude_bp" koanf:"magnitude_bp"`
}

// DefaultActionBands partition [-5, 5). The committee is known for
// incrementalism: even a fairly hawkish committee moves in 25bp steps
// unless conditions are extreme.
func DefaultActionBands() []ActionBand {
	return []ActionBand{
		{Min: -5.0, Max: -3.5, Action: "Cut 50bp", Direction: DirectionEasing, MagnitudeBP: 50},
		{Min: -3.5, Max: -2.0, Action: "Cut 25bp", Direction: DirectionEasing, MagnitudeBP: 25},
		{Min: -2.0, Max: -0.5, Action: "Lean Cut", Direction: DirectionEasing, MagnitudeBP: 25},
		{Min: -0.5, Max: 0.5, Action: "Hold", Direction: DirectionNeutral, MagnitudeBP: 0},
		{Min: 0.5, Max: 2.0, Action: "Lean Hike", Direction: DirectionTightening, MagnitudeBP: 25},
		{Min: 2.0, Max: 3.5, Action: "Hike 25bp", Direction: DirectionTightening, MagnitudeBP: 25},
		{Min: 3.5, Max: 5.0, Action: "Hike 50bp", Direction: DirectionTightening, MagnitudeBP: 50},
	}
}

// RateRange is a fed funds target range in percent.
type RateRange struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Action is the implied policy action for a weighted score.
type Action struct {
	Action        string     `json:"action"`
	Direction     string     `json:"direction"`
	MagnitudeBP   int        `json:"magnitude_bp"`
	Confidence    string     `json:"confidence"`
	ProjectedRate *RateRange `json:"projected_rate,omitempty"`
}

// ImpliedAction maps a weighted stance score onto an expected policy
// action and, when the current target range is known, the projected range
// after the move.
func (e *Engine) ImpliedAction(weightedScore float64, ref time.Time) Action {
	out := Action{Action: "Hold", Direction: DirectionNeutral}

	matched := false
	for _, b := range e.actionBands {
		if weightedScore >= b.Min && weightedScore < b.Max {
			out.Action = b.Action
			out.Direction = b.Direction
			out.MagnitudeBP = b.MagnitudeBP
			matched = true
			break
		}
	}
	if !matched && weightedScore >= 3.5 {
		out.Action = "Hike 50bp"
		out.Direction = DirectionTightening
		out.MagnitudeBP = 50
	}

	out.Confidence = actionConfidence(weightedScore)

	if lower, upper, ok := e.calendar.CurrentRate(ref); ok && out.MagnitudeBP > 0 {
		delta := float64(out.MagnitudeBP) / 100.0
		if out.Direction == DirectionEasing {
			delta = -delta
		}
		out.ProjectedRate = &RateRange{
			Lower: round2(lower + delta),
			Upper: round2(upper + delta),
		}
	}
	return out
}

// actionConfidence grades the reading by distance from the band
// boundaries: clearly in hold territory or strongly directional reads
// high, the in-between reads moderate.
func actionConfidence(weightedScore float64) string {
	abs := weightedScore
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 0.5:
		return "high"
	case abs < 1.0:
		return "moderate"
	case abs < 2.0:
		return "moderate"
	default:
		return "high"
	}
}

// decisionDirection reads the policy direction off a decision string:
// a minus sign means easing, a plus sign tightening, anything else holds.
func decisionDirection(decision string) string {
	switch {
	case strings.Contains(decision, "-"):
		return DirectionEasing
	case strings.Contains(decision, "+"):
		return DirectionTightening
	default:
		return DirectionNeutral
	}
}

// CurrentAction computes the weighted signal for a dimension and maps it
// to the implied action in one step.
func (e *Engine) CurrentAction(ctx context.Context, dim model.Dimension, ref time.Time) (Weighted, Action) {
	weighted := e.Compute(ctx, dim)
	return weighted, e.ImpliedAction(weighted.WeightedScore, ref)
}
