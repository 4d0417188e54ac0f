// Package signal computes the vote-weighted committee policy signal, the
// implied rate action, meeting-to-meeting drift, and the signal-vs-decision
// backtest.
package signal

import (
	"context"
	"math"
	"sort"

	"github.com/quantfold/fedgauge/internal/adapters/repository"
	"github.com/quantfold/fedgauge/internal/calendar"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/roster"
	"github.com/quantfold/fedgauge/pkg/metrics"
)

// DefaultRoleWeights reflect committee dynamics: the Chair has outsized
// influence through agenda setting and the press conference, the Vice
// Chair carries extra weight, voters decide, and non-voting alternates
// influence through discussion only.
func DefaultRoleWeights() map[string]float64 {
	return map[string]float64{
		roster.RoleChair:              3.0,
		roster.RoleViceChair:          1.5,
		roster.RoleViceChairSup:       1.25,
		roster.RoleGovernor:           1.0,
		roster.RolePresidentVoter:     1.0,
		roster.RolePresidentAlternate: 0.25,
	}
}

// Contribution is one participant's share of the weighted signal.
type Contribution struct {
	Name                 string  `json:"name"`
	Score                float64 `json:"score"`
	Weight               float64 `json:"weight"`
	WeightedContribution float64 `json:"weighted_contribution"`
	Voter                bool    `json:"voter"`
	Role                 string  `json:"role"`
}

// Weighted is the committee-level signal for one dimension.
type Weighted struct {
	WeightedScore float64        `json:"weighted_score"`
	SimpleAverage float64        `json:"simple_average"`
	VoterAverage  float64        `json:"voter_average"`
	Contributions []Contribution `json:"participant_contributions"`
	TotalWeight   float64        `json:"total_weight"`
}

// Engine computes signals over a roster, a stance store, and the meeting
// calendar.
type Engine struct {
	roster      *roster.Roster
	store       repository.Store
	calendar    *calendar.Calendar
	roleWeights map[string]float64
	actionBands []ActionBand

	driftHawkish float64
	driftDovish  float64
}

// New builds an engine. Role weights and drift thresholds default to the
// standard table unless overridden by options.
func New(r *roster.Roster, store repository.Store, cal *calendar.Calendar, opts ...Option) *Engine {
	e := &Engine{
		roster:       r,
		store:        store,
		calendar:     cal,
		roleWeights:  DefaultRoleWeights(),
		actionBands:  DefaultActionBands(),
		driftHawkish: 0.3,
		driftDovish:  -0.3,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// weight returns the influence weight for a participant. Roles not in
// the table weigh 1.0.
func (e *Engine) weight(p roster.Participant) float64 {
	if w, ok := e.roleWeights[p.RoleKey()]; ok {
		return w
	}
	return 1.0
}

// latestScore finds the participant's most recent score for a dimension,
// falling back to the static baseline lean when no history exists.
func (e *Engine) latestScore(ctx context.Context, p roster.Participant, dim model.Dimension) float64 {
	entry, err := e.store.Latest(ctx, p.Name)
	if err != nil {
		return p.BaselineFor(dim == model.DimensionBalanceSheet)
	}
	return entry.DimensionScore(dim)
}

// scoreAsOf is latestScore bounded by a date, used for drift and the
// backtest reconstruction.
func (e *Engine) scoreAsOf(ctx context.Context, p roster.Participant, dim model.Dimension, date string) float64 {
	entry, err := e.store.LatestAsOf(ctx, p.Name, date)
	if err != nil {
		return p.BaselineFor(dim == model.DimensionBalanceSheet)
	}
	return entry.DimensionScore(dim)
}

// Compute returns the vote-weighted committee signal for a dimension.
// Contributions are sorted by weighted contribution, most hawkish first.
func (e *Engine) Compute(ctx context.Context, dim model.Dimension) Weighted {
	metrics.RecordSignalComputation(string(dim))

	var (
		contributions []Contribution
		weightedSum   float64
		totalWeight   float64
		simpleSum     float64
		voterSum      float64
		voterCount    int
	)

	participants := e.roster.All()
	for _, p := range participants {
		score := e.latestScore(ctx, p, dim)
		w := e.weight(p)

		weightedSum += score * w
		totalWeight += w
		simpleSum += score
		if p.Voter {
			voterSum += score
			voterCount++
		}

		contributions = append(contributions, Contribution{
			Name:                 p.Name,
			Score:                score,
			Weight:               w,
			WeightedContribution: score * w,
			Voter:                p.Voter,
			Role:                 p.Title,
		})
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].WeightedContribution > contributions[j].WeightedContribution
	})

	out := Weighted{
		Contributions: contributions,
		TotalWeight:   totalWeight,
	}
	if totalWeight > 0 {
		out.WeightedScore = round3(weightedSum / totalWeight)
	}
	if len(participants) > 0 {
		out.SimpleAverage = round3(simpleSum / float64(len(participants)))
	}
	if voterCount > 0 {
		out.VoterAverage = round3(voterSum / float64(voterCount))
	}

	metrics.UpdateWeightedScore(string(dim), out.WeightedScore)
	return out
}

// computeAsOf reconstructs the weighted score from stances available on
// or before date.
func (e *Engine) computeAsOf(ctx context.Context, dim model.Dimension, date string) float64 {
	var weightedSum, totalWeight float64
	for _, p := range e.roster.All() {
		w := e.weight(p)
		weightedSum += e.scoreAsOf(ctx, p, dim, date) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
