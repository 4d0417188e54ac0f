// Package model contains domain models passed between layers.
package model

// Label is the qualitative reading of a stance score.
type Label string

// Stance labels.
const (
	LabelHawkish Label = "Hawkish"
	LabelDovish  Label = "Dovish"
	LabelNeutral Label = "Neutral"
)

// Dimension selects which axis of stance a score refers to.
type Dimension string

// Stance dimensions. Overall is the blended policy/balance-sheet score.
const (
	DimensionOverall      Dimension = "overall"
	DimensionPolicy       Dimension = "policy"
	DimensionBalanceSheet Dimension = "balance_sheet"
)

// Direction tags a matched phrase or evidence item.
type Direction string

// Phrase directions.
const (
	DirectionHawkish Direction = "hawkish"
	DirectionDovish  Direction = "dovish"
)

// Source tags recorded on stance entries.
const (
	SourceSeed           = "seed"
	SourceLive           = "live"
	SourceHistoricalLean = "historical_lean"
)

// ScoreLabel converts a score to a label given the two fixed cutoffs.
// Scores above hawkishThreshold read Hawkish, below dovishThreshold Dovish,
// everything between Neutral.
func ScoreLabel(score, hawkishThreshold, dovishThreshold float64) Label {
	if score > hawkishThreshold {
		return LabelHawkish
	}
	if score < dovishThreshold {
		return LabelDovish
	}
	return LabelNeutral
}

// Evidence is a quoted textual justification tied to a classification.
// Immutable once attached to a StanceEntry.
type Evidence struct {
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	SourceType string   `json:"source_type"`
	Keywords   []string `json:"keywords"`
	Directions []string `json:"directions"`
	Dimensions []string `json:"dimensions"`
	Quote      string   `json:"quote"`
	Score      float64  `json:"score"`
}

// StanceEntry is one dated stance observation for a participant.
// (participant, date) is the unique key; dates are ISO YYYY-MM-DD strings
// so that lexical order is chronological order.
type StanceEntry struct {
	Date              string     `json:"date"`
	Score             float64    `json:"score"`
	Label             Label      `json:"label"`
	Source            string     `json:"source"`
	PolicyScore       *float64   `json:"policy_score,omitempty"`
	PolicyLabel       Label      `json:"policy_label,omitempty"`
	BalanceSheetScore *float64   `json:"balance_sheet_score,omitempty"`
	BalanceSheetLabel Label      `json:"balance_sheet_label,omitempty"`
	Evidence          []Evidence `json:"evidence,omitempty"`
}

// DimensionScore returns the entry's score for the requested dimension,
// falling back to the overall score when a dual-dimension field is absent
// (legacy entries before the backfill pass).
func (e *StanceEntry) DimensionScore(d Dimension) float64 {
	switch d {
	case DimensionPolicy:
		if e.PolicyScore != nil {
			return *e.PolicyScore
		}
	case DimensionBalanceSheet:
		if e.BalanceSheetScore != nil {
			return *e.BalanceSheetScore
		}
	}
	return e.Score
}

// NewsItem is a raw text item returned by a source provider.
type NewsItem struct {
	Source string `json:"source"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	URL    string `json:"url"`
	Date   string `json:"date"`
}

// Float is a small helper for pointer fields on StanceEntry.
func Float(v float64) *float64 { return &v }
