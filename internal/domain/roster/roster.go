// Package roster holds the FOMC participant roster and metadata.
package roster

import "strings"

// Role keys used for influence-weight lookup. Unmatched roles weigh 1.0.
const (
	RoleChair              = "Chair"
	RoleViceChair          = "Vice Chair"
	RoleViceChairSup       = "Vice Chair for Supervision"
	RoleGovernor           = "Governor"
	RolePresidentVoter     = "President_voter"
	RolePresidentAlternate = "President_alt"
)

// Participant is one committee member. Defined statically, extensible at
// process start, immutable thereafter.
type Participant struct {
	Name        string
	Title       string
	Institution string
	Voter       bool
	Governor    bool
	// Baseline leans from the historical record, used when no stance
	// history exists for the participant. Range -5 (dovish) to +5 (hawkish).
	BaselineLean             float64
	BaselineBalanceSheetLean float64
}

// RoleKey maps the participant onto the influence-weight table.
func (p Participant) RoleKey() string {
	switch p.Title {
	case RoleChair:
		return RoleChair
	case RoleViceChair:
		return RoleViceChair
	case RoleViceChairSup:
		return RoleViceChairSup
	}
	if p.Governor {
		return RoleGovernor
	}
	if p.Voter {
		return RolePresidentVoter
	}
	return RolePresidentAlternate
}

// BaselineFor returns the participant's static lean for a dimension key.
// The overall and policy dimensions share the rate-policy lean.
func (p Participant) BaselineFor(balanceSheet bool) float64 {
	if balanceSheet {
		return p.BaselineBalanceSheetLean
	}
	return p.BaselineLean
}

// Roster is an ordered, append-only collection of participants.
type Roster struct {
	participants []Participant
}

// Default returns the full 19-member FOMC roster for 2026.
func Default() *Roster {
	r := &Roster{}
	r.participants = append(r.participants, defaultParticipants...)
	return r
}

// New returns an empty roster, for tests and synthetic committees.
func New(participants ...Participant) *Roster {
	return &Roster{participants: participants}
}

// Add appends participants at process start. Names already present are
// skipped so configuration overlays stay idempotent.
func (r *Roster) Add(participants ...Participant) {
	existing := make(map[string]struct{}, len(r.participants))
	for _, p := range r.participants {
		existing[p.Name] = struct{}{}
	}
	for _, p := range participants {
		if _, ok := existing[p.Name]; ok {
			continue
		}
		r.participants = append(r.participants, p)
		existing[p.Name] = struct{}{}
	}
}

// All returns the participants in roster order.
func (r *Roster) All() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// Len returns the number of participants.
func (r *Roster) Len() int { return len(r.participants) }

// Find locates a participant by partial, case-insensitive name match.
func (r *Roster) Find(name string) (Participant, bool) {
	needle := strings.ToLower(name)
	for _, p := range r.participants {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, true
		}
	}
	return Participant{}, false
}

// Voters returns participants with a vote this cycle.
func (r *Roster) Voters() []Participant {
	var out []Participant
	for _, p := range r.participants {
		if p.Voter {
			out = append(out, p)
		}
	}
	return out
}

// Alternates returns non-voting participants.
func (r *Roster) Alternates() []Participant {
	var out []Participant
	for _, p := range r.participants {
		if !p.Voter {
			out = append(out, p)
		}
	}
	return out
}
