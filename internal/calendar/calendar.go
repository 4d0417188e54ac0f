// Package calendar tracks the FOMC meeting schedule, rate decisions, and
// the pre-meeting communications blackout.
package calendar

import (
	"sort"
	"time"
)

// Meeting is a single two-day FOMC meeting. EndDate is the decision
// announcement day. Decision is empty for future meetings; otherwise one
// of "hold", "+25", "+50", "-25", "-50".
type Meeting struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Decision  string    `json:"decision,omitempty"`
	RateLower *float64  `json:"rate_lower,omitempty"`
	RateUpper *float64  `json:"rate_upper,omitempty"`
	VoteSplit string    `json:"vote_split,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// Decided reports whether the meeting has an announced decision.
func (m Meeting) Decided() bool { return m.Decision != "" }

// Calendar holds meetings ordered by decision date.
type Calendar struct {
	meetings []Meeting
}

// New returns a calendar over the given meetings, sorted by decision date.
func New(meetings []Meeting) *Calendar {
	c := &Calendar{meetings: append([]Meeting(nil), meetings...)}
	c.sort()
	return c
}

// Default returns a calendar seeded with the published FOMC schedule.
func Default() *Calendar {
	return New(defaultMeetings())
}

func (c *Calendar) sort() {
	sort.Slice(c.meetings, func(i, j int) bool {
		return c.meetings[i].EndDate.Before(c.meetings[j].EndDate)
	})
}

// AddMeetings merges additional meetings into the calendar. A meeting
// with the same decision date as an existing one replaces it, so callers
// can patch in decisions as they are announced.
func (c *Calendar) AddMeetings(meetings ...Meeting) {
	for _, m := range meetings {
		replaced := false
		for i := range c.meetings {
			if sameDay(c.meetings[i].EndDate, m.EndDate) {
				c.meetings[i] = m
				replaced = true
				break
			}
		}
		if !replaced {
			c.meetings = append(c.meetings, m)
		}
	}
	c.sort()
}

// Meetings returns a copy of all meetings in decision-date order.
func (c *Calendar) Meetings() []Meeting {
	return append([]Meeting(nil), c.meetings...)
}

// Next returns the next upcoming meeting, the first whose decision date
// has not passed as of ref.
func (c *Calendar) Next(ref time.Time) (Meeting, bool) {
	ref = dateOnly(ref)
	for _, m := range c.meetings {
		if !m.EndDate.Before(ref) {
			return m, true
		}
	}
	return Meeting{}, false
}

// Previous returns the most recent completed meeting as of ref.
func (c *Calendar) Previous(ref time.Time) (Meeting, bool) {
	ref = dateOnly(ref)
	var prev Meeting
	found := false
	for _, m := range c.meetings {
		if m.EndDate.Before(ref) {
			prev = m
			found = true
		} else {
			break
		}
	}
	return prev, found
}

// DaysUntilNext returns the number of days until the next decision date,
// or false when the schedule is exhausted.
func (c *Calendar) DaysUntilNext(ref time.Time) (int, bool) {
	next, ok := c.Next(ref)
	if !ok {
		return 0, false
	}
	days := int(next.EndDate.Sub(dateOnly(ref)).Hours() / 24)
	return days, true
}

// BlackoutStart returns the first day of the communications blackout for
// a meeting: the second Saturday before the meeting start date.
func BlackoutStart(m Meeting) time.Time {
	daysToSaturday := (int(m.StartDate.Weekday()) - int(time.Saturday)) % 7
	if daysToSaturday < 0 {
		daysToSaturday += 7
	}
	if daysToSaturday == 0 {
		daysToSaturday = 7
	}
	firstSaturdayBefore := m.StartDate.AddDate(0, 0, -daysToSaturday)
	return firstSaturdayBefore.AddDate(0, 0, -7)
}

// IsBlackout reports whether ref falls inside the blackout window for the
// next meeting, from the blackout start through the decision date.
func (c *Calendar) IsBlackout(ref time.Time) bool {
	next, ok := c.Next(ref)
	if !ok {
		return false
	}
	ref = dateOnly(ref)
	start := BlackoutStart(next)
	return !ref.Before(start) && !ref.After(next.EndDate)
}

// MeetingsInRange returns meetings whose decision dates fall within
// [start, end] inclusive.
func (c *Calendar) MeetingsInRange(start, end time.Time) []Meeting {
	start, end = dateOnly(start), dateOnly(end)
	var out []Meeting
	for _, m := range c.meetings {
		if !m.EndDate.Before(start) && !m.EndDate.After(end) {
			out = append(out, m)
		}
	}
	return out
}

// PastMeetings returns the last n completed meetings with decisions,
// oldest first.
func (c *Calendar) PastMeetings(n int, ref time.Time) []Meeting {
	ref = dateOnly(ref)
	var past []Meeting
	for _, m := range c.meetings {
		if m.EndDate.Before(ref) && m.Decided() {
			past = append(past, m)
		}
	}
	if n > 0 && len(past) > n {
		past = past[len(past)-n:]
	}
	return past
}

// CurrentRate returns the fed funds target range set by the last
// completed meeting, or false when none is known.
func (c *Calendar) CurrentRate(ref time.Time) (lower, upper float64, ok bool) {
	prev, found := c.Previous(ref)
	if !found || prev.RateLower == nil || prev.RateUpper == nil {
		return 0, 0, false
	}
	return *prev.RateLower, *prev.RateUpper, true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
