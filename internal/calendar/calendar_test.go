package calendar

import (
	"testing"
	"time"
)

func TestNextAndPrevious(t *testing.T) {
	c := Default()
	ref := day(2026, time.February, 10)

	next, ok := c.Next(ref)
	if !ok {
		t.Fatal("expected an upcoming meeting")
	}
	if !next.EndDate.Equal(day(2026, time.March, 18)) {
		t.Errorf("next decision date = %s, want 2026-03-18", next.EndDate.Format("2006-01-02"))
	}

	prev, ok := c.Previous(ref)
	if !ok {
		t.Fatal("expected a completed meeting")
	}
	if !prev.EndDate.Equal(day(2026, time.January, 28)) {
		t.Errorf("previous decision date = %s, want 2026-01-28", prev.EndDate.Format("2006-01-02"))
	}
	if prev.Decision != "hold" {
		t.Errorf("previous decision = %q, want hold", prev.Decision)
	}
}

func TestNextOnDecisionDay(t *testing.T) {
	c := Default()
	// The decision day itself still counts as upcoming.
	next, ok := c.Next(day(2026, time.March, 18))
	if !ok || !next.EndDate.Equal(day(2026, time.March, 18)) {
		t.Errorf("next on decision day = %v %v, want the same meeting", next.EndDate, ok)
	}
}

func TestDaysUntilNext(t *testing.T) {
	c := Default()
	days, ok := c.DaysUntilNext(day(2026, time.March, 10))
	if !ok || days != 8 {
		t.Errorf("days until next = %d %v, want 8", days, ok)
	}

	if _, ok := c.DaysUntilNext(day(2030, time.January, 1)); ok {
		t.Error("expected exhausted schedule past the last meeting")
	}
}

func TestBlackoutWindow(t *testing.T) {
	c := Default()

	// March 2026 meeting starts Tuesday the 17th; the second Saturday
	// before is March 7th.
	m, _ := c.Next(day(2026, time.March, 1))
	start := BlackoutStart(m)
	if !start.Equal(day(2026, time.March, 7)) {
		t.Fatalf("blackout start = %s, want 2026-03-07", start.Format("2006-01-02"))
	}

	cases := []struct {
		ref  time.Time
		want bool
	}{
		{day(2026, time.March, 6), false},
		{day(2026, time.March, 7), true},
		{day(2026, time.March, 18), true},
		{day(2026, time.March, 19), false}, // next window not yet open
	}
	for _, tc := range cases {
		if got := c.IsBlackout(tc.ref); got != tc.want {
			t.Errorf("IsBlackout(%s) = %v, want %v", tc.ref.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestBlackoutAlwaysBeforeMeeting(t *testing.T) {
	for _, m := range defaultMeetings() {
		start := BlackoutStart(m)
		if start.Weekday() != time.Saturday {
			t.Errorf("blackout for %s starts on %s, want Saturday",
				m.StartDate.Format("2006-01-02"), start.Weekday())
		}
		gap := m.StartDate.Sub(start).Hours() / 24
		if gap < 8 || gap > 14 {
			t.Errorf("blackout for %s starts %v days before the meeting", m.StartDate.Format("2006-01-02"), gap)
		}
	}
}

func TestPastMeetings(t *testing.T) {
	c := Default()
	past := c.PastMeetings(6, day(2026, time.February, 10))
	if len(past) != 6 {
		t.Fatalf("past meetings = %d, want 6", len(past))
	}
	// Oldest first, ending with the most recent decision.
	if !past[0].EndDate.Equal(day(2025, time.June, 18)) {
		t.Errorf("oldest = %s, want 2025-06-18", past[0].EndDate.Format("2006-01-02"))
	}
	if !past[5].EndDate.Equal(day(2026, time.January, 28)) {
		t.Errorf("newest = %s, want 2026-01-28", past[5].EndDate.Format("2006-01-02"))
	}
	for _, m := range past {
		if !m.Decided() {
			t.Errorf("undecided meeting %s in past set", m.EndDate.Format("2006-01-02"))
		}
	}
}

func TestCurrentRate(t *testing.T) {
	c := Default()
	lower, upper, ok := c.CurrentRate(day(2026, time.February, 10))
	if !ok || lower != 4.25 || upper != 4.50 {
		t.Errorf("current rate = %v-%v %v, want 4.25-4.50", lower, upper, ok)
	}

	if _, _, ok := c.CurrentRate(day(2025, time.January, 1)); ok {
		t.Error("expected no known rate before the first decision")
	}
}

func TestAddMeetingsReplacesSameDecisionDate(t *testing.T) {
	c := New(defaultMeetings())
	c.AddMeetings(Meeting{
		StartDate: day(2026, time.March, 17), EndDate: day(2026, time.March, 18),
		Decision: "-25", RateLower: rate(4.00), RateUpper: rate(4.25),
	})

	if got := len(c.Meetings()); got != 16 {
		t.Fatalf("meeting count = %d, want 16 after replacement", got)
	}
	prev, ok := c.Previous(day(2026, time.March, 19))
	if !ok || prev.Decision != "-25" {
		t.Errorf("patched decision = %q %v, want -25", prev.Decision, ok)
	}
}
