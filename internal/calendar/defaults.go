package calendar

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rate(v float64) *float64 { return &v }

// defaultMeetings is the published FOMC schedule: eight meetings per
// year, with decisions filled in through January 2026.
func defaultMeetings() []Meeting {
	return []Meeting{
		{
			StartDate: day(2025, time.January, 28), EndDate: day(2025, time.January, 29),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "Held steady; noted inflation progress slowing",
		},
		{
			StartDate: day(2025, time.March, 18), EndDate: day(2025, time.March, 19),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "Maintained rates; watching tariff uncertainty",
		},
		{
			StartDate: day(2025, time.May, 6), EndDate: day(2025, time.May, 7),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "Held rates; labor market remains solid",
		},
		{
			StartDate: day(2025, time.June, 17), EndDate: day(2025, time.June, 18),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "No change; data-dependent approach emphasized",
		},
		{
			StartDate: day(2025, time.July, 29), EndDate: day(2025, time.July, 30),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "Held steady; inflation still above 2% target",
		},
		{
			StartDate: day(2025, time.September, 16), EndDate: day(2025, time.September, 17),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "Maintained rates; watching incoming data",
		},
		{
			StartDate: day(2025, time.October, 28), EndDate: day(2025, time.October, 29),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "No change; risks roughly balanced",
		},
		{
			StartDate: day(2025, time.December, 16), EndDate: day(2025, time.December, 17),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "Held rates; SEP unchanged from September",
		},
		{
			StartDate: day(2026, time.January, 27), EndDate: day(2026, time.January, 28),
			Decision: "hold", RateLower: rate(4.25), RateUpper: rate(4.50),
			Note: "Maintained rates; watching policy uncertainty",
		},
		{StartDate: day(2026, time.March, 17), EndDate: day(2026, time.March, 18)},
		{StartDate: day(2026, time.May, 5), EndDate: day(2026, time.May, 6)},
		{StartDate: day(2026, time.June, 16), EndDate: day(2026, time.June, 17)},
		{StartDate: day(2026, time.July, 28), EndDate: day(2026, time.July, 29)},
		{StartDate: day(2026, time.September, 15), EndDate: day(2026, time.September, 16)},
		{StartDate: day(2026, time.October, 27), EndDate: day(2026, time.October, 28)},
		{StartDate: day(2026, time.December, 15), EndDate: day(2026, time.December, 16)},
	}
}
