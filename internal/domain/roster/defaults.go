package roster

// Full 19-member FOMC roster for 2026. Board governors all vote; the New
// York Fed president always votes; four regional presidents rotate in.
var defaultParticipants = []Participant{
	// Board of Governors
	{
		Name:                     "Jerome H. Powell",
		Title:                    "Chair",
		Institution:              "Board of Governors",
		Voter:                    true,
		Governor:                 true,
		BaselineLean:             0.05,
		BaselineBalanceSheetLean: 0.10,
	},
	{
		Name:                     "Philip N. Jefferson",
		Title:                    "Vice Chair",
		Institution:              "Board of Governors",
		Voter:                    true,
		Governor:                 true,
		BaselineLean:             -0.10,
		BaselineBalanceSheetLean: 0.00,
	},
	{
		Name:                     "Michael S. Barr",
		Title:                    "Vice Chair for Supervision",
		Institution:              "Board of Governors",
		Voter:                    true,
		Governor:                 true,
		BaselineLean:             -0.20,
		BaselineBalanceSheetLean: 0.00,
	},
	{
		Name:                     "Michelle W. Bowman",
		Title:                    "Governor",
		Institution:              "Board of Governors",
		Voter:                    true,
		Governor:                 true,
		BaselineLean:             0.55,
		BaselineBalanceSheetLean: 0.25,
	},
	{
		Name:                     "Christopher J. Waller",
		Title:                    "Governor",
		Institution:              "Board of Governors",
		Voter:                    true,
		Governor:                 true,
		BaselineLean:             0.45,
		BaselineBalanceSheetLean: 0.25,
	},
	{
		Name:                     "Lisa D. Cook",
		Title:                    "Governor",
		Institution:              "Board of Governors",
		Voter:                    true,
		Governor:                 true,
		BaselineLean:             -0.25,
		BaselineBalanceSheetLean: -0.10,
	},
	{
		Name:                     "Adriana D. Kugler",
		Title:                    "Governor",
		Institution:              "Board of Governors",
		Voter:                    true,
		Governor:                 true,
		BaselineLean:             -0.15,
		BaselineBalanceSheetLean: 0.00,
	},
	// Federal Reserve Bank presidents; NY always votes
	{
		Name:                     "John C. Williams",
		Title:                    "President",
		Institution:              "FRB New York",
		Voter:                    true,
		BaselineLean:             -0.05,
		BaselineBalanceSheetLean: 0.00,
	},
	// 2026 rotating voters
	{
		Name:                     "Patrick T. Harker",
		Title:                    "President",
		Institution:              "FRB Philadelphia",
		Voter:                    true,
		BaselineLean:             0.10,
		BaselineBalanceSheetLean: 0.00,
	},
	{
		Name:                     "Thomas I. Barkin",
		Title:                    "President",
		Institution:              "FRB Richmond",
		Voter:                    true,
		BaselineLean:             0.15,
		BaselineBalanceSheetLean: 0.00,
	},
	{
		Name:                     "Raphael W. Bostic",
		Title:                    "President",
		Institution:              "FRB Atlanta",
		Voter:                    true,
		BaselineLean:             -0.10,
		BaselineBalanceSheetLean: 0.00,
	},
	{
		Name:                     "Mary C. Daly",
		Title:                    "President",
		Institution:              "FRB San Francisco",
		Voter:                    true,
		BaselineLean:             -0.15,
		BaselineBalanceSheetLean: -0.10,
	},
	// 2026 non-voting alternates
	{
		Name:                     "Susan M. Collins",
		Title:                    "President",
		Institution:              "FRB Boston",
		BaselineLean:             0.05,
		BaselineBalanceSheetLean: 0.00,
	},
	{
		Name:                     "Beth M. Hammack",
		Title:                    "President",
		Institution:              "FRB Cleveland",
		BaselineLean:             0.20,
		BaselineBalanceSheetLean: 0.10,
	},
	{
		Name:                     "Austan D. Goolsbee",
		Title:                    "President",
		Institution:              "FRB Chicago",
		BaselineLean:             -0.35,
		BaselineBalanceSheetLean: -0.10,
	},
	{
		Name:                     "Alberto G. Musalem",
		Title:                    "President",
		Institution:              "FRB St. Louis",
		BaselineLean:             0.25,
		BaselineBalanceSheetLean: 0.00,
	},
	{
		Name:                     "Jeffrey R. Schmid",
		Title:                    "President",
		Institution:              "FRB Kansas City",
		BaselineLean:             0.35,
		BaselineBalanceSheetLean: 0.10,
	},
	{
		Name:                     "Lorie K. Logan",
		Title:                    "President",
		Institution:              "FRB Dallas",
		BaselineLean:             0.40,
		BaselineBalanceSheetLean: 0.25,
	},
	{
		Name:                     "Neel Kashkari",
		Title:                    "President",
		Institution:              "FRB Minneapolis",
		BaselineLean:             -0.30,
		BaselineBalanceSheetLean: -0.10,
	},
}
