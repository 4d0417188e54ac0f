package repository

import "github.com/quantfold/fedgauge/internal/domain/model"

func seedEntry(date string, score float64, label model.Label) model.StanceEntry {
	return model.StanceEntry{Date: date, Score: score, Label: label, Source: model.SourceSeed}
}

// SeedHistory returns the built-in stance history. Entries are
// single-dimension on purpose: the store's backfill pass derives the
// policy and balance-sheet fields on load, the same path legacy
// persisted files go through.
func SeedHistory() map[string][]model.StanceEntry {
	return map[string][]model.StanceEntry{
		"Kevin M. Warsh": {
			seedEntry("2025-09-15", 0.55, model.LabelHawkish),
			seedEntry("2025-10-15", 0.50, model.LabelHawkish),
			seedEntry("2025-11-15", 0.55, model.LabelHawkish),
			seedEntry("2025-12-15", 0.60, model.LabelHawkish),
			seedEntry("2026-01-15", 0.55, model.LabelHawkish),
		},
		"Jerome H. Powell": {
			seedEntry("2025-09-15", 0.10, model.LabelNeutral),
			seedEntry("2025-10-15", 0.05, model.LabelNeutral),
			seedEntry("2025-11-15", -0.05, model.LabelNeutral),
			seedEntry("2025-12-15", -0.10, model.LabelNeutral),
			seedEntry("2026-01-15", -0.05, model.LabelNeutral),
		},
		"Philip N. Jefferson": {
			seedEntry("2025-09-15", -0.15, model.LabelNeutral),
			seedEntry("2025-10-15", -0.10, model.LabelNeutral),
			seedEntry("2025-11-15", -0.15, model.LabelNeutral),
			seedEntry("2025-12-15", -0.20, model.LabelNeutral),
			seedEntry("2026-01-15", -0.15, model.LabelNeutral),
		},
		"Michael S. Barr": {
			seedEntry("2025-09-15", -0.25, model.LabelNeutral),
			seedEntry("2025-10-15", -0.20, model.LabelNeutral),
			seedEntry("2025-11-15", -0.25, model.LabelNeutral),
			seedEntry("2025-12-15", -0.30, model.LabelDovish),
			seedEntry("2026-01-15", -0.25, model.LabelNeutral),
		},
		"Michelle W. Bowman": {
			seedEntry("2025-09-15", 0.60, model.LabelHawkish),
			seedEntry("2025-10-15", 0.55, model.LabelHawkish),
			seedEntry("2025-11-15", 0.50, model.LabelHawkish),
			seedEntry("2025-12-15", 0.50, model.LabelHawkish),
			seedEntry("2026-01-15", 0.45, model.LabelHawkish),
		},
		"Christopher J. Waller": {
			seedEntry("2025-09-15", 0.50, model.LabelHawkish),
			seedEntry("2025-10-15", 0.40, model.LabelHawkish),
			seedEntry("2025-11-15", 0.35, model.LabelHawkish),
			seedEntry("2025-12-15", 0.30, model.LabelNeutral),
			seedEntry("2026-01-15", 0.35, model.LabelHawkish),
		},
		"Lisa D. Cook": {
			seedEntry("2025-09-15", -0.30, model.LabelDovish),
			seedEntry("2025-10-15", -0.25, model.LabelNeutral),
			seedEntry("2025-11-15", -0.30, model.LabelDovish),
			seedEntry("2025-12-15", -0.35, model.LabelDovish),
			seedEntry("2026-01-15", -0.30, model.LabelDovish),
		},
		"Adriana D. Kugler": {
			seedEntry("2025-09-15", -0.20, model.LabelNeutral),
			seedEntry("2025-10-15", -0.15, model.LabelNeutral),
			seedEntry("2025-11-15", -0.15, model.LabelNeutral),
			seedEntry("2025-12-15", -0.20, model.LabelNeutral),
			seedEntry("2026-01-15", -0.15, model.LabelNeutral),
		},
		"John C. Williams": {
			seedEntry("2025-09-15", -0.05, model.LabelNeutral),
			seedEntry("2025-10-15", -0.10, model.LabelNeutral),
			seedEntry("2025-11-15", -0.10, model.LabelNeutral),
			seedEntry("2025-12-15", -0.15, model.LabelNeutral),
			seedEntry("2026-01-15", -0.10, model.LabelNeutral),
		},
		"Patrick T. Harker": {
			seedEntry("2025-09-15", 0.15, model.LabelNeutral),
			seedEntry("2025-10-15", 0.10, model.LabelNeutral),
			seedEntry("2025-11-15", 0.05, model.LabelNeutral),
			seedEntry("2025-12-15", 0.05, model.LabelNeutral),
			seedEntry("2026-01-15", 0.10, model.LabelNeutral),
		},
		"Thomas I. Barkin": {
			seedEntry("2025-09-15", 0.20, model.LabelNeutral),
			seedEntry("2025-10-15", 0.15, model.LabelNeutral),
			seedEntry("2025-11-15", 0.15, model.LabelNeutral),
			seedEntry("2025-12-15", 0.10, model.LabelNeutral),
			seedEntry("2026-01-15", 0.15, model.LabelNeutral),
		},
		"Raphael W. Bostic": {
			seedEntry("2025-09-15", -0.15, model.LabelNeutral),
			seedEntry("2025-10-15", -0.10, model.LabelNeutral),
			seedEntry("2025-11-15", -0.15, model.LabelNeutral),
			seedEntry("2025-12-15", -0.20, model.LabelNeutral),
			seedEntry("2026-01-15", -0.15, model.LabelNeutral),
		},
		"Mary C. Daly": {
			seedEntry("2025-09-15", -0.20, model.LabelNeutral),
			seedEntry("2025-10-15", -0.15, model.LabelNeutral),
			seedEntry("2025-11-15", -0.20, model.LabelNeutral),
			seedEntry("2025-12-15", -0.25, model.LabelNeutral),
			seedEntry("2026-01-15", -0.20, model.LabelNeutral),
		},
		"Susan M. Collins": {
			seedEntry("2025-09-15", 0.10, model.LabelNeutral),
			seedEntry("2025-10-15", 0.05, model.LabelNeutral),
			seedEntry("2025-11-15", 0.05, model.LabelNeutral),
			seedEntry("2025-12-15", 0.00, model.LabelNeutral),
			seedEntry("2026-01-15", 0.05, model.LabelNeutral),
		},
		"Beth M. Hammack": {
			seedEntry("2025-09-15", 0.25, model.LabelNeutral),
			seedEntry("2025-10-15", 0.20, model.LabelNeutral),
			seedEntry("2025-11-15", 0.20, model.LabelNeutral),
			seedEntry("2025-12-15", 0.25, model.LabelNeutral),
			seedEntry("2026-01-15", 0.20, model.LabelNeutral),
		},
		"Austan D. Goolsbee": {
			seedEntry("2025-09-15", -0.40, model.LabelDovish),
			seedEntry("2025-10-15", -0.35, model.LabelDovish),
			seedEntry("2025-11-15", -0.35, model.LabelDovish),
			seedEntry("2025-12-15", -0.40, model.LabelDovish),
			seedEntry("2026-01-15", -0.35, model.LabelDovish),
		},
		"Alberto G. Musalem": {
			seedEntry("2025-09-15", 0.30, model.LabelNeutral),
			seedEntry("2025-10-15", 0.25, model.LabelNeutral),
			seedEntry("2025-11-15", 0.25, model.LabelNeutral),
			seedEntry("2025-12-15", 0.20, model.LabelNeutral),
			seedEntry("2026-01-15", 0.25, model.LabelNeutral),
		},
		"Jeffrey R. Schmid": {
			seedEntry("2025-09-15", 0.40, model.LabelHawkish),
			seedEntry("2025-10-15", 0.35, model.LabelHawkish),
			seedEntry("2025-11-15", 0.35, model.LabelHawkish),
			seedEntry("2025-12-15", 0.30, model.LabelNeutral),
			seedEntry("2026-01-15", 0.35, model.LabelHawkish),
		},
		"Lorie K. Logan": {
			seedEntry("2025-09-15", 0.45, model.LabelHawkish),
			seedEntry("2025-10-15", 0.40, model.LabelHawkish),
			seedEntry("2025-11-15", 0.35, model.LabelHawkish),
			seedEntry("2025-12-15", 0.35, model.LabelHawkish),
			seedEntry("2026-01-15", 0.40, model.LabelHawkish),
		},
		"Neel Kashkari": {
			seedEntry("2025-09-15", -0.35, model.LabelDovish),
			seedEntry("2025-10-15", -0.30, model.LabelDovish),
			seedEntry("2025-11-15", -0.30, model.LabelNeutral),
			seedEntry("2025-12-15", -0.35, model.LabelDovish),
			seedEntry("2026-01-15", -0.30, model.LabelDovish),
		},
	}
}
