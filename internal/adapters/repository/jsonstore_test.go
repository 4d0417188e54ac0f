package repository

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/pkg/logger"
)

func init() {
	logger.Init()
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func tinySeed() map[string][]model.StanceEntry {
	return map[string][]model.StanceEntry{
		"Alice": {
			seedEntry("2026-01-01", 1.0, model.LabelNeutral),
			seedEntry("2026-02-01", 2.0, model.LabelHawkish),
		},
	}
}

func memStore(t *testing.T, opts ...Option) *JSONStore {
	t.Helper()
	s, err := NewJSONStore("", opts...)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	return s
}

func TestSeedBackfill(t *testing.T) {
	s := memStore(t, WithSeed(tinySeed()))

	entries, err := s.History(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history length = %d, want 2", len(entries))
	}
	first := entries[0]
	if first.PolicyScore == nil || !floatEqual(*first.PolicyScore, 1.0) {
		t.Errorf("backfilled policy score = %v, want 1.0", first.PolicyScore)
	}
	if first.PolicyLabel != model.LabelNeutral {
		t.Errorf("backfilled policy label = %q, want Neutral", first.PolicyLabel)
	}
	if first.BalanceSheetScore == nil || !floatEqual(*first.BalanceSheetScore, 0) {
		t.Errorf("backfilled balance-sheet score = %v, want 0", first.BalanceSheetScore)
	}
	if first.BalanceSheetLabel != model.LabelNeutral {
		t.Errorf("backfilled balance-sheet label = %q, want Neutral", first.BalanceSheetLabel)
	}
}

func TestDefaultSeedCoversCommittee(t *testing.T) {
	s := memStore(t)

	names := s.Participants(context.Background())
	if len(names) != 19 {
		t.Fatalf("seeded participants = %d, want 19", len(names))
	}
	for _, name := range names {
		entries, err := s.History(context.Background(), name)
		if err != nil {
			t.Fatalf("History(%q): %v", name, err)
		}
		if len(entries) != 5 {
			t.Errorf("%s has %d seed entries, want 5", name, len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Date >= entries[i].Date {
				t.Errorf("%s history out of order at %d", name, i)
			}
		}
	}
}

func TestUpsertDefaultsAndRounding(t *testing.T) {
	s := memStore(t, WithSeed(map[string][]model.StanceEntry{}))

	err := s.Upsert(context.Background(), "Bob", model.StanceEntry{
		Date:  "2026-03-01",
		Score: 1.23456,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := s.Latest(context.Background(), "Bob")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !floatEqual(got.Score, 1.235) {
		t.Errorf("score = %v, want rounded 1.235", got.Score)
	}
	if got.Label != model.LabelNeutral {
		t.Errorf("label = %q, want derived Neutral", got.Label)
	}
	if got.Source != model.SourceLive {
		t.Errorf("source = %q, want live default", got.Source)
	}
	if got.PolicyScore == nil || !floatEqual(*got.PolicyScore, 1.235) {
		t.Errorf("policy score = %v, want inherited 1.235", got.PolicyScore)
	}
	if got.BalanceSheetScore == nil || !floatEqual(*got.BalanceSheetScore, 0) {
		t.Errorf("balance-sheet score = %v, want 0", got.BalanceSheetScore)
	}
}

func TestUpsertRoundsEvidenceScores(t *testing.T) {
	s := memStore(t, WithSeed(map[string][]model.StanceEntry{}))

	err := s.Upsert(context.Background(), "Bob", model.StanceEntry{
		Date:  "2026-03-01",
		Score: 2.0,
		Evidence: []model.Evidence{
			{Title: "speech", Quote: "further tightening", Score: 3.3333333},
			{Title: "interview", Quote: "patient approach", Score: -1.66666667},
		},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := s.Latest(context.Background(), "Bob")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(got.Evidence) != 2 {
		t.Fatalf("evidence length = %d, want 2", len(got.Evidence))
	}
	if !floatEqual(got.Evidence[0].Score, 3.333) {
		t.Errorf("evidence[0] score = %v, want rounded 3.333", got.Evidence[0].Score)
	}
	if !floatEqual(got.Evidence[1].Score, -1.667) {
		t.Errorf("evidence[1] score = %v, want rounded -1.667", got.Evidence[1].Score)
	}
}

func TestUpsertRejectsBadDate(t *testing.T) {
	s := memStore(t, WithSeed(map[string][]model.StanceEntry{}))

	err := s.Upsert(context.Background(), "Bob", model.StanceEntry{Date: "03/01/2026"})
	if err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestUpsertReplacesSameDate(t *testing.T) {
	s := memStore(t, WithSeed(tinySeed()))
	ctx := context.Background()

	err := s.Upsert(ctx, "Alice", model.StanceEntry{Date: "2026-02-01", Score: -3.0})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	entries, _ := s.History(ctx, "Alice")
	if len(entries) != 2 {
		t.Fatalf("history length = %d, want 2 after replacement", len(entries))
	}
	if !floatEqual(entries[1].Score, -3.0) || entries[1].Label != model.LabelDovish {
		t.Errorf("replaced entry = %v %q, want -3.0 Dovish", entries[1].Score, entries[1].Label)
	}
}

func TestUpsertKeepsDateOrder(t *testing.T) {
	s := memStore(t, WithSeed(tinySeed()))
	ctx := context.Background()

	if err := s.Upsert(ctx, "Alice", model.StanceEntry{Date: "2026-01-15", Score: 0.5}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	entries, _ := s.History(ctx, "Alice")
	want := []string{"2026-01-01", "2026-01-15", "2026-02-01"}
	for i, d := range want {
		if entries[i].Date != d {
			t.Errorf("entries[%d].Date = %s, want %s", i, entries[i].Date, d)
		}
	}
}

func TestLatestAsOf(t *testing.T) {
	s := memStore(t, WithSeed(tinySeed()))
	ctx := context.Background()

	got, err := s.LatestAsOf(ctx, "Alice", "2026-01-20")
	if err != nil {
		t.Fatalf("LatestAsOf: %v", err)
	}
	if got.Date != "2026-01-01" {
		t.Errorf("as-of entry date = %s, want 2026-01-01", got.Date)
	}

	if _, err := s.LatestAsOf(ctx, "Alice", "2025-12-31"); err == nil {
		t.Error("expected no history before the first entry")
	}
}

func TestHistoryUnknownParticipant(t *testing.T) {
	s := memStore(t, WithSeed(tinySeed()))

	_, err := s.History(context.Background(), "Nobody")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	ctx := context.Background()

	s, err := NewJSONStore(path, WithSeed(tinySeed()))
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	err = s.Upsert(ctx, "Alice", model.StanceEntry{Date: "2026-03-01", Score: 2.5, Source: model.SourceLive})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	reloaded, err := NewJSONStore(path, WithSeed(tinySeed()))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	entries, err := reloaded.History(ctx, "Alice")
	if err != nil {
		t.Fatalf("History after reload: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("history length after reload = %d, want 3", len(entries))
	}
	last := entries[2]
	if last.Date != "2026-03-01" || !floatEqual(last.Score, 2.5) || last.Source != model.SourceLive {
		t.Errorf("reloaded entry = %+v", last)
	}
}

func TestSeedIsFloor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	ctx := context.Background()

	s, err := NewJSONStore(path, WithSeed(tinySeed()))
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	// Persist a modified entry on a seed date, then reload: the seed copy
	// wins because persisted entries only add new dates.
	if err := s.Upsert(ctx, "Alice", model.StanceEntry{Date: "2026-01-01", Score: -4.0}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	reloaded, err := NewJSONStore(path, WithSeed(tinySeed()))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err := reloaded.LatestAsOf(ctx, "Alice", "2026-01-01")
	if err != nil {
		t.Fatalf("LatestAsOf: %v", err)
	}
	if !floatEqual(got.Score, 1.0) {
		t.Errorf("seed-date score after reload = %v, want seed value 1.0", got.Score)
	}
}

func TestUpsertIsIdempotentOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	ctx := context.Background()

	s, err := NewJSONStore(path, WithSeed(tinySeed()))
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	entry := model.StanceEntry{Date: "2026-03-01", Score: 2.5}
	if err := s.Upsert(ctx, "Alice", entry); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if err := s.Upsert(ctx, "Alice", entry); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(first) != string(second) {
		t.Error("repeated upsert changed the persisted file")
	}
}
