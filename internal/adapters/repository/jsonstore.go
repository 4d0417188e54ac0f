package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/pkg/logger"
	"github.com/quantfold/fedgauge/pkg/metrics"
)

// Default label cutoffs applied when deriving labels during backfill and
// upsert.
const (
	defaultHawkishThreshold = 1.5
	defaultDovishThreshold  = -1.5
)

// JSONStore is a file-backed Store. Seed data is the floor: persisted
// entries only ever add dates on top of it, never shadow it. The whole
// history is kept in memory and flushed to disk on every write.
//
// A single mutex serializes writers; reads take the shared lock and
// return copies.
type JSONStore struct {
	mu   sync.RWMutex
	path string

	hawkishThreshold float64
	dovishThreshold  float64

	seed    map[string][]model.StanceEntry
	history map[string][]model.StanceEntry
	logger  logger.Logger
}

// NewJSONStore builds a store rooted at path. An empty path keeps the
// store purely in memory, which tests rely on. The persisted file, when
// present, is merged over the seed and legacy single-dimension entries
// are backfilled in place.
func NewJSONStore(path string, opts ...Option) (*JSONStore, error) {
	s := &JSONStore{
		path:             path,
		hawkishThreshold: defaultHawkishThreshold,
		dovishThreshold:  defaultDovishThreshold,
		seed:             SeedHistory(),
		logger:           logger.Get().Named("stance-store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) load() error {
	s.history = make(map[string][]model.StanceEntry, len(s.seed))
	for name, entries := range s.seed {
		s.history[name] = append([]model.StanceEntry(nil), entries...)
	}

	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		switch {
		case os.IsNotExist(err):
			// First run, seed only.
		case err != nil:
			return fmt.Errorf("read stance history: %w", err)
		default:
			var persisted map[string][]model.StanceEntry
			if err := json.Unmarshal(raw, &persisted); err != nil {
				return fmt.Errorf("decode stance history: %w", err)
			}
			for name, entries := range persisted {
				existing := make(map[string]struct{}, len(s.history[name]))
				for _, e := range s.history[name] {
					existing[e.Date] = struct{}{}
				}
				for _, e := range entries {
					if _, ok := existing[e.Date]; ok {
						continue
					}
					s.history[name] = append(s.history[name], e)
				}
			}
		}
	}

	backfilled := 0
	for name := range s.history {
		for i := range s.history[name] {
			if s.backfill(&s.history[name][i]) {
				backfilled++
			}
		}
		sortByDate(s.history[name])
	}
	if backfilled > 0 {
		s.logger.Info(context.Background(), "backfilled legacy entries",
			logger.Int("count", backfilled))
	}
	s.updateSizeMetrics()
	return nil
}

// backfill fills in the dual-dimension fields on a legacy entry. Policy
// inherits the overall score; balance sheet defaults to zero. Reports
// whether anything changed.
func (s *JSONStore) backfill(e *model.StanceEntry) bool {
	changed := false
	if e.PolicyScore == nil {
		e.PolicyScore = model.Float(e.Score)
		e.PolicyLabel = model.ScoreLabel(*e.PolicyScore, s.hawkishThreshold, s.dovishThreshold)
		changed = true
	}
	if e.BalanceSheetScore == nil {
		e.BalanceSheetScore = model.Float(0)
		e.BalanceSheetLabel = model.LabelNeutral
		changed = true
	}
	if changed {
		metrics.RecordBackfilledEntry()
	}
	return changed
}

// Upsert implements Store. Missing dual-dimension fields default the way
// backfill does, scores are rounded to three decimals, and an entry on an
// already-recorded date replaces the old one in place.
func (s *JSONStore) Upsert(_ context.Context, name string, entry model.StanceEntry) error {
	if entry.Date == "" {
		entry.Date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, entry.Date)
	}

	entry.Score = round3(entry.Score)
	if entry.Label == "" {
		entry.Label = model.ScoreLabel(entry.Score, s.hawkishThreshold, s.dovishThreshold)
	}
	if entry.Source == "" {
		entry.Source = model.SourceLive
	}
	if entry.PolicyScore == nil {
		entry.PolicyScore = model.Float(entry.Score)
	} else {
		entry.PolicyScore = model.Float(round3(*entry.PolicyScore))
	}
	if entry.PolicyLabel == "" {
		entry.PolicyLabel = model.ScoreLabel(*entry.PolicyScore, s.hawkishThreshold, s.dovishThreshold)
	}
	if entry.BalanceSheetScore == nil {
		entry.BalanceSheetScore = model.Float(0)
	} else {
		entry.BalanceSheetScore = model.Float(round3(*entry.BalanceSheetScore))
	}
	if entry.BalanceSheetLabel == "" {
		entry.BalanceSheetLabel = model.ScoreLabel(*entry.BalanceSheetScore, s.hawkishThreshold, s.dovishThreshold)
	}
	for i := range entry.Evidence {
		entry.Evidence[i].Score = round3(entry.Evidence[i].Score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.history[name]
	replaced := false
	for i := range entries {
		if entries[i].Date == entry.Date {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
		sortByDate(entries)
	}
	s.history[name] = entries

	if err := s.persistLocked(); err != nil {
		return err
	}
	metrics.RecordStoreUpsert()
	s.updateSizeMetrics()
	return nil
}

// persistLocked flushes the whole history map to disk. Caller holds the
// write lock. Writes through a temp file so a crash cannot leave a
// truncated history behind.
func (s *JSONStore) persistLocked() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.history, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stance history: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write stance history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace stance history: %w", err)
	}
	return nil
}

// History implements Store.
func (s *JSONStore) History(_ context.Context, name string) ([]model.StanceEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.history[name]
	if !ok || len(entries) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoHistory, name)
	}
	return append([]model.StanceEntry(nil), entries...), nil
}

// Latest implements Store.
func (s *JSONStore) Latest(ctx context.Context, name string) (model.StanceEntry, error) {
	entries, err := s.History(ctx, name)
	if err != nil {
		return model.StanceEntry{}, err
	}
	return entries[len(entries)-1], nil
}

// LatestAsOf implements Store. ISO dates compare lexically, so this is a
// plain backwards scan.
func (s *JSONStore) LatestAsOf(ctx context.Context, name, date string) (model.StanceEntry, error) {
	entries, err := s.History(ctx, name)
	if err != nil {
		return model.StanceEntry{}, err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Date <= date {
			return entries[i], nil
		}
	}
	return model.StanceEntry{}, fmt.Errorf("%w: %q as of %s", ErrNoHistory, name, date)
}

// All implements Store.
func (s *JSONStore) All(_ context.Context) map[string][]model.StanceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]model.StanceEntry, len(s.history))
	for name, entries := range s.history {
		out[name] = append([]model.StanceEntry(nil), entries...)
	}
	return out
}

// Participants implements Store.
func (s *JSONStore) Participants(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.history))
	for name := range s.history {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *JSONStore) updateSizeMetrics() {
	total := 0
	for _, entries := range s.history {
		total += len(entries)
	}
	metrics.UpdateStoreSize(len(s.history), total)
}

func sortByDate(entries []model.StanceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
