package repository

import (
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/pkg/logger"
)

// Option applies a configuration option to the JSONStore.
type Option func(*JSONStore)

// WithThresholds sets the label cutoffs used when deriving labels for
// backfilled or partially-specified entries.
func WithThresholds(hawkish, dovish float64) Option {
	return func(s *JSONStore) {
		s.hawkishThreshold = hawkish
		s.dovishThreshold = dovish
	}
}

// WithSeed replaces the built-in seed history. Tests use this to start
// from a known tiny dataset.
func WithSeed(seed map[string][]model.StanceEntry) Option {
	return func(s *JSONStore) {
		if seed != nil {
			s.seed = seed
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *JSONStore) {
		if log != nil {
			s.logger = log
		}
	}
}
