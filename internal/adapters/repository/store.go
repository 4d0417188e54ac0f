// Package repository defines the stance history store interface and errors.
package repository

import (
	"context"

	"github.com/quantfold/fedgauge/internal/domain/model"
)

// Store provides read/write access to per-participant stance history.
// Histories are kept in ascending date order; (participant, date) is the
// unique key for an entry.
type Store interface {
	// Upsert records a stance entry for a participant, replacing any
	// existing entry on the same date.
	Upsert(ctx context.Context, name string, entry model.StanceEntry) error

	// History returns the full history for a participant, oldest first.
	// Returns ErrNoHistory if the participant has no entries.
	History(ctx context.Context, name string) ([]model.StanceEntry, error)

	// Latest returns the most recent entry for a participant.
	// Returns ErrNoHistory if the participant has no entries.
	Latest(ctx context.Context, name string) (model.StanceEntry, error)

	// LatestAsOf returns the most recent entry dated on or before date
	// (YYYY-MM-DD). Returns ErrNoHistory when nothing qualifies.
	LatestAsOf(ctx context.Context, name, date string) (model.StanceEntry, error)

	// All returns every participant's history, oldest first.
	All(ctx context.Context) map[string][]model.StanceEntry

	// Participants returns the tracked participant names, sorted.
	Participants(ctx context.Context) []string
}
