// Package registry holds the ordered, mutable lists of pluggable
// classification backends and raw-text source providers, plus the
// fallthrough routers over them.
//
// Registries are explicitly owned objects constructed at process start and
// passed by reference, so tests can snapshot and restore state
// deterministically instead of mutating globals.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/quantfold/fedgauge/internal/domain/classifier"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/roster"
)

// Backend is the classifier plugin contract: three capability methods
// registered as a named, enable/disable-able unit.
type Backend interface {
	// ClassifyText scores a single text.
	ClassifyText(ctx context.Context, text string) (classifier.Result, error)

	// ClassifyTextWithEvidence scores a single text and returns per-phrase
	// quote evidence.
	ClassifyTextWithEvidence(ctx context.Context, text string) (classifier.Result, []classifier.QuoteEvidence, error)

	// ClassifySnippets scores a batch of snippets as one aggregate result.
	ClassifySnippets(ctx context.Context, snippets []string) (classifier.Result, error)
}

// SourceFn fetches raw text items about a participant.
type SourceFn func(ctx context.Context, p roster.Participant, maxResults int) ([]model.NewsItem, error)

// Registration is one (name, enabled) row from a registry listing.
type Registration struct {
	Name    string
	Enabled bool
}

// entry is a registered unit of either registry.
type entry[T any] struct {
	name    string
	value   T
	enabled bool
}

// registry is the shared ordered-list core behind both registries.
type registry[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
}

func (r *registry[T]) register(name string, value T, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry[T]{name: name, value: value, enabled: enabled})
}

func (r *registry[T]) list() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration, len(r.entries))
	for i, e := range r.entries {
		out[i] = Registration{Name: e.name, Enabled: e.enabled}
	}
	return out
}

func (r *registry[T]) setEnabled(name string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].enabled = enabled
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// snapshot returns the entries in registration order.
func (r *registry[T]) snapshot() []entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entry[T], len(r.entries))
	copy(out, r.entries)
	return out
}

// ClassifierRegistry is the ordered list of classifier backends.
type ClassifierRegistry struct {
	registry[Backend]
}

// NewClassifierRegistry creates an empty classifier registry.
func NewClassifierRegistry() *ClassifierRegistry {
	return &ClassifierRegistry{}
}

// Register appends a backend under a name. Enabled defaults to true.
func (r *ClassifierRegistry) Register(name string, b Backend, enabled bool) {
	r.register(name, b, enabled)
}

// List returns registered backend names and their enabled status.
func (r *ClassifierRegistry) List() []Registration { return r.list() }

// Enable turns a registered backend back on.
// Returns ErrUnknownBackend for unregistered names.
func (r *ClassifierRegistry) Enable(name string) error { return r.setEnabled(name, true) }

// Disable turns a registered backend off without removing it.
// Returns ErrUnknownBackend for unregistered names.
func (r *ClassifierRegistry) Disable(name string) error { return r.setEnabled(name, false) }

// SourceRegistry is the ordered list of raw-text source providers.
type SourceRegistry struct {
	registry[SourceFn]
}

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{}
}

// Register appends a source provider under a name. Enabled defaults to true.
func (r *SourceRegistry) Register(name string, fn SourceFn, enabled bool) {
	r.register(name, fn, enabled)
}

// List returns registered source names and their enabled status.
func (r *SourceRegistry) List() []Registration { return r.list() }

// Enable turns a registered source back on.
func (r *SourceRegistry) Enable(name string) error { return r.setEnabled(name, true) }

// Disable turns a registered source off without removing it.
func (r *SourceRegistry) Disable(name string) error { return r.setEnabled(name, false) }
