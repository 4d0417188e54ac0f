package registry

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/quantfold/fedgauge/internal/domain/classifier"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/roster"
	"github.com/quantfold/fedgauge/pkg/logger"
	"github.com/quantfold/fedgauge/pkg/metrics"
)

const keywordBackendName = "keyword"

// Factory builds a semantic backend on first use. It may fail (missing
// credentials, unreachable endpoint); the router treats that like any
// backend failure and falls through.
type Factory func() (Backend, error)

// semanticProbe is one environment-gated semantic backend slot, tried in
// fixed priority order after explicit registrations.
type semanticProbe struct {
	name    string
	envKey  string
	factory Factory

	once    sync.Once
	backend Backend
	initErr error
}

func (p *semanticProbe) get() (Backend, error) {
	p.once.Do(func() {
		p.backend, p.initErr = p.factory()
	})
	return p.backend, p.initErr
}

// RouterOption applies a configuration option to the Router.
type RouterOption func(*Router)

// WithSemanticBackend appends an environment-gated semantic backend probe.
// The probe is skipped unless envKey is set in the environment. Priority
// follows the order of WithSemanticBackend options.
func WithSemanticBackend(name, envKey string, factory Factory) RouterOption {
	return func(r *Router) {
		if factory != nil {
			r.semantic = append(r.semantic, &semanticProbe{name: name, envKey: envKey, factory: factory})
		}
	}
}

// WithLogger sets a custom logger for the router.
func WithLogger(log logger.Logger) RouterOption {
	return func(r *Router) {
		if log != nil {
			r.logger = log
		}
	}
}

// Router tries registered backends in order, then environment-gated
// semantic backends, and finally the keyword classifier, which never
// fails. Every backend error is caught, logged, and converted into a
// fallthrough, so the router's classify methods are total functions.
type Router struct {
	registry *ClassifierRegistry
	semantic []*semanticProbe
	keyword  *classifier.KeywordClassifier
	logger   logger.Logger
}

// NewRouter creates a router over a registry with the keyword classifier
// as the guaranteed terminal backend.
func NewRouter(reg *ClassifierRegistry, keyword *classifier.KeywordClassifier, opts ...RouterOption) *Router {
	r := &Router{
		registry: reg,
		keyword:  keyword,
		logger:   logger.Get().Named("classifier-router"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// candidates yields the fallible backends in routing order: enabled
// registrations first, then available semantic probes.
func (r *Router) candidates(ctx context.Context) []struct {
	name    string
	backend Backend
} {
	var out []struct {
		name    string
		backend Backend
	}
	for _, e := range r.registry.snapshot() {
		if !e.enabled {
			continue
		}
		out = append(out, struct {
			name    string
			backend Backend
		}{e.name, e.value})
	}
	for _, probe := range r.semantic {
		if os.Getenv(probe.envKey) == "" {
			continue
		}
		b, err := probe.get()
		if err != nil {
			metrics.RecordBackendFailure(probe.name)
			r.logger.Warn(ctx, "semantic backend unavailable",
				logger.String("backend", probe.name), logger.Error(err))
			continue
		}
		out = append(out, struct {
			name    string
			backend Backend
		}{probe.name, b})
	}
	return out
}

// ClassifyText classifies text through the backend chain.
func (r *Router) ClassifyText(ctx context.Context, text string) classifier.Result {
	start := time.Now()
	defer func() {
		metrics.RecordClassificationLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	for _, c := range r.candidates(ctx) {
		result, err := c.backend.ClassifyText(ctx, text)
		if err != nil {
			r.fallthroughWarn(ctx, c.name, err)
			continue
		}
		metrics.RecordClassification(c.name)
		return result
	}
	metrics.RecordClassification(keywordBackendName)
	return r.keyword.Classify(text)
}

// ClassifyTextWithEvidence classifies text and returns quote evidence.
func (r *Router) ClassifyTextWithEvidence(ctx context.Context, text string) (classifier.Result, []classifier.QuoteEvidence) {
	for _, c := range r.candidates(ctx) {
		result, evidence, err := c.backend.ClassifyTextWithEvidence(ctx, text)
		if err != nil {
			r.fallthroughWarn(ctx, c.name, err)
			continue
		}
		metrics.RecordClassification(c.name)
		return result, evidence
	}
	metrics.RecordClassification(keywordBackendName)
	return r.keyword.ClassifyWithEvidence(text)
}

// ClassifySnippets classifies a snippet batch through the backend chain.
func (r *Router) ClassifySnippets(ctx context.Context, snippets []string) classifier.Result {
	for _, c := range r.candidates(ctx) {
		result, err := c.backend.ClassifySnippets(ctx, snippets)
		if err != nil {
			r.fallthroughWarn(ctx, c.name, err)
			continue
		}
		metrics.RecordClassification(c.name)
		return result
	}
	metrics.RecordClassification(keywordBackendName)
	return r.keyword.ClassifyMany(snippets)
}

func (r *Router) fallthroughWarn(ctx context.Context, name string, err error) {
	metrics.RecordBackendFailure(name)
	r.logger.Warn(ctx, "classifier backend failed, falling through",
		logger.String("backend", name), logger.Error(err))
}

// FetchAll runs every enabled source provider for a participant,
// absorbing individual source failures, and deduplicates results by URL.
type SourceRouter struct {
	registry *SourceRegistry
	logger   logger.Logger
}

// NewSourceRouter creates a router over a source registry.
func NewSourceRouter(reg *SourceRegistry, opts ...SourceRouterOption) *SourceRouter {
	r := &SourceRouter{
		registry: reg,
		logger:   logger.Get().Named("source-router"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SourceRouterOption applies a configuration option to the SourceRouter.
type SourceRouterOption func(*SourceRouter)

// WithSourceLogger sets a custom logger for the source router.
func WithSourceLogger(log logger.Logger) SourceRouterOption {
	return func(r *SourceRouter) {
		if log != nil {
			r.logger = log
		}
	}
}

// FetchAll collects items from all enabled sources for one participant.
// A failing source is logged and skipped; duplicates (same URL from
// multiple sources) are dropped, keeping the first occurrence.
func (r *SourceRouter) FetchAll(ctx context.Context, p roster.Participant, maxResults int) []model.NewsItem {
	var all []model.NewsItem
	for _, e := range r.registry.snapshot() {
		if !e.enabled {
			r.logger.Debug(ctx, "skipping disabled source", logger.String("source", e.name))
			continue
		}
		items, err := e.value(ctx, p, maxResults)
		if err != nil {
			metrics.RecordBackendFailure(e.name)
			r.logger.Warn(ctx, "source failed",
				logger.String("source", e.name),
				logger.String("participant", p.Name),
				logger.Error(err))
			continue
		}
		metrics.RecordSourceFetch(e.name)
		r.logger.Info(ctx, "source fetched",
			logger.String("source", e.name),
			logger.String("participant", p.Name),
			logger.Int("results", len(items)))
		all = append(all, items...)
	}

	seen := make(map[string]struct{})
	deduped := all[:0]
	for _, item := range all {
		if item.URL != "" {
			if _, ok := seen[item.URL]; ok {
				continue
			}
			seen[item.URL] = struct{}{}
		}
		deduped = append(deduped, item)
	}
	return deduped
}
