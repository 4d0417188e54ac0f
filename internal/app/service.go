// Package app wires the roster, sources, classifier chain, and stance
// store into the participant refresh pipeline.
package app

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/quantfold/fedgauge/internal/adapters/mq/queue"
	"github.com/quantfold/fedgauge/internal/adapters/mq/worker"
	"github.com/quantfold/fedgauge/internal/adapters/repository"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/registry"
	"github.com/quantfold/fedgauge/internal/domain/roster"
	"github.com/quantfold/fedgauge/pkg/logger"
	"github.com/quantfold/fedgauge/pkg/metrics"
)

// Default pipeline configuration constants.
const (
	defaultWorkerCount    = 4
	defaultQueueSize      = 1024
	defaultMaxNewsResults = 5
	defaultMaxEvidence    = 8

	defaultNewsBlendWeight   = 0.7
	defaultPolicyBlendWeight = 0.7

	scoreMin = -5.0
	scoreMax = 5.0
)

// Service runs the refresh pipeline: fetch fresh text per participant,
// classify it, blend with the baseline lean, and record the stance.
type Service struct {
	roster     *roster.Roster
	store      repository.Store
	classifier *registry.Router
	sources    *registry.SourceRouter

	queue *queue.InMemoryQueue
	pool  *worker.Pool

	workerCount    int
	queueSize      int
	maxNewsResults int
	maxEvidence    int

	newsBlendWeight   float64
	policyBlendWeight float64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of refresh workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the refresh queue capacity.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithMaxNewsResults caps per-source results per participant.
func WithMaxNewsResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxNewsResults = n
		}
	}
}

// WithMaxEvidence caps the evidence items attached to a stance entry.
func WithMaxEvidence(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxEvidence = n
		}
	}
}

// WithNewsBlendWeight sets the fresh-classification share of the blended
// per-dimension score; the baseline lean takes the remainder.
func WithNewsBlendWeight(w float64) Option {
	return func(s *Service) {
		if w >= 0 && w <= 1 {
			s.newsBlendWeight = w
		}
	}
}

// WithPolicyBlendWeight sets the policy share of the overall score.
func WithPolicyBlendWeight(w float64) Option {
	return func(s *Service) {
		if w >= 0 && w <= 1 {
			s.policyBlendWeight = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New builds a Service over the given collaborators.
func New(r *roster.Roster, store repository.Store, clf *registry.Router, sources *registry.SourceRouter, opts ...Option) *Service {
	s := &Service{
		roster:            r,
		store:             store,
		classifier:        clf,
		sources:           sources,
		workerCount:       defaultWorkerCount,
		queueSize:         defaultQueueSize,
		maxNewsResults:    defaultMaxNewsResults,
		maxEvidence:       defaultMaxEvidence,
		newsBlendWeight:   defaultNewsBlendWeight,
		policyBlendWeight: defaultPolicyBlendWeight,
		logger:            logger.Get().Named("refresh-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.queue, s)
	return s
}

// Start launches the worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.pool.Start(ctx)
	s.logger.Info(ctx, "refresh service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queue_size", s.queueSize),
	)
	return nil
}

// Stop drains the queue and shuts the pool down.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.pool.Shutdown(ctx); err != nil {
		return fmt.Errorf("stop refresh service: %w", err)
	}
	s.logger.Info(ctx, "refresh service stopped")
	return nil
}

// RefreshAll enqueues a refresh job for every roster participant and
// returns the cycle's run ID. Jobs that do not fit in the queue are
// dropped and counted.
func (s *Service) RefreshAll(ctx context.Context) (string, int) {
	runID := uuid.NewString()
	date := time.Now().UTC().Format("2006-01-02")

	enqueued := 0
	for _, p := range s.roster.All() {
		ok := s.queue.Enqueue(ctx, queue.Job{RunID: runID, Participant: p, Date: date})
		if !ok {
			metrics.RecordWorkerError()
			s.logger.Warn(ctx, "refresh queue full, dropping job",
				logger.String("run_id", runID),
				logger.String("participant", p.Name),
			)
			continue
		}
		enqueued++
	}
	metrics.RecordRefreshCycle()
	s.logger.Info(ctx, "refresh cycle enqueued",
		logger.String("run_id", runID),
		logger.Int("jobs", enqueued),
	)
	return runID, enqueued
}

// Refresh processes one participant: fetch, classify, blend, record.
// Implements worker.Refresher.
func (s *Service) Refresh(ctx context.Context, job queue.Job) error {
	p := job.Participant
	items := s.sources.FetchAll(ctx, p, s.maxNewsResults)

	if len(items) == 0 {
		return s.recordBaseline(ctx, p, job.Date)
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = itemText(item)
	}
	agg := s.classifier.ClassifySnippets(ctx, texts)

	policy := s.blend(agg.PolicyScore, p.BaselineFor(false))
	balanceSheet := s.blend(agg.BalanceSheetScore, p.BaselineFor(true))
	overall := s.policyBlendWeight*policy + (1-s.policyBlendWeight)*balanceSheet

	entry := model.StanceEntry{
		Date:              job.Date,
		Score:             overall,
		Source:            model.SourceLive,
		PolicyScore:       model.Float(policy),
		BalanceSheetScore: model.Float(balanceSheet),
		Evidence:          s.collectEvidence(ctx, items),
	}
	if err := s.store.Upsert(ctx, p.Name, entry); err != nil {
		return fmt.Errorf("record stance for %s: %w", p.Name, err)
	}

	s.logger.Info(ctx, "participant refreshed",
		logger.String("run_id", job.RunID),
		logger.String("participant", p.Name),
		logger.Int("items", len(items)),
		logger.Float64("score", overall),
	)
	return nil
}

// recordBaseline writes a stance entry from the static lean when no
// fresh text was found, so the history keeps moving between speeches.
func (s *Service) recordBaseline(ctx context.Context, p roster.Participant, date string) error {
	policy := p.BaselineFor(false)
	balanceSheet := p.BaselineFor(true)
	entry := model.StanceEntry{
		Date:              date,
		Score:             s.policyBlendWeight*policy + (1-s.policyBlendWeight)*balanceSheet,
		Source:            model.SourceHistoricalLean,
		PolicyScore:       model.Float(policy),
		BalanceSheetScore: model.Float(balanceSheet),
	}
	if err := s.store.Upsert(ctx, p.Name, entry); err != nil {
		return fmt.Errorf("record baseline for %s: %w", p.Name, err)
	}
	s.logger.Debug(ctx, "no fresh text, recorded baseline lean",
		logger.String("participant", p.Name))
	return nil
}

// blend mixes the fresh classification with the baseline lean and clamps
// to the score range.
func (s *Service) blend(news, baseline float64) float64 {
	v := s.newsBlendWeight*news + (1-s.newsBlendWeight)*baseline
	return math.Max(scoreMin, math.Min(scoreMax, v))
}

// collectEvidence classifies each item individually and keeps the
// strongest quotes, sorted by absolute score.
func (s *Service) collectEvidence(ctx context.Context, items []model.NewsItem) []model.Evidence {
	var out []model.Evidence
	for _, item := range items {
		result, quotes := s.classifier.ClassifyTextWithEvidence(ctx, itemText(item))
		if len(quotes) == 0 {
			continue
		}

		ev := model.Evidence{
			Title:      item.Title,
			URL:        item.URL,
			SourceType: item.Source,
			Quote:      quotes[0].Quote,
			Score:      result.Score,
		}
		for _, q := range quotes {
			ev.Keywords = append(ev.Keywords, q.Keyword)
			ev.Directions = append(ev.Directions, string(q.Direction))
			ev.Dimensions = append(ev.Dimensions, string(q.Dimension))
		}
		out = append(out, ev)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Score) > math.Abs(out[j].Score)
	})
	if s.maxEvidence >= 0 && len(out) > s.maxEvidence {
		out = out[:s.maxEvidence]
	}
	return out
}

func itemText(item model.NewsItem) string {
	if item.Body == "" {
		return item.Title
	}
	return item.Title + ". " + item.Body
}
