// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment overrides on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"

	"github.com/quantfold/fedgauge/internal/domain/signal"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// StorePath locates the persisted stance history JSON file. Empty
	// keeps the store in memory.
	StorePath string `koanf:"store_path"`

	// RefreshQueueSize bounds the in-memory refresh job queue.
	RefreshQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of refresh workers.
	WorkerCount int `koanf:"worker_count"`

	// MaxNewsResults caps how many items each source returns per
	// participant.
	MaxNewsResults int `koanf:"max_news_results"`

	// MaxEvidence caps the evidence items attached to a stance entry.
	MaxEvidence int `koanf:"max_evidence"`

	// HawkishThreshold and DovishThreshold are the label cutoffs.
	HawkishThreshold float64 `koanf:"hawkish_threshold"`
	DovishThreshold  float64 `koanf:"dovish_threshold"`

	// NewsBlendWeight is the share of the final per-dimension score taken
	// from fresh classification; the remainder comes from the baseline
	// lean.
	NewsBlendWeight float64 `koanf:"news_blend_weight"`

	// PolicyBlendWeight is the policy share of the overall score when a
	// balance-sheet reading exists.
	PolicyBlendWeight float64 `koanf:"policy_blend_weight"`

	// QuoteContext is the evidence quote window size in characters.
	QuoteContext int `koanf:"quote_context"`

	// RoleWeights overrides the influence-weight table by role key.
	RoleWeights map[string]float64 `koanf:"role_weights"`

	// ActionBands overrides the implied-action score bands. Bands must
	// partition [-5, 5) contiguously.
	ActionBands []signal.ActionBand `koanf:"action_bands"`

	// DriftHawkishThreshold and DriftDovishThreshold classify
	// meeting-to-meeting drift.
	DriftHawkishThreshold float64 `koanf:"drift_hawkish_threshold"`
	DriftDovishThreshold  float64 `koanf:"drift_dovish_threshold"`

	// BacktestMeetings is the default backtest window.
	BacktestMeetings int `koanf:"backtest_meetings"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":9090",
		StorePath:             "data/historical/stance_history.json",
		RefreshQueueSize:      1024,
		WorkerCount:           runtime.NumCPU() * 2,
		MaxNewsResults:        5,
		MaxEvidence:           8,
		HawkishThreshold:      1.5,
		DovishThreshold:       -1.5,
		NewsBlendWeight:       0.7,
		PolicyBlendWeight:     0.7,
		QuoteContext:          120,
		RoleWeights:           signal.DefaultRoleWeights(),
		ActionBands:           signal.DefaultActionBands(),
		DriftHawkishThreshold: 0.3,
		DriftDovishThreshold:  -0.3,
		BacktestMeetings:      signal.DefaultBacktestMeetings,
	}
}
