package signal

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRoleWeights overrides entries of the influence-weight table. Roles
// not mentioned keep their defaults.
func WithRoleWeights(weights map[string]float64) Option {
	return func(e *Engine) {
		for role, w := range weights {
			e.roleWeights[role] = w
		}
	}
}

// WithDriftThresholds sets the cutoffs for classifying drift direction.
func WithDriftThresholds(hawkish, dovish float64) Option {
	return func(e *Engine) {
		e.driftHawkish = hawkish
		e.driftDovish = dovish
	}
}

// WithActionTable replaces the implied rate action bands.
func WithActionTable(bands []ActionBand) Option {
	return func(e *Engine) {
		if len(bands) > 0 {
			e.actionBands = bands
		}
	}
}
