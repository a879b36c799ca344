package markovbuilder

import "math/rand"

// BuilderOption customizes a builderConfig before any Constructor runs.
// As a rule option constructors never panic and ignore nil inputs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved, immutable settings a Constructor
// closure reads. It is rebuilt from scratch by every BuildGraph call.
type builderConfig struct {
	rng      *rand.Rand
	idFn     IDFn
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return cfg
}

// WithSeed freezes every stochastic WeightFn used during this
// BuildGraph call to a *rand.Rand deterministically derived from seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDFn overrides the vertex-id scheme used by constructors that
// synthesize ids (Chain's intermediate states).
func WithIDFn(fn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithWeightFn overrides the default weight used by constructors that
// accept no explicit EmissionSpec weight (currently only Chain's
// transition edges).
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.weightFn = fn
		}
	}
}
