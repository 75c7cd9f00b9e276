package ensemble

import (
	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/pkg/log"
	"github.com/Motwg/RandomForest/tree"
)

// Default hyperparameters of a Forest.
const (
	DefaultTrees             = 101
	DefaultK                 = 70
	DefaultKDiv              = 1.6
	DefaultMaxDepth          = 3
	DefaultEntropyThreshold  = 0.2
	DefaultInfoGainThreshold = 0.02
	DefaultValidate          = 10
)

// settings holds the configuration shared by every Forest regardless of its
// feature type.
type settings struct {
	nTrees      int
	validate    int
	nJobs       int
	params      tree.Params
	randomState uint64
	seeded      bool
	logger      log.Logger
}

func defaultSettings() settings {
	return settings{
		nTrees:   DefaultTrees,
		validate: DefaultValidate,
		nJobs:    1,
		params: tree.Params{
			K:                 DefaultK,
			KDiv:              DefaultKDiv,
			MaxDepth:          DefaultMaxDepth,
			EntropyThreshold:  DefaultEntropyThreshold,
			InfoGainThreshold: DefaultInfoGainThreshold,
		},
	}
}

// Option is a function that configures a Forest
type Option func(*settings)

// WithTrees sets the number of trees grown by each Fit
func WithTrees(n int) Option {
	return func(s *settings) {
		s.nTrees = n
	}
}

// WithK sets the number of candidate predicates tried at the root
func WithK(k int) Option {
	return func(s *settings) {
		s.params.K = k
	}
}

// WithKDiv sets the per-level divisor of K. Zero disables the decay.
func WithKDiv(kDiv float64) Option {
	return func(s *settings) {
		s.params.KDiv = kDiv
	}
}

// WithMaxDepth sets the maximum depth of every tree
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.params.MaxDepth = depth
	}
}

// WithEntropyThreshold sets the entropy under which a node is not split
func WithEntropyThreshold(th float64) Option {
	return func(s *settings) {
		s.params.EntropyThreshold = th
	}
}

// WithInfoGainThreshold sets the minimum information gain of a split
func WithInfoGainThreshold(th float64) Option {
	return func(s *settings) {
		s.params.InfoGainThreshold = th
	}
}

// WithParams replaces every growth parameter at once
func WithParams(p tree.Params) Option {
	return func(s *settings) {
		s.params = p
	}
}

// WithValidate sets how many leading pairs of each Fit are held out for
// validation
func WithValidate(n int) Option {
	return func(s *settings) {
		s.validate = n
	}
}

// WithRandomState seeds the forest so that training is reproducible
func WithRandomState(seed uint64) Option {
	return func(s *settings) {
		s.randomState = seed
		s.seeded = true
	}
}

// WithNJobs sets the number of trees grown concurrently. n <= 0 uses one
// worker per CPU. Results do not depend on n.
func WithNJobs(n int) Option {
	return func(s *settings) {
		s.nJobs = n
	}
}

// WithLogger sets the logger used for training diagnostics
func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func (s settings) validateSettings() error {
	if s.nTrees < 1 {
		return errors.NewValidationError("trees", "must be at least 1", s.nTrees)
	}
	if err := errors.CheckNonNegative("validate", s.validate); err != nil {
		return err
	}
	return s.params.Validate()
}
