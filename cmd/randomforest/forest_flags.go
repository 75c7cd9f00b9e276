package main

import (
	"github.com/spf13/cobra"

	"github.com/Motwg/RandomForest/config"
)

// forestFlags overrides the forest section of the configuration. Only
// flags set on the command line take effect.
type forestFlags struct {
	trees     int
	k         int
	kDiv      float64
	maxDepth  int
	entropyTh float64
	igTh      float64
	validate  int
	seed      uint64
	jobs      int
}

func (ff *forestFlags) register(cmd *cobra.Command) {
	defaults := config.Default().Forest
	fs := cmd.Flags()
	fs.IntVar(&(ff.trees), "trees", defaults.Trees, "number of trees per forest")
	fs.IntVar(&(ff.k), "k", defaults.K, "candidate predicates tried at the root")
	fs.Float64Var(&(ff.kDiv), "k-div", defaults.KDiv, "divisor applied to k at every level (0 disables the decay)")
	fs.IntVar(&(ff.maxDepth), "max-depth", defaults.MaxDepth, "maximum tree depth")
	fs.Float64Var(&(ff.entropyTh), "entropy-th", defaults.EntropyTh, "entropy under which nodes are not split")
	fs.Float64Var(&(ff.igTh), "ig-th", defaults.IGTh, "minimum information gain of a split")
	fs.IntVar(&(ff.validate), "validate", defaults.Validate, "leading ratings of every user held out for validation")
	fs.Uint64Var(&(ff.seed), "seed", 0, "random seed (unset draws a random one)")
	fs.IntVar(&(ff.jobs), "jobs", defaults.Jobs, "trees grown concurrently (0 uses every CPU)")
}

func (ff *forestFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("trees") {
		cfg.Forest.Trees = ff.trees
	}
	if fs.Changed("k") {
		cfg.Forest.K = ff.k
	}
	if fs.Changed("k-div") {
		cfg.Forest.KDiv = ff.kDiv
	}
	if fs.Changed("max-depth") {
		cfg.Forest.MaxDepth = ff.maxDepth
	}
	if fs.Changed("entropy-th") {
		cfg.Forest.EntropyTh = ff.entropyTh
	}
	if fs.Changed("ig-th") {
		cfg.Forest.IGTh = ff.igTh
	}
	if fs.Changed("validate") {
		cfg.Forest.Validate = ff.validate
	}
	if fs.Changed("seed") {
		seed := ff.seed
		cfg.Forest.Seed = &seed
	}
	if fs.Changed("jobs") {
		cfg.Forest.Jobs = ff.jobs
	}
	return cfg.Validate()
}
