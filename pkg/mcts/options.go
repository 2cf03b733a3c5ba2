package mcts

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type Option func(config *Config)

// Engine configuration, independent of the move type
type Config struct {
	Limits           *Limits
	ExplorationParam float64
	BestChild        BestChildPolicy
	Rand             *rand.Rand
	Logger           zerolog.Logger
	ShortCircuit     bool
}

func DefaultConfig() Config {
	return Config{
		Limits:           DefaultLimits(),
		ExplorationParam: DefaultExplorationParam,
		BestChild:        BestChildWinRate,
		Logger:           zerolog.Nop(),
		ShortCircuit:     true,
	}
}

// Number of iterations per search, non-positive values make the search fail
// unless a movetime or deadline is set
func WithIterations(iterations int) Option {
	return func(c *Config) {
		c.Limits.SetCycles(iterations)
	}
}

// Thinking time per search in milliseconds
func WithMovetime(movetime int) Option {
	return func(c *Config) {
		c.Limits.SetMovetime(movetime)
	}
}

func WithExplorationParam(param float64) Option {
	return func(c *Config) {
		c.ExplorationParam = max(0, param)
	}
}

func WithBestChildPolicy(policy BestChildPolicy) Option {
	return func(c *Config) {
		c.BestChild = policy
	}
}

// Use given random generator for expansion and rollouts
func WithRand(r *rand.Rand) Option {
	return func(c *Config) {
		if r != nil {
			c.Rand = r
		}
	}
}

// Seed a fresh random generator, searches with equal seeds, configuration
// and root position choose the same move
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Rand = rand.New(rand.NewSource(seed))
	}
}

// Replace all limits at once
func WithLimits(limits *Limits) Option {
	return func(c *Config) {
		if limits != nil {
			c.Limits = limits.Clone()
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Return the only legal move without searching
func WithShortCircuit(enabled bool) Option {
	return func(c *Config) {
		c.ShortCircuit = enabled
	}
}
