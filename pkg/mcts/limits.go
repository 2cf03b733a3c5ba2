package mcts

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	// Number of iterations (selection, expansion, rollout, backpropagation)
	Cycles int
	// Thinking time in milliseconds
	Movetime int
	// Longest allowed rollout, protects against games that never end
	MaxRolloutPlies int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

const (
	DefaultCyclesLimit      int = -1
	DefaultMovetimeLimit    int = -1
	DefaultRolloutPlyLimit  int = -1
	DefaultIterationsBudget int = 1000
)

// No cycle or time limit, a search with these limits needs a context deadline
func DefaultLimits() *Limits {
	return &Limits{
		Cycles:          DefaultCyclesLimit,
		Movetime:        DefaultMovetimeLimit,
		MaxRolloutPlies: DefaultRolloutPlyLimit,
	}
}

// Set the number of iterations in monte-carlo tree search
func (l *Limits) SetCycles(cycles int) *Limits {
	l.Cycles = cycles
	return l
}

// Set the maximum time for engine to think, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}

func (l *Limits) SetMaxRolloutPlies(plies int) *Limits {
	l.MaxRolloutPlies = plies
	return l
}

// Whether cycles or movetime bound the search
func (l *Limits) Bounded() bool {
	return l.Cycles > 0 || l.Movetime > 0
}

func (l *Limits) Clone() *Limits {
	clone := *l
	return &clone
}
