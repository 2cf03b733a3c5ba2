package mcts

import (
	"math"

	"lukechampine.com/frand"
)

// Exploration parameter used in UCB1 formula, higher values increase exploration
// while lower values increase exploitation. Theoretical value is sqrt(2).
const DefaultExplorationParam float64 = math.Sqrt2

// Call the listener's 'OnCycle' every N iterations by default
const DefaultCycleInterval int = 1

// Initial capacity of the node arena
const defaultTreeCapacity int = 256

var SeedGeneratorFn SeedGeneratorFnType = func() uint64 {
	return frand.Uint64n(math.MaxUint64)
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses a cryptographically secure source
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

const (
	// Choose the child with the best win rate, ties are broken by visits
	BestChildWinRate BestChildPolicy = iota

	// When choosing the best child, choose the one with most visits,
	// ties are broken by win rate
	BestChildMostVisits
)
