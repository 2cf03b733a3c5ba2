package mcts

import "errors"

var (
	// Search was called on a finished game
	ErrTerminalRoot = errors.New("mcts: root position has no legal moves")

	// Neither cycles, movetime nor a context deadline bounds the search
	ErrInvalidBudget = errors.New("mcts: search budget must be positive")

	// No root child has been visited when the search stopped
	ErrNoChildren = errors.New("mcts: root has no visited children")

	// The game didn't flip the 'player just moved' after a move
	ErrPlayerAlternation = errors.New("mcts: players do not alternate")

	// Rollout went past Limits.MaxRolloutPlies
	ErrRolloutOverflow = errors.New("mcts: rollout exceeded the ply limit")

	// Raised (by panic) when statistics of an unvisited node are read,
	// always a defect in the search itself
	ErrZeroVisits = errors.New("mcts: statistics of an unvisited node")
)
