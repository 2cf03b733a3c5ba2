package mcts

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Per-child statistics of the root, after the search
type ChildStats[T MoveLike] struct {
	Move    T
	Visits  int32
	Wins    Result
	WinRate float64
	// UCB1 confidence bounds of the win rate
	Lower float64
	Upper float64
}

// Monte-Carlo tree search engine, with UCB1 tree policy and uniformly random
// rollouts. Not safe for concurrent use, every search builds a new tree.
type Engine[T MoveLike] struct {
	listener     StatsListener[T]
	limiter      *Limiter
	policy       *UCB1[T]
	bestChild    BestChildPolicy
	rand         *rand.Rand
	logger       zerolog.Logger
	shortCircuit bool

	tree     *Tree[T]
	cycles   int
	maxdepth int
	cps      uint32
}

func NewEngine[T MoveLike](options ...Option) *Engine[T] {
	config := DefaultConfig()
	for _, option := range options {
		option(&config)
	}

	if config.Rand == nil {
		config.Rand = rand.New(rand.NewSource(SeedGeneratorFn()))
	}

	return &Engine[T]{
		listener:     NewStatsListener[T](),
		limiter:      NewLimiter(config.Limits),
		policy:       NewUCB1[T](config.ExplorationParam),
		bestChild:    config.BestChild,
		rand:         config.Rand,
		logger:       config.Logger,
		shortCircuit: config.ShortCircuit,
	}
}

// Run a search with given number of iterations and exploration parameter,
// returns the most promising move for the side to move
func Search[T MoveLike](root State[T], iterations int, c float64, options ...Option) (T, error) {
	if iterations <= 0 {
		var none T
		return none, fmt.Errorf("%w: %d iterations", ErrInvalidBudget, iterations)
	}

	options = append(options, WithIterations(iterations), WithExplorationParam(c))
	return NewEngine[T](options...).Search(context.Background(), root)
}

// Search the root position until the limits are reached or the context is done.
// The root is never modified, every iteration works on its clone.
func (mcts *Engine[T]) Search(ctx context.Context, root State[T]) (T, error) {
	var none T

	mcts.limiter.SetContext(ctx)
	if !mcts.limiter.Bounded() {
		return none, fmt.Errorf("%w: limits %v", ErrInvalidBudget, mcts.limiter.Limits())
	}

	mcts.setupSearch(root)
	moves := mcts.tree.Node(mcts.tree.Root()).Untried
	if len(moves) == 0 {
		return none, ErrTerminalRoot
	}

	if mcts.shortCircuit && len(moves) == 1 {
		mcts.logger.Debug().Interface("move", moves[0]).Msg("single legal move")
		return moves[0], nil
	}

	for mcts.limiter.Ok(mcts.cycles) {
		depth, err := mcts.iterate(root)
		if err != nil {
			return none, err
		}

		mcts.cycles++
		mcts.maxdepth = max(mcts.maxdepth, depth)
		mcts.cps = uint32(mcts.cycles * 1000 / mcts.limiter.Elapsed())
		mcts.listener.invokeCycle(mcts)
	}

	mcts.limiter.EvaluateStopReason(mcts.cycles)
	mcts.listener.invokeStop(mcts)

	best := mcts.tree.BestChild(mcts.tree.Root(), mcts.bestChild)
	if best == NoNode {
		return none, fmt.Errorf("%w: stopped after %d cycles (%v)", ErrNoChildren, mcts.cycles, mcts.StopReason())
	}

	move := mcts.tree.Node(best).Move
	mcts.logger.Debug().
		Int("cycles", mcts.cycles).
		Uint32("cps", mcts.cps).
		Int("depth", mcts.maxdepth).
		Int("size", mcts.tree.Len()).
		Interface("move", move).
		Float64("eval", mcts.tree.WinRate(best)).
		Stringer("stop", mcts.StopReason()).
		Msg("search finished")

	return move, nil
}

// This function only creates the tree, resets the counters, and the stop flag
// doesn't actually start the search
func (mcts *Engine[T]) setupSearch(root State[T]) {
	mcts.limiter.Reset()
	mcts.tree = NewTree(root)
	mcts.cycles = 0
	mcts.maxdepth = 0
	mcts.cps = 0
}

func (mcts *Engine[T]) SetListener(listener StatsListener[T]) {
	mcts.listener = listener
}

func (mcts *Engine[T]) StatsListener() *StatsListener[T] {
	return &mcts.listener
}

// Stop the search, safe to call from another goroutine
func (mcts *Engine[T]) Stop() {
	mcts.limiter.SetStop(true)
}

func (mcts *Engine[T]) SetLimits(limits *Limits) {
	mcts.limiter.SetLimits(limits)
}

func (mcts *Engine[T]) Limits() *Limits {
	return mcts.limiter.Limits()
}

func (mcts *Engine[T]) SetExplorationParam(c float64) {
	mcts.policy.SetExplorationParam(c)
}

func (mcts *Engine[T]) SetBestChildPolicy(policy BestChildPolicy) {
	mcts.bestChild = policy
}

// Tree of the last search, nil before the first one
func (mcts *Engine[T]) Tree() *Tree[T] {
	return mcts.tree
}

// Maxiumum depth reached during the search, note that usually MaxDepth != len(pv)
func (mcts *Engine[T]) MaxDepth() int {
	return mcts.maxdepth
}

// Total number of iterations ran during the search
func (mcts *Engine[T]) Cycles() int {
	return mcts.cycles
}

// Get cycles per second statistic
func (mcts *Engine[T]) Cps() uint32 {
	return mcts.cps
}

// Get the reason why the search was stopped, valid after search ends
func (mcts *Engine[T]) StopReason() StopReason {
	return mcts.limiter.StopReason()
}

// Best line of the last search, according to the policy
func (mcts *Engine[T]) PrincipalVariation(policy BestChildPolicy) []T {
	if mcts.tree == nil {
		return nil
	}
	return mcts.tree.PrincipalVariation(mcts.tree.Root(), policy)
}

// Statistics of every root child, in expansion order. Unvisited children
// have zero win rate and bounds.
func (mcts *Engine[T]) RootStats() []ChildStats[T] {
	if mcts.tree == nil {
		return nil
	}

	root := mcts.tree.Node(mcts.tree.Root())
	stats := make([]ChildStats[T], 0, len(root.Children))
	for _, id := range root.Children {
		child := mcts.tree.Node(id)
		s := ChildStats[T]{
			Move:   child.Move,
			Visits: child.Visits,
			Wins:   child.Wins,
		}
		if child.Visits > 0 {
			s.WinRate = float64(child.AvgQ())
			s.Lower = UCB1Lower(child.Wins, child.Visits, root.Visits, mcts.policy.ExplorationParam)
			s.Upper = UCB1Score(child.Wins, child.Visits, root.Visits, mcts.policy.ExplorationParam)
		}
		stats = append(stats, s)
	}
	return stats
}

func (mcts *Engine[T]) String() string {
	if mcts.tree == nil {
		return "MCTS={}"
	}
	root := mcts.tree.Node(mcts.tree.Root())
	return fmt.Sprintf("MCTS={Size=%d, Stats:{maxdepth=%d, cps=%d, cycles=%d}, Root=%v}",
		mcts.tree.Len(), mcts.maxdepth, mcts.cps, mcts.cycles, root.NodeStats)
}
