package mcts

type ListenerTreeStats[T MoveLike] struct {
	Maxdepth int
	Cycles   int
	TimeMs   int
	Cps      uint32
	Size     int

	// Current best move and line, according to the engine's best child policy
	BestMove T
	Line     []T
	// Win rate of the best move, from the side to move perspective
	Eval       float64
	StopReason StopReason
}

// Convert the engine state to 'ListenerTreeStats' struct
func toListenerStats[T MoveLike](mcts *Engine[T]) ListenerTreeStats[T] {
	stats := ListenerTreeStats[T]{
		Maxdepth:   mcts.MaxDepth(),
		Cycles:     mcts.Cycles(),
		TimeMs:     mcts.limiter.Elapsed(),
		Cps:        mcts.Cps(),
		Size:       mcts.tree.Len(),
		Line:       mcts.PrincipalVariation(mcts.bestChild),
		StopReason: mcts.limiter.StopReason(),
	}

	if best := mcts.tree.BestChild(mcts.tree.Root(), mcts.bestChild); best != NoNode {
		stats.BestMove = mcts.tree.Node(best).Move
		stats.Eval = mcts.tree.WinRate(best)
	}
	return stats
}

// Listener function callback, will recieve current tree statistics, like
// max depth of tree, number of iterations so far
type ListenerFunc[T MoveLike] func(ListenerTreeStats[T])

type StatsListener[T MoveLike] struct {
	// called every N full iterations
	onCycle ListenerFunc[T]
	nCycles int // call 'onCycle' every N cycles

	// called when the search stops (either by limiter or 'stop' signal)
	onStop ListenerFunc[T]
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{nCycles: DefaultCycleInterval}
}

// Attach new on iteration increase callback, this will slow down the search,
// because of pv evaluation, so use it with a reasonable interval
func (listener *StatsListener[T]) OnCycle(onCycle ListenerFunc[T]) *StatsListener[T] {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener[T]) invokeCycle(mcts *Engine[T]) {
	if listener.onCycle != nil && mcts.Cycles()%max(listener.nCycles, 1) == 0 {
		listener.onCycle(toListenerStats(mcts))
	}
}

func (listener *StatsListener[T]) invokeStop(mcts *Engine[T]) {
	if listener.onStop != nil {
		listener.onStop(toListenerStats(mcts))
	}
}

func (listener *StatsListener[T]) SetCycleInterval(n int) *StatsListener[T] {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback, called once,
// makes 'StopReason' available in the stats
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}
