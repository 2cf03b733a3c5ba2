package mcts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Subtraction game: players take 1..maxTake stones, the one who takes the
// last stone wins. Winning move from a pile is to leave a multiple of maxTake+1.
type nim struct {
	stones    int
	maxTake   int
	justMoved Player
}

func newNim(stones int) *nim {
	return &nim{stones: stones, maxTake: 3, justMoved: Player2}
}

func (n *nim) PlayerJustMoved() Player { return n.justMoved }

func (n *nim) LegalMoves() []int {
	moves := make([]int, 0, n.maxTake)
	for take := 1; take <= min(n.maxTake, n.stones); take++ {
		moves = append(moves, take)
	}
	return moves
}

func (n *nim) ApplyMove(take int) {
	n.stones -= take
	n.justMoved = n.justMoved.Opponent()
}

func (n *nim) Clone() State[int] {
	clone := *n
	return &clone
}

func (n *nim) Result(p Player) Result {
	if n.stones != 0 {
		panic("nim: result of an unfinished game")
	}
	if p == n.justMoved {
		return Win
	}
	return Loss
}

func (n *nim) String() string {
	return fmt.Sprintf("%d/%v", n.stones, n.justMoved)
}

// Never flips the player, breaking the alternation contract
type stuckNim struct{ nim }

func (n *stuckNim) ApplyMove(take int) { n.stones -= take }

func (n *stuckNim) Clone() State[int] {
	clone := *n
	return &clone
}

// Game that never ends
type endless struct{ justMoved Player }

func (e *endless) PlayerJustMoved() Player { return e.justMoved }
func (e *endless) LegalMoves() []int       { return []int{0, 1} }
func (e *endless) ApplyMove(int)           { e.justMoved = e.justMoved.Opponent() }
func (e *endless) Clone() State[int]       { clone := *e; return &clone }
func (e *endless) Result(Player) Result    { return Draw }

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() uint64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())
	os.Exit(m.Run())
}

func TestSearchFindsWinningMove(t *testing.T) {
	for stones, want := range map[int]int{5: 1, 6: 2, 7: 3, 9: 1} {
		t.Run(fmt.Sprintf("stones=%d", stones), func(t *testing.T) {
			move, err := Search[int](newNim(stones), 3000, DefaultExplorationParam, WithSeed(7))
			require.NoError(t, err)
			require.Equal(t, want, move)
		})
	}
}

func TestSearchErrors(t *testing.T) {
	t.Run("terminal root", func(t *testing.T) {
		_, err := Search[int](newNim(0), 100, DefaultExplorationParam)
		require.ErrorIs(t, err, ErrTerminalRoot)
	})

	t.Run("zero budget", func(t *testing.T) {
		_, err := Search[int](newNim(5), 0, DefaultExplorationParam)
		require.ErrorIs(t, err, ErrInvalidBudget)

		_, err = NewEngine[int]().Search(context.Background(), newNim(5))
		require.ErrorIs(t, err, ErrInvalidBudget)
	})

	t.Run("player alternation", func(t *testing.T) {
		_, err := Search[int](&stuckNim{*newNim(5)}, 100, DefaultExplorationParam)
		require.ErrorIs(t, err, ErrPlayerAlternation)
	})

	t.Run("rollout overflow", func(t *testing.T) {
		engine := NewEngine[int](WithLimits(DefaultLimits().SetCycles(10).SetMaxRolloutPlies(50)))
		_, err := engine.Search(context.Background(), &endless{justMoved: Player2})
		require.ErrorIs(t, err, ErrRolloutOverflow)
	})

	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewEngine[int](WithIterations(100)).Search(ctx, newNim(5))
		require.ErrorIs(t, err, ErrNoChildren)
	})
}

func TestSearchShortCircuit(t *testing.T) {
	engine := NewEngine[int](WithIterations(100))
	move, err := engine.Search(context.Background(), newNim(1))
	require.NoError(t, err)
	require.Equal(t, 1, move)
	require.Equal(t, 0, engine.Cycles())

	engine = NewEngine[int](WithIterations(100), WithShortCircuit(false))
	move, err = engine.Search(context.Background(), newNim(1))
	require.NoError(t, err)
	require.Equal(t, 1, move)
	require.Equal(t, 100, engine.Cycles())
}

func TestSearchDoesNotMutateRoot(t *testing.T) {
	root := newNim(10)
	before := root.String()

	_, err := Search[int](root, 500, DefaultExplorationParam)
	require.NoError(t, err)
	require.Equal(t, before, root.String())
}

func TestSearchDeterministic(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		e1 := NewEngine[int](WithIterations(200), WithSeed(seed))
		e2 := NewEngine[int](WithIterations(200), WithSeed(seed))

		m1, err := e1.Search(context.Background(), newNim(21))
		require.NoError(t, err)
		m2, err := e2.Search(context.Background(), newNim(21))
		require.NoError(t, err)

		require.Equal(t, m1, m2, "seed=%d", seed)
		require.Equal(t, e1.RootStats(), e2.RootStats(), "seed=%d", seed)
	}
}

func TestTreeInvariants(t *testing.T) {
	root := newNim(12)
	engine := NewEngine[int](WithIterations(1500), WithSeed(3))
	_, err := engine.Search(context.Background(), root)
	require.NoError(t, err)

	tree := engine.Tree()
	require.Equal(t, 1500, int(tree.Node(tree.Root()).Visits))
	require.LessOrEqual(t, tree.Len(), 1501)
	require.Equal(t, tree.MaxDepth(), engine.MaxDepth())

	tree.Walk(func(id NodeID) {
		node := tree.Node(id)

		// Statistics
		require.GreaterOrEqual(t, float64(node.Wins), 0.0)
		require.LessOrEqual(t, float64(node.Wins), float64(node.Visits))

		var childVisits int32
		for _, child := range node.Children {
			require.Equal(t, id, tree.Node(child).Parent)
			childVisits += tree.Node(child).Visits
		}
		require.LessOrEqual(t, childVisits, node.Visits)

		// Every legal move is either a child or untried, never both
		state := root.Clone()
		for _, move := range tree.Path(id) {
			state.ApplyMove(move)
		}
		require.Equal(t, state.PlayerJustMoved(), node.Player)

		moves := append([]int{}, node.Untried...)
		for _, child := range node.Children {
			moves = append(moves, tree.Node(child).Move)
		}
		require.ElementsMatch(t, state.LegalMoves(), moves)
	})
}

func TestSearchBudgetBelowBranching(t *testing.T) {
	// 2 iterations, 3 root moves: one child stays unvisited and cannot be chosen
	engine := NewEngine[int](WithIterations(2), WithSeed(11))
	move, err := engine.Search(context.Background(), newNim(10))
	require.NoError(t, err)

	var visited []int
	for _, s := range engine.RootStats() {
		if s.Visits > 0 {
			visited = append(visited, s.Move)
		}
	}
	require.Len(t, visited, 2)
	require.Contains(t, visited, move)
}

func TestSearchLimits(t *testing.T) {
	t.Run("movetime", func(t *testing.T) {
		engine := NewEngine[int](WithMovetime(50))
		start := time.Now()
		_, err := engine.Search(context.Background(), newNim(30))
		require.NoError(t, err)
		require.Less(t, time.Since(start), time.Second)
		require.Equal(t, StopMovetime, engine.StopReason())
		require.Positive(t, engine.Cycles())
	})

	t.Run("cycles", func(t *testing.T) {
		engine := NewEngine[int](WithIterations(321))
		_, err := engine.Search(context.Background(), newNim(30))
		require.NoError(t, err)
		require.Equal(t, StopCycles, engine.StopReason())
		require.Equal(t, 321, engine.Cycles())
	})

	t.Run("context deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		engine := NewEngine[int]()
		_, err := engine.Search(ctx, newNim(30))
		require.NoError(t, err)
		require.Equal(t, StopInterrupt, engine.StopReason())
	})

	t.Run("stop", func(t *testing.T) {
		engine := NewEngine[int](WithMovetime(10_000))
		listener := NewStatsListener[int]()
		listener.SetCycleInterval(100).OnCycle(func(stats ListenerTreeStats[int]) {
			if stats.Cycles >= 500 {
				engine.Stop()
			}
		})
		engine.SetListener(listener)

		_, err := engine.Search(context.Background(), newNim(30))
		require.NoError(t, err)
		require.Equal(t, StopInterrupt, engine.StopReason())
		require.Equal(t, 500, engine.Cycles())
	})
}

func TestListener(t *testing.T) {
	var cycles []int
	var final ListenerTreeStats[int]
	stops := 0

	listener := NewStatsListener[int]()
	listener.SetCycleInterval(100).
		OnCycle(func(stats ListenerTreeStats[int]) {
			cycles = append(cycles, stats.Cycles)
		}).
		OnStop(func(stats ListenerTreeStats[int]) {
			stops++
			final = stats
		})

	engine := NewEngine[int](WithIterations(1000), WithSeed(5))
	engine.SetListener(listener)
	move, err := engine.Search(context.Background(), newNim(9))
	require.NoError(t, err)

	require.Equal(t, []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}, cycles)
	require.Equal(t, 1, stops)
	require.Equal(t, 1000, final.Cycles)
	require.Equal(t, StopCycles, final.StopReason)
	require.Equal(t, move, final.BestMove)
	require.NotEmpty(t, final.Line)
	require.Equal(t, move, final.Line[0])
	require.Equal(t, engine.Tree().Len(), final.Size)
}

func TestRootStats(t *testing.T) {
	engine := NewEngine[int](WithIterations(2000), WithSeed(9))
	move, err := engine.Search(context.Background(), newNim(5))
	require.NoError(t, err)
	require.Equal(t, 1, move)

	stats := engine.RootStats()
	require.Len(t, stats, 3)

	total := int32(0)
	for _, s := range stats {
		total += s.Visits
		require.LessOrEqual(t, s.Lower, s.WinRate)
		require.GreaterOrEqual(t, s.Upper, s.WinRate)
		require.InDelta(t, float64(s.Wins)/float64(s.Visits), s.WinRate, 1e-9)
	}
	require.Equal(t, int32(2000), total)

	pv := engine.PrincipalVariation(BestChildMostVisits)
	require.NotEmpty(t, pv)
	require.Equal(t, 1, pv[0])
}

func TestBestChildPolicies(t *testing.T) {
	engine := NewEngine[int](WithIterations(2000), WithSeed(1), WithBestChildPolicy(BestChildMostVisits))
	move, err := engine.Search(context.Background(), newNim(6))
	require.NoError(t, err)
	require.Equal(t, 2, move)
	require.Equal(t, "visits", BestChildMostVisits.String())
	require.Equal(t, "winrate", BestChildWinRate.String())
}

func TestErrorsWrap(t *testing.T) {
	_, err := Search[int](newNim(5), -3, 1)
	require.True(t, errors.Is(err, ErrInvalidBudget))
	require.Contains(t, err.Error(), "-3 iterations")
}
