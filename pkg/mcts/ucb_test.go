package mcts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCB1Score(t *testing.T) {
	t.Run("formula", func(t *testing.T) {
		score := UCB1Score(3, 4, 10, math.Sqrt2)
		want := 0.75 + math.Sqrt2*math.Sqrt(math.Log(10)/4)
		require.InDelta(t, want, score, 1e-12)

		lower := UCB1Lower(3, 4, 10, math.Sqrt2)
		require.InDelta(t, 0.75-(want-0.75), lower, 1e-12)
	})

	t.Run("no exploration", func(t *testing.T) {
		require.InDelta(t, 0.25, UCB1Score(1, 4, 100, 0), 1e-12)
	})

	t.Run("single parent visit", func(t *testing.T) {
		// ln(1) = 0, only the win rate counts
		require.InDelta(t, 1.0, UCB1Score(1, 1, 1, math.Sqrt2), 1e-12)
	})

	t.Run("zero visits", func(t *testing.T) {
		require.PanicsWithValue(t, ErrZeroVisits, func() { UCB1Score(0, 0, 10, 1) })
		require.PanicsWithValue(t, ErrZeroVisits, func() { UCB1Score(0, 1, 0, 1) })
		require.PanicsWithValue(t, ErrZeroVisits, func() { UCB1Lower(0, 0, 1, 1) })
	})
}

func TestUCB1Select(t *testing.T) {
	t.Run("exploitation", func(t *testing.T) {
		tree := treeWithChildren(t,
			NodeStats{Visits: 10, Wins: 2},
			NodeStats{Visits: 10, Wins: 8},
			NodeStats{Visits: 10, Wins: 5},
		)
		require.Equal(t, NodeID(2), NewUCB1[int](DefaultExplorationParam).Select(tree, tree.Root()))
	})

	t.Run("exploration", func(t *testing.T) {
		tree := treeWithChildren(t,
			NodeStats{Visits: 100, Wins: 60},
			NodeStats{Visits: 2, Wins: 1},
		)
		require.Equal(t, NodeID(2), NewUCB1[int](DefaultExplorationParam).Select(tree, tree.Root()))
		require.Equal(t, NodeID(1), NewUCB1[int](0).Select(tree, tree.Root()))
	})

	t.Run("first maximum", func(t *testing.T) {
		tree := treeWithChildren(t,
			NodeStats{Visits: 5, Wins: 1},
			NodeStats{Visits: 5, Wins: 3},
			NodeStats{Visits: 5, Wins: 3},
		)
		require.Equal(t, NodeID(2), NewUCB1[int](1).Select(tree, tree.Root()))
	})

	t.Run("unvisited child", func(t *testing.T) {
		tree := treeWithChildren(t, NodeStats{Visits: 3, Wins: 1}, NodeStats{})
		require.Panics(t, func() { NewUCB1[int](1).Select(tree, tree.Root()) })
	})

	t.Run("negative param", func(t *testing.T) {
		require.Zero(t, NewUCB1[int](-2).ExplorationParam)
	})
}
