package mcts

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Single iteration of the search, simply calls:
//
// 1. selection - to descend to the most promising node
//
// 2. expansion - to add one new child to it
//
// 3. rollout - to play random moves until the game ends
//
// 4. backpropagate - to add the outcome to every node up to the root
//
// Works on a clone of the root, returns the depth of the expanded node
func (mcts *Engine[T]) iterate(root State[T]) (int, error) {
	state := root.Clone()

	node, depth := selection(mcts.tree, mcts.policy, state)
	expanded, err := expansion(mcts.tree, node, state, mcts.rand)
	if err != nil {
		return 0, err
	}
	if expanded != node {
		depth++
	}

	if _, err := rollout(state, mcts.rand, mcts.limiter.Limits().MaxRolloutPlies); err != nil {
		return 0, err
	}

	backpropagate(mcts.tree, expanded, state)
	return depth, nil
}

// Descend from the root while the node is fully expanded and has children,
// applying every chosen move to the state. Deterministic, returns the
// reached node and its depth.
func selection[T MoveLike](tree *Tree[T], policy *UCB1[T], state State[T]) (NodeID, int) {
	id := tree.Root()
	depth := 0

	for {
		node := tree.Node(id)
		if len(node.Untried) > 0 || len(node.Children) == 0 {
			return id, depth
		}

		id = policy.Select(tree, id)
		state.ApplyMove(tree.Node(id).Move)
		depth++
	}
}

// Pick a random untried move of the node, play it and add the resulting child.
// On a terminal (or fully expanded) node does nothing and returns the same id.
func expansion[T MoveLike](tree *Tree[T], id NodeID, state State[T], rng *rand.Rand) (NodeID, error) {
	node := tree.Node(id)
	if len(node.Untried) == 0 {
		return id, nil
	}

	move := node.Untried[rng.Intn(len(node.Untried))]
	mover := node.Player.Opponent()
	state.ApplyMove(move)

	if player := state.PlayerJustMoved(); player != mover {
		return id, fmt.Errorf("%w: after %v expected %v, got %v", ErrPlayerAlternation, move, mover, player)
	}

	return tree.AddChild(id, move, state), nil
}

// Play uniformly random moves until the game is over, maxPlies <= 0 means
// no limit. Returns the number of played moves.
func rollout[T MoveLike](state State[T], rng *rand.Rand, maxPlies int) (int, error) {
	plies := 0
	for moves := state.LegalMoves(); len(moves) > 0; moves = state.LegalMoves() {
		if maxPlies > 0 && plies >= maxPlies {
			return plies, fmt.Errorf("%w: %d plies", ErrRolloutOverflow, plies)
		}
		state.ApplyMove(moves[rng.Intn(len(moves))])
		plies++
	}
	return plies, nil
}

// Walk up to the root, crediting every node with the terminal outcome seen
// from the player who moved into it. If player 1 wins the playout, every
// node gets its visit, but only player 1's nodes are credited with a win.
// A draw gives 0.5 to both.
func backpropagate[T MoveLike](tree *Tree[T], id NodeID, state State[T]) {
	for id != NoNode {
		node := tree.Node(id)
		node.Add(state.Result(node.Player))
		id = node.Parent
	}
}
