package mcts

import "math"

// UCB 1 : wins/visits + C * sqrt(ln(parent_visits)/visits)
// ucb1 = exploitation + exploration
// Both visit counts must be positive, otherwise it panics with ErrZeroVisits
func UCB1Score(wins Result, visits, parentVisits int32, c float64) float64 {
	if visits <= 0 || parentVisits <= 0 {
		panic(ErrZeroVisits)
	}
	return float64(wins)/float64(visits) + c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}

// Lower confidence bound of the node's win rate, the exploration term subtracted
func UCB1Lower(wins Result, visits, parentVisits int32, c float64) float64 {
	if visits <= 0 || parentVisits <= 0 {
		panic(ErrZeroVisits)
	}
	return float64(wins)/float64(visits) - c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}

// Tree policy, picks the child maximizing the UCB1 score
type UCB1[T MoveLike] struct {
	ExplorationParam float64
}

func NewUCB1[T MoveLike](explorationParam float64) *UCB1[T] {
	u := &UCB1[T]{}
	u.SetExplorationParam(explorationParam)
	return u
}

func (u *UCB1[T]) SetExplorationParam(c float64) {
	u.ExplorationParam = max(0, c)
}

// Select the child of a fully expanded parent with the highest score.
// Since we assume the game is zero-sum, and every child keeps its wins from
// the perspective of the player moving into it (the one choosing at parent),
// the plain maximum is correct for both sides. First maximum wins ties.
func (u *UCB1[T]) Select(tree *Tree[T], parent NodeID) NodeID {
	node := tree.Node(parent)
	best := NoNode
	bestScore := math.Inf(-1)

	for _, id := range node.Children {
		child := tree.Node(id)
		score := UCB1Score(child.Wins, child.Visits, node.Visits, u.ExplorationParam)
		if score > bestScore {
			bestScore = score
			best = id
		}
	}
	return best
}
