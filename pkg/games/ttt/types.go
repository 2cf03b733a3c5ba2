package ttt

import "github.com/IlikeChooros/go-uct/pkg/mcts"

// Square index, 0 is the top-left corner (A3), 8 the bottom-right (C1)
type PosType uint8
type TurnType bool
type PlayerType uint8

const (
	CrossTurn  TurnType = true
	CircleTurn TurnType = false
)

const (
	None   PlayerType = 0
	Cross  PlayerType = 1
	Circle PlayerType = 2
)

// Cross moves first, so it's the search's first player
func (t TurnType) Player() mcts.Player {
	if t == CrossTurn {
		return mcts.Player1
	}
	return mcts.Player2
}

func (t TurnType) String() string {
	if t == CrossTurn {
		return "x"
	}
	return "o"
}

func (p PlayerType) String() string {
	switch p {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return "-"
}
