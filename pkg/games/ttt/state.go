package ttt

import "github.com/IlikeChooros/go-uct/pkg/mcts"

// Search adapter, the position itself is the game state
var _ mcts.State[PosType] = (*Position)(nil)

func (p *Position) PlayerJustMoved() mcts.Player {
	return p.lastHistory().justMoved.Player()
}

func (p *Position) LegalMoves() []PosType {
	return p.GenerateMoves().Slice()
}

func (p *Position) Clone() mcts.State[PosType] {
	return p.Copy()
}

func (p *Position) ApplyMove(mv PosType) {
	p.MakeMove(mv)
}

func (p *Position) Result(player mcts.Player) mcts.Result {
	var winner mcts.Player
	switch p.Winner() {
	case Cross:
		winner = mcts.Player1
	case Circle:
		winner = mcts.Player2
	default:
		if p.termination != TerminationDraw {
			panic("ttt: result of an unfinished game")
		}
		return mcts.Draw
	}

	if winner == player {
		return mcts.Win
	}
	return mcts.Loss
}
