package connect4

import "github.com/IlikeChooros/go-uct/pkg/mcts"

var _ mcts.State[Move] = (*Board)(nil)

func (b *Board) PlayerJustMoved() mcts.Player {
	return b.justMoved
}

// Playable columns, left to right. Empty once someone has won, even with empty cells left.
func (b *Board) LegalMoves() []Move {
	if b.winner != mcts.NoPlayer {
		return nil
	}

	moves := make([]Move, 0, b.cols)
	for col, h := range b.heights {
		if h < b.rows {
			moves = append(moves, Move(col))
		}
	}
	return moves
}

func (b *Board) ApplyMove(col Move) {
	b.MakeMove(col)
}

func (b *Board) Clone() mcts.State[Move] {
	return b.Copy()
}

func (b *Board) Result(player mcts.Player) mcts.Result {
	switch b.winner {
	case mcts.NoPlayer:
		if !b.Full() {
			panic("connect4: result of an unfinished game")
		}
		return mcts.Draw
	case player:
		return mcts.Win
	}
	return mcts.Loss
}
