package ttt

import "math/bits"

// Empty squares of the board, in increasing order. Returns empty list on a finished game.
func (p *Position) GenerateMoves() *MoveList {
	movelist := NewMoveList()
	if p.IsTerminated() {
		return movelist
	}

	free := uint(_fullBoard ^ (p.bitboards[_bitboardCrossIdx] | p.bitboards[_bitboardCircleIdx]))
	for free != 0 {
		movelist.AppendMove(PosType(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}

// Whether given square is empty
func (p *Position) IsEmpty(mv PosType) bool {
	return mv <= C1 && (p.bitboards[_bitboardCrossIdx]|p.bitboards[_bitboardCircleIdx])&(1<<mv) == 0
}
