package ttt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalMove     = errors.New("ttt: illegal move")
	ErrInvalidNotation = errors.New("ttt: invalid notation")
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1
	_fullBoard         = 0b111111111
)

type HistoryState struct {
	lastMove  PosType
	justMoved TurnType
}

type Position struct {
	board       [9]PlayerType
	bitboards   [2]uint16
	history     []HistoryState
	termination Termination
}

// Empty board, cross to move
func NewPosition() *Position {
	history := make([]HistoryState, 1, 10)
	history[0] = HistoryState{lastMove: PosIllegal, justMoved: CircleTurn}

	return &Position{
		history: history,
	}
}

func (p *Position) lastHistory() *HistoryState {
	return &p.history[len(p.history)-1]
}

// Side to move
func (p *Position) Turn() TurnType {
	return !p.lastHistory().justMoved
}

// Last played move, PosIllegal if none
func (p *Position) LastMove() PosType {
	return p.lastHistory().lastMove
}

// Piece on given square
func (p *Position) At(sq PosType) PlayerType {
	return p.board[sq]
}

// Number of moves played since the loaded position
func (p *Position) Ply() int {
	return len(p.history) - 1
}

// Play the move without any checks
func (p *Position) MakeMove(mv PosType) {
	turn := p.Turn()
	idx := _bitboardCrossIdx
	player := Cross
	if turn == CircleTurn {
		player = Circle
		idx = _bitboardCircleIdx
	}

	p.bitboards[idx] ^= (1 << mv)
	p.board[mv] = player
	p.termination = TerminationNone
	p.history = append(p.history, HistoryState{justMoved: turn, lastMove: mv})
}

// Play the move, if it's legal
func (p *Position) Play(mv PosType) error {
	if p.IsTerminated() {
		return fmt.Errorf("%w: %v, game is over", ErrIllegalMove, mv)
	}
	if !p.IsEmpty(mv) {
		return fmt.Errorf("%w: %v is not an empty square", ErrIllegalMove, mv)
	}
	p.MakeMove(mv)
	return nil
}

// Take back the last move, does nothing on the loaded position
func (p *Position) UndoMove() {
	if len(p.history) <= 1 {
		return
	}

	hist := p.lastHistory()
	idx := _bitboardCrossIdx
	if hist.justMoved == CircleTurn {
		idx = _bitboardCircleIdx
	}

	p.bitboards[idx] ^= (1 << hist.lastMove)
	p.board[hist.lastMove] = None
	p.termination = TerminationNone
	p.history = p.history[:len(p.history)-1]
}

// Deep copy of the position, including history
func (p *Position) Copy() *Position {
	clone := *p
	clone.history = make([]HistoryState, len(p.history), cap(p.history))
	copy(clone.history, p.history)
	return &clone
}

// Board as 3 text rows, '.' for empty squares
func (p *Position) String() string {
	builder := strings.Builder{}
	for i, piece := range p.board {
		switch piece {
		case Cross:
			builder.WriteByte('x')
		case Circle:
			builder.WriteByte('o')
		default:
			builder.WriteByte('.')
		}
		if i%3 == 2 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
