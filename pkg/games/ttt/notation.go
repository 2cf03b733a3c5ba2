package ttt

import (
	"fmt"
	"math/bits"
	"strings"
)

const StartingPosition = "3/3/3 x"

// string notation for the tic tac toe position,
// much like the FEN representation of a chessboard:
//
//	<row>/<row>/<row> <turn>
//
// rows go from the top, 'x' and 'o' are pieces, a digit
// skips given number of empty squares. <turn> is either 'o' or 'x'
//
// Examples:
//
// * 3/3/3 x
//
// * xx1/oo1/3 x
func (p *Position) Notation() string {
	builder := strings.Builder{}

	for row := range 3 {
		counter := 0
		for col := range 3 {
			piece := p.board[row*3+col]
			if piece == None {
				counter++
				continue
			}

			if counter > 0 {
				builder.WriteByte('0' + byte(counter))
				counter = 0
			}
			builder.WriteString(piece.String())
		}

		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}
		if row != 2 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	builder.WriteString(p.Turn().String())
	return builder.String()
}

// Create the position from notation string
func FromNotation(notation string) (*Position, error) {
	pos := NewPosition()
	return pos, pos.FromNotation(notation)
}

// Load the position from notation string, history is reset
func (p *Position) FromNotation(notation string) error {
	if notation == "startpos" {
		notation = StartingPosition
	}

	fields := strings.Fields(notation)
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q, expected board and turn", ErrInvalidNotation, notation)
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 3 {
		return fmt.Errorf("%w: %q, expected 3 rows, got %d", ErrInvalidNotation, notation, len(rows))
	}

	var board [9]PlayerType
	var bitboards [2]uint16
	for r, row := range rows {
		col := 0
		for _, v := range row {
			switch {
			case v == 'x' || v == 'o':
				if col >= 3 {
					return fmt.Errorf("%w: row %d is too long", ErrInvalidNotation, r+1)
				}
				sq := r*3 + col
				if v == 'x' {
					board[sq] = Cross
					bitboards[_bitboardCrossIdx] |= 1 << sq
				} else {
					board[sq] = Circle
					bitboards[_bitboardCircleIdx] |= 1 << sq
				}
				col++
			case '1' <= v && v <= '3':
				col += int(v - '0')
			default:
				return fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidNotation, v, r+1)
			}
		}
		if col != 3 {
			return fmt.Errorf("%w: row %d has %d squares", ErrInvalidNotation, r+1, col)
		}
	}

	var justMoved TurnType
	switch fields[1] {
	case "x":
		justMoved = CircleTurn
	case "o":
		justMoved = CrossTurn
	default:
		return fmt.Errorf("%w: invalid side %q", ErrInvalidNotation, fields[1])
	}

	// Cross moves first, so it has either as many pieces as circle or one more
	crosses := bits.OnesCount16(bitboards[_bitboardCrossIdx])
	circles := bits.OnesCount16(bitboards[_bitboardCircleIdx])
	if (justMoved == CrossTurn && crosses != circles+1) || (justMoved == CircleTurn && crosses != circles) {
		return fmt.Errorf("%w: %d x and %d o with %s to move", ErrInvalidNotation, crosses, circles, fields[1])
	}

	if err := checkWinner(bitboards, justMoved); err != nil {
		return err
	}

	p.board = board
	p.bitboards = bitboards
	p.history = append(p.history[:0], HistoryState{lastMove: PosIllegal, justMoved: justMoved})
	p.CheckTerminationPattern()
	return nil
}

// Only the side that just moved can own a line
func checkWinner(bitboards [2]uint16, justMoved TurnType) error {
	var lines [2]bool
	for _, pattern := range _winningBitboardPatterns {
		for i, bb := range bitboards {
			if uint(bb)&pattern == pattern {
				lines[i] = true
			}
		}
	}

	switch {
	case lines[_bitboardCrossIdx] && lines[_bitboardCircleIdx]:
		return fmt.Errorf("%w: both sides have a line", ErrInvalidNotation)
	case lines[_bitboardCrossIdx] && justMoved != CrossTurn:
		return fmt.Errorf("%w: x has a line but o moved last", ErrInvalidNotation)
	case lines[_bitboardCircleIdx] && justMoved != CircleTurn:
		return fmt.Errorf("%w: o has a line but x moved last", ErrInvalidNotation)
	}
	return nil
}
