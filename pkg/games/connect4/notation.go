package connect4

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
)

// Board notation, rows from the top separated by '/', 'x' and 'o' are discs,
// a number skips given count of empty cells. The side to move follows from the
// disc counts, 'x' always moves first.
//
// Examples:
//
// * 7/7/7/7/7/7 (empty standard board)
//
// * 7/7/7/7/3o3/2xxo2
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for row := b.rows - 1; row >= 0; row-- {
		counter := 0
		for col := range b.cols {
			disc := b.At(col, row)
			if disc == mcts.NoPlayer {
				counter++
				continue
			}

			if counter > 0 {
				builder.WriteString(strconv.Itoa(counter))
				counter = 0
			}
			builder.WriteByte(discChar(disc, '.'))
		}

		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
		if row != 0 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// Widest board accepted by FromNotation
const maxNotationColumns = 64

// Create the board from notation string, the size is taken from the notation
func FromNotation(notation string, connect int) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(notation), "/")

	var grid [][]mcts.Player
	for r, row := range rows {
		var cells []mcts.Player
		for i := 0; i < len(row); i++ {
			switch v := row[i]; {
			case v == 'x':
				cells = append(cells, mcts.Player1)
			case v == 'o':
				cells = append(cells, mcts.Player2)
			case '1' <= v && v <= '9':
				j := i
				for j < len(row) && '0' <= row[j] && row[j] <= '9' {
					j++
				}
				n, err := strconv.Atoi(row[i:j])
				if err != nil || n > maxNotationColumns-len(cells) || (r > 0 && n > len(grid[0])-len(cells)) {
					return nil, fmt.Errorf("%w: run %q in row %d doesn't fit the board", ErrInvalidNotation, row[i:j], r+1)
				}
				cells = append(cells, make([]mcts.Player, n)...)
				i = j - 1
			default:
				return nil, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidNotation, v, r+1)
			}
		}

		if r > 0 && len(cells) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidNotation, r+1, len(cells), len(grid[0]))
		}
		grid = append(grid, cells)
	}

	b, err := NewBoard(len(grid[0]), len(grid), connect)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotation, err)
	}

	var discs [3]int
	for i, cells := range grid {
		row := b.rows - 1 - i
		for col, disc := range cells {
			b.cells[row*b.cols+col] = disc
			discs[disc]++
		}
	}

	// Discs must lie on top of each other
	for col := range b.cols {
		for row := range b.rows {
			if b.At(col, row) == mcts.NoPlayer {
				continue
			}
			if b.heights[col] != row {
				return nil, fmt.Errorf("%w: floating disc in column %d", ErrInvalidNotation, col+1)
			}
			b.heights[col]++
		}
	}

	switch discs[mcts.Player1] - discs[mcts.Player2] {
	case 0:
		b.justMoved = mcts.Player2
	case 1:
		b.justMoved = mcts.Player1
	default:
		return nil, fmt.Errorf("%w: %d x and %d o discs", ErrInvalidNotation, discs[mcts.Player1], discs[mcts.Player2])
	}

	if err := b.findWinner(); err != nil {
		return nil, err
	}
	return b, nil
}

// Scan the whole board for a completed line
func (b *Board) findWinner() error {
	b.winner = mcts.NoPlayer
	for row := range b.rows {
		for col := range b.cols {
			disc := b.At(col, row)
			if disc == mcts.NoPlayer || b.lineThrough(col, row) < b.connect {
				continue
			}
			if b.winner != mcts.NoPlayer && b.winner != disc {
				return fmt.Errorf("%w: both players have a line", ErrInvalidNotation)
			}
			b.winner = disc
		}
	}

	if b.winner != mcts.NoPlayer && b.winner != b.justMoved {
		return fmt.Errorf("%w: %v has a line, but %v moved last", ErrInvalidNotation, b.winner, b.justMoved)
	}
	return nil
}
