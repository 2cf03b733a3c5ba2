package connect4

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
)

var (
	ErrIllegalMove     = errors.New("connect4: illegal move")
	ErrInvalidNotation = errors.New("connect4: invalid notation")
	ErrInvalidSize     = errors.New("connect4: invalid board size")
)

const (
	DefaultColumns = 7
	DefaultRows    = 6
	DefaultConnect = 4
)

// Column index, 0 is the leftmost one
type Move int

// Gravity board of any size, discs drop to the lowest empty cell of the column.
// A line of 'connect' discs of one player ends the game.
type Board struct {
	cols, rows, connect int

	// row-major, row 0 is the bottom one
	cells     []mcts.Player
	heights   []int
	history   []Move
	justMoved mcts.Player
	winner    mcts.Player
}

// Standard 7x6 board, 4 in a row
func New() *Board {
	b, _ := NewBoard(DefaultColumns, DefaultRows, DefaultConnect)
	return b
}

func NewBoard(cols, rows, connect int) (*Board, error) {
	if cols < 1 || rows < 1 || connect < 2 || (connect > cols && connect > rows) {
		return nil, fmt.Errorf("%w: %dx%d connect %d", ErrInvalidSize, cols, rows, connect)
	}

	return &Board{
		cols:      cols,
		rows:      rows,
		connect:   connect,
		cells:     make([]mcts.Player, cols*rows),
		heights:   make([]int, cols),
		history:   make([]Move, 0, cols*rows),
		justMoved: mcts.Player2,
	}, nil
}

func (b *Board) Columns() int { return b.cols }
func (b *Board) Rows() int    { return b.rows }
func (b *Board) Connect() int { return b.connect }

// Disc at given cell, row 0 is the bottom one
func (b *Board) At(col, row int) mcts.Player {
	return b.cells[row*b.cols+col]
}

// Player who completed a line, NoPlayer if nobody did (yet)
func (b *Board) Winner() mcts.Player {
	return b.winner
}

// Side to move
func (b *Board) Turn() mcts.Player {
	return b.justMoved.Opponent()
}

// Number of discs on the board
func (b *Board) Discs() int {
	return len(b.history)
}

// Last dropped column, -1 if none since the loaded position
func (b *Board) LastMove() Move {
	if len(b.history) == 0 {
		return -1
	}
	return b.history[len(b.history)-1]
}

func (b *Board) Full() bool {
	for _, h := range b.heights {
		if h < b.rows {
			return false
		}
	}
	return true
}

func (b *Board) IsTerminated() bool {
	return b.winner != mcts.NoPlayer || b.Full()
}

// Whether a disc can be dropped into the column
func (b *Board) CanPlay(col Move) bool {
	return b.winner == mcts.NoPlayer && col >= 0 && int(col) < b.cols && b.heights[col] < b.rows
}

// Drop a disc of the side to move, without any checks
func (b *Board) MakeMove(col Move) {
	mover := b.justMoved.Opponent()
	row := b.heights[col]
	b.cells[row*b.cols+int(col)] = mover
	b.heights[col]++
	b.justMoved = mover
	b.history = append(b.history, col)

	if b.lineThrough(int(col), row) >= b.connect {
		b.winner = mover
	}
}

// Drop a disc, if the move is legal
func (b *Board) Play(col Move) error {
	if !b.CanPlay(col) {
		return fmt.Errorf("%w: column %d", ErrIllegalMove, col)
	}
	b.MakeMove(col)
	return nil
}

// Take back the last drop, does nothing on the loaded position
func (b *Board) UndoMove() {
	if len(b.history) == 0 {
		return
	}

	col := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.heights[col]--
	b.cells[b.heights[col]*b.cols+int(col)] = mcts.NoPlayer
	b.justMoved = b.justMoved.Opponent()
	b.winner = mcts.NoPlayer
}

// horizontal, vertical and both diagonals
var _directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Length of the longest line of equal discs going through given cell
func (b *Board) lineThrough(col, row int) int {
	player := b.At(col, row)
	longest := 0
	for _, d := range _directions {
		length := 1 + b.count(col, row, d[0], d[1], player) + b.count(col, row, -d[0], -d[1], player)
		longest = max(longest, length)
	}
	return longest
}

func (b *Board) count(col, row, dc, dr int, player mcts.Player) int {
	n := 0
	for c, r := col+dc, row+dr; c >= 0 && c < b.cols && r >= 0 && r < b.rows; c, r = c+dc, r+dr {
		if b.At(c, r) != player {
			break
		}
		n++
	}
	return n
}

// Deep copy of the board
func (b *Board) Copy() *Board {
	clone := *b
	clone.cells = append(make([]mcts.Player, 0, len(b.cells)), b.cells...)
	clone.heights = append(make([]int, 0, len(b.heights)), b.heights...)
	clone.history = append(make([]Move, 0, cap(b.history)), b.history...)
	return &clone
}

// Board as text rows from the top, '.' for empty cells
func (b *Board) String() string {
	builder := strings.Builder{}
	for row := b.rows - 1; row >= 0; row-- {
		for col := range b.cols {
			builder.WriteByte(discChar(b.At(col, row), '.'))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func discChar(p mcts.Player, empty byte) byte {
	switch p {
	case mcts.Player1:
		return 'x'
	case mcts.Player2:
		return 'o'
	}
	return empty
}
