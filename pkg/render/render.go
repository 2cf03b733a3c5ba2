// Package render prints game boards and search statistics to a terminal,
// colors are dropped when the output doesn't support them.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-uct/pkg/games/connect4"
	"github.com/IlikeChooros/go-uct/pkg/games/ttt"
	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/muesli/termenv"
)

const (
	colorPlayer1 = "#e05d5d"
	colorPlayer2 = "#5d9ee0"
	colorMuted   = "#808080"
)

type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) Output() *termenv.Output {
	return r.out
}

// Styled disc or piece of given player, highlighted if it was the last move
func (r *Renderer) piece(p mcts.Player, last bool) string {
	var style termenv.Style
	switch p {
	case mcts.Player1:
		style = r.out.String("x").Foreground(r.out.Color(colorPlayer1))
	case mcts.Player2:
		style = r.out.String("o").Foreground(r.out.Color(colorPlayer2))
	default:
		return " "
	}

	if last {
		style = style.Bold().Underline()
	}
	return style.String()
}

func (r *Renderer) muted(s string) string {
	return r.out.String(s).Foreground(r.out.Color(colorMuted)).String()
}

func tttPlayer(p ttt.PlayerType) mcts.Player {
	switch p {
	case ttt.Cross:
		return mcts.Player1
	case ttt.Circle:
		return mcts.Player2
	}
	return mcts.NoPlayer
}

// Print the tic tac toe board, with square names on the sides
func (r *Renderer) TicTacToe(pos *ttt.Position) error {
	builder := strings.Builder{}
	builder.WriteString(r.muted("  a   b   c") + "\n")

	for row := range 3 {
		builder.WriteString(r.muted(fmt.Sprintf("%d ", 3-row)))
		for col := range 3 {
			sq := ttt.PosType(row*3 + col)
			builder.WriteString(r.piece(tttPlayer(pos.At(sq)), sq == pos.LastMove()))
			if col != 2 {
				builder.WriteString(r.muted(" | "))
			}
		}
		builder.WriteByte('\n')
		if row != 2 {
			builder.WriteString(r.muted("  --+---+--") + "\n")
		}
	}

	_, err := io.WriteString(r.out, builder.String())
	return err
}

// Print the connect four board, with column numbers at the bottom
func (r *Renderer) ConnectFour(b *connect4.Board) error {
	builder := strings.Builder{}
	last := b.LastMove()

	for row := b.Rows() - 1; row >= 0; row-- {
		builder.WriteString(r.muted("|"))
		for col := range b.Columns() {
			p := b.At(col, row)
			if p == mcts.NoPlayer {
				builder.WriteString(r.muted(" ."))
				continue
			}
			// top disc of the last played column
			isLast := int(last) == col && (row == b.Rows()-1 || b.At(col, row+1) == mcts.NoPlayer)
			builder.WriteByte(' ')
			builder.WriteString(r.piece(p, isLast))
		}
		builder.WriteString(r.muted(" |") + "\n")
	}

	footer := strings.Builder{}
	footer.WriteByte(' ')
	for col := range b.Columns() {
		footer.WriteString(fmt.Sprintf(" %d", col%10))
	}
	builder.WriteString(r.muted(footer.String()) + "\n")

	_, err := io.WriteString(r.out, builder.String())
	return err
}

// Print a table of root children statistics, the best move is highlighted
func RootStats[T mcts.MoveLike](r *Renderer, stats []mcts.ChildStats[T], best T) error {
	builder := strings.Builder{}
	builder.WriteString(r.muted(fmt.Sprintf("%-6s %8s %8s %8s %8s", "move", "visits", "winrate", "lower", "upper")) + "\n")

	for _, s := range stats {
		line := fmt.Sprintf("%-6v %8d %8.3f %8.3f %8.3f", s.Move, s.Visits, s.WinRate, s.Lower, s.Upper)
		if s.Move == best {
			line = r.out.String(line).Bold().String()
		}
		builder.WriteString(line + "\n")
	}

	_, err := io.WriteString(r.out, builder.String())
	return err
}

// Single line search progress, meant for listener callbacks
func Progress[T mcts.MoveLike](r *Renderer, stats mcts.ListenerTreeStats[T]) error {
	_, err := fmt.Fprintf(r.out, "cycles %d  depth %d  cps %d  eval %.3f  pv %v\n",
		stats.Cycles, stats.Maxdepth, stats.Cps, stats.Eval, stats.Line)
	return err
}
