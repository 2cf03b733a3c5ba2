package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/muesli/termenv"
)

// Distributes the arena callbacks between many listeners, one call at a time
type ArenaListener[T mcts.MoveLike] struct {
	mu        sync.Mutex
	listeners []ListenerLike[T]
}

func NewArenaListener[T mcts.MoveLike](listeners ...ListenerLike[T]) *ArenaListener[T] {
	return &ArenaListener[T]{listeners: listeners}
}

func (al *ArenaListener[T]) Add(listener ListenerLike[T]) {
	al.mu.Lock()
	defer al.mu.Unlock()
	al.listeners = append(al.listeners, listener)
}

func (al *ArenaListener[T]) OnGameStart(info GameInfo[T]) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnGameStart(info)
	}
}

func (al *ArenaListener[T]) OnMoveMade(info GameInfo[T]) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnMoveMade(info)
	}
}

func (al *ArenaListener[T]) OnFinishedGame(info GameInfo[T]) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

// Prints a line for every finished game
type ProgressListener[T mcts.MoveLike] struct {
	DefaultListener[T]
	out *termenv.Output
}

func NewProgressListener[T mcts.MoveLike](w io.Writer, opts ...termenv.OutputOption) *ProgressListener[T] {
	return &ProgressListener[T]{out: termenv.NewOutput(w, opts...)}
}

func (pl *ProgressListener[T]) OnFinishedGame(info GameInfo[T]) {
	first, second := info.P1Name, info.P2Name
	if !info.P1First {
		first, second = second, first
	}

	var result termenv.Style
	switch info.Result {
	case VersusPl1Win:
		result = pl.out.String(info.P1Name + " wins").Foreground(pl.out.Color("2"))
	case VersusPl2Win:
		result = pl.out.String(info.P2Name + " wins").Foreground(pl.out.Color("1"))
	default:
		result = pl.out.String("draw").Foreground(pl.out.Color("3"))
	}

	fmt.Fprintf(pl.out, "[%d/%d] %s vs %s: %s in %d moves\n",
		info.FinishedGames, info.NGames, first, second, result, len(info.Moves))
}
