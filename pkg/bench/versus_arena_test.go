package bench

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/IlikeChooros/go-uct/pkg/games/ttt"
	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	mcts.SetSeedGeneratorFn(func() uint64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", mcts.SeedGeneratorFn())
	os.Exit(m.Run())
}

func newTicTacToe() mcts.State[ttt.PosType] {
	return ttt.NewPosition()
}

type countingListener struct {
	mu       sync.Mutex
	started  int
	moves    int
	finished []GameInfo[ttt.PosType]
}

func (c *countingListener) OnGameStart(GameInfo[ttt.PosType]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
}

func (c *countingListener) OnMoveMade(GameInfo[ttt.PosType]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moves++
}

func (c *countingListener) OnFinishedGame(info GameInfo[ttt.PosType]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finished = append(c.finished, info)
}

func TestVersusArena(t *testing.T) {
	listener := &countingListener{}
	progress := &bytes.Buffer{}

	arena := NewVersusArena(newTicTacToe,
		Agent{Name: "a", Options: []mcts.Option{mcts.WithIterations(200)}},
		Agent{Name: "b", Options: []mcts.Option{mcts.WithIterations(200), mcts.WithBestChildPolicy(mcts.BestChildMostVisits)}},
	).Setup(6, 3)
	arena.Seed = 1
	arena.AddListener(listener).AddListener(NewProgressListener[ttt.PosType](progress, termenv.WithProfile(termenv.Ascii)))

	summary, err := arena.Start(context.Background())
	require.NoError(t, err)

	require.Equal(t, 6, summary.TotalGames)
	require.Equal(t, 6, summary.P1Wins+summary.P2Wins+summary.Draws)
	require.Equal(t, 6, summary.FirstToMoveWins+summary.SecondToMoveWins+summary.Draws)
	require.Equal(t, "a", summary.P1Name)
	require.Equal(t, 3, summary.Workers)
	require.GreaterOrEqual(t, summary.MeanLength, 5.0)
	require.LessOrEqual(t, summary.MeanLength, 9.0)
	require.GreaterOrEqual(t, summary.P1Score, 0.0)
	require.LessOrEqual(t, summary.P1Score, 1.0)

	require.Equal(t, 6, listener.started)
	require.Len(t, listener.finished, 6)
	moves, p1First := 0, 0
	for _, info := range listener.finished {
		moves += len(info.Moves)
		if info.P1First {
			p1First++
		}
	}
	require.Equal(t, moves, listener.moves)
	require.Equal(t, 3, p1First)
	require.Equal(t, 6, strings.Count(progress.String(), "\n"))
}

func TestVersusArenaStrongerWins(t *testing.T) {
	arena := NewVersusArena(newTicTacToe,
		Agent{Name: "strong", Options: []mcts.Option{mcts.WithIterations(2000)}},
		Agent{Name: "weak", Options: []mcts.Option{mcts.WithIterations(4)}},
	).Setup(10, 4)
	arena.Seed = 7

	summary, err := arena.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, summary.TotalGames)
	require.Greater(t, summary.P1Score, 0.5, "summary: %+v", summary)
	require.Greater(t, summary.P1Wins, summary.P2Wins)
}

func TestVersusArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(newTicTacToe,
		Agent{Name: "a", Options: []mcts.Option{mcts.WithIterations(100)}},
		Agent{Name: "b", Options: []mcts.Option{mcts.WithIterations(100)}},
	).Setup(4, 2)

	summary, err := arena.Start(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, summary.TotalGames)
}

func TestToAgentResult(t *testing.T) {
	require.Equal(t, VersusDraw, toAgentResult(GameOutcome{IsDraw: true}, true))
	require.Equal(t, VersusPl1Win, toAgentResult(GameOutcome{FirstPlayerWon: true}, true))
	require.Equal(t, VersusPl2Win, toAgentResult(GameOutcome{FirstPlayerWon: true}, false))
	require.Equal(t, VersusPl1Win, toAgentResult(GameOutcome{FirstPlayerWon: false}, false))
	require.Equal(t, VersusPl2Win, toAgentResult(GameOutcome{FirstPlayerWon: false}, true))
}

func TestComputeOutcome(t *testing.T) {
	won, err := ttt.FromNotation("xxx/oo1/3 o")
	require.NoError(t, err)
	require.Equal(t, GameOutcome{FirstPlayerWon: true}, computeOutcome[ttt.PosType](won))

	lost, err := ttt.FromNotation("x2/ooo/xx1 x")
	require.NoError(t, err)
	require.Equal(t, GameOutcome{FirstPlayerWon: false}, computeOutcome[ttt.PosType](lost))

	draw, err := ttt.FromNotation("xox/xoo/oxx o")
	require.NoError(t, err)
	require.Equal(t, GameOutcome{IsDraw: true}, computeOutcome[ttt.PosType](draw))

	require.Panics(t, func() { computeOutcome[ttt.PosType](ttt.NewPosition()) })
}
