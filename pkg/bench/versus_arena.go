package bench

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

/*
Arena benchmark subpackage, allows to play a series of games between two
different engine configurations.
*/

// Engine configuration taking part in the arena
type Agent struct {
	Name    string
	Options []mcts.Option
}

func (a Agent) String() string {
	return a.Name
}

func newEngine[T mcts.MoveLike](agent Agent, seed uint64) *mcts.Engine[T] {
	options := append(slices.Clone(agent.Options), mcts.WithSeed(seed))
	return mcts.NewEngine[T](options...)
}

type gameRecord struct {
	finished bool
	result   VersusMatchResult
	length   int
}

type VersusArena[T mcts.MoveLike] struct {
	VersusArenaStats
	Player1 Agent
	Player2 Agent
	// Creates the starting position of every game
	NewGame func() mcts.State[T]
	NGames  int
	// Number of games played at once
	Workers int
	// Game 'i' uses seeds Seed+2i and Seed+2i+1 for the engines
	Seed     uint64
	listener *ArenaListener[T]
}

func NewVersusArena[T mcts.MoveLike](newGame func() mcts.State[T], player1, player2 Agent) *VersusArena[T] {
	return &VersusArena[T]{
		Player1:  player1,
		Player2:  player2,
		NewGame:  newGame,
		NGames:   100,
		Workers:  runtime.NumCPU(),
		Seed:     mcts.SeedGeneratorFn(),
		listener: NewArenaListener[T](),
	}
}

func (va *VersusArena[T]) Setup(nGames, workers int) *VersusArena[T] {
	va.NGames = nGames
	va.Workers = max(1, workers)
	return va
}

func (va *VersusArena[T]) AddListener(listener ListenerLike[T]) *VersusArena[T] {
	va.listener.Add(listener)
	return va
}

// Play all games, blocks until they are finished or the context is done.
// Players alternate the first move, game 'i' is started by Player1 if 'i' is even.
// Returns the summary of the finished games and the first error, if any.
func (va *VersusArena[T]) Start(ctx context.Context) (VersusSummaryInfo, error) {
	log.Info().Msgf("Starting arena: %s vs %s, %d games, %d workers", va.Player1, va.Player2, va.NGames, va.Workers)

	records := make([]gameRecord, va.NGames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, va.Workers))

	for i := range va.NGames {
		g.Go(func() error {
			record, err := va.playGame(ctx, i)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	err := g.Wait()
	summary := va.summary(records)
	if err != nil {
		log.Warn().Err(err).Msgf("Arena stopped after %d games", summary.TotalGames)
	} else {
		log.Info().Msgf("Arena finished: %s %d, %s %d, draws %d", va.Player1, summary.P1Wins, va.Player2, summary.P2Wins, summary.Draws)
	}
	return summary, err
}

func (va *VersusArena[T]) playGame(ctx context.Context, game int) (gameRecord, error) {
	p1First := game%2 == 0
	first, second := va.Player1, va.Player2
	if !p1First {
		first, second = second, first
	}

	// engines[0] moves as mcts.Player1
	seed := va.Seed + 2*uint64(game)
	engines := [2]*mcts.Engine[T]{newEngine[T](first, seed), newEngine[T](second, seed+1)}

	info := GameInfo[T]{
		Game:    game,
		NGames:  va.NGames,
		P1Name:  va.Player1.Name,
		P2Name:  va.Player2.Name,
		P1First: p1First,
		Moves:   make([]T, 0, 16),
	}
	va.listener.OnGameStart(info)

	state := va.NewGame()
	for len(state.LegalMoves()) > 0 {
		if err := ctx.Err(); err != nil {
			return gameRecord{}, err
		}

		engine := engines[0]
		if state.PlayerJustMoved() == mcts.Player1 {
			engine = engines[1]
		}

		move, err := engine.Search(ctx, state)
		if err != nil {
			return gameRecord{}, fmt.Errorf("game %d, move %d: %w", game, len(info.Moves)+1, err)
		}

		state.ApplyMove(move)
		info.Moves = append(info.Moves, move)
		va.listener.OnMoveMade(info)
	}

	outcome := computeOutcome(state)
	info.Result = toAgentResult(outcome, p1First)
	va.register(info.Result, outcome)
	info.FinishedGames = va.Total()
	va.listener.OnFinishedGame(info)

	return gameRecord{finished: true, result: info.Result, length: len(info.Moves)}, nil
}

func (va *VersusArena[T]) summary(records []gameRecord) VersusSummaryInfo {
	scores := make([]float64, 0, len(records))
	lengths := make([]float64, 0, len(records))
	for _, r := range records {
		if r.finished {
			scores = append(scores, r.result.Score())
			lengths = append(lengths, float64(r.length))
		}
	}

	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.Workers,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}

	switch n := len(scores); {
	case n == 1:
		summary.P1Score = scores[0]
		summary.MeanLength = lengths[0]
	case n > 1:
		var std float64
		summary.P1Score, std = stat.MeanStdDev(scores, nil)
		summary.P1ScoreStdErr = stat.StdErr(std, float64(n))
		summary.MeanLength, summary.StdDevLength = stat.MeanStdDev(lengths, nil)
	}

	if math.IsNaN(summary.P1ScoreStdErr) {
		summary.P1ScoreStdErr = 0
	}
	return summary
}
