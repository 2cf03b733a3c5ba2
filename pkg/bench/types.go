package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1 wins"
	case VersusPl2Win:
		return "player2 wins"
	}
	return "draw"
}

// Score of the arena's Player1 agent
func (r VersusMatchResult) Score() float64 {
	switch r {
	case VersusPl1Win:
		return 1
	case VersusPl2Win:
		return 0
	}
	return 0.5
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) register(result VersusMatchResult, outcome GameOutcome) {
	switch result {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}

	if !outcome.IsDraw {
		if outcome.FirstPlayerWon {
			atomic.AddUint32(&vas.firstToMoveWins, 1)
		} else {
			atomic.AddUint32(&vas.secondToMoveWins, 1)
		}
	}
}

// Progress of a single arena game, passed to the listeners
type GameInfo[T mcts.MoveLike] struct {
	Game          int
	NGames        int
	FinishedGames int
	Moves         []T
	P1Name        string
	P2Name        string
	// Whether the arena's Player1 agent made the first move
	P1First bool
	// Valid in OnFinishedGame
	Result VersusMatchResult
}

type VersusSummaryInfo struct {
	TotalGames       int     `json:"total_games"`
	P1Wins           int     `json:"player1_wins"`
	P2Wins           int     `json:"player2_wins"`
	FirstToMoveWins  int     `json:"first_to_move_wins"`
	SecondToMoveWins int     `json:"second_to_move_wins"`
	Draws            int     `json:"draws"`
	Workers          int     `json:"workers"`
	P1Name           string  `json:"player1_name"`
	P2Name           string  `json:"player2_name"`
	P1Score          float64 `json:"player1_score"`
	P1ScoreStdErr    float64 `json:"player1_score_stderr"`
	MeanLength       float64 `json:"mean_length"`
	StdDevLength     float64 `json:"stddev_length"`
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}

// determines the winner of a finished game, the first mover is always mcts.Player1
func computeOutcome[T mcts.MoveLike](state mcts.State[T]) GameOutcome {
	if len(state.LegalMoves()) != 0 {
		panic("computeOutcome: position not terminated")
	}

	switch state.Result(mcts.Player1) {
	case mcts.Win:
		return GameOutcome{FirstPlayerWon: true}
	case mcts.Loss:
		return GameOutcome{FirstPlayerWon: false}
	}
	return GameOutcome{IsDraw: true}
}
