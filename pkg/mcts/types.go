package mcts

// Other types, which didn't fit to the engine or tree files

// Result of a finished game, from a single player's perspective:
// 0 is a loss, 0.5 a draw and 1 a win
type Result float64

const (
	Loss Result = 0.0
	Draw Result = 0.5
	Win  Result = 1.0
)

type MoveLike comparable
type BestChildPolicy int
type SeedGeneratorFnType func() uint64

// Index of a node in the tree's arena, stable for the whole search
type NodeID int32

// Parent of the root, and the 'not found' value of the tree queries
const NoNode NodeID = -1

func (p BestChildPolicy) String() string {
	switch p {
	case BestChildWinRate:
		return "winrate"
	case BestChildMostVisits:
		return "visits"
	}
	return "unknown"
}
