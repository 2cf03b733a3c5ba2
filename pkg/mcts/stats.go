package mcts

import "fmt"

// Visit count and accumulated outcomes of a node. Wins are counted from the
// perspective of the node's player (the one who just moved into it), draws count as 0.5
type NodeStats struct {
	Visits int32
	Wins   Result
}

// Get number of visits to this node
func (stats *NodeStats) N() int32 {
	return stats.Visits
}

// Cumulated outcomes for this node
func (stats *NodeStats) Q() Result {
	return stats.Wins
}

// Average outcome for this node, panics if the node wasn't visited
func (stats *NodeStats) AvgQ() Result {
	if stats.Visits == 0 {
		panic(ErrZeroVisits)
	}
	return stats.Wins / Result(stats.Visits)
}

// Register single game outcome
func (stats *NodeStats) Add(result Result) {
	stats.Visits++
	stats.Wins += result
}

func (stats NodeStats) String() string {
	return fmt.Sprintf("%.1f/%d", float64(stats.Wins), stats.Visits)
}
