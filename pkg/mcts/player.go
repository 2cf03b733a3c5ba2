package mcts

// One of the two sides of a game, NoPlayer is used for 'nobody' (for example
// the winner of a drawn game)
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Get the other side, NoPlayer stays NoPlayer
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}
