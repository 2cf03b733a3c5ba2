package mcts

// Game position as seen by the search. The engine never touches the caller's
// instance, every iteration works on a clone.
type State[T MoveLike] interface {
	// The player who produced this position, alternates strictly with every
	// applied move. In the initial position it's the side that doesn't move first.
	PlayerJustMoved() Player

	// All legal moves, empty if and only if the game is over.
	// The engine copies the slice, so it may be reused by the implementation
	LegalMoves() []T

	// Play the move in place, the move must be legal
	ApplyMove(T)

	// Deep copy, sharing no mutable memory with the receiver
	Clone() State[T]

	// Outcome of a finished game from given player's perspective,
	// only defined on terminal positions
	Result(Player) Result
}
