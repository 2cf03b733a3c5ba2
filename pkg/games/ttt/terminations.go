package ttt

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCircleWon:
		return "o won"
	case TerminationCrossWon:
		return "x won"
	case TerminationDraw:
		return "draw"
	}
	return "none"
}

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns [8]uint = [...]uint{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Get the termination reason, evaluated if needed
func (p *Position) Termination() Termination {
	p.IsTerminated()
	return p.termination
}

// Check if the game is over
func (p *Position) IsTerminated() bool {
	if p.termination != TerminationNone {
		return true
	}

	// Evaluate termination
	p.CheckTerminationPattern()
	return p.termination != TerminationNone
}

// Side owning a full line, None on a draw or unfinished game
func (p *Position) Winner() PlayerType {
	p.IsTerminated()
	switch p.termination {
	case TerminationCrossWon:
		return Cross
	case TerminationCircleWon:
		return Circle
	}
	return None
}

// Evaluate the termination flag from the bitboards
func (p *Position) CheckTerminationPattern() {
	crossbb := uint(p.bitboards[_bitboardCrossIdx])
	circlebb := uint(p.bitboards[_bitboardCircleIdx])

	// See if there is any winning pattern
	for i := range 8 {
		if crossbb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			p.termination = TerminationCrossWon
			return
		}
		if circlebb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			p.termination = TerminationCircleWon
			return
		}
	}

	// If not, check if that's a draw (board is fully filled)
	if (crossbb | circlebb) == _fullBoard {
		p.termination = TerminationDraw
	} else {
		p.termination = TerminationNone
	}
}
