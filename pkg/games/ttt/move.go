package ttt

import "fmt"

// Enum for the squares, rows from the top
const (
	A3 PosType = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

const (
	PosIllegal PosType = 255
)

// Square name, like 'b2'
func (p PosType) String() string {
	if p > C1 {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+p%3, 3-p/3)
}

// Parse square name, like 'b2' or 'A3'
func ParseMove(s string) (PosType, error) {
	if len(s) != 2 {
		return PosIllegal, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}

	file := s[0] | 0x20 // lowercase
	rank := s[1]
	if file < 'a' || file > 'c' || rank < '1' || rank > '3' {
		return PosIllegal, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	return PosType(('3'-rank)*3 + (file - 'a')), nil
}

type MoveList struct {
	Moves [9]PosType
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv PosType) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml *MoveList) Slice() []PosType {
	return ml.Moves[:ml.Size]
}
