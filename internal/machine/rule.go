package machine

import (
	"fmt"

	"turing/internal/core"
)

// State identifies one of the automaton's finitely many head states.
type State uint8

// Move is the action a rule applies to the head after writing its symbol.
// Compass moves translate one cell and set the head's orientation; Forward
// translates along the current orientation; TurnLeft, TurnRight and Reverse
// rotate the orientation first and then translate. Stay holds position and
// orientation.
type Move uint8

const (
	Stay Move = iota
	North
	East
	South
	West
	Forward
	TurnLeft
	TurnRight
	Reverse
)

var moveNames = map[Move]string{
	Stay:      "stay",
	North:     "north",
	East:      "east",
	South:     "south",
	West:      "west",
	Forward:   "forward",
	TurnLeft:  "left",
	TurnRight: "right",
	Reverse:   "reverse",
}

// String returns the lower-case name used in table files.
func (m Move) String() string {
	if s, ok := moveNames[m]; ok {
		return s
	}
	return fmt.Sprintf("move(%d)", uint8(m))
}

// ParseMove converts a table-file token into a Move.
func ParseMove(s string) (Move, error) {
	for m, name := range moveNames {
		if s == name {
			return m, nil
		}
	}
	return Stay, fmt.Errorf("unknown move %q", s)
}

// Compass reports whether the move is an absolute compass direction.
func (m Move) Compass() bool { return m >= North && m <= West }

// delta returns the translation of a compass move.
func (m Move) delta() (int, int) {
	switch m {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// rotate turns a compass orientation by quarter turns clockwise.
func rotate(facing Move, quarters int) Move {
	idx := (int(facing-North) + quarters) % 4
	return North + Move((idx+4)%4)
}

// Rule is the outcome of one transition: the symbol to write under the head,
// the move to apply, and the next head state.
type Rule struct {
	Write core.Symbol
	Move  Move
	Next  State
}
