package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// Status tags whether a head is still stepping. Halted heads stay in the
// machine's head list so iteration order never changes.
type Status uint8

const (
	Active Status = iota
	Halted
)

// Head is a lightweight cursor record: a position on the grid, a compass
// orientation, an automaton state, and a liveness tag. Heads never hold grid
// storage of their own; the machine steps them against its single grid.
type Head struct {
	X, Y   int
	Facing Move
	State  State
	Status Status
}

// NewHead constructs an active head. A facing that is not a compass
// direction falls back to East.
func NewHead(x, y int, facing Move, state State) Head {
	if !facing.Compass() {
		facing = East
	}
	return Head{X: x, Y: y, Facing: facing, State: state}
}

// ParseHeads parses a comma-separated list of head records of the form
// x:y:state[:facing], e.g. "0:0:0:east,256:256:1".
func ParseHeads(s string) ([]Head, error) {
	var heads []Head
	for _, spec := range strings.Split(s, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.Split(spec, ":")
		if len(parts) != 3 && len(parts) != 4 {
			return nil, fmt.Errorf("head %q: want x:y:state[:facing]", spec)
		}
		x, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("head %q: x: %v", spec, err)
		}
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("head %q: y: %v", spec, err)
		}
		state, err := strconv.Atoi(parts[2])
		if err != nil || state < 0 || state > 255 {
			return nil, fmt.Errorf("head %q: bad state %q", spec, parts[2])
		}
		facing := East
		if len(parts) == 4 {
			facing, err = ParseMove(parts[3])
			if err != nil {
				return nil, fmt.Errorf("head %q: %v", spec, err)
			}
			if !facing.Compass() {
				return nil, fmt.Errorf("head %q: facing must be a compass direction", spec)
			}
		}
		heads = append(heads, NewHead(x, y, facing, State(state)))
	}
	if len(heads) == 0 {
		return nil, fmt.Errorf("no heads in %q", s)
	}
	return heads, nil
}
