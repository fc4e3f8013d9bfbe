// Package machine implements a multi-head 2D Turing machine over a toroidal
// grid: a transition table keyed by (head state, symbol under head), and a
// fixed-order set of heads that read and rewrite the shared grid.
package machine

import (
	"errors"
	"fmt"

	"turing/internal/core"
)

// Machine owns the grid, the transition table, and the heads. All mutation
// happens through Step on a single goroutine; heads are stepped in creation
// order so identical inputs always produce identical grids.
type Machine struct {
	grid    *core.Grid
	table   *Table
	heads   []Head
	initial []Head
	rng     *core.RNG
}

// New validates the head set against the table and assembles a machine. The
// rng is used only by Reseed and may be nil for fully deterministic runs.
func New(grid *core.Grid, table *Table, heads []Head, rng *core.RNG) (*Machine, error) {
	if grid == nil || table == nil {
		return nil, errors.New("machine needs a grid and a table")
	}
	if len(heads) == 0 {
		return nil, errors.New("machine needs at least one head")
	}
	normalized := make([]Head, len(heads))
	for i, h := range heads {
		if int(h.State) >= table.States() {
			return nil, fmt.Errorf("head %d starts in unknown state %d", i, h.State)
		}
		h.X, h.Y = grid.Wrap(h.X, h.Y)
		if !h.Facing.Compass() {
			h.Facing = East
		}
		h.Status = Active
		normalized[i] = h
	}
	m := &Machine{
		grid:    grid,
		table:   table,
		heads:   normalized,
		initial: append([]Head(nil), normalized...),
		rng:     rng,
	}
	return m, nil
}

// Grid returns the machine's grid.
func (m *Machine) Grid() *core.Grid { return m.grid }

// Table returns the current transition table.
func (m *Machine) Table() *Table { return m.table }

// Heads returns a copy of the head records, in stepping order.
func (m *Machine) Heads() []Head {
	return append([]Head(nil), m.heads...)
}

// LiveHeads counts heads that have not halted.
func (m *Machine) LiveHeads() int {
	n := 0
	for _, h := range m.heads {
		if h.Status == Active {
			n++
		}
	}
	return n
}

// AllHalted reports whether every head has halted.
func (m *Machine) AllHalted() bool { return m.LiveHeads() == 0 }

// Step advances every live head by one transition, in creation order, and
// reports whether any cell changed value. A head whose (state, symbol) key
// has no rule halts in place; the others keep stepping.
func (m *Machine) Step() bool {
	changed := false
	for i := range m.heads {
		if m.heads[i].Status != Active {
			continue
		}
		if m.stepHead(&m.heads[i]) {
			changed = true
		}
	}
	return changed
}

// stepHead runs the read-lookup-write-move-transition cycle for one head.
func (m *Machine) stepHead(h *Head) bool {
	sym := m.grid.At(h.X, h.Y)
	rule, err := m.table.Lookup(h.State, sym)
	if err != nil {
		h.Status = Halted
		return false
	}
	m.grid.Set(h.X, h.Y, rule.Write)

	switch {
	case rule.Move == Stay:
	case rule.Move.Compass():
		h.Facing = rule.Move
		dx, dy := h.Facing.delta()
		h.X, h.Y = m.grid.Wrap(h.X+dx, h.Y+dy)
	default:
		switch rule.Move {
		case TurnLeft:
			h.Facing = rotate(h.Facing, -1)
		case TurnRight:
			h.Facing = rotate(h.Facing, 1)
		case Reverse:
			h.Facing = rotate(h.Facing, 2)
		}
		dx, dy := h.Facing.delta()
		h.X, h.Y = m.grid.Wrap(h.X+dx, h.Y+dy)
	}

	h.State = rule.Next
	return rule.Write != sym
}

// Reseed replaces the table with a fresh random one over the same alphabets,
// clears the grid, and restores the initial head records. It is how the
// screensaver escapes stagnant patterns; machines built without an rng
// cannot reseed.
func (m *Machine) Reseed() error {
	if m.rng == nil {
		return errors.New("machine has no rng to reseed from")
	}
	table, err := Random(m.rng, m.table.States(), m.table.Symbols())
	if err != nil {
		return err
	}
	m.table = table
	m.grid.Clear()
	copy(m.heads, m.initial)
	return nil
}
