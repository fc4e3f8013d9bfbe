package machine

import (
	"errors"
	"fmt"

	"turing/internal/core"
)

// ErrInvalidTable is returned when a table specification is malformed:
// duplicate keys, or rules referencing states or symbols outside the
// declared alphabets.
var ErrInvalidTable = errors.New("invalid transition table")

// ErrUndefinedTransition is returned by Lookup when the automaton is partial
// and no rule covers the requested key. The machine halts the head that hit
// it; the error never propagates further.
var ErrUndefinedTransition = errors.New("undefined transition")

// Entry keys a single rule for table construction.
type Entry struct {
	State  State
	Symbol core.Symbol
	Rule   Rule
}

// Table is the automaton's immutable rule set, keyed by (state, symbol).
// Tables may be partial; a missing key halts the head that queries it.
type Table struct {
	states  int
	symbols int
	rules   []Rule
	defined []bool
}

// NewTable builds a table over the given alphabets from explicit entries.
func NewTable(states, symbols int, entries []Entry) (*Table, error) {
	if states < 1 || states > 256 {
		return nil, fmt.Errorf("%w: state count %d out of range", ErrInvalidTable, states)
	}
	if symbols < 1 || symbols > 256 {
		return nil, fmt.Errorf("%w: symbol count %d out of range", ErrInvalidTable, symbols)
	}
	t := &Table{
		states:  states,
		symbols: symbols,
		rules:   make([]Rule, states*symbols),
		defined: make([]bool, states*symbols),
	}
	for _, e := range entries {
		if int(e.State) >= states {
			return nil, fmt.Errorf("%w: rule keyed by unknown state %d", ErrInvalidTable, e.State)
		}
		if int(e.Symbol) >= symbols {
			return nil, fmt.Errorf("%w: rule keyed by unknown symbol %d", ErrInvalidTable, e.Symbol)
		}
		if int(e.Rule.Next) >= states {
			return nil, fmt.Errorf("%w: rule (%d,%d) references unknown state %d", ErrInvalidTable, e.State, e.Symbol, e.Rule.Next)
		}
		if int(e.Rule.Write) >= symbols {
			return nil, fmt.Errorf("%w: rule (%d,%d) writes unknown symbol %d", ErrInvalidTable, e.State, e.Symbol, e.Rule.Write)
		}
		idx := t.index(e.State, e.Symbol)
		if t.defined[idx] {
			return nil, fmt.Errorf("%w: duplicate rule for (%d,%d)", ErrInvalidTable, e.State, e.Symbol)
		}
		t.rules[idx] = e.Rule
		t.defined[idx] = true
	}
	return t, nil
}

// Random builds a total table with uniformly random outcomes, in the manner
// of the original screensaver: every key gets a rule, and the move is always
// one of the four compass directions so the head keeps wandering.
func Random(rng *core.RNG, states, symbols int) (*Table, error) {
	if states < 1 || states > 256 || symbols < 1 || symbols > 256 {
		return nil, fmt.Errorf("%w: alphabet %dx%d out of range", ErrInvalidTable, states, symbols)
	}
	t := &Table{
		states:  states,
		symbols: symbols,
		rules:   make([]Rule, states*symbols),
		defined: make([]bool, states*symbols),
	}
	for i := range t.rules {
		t.rules[i] = Rule{
			Write: core.Symbol(rng.IntN(symbols)),
			Move:  North + Move(rng.IntN(4)),
			Next:  State(rng.IntN(states)),
		}
		t.defined[i] = true
	}
	return t, nil
}

func (t *Table) index(s State, sym core.Symbol) int {
	return int(s)*t.symbols + int(sym)
}

// States returns the size of the state alphabet.
func (t *Table) States() int { return t.states }

// Symbols returns the size of the symbol alphabet.
func (t *Table) Symbols() int { return t.symbols }

// Defined reports whether a rule exists for (state, symbol).
func (t *Table) Defined(s State, sym core.Symbol) bool {
	if int(s) >= t.states || int(sym) >= t.symbols {
		return false
	}
	return t.defined[t.index(s, sym)]
}

// Lookup returns the rule for (state, symbol), or ErrUndefinedTransition if
// the automaton has no rule for that key.
func (t *Table) Lookup(s State, sym core.Symbol) (Rule, error) {
	if !t.Defined(s, sym) {
		return Rule{}, fmt.Errorf("%w: (%d,%d)", ErrUndefinedTransition, s, sym)
	}
	return t.rules[t.index(s, sym)], nil
}
