package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turing/internal/core"
)

func TestNewTableValidation(t *testing.T) {
	ok := Entry{State: 0, Symbol: 0, Rule: Rule{Write: 1, Move: East, Next: 1}}

	tests := []struct {
		name    string
		states  int
		symbols int
		entries []Entry
	}{
		{"duplicate key", 2, 2, []Entry{ok, ok}},
		{"unknown key state", 2, 2, []Entry{{State: 2, Symbol: 0}}},
		{"unknown key symbol", 2, 2, []Entry{{State: 0, Symbol: 2}}},
		{"unknown next state", 2, 2, []Entry{{State: 0, Symbol: 0, Rule: Rule{Next: 5}}}},
		{"unknown write symbol", 2, 2, []Entry{{State: 0, Symbol: 0, Rule: Rule{Write: 9}}}},
		{"zero states", 0, 2, nil},
		{"zero symbols", 2, 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.states, tc.symbols, tc.entries)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestLookupUndefined(t *testing.T) {
	table, err := NewTable(2, 2, []Entry{
		{State: 0, Symbol: 0, Rule: Rule{Write: 1, Move: East, Next: 1}},
	})
	require.NoError(t, err)

	rule, err := table.Lookup(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Rule{Write: 1, Move: East, Next: 1}, rule)

	_, err = table.Lookup(1, 1)
	assert.ErrorIs(t, err, ErrUndefinedTransition)
	assert.False(t, table.Defined(1, 1))
}

func TestRandomTableTotal(t *testing.T) {
	table, err := Random(core.NewRNG(42), 4, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, table.States())
	assert.Equal(t, 6, table.Symbols())

	for s := 0; s < 4; s++ {
		for sym := 0; sym < 6; sym++ {
			rule, err := table.Lookup(State(s), core.Symbol(sym))
			require.NoError(t, err)
			assert.True(t, rule.Move.Compass(), "random tables only use compass moves")
			assert.Less(t, int(rule.Next), 4)
			assert.Less(t, int(rule.Write), 6)
		}
	}
}

func TestRandomTableDeterministic(t *testing.T) {
	a, err := Random(core.NewRNG(7), 3, 5)
	require.NoError(t, err)
	b, err := Random(core.NewRNG(7), 3, 5)
	require.NoError(t, err)

	for s := 0; s < 3; s++ {
		for sym := 0; sym < 5; sym++ {
			ra, _ := a.Lookup(State(s), core.Symbol(sym))
			rb, _ := b.Lookup(State(s), core.Symbol(sym))
			assert.Equal(t, ra, rb, "rule (%d,%d)", s, sym)
		}
	}
}
