package machine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"turing/internal/core"

	billy "gopkg.in/src-d/go-billy.v4"
)

// Table file format, one rule per line:
//
//	<state> <symbol> -> <write> <move> <next>
//
// Moves are stay, north, east, south, west, forward, left, right, reverse.
// Blank lines and lines starting with '#' are skipped. Optional "states N"
// and "symbols N" directives widen the alphabets beyond what the rules
// themselves reference.

// Load reads and parses a table file from the provided filesystem.
func Load(fs billy.Filesystem, path string) (*Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return t, nil
}

// Parse reads the table text format from r.
func Parse(r io.Reader) (*Table, error) {
	var entries []Entry
	states, symbols := 0, 0

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 2 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > 256 {
				return nil, fmt.Errorf("%w: line %d: bad %s count %q", ErrInvalidTable, lineno, fields[0], fields[1])
			}
			switch fields[0] {
			case "states":
				states = max(states, n)
				continue
			case "symbols":
				symbols = max(symbols, n)
				continue
			}
			return nil, fmt.Errorf("%w: line %d: unknown directive %q", ErrInvalidTable, lineno, fields[0])
		}

		if len(fields) != 6 || fields[2] != "->" {
			return nil, fmt.Errorf("%w: line %d: want '<state> <symbol> -> <write> <move> <next>'", ErrInvalidTable, lineno)
		}
		state, err := parseIndex(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: state: %v", ErrInvalidTable, lineno, err)
		}
		sym, err := parseIndex(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: symbol: %v", ErrInvalidTable, lineno, err)
		}
		write, err := parseIndex(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: write symbol: %v", ErrInvalidTable, lineno, err)
		}
		move, err := ParseMove(fields[4])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidTable, lineno, err)
		}
		next, err := parseIndex(fields[5])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: next state: %v", ErrInvalidTable, lineno, err)
		}

		entries = append(entries, Entry{
			State:  State(state),
			Symbol: core.Symbol(sym),
			Rule:   Rule{Write: core.Symbol(write), Move: move, Next: State(next)},
		})
		states = max(states, state+1, next+1)
		symbols = max(symbols, sym+1, write+1)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidTable)
	}
	return NewTable(states, symbols, entries)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("bad index %q", s)
	}
	return n, nil
}
