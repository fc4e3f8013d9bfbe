package core

import (
	"errors"
	"testing"
)

func TestGridWraparound(t *testing.T) {
	g, err := NewGrid(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(2, 3, 4)

	reads := [][2]int{
		{2, 3},
		{2 + 7, 3 + 5},
		{2 - 7, 3 - 5},
		{2 + 70, 3 - 50},
		{-5, -2},
	}
	for _, r := range reads {
		if got := g.At(r[0], r[1]); got != 4 {
			t.Fatalf("At(%d,%d) = %d, want 4", r[0], r[1], got)
		}
	}

	g.Set(-1, -1, 2)
	if got := g.At(6, 4); got != 2 {
		t.Fatalf("write at (-1,-1) should land on (6,4), got %d", got)
	}
}

func TestGridInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {0, 0}, {-3, 4}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d,%d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestGridClear(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, 5)
		}
	}
	g.Clear()
	for _, c := range g.Cells() {
		if c != Blank {
			t.Fatalf("cell not blank after Clear: %d", c)
		}
	}
}
