//go:build !ebiten

package ui

import (
	"turing/internal/core"
	"turing/internal/machine"
)

// Source is the view of the simulation the overlay reads.
type Source interface {
	Size() core.Size
	Heads() []machine.Head
	Clock() uint64
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(Source, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
