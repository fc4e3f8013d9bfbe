//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"turing/internal/core"
	"turing/internal/machine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is the view of the simulation the overlay reads.
type Source interface {
	Size() core.Size
	Heads() []machine.Head
	Clock() uint64
}

// Overlay draws head markers and a status line on top of the grid view.
type Overlay struct {
	src        Source
	scale      int
	showHeads  bool
	showStatus bool
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay reading from src.
func NewOverlay(src Source, scale int) *Overlay {
	o := &Overlay{src: src, scale: scale, showHeads: true, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's own key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeads = !o.showHeads
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	heads := o.src.Heads()

	if o.showHeads {
		for _, h := range heads {
			col := color.RGBA{R: 255, G: 220, B: 40, A: 255}
			if h.Status == machine.Halted {
				col = color.RGBA{R: 200, G: 40, B: 40, A: 255}
			}
			o.drawMarker(screen, h.X, h.Y, scale, col)
		}
	}

	if o.showStatus {
		live := 0
		for _, h := range heads {
			if h.Status == machine.Active {
				live++
			}
		}
		msg := fmt.Sprintf("step %d  heads %d/%d", o.src.Clock(), live, len(heads))
		text.Draw(screen, msg, basicfont.Face7x13, 4, 14, color.White)
	}
}

func (o *Overlay) drawMarker(screen *ebiten.Image, x, y, scale int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x*scale), float64(y*scale))
	op.ColorM.Scale(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	screen.DrawImage(o.pixel, op)
}
