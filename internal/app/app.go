//go:build ebiten

package app

import (
	"turing/internal/core"
	"turing/internal/machine"
	"turing/internal/render"
	"turing/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the machine to the ebiten.Game interface. Each viewer tick
// advances one frame interval, so the window shows the same sequence the
// headless generator would stream.
type Game struct {
	machine  *machine.Machine
	renderer *render.Renderer
	overlay  *ui.Overlay
	img      *ebiten.Image

	scale         int
	stepsPerFrame int
	clock         uint64
	paused        bool
	tickOnce      bool
}

// New constructs a Game for the provided machine.
func New(m *machine.Machine, r *render.Renderer, scale, stepsPerFrame int) *Game {
	size := m.Grid().Size()
	if scale < 1 {
		scale = 1
	}
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	g := &Game{
		machine:       m,
		renderer:      r,
		img:           ebiten.NewImage(size.W, size.H),
		scale:         scale,
		stepsPerFrame: stepsPerFrame,
	}
	g.overlay = ui.NewOverlay(g, scale)
	return g
}

// Size returns the grid dimensions.
func (g *Game) Size() core.Size { return g.machine.Grid().Size() }

// Heads returns the current head records for the overlay.
func (g *Game) Heads() []machine.Head { return g.machine.Heads() }

// Clock returns the number of machine steps executed so far.
func (g *Game) Clock() uint64 { return g.clock }

// Update handles input and advances the machine by one frame interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.machine.Reseed(); err == nil {
			g.clock = 0
		}
	}

	g.overlay.Update()

	if (!g.paused) || g.tickOnce {
		for i := 0; i < g.stepsPerFrame; i++ {
			if g.machine.AllHalted() {
				break
			}
			g.machine.Step()
			g.clock++
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current grid and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.img.ReplacePixels(g.renderer.RenderRGBA(g.machine.Grid().Cells()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.machine.Grid().Size()
	return s.W * g.scale, s.H * g.scale
}
