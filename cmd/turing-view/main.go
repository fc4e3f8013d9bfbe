//go:build ebiten

// Command turing-view runs the machine in an interactive window instead of
// a pipe. Space pauses, N advances one frame interval, R reseeds, H toggles
// head markers, Q quits.
package main

import (
	"errors"
	"flag"
	"log"

	"turing/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	// One frame interval per viewer tick; the headless cadence default is
	// far too coarse for 60 updates a second.
	cfg.StepsPerFrame = 256
	cfg.Bind(flag.CommandLine)
	cfg.BindView(flag.CommandLine)
	flag.Parse()

	fsys, table := app.OSFS(cfg.Table)
	cfg.Table = table

	m, renderer, err := cfg.Build(fsys)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(m, renderer, cfg.Scale, cfg.StepsPerFrame)
	size := m.Grid().Size()

	ebiten.SetWindowTitle("turing")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
