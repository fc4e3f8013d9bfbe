// Command turing streams raw RGB24 frames of a multi-head 2D Turing machine
// to stdout, for piping into an external encoder or player:
//
//	turing | ffplay -f rawvideo -pixel_format rgb24 -video_size 512x512 -
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"turing/internal/app"
	"turing/internal/engine"

	"go.uber.org/multierr"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) (err error) {
	fsys, table := app.OSFS(cfg.Table)
	cfg.Table = table

	m, renderer, err := cfg.Build(fsys)
	if err != nil {
		return err
	}

	var sink io.Writer = os.Stdout
	if cfg.Out != "" && cfg.Out != "-" {
		f, createErr := os.Create(cfg.Out)
		if createErr != nil {
			return createErr
		}
		defer func() { err = multierr.Append(err, f.Close()) }()
		sink = f
	}

	// A downstream player exiting must surface as an EPIPE write error, not
	// kill the process outright.
	signal.Ignore(syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, err := engine.New(m, renderer, sink, cfg.Options())
	if err != nil {
		return err
	}
	if err := eng.Run(ctx); err != nil {
		return err
	}
	log.Printf("turing: %s after %d steps", eng.State(), eng.Clock())
	return nil
}
