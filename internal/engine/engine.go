// Package engine drives the step/render/write loop: it owns the machine,
// paces frame emission by step cadence, and lets pipe backpressure set the
// wall-clock rate. There is no internal frame timer and at most one frame
// in flight.
package engine

import (
	"context"
	"errors"
	"io"

	"turing/internal/machine"
	"turing/internal/render"
)

// State is the engine lifecycle phase.
type State uint8

const (
	// Running means live heads are still stepping.
	Running State = iota
	// Halted means every head hit an undefined transition. The engine may
	// keep emitting the unchanged frame, depending on EmitWhenHalted.
	Halted
	// Terminated means an external stop: signal, sink closure, or step
	// limit. It is the only terminal state.
	Terminated
)

// String names the state for logs.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Options tune the loop.
type Options struct {
	// StepsPerFrame is the emission cadence; one frame every this many
	// machine steps. Must be at least 1.
	StepsPerFrame int
	// StepLimit forces Terminated after this many loop ticks. While heads
	// are live a tick is one machine step; with EmitWhenHalted ticks keep
	// counting after the halt, so the limit still bounds the stream length.
	// 0 disables.
	StepLimit uint64
	// EmitWhenHalted keeps streaming the final frame after all heads halt
	// instead of returning immediately.
	EmitWhenHalted bool
	// ReseedOnStall re-randomizes the machine whenever a whole frame
	// interval passes without a cell changing.
	ReseedOnStall bool
	// ReseedAfter re-randomizes the machine this many steps after the last
	// reseed regardless of activity. 0 disables.
	ReseedAfter uint64
}

// Engine executes the simulation loop against a single sink.
type Engine struct {
	machine  *machine.Machine
	renderer *render.Renderer
	sink     io.Writer
	opts     Options

	clock       uint64
	ticks       uint64
	sinceReseed uint64
	changed     bool
	state       State
}

// New assembles an engine from validated parts.
func New(m *machine.Machine, r *render.Renderer, sink io.Writer, opts Options) (*Engine, error) {
	if m == nil || r == nil || sink == nil {
		return nil, errors.New("engine needs a machine, a renderer, and a sink")
	}
	if opts.StepsPerFrame < 1 {
		return nil, errors.New("steps per frame must be at least 1")
	}
	size := m.Grid().Size()
	if r.FrameSize() != size.W*size.H*3 {
		return nil, errors.New("renderer dimensions do not match grid")
	}
	return &Engine{machine: m, renderer: r, sink: sink, opts: opts}, nil
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Clock returns the number of machine steps executed so far. It stops
// advancing once all heads have halted, even while unchanged frames are
// still being emitted.
func (e *Engine) Clock() uint64 { return e.clock }

// Run executes the loop until the context is canceled, the sink closes, the
// step limit is reached, or the machine halts with EmitWhenHalted off. All
// of those return nil; only genuine write or reseed failures return an
// error.
func (e *Engine) Run(ctx context.Context) error {
	defer unblockOnCancel(ctx, e.sink)()

	for {
		if ctx.Err() != nil {
			e.state = Terminated
			return nil
		}

		e.ticks++
		if e.state == Running {
			e.clock++
			e.sinceReseed++
			if e.machine.Step() {
				e.changed = true
			}
		}

		if e.ticks%uint64(e.opts.StepsPerFrame) == 0 {
			frame := e.renderer.Render(e.machine.Grid().Cells())
			if err := writeFrame(e.sink, frame); err != nil {
				e.state = Terminated
				if errors.Is(err, ErrSinkClosed) {
					return nil
				}
				return err
			}
			if e.state == Running && e.opts.ReseedOnStall && !e.changed {
				if err := e.machine.Reseed(); err != nil {
					return err
				}
				e.sinceReseed = 0
			}
			e.changed = false
		}

		if e.state == Running {
			if e.opts.ReseedAfter > 0 && e.sinceReseed >= e.opts.ReseedAfter {
				if err := e.machine.Reseed(); err != nil {
					return err
				}
				e.sinceReseed = 0
				e.changed = false
			}
			// With reseed-on-stall active a fully halted machine revives at
			// the next frame boundary, so Halted is only entered without it.
			if !e.opts.ReseedOnStall && e.machine.AllHalted() {
				e.state = Halted
				if !e.opts.EmitWhenHalted {
					return nil
				}
			}
		}

		if e.opts.StepLimit > 0 && e.ticks >= e.opts.StepLimit {
			e.state = Terminated
			return nil
		}
	}
}
