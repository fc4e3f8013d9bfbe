package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"
)

// ErrSinkClosed reports that the downstream consumer went away. The engine
// treats it as a clean termination, not a failure.
var ErrSinkClosed = errors.New("output sink closed")

type deadlineWriter interface {
	SetWriteDeadline(time.Time) error
}

// writeFrame flushes the whole frame to the sink, resuming after partial
// writes, so the consumer never observes a truncated frame ahead of a
// termination decision.
func writeFrame(w io.Writer, frame []byte) error {
	for off := 0; off < len(frame); {
		n, err := w.Write(frame[off:])
		off += n
		if err == nil || errors.Is(err, io.ErrShortWrite) {
			continue
		}
		if sinkClosed(err) {
			return fmt.Errorf("%w: %v", ErrSinkClosed, err)
		}
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func sinkClosed(err error) bool {
	return errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, syscall.EPIPE)
}

// unblockOnCancel arranges for a write blocked on a full pipe to be
// abandoned when ctx is canceled, by expiring the sink's write deadline.
// Sinks without deadlines unblock when the consumer closes the pipe.
// The returned cleanup stops the watcher.
func unblockOnCancel(ctx context.Context, w io.Writer) func() {
	dw, ok := w.(deadlineWriter)
	if !ok {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = dw.SetWriteDeadline(time.Unix(1, 0))
		case <-done:
		}
	}()
	return func() { close(done) }
}
