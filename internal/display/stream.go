package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/drawnumber/internal/game"
)

// StreamView writes a timestamped line for every broadcast. It accepts no
// input.
type StreamView struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	clock  quartz.Clock
	err    error
}

var _ game.View = (*StreamView)(nil)

// NewStreamView writes to w. The caller keeps ownership of w.
func NewStreamView(w io.Writer, clock quartz.Clock) *StreamView {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &StreamView{w: w, clock: clock}
}

// OpenStreamView creates (or truncates) path and writes to it. Close closes
// the file.
func OpenStreamView(path string, clock quartz.Clock) (*StreamView, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream view output: %w", err)
	}
	v := NewStreamView(f, clock)
	v.closer = f
	return v, nil
}

// Start returns immediately
func (v *StreamView) Start(context.Context) error { return nil }

// SetObserver is a no-op, the stream has no input
func (v *StreamView) SetObserver(game.Observer) {}

func (v *StreamView) Result(r game.Result) {
	v.printf("Result: %s", r.Description())
}

func (v *StreamView) NumberIncorrect() {
	v.printf("You must enter a number in the range")
}

func (v *StreamView) DisplayError(message string) {
	v.printf("Error: %s", message)
}

// Close closes the underlying file when the view owns it and reports the
// first write error seen.
func (v *StreamView) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.err
	if v.closer != nil {
		err = errors.Join(err, v.closer.Close())
		v.closer = nil
	}
	return err
}

func (v *StreamView) printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ts := v.clock.Now().Format(time.RFC3339)
	if _, err := fmt.Fprintf(v.w, "%s %s\n", ts, fmt.Sprintf(format, args...)); err != nil && v.err == nil {
		v.err = fmt.Errorf("stream view write: %w", err)
	}
}
