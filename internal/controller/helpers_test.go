package controller

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/drawnumber/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// fixedSource forces the secret to min+offset.
type fixedSource struct{ offset int }

func (f fixedSource) Uint64() uint64 { return uint64(f.offset) }

func (f fixedSource) Uint64N(n uint64) uint64 {
	if uint64(f.offset) >= n {
		return n - 1
	}
	return uint64(f.offset)
}

// recordingView records every broadcast it receives.
type recordingView struct {
	name     string
	mu       sync.Mutex
	events   []string
	observer game.Observer
	start    func(ctx context.Context, o game.Observer) error
	closed   bool
	closeErr error
	journal  *journal
}

// journal records broadcasts across views to check ordering.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(s string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, s)
}

func (j *journal) all() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

func newRecordingView(name string) *recordingView {
	return &recordingView{name: name}
}

func (v *recordingView) record(event string) {
	v.mu.Lock()
	v.events = append(v.events, event)
	v.mu.Unlock()
	if v.journal != nil {
		v.journal.add(v.name + ":" + event)
	}
}

func (v *recordingView) Start(ctx context.Context) error {
	if v.start != nil {
		return v.start(ctx, v.observer)
	}
	return nil
}

func (v *recordingView) SetObserver(o game.Observer) { v.observer = o }
func (v *recordingView) Result(r game.Result)        { v.record("result:" + r.String()) }
func (v *recordingView) NumberIncorrect()            { v.record("incorrect") }
func (v *recordingView) DisplayError(msg string)     { v.record("error:" + msg) }

func (v *recordingView) Events() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.events...)
}

// closingView is a recordingView that owns a resource.
type closingView struct {
	*recordingView
}

func (v closingView) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return v.closeErr
}

func configText(min, max, attempts int) string {
	return fmt.Sprintf("minimum: %d\nmaximum: %d\nattempts: %d\n", min, max, attempts)
}
