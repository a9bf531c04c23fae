// Package tui implements a Bubble Tea terminal view for the guessing game.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/drawnumber/internal/game"
)

// View runs the Bubble Tea program and relays controller broadcasts into it.
type View struct {
	mu       sync.Mutex
	model    *Model
	program  *tea.Program
	options  []tea.ProgramOption
	logger   *log.Logger
	observer game.Observer
}

var _ game.View = (*View)(nil)

// NewView creates a TUI view. Program options are appended to the defaults
// (alt screen, context cancellation).
func NewView(logger *log.Logger, opts ...tea.ProgramOption) *View {
	return &View{
		model:   NewModel(logger),
		options: opts,
		logger:  logger.WithPrefix("tui"),
	}
}

// SetObserver registers the sink for attempts, resets and quit
func (v *View) SetObserver(o game.Observer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.observer = o
	v.model.observer = o
}

// Start runs the program until the user quits or ctx is cancelled. A quit
// from the keyboard is forwarded to the observer.
func (v *View) Start(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, v.options...)

	v.mu.Lock()
	p := tea.NewProgram(v.model, opts...)
	v.program = p
	v.mu.Unlock()

	_, err := p.Run()

	v.mu.Lock()
	v.program = nil
	quit := v.model.quitRequested
	o := v.observer
	v.mu.Unlock()

	if quit && o != nil {
		o.Quit()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		v.logger.Error("TUI program failed", "error", err)
		return err
	}
	return nil
}

// Result shows the outcome of an attempt
func (v *View) Result(r game.Result) { v.notify(resultMsg{result: r}) }

// NumberIncorrect reports a guess outside the range
func (v *View) NumberIncorrect() { v.notify(incorrectMsg{}) }

// DisplayError shows a warning
func (v *View) DisplayError(message string) { v.notify(errorMsg{message: message}) }

// Entries returns the log entries. Only meaningful while the program is not
// running.
func (v *View) Entries() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.model.Entries()
}

// notify applies msg directly while no program runs, otherwise sends it to
// the running program.
func (v *View) notify(msg tea.Msg) {
	v.mu.Lock()
	p := v.program
	if p == nil {
		v.model.apply(msg)
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()
	p.Send(msg)
}
