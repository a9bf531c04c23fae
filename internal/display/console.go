// Package display provides line-oriented views: an interactive console and a
// print-stream view that records every broadcast to a writer.
package display

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/drawnumber/internal/game"
)

// command represents a console command
type command struct {
	Name        string
	Aliases     []string
	Description string
	Handler     func(o game.Observer) bool // false stops the input loop
}

// ConsoleView reads guesses and commands from an input stream and prints
// results to an output stream.
type ConsoleView struct {
	in     io.Reader
	logger *log.Logger
	styles *Styles

	mu       sync.Mutex // guards out
	out      io.Writer
	observer game.Observer
	commands map[string]*command
	ordered  []*command
}

var _ game.View = (*ConsoleView)(nil)

// NewConsoleView creates a console view over in and out.
//
// Reads from in cannot be interrupted. If Start returns because its context
// was cancelled while a read is pending, the reading goroutine stays blocked
// until in yields a line, EOF or an error, and then exits without delivering
// anything. Callers that keep running after Start should pass a reader they
// can close.
func NewConsoleView(in io.Reader, out io.Writer, logger *log.Logger, opts ...ConsoleOption) *ConsoleView {
	var cfg consoleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	renderer := lipgloss.NewRenderer(out)
	if cfg.profile != nil {
		renderer.SetColorProfile(*cfg.profile)
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	v := &ConsoleView{
		in:       in,
		out:      out,
		logger:   logger.WithPrefix("console"),
		styles:   NewStyles(renderer),
		commands: make(map[string]*command),
	}
	v.registerCommands()
	return v
}

func (v *ConsoleView) registerCommands() {
	cmds := []*command{
		{
			Name:        "reset",
			Aliases:     []string{"r", "new"},
			Description: "Draw a new number and restore attempts",
			Handler: func(o game.Observer) bool {
				o.ResetGame()
				v.println(v.styles.Info.Render("New number drawn"))
				return true
			},
		},
		{
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "Quit the game",
			Handler: func(o game.Observer) bool {
				o.Quit()
				return false
			},
		},
		{
			Name:        "help",
			Aliases:     []string{"?", "h"},
			Description: "Show this help",
			Handler: func(game.Observer) bool {
				v.printHelp()
				return true
			},
		},
	}
	for _, cmd := range cmds {
		v.ordered = append(v.ordered, cmd)
		v.commands[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			v.commands[alias] = cmd
		}
	}
}

// SetObserver registers the sink for attempts and commands
func (v *ConsoleView) SetObserver(o game.Observer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.observer = o
}

// Start reads input until EOF, a quit command or ctx cancellation. EOF
// counts as quitting. See NewConsoleView for what happens to a pending read
// when ctx is cancelled.
func (v *ConsoleView) Start(ctx context.Context) error {
	v.println(v.styles.Header.Render("Draw Number"))
	v.println(v.styles.Info.Render("Enter a number to guess, 'help' for commands"))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(v.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-readErr:
				default:
				}
				v.logger.Debug("Input closed", "error", err)
				if o := v.currentObserver(); o != nil {
					o.Quit()
				}
				if err != nil {
					return fmt.Errorf("console input: %w", err)
				}
				return nil
			}
			if !v.handle(line) {
				return nil
			}
		}
	}
}

// handle processes one input line and reports whether to keep reading
func (v *ConsoleView) handle(line string) bool {
	input := strings.ToLower(strings.TrimSpace(line))
	if input == "" {
		return true
	}

	o := v.currentObserver()
	if o == nil {
		v.logger.Warn("Input received before observer was set", "input", input)
		return true
	}

	if cmd, ok := v.commands[input]; ok {
		v.logger.Debug("Command", "name", cmd.Name)
		return cmd.Handler(o)
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		v.println(v.styles.Error.Render(fmt.Sprintf("Not a number: %s", line)))
		return true
	}
	o.NewAttempt(n)
	return true
}

// Result prints the outcome of an attempt
func (v *ConsoleView) Result(r game.Result) {
	style := v.styles.Warning
	switch r {
	case game.Correct:
		style = v.styles.Success
	case game.OutOfAttempts:
		style = v.styles.Error
	}
	v.println(style.Render(r.Description()))
}

// NumberIncorrect reports a guess outside the range
func (v *ConsoleView) NumberIncorrect() {
	v.println(v.styles.Error.Render("Incorrect number, try again"))
}

// DisplayError prints a warning
func (v *ConsoleView) DisplayError(message string) {
	v.println(v.styles.Warning.Render("Warning: " + message))
}

func (v *ConsoleView) printHelp() {
	v.println(v.styles.Prompt.Render("Commands:"))
	v.println(fmt.Sprintf("  %-10s - %s", "<number>", "Guess the number"))
	for _, cmd := range v.ordered {
		v.println(fmt.Sprintf("  %-10s - %s", cmd.Name, cmd.Description))
	}
}

func (v *ConsoleView) currentObserver() game.Observer {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.observer
}

func (v *ConsoleView) println(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := fmt.Fprintln(v.out, s); err != nil {
		v.logger.Error("Failed to write output", "error", err)
	}
}
