// Package controller connects the draw model to its views.
//
// The Controller loads the game configuration, builds the model (falling back
// to defaults when the configuration is unusable), registers itself as the
// observer of every view and broadcasts each outcome to all of them in
// registration order. Calls from views are serialised by a single mutex, so
// views may run their input loops on their own goroutines.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawnumber/internal/game"
)

// Options configures a Controller
type Options struct {
	// ConfigPath is the key/value configuration file. Empty means none.
	ConfigPath string
	// ConfigReader takes precedence over ConfigPath when set.
	ConfigReader io.Reader
	// Defaults is used when the configuration is missing or inconsistent.
	Defaults game.Configuration
	// Rand draws the secrets. Required.
	Rand game.RandSource
	// AutoReset starts a new game after a win or a loss.
	AutoReset bool
	Logger    *log.Logger
}

// Controller routes attempts from views to the model and results back.
type Controller struct {
	mu        sync.Mutex
	model     *game.Model
	views     []game.View
	autoReset bool
	logger    *log.Logger

	quitOnce sync.Once
	done     chan struct{}
}

var _ game.Observer = (*Controller)(nil)

// New creates a Controller, attaches views and builds the model.
func New(opts Options, views ...game.View) (*Controller, error) {
	if opts.Rand == nil {
		return nil, errors.New("controller: rng is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	c := &Controller{
		views:     append([]game.View(nil), views...),
		autoReset: opts.AutoReset,
		logger:    logger.WithPrefix("controller"),
		done:      make(chan struct{}),
	}
	for _, v := range c.views {
		v.SetObserver(c)
	}

	cfg, loaded := c.loadConfiguration(opts)
	model, err := game.NewModel(cfg, opts.Rand)
	if errors.Is(err, game.ErrInvalidConfiguration) {
		c.logger.Warn("Falling back to default configuration", "error", err, "defaults", opts.Defaults)
		if loaded {
			c.displayError(MsgInconsistent)
		}
		model, err = game.NewModel(opts.Defaults, opts.Rand)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	c.model = model
	c.logger.Info("Game ready", "configuration", model.Configuration(), "views", len(c.views))

	return c, nil
}

// loadConfiguration reports loaded=false when there was no resource or it could
// not be read; the returned Configuration is then the zero value.
func (c *Controller) loadConfiguration(opts Options) (cfg game.Configuration, loaded bool) {
	var (
		warnings []string
		err      error
	)
	switch {
	case opts.ConfigReader != nil:
		cfg, warnings, err = ParseConfiguration(opts.ConfigReader)
	case opts.ConfigPath != "":
		cfg, warnings, err = ParseConfigurationFile(opts.ConfigPath)
	default:
		c.logger.Debug("No configuration resource, using defaults")
		return game.Configuration{}, false
	}

	for _, w := range warnings {
		c.logger.Warn("Configuration warning", "message", w)
		c.displayError(w)
	}
	if err != nil {
		c.logger.Error("Failed to load configuration", "path", opts.ConfigPath, "error", err)
		c.displayError(MsgFileError)
		return game.Configuration{}, false
	}
	return cfg, true
}

// NewAttempt evaluates a guess and broadcasts the outcome.
func (c *Controller) NewAttempt(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.model.Attempt(n)
	if err != nil {
		c.logger.Debug("Rejected attempt", "guess", n, "error", err)
		for _, v := range c.views {
			v.NumberIncorrect()
		}
		return
	}

	c.logger.Debug("Attempt", "guess", n, "result", res, "remaining", c.model.RemainingAttempts())
	for _, v := range c.views {
		v.Result(res)
	}

	if c.autoReset && res.IsTerminal() {
		c.model.Reset()
		c.logger.Info("Game over, new number drawn", "result", res)
	}
}

// ResetGame draws a new secret and restores the attempt budget.
func (c *Controller) ResetGame() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.model.Reset()
	c.logger.Info("Game reset")
}

// Quit signals every view to stop. It is safe to call more than once and from
// any goroutine.
func (c *Controller) Quit() {
	c.quitOnce.Do(func() {
		c.logger.Info("Quit requested")
		close(c.done)
	})
}

// Done is closed once Quit has been called.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// RemainingAttempts reports the attempts left in the current game.
func (c *Controller) RemainingAttempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model.RemainingAttempts()
}

// Configuration returns the configuration the game is running with.
func (c *Controller) Configuration() game.Configuration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model.Configuration()
}

// Run starts every view and blocks until all of them have stopped. Quit or
// cancelling ctx stops the views. Views implementing io.Closer are closed
// before Run returns.
func (c *Controller) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-c.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for _, v := range c.views {
		g.Go(func() error {
			return v.Start(gctx)
		})
	}
	err := g.Wait()

	return errors.Join(err, c.close())
}

func (c *Controller) close() error {
	var errs []error
	for _, v := range c.views {
		if closer, ok := v.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (c *Controller) displayError(message string) {
	for _, v := range c.views {
		v.DisplayError(message)
	}
}
