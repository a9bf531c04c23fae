package game

import (
	"errors"
	"fmt"
	"math"
)

// RandSource is the randomness the Model draws secrets from.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Uint64() uint64
	Uint64N(n uint64) uint64
}

// Model holds the secret number and the remaining attempt budget.
// It is not safe for concurrent use.
type Model struct {
	cfg       Configuration
	rng       RandSource
	secret    int
	remaining int
}

// NewModel creates a Model and draws the first secret. It fails with
// ErrInvalidConfiguration when cfg is not consistent.
func NewModel(cfg Configuration, rng RandSource) (*Model, error) {
	if rng == nil {
		return nil, errors.New("rng is required")
	}
	if !cfg.IsConsistent() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, cfg)
	}
	m := &Model{cfg: cfg, rng: rng}
	m.Reset()
	return m, nil
}

// Reset draws a new secret in [min, max] and restores the attempt budget.
func (m *Model) Reset() {
	m.remaining = m.cfg.attempts
	m.secret = m.cfg.min + int(m.drawOffset())
}

// drawOffset returns a uniform offset in [0, max-min]. The span is computed in
// uint64 so ranges wider than math.MaxInt do not overflow.
func (m *Model) drawOffset() uint64 {
	span := uint64(m.cfg.max) - uint64(m.cfg.min)
	if span == math.MaxUint64 {
		return m.rng.Uint64()
	}
	return m.rng.Uint64N(span + 1)
}

// Attempt evaluates a guess. Once the budget is exhausted it returns
// OutOfAttempts without touching state. A guess outside the range fails with
// ErrOutOfBounds and does not consume an attempt.
func (m *Model) Attempt(guess int) (Result, error) {
	if m.remaining <= 0 {
		return OutOfAttempts, nil
	}
	if guess < m.cfg.min || guess > m.cfg.max {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfBounds, guess, m.cfg.min, m.cfg.max)
	}
	m.remaining--
	switch {
	case guess > m.secret:
		return TooHigh, nil
	case guess < m.secret:
		return TooLow, nil
	default:
		return Correct, nil
	}
}

// RemainingAttempts returns how many guesses are left before OutOfAttempts.
func (m *Model) RemainingAttempts() int { return m.remaining }

// Configuration returns the values the Model was built from.
func (m *Model) Configuration() Configuration { return m.cfg }
