// Package game implements the number-drawing game core.
//
// A Configuration is assembled once through a Builder and then frozen. A Model
// draws a secret number uniformly from the configured range and evaluates
// guesses against it until the attempt budget runs out.
//
// # Basic Usage
//
//	b := game.NewBuilder()
//	_ = b.SetMin(1)
//	_ = b.SetMax(100)
//	_ = b.SetAttempts(10)
//	cfg, _ := b.Build()
//
//	m, err := game.NewModel(cfg, randutil.New(42))
//	if err != nil {
//	    // errors.Is(err, game.ErrInvalidConfiguration)
//	}
//	res, err := m.Attempt(50)
//
// # Deterministic Testing
//
// NewModel requires a RandSource. Any *rand.Rand from math/rand/v2 satisfies
// it; tests can pass a stub that always returns the same offset to force the
// secret.
//
// # Views
//
// View and Observer describe the boundary between the game and anything that
// displays results or produces guesses. The controller package wires them
// together.
package game
