package game

import "fmt"

// Configuration is an immutable snapshot of the game bounds and attempt budget.
// The zero value is not consistent.
type Configuration struct {
	min, max, attempts int
	minSet, maxSet     bool
}

// NewConfiguration builds a Configuration with every field set.
func NewConfiguration(min, max, attempts int) Configuration {
	return Configuration{
		min:      min,
		max:      max,
		attempts: attempts,
		minSet:   true,
		maxSet:   true,
	}
}

// Min returns the lower bound (inclusive).
func (c Configuration) Min() int { return c.min }

// Max returns the upper bound (inclusive).
func (c Configuration) Max() int { return c.max }

// Attempts returns the attempt budget.
func (c Configuration) Attempts() int { return c.attempts }

// IsConsistent reports whether min and max were both set, min < max and
// attempts > 0.
func (c Configuration) IsConsistent() bool {
	return c.minSet && c.maxSet && c.min < c.max && c.attempts > 0
}

func (c Configuration) String() string {
	return fmt.Sprintf("[%d, %d] with %d attempts", c.min, c.max, c.attempts)
}

// Builder accumulates Configuration fields. Each field may be set at most
// once, and the builder cannot be reused after Build.
type Builder struct {
	cfg         Configuration
	attemptsSet bool
	consumed    bool
}

// NewBuilder returns an empty Builder. Unset fields default to zero.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetMin sets the lower bound.
func (b *Builder) SetMin(min int) error {
	if err := b.check("minimum", b.cfg.minSet); err != nil {
		return err
	}
	b.cfg.min = min
	b.cfg.minSet = true
	return nil
}

// SetMax sets the upper bound.
func (b *Builder) SetMax(max int) error {
	if err := b.check("maximum", b.cfg.maxSet); err != nil {
		return err
	}
	b.cfg.max = max
	b.cfg.maxSet = true
	return nil
}

// SetAttempts sets the attempt budget.
func (b *Builder) SetAttempts(attempts int) error {
	if err := b.check("attempts", b.attemptsSet); err != nil {
		return err
	}
	b.cfg.attempts = attempts
	b.attemptsSet = true
	return nil
}

// Build freezes the accumulated fields. The returned Configuration may still
// be inconsistent; callers check IsConsistent or let NewModel reject it.
func (b *Builder) Build() (Configuration, error) {
	if b.consumed {
		return Configuration{}, ErrBuilderConsumed
	}
	b.consumed = true
	return b.cfg, nil
}

func (b *Builder) check(field string, set bool) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	if set {
		return fmt.Errorf("%s: %w", field, ErrFieldAlreadySet)
	}
	return nil
}
