package game

// Result is the outcome of a single attempt.
type Result int

const (
	TooLow Result = iota
	TooHigh
	Correct
	OutOfAttempts
)

// String returns a short machine-friendly name
func (r Result) String() string {
	switch r {
	case TooLow:
		return "too_low"
	case TooHigh:
		return "too_high"
	case Correct:
		return "correct"
	case OutOfAttempts:
		return "out_of_attempts"
	default:
		return "unknown"
	}
}

// Description returns the message shown to players.
func (r Result) Description() string {
	switch r {
	case TooLow:
		return "Your number is too small"
	case TooHigh:
		return "Your number is too big"
	case Correct:
		return "You won!"
	case OutOfAttempts:
		return "You lost, no attempts left"
	default:
		return "Unknown result"
	}
}

// IsTerminal reports whether the game is over until the next reset.
func (r Result) IsTerminal() bool {
	return r == Correct || r == OutOfAttempts
}
