package game

import "context"

// Observer receives the events a View originates.
type Observer interface {
	NewAttempt(n int)
	ResetGame()
	Quit()
}

// View displays game outcomes and can originate attempts.
//
// Start begins accepting input and blocks until the view stops or ctx is
// cancelled. Views without input return immediately. The remaining methods
// are fire-and-forget broadcasts.
type View interface {
	Start(ctx context.Context) error
	SetObserver(o Observer)
	Result(r Result)
	NumberIncorrect()
	DisplayError(message string)
}
