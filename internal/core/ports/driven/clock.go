package driven

import "time"

// Clock abstracts wall time and timer scheduling.
// Production uses the real clock; tests advance a manual clock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending call scheduled by Clock.AfterFunc.
type Timer interface {
	// Stop prevents the timer from firing.
	// Returns false if the timer already fired or was stopped.
	Stop() bool
}
