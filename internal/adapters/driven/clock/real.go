package clock

import (
	"time"

	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
)

// Ensure Real implements the interface.
var _ driven.Clock = Real{}

// Real is the wall clock.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc calls f in its own goroutine after d.
func (Real) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
