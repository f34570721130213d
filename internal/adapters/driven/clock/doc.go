// Package clock provides implementations of driven.Clock.
//
//   - Real: wall time and runtime timers
//   - Manual: virtual time advanced explicitly, for tests and instant demos
package clock
