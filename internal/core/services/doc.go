// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never read the wall clock or start timers directly; time flows
// through driven.Clock so runs can be driven in virtual time.
package services
