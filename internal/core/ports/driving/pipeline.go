package driving

import (
	"context"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// PipelineService drives the staged processing of one document at a time.
type PipelineService interface {
	// Select switches the active document and resets the run.
	// Returns domain.ErrNotFound for an unknown id and leaves state untouched.
	Select(documentID string) error

	// Reset cancels any run in progress and returns to idle.
	Reset()

	// BeginIntake simulates a file upload: the label is shown while scanning,
	// then the stages run. An empty label uses domain.DefaultUploadLabel.
	BeginIntake(label string)

	// Run starts the stage sequence immediately.
	Run()

	// State returns a snapshot of the current run.
	State() domain.RunState

	// Document returns the active document.
	Document() domain.Document

	// Stages returns the configured stage list.
	Stages() []domain.Stage

	// Subscribe returns a channel receiving state snapshots after every change.
	// Slow readers only see the latest snapshot. Call cancel to unsubscribe.
	Subscribe() (updates <-chan domain.RunState, cancel func())

	// Wait blocks until the current run completes or ctx is done.
	// Returns immediately if the controller is idle.
	Wait(ctx context.Context) (domain.RunState, error)
}
