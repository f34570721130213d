package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

// Ensure PipelineController implements the interface.
var _ driving.PipelineService = (*PipelineController)(nil)

// PipelineController is the staged processing state machine.
//
// All state sits behind mu. Every scheduled callback captures the generation
// it was scheduled under and does nothing once a reset has moved it on, so a
// superseded run can never touch the state of the next one.
type PipelineController struct {
	clock       driven.Clock
	stages      []domain.Stage
	intakeDelay time.Duration
	documents   []domain.Document

	mu       sync.Mutex
	document domain.Document
	state    domain.RunState
	timer    driven.Timer
	done     chan struct{}
	subs     map[int]chan domain.RunState
	nextSub  int
}

// NewPipelineController creates a controller over the catalog documents.
// The first document is active initially.
func NewPipelineController(
	catalog driven.Catalog,
	clock driven.Clock,
	settings domain.DemoSettings,
) *PipelineController {
	stages := settings.Stages
	if stages == nil {
		stages = domain.DefaultStages()
	}

	c := &PipelineController{
		clock:       clock,
		stages:      append([]domain.Stage(nil), stages...),
		intakeDelay: settings.IntakeDelay,
		documents:   catalog.Documents(),
		subs:        make(map[int]chan domain.RunState),
	}
	if len(c.documents) > 0 {
		c.document = c.documents[0]
	}
	c.state = domain.IdleState(c.document.ID, 0)
	return c
}

// Select switches the active document and resets the run.
func (c *PipelineController) Select(documentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.documents {
		if d.ID == documentID {
			c.document = d
			c.resetLocked()
			logger.Debug("pipeline: selected %s", documentID)
			c.publishLocked()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Reset cancels any run in progress and returns to idle.
func (c *PipelineController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	c.publishLocked()
}

// BeginIntake scans an uploaded file, then runs the stages.
func (c *PipelineController) BeginIntake(label string) {
	if label == "" {
		label = domain.DefaultUploadLabel
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	c.state.RunID = uuid.NewString()
	c.state.Phase = domain.PhaseScanning
	c.state.Scanning = true
	c.state.UploadLabel = label
	c.done = make(chan struct{})

	gen := c.state.Generation
	c.timer = c.clock.AfterFunc(c.intakeDelay, func() { c.finishIntake(gen) })

	logger.Debug("pipeline: scanning %q (run %s)", label, c.state.RunID)
	c.publishLocked()
}

// Run starts the stage sequence immediately.
func (c *PipelineController) Run() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	c.state.RunID = uuid.NewString()
	c.done = make(chan struct{})
	c.startLocked()
	c.publishLocked()
}

// State returns a snapshot of the current run.
func (c *PipelineController) State() domain.RunState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Document returns the active document.
func (c *PipelineController) Document() domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.document
}

// Stages returns the configured stage list.
func (c *PipelineController) Stages() []domain.Stage {
	return append([]domain.Stage(nil), c.stages...)
}

// Subscribe returns a channel of state snapshots.
func (c *PipelineController) Subscribe() (<-chan domain.RunState, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan domain.RunState, 1)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Wait blocks until the current run completes or ctx is done.
// A reset while waiting ends the wait with the idle state.
func (c *PipelineController) Wait(ctx context.Context) (domain.RunState, error) {
	c.mu.Lock()
	done := c.done
	state := c.state.Clone()
	c.mu.Unlock()

	if done == nil {
		return state, nil
	}

	select {
	case <-done:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), ctx.Err()
	}
}

// finishIntake ends the scan and starts the stages, unless the intake was superseded.
func (c *PipelineController) finishIntake(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.state.Generation || !c.state.Scanning {
		logger.Debug("pipeline: dropped stale intake (generation %d)", gen)
		return
	}

	c.state.Scanning = false
	c.startLocked()
	c.publishLocked()
}

// completeStage is the single advance step of the state machine.
func (c *PipelineController) completeStage(gen uint64, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.state.Generation || c.state.CurrentStage != index {
		logger.Debug("pipeline: dropped stale stage %d (generation %d)", index, gen)
		return
	}

	stage := c.stages[index]
	c.state.Completed = append(c.state.Completed, index)
	c.state.Revealed = stage.Reveals
	logger.Debug("pipeline: stage %s complete", stage.Key)

	if index+1 < len(c.stages) {
		c.state.CurrentStage = index + 1
		c.scheduleLocked(index + 1)
	} else {
		c.finishLocked()
	}
	c.publishLocked()
}

// startLocked enters the running phase at the first stage.
func (c *PipelineController) startLocked() {
	c.state.Phase = domain.PhaseRunning
	c.state.Running = true
	c.state.Completed = []int{}
	c.state.Revealed = domain.ResultNone

	if len(c.stages) == 0 {
		c.finishLocked()
		return
	}

	c.state.CurrentStage = 0
	c.scheduleLocked(0)
	logger.Debug("pipeline: running %s (run %s)", c.document.ID, c.state.RunID)
}

func (c *PipelineController) scheduleLocked(index int) {
	gen := c.state.Generation
	c.timer = c.clock.AfterFunc(c.stages[index].Duration, func() { c.completeStage(gen, index) })
}

// finishLocked enters the terminal phase.
func (c *PipelineController) finishLocked() {
	c.timer = nil
	c.state.Phase = domain.PhaseComplete
	c.state.Running = false
	c.state.CurrentStage = domain.NoStage
	c.state.Revealed = domain.ResultVoucher
	c.closeDoneLocked()
	logger.Debug("pipeline: run %s complete", c.state.RunID)
}

// resetLocked invalidates every pending callback and returns to idle.
func (c *PipelineController) resetLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.closeDoneLocked()
	c.state = domain.IdleState(c.document.ID, c.state.Generation+1)
}

func (c *PipelineController) closeDoneLocked() {
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

// publishLocked sends the current snapshot to every subscriber, replacing
// any snapshot the subscriber has not read yet.
func (c *PipelineController) publishLocked() {
	for _, ch := range c.subs {
		snapshot := c.state.Clone()
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}
