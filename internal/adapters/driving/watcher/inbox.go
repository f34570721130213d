// Package watcher watches an inbox directory and feeds new invoice files
// into the processing pipeline.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

// ErrMissingPipeline is returned when no pipeline is provided.
var ErrMissingPipeline = errors.New("watcher: pipeline service is required")

// DefaultExtensions are the invoice file types picked up from the inbox.
var DefaultExtensions = []string{".pdf", ".ofd", ".xml", ".jpg", ".jpeg", ".png"}

// Inbox starts an intake for every invoice file that appears in a directory.
// Intakes are throttled; a file arriving while the limiter is empty is skipped.
type Inbox struct {
	dir        string
	pipeline   driving.PipelineService
	limiter    *rate.Limiter
	extensions map[string]bool
	onIntake   func(name string)
}

// Option configures an Inbox.
type Option func(*Inbox)

// WithLimit sets how often intakes may start.
func WithLimit(every rate.Limit, burst int) Option {
	return func(w *Inbox) {
		w.limiter = rate.NewLimiter(every, burst)
	}
}

// WithExtensions replaces the accepted file extensions.
func WithExtensions(exts ...string) Option {
	return func(w *Inbox) {
		w.extensions = make(map[string]bool, len(exts))
		for _, e := range exts {
			w.extensions[strings.ToLower(e)] = true
		}
	}
}

// OnIntake registers a callback run after each intake starts.
func OnIntake(fn func(name string)) Option {
	return func(w *Inbox) {
		w.onIntake = fn
	}
}

// New creates an inbox watcher for dir. By default one intake may start per second.
func New(dir string, pipeline driving.PipelineService, opts ...Option) (*Inbox, error) {
	if pipeline == nil {
		return nil, ErrMissingPipeline
	}

	w := &Inbox{
		dir:      dir,
		pipeline: pipeline,
		limiter:  rate.NewLimiter(rate.Limit(1), 1),
	}
	WithExtensions(DefaultExtensions...)(w)
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches the inbox until ctx is done.
func (w *Inbox) Run(ctx context.Context) error {
	info, err := os.Stat(w.dir)
	if err != nil {
		return fmt.Errorf("inbox %s: %w", w.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("inbox %s is not a directory", w.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Debug("watcher: watching %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)
		}
	}
}

// handleEvent starts an intake for a new invoice file and reports whether it did.
func (w *Inbox) handleEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) {
		return false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if !w.extensions[strings.ToLower(filepath.Ext(name))] {
		logger.Debug("watcher: ignoring %s", name)
		return false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return false
	}

	if !w.limiter.Allow() {
		logger.Warn("watcher: skipped %s, intake already started recently", name)
		return false
	}

	logger.Info("watcher: new invoice %s", name)
	w.pipeline.BeginIntake(name)
	if w.onIntake != nil {
		w.onIntake(name)
	}
	return true
}
