// Package tui provides an interactive terminal user interface for Sentinel.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Pipeline runs sample invoices through the stages.
	Pipeline driving.PipelineService

	// Notifications manages the notification centre.
	Notifications driving.NotificationService

	// Catalog exposes the sample invoices and risk alerts.
	Catalog driving.CatalogService

	// Session manages the signed-in identity.
	Session driving.SessionService

	// Billing prices plans and runs the checkout.
	Billing driving.BillingService

	// Settings manages demo timings and storage.
	Settings driving.SettingsService

	// Reports serves the financial health report.
	Reports driving.ReportsService

	// Workspace serves the accountant task queue.
	Workspace driving.WorkspaceService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	pipeline driving.PipelineService,
	notifications driving.NotificationService,
	catalog driving.CatalogService,
) *Ports {
	return &Ports{
		Pipeline:      pipeline,
		Notifications: notifications,
		Catalog:       catalog,
	}
}

// Validate ensures all required ports are set.
// The other ports are optional; their views say so when absent.
func (p *Ports) Validate() error {
	if p.Pipeline == nil {
		return ErrMissingPipelineService
	}
	if p.Notifications == nil {
		return ErrMissingNotificationService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
