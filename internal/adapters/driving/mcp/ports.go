package mcp

import (
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Catalog serves the sample invoices and risk alerts.
	Catalog driving.CatalogService

	// Pipeline runs invoices through the stages.
	Pipeline driving.PipelineService

	// Notifications serves the notification centre.
	Notifications driving.NotificationService

	// Reports serves the financial health report.
	Reports driving.ReportsService

	// Workspace serves the accountant task queue.
	Workspace driving.WorkspaceService
}

// Validate ensures all required ports are set.
// Every port but Catalog is optional; their tools report an error when absent.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
