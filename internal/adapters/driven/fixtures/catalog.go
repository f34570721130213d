package fixtures

import (
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = Catalog{}

// Catalog serves the built-in sample data.
type Catalog struct{}

// New returns the built-in catalog.
func New() Catalog {
	return Catalog{}
}

// Documents returns the sample invoices in display order.
func (Catalog) Documents() []domain.Document {
	return invoices()
}

// Notifications returns the notification centre entries, most recent first.
func (Catalog) Notifications() []domain.Notification {
	return notifications()
}

// RiskAlerts returns the dashboard risk alerts.
func (Catalog) RiskAlerts() []domain.RiskAlert {
	return riskAlerts()
}

// Dashboard returns the dashboard headline figures.
func (Catalog) Dashboard() domain.Dashboard {
	return dashboard()
}

// TaxReport returns the financial health report.
func (Catalog) TaxReport() domain.TaxReport {
	return taxReport()
}

// Tasks returns the workspace task queue.
func (Catalog) Tasks() []domain.Task {
	return tasks()
}

// Reviews returns the workspace review panels.
func (Catalog) Reviews() []domain.Review {
	return reviews()
}

// Workload returns the AI and accountant workload split.
func (Catalog) Workload() []domain.WorkloadShare {
	return workload()
}

// Plans returns the subscription plans in display order.
func (Catalog) Plans() []domain.Plan {
	return plans()
}
