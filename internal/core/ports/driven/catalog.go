package driven

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

// Catalog provides the static fixture data the demo runs on.
// Implementations return fresh copies; callers may mutate the results.
type Catalog interface {
	// Documents returns the sample invoices in display order.
	Documents() []domain.Document

	// Notifications returns the notification centre entries, most recent first.
	Notifications() []domain.Notification

	// RiskAlerts returns the dashboard risk alerts.
	RiskAlerts() []domain.RiskAlert

	// Dashboard returns the dashboard health score, KPIs and revenue trend.
	Dashboard() domain.Dashboard

	// TaxReport returns the financial health report.
	TaxReport() domain.TaxReport

	// Tasks returns the workspace task queue in display order.
	Tasks() []domain.Task

	// Reviews returns the review panels, keyed by their task.
	Reviews() []domain.Review

	// Workload returns the split of work between AI and accountants.
	Workload() []domain.WorkloadShare

	// Plans returns the subscription plans in display order.
	Plans() []domain.Plan
}
