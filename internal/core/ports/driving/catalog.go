package driving

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

// CatalogService exposes the read-only fixture data.
type CatalogService interface {
	// Documents returns the sample invoices.
	Documents() []domain.Document

	// Document returns a sample invoice by id.
	Document(id string) (*domain.Document, error)

	// RiskAlerts returns dashboard alerts at the given level.
	// An empty level returns every alert.
	RiskAlerts(level domain.RiskLevel) ([]domain.RiskAlert, error)

	// Dashboard returns the dashboard health score, KPIs and revenue trend.
	Dashboard() domain.Dashboard
}
