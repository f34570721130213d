package driving

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

// ReportsService serves the financial health report.
type ReportsService interface {
	// Report returns the full report.
	Report() domain.TaxReport

	// Suggestions returns tax-optimisation suggestions at the given priority.
	// An empty priority returns every suggestion.
	Suggestions(priority domain.Priority) ([]domain.TaxSuggestion, error)
}
