package services

import (
	"fmt"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Ensure ReportsService implements the interface.
var _ driving.ReportsService = (*ReportsService)(nil)

// ReportsService serves the financial health report from the catalog.
type ReportsService struct {
	catalog driven.Catalog
}

// NewReportsService creates a reports service.
func NewReportsService(catalog driven.Catalog) *ReportsService {
	return &ReportsService{catalog: catalog}
}

// Report returns the full report.
func (s *ReportsService) Report() domain.TaxReport {
	return s.catalog.TaxReport()
}

// Suggestions returns suggestions at the given priority, in catalog order.
func (s *ReportsService) Suggestions(priority domain.Priority) ([]domain.TaxSuggestion, error) {
	if priority != "" && !priority.IsValid() {
		return nil, fmt.Errorf("priority %q: %w", priority, domain.ErrInvalidInput)
	}

	all := s.catalog.TaxReport().Suggestions
	if priority == "" {
		return all, nil
	}

	result := make([]domain.TaxSuggestion, 0, len(all))
	for _, sg := range all {
		if sg.Priority == priority {
			result = append(result, sg)
		}
	}
	return result, nil
}
