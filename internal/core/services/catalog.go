package services

import (
	"fmt"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService exposes the read-only fixture data.
type CatalogService struct {
	catalog driven.Catalog
}

// NewCatalogService creates a catalog service.
func NewCatalogService(catalog driven.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Documents returns the sample invoices.
func (s *CatalogService) Documents() []domain.Document {
	return s.catalog.Documents()
}

// Document returns a sample invoice by id.
func (s *CatalogService) Document(id string) (*domain.Document, error) {
	for _, d := range s.catalog.Documents() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
}

// RiskAlerts returns dashboard alerts at the given level.
func (s *CatalogService) RiskAlerts(level domain.RiskLevel) ([]domain.RiskAlert, error) {
	if level != "" && !level.IsValid() {
		return nil, fmt.Errorf("risk level %q: %w", level, domain.ErrInvalidInput)
	}

	alerts := s.catalog.RiskAlerts()
	if level == "" {
		return alerts, nil
	}

	result := make([]domain.RiskAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Level == level {
			result = append(result, a)
		}
	}
	return result, nil
}

// Dashboard returns the dashboard headline figures.
func (s *CatalogService) Dashboard() domain.Dashboard {
	return s.catalog.Dashboard()
}
