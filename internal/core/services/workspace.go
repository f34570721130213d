package services

import (
	"fmt"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Ensure WorkspaceService implements the interface.
var _ driving.WorkspaceService = (*WorkspaceService)(nil)

// WorkspaceService serves the task queue and review panels.
type WorkspaceService struct {
	catalog driven.Catalog
}

// NewWorkspaceService creates a workspace service.
func NewWorkspaceService(catalog driven.Catalog) *WorkspaceService {
	return &WorkspaceService{catalog: catalog}
}

// Tasks returns queued tasks with the given status, in queue order.
func (s *WorkspaceService) Tasks(status domain.TaskStatus) ([]domain.Task, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("task status %q: %w", status, domain.ErrInvalidInput)
	}

	all := s.catalog.Tasks()
	if status == "" {
		return all, nil
	}

	result := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result, nil
}

// Task returns a task by id.
func (s *WorkspaceService) Task(id string) (*domain.Task, error) {
	for _, t := range s.catalog.Tasks() {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
}

// Review returns the review panel of a task.
// Tasks without a review panel return ErrNotFound.
func (s *WorkspaceService) Review(taskID string) (*domain.Review, error) {
	if _, err := s.Task(taskID); err != nil {
		return nil, err
	}
	for _, r := range s.catalog.Reviews() {
		if r.TaskID == taskID {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("review for task %s: %w", taskID, domain.ErrNotFound)
}

// Workload returns the split of work between AI and accountants.
func (s *WorkspaceService) Workload() []domain.WorkloadShare {
	return s.catalog.Workload()
}

// Counts returns the number of tasks per status.
// Every known status is present, zero counts included.
func (s *WorkspaceService) Counts() map[domain.TaskStatus]int {
	counts := make(map[domain.TaskStatus]int, len(domain.AllTaskStatuses))
	for _, st := range domain.AllTaskStatuses {
		counts[st] = 0
	}
	for _, t := range s.catalog.Tasks() {
		counts[t.Status]++
	}
	return counts
}
