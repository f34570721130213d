package driving

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

// WorkspaceService serves the accountant workspace.
type WorkspaceService interface {
	// Tasks returns queued tasks with the given status.
	// An empty status returns every task.
	Tasks(status domain.TaskStatus) ([]domain.Task, error)

	// Task returns a task by id.
	Task(id string) (*domain.Task, error)

	// Review returns the review panel of a task.
	Review(taskID string) (*domain.Review, error)

	// Workload returns the split of work between AI and accountants.
	Workload() []domain.WorkloadShare

	// Counts returns the number of tasks per status.
	Counts() map[domain.TaskStatus]int
}
