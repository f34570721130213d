package domain

// TaskStatus is the progress of a bookkeeping task.
type TaskStatus string

const (
	// TaskDone tasks were completed by the AI.
	TaskDone TaskStatus = "done"
	// TaskReview tasks wait for an accountant's review.
	TaskReview TaskStatus = "review"
	// TaskPending tasks are not yet assigned.
	TaskPending TaskStatus = "pending"
)

// AllTaskStatuses lists the statuses in display order.
var AllTaskStatuses = []TaskStatus{TaskDone, TaskReview, TaskPending}

// IsValid returns true if the status is known.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskDone, TaskReview, TaskPending:
		return true
	default:
		return false
	}
}

// Label returns the display label for the status.
func (s TaskStatus) Label() string {
	switch s {
	case TaskDone:
		return "AI已完成"
	case TaskReview:
		return "待审核"
	case TaskPending:
		return "待处理"
	default:
		return string(s)
	}
}

// Task is one entry in the workspace task queue.
type Task struct {
	ID      string
	Title   string
	Status  TaskStatus
	Handler string

	// Time is the start time label, "--" when unstarted.
	Time string

	// Confidence is the AI confidence in [0,1].
	Confidence float64
}

// WorkloadShare is the percentage of work handled by one party.
type WorkloadShare struct {
	Name    string
	Percent int
}

// ReviewStatus is the outcome of an accountant's review.
type ReviewStatus string

const (
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Label returns the display label for the status.
func (s ReviewStatus) Label() string {
	switch s {
	case ReviewApproved:
		return "已审批通过"
	case ReviewRejected:
		return "已驳回"
	default:
		return string(s)
	}
}

// Review pairs an AI-generated voucher with the accountant's opinion.
type Review struct {
	TaskID         string
	Title          string
	Voucher        Voucher
	AINote         string
	AccountantNote string
	Reviewer       string
	Status         ReviewStatus
}
