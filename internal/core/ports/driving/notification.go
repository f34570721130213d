package driving

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

// NotificationService manages the notification centre.
type NotificationService interface {
	// List returns notifications in the given category, most recent first.
	// domain.CategoryAll or an empty category returns everything.
	List(category domain.NotificationCategory) []domain.Notification

	// MarkRead marks one notification read. Unknown ids are ignored.
	MarkRead(id int) error

	// MarkAllRead marks every notification read.
	MarkAllRead() error

	// UnreadCount returns the number of unread notifications.
	UnreadCount() int

	// Open marks a notification read and navigates to its link.
	// Returns the route, or domain.ErrNotFound for an unknown id.
	Open(id int) (string, error)
}
