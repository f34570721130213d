package domain

// NotificationCategory groups notifications into the notification centre tabs.
type NotificationCategory string

const (
	// CategoryAll is the unfiltered tab. It is never stored on a notification.
	CategoryAll NotificationCategory = "all"
	// CategoryRisk holds risk warnings.
	CategoryRisk NotificationCategory = "risk"
	// CategorySystem holds system notices.
	CategorySystem NotificationCategory = "system"
	// CategoryAI holds AI assistant reminders.
	CategoryAI NotificationCategory = "ai"
)

// IsValid returns true if the category is a known tab.
func (c NotificationCategory) IsValid() bool {
	switch c {
	case CategoryAll, CategoryRisk, CategorySystem, CategoryAI:
		return true
	default:
		return false
	}
}

// Label returns the tab label.
func (c NotificationCategory) Label() string {
	switch c {
	case CategoryAll:
		return "全部"
	case CategoryRisk:
		return "风险预警"
	case CategorySystem:
		return "系统通知"
	case CategoryAI:
		return "AI提醒"
	default:
		return string(c)
	}
}

// AllNotificationCategories returns the tabs in display order.
func AllNotificationCategories() []NotificationCategory {
	return []NotificationCategory{CategoryAll, CategoryRisk, CategorySystem, CategoryAI}
}

// Severity drives the colour a notification is rendered with.
type Severity string

const (
	SeverityHigh    Severity = "high"
	SeverityMedium  Severity = "medium"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Notification is an entry in the notification centre.
// Read is the only attribute that changes after load.
type Notification struct {
	ID          int
	Category    NotificationCategory
	Severity    Severity
	Icon        string
	Title       string
	Description string

	// Time is a relative label such as "2分钟前".
	Time string

	Read bool

	// Link is the route opened when the notification is clicked.
	Link string
}
