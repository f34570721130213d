// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewEngine runs invoices through the pipeline.
	ViewEngine
	// ViewNotifications is the notification centre.
	ViewNotifications
	// ViewRisk is the risk dashboard: health score, KPIs and alerts.
	ViewRisk
	// ViewReports shows the financial health report.
	ViewReports
	// ViewWorkspace shows the accountant task queue and reviews.
	ViewWorkspace
	// ViewPlans shows plans and the checkout.
	ViewPlans
	// ViewAccount handles login, registration and logout.
	ViewAccount
	// ViewSettings shows demo timings and storage.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewEngine:
		return "engine"
	case ViewNotifications:
		return "notifications"
	case ViewRisk:
		return "risk"
	case ViewReports:
		return "reports"
	case ViewWorkspace:
		return "workspace"
	case ViewPlans:
		return "plans"
	case ViewAccount:
		return "account"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// PipelineUpdated carries a new pipeline snapshot.
type PipelineUpdated struct {
	State domain.RunState
}

// NotificationsChanged signals the read state of notifications changed.
type NotificationsChanged struct {
	Err error
}

// NotificationOpened carries the route a notification links to.
type NotificationOpened struct {
	ID    int
	Route string
	Err   error
}

// SessionChanged signals a login, registration or logout.
// Session is nil after a logout.
type SessionChanged struct {
	Session *domain.Session
	Err     error
}

// CheckoutCompleted carries the outcome of a simulated payment.
type CheckoutCompleted struct {
	Subscription *domain.Subscription
	Err          error
}

// SettingsLoaded carries the resolved demo settings.
type SettingsLoaded struct {
	Settings domain.DemoSettings
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
