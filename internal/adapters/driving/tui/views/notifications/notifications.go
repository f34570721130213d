// Package notifications provides the notification centre view for the TUI.
package notifications

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// View is the notification centre.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.NotificationService

	categories []domain.NotificationCategory
	tab        int
	items      []domain.Notification
	selected   int
	unread     int
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new notification centre view.
func NewView(s *styles.Styles, service driving.NotificationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		keymap:     keymap.DefaultKeyMap(),
		service:    service,
		categories: domain.AllNotificationCategories(),
		width:      80,
		height:     24,
	}
}

// Init reloads the current tab.
func (v *View) Init() tea.Cmd {
	v.err = nil
	v.reload()
	return nil
}

func (v *View) reload() {
	if v.service == nil {
		v.items = nil
		v.unread = 0
		return
	}
	v.items = v.service.List(v.Category())
	v.unread = v.service.UnreadCount()
	if v.selected >= len(v.items) {
		v.selected = max(len(v.items)-1, 0)
	}
}

// Update handles messages for the notification centre.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.NotificationsChanged:
		v.err = msg.Err
		v.reload()
		return v, nil

	case messages.NotificationOpened:
		v.err = msg.Err
		v.reload()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.service == nil {
		return v, nil
	}

	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Left):
		if v.tab > 0 {
			v.tab--
			v.selected = 0
			v.reload()
		}
	case keymap.Matches(k, v.keymap.Right):
		if v.tab < len(v.categories)-1 {
			v.tab++
			v.selected = 0
			v.reload()
		}
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Select):
		if n, ok := v.current(); ok {
			return v, v.open(n.ID)
		}
	case keymap.Matches(k, v.keymap.MarkRead):
		if n, ok := v.current(); ok {
			return v, v.markRead(n.ID)
		}
	case keymap.Matches(k, v.keymap.MarkAllRead):
		return v, v.markAllRead()
	}
	return v, nil
}

func (v *View) current() (domain.Notification, bool) {
	if v.selected < 0 || v.selected >= len(v.items) {
		return domain.Notification{}, false
	}
	return v.items[v.selected], true
}

func (v *View) open(id int) tea.Cmd {
	service := v.service
	return func() tea.Msg {
		route, err := service.Open(id)
		return messages.NotificationOpened{ID: id, Route: route, Err: err}
	}
}

func (v *View) markRead(id int) tea.Cmd {
	service := v.service
	return func() tea.Msg {
		return messages.NotificationsChanged{Err: service.MarkRead(id)}
	}
}

func (v *View) markAllRead() tea.Cmd {
	service := v.service
	return func() tea.Msg {
		return messages.NotificationsChanged{Err: service.MarkAllRead()}
	}
}

// View renders the notification centre.
func (v *View) View() string {
	var b strings.Builder

	title := "通知中心"
	if v.unread > 0 {
		title += " " + v.styles.Badge.Render(fmt.Sprintf("%d", v.unread))
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.service == nil {
		b.WriteString(v.styles.Error.Render("Notifications not available"))
		return b.String()
	}

	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	if len(v.items) == 0 {
		b.WriteString(v.styles.Muted.Render("暂无通知"))
		b.WriteString("\n")
	}
	for i, n := range v.items {
		b.WriteString(v.renderItem(i, n))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[←/→] tab  [j/k] move  [enter] open  [m] read  [a] read all  [esc] back"))
	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, len(v.categories))
	for i, c := range v.categories {
		if i == v.tab {
			tabs[i] = v.styles.ActiveTab.Render(c.Label())
		} else {
			tabs[i] = v.styles.Tab.Render(c.Label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) renderItem(i int, n domain.Notification) string {
	cursor := "  "
	if i == v.selected {
		cursor = "> "
	}

	dot := " "
	if !n.Read {
		dot = v.styles.Severity(n.Severity).Render("●")
	}

	title := v.styles.Normal.Render(n.Title)
	if n.Read {
		title = v.styles.Muted.Render(n.Title)
	} else if i == v.selected {
		title = v.styles.Selected.Render(n.Title)
	}

	return fmt.Sprintf("%s%s %s  %s\n    %s",
		cursor, dot, title, v.styles.Muted.Render(n.Time), v.styles.Muted.Render(n.Description))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Category returns the active tab.
func (v *View) Category() domain.NotificationCategory {
	return v.categories[v.tab]
}

// Items returns the notifications shown in the active tab.
func (v *View) Items() []domain.Notification {
	return v.items
}

// Unread returns the unread count at the last reload.
func (v *View) Unread() int {
	return v.unread
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
