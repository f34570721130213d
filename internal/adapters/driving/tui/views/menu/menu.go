// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	unread   int
	user     string
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "AI财务引擎", View: messages.ViewEngine},
			{Label: "通知中心", View: messages.ViewNotifications},
			{Label: "风险预警", View: messages.ViewRisk},
			{Label: "财税报告", View: messages.ViewReports},
			{Label: "工作台", View: messages.ViewWorkspace},
			{Label: "套餐订阅", View: messages.ViewPlans},
			{Label: "账户", View: messages.ViewAccount},
			{Label: "设置", View: messages.ViewSettings},
			{Label: "帮助", View: messages.ViewHelp},
			{Label: "退出", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("财界哨兵"))
	b.WriteString("\n\n")

	subtitle := "AI财税风险管理"
	if v.user != "" {
		subtitle += " · " + v.user
	}
	b.WriteString(v.styles.Muted.Render(subtitle))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}

		line := cursor + style.Render(item.Label)
		if item.View == messages.ViewNotifications && v.unread > 0 {
			line += " " + v.styles.Badge.Render(fmt.Sprintf("%d", v.unread))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SetUnread sets the badge shown next to the notification centre.
func (v *View) SetUnread(n int) {
	v.unread = n
}

// SetUser sets the signed-in name shown under the title. Empty hides it.
func (v *View) SetUser(name string) {
	v.user = name
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
