// Package risk provides the dashboard risk alert view for the TUI.
package risk

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// levels are the filter tabs. The empty level shows every alert.
var levels = []domain.RiskLevel{"", domain.RiskHigh, domain.RiskMedium, domain.RiskLow}

// View lists risk alerts and expands their explanation.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService

	tab      int
	alerts   []domain.RiskAlert
	selected int
	expanded bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new risk view.
func NewView(s *styles.Styles, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		catalog: catalog,
		width:   80,
		height:  24,
	}
}

// Init loads the alerts for the active filter.
func (v *View) Init() tea.Cmd {
	v.load()
	return nil
}

func (v *View) load() {
	v.selected = 0
	v.expanded = false
	if v.catalog == nil {
		v.alerts = nil
		return
	}
	v.alerts, v.err = v.catalog.RiskAlerts(v.Level())
}

// Update handles messages for the risk view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Left):
		if v.tab > 0 {
			v.tab--
			v.load()
		}
	case keymap.Matches(k, v.keymap.Right):
		if v.tab < len(levels)-1 {
			v.tab++
			v.load()
		}
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.alerts)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Select):
		v.expanded = !v.expanded
	}
}

// View renders the risk view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("风险预警"))
	b.WriteString("\n\n")

	if v.catalog == nil {
		b.WriteString(v.styles.Error.Render("Risk alerts not available"))
		return b.String()
	}

	b.WriteString(v.renderDashboard())
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}
	if len(v.alerts) == 0 {
		b.WriteString(v.styles.Muted.Render("暂无预警"))
		b.WriteString("\n")
	}

	for i, a := range v.alerts {
		cursor := "  "
		title := v.styles.Normal.Render(a.Title)
		if i == v.selected {
			cursor = "> "
			title = v.styles.Selected.Render(a.Title)
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor,
			v.styles.Risk(a.Level).Render("["+a.Level.Label()+"]"), title, v.styles.Muted.Render(a.Time))
		fmt.Fprintf(&b, "    %s\n", v.styles.Muted.Render(a.Description))

		if i == v.selected && v.expanded {
			b.WriteString(v.renderExplanation(a))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[←/→] level  [j/k] move  [enter] explain  [esc] back"))
	return b.String()
}

func (v *View) renderDashboard() string {
	d := v.catalog.Dashboard()
	cards := make([]string, 0, len(d.KPIs)+1)
	cards = append(cards, v.styles.Panel.Render(fmt.Sprintf("税务健康分\n%s",
		v.styles.Success.Render(fmt.Sprintf("%d %s", d.Health.Score, d.Health.Level)))))
	for _, k := range d.KPIs {
		change := v.styles.Muted.Render(k.Change)
		if k.Warn {
			change = v.styles.Warning.Render(k.Change)
		}
		cards = append(cards, v.styles.Panel.Render(k.Label+"\n"+k.Value+" "+change))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (v *View) renderTabs() string {
	tabs := make([]string, len(levels))
	for i, l := range levels {
		label := "全部"
		if l != "" {
			label = l.Label()
		}
		if i == v.tab {
			tabs[i] = v.styles.ActiveTab.Render(label)
		} else {
			tabs[i] = v.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) renderExplanation(a domain.RiskAlert) string {
	rows := []struct{ label, text string }{
		{"是什么", a.What},
		{"为什么", a.Why},
		{"怎么办", a.How},
		{"影响", a.Impact},
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.styles.Subtitle.Render(r.label) + "  " + r.text)
	}
	return v.styles.Panel.Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Level returns the active filter. Empty means every level.
func (v *View) Level() domain.RiskLevel {
	return levels[v.tab]
}

// Alerts returns the alerts shown for the active filter.
func (v *View) Alerts() []domain.RiskAlert {
	return v.alerts
}

// Expanded reports whether the selected alert shows its explanation.
func (v *View) Expanded() bool {
	return v.expanded
}
