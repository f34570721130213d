// Package reports provides the financial health report view for the TUI.
package reports

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

// Section is one tab of the report.
type Section int

const (
	SectionRadar Section = iota
	SectionBenchmark
	SectionCredit
	SectionSuggestions
)

var sectionLabels = []string{"健康雷达", "行业对标", "信贷报告", "优化建议"}

// priorities are cycled by the filter key. The empty priority shows all.
var priorities = []domain.Priority{"", domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}

const barWidth = 20

// View renders the tax health report one section at a time.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	reports driving.ReportsService

	section     Section
	report      domain.TaxReport
	priority    int
	suggestions []domain.TaxSuggestion
	err         error

	width  int
	height int
	ready  bool
}

// NewView creates a new reports view.
func NewView(s *styles.Styles, reports driving.ReportsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		reports: reports,
		width:   80,
		height:  24,
	}
}

// Init loads the report.
func (v *View) Init() tea.Cmd {
	if v.reports == nil {
		return nil
	}
	v.report = v.reports.Report()
	v.loadSuggestions()
	return nil
}

func (v *View) loadSuggestions() {
	v.suggestions, v.err = v.reports.Suggestions(v.Priority())
}

// Update handles messages for the reports view.
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
		if v.section > SectionRadar {
			v.section--
		}
	case keymap.Matches(k, v.keymap.Right):
		if v.section < SectionSuggestions {
			v.section++
		}
	case keymap.Matches(k, v.keymap.Filter):
		if v.section != SectionSuggestions || v.reports == nil {
			return
		}
		v.priority = (v.priority + 1) % len(priorities)
		v.loadSuggestions()
	}
}

// View renders the reports view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("财税报告"))
	b.WriteString("\n\n")

	if v.reports == nil {
		b.WriteString(v.styles.Error.Render("Reports not available"))
		return b.String()
	}

	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	switch v.section {
	case SectionRadar:
		b.WriteString(v.renderRadar())
	case SectionBenchmark:
		b.WriteString(v.renderBenchmark())
	case SectionCredit:
		b.WriteString(v.renderCredit())
	case SectionSuggestions:
		b.WriteString(v.renderSuggestions())
	}

	b.WriteString("\n")
	help := "[←/→] section  [esc] back"
	if v.section == SectionSuggestions {
		help = "[←/→] section  [f] priority  [esc] back"
	}
	b.WriteString(v.styles.Help.Render(help))
	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, len(sectionLabels))
	for i, label := range sectionLabels {
		if Section(i) == v.section {
			tabs[i] = v.styles.ActiveTab.Render(label)
		} else {
			tabs[i] = v.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) renderRadar() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", v.styles.Subtitle.Render("综合评分"), v.report.OverallScore())
	for _, d := range v.report.Radar {
		fmt.Fprintf(&b, "  %-6s %s %d/%d\n", d.Dimension, bar(d.Score, d.FullMark), d.Score, d.FullMark)
	}
	return b.String()
}

func (v *View) renderBenchmark() string {
	var b strings.Builder
	b.WriteString(v.styles.Muted.Render("本企业 / 行业均值"))
	b.WriteString("\n\n")
	for _, m := range v.report.Benchmark {
		delta := fmt.Sprintf("%+.1f", m.Delta())
		fmt.Fprintf(&b, "  %-6s %6.1f / %6.1f  %s\n", m.Metric, m.Self, m.Industry, v.styles.Muted.Render(delta))
	}
	return b.String()
}

func (v *View) renderCredit() string {
	c := v.report.Credit
	var b strings.Builder
	fmt.Fprintf(&b, "信用等级 %s\n最高授信 %s\n参考利率 %s\n", c.Grade, c.MaxLoan, c.Rate)
	for _, h := range c.Highlights {
		b.WriteString("\n" + v.styles.Success.Render("✓ ") + h)
	}
	return v.styles.Panel.Render(b.String()) + "\n"
}

func (v *View) renderSuggestions() string {
	var b strings.Builder

	filter := "全部"
	if p := v.Priority(); p != "" {
		filter = p.Label()
	}
	b.WriteString(v.styles.Muted.Render("筛选: " + filter))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}
	if len(v.suggestions) == 0 {
		b.WriteString(v.styles.Muted.Render("暂无建议"))
		b.WriteString("\n")
	}
	for _, s := range v.suggestions {
		tag := v.styles.Muted.Render("[" + s.Priority.Label() + "]")
		if s.Priority == domain.PriorityHigh {
			tag = v.styles.Warning.Render("[" + s.Priority.Label() + "]")
		}
		fmt.Fprintf(&b, "%s %s  %s\n", tag, v.styles.Normal.Render(s.Title), v.styles.Success.Render(s.Saving))
		fmt.Fprintf(&b, "    %s\n", v.styles.Muted.Render(s.Description))
	}
	return b.String()
}

func bar(score, full int) string {
	if full <= 0 {
		return strings.Repeat("░", barWidth)
	}
	filled := score * barWidth / full
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Priority returns the active suggestion filter. Empty means every priority.
func (v *View) Priority() domain.Priority {
	return priorities[v.priority]
}

// Suggestions returns the suggestions shown for the active filter.
func (v *View) Suggestions() []domain.TaxSuggestion {
	return v.suggestions
}
