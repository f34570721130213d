// Package workspace provides the accountant workspace view for the TUI.
package workspace

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

// statuses are the queue tabs. The empty status shows every task.
var statuses = []domain.TaskStatus{"", domain.TaskDone, domain.TaskReview, domain.TaskPending}

const workloadWidth = 30

// View shows the task queue and the review panel of the selected task.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	workspace driving.WorkspaceService

	tab      int
	tasks    []domain.Task
	counts   map[domain.TaskStatus]int
	selected int
	review   *domain.Review
	showing  bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new workspace view.
func NewView(s *styles.Styles, workspace driving.WorkspaceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		workspace: workspace,
		width:     80,
		height:    24,
	}
}

// Init loads the queue for the active tab.
func (v *View) Init() tea.Cmd {
	v.load()
	return nil
}

func (v *View) load() {
	v.selected = 0
	v.closeReview()
	if v.workspace == nil {
		v.tasks = nil
		return
	}
	v.counts = v.workspace.Counts()
	v.tasks, v.err = v.workspace.Tasks(v.Status())
}

func (v *View) closeReview() {
	v.showing = false
	v.review = nil
}

// Update handles messages for the workspace view.
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
		if v.tab < len(statuses)-1 {
			v.tab++
			v.load()
		}
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.closeReview()
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.tasks)-1 {
			v.selected++
			v.closeReview()
		}
	case keymap.Matches(k, v.keymap.Select):
		v.toggleReview()
	}
}

func (v *View) toggleReview() {
	if v.showing {
		v.closeReview()
		return
	}
	if v.workspace == nil || len(v.tasks) == 0 {
		return
	}
	v.showing = true
	// A task without a review panel shows the empty state.
	v.review, _ = v.workspace.Review(v.tasks[v.selected].ID)
}

// View renders the workspace view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("工作台"))
	b.WriteString("\n\n")

	if v.workspace == nil {
		b.WriteString(v.styles.Error.Render("Workspace not available"))
		return b.String()
	}

	b.WriteString(v.renderWorkload())
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}
	if len(v.tasks) == 0 {
		b.WriteString(v.styles.Muted.Render("暂无任务"))
		b.WriteString("\n")
	}

	for i, t := range v.tasks {
		cursor := "  "
		title := v.styles.Normal.Render(t.Title)
		if i == v.selected {
			cursor = "> "
			title = v.styles.Selected.Render(t.Title)
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, v.styles.Muted.Render(t.ID), title, v.statusStyle(t.Status).Render(t.Status.Label()))
		fmt.Fprintf(&b, "    %s\n", v.styles.Muted.Render(fmt.Sprintf("%s · %s · 置信度 %.0f%%", t.Handler, t.Time, t.Confidence*100)))

		if i == v.selected && v.showing {
			b.WriteString(v.renderReview())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[←/→] status  [j/k] move  [enter] review  [esc] back"))
	return b.String()
}

func (v *View) renderWorkload() string {
	shares := v.workspace.Workload()
	var bar, legend strings.Builder
	used := 0
	for i, s := range shares {
		n := s.Percent * workloadWidth / 100
		if i == len(shares)-1 {
			n = workloadWidth - used
		}
		if n < 0 {
			n = 0
		}
		used += n
		style := v.styles.Success
		glyph := "█"
		if i > 0 {
			style = v.styles.Warning
			glyph = "▓"
		}
		bar.WriteString(style.Render(strings.Repeat(glyph, n)))
		if i > 0 {
			legend.WriteString(" · ")
		}
		fmt.Fprintf(&legend, "%s %d%%", s.Name, s.Percent)
	}
	return bar.String() + "\n" + v.styles.Muted.Render(legend.String())
}

func (v *View) renderTabs() string {
	tabs := make([]string, len(statuses))
	for i, st := range statuses {
		label := fmt.Sprintf("全部 %d", v.total())
		if st != "" {
			label = fmt.Sprintf("%s %d", st.Label(), v.counts[st])
		}
		if i == v.tab {
			tabs[i] = v.styles.ActiveTab.Render(label)
		} else {
			tabs[i] = v.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) total() int {
	total := 0
	for _, n := range v.counts {
		total += n
	}
	return total
}

func (v *View) renderReview() string {
	if v.review == nil {
		return v.styles.Panel.Render(v.styles.Muted.Render("暂无审核记录"))
	}
	r := v.review
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("AI生成凭证"))
	for _, e := range r.Voucher.Entries {
		fmt.Fprintf(&b, "\n%s %s  ¥%s", e.Direction, e.Account, formatAmount(e.Amount))
	}
	b.WriteString("\n" + v.styles.Warning.Render(r.AINote))
	b.WriteString("\n\n" + v.styles.Subtitle.Render("会计师审核意见"))
	b.WriteString("\n" + r.AccountantNote)
	b.WriteString("\n" + v.styles.Success.Render(r.Status.Label()) + " · 审核人：" + r.Reviewer)
	return v.styles.Panel.Render(b.String())
}

func (v *View) statusStyle(st domain.TaskStatus) lipgloss.Style {
	switch st {
	case domain.TaskDone:
		return v.styles.Success
	case domain.TaskReview:
		return v.styles.Warning
	default:
		return v.styles.Muted
	}
}

func formatAmount(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Status returns the active tab. Empty means every status.
func (v *View) Status() domain.TaskStatus {
	return statuses[v.tab]
}

// Tasks returns the tasks shown for the active tab.
func (v *View) Tasks() []domain.Task {
	return v.tasks
}

// Review returns the open review panel, if any.
func (v *View) Review() *domain.Review {
	return v.review
}

// ReviewOpen reports whether the review panel of the selected task is shown.
func (v *View) ReviewOpen() bool {
	return v.showing
}
