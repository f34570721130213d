// Package engine provides the AI engine view: pick a sample invoice, run it
// through the stages and watch the results appear.
package engine

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

// View is the AI engine view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	pipeline driving.PipelineService
	catalog  driving.CatalogService

	documents []domain.Document
	selected  int
	stages    []domain.Stage
	state     domain.RunState
	err       error

	width  int
	height int
	ready  bool
}

// NewView creates a new engine view.
func NewView(s *styles.Styles, pipeline driving.PipelineService, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		pipeline: pipeline,
		catalog:  catalog,
		width:    80,
		height:   24,
	}
}

// Init syncs the view with the controller.
func (v *View) Init() tea.Cmd {
	v.err = nil
	if v.catalog != nil {
		v.documents = v.catalog.Documents()
	}
	if v.pipeline == nil {
		return nil
	}

	v.stages = v.pipeline.Stages()
	v.state = v.pipeline.State()
	active := v.pipeline.Document().ID
	for i, d := range v.documents {
		if d.ID == active {
			v.selected = i
		}
	}
	return nil
}

// Update handles messages for the engine view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PipelineUpdated:
		v.state = msg.State
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pipeline == nil {
		return v, nil
	}

	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Left):
		v.selectDocument(v.selected - 1)
	case keymap.Matches(k, v.keymap.Right):
		v.selectDocument(v.selected + 1)
	case keymap.Matches(k, v.keymap.Run):
		v.pipeline.BeginIntake(v.pipeline.Document().Label)
		v.state = v.pipeline.State()
	case keymap.Matches(k, v.keymap.Reset):
		v.pipeline.Reset()
		v.state = v.pipeline.State()
	}
	return v, nil
}

func (v *View) selectDocument(i int) {
	if i < 0 || i >= len(v.documents) || i == v.selected {
		return
	}
	if err := v.pipeline.Select(v.documents[i].ID); err != nil {
		v.err = err
		return
	}
	v.selected = i
	v.err = nil
	v.state = v.pipeline.State()
}

// View renders the engine view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("AI财务引擎"))
	b.WriteString("\n\n")

	if v.pipeline == nil {
		b.WriteString(v.styles.Error.Render("Pipeline not available"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(v.renderProgress())
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}

	if results := v.renderResults(); results != "" {
		b.WriteString("\n")
		b.WriteString(results)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, len(v.documents))
	for i, d := range v.documents {
		if i == v.selected {
			tabs[i] = v.styles.ActiveTab.Render(d.Label)
		} else {
			tabs[i] = v.styles.Tab.Render(d.Label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) renderProgress() string {
	var b strings.Builder

	switch {
	case v.state.Scanning:
		b.WriteString(v.styles.Subtitle.Render("扫描中: " + v.state.UploadLabel))
	case v.state.IsTerminal():
		b.WriteString(v.styles.Success.Render("处理完成"))
	case v.state.Running:
		b.WriteString(v.styles.Subtitle.Render("处理中..."))
	default:
		b.WriteString(v.styles.Muted.Render("按 r 开始识别"))
	}
	b.WriteString("\n")

	for i, s := range v.stages {
		var line string
		switch {
		case v.state.StageCompleted(i):
			line = v.styles.Success.Render("✓ " + s.Label)
		case v.state.CurrentStage == i:
			line = v.styles.Subtitle.Render("▶ " + s.Label)
		default:
			line = v.styles.Muted.Render("· " + s.Label)
		}
		b.WriteString("  " + line + v.styles.Muted.Render(fmt.Sprintf("  %s", s.Duration)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderResults shows every panel revealed so far.
func (v *View) renderResults() string {
	if v.state.Revealed == domain.ResultNone || v.selected >= len(v.documents) {
		return ""
	}
	doc := v.documents[v.selected]

	panels := []string{v.renderOCR(doc.OCR)}
	if v.state.Revealed >= domain.ResultNLP {
		panels = append(panels, v.renderNLP(doc.NLP))
	}
	if v.state.Revealed >= domain.ResultVoucher {
		panels = append(panels, v.renderVoucher(doc.Voucher))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (v *View) renderOCR(ocr domain.OCRResult) string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("OCR识别结果"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "发票号码 %s   开票日期 %s\n", ocr.InvoiceNo, ocr.Date)
	fmt.Fprintf(&b, "销售方 %s\n", ocr.Seller)
	for _, item := range ocr.Items {
		fmt.Fprintf(&b, "  %s  %g%s  ¥%s\n", item.Name, item.Qty, item.Unit, formatAmount(item.Amount))
	}
	fmt.Fprintf(&b, "税率 %s   税额 ¥%s   价税合计 ¥%s", ocr.TaxRate, formatAmount(ocr.Tax), formatAmount(ocr.Total))
	return v.styles.Panel.Render(b.String())
}

func (v *View) renderNLP(nlp domain.NLPResult) string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("NLP分析结果"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "费用类别 %s   置信度 %.0f%%\n", nlp.Category, nlp.Confidence*100)
	fmt.Fprintf(&b, "借 %s\n贷 %s", nlp.DebitAccount, nlp.CreditAccount)
	if len(nlp.Tags) > 0 {
		fmt.Fprintf(&b, "\n%s", v.styles.Muted.Render(strings.Join(nlp.Tags, " · ")))
	}
	return v.styles.Panel.Render(b.String())
}

func (v *View) renderVoucher(voucher domain.Voucher) string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("记账凭证"))
	b.WriteString("\n")
	for _, e := range voucher.Entries {
		fmt.Fprintf(&b, "%s  %-18s ¥%s\n", e.Direction, e.Account, formatAmount(e.Amount))
	}
	b.WriteString(v.styles.Muted.Render("摘要: " + voucher.Summary))
	return v.styles.Panel.Render(b.String())
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[←/→] invoice  [r] run  [x] reset  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// State returns the last pipeline snapshot the view received.
func (v *View) State() domain.RunState {
	return v.state
}

// SelectedIndex returns the index of the active invoice.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func formatAmount(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}
