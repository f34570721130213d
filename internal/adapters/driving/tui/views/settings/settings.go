// Package settings provides the demo settings view for the TUI.
package settings

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Step is how far one +/- press moves a duration.
const Step = 100 * time.Millisecond

// row is one adjustable duration.
type row struct {
	label string
	get   func(domain.DemoSettings) time.Duration
	set   func(driving.SettingsService, time.Duration) error
}

// View is the demo settings view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings domain.DemoSettings
	rows     []row
	selected int
	err      error
	saved    bool

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		settingsService: settingsService,
		rows:            buildRows(),
		width:           80,
		height:          24,
	}
}

func buildRows() []row {
	rows := []row{{
		label: "扫描延迟",
		get:   func(s domain.DemoSettings) time.Duration { return s.IntakeDelay },
		set:   func(svc driving.SettingsService, d time.Duration) error { return svc.SetIntakeDelay(d) },
	}}
	for i, stage := range domain.DefaultStages() {
		rows = append(rows, row{
			label: stage.Label,
			get:   func(s domain.DemoSettings) time.Duration { return s.Stages[i].Duration },
			set:   func(svc driving.SettingsService, d time.Duration) error { return svc.SetStageDuration(stage.Key, d) },
		})
	}
	return append(rows, row{
		label: "支付处理",
		get:   func(s domain.DemoSettings) time.Duration { return s.PaymentDelay },
		set:   func(svc driving.SettingsService, d time.Duration) error { return svc.SetPaymentDelay(d) },
	})
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	v.err = nil
	v.saved = false
	return v.load()
}

func (v *View) load() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Settings: domain.DefaultDemoSettings()}
		}
		return messages.SettingsLoaded{Settings: svc.Get()}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.settings = msg.Settings
		return v, nil

	case messages.SettingsSaved:
		v.err = msg.Err
		v.saved = msg.Err == nil
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.settingsService == nil || v.settings.Stages == nil {
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.rows)-1 {
			v.selected++
		}
	case "+", "=", "right", "l":
		return v, v.adjust(Step)
	case "-", "left", "h":
		return v, v.adjust(-Step)
	case "s":
		backend := domain.StorageMemory
		if v.settings.Storage == domain.StorageMemory {
			backend = domain.StorageSQLite
		}
		svc := v.settingsService
		return v, func() tea.Msg {
			return messages.SettingsSaved{Err: svc.SetStorage(backend)}
		}
	case "d":
		return v, v.restoreDefaults()
	}
	return v, nil
}

// adjust moves the selected duration by delta, never below one step.
func (v *View) adjust(delta time.Duration) tea.Cmd {
	r := v.rows[v.selected]
	d := r.get(v.settings) + delta
	if d < Step {
		d = Step
	}
	svc := v.settingsService
	return func() tea.Msg {
		return messages.SettingsSaved{Err: r.set(svc, d)}
	}
}

func (v *View) restoreDefaults() tea.Cmd {
	svc := v.settingsService
	rows := v.rows
	return func() tea.Msg {
		defaults := svc.GetDefaults()
		for _, r := range rows {
			if err := r.set(svc, r.get(defaults)); err != nil {
				return messages.SettingsSaved{Err: err}
			}
		}
		return messages.SettingsSaved{Err: svc.SetStorage(defaults.Storage)}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("设置"))
	b.WriteString("\n\n")

	if v.settingsService == nil {
		b.WriteString(v.styles.Error.Render("Settings not available"))
		return b.String()
	}
	if v.settings.Stages == nil {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render("[Timings]"))
	b.WriteString("\n")
	for i, r := range v.rows {
		cursor := "  "
		label := v.styles.Normal.Width(12).Render(r.label)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Width(12).Render(r.label)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, label, r.get(v.settings))
	}
	fmt.Fprintf(&b, "  %s %s\n", v.styles.Muted.Width(12).Render("合计"), domain.TotalDuration(v.settings.Stages))

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("[Storage]"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", v.settings.Storage)

	b.WriteString("\n")
	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case v.saved:
		b.WriteString(v.styles.Success.Render("已保存，重启后生效"))
	}
	b.WriteString("\n\n")

	b.WriteString(v.styles.Help.Render("[j/k] move  [+/-] adjust  [s] storage  [d] defaults  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the settings last loaded.
func (v *View) Settings() domain.DemoSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
