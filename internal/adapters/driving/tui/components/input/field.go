// Package input provides labelled text input fields for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
)

// Field wraps a bubbles textinput with a label.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewField creates an unfocused input field.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 32

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// NewPasswordField creates a field that masks its input.
func NewPasswordField(s *styles.Styles, label string) *Field {
	f := NewField(s, label, "")
	f.textinput.EchoMode = textinput.EchoPassword
	f.textinput.EchoCharacter = '•'
	return f
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label and input.
func (f *Field) View() string {
	labelStyle := f.styles.Muted
	if f.textinput.Focused() {
		labelStyle = f.styles.Subtitle
	}
	label := labelStyle.Width(10).Render(f.label)
	return lipgloss.JoinHorizontal(lipgloss.Center, label, f.styles.InputField.Render(f.textinput.View()))
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// Reset clears the input.
func (f *Field) Reset() {
	f.textinput.Reset()
}
