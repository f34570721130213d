// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateRunning State = "running"
	StateInfo    State = "info"
	StateError   State = "error"
)

// Bar displays the signed-in user, the unread count and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	bindings []key.Binding
	state    State
	message  string
	user     string
	unread   int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the user, unread badge and message.
func (s *Bar) renderLeft() string {
	parts := make([]string, 0, 3)

	if s.user != "" {
		parts = append(parts, s.styles.Normal.Render(s.user))
	} else {
		parts = append(parts, s.styles.Muted.Render("未登录"))
	}

	if s.unread > 0 {
		parts = append(parts, s.styles.Badge.Render(fmt.Sprintf("%d", s.unread)))
	}

	switch s.state {
	case StateRunning:
		parts = append(parts, s.styles.Subtitle.Render(s.messageOr("处理中...")))
	case StateError:
		parts = append(parts, s.styles.Error.Render("Error: "+s.messageOr("unknown")))
	case StateInfo:
		if s.message != "" {
			parts = append(parts, s.styles.Success.Render(s.message))
		}
	case StateReady:
	}

	return strings.Join(parts, " ")
}

func (s *Bar) messageOr(fallback string) string {
	if s.message != "" {
		return s.message
	}
	return fallback
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.bindings
	if len(bindings) == 0 {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state and message.
func (s *Bar) SetState(state State, message string) {
	s.state = state
	s.message = message
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetUser sets the signed-in display name; empty means signed out.
func (s *Bar) SetUser(name string) {
	s.user = name
}

// SetUnread sets the unread notification count.
func (s *Bar) SetUnread(count int) {
	s.unread = count
}

// Unread returns the unread notification count.
func (s *Bar) Unread() int {
	return s.unread
}

// SetBindings sets the hints shown on the right; nil shows the short help.
func (s *Bar) SetBindings(bindings []key.Binding) {
	s.bindings = bindings
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Clear resets the state and message.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
