// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the menu.
	Back key.Binding

	// Up and Down move through a list.
	Up   key.Binding
	Down key.Binding

	// Left and Right switch documents or tabs.
	Left  key.Binding
	Right key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Run starts processing the selected invoice.
	Run key.Binding

	// Reset cancels the run in progress.
	Reset key.Binding

	// MarkRead marks the selected notification read.
	MarkRead key.Binding

	// MarkAllRead marks every notification read.
	MarkAllRead key.Binding

	// Toggle flips a boolean option such as yearly billing.
	Toggle key.Binding

	// Method cycles the payment method.
	Method key.Binding

	// Filter cycles a view's secondary filter
	Filter key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Run: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "run"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset"),
		),
		MarkRead: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark read"),
		),
		MarkAllRead: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "mark all read"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yearly"),
		),
		Method: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "payment method"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Help, k.Quit}
}

// EngineHelp returns keybindings for the engine view.
func (k *KeyMap) EngineHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Run, k.Reset, k.Back}
}

// NotificationsHelp returns keybindings for the notification centre.
func (k *KeyMap) NotificationsHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.MarkRead, k.MarkAllRead, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.Run, k.Reset, k.MarkRead, k.MarkAllRead},
		{k.Toggle, k.Method, k.Filter},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
