package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptPassword reads a password without echo when stdin is a terminal.
// The demo never checks it; non-interactive runs skip the prompt.
func promptPassword(cmd *cobra.Command, label string) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	cmd.Print(label)
	_, _ = term.ReadPassword(fd)
	cmd.Println()
}

// terminalWidth returns the output width, or fallback when stdout is not a terminal.
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
