package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Sentinel.

The TUI shows the AI engine, notification centre, risk alerts, plans,
account and settings with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  ←/→      - Switch tab or invoice
  Enter    - Select / Run
  Esc      - Back / Cancel
  ?        - Help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the configured services.
func tuiPorts() *tui.Ports {
	return &tui.Ports{
		Pipeline:      pipelineService,
		Notifications: notificationService,
		Catalog:       catalogService,
		Session:       sessionService,
		Billing:       billingService,
		Settings:      settingsService,
		Reports:       reportsService,
		Workspace:     workspaceService,
	}
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	defer app.Close()

	if ctx := cmd.Context(); ctx != nil {
		app.WithContext(ctx)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
