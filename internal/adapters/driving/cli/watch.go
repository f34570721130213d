package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/watcher"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Process invoices dropped into a directory",
	Long: `Watch a directory and scan every invoice file that appears in it.

Accepted files: .pdf .ofd .xml .jpg .jpeg .png
At most one file per second starts a run; a new file replaces the run in
progress. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	updates, cancel := pipelineService.Subscribe()
	defer cancel()

	w, err := watcher.New(args[0], pipelineService, watcher.OnIntake(func(name string) {
		cmd.Printf("扫描中: %s\n", name)
	}))
	if err != nil {
		return err
	}

	go reportCompletions(ctx, cmd, updates)

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	return w.Run(ctx)
}

// reportCompletions prints the voucher summary of every finished run.
func reportCompletions(ctx context.Context, cmd *cobra.Command, updates <-chan domain.RunState) {
	lastRun := ""
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			if !state.IsTerminal() || state.RunID == lastRun {
				continue
			}
			lastRun = state.RunID
			doc := pipelineService.Document()
			debit, _ := doc.Voucher.Totals()
			cmd.Printf("  ✓ %s · %s · ¥%s\n", state.UploadLabel, doc.Voucher.Summary, formatAmount(debit))
		}
	}
}
