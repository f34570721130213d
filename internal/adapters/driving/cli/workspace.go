package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var workspaceStatus string

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Browse the accountant workspace",
	Long: `Browse the accountant workspace: the task queue shared between the AI
and the accountants, and the review panel of reviewed tasks.`,
	RunE: runWorkspaceTasks,
}

var workspaceTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the task queue",
	Long: `List the task queue with the workload split.

Statuses: done, review, pending`,
	Args: cobra.NoArgs,
	RunE: runWorkspaceTasks,
}

var workspaceReviewCmd = &cobra.Command{
	Use:   "review [task-id]",
	Short: "Show the review panel of a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceReview,
}

func init() {
	workspaceTasksCmd.Flags().StringVarP(&workspaceStatus, "status", "s", "", "only show tasks with this status")
	workspaceCmd.AddCommand(workspaceTasksCmd)
	workspaceCmd.AddCommand(workspaceReviewCmd)
	rootCmd.AddCommand(workspaceCmd)
}

func runWorkspaceTasks(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	tasks, err := workspaceService.Tasks(domain.TaskStatus(workspaceStatus))
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	for i, w := range workspaceService.Workload() {
		if i > 0 {
			cmd.Print(" · ")
		}
		cmd.Printf("%s %d%%", w.Name, w.Percent)
	}
	cmd.Println()
	cmd.Println()

	if len(tasks) == 0 {
		cmd.Println("No tasks.")
		return nil
	}
	for _, t := range tasks {
		cmd.Printf("%s  %-8s %s\n", t.ID, t.Status.Label(), t.Title)
		cmd.Printf("       %s · %s · 置信度 %.0f%%\n", t.Handler, t.Time, t.Confidence*100)
	}
	return nil
}

func runWorkspaceReview(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	r, err := workspaceService.Review(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("审核面板 · %s (%s)\n", r.Title, r.TaskID)
	cmd.Println()
	cmd.Println("AI生成凭证")
	for _, e := range r.Voucher.Entries {
		cmd.Printf("  %s  %-20s ¥%s\n", e.Direction, e.Account, formatAmount(e.Amount))
	}
	cmd.Printf("  %s\n", r.AINote)
	cmd.Println()
	cmd.Println("会计师审核意见")
	cmd.Printf("  %s\n", r.AccountantNote)
	cmd.Printf("  %s · 审核人：%s\n", r.Status.Label(), r.Reviewer)
	return nil
}
