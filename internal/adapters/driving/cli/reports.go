package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var reportsPriority string

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show the financial health report",
	Long: `Show the financial health report: the five-dimension health radar, the
industry benchmark, the credit report and the tax-optimisation suggestions.

Use --priority to only list suggestions at high, medium or low priority.`,
	Args: cobra.NoArgs,
	RunE: runReports,
}

func init() {
	reportsCmd.Flags().StringVarP(&reportsPriority, "priority", "p", "", "only show suggestions at this priority")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, _ []string) error {
	if reportsService == nil {
		return errors.New("reports service not configured")
	}

	suggestions, err := reportsService.Suggestions(domain.Priority(reportsPriority))
	if err != nil {
		return fmt.Errorf("failed to list suggestions: %w", err)
	}
	report := reportsService.Report()

	cmd.Printf("财税健康雷达 (综合 %d)\n", report.OverallScore())
	for _, d := range report.Radar {
		cmd.Printf("  %-8s %3d/%d\n", d.Dimension, d.Score, d.FullMark)
	}

	cmd.Println()
	cmd.Println("行业对标 (本企业 / 行业均值)")
	for _, m := range report.Benchmark {
		cmd.Printf("  %-8s %6.2f / %6.2f  (%+.2f)\n", m.Metric, m.Self, m.Industry, m.Delta())
	}

	cmd.Println()
	c := report.Credit
	cmd.Printf("信贷赋能报告  信用等级 %s · 最高授信 %s · 利率 %s\n", c.Grade, c.MaxLoan, c.Rate)
	for _, h := range c.Highlights {
		cmd.Printf("  ✓ %s\n", h)
	}

	cmd.Println()
	cmd.Println("税务优化建议")
	if len(suggestions) == 0 {
		cmd.Println("  No suggestions.")
		return nil
	}
	for _, s := range suggestions {
		cmd.Printf("  [%s] %s  %s\n", s.Priority.Label(), s.Title, s.Saving)
		cmd.Printf("    %s\n", s.Description)
	}
	return nil
}
