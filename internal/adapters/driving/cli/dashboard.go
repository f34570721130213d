package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the risk dashboard",
	Long: `Show the tax-health score, the headline KPIs, the twelve-month revenue
trend and the number of open risk alerts.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	d := catalogService.Dashboard()

	cmd.Printf("税务健康分 %d · %s\n", d.Health.Score, d.Health.Level)
	cmd.Println()

	for _, k := range d.KPIs {
		marker := ""
		if k.Warn {
			marker = " !"
		}
		cmd.Printf("  %-10s %-10s %s%s\n", k.Label, k.Value, k.Change, marker)
	}

	if len(d.Revenue) > 0 {
		cmd.Println()
		cmd.Println("营收趋势 (万元 / 税负率)")
		for _, p := range d.Revenue {
			cmd.Printf("  %-4s %7.1f  %.2f%%\n", p.Month, p.Revenue, p.TaxRate)
		}
		if peak, ok := d.PeakRevenue(); ok {
			cmd.Printf("  峰值 %s ¥%.1f万\n", peak.Month, peak.Revenue)
		}
	}

	if alerts, err := catalogService.RiskAlerts(""); err == nil {
		cmd.Println()
		cmd.Printf("风险预警 %d 条 (sentinel risk 查看详情)\n", len(alerts))
	}
	return nil
}
