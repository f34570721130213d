package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var (
	riskLevel   string
	riskExplain bool
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Show tax-risk alerts",
	Long: `Show the risk alerts raised on the dashboard.

Use --level to filter by high, medium or low, and --explain to print the
what / why / how breakdown for each alert.`,
	Args: cobra.NoArgs,
	RunE: runRisk,
}

func init() {
	riskCmd.Flags().StringVarP(&riskLevel, "level", "l", "", "only show alerts at this level")
	riskCmd.Flags().BoolVarP(&riskExplain, "explain", "e", false, "explain each alert")
	rootCmd.AddCommand(riskCmd)
}

func runRisk(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	alerts, err := catalogService.RiskAlerts(domain.RiskLevel(riskLevel))
	if err != nil {
		return fmt.Errorf("failed to list risk alerts: %w", err)
	}

	if len(alerts) == 0 {
		cmd.Println("No risk alerts.")
		return nil
	}

	for i, a := range alerts {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("[%s] %s  (%s)\n", a.Level.Label(), a.Title, a.Time)
		cmd.Printf("  %s\n", a.Description)
		if riskExplain {
			cmd.Printf("  是什么: %s\n", a.What)
			cmd.Printf("  为什么: %s\n", a.Why)
			cmd.Printf("  怎么办: %s\n", a.How)
			cmd.Printf("  影响:   %s\n", a.Impact)
		}
	}
	return nil
}
