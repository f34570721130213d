package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/fixtures"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/navigator"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/services"
)

// testServices wires real services over fixtures and memory stores with
// millisecond timings, and restores the package services on cleanup.
func testServices(t *testing.T) *Services {
	t.Helper()

	catalog := fixtures.New()
	store := memory.NewKeyValueStore()
	settings := domain.DefaultDemoSettings()
	settings.IntakeDelay = time.Millisecond
	for i := range settings.Stages {
		settings.Stages[i].Duration = time.Millisecond
	}
	settings.PaymentDelay = time.Millisecond

	s := &Services{
		Pipeline:      services.NewPipelineController(catalog, clock.Real{}, settings),
		Notifications: services.NewNotificationService(catalog, store, navigator.NewHistory(nil)),
		Session:       services.NewSessionService(store),
		Catalog:       services.NewCatalogService(catalog),
		Billing:       services.NewBillingService(catalog, store, clock.Real{}, settings),
		Settings:      services.NewSettingsService(memory.NewConfigStore()),
		Reports:       services.NewReportsService(catalog),
		Workspace:     services.NewWorkspaceService(catalog),
	}

	prev := &Services{
		Pipeline:      pipelineService,
		Notifications: notificationService,
		Session:       sessionService,
		Catalog:       catalogService,
		Billing:       billingService,
		Settings:      settingsService,
		Reports:       reportsService,
		Workspace:     workspaceService,
	}
	SetServices(s)
	t.Cleanup(func() { SetServices(prev) })
	return s
}

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// withoutServices clears the package services for the duration of the test.
func withoutServices(t *testing.T) {
	t.Helper()
	testServices(t)
	SetServices(nil)
}

func requireContainsAll(t *testing.T, s string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		require.Contains(t, s, p)
	}
}

// resetFlags restores every flag in the tree to its default, since cobra
// keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
