// Package cli provides the cobra command tree for sentinel.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Options are the global flags passed to the bootstrap function.
type Options struct {
	Verbose   bool
	ConfigDir string
	DataDir   string
	Ephemeral bool
}

// Services holds the core services the commands drive.
type Services struct {
	Pipeline      driving.PipelineService
	Notifications driving.NotificationService
	Session       driving.SessionService
	Catalog       driving.CatalogService
	Billing       driving.BillingService
	Settings      driving.SettingsService
	Reports       driving.ReportsService
	Workspace     driving.WorkspaceService
}

// BootstrapFunc builds the services once flags are parsed.
// The returned closer is called after the command finishes.
type BootstrapFunc func(opts Options) (*Services, func() error, error)

var (
	pipelineService     driving.PipelineService
	notificationService driving.NotificationService
	sessionService      driving.SessionService
	catalogService      driving.CatalogService
	billingService      driving.BillingService
	settingsService     driving.SettingsService
	reportsService      driving.ReportsService
	workspaceService    driving.WorkspaceService
)

var (
	bootstrap BootstrapFunc
	closer    func() error
	opts      Options
)

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "财界哨兵 - intelligent tax-risk demo",
	Long: `Sentinel is a local demo of an intelligent tax-risk platform.

It walks sample invoices through a scripted OCR, NLP, rule matching and
voucher generation pipeline, and ships a notification centre, risk alerts
and a simulated subscription checkout.

Nothing is really recognised or booked: every result is pre-computed.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print debug logs to stderr")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.sentinel)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "data directory (default ~/.sentinel/data)")
	flags.BoolVar(&opts.Ephemeral, "ephemeral", false, "keep all state in memory for this invocation")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services from flags.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	pipelineService = s.Pipeline
	notificationService = s.Notifications
	sessionService = s.Session
	catalogService = s.Catalog
	billingService = s.Billing
	settingsService = s.Settings
	reportsService = s.Reports
	workspaceService = s.Workspace
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if bootstrap == nil {
		return nil
	}

	logger.Section("Bootstrap")
	services, closeFn, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("starting sentinel: %w", err)
	}
	SetServices(services)
	closer = closeFn
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closer == nil {
		return nil
	}
	err := closer()
	closer = nil
	return err
}
