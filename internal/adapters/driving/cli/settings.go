package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage demo settings",
	Long: `View and configure the demo timings and the storage backend.

Use subcommands to change a single value or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsIntakeCmd = &cobra.Command{
	Use:   "intake [duration]",
	Short: "Set the scan time before a run starts",
	Long: `Set how long an uploaded invoice is scanned before the stages start.

Durations use Go syntax, e.g. 2s, 1500ms.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsIntake,
}

var settingsStageCmd = &cobra.Command{
	Use:   "stage [key] [duration]",
	Short: "Set the duration of one stage",
	Long: `Set the duration of one pipeline stage.

Stages:
  ocr      OCR识别
  nlp      NLP分析
  rule     规则匹配
  voucher  生成凭证`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsStage,
}

var settingsPaymentCmd = &cobra.Command{
	Use:   "payment [duration]",
	Short: "Set the simulated payment time",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPayment,
}

var settingsStorageCmd = &cobra.Command{
	Use:   "storage [backend]",
	Short: "Set the storage backend",
	Long: `Set where sessions, read notifications and subscriptions are kept.

Available backends:
  sqlite  - persisted under the data directory
  memory  - forgotten when the command exits`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsStorage,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsIntakeCmd)
	settingsCmd.AddCommand(settingsStageCmd)
	settingsCmd.AddCommand(settingsPaymentCmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Pipeline]")
	cmd.Printf("  Intake delay: %s\n", settings.IntakeDelay)
	for _, s := range settings.Stages {
		cmd.Printf("  %-8s %-10s %s\n", s.Key, s.Label, s.Duration)
	}
	cmd.Printf("  Total: %s\n", domain.TotalDuration(settings.Stages))
	cmd.Println()

	cmd.Println("[Billing]")
	cmd.Printf("  Payment delay: %s\n", settings.PaymentDelay)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage)

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	current := settingsService.Get()

	cmd.Println("Sentinel Settings Wizard")
	cmd.Println("========================")
	cmd.Println()
	cmd.Println("Press Enter to keep the current value.")
	cmd.Println()

	intake, err := promptDuration(cmd, reader, "Intake delay", current.IntakeDelay)
	if err != nil {
		return err
	}
	if err := settingsService.SetIntakeDelay(intake); err != nil {
		return fmt.Errorf("failed to save intake delay: %w", err)
	}

	for _, s := range current.Stages {
		d, err := promptDuration(cmd, reader, s.Label, s.Duration)
		if err != nil {
			return err
		}
		if err := settingsService.SetStageDuration(s.Key, d); err != nil {
			return fmt.Errorf("failed to save %s duration: %w", s.Key, err)
		}
	}

	payment, err := promptDuration(cmd, reader, "Payment delay", current.PaymentDelay)
	if err != nil {
		return err
	}
	if err := settingsService.SetPaymentDelay(payment); err != nil {
		return fmt.Errorf("failed to save payment delay: %w", err)
	}

	cmd.Println()
	cmd.Println("Storage backend:")
	cmd.Println("  1. sqlite - persisted under the data directory")
	cmd.Println("  2. memory - forgotten when the command exits")
	defaultChoice := 1
	if current.Storage == domain.StorageMemory {
		defaultChoice = 2
	}
	cmd.Printf("Select [%d]: ", defaultChoice)
	backend := domain.StorageSQLite
	if parseChoice(readLine(reader), 2, defaultChoice) == 2 {
		backend = domain.StorageMemory
	}
	if err := settingsService.SetStorage(backend); err != nil {
		return fmt.Errorf("failed to save storage backend: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

func runSettingsIntake(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	d, err := parseDuration(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetIntakeDelay(d); err != nil {
		return fmt.Errorf("failed to set intake delay: %w", err)
	}

	cmd.Printf("Intake delay set to %s\n", d)
	return nil
}

func runSettingsStage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	d, err := parseDuration(args[1])
	if err != nil {
		return err
	}
	if err := settingsService.SetStageDuration(args[0], d); err != nil {
		return fmt.Errorf("failed to set stage duration: %w", err)
	}

	cmd.Printf("Stage %s set to %s\n", args[0], d)
	return nil
}

func runSettingsPayment(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	d, err := parseDuration(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetPaymentDelay(d); err != nil {
		return fmt.Errorf("failed to set payment delay: %w", err)
	}

	cmd.Printf("Payment delay set to %s\n", d)
	return nil
}

func runSettingsStorage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend := domain.StorageBackend(strings.ToLower(args[0]))
	if err := settingsService.SetStorage(backend); err != nil {
		return fmt.Errorf("failed to set storage backend: %w", err)
	}

	cmd.Printf("Storage backend set to %s\n", backend)
	return nil
}

func promptDuration(cmd *cobra.Command, reader *bufio.Reader, label string, current time.Duration) (time.Duration, error) {
	cmd.Printf("%s [%s]: ", label, current)
	input := readLine(reader)
	if input == "" {
		return current, nil
	}
	return parseDuration(input)
}

// parseDuration accepts Go durations and bare integers as milliseconds.
func parseDuration(input string) (time.Duration, error) {
	if ms, err := strconv.Atoi(input); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", input, domain.ErrInvalidInput)
	}
	return d, nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
