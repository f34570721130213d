package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

var engineJSON bool

var engineCmd = &cobra.Command{
	Use:   "engine",
	Short: "Run invoices through the AI engine",
	Long: `The AI engine walks an invoice through four stages:

  OCR识别   read the invoice fields
  NLP分析   classify the expense and suggest accounts
  规则匹配  check the accounting rules
  生成凭证  generate the voucher

Every result is pre-computed for the sample invoices.`,
}

var engineDocumentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List sample invoices",
	Args:  cobra.NoArgs,
	RunE:  runEngineDocuments,
}

var engineShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the full results for a sample invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runEngineShow,
}

var engineRunCmd = &cobra.Command{
	Use:   "run [id]",
	Short: "Process a sample invoice",
	Long: `Scan and process a sample invoice, printing each stage as it completes.
Without an id the currently selected invoice is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEngineRun,
}

var engineUploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a file and process it",
	Long: `Simulate uploading an invoice file. The file name is shown while
scanning; the results are those of the selected sample invoice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEngineUpload,
}

func init() {
	engineRunCmd.Flags().BoolVar(&engineJSON, "json", false, "output the final state as JSON")
	engineUploadCmd.Flags().BoolVar(&engineJSON, "json", false, "output the final state as JSON")
	engineCmd.AddCommand(engineDocumentsCmd)
	engineCmd.AddCommand(engineShowCmd)
	engineCmd.AddCommand(engineRunCmd)
	engineCmd.AddCommand(engineUploadCmd)
	rootCmd.AddCommand(engineCmd)
}

func runEngineDocuments(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	for _, d := range catalogService.Documents() {
		cmd.Printf("%-14s %-16s %s\n", d.ID, d.Label, d.Name)
	}
	return nil
}

func runEngineShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	doc, err := catalogService.Document(args[0])
	if err != nil {
		return err
	}

	printOCR(cmd, doc.OCR)
	printNLP(cmd, doc.NLP)
	printVoucher(cmd, doc.Voucher)
	return nil
}

func runEngineRun(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	if len(args) == 1 {
		if err := pipelineService.Select(args[0]); err != nil {
			return fmt.Errorf("failed to select %s: %w", args[0], err)
		}
	}

	doc := pipelineService.Document()
	return followRun(cmd, func() { pipelineService.BeginIntake(doc.Label) })
}

func runEngineUpload(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	label := ""
	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err != nil {
			return fmt.Errorf("cannot upload %s: %w", args[0], err)
		}
		label = filepath.Base(args[0])
	}

	return followRun(cmd, func() { pipelineService.BeginIntake(label) })
}

// followRun starts a run and prints progress until it completes.
func followRun(cmd *cobra.Command, start func()) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	updates, cancel := pipelineService.Subscribe()
	defer cancel()

	logger.Section("Pipeline")
	start()
	stages := pipelineService.Stages()

	printed := 0
	announced := false
	for {
		var state domain.RunState
		select {
		case s, ok := <-updates:
			if !ok {
				return errors.New("pipeline closed")
			}
			state = s
		case <-ctx.Done():
			pipelineService.Reset()
			return ctx.Err()
		}

		if state.IsIdle() {
			return errors.New("run was reset")
		}

		if !announced {
			logger.Debug("run %s: intake %s", state.RunID, state.UploadLabel)
			if !engineJSON {
				cmd.Printf("扫描中: %s\n", state.UploadLabel)
			}
			announced = true
		}
		for ; printed < len(state.Completed); printed++ {
			stage := stages[state.Completed[printed]]
			logger.Step(printed+1, len(stages), "%s completed after %s", stage.Key, stage.Duration)
			if !engineJSON {
				cmd.Printf("  ✓ %s (%s)\n", stage.Label, stage.Duration)
			}
		}

		if state.IsTerminal() {
			logger.Debug("run %s: result revealed", state.RunID)
			return printRunResult(cmd, state)
		}
	}
}

func printRunResult(cmd *cobra.Command, state domain.RunState) error {
	doc := pipelineService.Document()

	if engineJSON {
		data, err := json.MarshalIndent(struct {
			State    domain.RunState `json:"state"`
			Document domain.Document `json:"document"`
		}{state, doc}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println()
	printOCR(cmd, doc.OCR)
	printNLP(cmd, doc.NLP)
	printVoucher(cmd, doc.Voucher)
	return nil
}

func printOCR(cmd *cobra.Command, ocr domain.OCRResult) {
	printHeading(cmd, "OCR识别结果")
	cmd.Printf("发票代码: %s   发票号码: %s   开票日期: %s\n", ocr.InvoiceCode, ocr.InvoiceNo, ocr.Date)
	cmd.Printf("销售方: %s\n", ocr.Seller)
	cmd.Printf("购买方: %s\n", ocr.Buyer)
	for _, item := range ocr.Items {
		cmd.Printf("  %s  %g%s × ¥%s = ¥%s\n", item.Name, item.Qty, item.Unit, formatAmount(item.Price), formatAmount(item.Amount))
	}
	cmd.Printf("税率: %s   税额: ¥%s   价税合计: ¥%s\n\n", ocr.TaxRate, formatAmount(ocr.Tax), formatAmount(ocr.Total))
}

func printNLP(cmd *cobra.Command, nlp domain.NLPResult) {
	printHeading(cmd, "NLP分析结果")
	cmd.Printf("费用类别: %s   建议科目: %s\n", nlp.Category, nlp.SuggestedSubject)
	cmd.Printf("借方科目: %s\n", nlp.DebitAccount)
	cmd.Printf("贷方科目: %s\n", nlp.CreditAccount)
	if nlp.TaxAccount != "" {
		cmd.Printf("税金科目: %s\n", nlp.TaxAccount)
	}
	cmd.Printf("置信度: %.0f%%   标签: %s\n\n", nlp.Confidence*100, strings.Join(nlp.Tags, " / "))
}

func printVoucher(cmd *cobra.Command, v domain.Voucher) {
	printHeading(cmd, "记账凭证")
	for _, e := range v.Entries {
		cmd.Printf("  %s  %-20s ¥%s\n", e.Direction, e.Account, formatAmount(e.Amount))
	}
	debit, credit := v.Totals()
	cmd.Printf("  合计  借 ¥%s  贷 ¥%s\n", formatAmount(debit), formatAmount(credit))
	cmd.Printf("摘要: %s\n", v.Summary)
}

func printHeading(cmd *cobra.Command, title string) {
	width := terminalWidth(48)
	if width > 48 {
		width = 48
	}
	cmd.Println(title)
	cmd.Println(strings.Repeat("─", width))
}

// formatAmount prints whole yuan without decimals and fractions to the cent.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
