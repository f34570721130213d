package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentSummary `json:"documents"`
	Count     int               `json:"count"`
}

// DocumentSummary describes one sample invoice.
type DocumentSummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Seller string  `json:"seller"`
	Total  float64 `json:"total"`
}

// ProcessDocumentInput is the input schema for the process_document tool.
type ProcessDocumentInput struct {
	DocumentID string `json:"document_id,omitempty" jsonschema:"the sample invoice to process (default: the selected one)"`
	Label      string `json:"label,omitempty" jsonschema:"file name shown while scanning"`
}

// ProcessDocumentOutput is the output schema for the process_document tool.
type ProcessDocumentOutput struct {
	RunID      string         `json:"run_id"`
	DocumentID string         `json:"document_id"`
	Stages     []string       `json:"stages"`
	Category   string         `json:"category"`
	Confidence float64        `json:"confidence"`
	Entries    []VoucherEntry `json:"entries"`
	Summary    string         `json:"summary"`
	Balanced   bool           `json:"balanced"`
}

// VoucherEntry is one line of a generated voucher.
type VoucherEntry struct {
	Direction string  `json:"direction"`
	Account   string  `json:"account"`
	Amount    float64 `json:"amount"`
}

// ListNotificationsInput is the input schema for the list_notifications tool.
type ListNotificationsInput struct {
	Category   string `json:"category,omitempty" jsonschema:"all, risk, system or ai (default all)"`
	UnreadOnly bool   `json:"unread_only,omitempty" jsonschema:"only return unread notifications"`
}

// ListNotificationsOutput is the output schema for the list_notifications tool.
type ListNotificationsOutput struct {
	Notifications []NotificationOutput `json:"notifications"`
	Unread        int                  `json:"unread"`
}

// NotificationOutput represents a single notification.
type NotificationOutput struct {
	ID          int    `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Read        bool   `json:"read"`
	Link        string `json:"link,omitempty"`
}

// MarkNotificationReadInput is the input schema for the mark_notification_read tool.
type MarkNotificationReadInput struct {
	ID  int  `json:"id,omitempty" jsonschema:"the notification to mark as read"`
	All bool `json:"all,omitempty" jsonschema:"mark every notification as read"`
}

// MarkNotificationReadOutput is the output schema for the mark_notification_read tool.
type MarkNotificationReadOutput struct {
	Unread int `json:"unread"`
}

// ListRiskAlertsInput is the input schema for the list_risk_alerts tool.
type ListRiskAlertsInput struct {
	Level string `json:"level,omitempty" jsonschema:"high, medium or low (default: all levels)"`
}

// ListRiskAlertsOutput is the output schema for the list_risk_alerts tool.
type ListRiskAlertsOutput struct {
	Alerts []RiskAlertOutput `json:"alerts"`
}

// RiskAlertOutput represents a single risk alert.
type RiskAlertOutput struct {
	Level       string `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
	How         string `json:"how"`
}

// GetTaxReportInput is the input schema for the get_tax_report tool.
type GetTaxReportInput struct {
	Priority string `json:"priority,omitempty" jsonschema:"only include suggestions at this priority: high, medium or low"`
}

// GetTaxReportOutput is the output schema for the get_tax_report tool.
type GetTaxReportOutput struct {
	OverallScore int                `json:"overall_score"`
	Radar        []RadarOutput      `json:"radar"`
	Benchmark    []BenchmarkOutput  `json:"benchmark"`
	Credit       CreditOutput       `json:"credit"`
	Suggestions  []SuggestionOutput `json:"suggestions"`
}

// RadarOutput is one health dimension.
type RadarOutput struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
	FullMark  int    `json:"full_mark"`
}

// BenchmarkOutput compares one metric with the industry.
type BenchmarkOutput struct {
	Metric   string  `json:"metric"`
	Self     float64 `json:"self"`
	Industry float64 `json:"industry"`
}

// CreditOutput is the credit report.
type CreditOutput struct {
	Grade      string   `json:"grade"`
	MaxLoan    string   `json:"max_loan"`
	Rate       string   `json:"rate"`
	Highlights []string `json:"highlights"`
}

// SuggestionOutput is one tax-optimisation suggestion.
type SuggestionOutput struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Saving      string `json:"saving"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ListTasksInput is the input schema for the list_workspace_tasks tool.
type ListTasksInput struct {
	Status string `json:"status,omitempty" jsonschema:"done, review or pending (default: every task)"`
}

// ListTasksOutput is the output schema for the list_workspace_tasks tool.
type ListTasksOutput struct {
	Tasks  []TaskOutput   `json:"tasks"`
	Counts map[string]int `json:"counts"`
}

// TaskOutput represents a single workspace task.
type TaskOutput struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	Handler    string  `json:"handler"`
	Time       string  `json:"time"`
	Confidence float64 `json:"confidence"`
	Reviewed   bool    `json:"reviewed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the sample invoices",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_document",
		Description: "Run a sample invoice through OCR, NLP, rule matching and voucher generation",
	}, s.handleProcessDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notifications",
		Description: "List notifications in the notification centre",
	}, s.handleListNotifications)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "mark_notification_read",
		Description: "Mark one or all notifications as read",
	}, s.handleMarkNotificationRead)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_risk_alerts",
		Description: "List the tax-risk alerts on the dashboard",
	}, s.handleListRiskAlerts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_tax_report",
		Description: "Get the financial health report: radar, industry benchmark, credit report and tax suggestions",
	}, s.handleGetTaxReport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_workspace_tasks",
		Description: "List the accountant workspace task queue",
	}, s.handleListTasks)
}

func (s *Server) handleListDocuments(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs := s.ports.Catalog.Documents()

	output := ListDocumentsOutput{
		Documents: make([]DocumentSummary, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentSummary{
			ID:     docs[i].ID,
			Name:   docs[i].Name,
			Label:  docs[i].Label,
			Seller: docs[i].OCR.Seller,
			Total:  docs[i].OCR.Total,
		}
	}
	return nil, output, nil
}

// handleProcessDocument starts a run and blocks until it completes.
func (s *Server) handleProcessDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProcessDocumentInput,
) (*mcp.CallToolResult, ProcessDocumentOutput, error) {
	if s.ports.Pipeline == nil {
		return nil, ProcessDocumentOutput{}, errors.New("pipeline is not available")
	}

	s.runMu.Lock()
	defer s.runMu.Unlock()

	if input.DocumentID != "" {
		if err := s.ports.Pipeline.Select(input.DocumentID); err != nil {
			return nil, ProcessDocumentOutput{}, fmt.Errorf("selecting %s: %w", input.DocumentID, err)
		}
	}

	doc := s.ports.Pipeline.Document()
	label := input.Label
	if label == "" {
		label = doc.Label
	}
	s.ports.Pipeline.BeginIntake(label)

	state, err := s.ports.Pipeline.Wait(ctx)
	if err != nil {
		s.ports.Pipeline.Reset()
		return nil, ProcessDocumentOutput{}, fmt.Errorf("waiting for run: %w", err)
	}
	if !state.IsTerminal() {
		return nil, ProcessDocumentOutput{}, errors.New("run was reset before completing")
	}

	stages := s.ports.Pipeline.Stages()
	output := ProcessDocumentOutput{
		RunID:      state.RunID,
		DocumentID: doc.ID,
		Stages:     make([]string, 0, len(state.Completed)),
		Category:   doc.NLP.Category,
		Confidence: doc.NLP.Confidence,
		Entries:    make([]VoucherEntry, len(doc.Voucher.Entries)),
		Summary:    doc.Voucher.Summary,
		Balanced:   doc.Voucher.Balanced(),
	}
	for _, i := range state.Completed {
		if i >= 0 && i < len(stages) {
			output.Stages = append(output.Stages, stages[i].Label)
		}
	}
	for i, e := range doc.Voucher.Entries {
		output.Entries[i] = VoucherEntry{
			Direction: e.Direction.String(),
			Account:   e.Account,
			Amount:    e.Amount,
		}
	}
	return nil, output, nil
}

func (s *Server) handleListNotifications(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListNotificationsInput,
) (*mcp.CallToolResult, ListNotificationsOutput, error) {
	if s.ports.Notifications == nil {
		return nil, ListNotificationsOutput{}, errors.New("notifications are not available")
	}

	category := domain.NotificationCategory(input.Category)
	if category == "" {
		category = domain.CategoryAll
	}
	if !category.IsValid() {
		return nil, ListNotificationsOutput{}, fmt.Errorf("category %q: %w", input.Category, domain.ErrInvalidInput)
	}

	items := s.ports.Notifications.List(category)
	output := ListNotificationsOutput{
		Notifications: make([]NotificationOutput, 0, len(items)),
		Unread:        s.ports.Notifications.UnreadCount(),
	}
	for _, n := range items {
		if input.UnreadOnly && n.Read {
			continue
		}
		output.Notifications = append(output.Notifications, toNotificationOutput(n))
	}
	return nil, output, nil
}

func (s *Server) handleMarkNotificationRead(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MarkNotificationReadInput,
) (*mcp.CallToolResult, MarkNotificationReadOutput, error) {
	if s.ports.Notifications == nil {
		return nil, MarkNotificationReadOutput{}, errors.New("notifications are not available")
	}

	var err error
	if input.All {
		err = s.ports.Notifications.MarkAllRead()
	} else {
		err = s.ports.Notifications.MarkRead(input.ID)
	}
	if err != nil {
		return nil, MarkNotificationReadOutput{}, err
	}

	return nil, MarkNotificationReadOutput{Unread: s.ports.Notifications.UnreadCount()}, nil
}

func (s *Server) handleListRiskAlerts(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListRiskAlertsInput,
) (*mcp.CallToolResult, ListRiskAlertsOutput, error) {
	alerts, err := s.ports.Catalog.RiskAlerts(domain.RiskLevel(input.Level))
	if err != nil {
		return nil, ListRiskAlertsOutput{}, err
	}

	output := ListRiskAlertsOutput{Alerts: make([]RiskAlertOutput, len(alerts))}
	for i, a := range alerts {
		output.Alerts[i] = RiskAlertOutput{
			Level:       string(a.Level),
			Title:       a.Title,
			Description: a.Description,
			How:         a.How,
		}
	}
	return nil, output, nil
}

func (s *Server) handleGetTaxReport(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetTaxReportInput,
) (*mcp.CallToolResult, GetTaxReportOutput, error) {
	if s.ports.Reports == nil {
		return nil, GetTaxReportOutput{}, errors.New("reports are not available")
	}

	suggestions, err := s.ports.Reports.Suggestions(domain.Priority(input.Priority))
	if err != nil {
		return nil, GetTaxReportOutput{}, err
	}

	report := s.ports.Reports.Report()
	output := GetTaxReportOutput{
		OverallScore: report.OverallScore(),
		Radar:        make([]RadarOutput, len(report.Radar)),
		Benchmark:    make([]BenchmarkOutput, len(report.Benchmark)),
		Credit: CreditOutput{
			Grade:      report.Credit.Grade,
			MaxLoan:    report.Credit.MaxLoan,
			Rate:       report.Credit.Rate,
			Highlights: report.Credit.Highlights,
		},
		Suggestions: make([]SuggestionOutput, len(suggestions)),
	}
	for i, d := range report.Radar {
		output.Radar[i] = RadarOutput{Dimension: d.Dimension, Score: d.Score, FullMark: d.FullMark}
	}
	for i, m := range report.Benchmark {
		output.Benchmark[i] = BenchmarkOutput{Metric: m.Metric, Self: m.Self, Industry: m.Industry}
	}
	for i, sg := range suggestions {
		output.Suggestions[i] = SuggestionOutput{
			ID:          sg.ID,
			Title:       sg.Title,
			Saving:      sg.Saving,
			Description: sg.Description,
			Priority:    string(sg.Priority),
		}
	}
	return nil, output, nil
}

func (s *Server) handleListTasks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListTasksInput,
) (*mcp.CallToolResult, ListTasksOutput, error) {
	if s.ports.Workspace == nil {
		return nil, ListTasksOutput{}, errors.New("workspace is not available")
	}

	tasks, err := s.ports.Workspace.Tasks(domain.TaskStatus(input.Status))
	if err != nil {
		return nil, ListTasksOutput{}, err
	}

	output := ListTasksOutput{
		Tasks:  make([]TaskOutput, len(tasks)),
		Counts: make(map[string]int),
	}
	for st, n := range s.ports.Workspace.Counts() {
		output.Counts[string(st)] = n
	}
	for i, t := range tasks {
		_, reviewErr := s.ports.Workspace.Review(t.ID)
		output.Tasks[i] = TaskOutput{
			ID:         t.ID,
			Title:      t.Title,
			Status:     string(t.Status),
			Handler:    t.Handler,
			Time:       t.Time,
			Confidence: t.Confidence,
			Reviewed:   reviewErr == nil,
		}
	}
	return nil, output, nil
}

func toNotificationOutput(n domain.Notification) NotificationOutput {
	return NotificationOutput{
		ID:          n.ID,
		Category:    string(n.Category),
		Title:       n.Title,
		Description: n.Description,
		Time:        n.Time,
		Read:        n.Read,
		Link:        n.Link,
	}
}
