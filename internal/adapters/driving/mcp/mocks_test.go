package mcp

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	documents []domain.Document
	alerts    []domain.RiskAlert
	err       error
}

func (m *mockCatalogService) Documents() []domain.Document {
	return m.documents
}

func (m *mockCatalogService) Document(id string) (*domain.Document, error) {
	for _, d := range m.documents {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
}

func (m *mockCatalogService) RiskAlerts(_ domain.RiskLevel) ([]domain.RiskAlert, error) {
	return m.alerts, m.err
}

func (m *mockCatalogService) Dashboard() domain.Dashboard {
	return domain.Dashboard{}
}

// mockPipelineService is a mock implementation of driving.PipelineService.
// Wait returns final immediately.
type mockPipelineService struct {
	document  domain.Document
	stages    []domain.Stage
	final     domain.RunState
	waitErr   error
	selectErr error

	selected string
	label    string
	resets   int
}

func (m *mockPipelineService) Select(id string) error {
	if m.selectErr != nil {
		return m.selectErr
	}
	m.selected = id
	return nil
}

func (m *mockPipelineService) Reset() {
	m.resets++
}

func (m *mockPipelineService) BeginIntake(label string) {
	m.label = label
}

func (m *mockPipelineService) Run() {}

func (m *mockPipelineService) State() domain.RunState {
	return m.final
}

func (m *mockPipelineService) Document() domain.Document {
	return m.document
}

func (m *mockPipelineService) Stages() []domain.Stage {
	return m.stages
}

func (m *mockPipelineService) Subscribe() (<-chan domain.RunState, func()) {
	ch := make(chan domain.RunState)
	return ch, func() {}
}

func (m *mockPipelineService) Wait(_ context.Context) (domain.RunState, error) {
	return m.final, m.waitErr
}

// mockNotificationService is a mock implementation of driving.NotificationService.
type mockNotificationService struct {
	items []domain.Notification
	err   error
}

func (m *mockNotificationService) List(category domain.NotificationCategory) []domain.Notification {
	var out []domain.Notification
	for _, n := range m.items {
		if category == domain.CategoryAll || n.Category == category {
			out = append(out, n)
		}
	}
	return out
}

func (m *mockNotificationService) MarkRead(id int) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Read = true
		}
	}
	return nil
}

func (m *mockNotificationService) MarkAllRead() error {
	if m.err != nil {
		return m.err
	}
	for i := range m.items {
		m.items[i].Read = true
	}
	return nil
}

func (m *mockNotificationService) UnreadCount() int {
	n := 0
	for _, item := range m.items {
		if !item.Read {
			n++
		}
	}
	return n
}

func (m *mockNotificationService) Open(id int) (string, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Read = true
			return m.items[i].Link, nil
		}
	}
	return "", fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
}

func testDocument() domain.Document {
	return domain.Document{
		ID:    "INV-1",
		Name:  "发票1",
		Label: "专票·测试",
		OCR:   domain.OCRResult{Seller: "卖方", Total: 113},
		NLP:   domain.NLPResult{Category: "办公费", Confidence: 0.9},
		Voucher: domain.Voucher{
			Entries: []domain.VoucherEntry{
				{Direction: domain.Debit, Account: "管理费用", Amount: 100},
				{Direction: domain.Debit, Account: "应交税费", Amount: 13},
				{Direction: domain.Credit, Account: "银行存款", Amount: 113},
			},
			Summary: "购买办公用品",
		},
	}
}

func testNotifications() []domain.Notification {
	return []domain.Notification{
		{ID: 1, Category: domain.CategoryRisk, Title: "风险", Link: "/dashboard"},
		{ID: 2, Category: domain.CategoryAI, Title: "AI"},
		{ID: 3, Category: domain.CategorySystem, Title: "系统", Read: true},
	}
}

// overlapPipeline records how many runs are in flight at once.
type overlapPipeline struct {
	mockPipelineService
	active atomic.Int32
	peak   atomic.Int32
}

func (p *overlapPipeline) BeginIntake(string) {
	n := p.active.Add(1)
	for {
		seen := p.peak.Load()
		if n <= seen || p.peak.CompareAndSwap(seen, n) {
			return
		}
	}
}

func (p *overlapPipeline) Wait(_ context.Context) (domain.RunState, error) {
	time.Sleep(5 * time.Millisecond)
	p.active.Add(-1)
	return p.final, nil
}
