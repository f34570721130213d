package risk

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/fixtures"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/services"
)

func newTestView() *View {
	view := NewView(nil, services.NewCatalogService(fixtures.New()))
	view.Init()
	return view
}

func TestView_Init(t *testing.T) {
	view := newTestView()

	assert.Equal(t, domain.RiskLevel(""), view.Level())
	assert.Len(t, view.Alerts(), 3)
	assert.False(t, view.Expanded())
}

func TestView_FilterByLevel(t *testing.T) {
	tests := []struct {
		presses int
		level   domain.RiskLevel
		title   string
	}{
		{1, domain.RiskHigh, "进项发票集中作废预警"},
		{2, domain.RiskMedium, "增值税税负率偏低提醒"},
		{3, domain.RiskLow, "企业所得税季度预缴提醒"},
		{5, domain.RiskLow, "企业所得税季度预缴提醒"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			view := newTestView()
			for i := 0; i < tt.presses; i++ {
				view.Update(tea.KeyMsg{Type: tea.KeyRight})
			}

			assert.Equal(t, tt.level, view.Level())
			assert.Len(t, view.Alerts(), 1)
			assert.Equal(t, tt.title, view.Alerts()[0].Title)
		})
	}
}

func TestView_Explain(t *testing.T) {
	view := newTestView()
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.NotContains(t, view.View(), "是什么")

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	out := view.View()
	assert.True(t, view.Expanded())
	assert.Contains(t, out, "是什么")
	assert.Contains(t, out, "税负率持续偏低是税务局重点监控指标之一")
	assert.NotContains(t, out, "建议立即核查作废原因")

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, view.Expanded())
}

func TestView_FilterCollapses(t *testing.T) {
	view := newTestView()
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.False(t, view.Expanded())
}

func TestView_NilCatalog(t *testing.T) {
	view := NewView(nil, nil)
	view.Init()

	assert.Contains(t, view.View(), "Risk alerts not available")
}

func TestView_DashboardHeader(t *testing.T) {
	view := newTestView()

	out := view.View()
	assert.Contains(t, out, "税务健康分")
	assert.Contains(t, out, "85 良好")
}
