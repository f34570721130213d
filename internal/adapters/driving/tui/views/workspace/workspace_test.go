package workspace

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/fixtures"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/services"
)

func newTestView() *View {
	view := NewView(nil, services.NewWorkspaceService(fixtures.New()))
	view.Init()
	return view
}

func TestView_Init(t *testing.T) {
	view := newTestView()

	assert.Equal(t, domain.TaskStatus(""), view.Status())
	assert.Len(t, view.Tasks(), 7)
	assert.False(t, view.ReviewOpen())

	out := view.View()
	assert.Contains(t, out, "AI自动处理 70% · 人工审核 30%")
	assert.Contains(t, out, "T-001")
	assert.Contains(t, out, "置信度 97%")
}

func TestView_FilterByStatus(t *testing.T) {
	tests := []struct {
		presses int
		status  domain.TaskStatus
		count   int
		first   string
	}{
		{1, domain.TaskDone, 3, "T-001"},
		{2, domain.TaskReview, 2, "T-004"},
		{3, domain.TaskPending, 2, "T-006"},
		{5, domain.TaskPending, 2, "T-006"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			view := newTestView()
			for i := 0; i < tt.presses; i++ {
				view.Update(tea.KeyMsg{Type: tea.KeyRight})
			}

			assert.Equal(t, tt.status, view.Status())
			require.Len(t, view.Tasks(), tt.count)
			assert.Equal(t, tt.first, view.Tasks()[0].ID)
		})
	}
}

func TestView_ReviewPanel(t *testing.T) {
	view := newTestView()
	view.Update(tea.KeyMsg{Type: tea.KeyRight})
	view.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.NotContains(t, view.View(), "会计师审核意见")

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, view.ReviewOpen())
	require.NotNil(t, view.Review())
	assert.Equal(t, "T-004", view.Review().TaskID)

	out := view.View()
	assert.Contains(t, out, "AI生成凭证")
	assert.Contains(t, out, "主营业务成本-关联采购  ¥180000")
	assert.Contains(t, out, "会计师审核意见")
	assert.Contains(t, out, "审核人：张会计")

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, view.ReviewOpen())
	assert.Nil(t, view.Review())
}

func TestView_ReviewPanel_Empty(t *testing.T) {
	view := newTestView()
	view.Update(tea.KeyMsg{Type: tea.KeyRight})
	view.Update(tea.KeyMsg{Type: tea.KeyRight})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, view.ReviewOpen())
	assert.Nil(t, view.Review())
	assert.Contains(t, view.View(), "暂无审核记录")
}

func TestView_MoveClosesReview(t *testing.T) {
	view := newTestView()
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.False(t, view.ReviewOpen())
}

func TestView_FilterClosesReview(t *testing.T) {
	view := newTestView()
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.False(t, view.ReviewOpen())
}

func TestView_NilService(t *testing.T) {
	view := NewView(nil, nil)
	view.Init()
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, view.ReviewOpen())
	assert.Contains(t, view.View(), "Workspace not available")
}
