package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxReport_OverallScore(t *testing.T) {
	r := TaxReport{Radar: []HealthDimension{{Score: 80}, {Score: 91}}}
	assert.Equal(t, 85, r.OverallScore())

	assert.Equal(t, 0, TaxReport{}.OverallScore())
}

func TestPriority_Label(t *testing.T) {
	assert.Equal(t, "高优先级", PriorityHigh.Label())
	assert.Equal(t, "urgent", Priority("urgent").Label())
	assert.False(t, Priority("urgent").IsValid())
}

func TestDashboard_PeakRevenue(t *testing.T) {
	d := Dashboard{Revenue: []RevenuePoint{
		{Month: "1月", Revenue: 90},
		{Month: "2月", Revenue: 120},
		{Month: "3月", Revenue: 110},
	}}

	peak, ok := d.PeakRevenue()
	assert.True(t, ok)
	assert.Equal(t, "2月", peak.Month)

	_, ok = Dashboard{}.PeakRevenue()
	assert.False(t, ok)
}

func TestTaskStatus_Label(t *testing.T) {
	assert.Equal(t, "待审核", TaskReview.Label())
	assert.True(t, TaskPending.IsValid())
	assert.False(t, TaskStatus("blocked").IsValid())
	assert.Equal(t, "已审批通过", ReviewApproved.Label())
}
