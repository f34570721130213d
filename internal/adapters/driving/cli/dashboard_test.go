package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCmd(t *testing.T) {
	testServices(t)

	output, err := runCommand(t, "dashboard")

	require.NoError(t, err)
	requireContainsAll(t, output,
		"税务健康分 85 · 良好",
		"本月营收",
		"发票异常",
		"峰值 2月 ¥128.6万",
		"风险预警 3 条",
	)
}

func TestDashboardCmd_NoService(t *testing.T) {
	withoutServices(t)

	_, err := runCommand(t, "dashboard")

	assert.EqualError(t, err, "catalog service not configured")
}
