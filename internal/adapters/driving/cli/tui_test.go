package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_HelpOutput(t *testing.T) {
	output, err := runCommand(t, "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, output, "interactive terminal user interface")
	assert.Contains(t, output, "Controls:")
}

func TestTUIPorts(t *testing.T) {
	s := testServices(t)

	ports := tuiPorts()

	assert.Equal(t, s.Pipeline, ports.Pipeline)
	assert.Equal(t, s.Notifications, ports.Notifications)
	assert.Equal(t, s.Catalog, ports.Catalog)
	assert.Equal(t, s.Session, ports.Session)
	assert.Equal(t, s.Billing, ports.Billing)
	assert.Equal(t, s.Settings, ports.Settings)
	assert.Equal(t, s.Reports, ports.Reports)
	assert.Equal(t, s.Workspace, ports.Workspace)
	assert.NoError(t, ports.Validate())
}

func TestTUICmd_MissingServices(t *testing.T) {
	withoutServices(t)

	_, err := runCommand(t, "tui")

	require.Error(t, err)
	assert.ErrorIs(t, err, tui.ErrMissingPipelineService)
}
