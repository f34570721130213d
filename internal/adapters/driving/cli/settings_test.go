package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

func TestSettingsShowCmd(t *testing.T) {
	testServices(t)

	for _, args := range [][]string{{"settings"}, {"settings", "show"}} {
		output, err := runCommand(t, args...)

		require.NoError(t, err)
		requireContainsAll(t, output,
			"[Pipeline]",
			"Intake delay: 2s",
			"OCR识别",
			"Total: 2.8s",
			"Payment delay: 2s",
			"Backend: sqlite",
		)
	}
}

func TestSettingsIntakeCmd(t *testing.T) {
	s := testServices(t)

	output, err := runCommand(t, "settings", "intake", "1500")

	require.NoError(t, err)
	assert.Contains(t, output, "Intake delay set to 1.5s")
	assert.Equal(t, 1500*time.Millisecond, s.Settings.Get().IntakeDelay)
}

func TestSettingsStageCmd(t *testing.T) {
	s := testServices(t)

	_, err := runCommand(t, "settings", "stage", "nlp", "2s")

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, s.Settings.Get().Stages[1].Duration)
}

func TestSettingsStageCmd_UnknownStage(t *testing.T) {
	testServices(t)

	_, err := runCommand(t, "settings", "stage", "audit", "2s")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsPaymentCmd(t *testing.T) {
	s := testServices(t)

	_, err := runCommand(t, "settings", "payment", "500ms")

	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, s.Settings.Get().PaymentDelay)
}

func TestSettingsCmd_InvalidDuration(t *testing.T) {
	testServices(t)

	tests := [][]string{
		{"settings", "intake", "soon"},
		{"settings", "payment", "0"},
		{"settings", "intake", "--", "-1s"},
	}
	for _, args := range tests {
		_, err := runCommand(t, args...)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, args)
	}
}

func TestSettingsStorageCmd(t *testing.T) {
	s := testServices(t)

	output, err := runCommand(t, "settings", "storage", "MEMORY")
	require.NoError(t, err)
	assert.Contains(t, output, "Storage backend set to memory")
	assert.Equal(t, domain.StorageMemory, s.Settings.Get().Storage)

	_, err = runCommand(t, "settings", "storage", "redis")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"250", 250 * time.Millisecond},
		{"2s", 2 * time.Second},
		{"1m30s", 90 * time.Second},
	}
	for _, tt := range tests {
		got, err := parseDuration(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := parseDuration("later")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseChoice(t *testing.T) {
	assert.Equal(t, 1, parseChoice("", 2, 1))
	assert.Equal(t, 2, parseChoice("2", 2, 1))
	assert.Equal(t, 1, parseChoice("3", 2, 1))
	assert.Equal(t, 1, parseChoice("x", 2, 1))
}
