package driving

import (
	"time"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// SettingsService manages demo timings and the storage backend.
type SettingsService interface {
	// Get resolves current settings, applying defaults for missing or invalid values.
	Get() domain.DemoSettings

	// SetIntakeDelay updates the scan latency before a run starts.
	SetIntakeDelay(d time.Duration) error

	// SetStageDuration updates the duration of one stage.
	SetStageDuration(key string, d time.Duration) error

	// SetPaymentDelay updates the simulated checkout time.
	SetPaymentDelay(d time.Duration) error

	// SetStorage selects the storage backend.
	SetStorage(backend domain.StorageBackend) error

	// GetDefaults returns default settings.
	GetDefaults() domain.DemoSettings
}
