package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyIntakeDelay    = "pipeline.intake_delay"
	keyStagePrefix    = "pipeline.stage."
	keyPaymentDelay   = "billing.payment_delay"
	keyStorageBackend = "storage.backend"
)

// SettingsService manages demo timings and the storage backend.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get resolves current settings. Missing, zero or invalid values use defaults.
func (s *SettingsService) Get() domain.DemoSettings {
	settings := domain.DefaultDemoSettings()

	if d := s.configStore.GetDuration(keyIntakeDelay); d > 0 {
		settings.IntakeDelay = d
	}
	for i, stage := range settings.Stages {
		if d := s.configStore.GetDuration(keyStagePrefix + stage.Key); d > 0 {
			settings.Stages[i].Duration = d
		}
	}
	if d := s.configStore.GetDuration(keyPaymentDelay); d > 0 {
		settings.PaymentDelay = d
	}
	if backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend)); backend.IsValid() {
		settings.Storage = backend
	}

	return settings
}

// SetIntakeDelay updates the scan latency before a run starts.
func (s *SettingsService) SetIntakeDelay(d time.Duration) error {
	return s.setDuration(keyIntakeDelay, d)
}

// SetStageDuration updates the duration of one stage.
func (s *SettingsService) SetStageDuration(key string, d time.Duration) error {
	for _, stage := range domain.DefaultStages() {
		if stage.Key == key {
			return s.setDuration(keyStagePrefix+key, d)
		}
	}
	return fmt.Errorf("stage %q: %w", key, domain.ErrInvalidInput)
}

// SetPaymentDelay updates the simulated checkout time.
func (s *SettingsService) SetPaymentDelay(d time.Duration) error {
	return s.setDuration(keyPaymentDelay, d)
}

// SetStorage selects the storage backend.
func (s *SettingsService) SetStorage(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("storage backend %q: %w", backend, domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyStorageBackend, string(backend)); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.DemoSettings {
	return domain.DefaultDemoSettings()
}

func (s *SettingsService) setDuration(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive: %w", key, domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(key, d.String()); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
