package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingPipelineService,
		ErrMissingNotificationService,
		ErrMissingCatalogService,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrors_Messages(t *testing.T) {
	assert.Contains(t, ErrMissingPipelineService.Error(), "pipeline service")
	assert.Contains(t, ErrMissingNotificationService.Error(), "notification service")
	assert.Contains(t, ErrMissingCatalogService.Error(), "catalog service")
}
