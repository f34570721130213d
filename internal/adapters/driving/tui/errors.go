package tui

import "errors"

// ErrMissingPipelineService is returned when the pipeline service is not provided.
var ErrMissingPipelineService = errors.New("tui: pipeline service is required")

// ErrMissingNotificationService is returned when the notification service is not provided.
var ErrMissingNotificationService = errors.New("tui: notification service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")
