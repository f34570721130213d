// Package mcp provides an MCP (Model Context Protocol) server adapter for Sentinel.
// It lets AI assistants browse the sample invoices, run them through the
// pipeline and work the notification centre.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
