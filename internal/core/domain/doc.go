// Package domain defines the core business entities for Sentinel.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A sample invoice with its canned OCR, NLP and voucher results
//   - Stage / RunState: The staged processing pipeline and its observable state
//   - Notification: An entry in the notification centre
//   - Session: The signed-in demo identity
//   - RiskAlert, Dashboard: The risk dashboard and its headline figures
//   - TaxReport: Health radar, industry benchmark, credit report and suggestions
//   - Task, Review: The accountant workspace queue and review panel
//   - Plan, Quote, Subscription: Billing fixtures
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
