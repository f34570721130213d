// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - KeyValueStore: Session, notification and subscription persistence
//   - Catalog: Fixture documents, notifications, risk alerts and plans
//   - Clock: Time source and timer scheduling for the pipeline and checkout
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Navigator: Route sink for opened notifications. Without it, Open only marks read.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
