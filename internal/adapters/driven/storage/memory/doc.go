// Package memory provides in-memory implementations of driven port interfaces.
// Nothing survives the process; used by --ephemeral and by tests.
package memory
