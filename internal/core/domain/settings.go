package domain

import "time"

// StorageBackend selects where key-value records are persisted.
type StorageBackend string

const (
	// StorageSQLite persists records in the local metadata database.
	StorageSQLite StorageBackend = "sqlite"
	// StorageMemory keeps records for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is known.
func (b StorageBackend) IsValid() bool {
	return b == StorageSQLite || b == StorageMemory
}

// DemoSettings holds the tunable timings and storage choice of the demo.
type DemoSettings struct {
	// IntakeDelay is the scan latency before a run starts.
	IntakeDelay time.Duration

	// Stages is the stage list with configured durations applied.
	Stages []Stage

	// PaymentDelay is the simulated checkout processing time.
	PaymentDelay time.Duration

	Storage StorageBackend
}

// DefaultDemoSettings returns the timings of the original demo.
func DefaultDemoSettings() DemoSettings {
	return DemoSettings{
		IntakeDelay:  DefaultIntakeDelay,
		Stages:       DefaultStages(),
		PaymentDelay: DefaultPaymentDelay,
		Storage:      StorageSQLite,
	}
}
