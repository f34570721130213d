package driven

// KeyValueStore persists small string records by key.
// It mirrors browser local storage: one flat namespace, whole-value writes.
type KeyValueStore interface {
	// Get retrieves the value stored under key.
	// Returns false and no error if the key does not exist.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the value stored under key.
	// Removing a missing key is not an error.
	Remove(key string) error
}
