package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

// ==================== Store Creation Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "sentinel.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_InvalidDirectory(t *testing.T) {
	store, err := NewStore("/dev/null/cannot/create")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewStore_RecordsMigrationVersion(t *testing.T) {
	store := setupTestStore(t)

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.KeyValueStore().Set("k", "v"))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	val, ok, err := second.KeyValueStore().Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

// ==================== Key-Value Store Tests ====================

func TestKVStore_SetGet(t *testing.T) {
	kv := setupTestStore(t).KeyValueStore()

	require.NoError(t, kv.Set("sentinel_auth", `{"email":"demo@sentinel.com","name":"demo"}`))

	val, ok, err := kv.Get("sentinel_auth")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"email":"demo@sentinel.com","name":"demo"}`, val)
}

func TestKVStore_Get_Missing(t *testing.T) {
	kv := setupTestStore(t).KeyValueStore()

	val, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestKVStore_Overwrite(t *testing.T) {
	kv := setupTestStore(t).KeyValueStore()

	require.NoError(t, kv.Set("sentinel_notifications_read", "[4,5,6]"))
	require.NoError(t, kv.Set("sentinel_notifications_read", "[1,2,3,4,5,6]"))

	val, _, err := kv.Get("sentinel_notifications_read")
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3,4,5,6]", val)
}

func TestKVStore_Remove(t *testing.T) {
	kv := setupTestStore(t).KeyValueStore()

	require.NoError(t, kv.Set("k", "v"))
	require.NoError(t, kv.Remove("k"))
	require.NoError(t, kv.Remove("k"))

	_, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_ClosedDatabase(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	kv := store.KeyValueStore()
	require.NoError(t, store.Close())

	_, _, err = kv.Get("k")
	assert.Error(t, err)
	assert.Error(t, kv.Set("k", "v"))
	assert.Error(t, kv.Remove("k"))
}
