package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "memory"))

	assert.Equal(t, "memory", store.GetString("storage.backend"))
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("int_key", 42))
	require.NoError(t, store.Set("string_key", "not an int"))

	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.Equal(t, 0, store.GetInt("string_key"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
}

func TestConfigStore_GetDuration_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`
[pipeline]
intake_delay = "1.8s"

[pipeline.stage]
ocr = "600ms"
nlp = 400

[billing]
payment_delay = "bogus"
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 1800*time.Millisecond, store.GetDuration("pipeline.intake_delay"))
	assert.Equal(t, 600*time.Millisecond, store.GetDuration("pipeline.stage.ocr"))
	assert.Equal(t, 400*time.Millisecond, store.GetDuration("pipeline.stage.nlp"))
	assert.Equal(t, time.Duration(0), store.GetDuration("billing.payment_delay"))
	assert.Equal(t, time.Duration(0), store.GetDuration("pipeline.stage.rule"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("pipeline.stage.ocr", "900ms"))
	require.NoError(t, store1.Set("pipeline.intake_delay", "1s"))
	require.NoError(t, store1.Set("storage.backend", "sqlite"))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 900*time.Millisecond, store2.GetDuration("pipeline.stage.ocr"))
	assert.Equal(t, time.Second, store2.GetDuration("pipeline.intake_delay"))
	assert.Equal(t, "sqlite", store2.GetString("storage.backend"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("pipeline.stage.voucher", "500ms"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[pipeline.stage]")
	assert.Contains(t, string(data), "500ms")
	assert.NotContains(t, string(data), `"pipeline.stage.voucher"`)
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not valid TOML {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory so the write fails
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"pipeline.stage.ocr":    "1s",
		"pipeline.intake_delay": "2s",
		"top":                   1,
	})

	pipeline, ok := nested["pipeline"].(map[string]any)
	require.True(t, ok)
	stage, ok := pipeline["stage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1s", stage["ocr"])
	assert.Equal(t, "2s", pipeline["intake_delay"])
	assert.Equal(t, 1, nested["top"])
}

func TestNestMap_RoundTrip(t *testing.T) {
	flat := map[string]any{
		"a.b.c": "x",
		"a.d":   "y",
	}

	assert.Equal(t, flat, flattenMap(nestMap(flat), ""))
}
