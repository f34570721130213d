package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("storage.backend", "memory"))

	val, ok := store.Get("storage.backend")
	assert.True(t, ok)
	assert.Equal(t, "memory", val)
	assert.Equal(t, "memory", store.GetString("storage.backend"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.Equal(t, time.Duration(0), store.GetDuration("nonexistent"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("int", 42)
	_ = store.Set("int64", int64(7))
	_ = store.Set("float", 3.9)
	_ = store.Set("string", "12")

	assert.Equal(t, 42, store.GetInt("int"))
	assert.Equal(t, 7, store.GetInt("int64"))
	assert.Equal(t, 3, store.GetInt("float"))
	assert.Equal(t, 0, store.GetInt("string"))
}

func TestConfigStore_GetDuration(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Duration
	}{
		{"duration string", "1200ms", 1200 * time.Millisecond},
		{"seconds string", "2s", 2 * time.Second},
		{"integer milliseconds", 800, 800 * time.Millisecond},
		{"int64 milliseconds", int64(300), 300 * time.Millisecond},
		{"duration value", 5 * time.Second, 5 * time.Second},
		{"garbage string", "soon", 0},
		{"wrong type", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			_ = store.Set("key", tt.value)
			assert.Equal(t, tt.want, store.GetDuration("key"))
		})
	}
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("key", "value")

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "value", store.GetString("key"))
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key-" + string(rune('A'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetDuration(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, ok := store.Get("key-" + string(rune('A'+i)))
		assert.True(t, ok)
	}
}
