package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// mockPipeline records intakes. Other methods are inert.
type mockPipeline struct {
	mu     sync.Mutex
	labels []string
}

func (m *mockPipeline) Select(string) error { return nil }

func (m *mockPipeline) Reset() {}

func (m *mockPipeline) Run() {}

func (m *mockPipeline) BeginIntake(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels = append(m.labels, label)
}

func (m *mockPipeline) State() domain.RunState { return domain.RunState{} }

func (m *mockPipeline) Document() domain.Document { return domain.Document{} }

func (m *mockPipeline) Stages() []domain.Stage { return nil }

func (m *mockPipeline) Subscribe() (<-chan domain.RunState, func()) {
	return make(chan domain.RunState), func() {}
}

func (m *mockPipeline) Wait(context.Context) (domain.RunState, error) {
	return domain.RunState{}, nil
}

func (m *mockPipeline) Labels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.labels...)
}

func TestNew_RequiresPipeline(t *testing.T) {
	w, err := New(t.TempDir(), nil)

	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrMissingPipeline)
}

func TestInbox_HandleEvent(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		dir      bool
		create   bool
		op       fsnotify.Op
		expected bool
	}{
		{name: "new pdf", file: "invoice.pdf", create: true, op: fsnotify.Create, expected: true},
		{name: "upper-case extension", file: "SCAN.PNG", create: true, op: fsnotify.Create, expected: true},
		{name: "write is ignored", file: "invoice.pdf", create: true, op: fsnotify.Write, expected: false},
		{name: "remove is ignored", file: "invoice.pdf", op: fsnotify.Remove, expected: false},
		{name: "hidden file", file: ".invoice.pdf", create: true, op: fsnotify.Create, expected: false},
		{name: "unsupported extension", file: "notes.txt", create: true, op: fsnotify.Create, expected: false},
		{name: "directory", file: "archive.pdf", dir: true, op: fsnotify.Create, expected: false},
		{name: "vanished file", file: "gone.pdf", op: fsnotify.Create, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.file)
			if tt.create {
				require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))
			}
			if tt.dir {
				require.NoError(t, os.Mkdir(path, 0o755))
			}

			pipeline := &mockPipeline{}
			w, err := New(dir, pipeline, WithLimit(rate.Inf, 1))
			require.NoError(t, err)

			got := w.handleEvent(fsnotify.Event{Name: path, Op: tt.op})

			assert.Equal(t, tt.expected, got)
			if tt.expected {
				assert.Equal(t, []string{tt.file}, pipeline.Labels())
			} else {
				assert.Empty(t, pipeline.Labels())
			}
		})
	}
}

func TestInbox_HandleEvent_Throttled(t *testing.T) {
	dir := t.TempDir()
	pipeline := &mockPipeline{}
	w, err := New(dir, pipeline, WithLimit(rate.Every(time.Hour), 1))
	require.NoError(t, err)

	for _, name := range []string{"a.pdf", "b.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Create})
	}

	assert.Equal(t, []string{"a.pdf"}, pipeline.Labels())
}

func TestInbox_HandleEvent_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	pipeline := &mockPipeline{}
	w, err := New(dir, pipeline, WithExtensions(".ofd"))
	require.NoError(t, err)

	assert.False(t, w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Create}))
}

func TestInbox_Run(t *testing.T) {
	dir := t.TempDir()
	pipeline := &mockPipeline{}

	var mu sync.Mutex
	var announced []string
	w, err := New(dir, pipeline, WithLimit(rate.Inf, 1), OnIntake(func(name string) {
		mu.Lock()
		defer mu.Unlock()
		announced = append(announced, name)
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// The watch is registered asynchronously; keep writing files until one is seen.
	require.Eventually(t, func() bool {
		name := filepath.Join(dir, time.Now().Format("150405.000000000")+".pdf")
		_ = os.WriteFile(name, []byte("x"), 0o644)
		return len(pipeline.Labels()) > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, announced)
}

func TestInbox_Run_MissingDir(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), &mockPipeline{})
	require.NoError(t, err)

	err = w.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInbox_Run_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	w, err := New(path, &mockPipeline{})
	require.NoError(t, err)

	err = w.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
