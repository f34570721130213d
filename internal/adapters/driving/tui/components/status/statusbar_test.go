package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/keymap"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 80, bar.width)
}

func TestBar_View_SignedOut(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	assert.Contains(t, view, "未登录")
	assert.Contains(t, view, "esc: back")
}

func TestBar_View_UserAndUnread(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetUser("demo")
	bar.SetUnread(3)

	view := bar.View()

	assert.Contains(t, view, "demo")
	assert.Contains(t, view, "3")
	assert.Equal(t, 3, bar.Unread())
}

func TestBar_View_States(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetState(StateRunning, "")
	assert.Contains(t, bar.View(), "处理中...")

	bar.SetState(StateError, "disk full")
	assert.Contains(t, bar.View(), "Error: disk full")

	bar.SetState(StateInfo, "支付成功")
	assert.Contains(t, bar.View(), "支付成功")
}

func TestBar_SetBindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(160)

	bar.SetBindings(km.EngineHelp())
	assert.Contains(t, bar.View(), "x: reset")

	bar.SetBindings(nil)
	assert.NotContains(t, bar.View(), "x: reset")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError, "boom")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}
