package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	f := NewField(nil, "邮箱", "demo@sentinel.com")

	require.NotNil(t, f)
	assert.NotNil(t, f.styles)
	assert.Equal(t, "", f.Value())
	assert.False(t, f.Focused())
}

func TestField_Update_WhenFocused(t *testing.T) {
	f := NewField(nil, "邮箱", "")
	f.Focus()

	updated, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, f, updated)
	assert.Equal(t, "a", f.Value())
}

func TestField_Update_IgnoredWhenBlurred(t *testing.T) {
	f := NewField(nil, "邮箱", "")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, "", f.Value())
}

func TestField_View(t *testing.T) {
	f := NewField(nil, "邮箱", "")
	f.SetValue("zhang@corp.cn")

	view := f.View()

	assert.Contains(t, view, "邮箱")
	assert.Contains(t, view, "zhang@corp.cn")
}

func TestPasswordField_MasksInput(t *testing.T) {
	f := NewPasswordField(nil, "密码")
	f.SetValue("secret")

	view := f.View()

	assert.Equal(t, "secret", f.Value())
	assert.NotContains(t, view, "secret")
}

func TestField_FocusBlurReset(t *testing.T) {
	f := NewField(nil, "姓名", "")

	f.Focus()
	assert.True(t, f.Focused())
	f.SetValue("张三")

	f.Blur()
	assert.False(t, f.Focused())

	f.Reset()
	assert.Equal(t, "", f.Value())
}
