package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginSession(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		email    string
		display  string
	}{
		{"local part becomes name", "demo@sentinel.com", "demo@sentinel.com", "demo"},
		{"no at sign keeps whole identity", "alice", "alice", "alice"},
		{"empty local part uses placeholder", "@sentinel.com", "@sentinel.com", DefaultDisplayName},
		{"empty identity uses demo account", "", DefaultLoginEmail, "demo"},
		{"whitespace is trimmed", "  bob@corp.cn ", "bob@corp.cn", "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLoginSession(tt.identity)
			assert.Equal(t, tt.email, s.Email)
			assert.Equal(t, tt.display, s.Name)
			assert.True(t, s.Valid())
		})
	}
}

func TestNewRegisteredSession(t *testing.T) {
	s := NewRegisteredSession("张会计", "zhang@corp.cn")
	assert.Equal(t, "张会计", s.Name)
	assert.Equal(t, "zhang@corp.cn", s.Email)
}

func TestNewRegisteredSession_Placeholders(t *testing.T) {
	s := NewRegisteredSession("", "")

	assert.Equal(t, DefaultRegisterName, s.Name)
	assert.Equal(t, DefaultRegisterEmail, s.Email)
	assert.NotEmpty(t, s.Name)
	assert.NotEmpty(t, s.Email)
}

func TestSession_JSONLayout(t *testing.T) {
	data, err := json.Marshal(Session{Email: "demo@sentinel.com", Name: "demo"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"demo@sentinel.com","name":"demo"}`, string(data))
}

func TestSession_Valid(t *testing.T) {
	assert.False(t, Session{}.Valid())
	assert.False(t, Session{Email: "a@b.c"}.Valid())
	assert.True(t, Session{Email: "a@b.c", Name: "a"}.Valid())
}
