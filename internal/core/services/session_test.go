package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

func TestSessionService_LoginThenRestore(t *testing.T) {
	store := memory.NewKeyValueStore()
	svc := NewSessionService(store)

	session, err := svc.Login("demo@sentinel.com")
	require.NoError(t, err)
	assert.Equal(t, "demo", session.Name)

	restored := NewSessionService(store).Restore()
	require.NotNil(t, restored)
	assert.Equal(t, "demo@sentinel.com", restored.Email)
	assert.Equal(t, "demo", restored.Name)
}

func TestSessionService_PersistedLayout(t *testing.T) {
	store := memory.NewKeyValueStore()
	_, err := NewSessionService(store).Login("demo@sentinel.com")
	require.NoError(t, err)

	raw, ok, err := store.Get(SessionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"email":"demo@sentinel.com","name":"demo"}`, raw)
}

func TestSessionService_RegisterPlaceholders(t *testing.T) {
	svc := NewSessionService(memory.NewKeyValueStore())

	session, err := svc.Register("", "")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRegisterName, session.Name)
	assert.Equal(t, domain.DefaultRegisterEmail, session.Email)
	assert.Equal(t, session, svc.Current())
}

func TestSessionService_Current(t *testing.T) {
	svc := NewSessionService(memory.NewKeyValueStore())
	assert.Nil(t, svc.Current())

	_, err := svc.Login("alice@corp.cn")
	require.NoError(t, err)

	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Name)

	current.Name = "mallory"
	assert.Equal(t, "alice", svc.Current().Name)
}

func TestSessionService_Logout(t *testing.T) {
	store := memory.NewKeyValueStore()
	svc := NewSessionService(store)
	_, err := svc.Login("demo@sentinel.com")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	assert.Nil(t, svc.Current())
	assert.Nil(t, NewSessionService(store).Restore())
	assert.Equal(t, 0, store.Len())
}

func TestSessionService_Restore_Missing(t *testing.T) {
	svc := NewSessionService(memory.NewKeyValueStore())

	assert.Nil(t, svc.Restore())
	assert.Nil(t, svc.Current())
}

func TestSessionService_Restore_Malformed(t *testing.T) {
	for _, raw := range []string{"{bad", "null", `{"email":"x@y.z"}`, `[1,2]`, ""} {
		store := memory.NewKeyValueStore()
		require.NoError(t, store.Set(SessionKey, raw))

		svc := NewSessionService(store)
		assert.Nil(t, svc.Restore(), raw)
		assert.Nil(t, svc.Current(), raw)
	}
}

func TestSessionService_Restore_StoreError(t *testing.T) {
	store := newMockKVStore()
	store.getErr = errStorage

	assert.Nil(t, NewSessionService(store).Restore())
}

func TestSessionService_Restore_SetsCurrent(t *testing.T) {
	store := memory.NewKeyValueStore()
	require.NoError(t, store.Set(SessionKey, `{"email":"bob@corp.cn","name":"bob"}`))

	svc := NewSessionService(store)
	svc.Restore()

	require.NotNil(t, svc.Current())
	assert.Equal(t, "bob", svc.Current().Name)
}

func TestSessionService_LoginWriteFailureKeepsPreviousSession(t *testing.T) {
	store := newMockKVStore()
	svc := NewSessionService(store)
	_, err := svc.Login("first@corp.cn")
	require.NoError(t, err)

	store.setErr = errStorage
	_, err = svc.Login("second@corp.cn")

	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, "first@corp.cn", svc.Current().Email)
}

func TestSessionService_LogoutFailureKeepsSession(t *testing.T) {
	store := newMockKVStore()
	svc := NewSessionService(store)
	_, err := svc.Login("demo@sentinel.com")
	require.NoError(t, err)

	store.removeErr = errStorage

	assert.ErrorIs(t, svc.Logout(), errStorage)
	assert.NotNil(t, svc.Current())
}
