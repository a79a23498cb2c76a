package state

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/logger"
	"github.com/bookclubapp/bookclub-client/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir(), logger.Discard().Logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSessionAuthenticate(t *testing.T) {
	stub := newStub(t).reply("/api/Authentication/authenticate", map[string]string{"user": "u1"})
	st := newTestStore(t)
	s := NewSession(stub.gateway(t), st, logger.Discard().Logger)

	require.NoError(t, s.Authenticate(context.Background(), "margaret", "hunter2"))

	cur := s.Current()
	assert.Equal(t, "u1", cur.UserID)
	assert.Equal(t, "margaret", cur.Username)
	assert.True(t, s.Authenticated())

	// The session survives through the local store.
	persisted, err := st.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, cur, persisted)
}

func TestSessionAuthenticateValidatesInput(t *testing.T) {
	stub := newStub(t)
	s := NewSession(stub.gateway(t), newTestStore(t), logger.Discard().Logger)

	err := s.Authenticate(context.Background(), "", "hunter2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Zero(t, stub.calls["/api/Authentication/authenticate"], "backend should not be called")
	assert.False(t, s.Authenticated())
}

func TestSessionAuthenticateFailureLeavesSessionEmpty(t *testing.T) {
	stub := newStub(t).fail("/api/Authentication/authenticate", http.StatusUnauthorized, "bad credentials")
	s := NewSession(stub.gateway(t), newTestStore(t), logger.Discard().Logger)

	err := s.Authenticate(context.Background(), "margaret", "wrong")
	require.Error(t, err)
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.UserID())
}

func TestSessionRegisterOverwritesExisting(t *testing.T) {
	stub := newStub(t).
		reply("/api/Authentication/authenticate", map[string]string{"user": "u1"}).
		reply("/api/Authentication/register", map[string]string{"user": "u2"})
	s := NewSession(stub.gateway(t), newTestStore(t), logger.Discard().Logger)

	require.NoError(t, s.Authenticate(context.Background(), "margaret", "hunter2"))
	require.NoError(t, s.Register(context.Background(), "vonnegut", "pw"))

	cur := s.Current()
	assert.Equal(t, "u2", cur.UserID)
	assert.Equal(t, "vonnegut", cur.Username)
}

func TestSessionLogout(t *testing.T) {
	stub := newStub(t).reply("/api/Authentication/authenticate", map[string]string{"user": "u1"})
	st := newTestStore(t)
	s := NewSession(stub.gateway(t), st, logger.Discard().Logger)

	require.NoError(t, s.Authenticate(context.Background(), "margaret", "hunter2"))
	require.NoError(t, s.Logout())

	assert.False(t, s.Authenticated())
	_, err := st.LoadSession()
	assert.True(t, errors.Is(err, errors.ErrNoSession))
}

func TestSessionDeleteCurrentUserClearsSession(t *testing.T) {
	stub := newStub(t).
		reply("/api/Authentication/authenticate", map[string]string{"user": "u1"}).
		reply("/api/Authentication/deleteUser", map[string]string{})
	s := NewSession(stub.gateway(t), newTestStore(t), logger.Discard().Logger)

	require.NoError(t, s.Authenticate(context.Background(), "margaret", "hunter2"))
	require.NoError(t, s.DeleteUser(context.Background(), "u1"))
	assert.False(t, s.Authenticated())
}

func TestSessionDeleteOtherUserKeepsSession(t *testing.T) {
	stub := newStub(t).
		reply("/api/Authentication/authenticate", map[string]string{"user": "u1"}).
		reply("/api/Authentication/deleteUser", map[string]string{})
	s := NewSession(stub.gateway(t), newTestStore(t), logger.Discard().Logger)

	require.NoError(t, s.Authenticate(context.Background(), "margaret", "hunter2"))
	require.NoError(t, s.DeleteUser(context.Background(), "u99"))
	assert.True(t, s.Authenticated())
	assert.Equal(t, "u1", s.UserID())
}

func TestSessionRestore(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveSession(domain.Session{
		UserID:        "u1",
		Username:      "margaret",
		Authenticated: true,
	}))

	s := NewSession(newStub(t).gateway(t), st, logger.Discard().Logger)
	require.NoError(t, s.Restore())
	assert.True(t, s.Authenticated())
	assert.Equal(t, "margaret", s.Current().Username)
}

func TestSessionRestoreEmptyStore(t *testing.T) {
	s := NewSession(newStub(t).gateway(t), newTestStore(t), logger.Discard().Logger)
	err := s.Restore()
	assert.True(t, errors.Is(err, errors.ErrNoSession))
	assert.False(t, s.Authenticated())
}

func TestSessionChangePasswordRequiresPassword(t *testing.T) {
	s := NewSession(newStub(t).gateway(t), newTestStore(t), logger.Discard().Logger)
	err := s.ChangePassword(context.Background(), "u1", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}
