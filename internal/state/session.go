package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/gateway"
	"github.com/bookclubapp/bookclub-client/internal/store"
	"github.com/bookclubapp/bookclub-client/internal/validation"
)

// Session owns the client's authenticated identity. Successful
// authenticate/register unconditionally overwrites the in-memory session and
// persists it to the local store; the in-memory copy stays the source of
// truth for the process.
type Session struct {
	op sync.Mutex
	mu sync.RWMutex

	gw       *gateway.Client
	local    *store.Store
	validate *validation.Validator
	logger   *slog.Logger

	current domain.Session
}

// credentials are validated client-side before hitting the backend; the
// backend still owns the real rules.
type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// NewSession creates the session container.
func NewSession(gw *gateway.Client, local *store.Store, logger *slog.Logger) *Session {
	return &Session{
		gw:       gw,
		local:    local,
		validate: validation.New(),
		logger:   logger,
	}
}

// Authenticate logs in and installs the returned identity as the session.
func (s *Session) Authenticate(ctx context.Context, username, password string) error {
	if err := s.validate.Validate(credentials{Username: username, Password: password}); err != nil {
		return err
	}

	s.op.Lock()
	defer s.op.Unlock()

	userID, err := s.gw.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	s.install(domain.Session{UserID: userID, Username: username, Authenticated: true})
	s.logger.Info("authenticated", "user_id", userID)
	return nil
}

// Register creates an account and installs the returned identity as the session.
func (s *Session) Register(ctx context.Context, username, password string) error {
	if err := s.validate.Validate(credentials{Username: username, Password: password}); err != nil {
		return err
	}

	s.op.Lock()
	defer s.op.Unlock()

	userID, err := s.gw.Register(ctx, username, password)
	if err != nil {
		return err
	}

	s.install(domain.Session{UserID: userID, Username: username, Authenticated: true})
	s.logger.Info("registered", "user_id", userID)
	return nil
}

// Logout clears the session. The backend has no logout endpoint; this is a
// purely local operation.
func (s *Session) Logout() error {
	s.op.Lock()
	defer s.op.Unlock()

	s.Reset()
	if err := s.local.ClearSession(); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}

// DeleteUser removes an account. Deleting the currently signed-in user also
// clears the session.
func (s *Session) DeleteUser(ctx context.Context, userID string) error {
	s.op.Lock()
	defer s.op.Unlock()

	if err := s.gw.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.mu.RLock()
	isCurrent := s.current.UserID == userID
	s.mu.RUnlock()

	if isCurrent {
		s.Reset()
		if err := s.local.ClearSession(); err != nil {
			s.logger.Warn("failed to clear persisted session", "error", err)
		}
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}

// ChangePassword sets a new password for an account.
func (s *Session) ChangePassword(ctx context.Context, userID, newPassword string) error {
	if newPassword == "" {
		return errors.Validation("new password is required")
	}

	s.op.Lock()
	defer s.op.Unlock()

	return s.gw.ChangePassword(ctx, userID, newPassword)
}

// Users lists every account in the directory. No caching here; the Users
// container owns the directory cache.
func (s *Session) Users(ctx context.Context) ([]domain.User, error) {
	return s.gw.AllUsers(ctx)
}

// Restore loads a previously persisted session at startup. The restored
// identity is trusted without backend validation. Returns errors.ErrNoSession
// when nothing usable is stored.
func (s *Session) Restore() error {
	sess, err := s.local.LoadSession()
	if err != nil {
		if errors.Is(err, errors.ErrNoSession) {
			return err
		}
		return errors.Wrap(err, errors.CodeNoSession, "restore session")
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("session restored", "user_id", sess.UserID)
	return nil
}

// Current returns a copy of the session.
func (s *Session) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool {
	return s.Current().Active()
}

// UserID returns the signed-in user id, or "" when signed out.
func (s *Session) UserID() string {
	return s.Current().UserID
}

// Reset clears the in-memory session without touching the local store.
func (s *Session) Reset() {
	s.mu.Lock()
	s.current = domain.Session{}
	s.mu.Unlock()
}

// install overwrites the session and persists it. Persistence is a
// side-channel cache; failure is logged, not fatal.
func (s *Session) install(sess domain.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if err := s.local.SaveSession(sess); err != nil {
		s.logger.Warn("failed to persist session", "user_id", sess.UserID, "error", err)
	}
}
