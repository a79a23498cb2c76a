// Package store persists the client's session scalars to a local Badger
// database, the durable analog of the web client's localStorage. Exactly
// three keys are stored — user id, username, authenticated flag — with no
// schema versioning; the data is reconstructible at any time by
// authenticating against the backend again.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
)

// Session scalar keys.
const (
	keyUserID        = "session:user_id"
	keyUsername      = "session:username"
	keyAuthenticated = "session:authenticated"
)

// Store wraps a Badger database holding client-local state.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New opens (or creates) the local database at path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Badger's own logging is too chatty for a client
	opts.SyncWrites = true // session loss on crash would force a re-login

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	if logger != nil {
		logger.Debug("local store opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// SaveSession persists the session scalars, overwriting any previous session.
func (s *Store) SaveSession(sess domain.Session) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyUserID), []byte(sess.UserID)); err != nil {
			return err
		}
		if err := txn.Set([]byte(keyUsername), []byte(sess.Username)); err != nil {
			return err
		}
		flag := "false"
		if sess.Authenticated {
			flag = "true"
		}
		return txn.Set([]byte(keyAuthenticated), []byte(flag))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("session persisted", "user_id", sess.UserID)
	}
	return nil
}

// LoadSession restores the previously persisted session. Returns
// errors.ErrNoSession when nothing usable is stored. The restored identity
// is trusted as-is; no backend validation happens here.
func (s *Store) LoadSession() (domain.Session, error) {
	var sess domain.Session

	err := s.db.View(func(txn *badger.Txn) error {
		flag, err := readString(txn, keyAuthenticated)
		if err != nil || flag != "true" {
			return errors.ErrNoSession
		}

		sess.UserID, err = readString(txn, keyUserID)
		if err != nil || sess.UserID == "" {
			return errors.ErrNoSession
		}

		// Username is display-only; absence is tolerable.
		sess.Username, _ = readString(txn, keyUsername)
		sess.Authenticated = true
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// ClearSession removes the persisted session scalars.
func (s *Store) ClearSession() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{keyUserID, keyUsername, keyAuthenticated} {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// readString fetches one key as a string; missing keys return badger.ErrKeyNotFound.
func readString(txn *badger.Txn, key string) (string, error) {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return "", err
	}
	var out string
	err = item.Value(func(val []byte) error {
		out = string(val)
		return nil
	})
	return out, err
}
