package state

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/bookclubapp/bookclub-client/internal/gateway"
)

// Users maps user ids to display names so discussion views never have to
// block a render on a directory lookup. Unknown ids resolve to a
// deterministic placeholder derived from the id itself.
type Users struct {
	op sync.Mutex
	mu sync.RWMutex

	gw     *gateway.Client
	logger *slog.Logger

	names map[string]string
}

// NewUsers creates the user directory container.
func NewUsers(gw *gateway.Client, logger *slog.Logger) *Users {
	return &Users{
		gw:     gw,
		logger: logger,
		names:  make(map[string]string),
	}
}

// LoadAll replaces the directory with the backend's full user listing.
func (u *Users) LoadAll(ctx context.Context) error {
	u.op.Lock()
	defer u.op.Unlock()

	fetched, err := u.gw.AllUsers(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.logger.Warn("failed to load user directory", "error", err)
		u.names = make(map[string]string)
		return err
	}

	names := make(map[string]string, len(fetched))
	for _, user := range fetched {
		if user.ID != "" && user.Username != "" {
			names[user.ID] = user.Username
		}
	}
	u.names = names
	return nil
}

// Resolve maps a user id to its cached display name, falling back to a
// placeholder built from the id prefix so the same id always renders the
// same way.
func (u *Users) Resolve(userID string) string {
	u.mu.RLock()
	name, ok := u.names[userID]
	u.mu.RUnlock()
	if ok {
		return name
	}
	return fallbackName(userID)
}

// ResolveRemote resolves an id, consulting the backend on a cache miss.
// A failed lookup caches the placeholder so the same missing id does not
// trigger a lookup on every render; the error is still reported.
func (u *Users) ResolveRemote(ctx context.Context, userID string) (string, error) {
	u.mu.RLock()
	name, ok := u.names[userID]
	u.mu.RUnlock()
	if ok {
		return name, nil
	}

	u.op.Lock()
	defer u.op.Unlock()

	user, err := u.gw.UserByID(ctx, userID)
	if err != nil || user.Username == "" {
		u.logger.Warn("failed to resolve user", "user", userID, "error", err)
		fb := fallbackName(userID)
		u.mu.Lock()
		u.names[userID] = fb
		u.mu.Unlock()
		return fb, err
	}

	u.mu.Lock()
	u.names[userID] = user.Username
	u.mu.Unlock()
	return user.Username, nil
}

// Names resolves a batch of ids against the cache in one pass.
func (u *Users) Names(userIDs []string) map[string]string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		if name, ok := u.names[id]; ok {
			out[id] = name
		} else {
			out[id] = fallbackName(id)
		}
	}
	return out
}

// Put records a known id/name pair, typically the session user's own.
func (u *Users) Put(userID, name string) {
	if userID == "" || name == "" {
		return
	}
	u.mu.Lock()
	u.names[userID] = name
	u.mu.Unlock()
}

// All returns a copy of the cached directory.
func (u *Users) All() map[string]string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return maps.Clone(u.names)
}

// Reset clears the directory.
func (u *Users) Reset() {
	u.mu.Lock()
	u.names = make(map[string]string)
	u.mu.Unlock()
}

func fallbackName(userID string) string {
	if userID == "" {
		return "User unknown"
	}
	if len(userID) > 8 {
		userID = userID[:8]
	}
	return "User " + userID
}
