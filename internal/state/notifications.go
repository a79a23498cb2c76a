package state

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/gateway"
)

// Notifications caches a recipient's notifications. The cache is merged from
// two read endpoints: the full listing replaces it wholesale, the unread-only
// listing reconciles read flags and appends previously unseen entries.
// Read state is one-directional: once read, never unread.
type Notifications struct {
	op sync.Mutex
	mu sync.RWMutex

	gw     *gateway.Client
	logger *slog.Logger

	items       []domain.Notification
	lastChecked time.Time
}

// NewNotifications creates the notification container.
func NewNotifications(gw *gateway.Client, logger *slog.Logger) *Notifications {
	return &Notifications{gw: gw, logger: logger}
}

// LoadAll replaces the cache with the recipient's full notification list.
// On failure the cache falls back to empty and the error is returned.
func (n *Notifications) LoadAll(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.Validation("recipient id is required")
	}

	n.op.Lock()
	defer n.op.Unlock()

	fetched, err := n.gw.NotificationsByUser(ctx, userID)

	n.mu.Lock()
	defer n.mu.Unlock()
	if err != nil {
		n.logger.Warn("failed to load notifications", "recipient", userID, "error", err)
		n.items = nil
		return err
	}
	n.items = fetched
	n.lastChecked = time.Now()
	return nil
}

// LoadUnread merges the unread-only listing into the cache: every cached
// notification's read flag becomes "not in the fetched unread set", and
// fetched unread notifications missing from the cache are appended.
func (n *Notifications) LoadUnread(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.Validation("recipient id is required")
	}

	n.op.Lock()
	defer n.op.Unlock()

	fetched, err := n.gw.UnreadNotificationsByUser(ctx, userID)
	if err != nil {
		n.logger.Warn("failed to load unread notifications", "recipient", userID, "error", err)
		return err
	}

	unreadIDs := make(map[string]bool, len(fetched))
	for _, f := range fetched {
		unreadIDs[f.ID] = true
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.items {
		n.items[i].Read = !unreadIDs[n.items[i].ID]
	}
	known := make(map[string]bool, len(n.items))
	for _, item := range n.items {
		known[item.ID] = true
	}
	for _, f := range fetched {
		if !known[f.ID] {
			f.Read = false
			n.items = append(n.items, f)
		}
	}
	n.lastChecked = time.Now()
	return nil
}

// MarkRead marks one notification read; the local flag flips only after the
// backend confirms.
func (n *Notifications) MarkRead(ctx context.Context, notificationID string) error {
	n.op.Lock()
	defer n.op.Unlock()

	if err := n.gw.ReadNotification(ctx, notificationID); err != nil {
		n.logger.Warn("failed to mark notification read", "notification", notificationID, "error", err)
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.items {
		if n.items[i].ID == notificationID {
			n.items[i].Read = true
			break
		}
	}
	return nil
}

// Send delivers a notification to a user. The sender's own cache is not
// touched; recipients pick it up on their next load.
func (n *Notifications) Send(ctx context.Context, userID, message string) error {
	return n.gw.Notify(ctx, userID, message)
}

// Reset clears the cache, e.g. at logout.
func (n *Notifications) Reset() {
	n.mu.Lock()
	n.items = nil
	n.lastChecked = time.Time{}
	n.mu.Unlock()
}

// All returns a copy of every cached notification.
func (n *Notifications) All() []domain.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Clone(n.items)
}

// Unread returns the cached notifications still unread.
func (n *Notifications) Unread() []domain.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []domain.Notification
	for _, item := range n.items {
		if !item.Read {
			out = append(out, item)
		}
	}
	return out
}

// UnreadCount returns the number of cached unread notifications.
func (n *Notifications) UnreadCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, item := range n.items {
		if !item.Read {
			count++
		}
	}
	return count
}

// HasUnread reports whether any cached notification is unread.
func (n *Notifications) HasUnread() bool {
	return n.UnreadCount() > 0
}

// Sorted returns the cache ordered unread-first, then by descending id.
// The id ordering is a recency approximation: the wire format carries no
// timestamp, and backend ids sort roughly by creation time.
func (n *Notifications) Sorted() []domain.Notification {
	out := n.All()
	slices.SortStableFunc(out, func(a, b domain.Notification) int {
		if a.Read != b.Read {
			if a.Read {
				return 1
			}
			return -1
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out
}

// LastChecked returns when the cache last merged a server response.
func (n *Notifications) LastChecked() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.lastChecked
}
