package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/gateway"
)

// Upvotes caches per-item vote summaries derived from raw vote lists. The
// backend only stores individual votes; the count and the current user's
// voted flag are computed here at load time and adjusted locally after each
// confirmed toggle.
type Upvotes struct {
	op sync.Mutex
	mu sync.RWMutex

	gw     *gateway.Client
	logger *slog.Logger

	items map[string]domain.VoteSummary
}

// NewUpvotes creates the voting container.
func NewUpvotes(gw *gateway.Client, logger *slog.Logger) *Upvotes {
	return &Upvotes{
		gw:     gw,
		logger: logger,
		items:  make(map[string]domain.VoteSummary),
	}
}

// LoadOne fetches the raw votes for one item and summarizes them relative
// to userID. An empty userID produces UserVoted=false. On failure the item
// degrades to a zero summary so views stay renderable.
func (u *Upvotes) LoadOne(ctx context.Context, itemID, userID string) error {
	if itemID == "" {
		return errors.Validation("item id is required")
	}

	votes, err := u.gw.UpvotesByItem(ctx, itemID)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.logger.Warn("failed to load upvotes", "item", itemID, "error", err)
		u.items[itemID] = domain.VoteSummary{}
		return err
	}

	summary := domain.VoteSummary{Count: len(votes)}
	if userID != "" {
		for _, v := range votes {
			if v.User == userID {
				summary.UserVoted = true
				break
			}
		}
	}
	u.items[itemID] = summary
	return nil
}

// LoadMany fetches summaries for a batch of items concurrently. Per-item
// failures degrade that item to a zero summary without aborting the rest;
// the only error returned is the context's, checked after all loads finish.
func (u *Upvotes) LoadMany(ctx context.Context, itemIDs []string, userID string) error {
	var wg sync.WaitGroup
	for _, itemID := range itemIDs {
		itemID := itemID
		wg.Add(1)
		go func() {
			defer wg.Done()
			// LoadOne logs and degrades on its own.
			_ = u.LoadOne(ctx, itemID, userID)
		}()
	}
	wg.Wait()
	return ctx.Err()
}

// Toggle flips the user's vote on an item: voted becomes unvoted and vice
// versa. The cached summary is adjusted only after the backend confirms, so
// a failed toggle leaves the count where it was.
func (u *Upvotes) Toggle(ctx context.Context, itemID, userID string) (domain.VoteSummary, error) {
	if userID == "" {
		return domain.VoteSummary{}, errors.Unauthorized("you must be logged in to vote")
	}
	if itemID == "" {
		return domain.VoteSummary{}, errors.Validation("item id is required")
	}

	u.op.Lock()
	defer u.op.Unlock()

	u.mu.RLock()
	current := u.items[itemID]
	u.mu.RUnlock()

	var err error
	if current.UserVoted {
		err = u.gw.Unvote(ctx, userID, itemID)
	} else {
		err = u.gw.Upvote(ctx, userID, itemID)
	}
	if err != nil {
		u.logger.Warn("failed to toggle vote", "item", itemID, "user", userID, "error", err)
		return current, err
	}

	next := current
	if current.UserVoted {
		next.UserVoted = false
		if next.Count > 0 {
			next.Count--
		}
	} else {
		next.UserVoted = true
		next.Count++
	}

	u.mu.Lock()
	u.items[itemID] = next
	u.mu.Unlock()

	u.logger.Debug("vote toggled", "item", itemID, "voted", next.UserVoted, "count", next.Count)
	return next, nil
}

// VotedItems asks the backend which items the user has upvoted. Uncached.
func (u *Upvotes) VotedItems(ctx context.Context, userID string) ([]domain.Vote, error) {
	if userID == "" {
		return nil, errors.Validation("user id is required")
	}
	return u.gw.UpvotesByUser(ctx, userID)
}

// For returns the cached summary for an item, zero when never loaded.
func (u *Upvotes) For(itemID string) domain.VoteSummary {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.items[itemID]
}

// Reset clears every cached summary.
func (u *Upvotes) Reset() {
	u.mu.Lock()
	u.items = make(map[string]domain.VoteSummary)
	u.mu.Unlock()
}
