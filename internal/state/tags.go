package state

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/gateway"
)

// Tags caches tags under two indexes: the current user's full tag list and a
// per-book map of the tags visible to the current user on that book. A tag
// can appear in both, so removals and privacy flips sweep both indexes in
// one critical section regardless of which one the caller was looking at.
type Tags struct {
	op sync.Mutex
	mu sync.RWMutex

	gw     *gateway.Client
	logger *slog.Logger

	byUser []domain.Tag
	byBook map[string][]domain.Tag
}

// NewTags creates the tagging container.
func NewTags(gw *gateway.Client, logger *slog.Logger) *Tags {
	return &Tags{
		gw:     gw,
		logger: logger,
		byBook: make(map[string][]domain.Tag),
	}
}

// LoadUser replaces the user index with the backend's listing of every tag
// the user owns, private ones included.
func (t *Tags) LoadUser(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.Validation("user id is required")
	}

	t.op.Lock()
	defer t.op.Unlock()

	fetched, err := t.gw.TagsByUser(ctx, userID)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.logger.Warn("failed to load user tags", "user", userID, "error", err)
		t.byUser = nil
		return err
	}
	t.byUser = fetched
	return nil
}

// LoadBook replaces the cached tags for one book with the tags visible to
// the given user on it: public tags from everyone plus the user's own
// private ones. An empty userID loads the public view.
func (t *Tags) LoadBook(ctx context.Context, userID, bookID string) ([]domain.Tag, error) {
	if bookID == "" {
		return nil, errors.Validation("book id is required")
	}

	t.op.Lock()
	defer t.op.Unlock()

	fetched, err := t.gw.TagsByBook(ctx, userID, bookID)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.logger.Warn("failed to load book tags", "book", bookID, "error", err)
		t.byBook[bookID] = nil
		return nil, err
	}
	t.byBook[bookID] = fetched
	return slices.Clone(fetched), nil
}

// Add applies a label to a book for the user and inserts the confirmed tag,
// public by default, into both indexes.
func (t *Tags) Add(ctx context.Context, userID, label, bookID string) (domain.Tag, error) {
	if userID == "" || label == "" || bookID == "" {
		return domain.Tag{}, errors.Validation("user id, label and book id are required")
	}

	t.op.Lock()
	defer t.op.Unlock()

	tagID, err := t.gw.AddTag(ctx, userID, label, bookID)
	if err != nil {
		t.logger.Warn("failed to add tag", "user", userID, "book", bookID, "label", label, "error", err)
		return domain.Tag{}, err
	}

	tag := domain.Tag{ID: tagID, User: userID, Book: bookID, Label: label, Private: false}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.byUser = append(t.byUser, tag)
	t.byBook[bookID] = append(t.byBook[bookID], tag)

	t.logger.Debug("tag added", "tag", tagID, "book", bookID, "label", label)
	return tag, nil
}

// Remove deletes a tag from the backend and drops it from both indexes.
// Sweeping both unconditionally is what keeps them consistent when the tag
// was cached in one but not the other.
func (t *Tags) Remove(ctx context.Context, tagID string) error {
	t.op.Lock()
	defer t.op.Unlock()

	if err := t.gw.RemoveTag(ctx, tagID); err != nil {
		t.logger.Warn("failed to remove tag", "tag", tagID, "error", err)
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.byUser = slices.DeleteFunc(t.byUser, func(tag domain.Tag) bool {
		return tag.ID == tagID
	})
	for bookID, tags := range t.byBook {
		t.byBook[bookID] = slices.DeleteFunc(tags, func(tag domain.Tag) bool {
			return tag.ID == tagID
		})
	}
	return nil
}

// SetPrivacy flips a tag's visibility through the matching backend verb and
// updates the flag wherever the tag is cached.
func (t *Tags) SetPrivacy(ctx context.Context, tagID string, private bool) error {
	t.op.Lock()
	defer t.op.Unlock()

	var err error
	if private {
		err = t.gw.MarkPrivate(ctx, tagID)
	} else {
		err = t.gw.MarkPublic(ctx, tagID)
	}
	if err != nil {
		t.logger.Warn("failed to change tag privacy", "tag", tagID, "private", private, "error", err)
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.byUser {
		if t.byUser[i].ID == tagID {
			t.byUser[i].Private = private
		}
	}
	for _, tags := range t.byBook {
		for i := range tags {
			if tags[i].ID == tagID {
				tags[i].Private = private
			}
		}
	}
	return nil
}

// BooksByLabel asks the backend which of the user's books carry the given
// labels. matchType "all" requires every label; anything else matches any.
// The result is not cached; label search is an ad hoc query.
func (t *Tags) BooksByLabel(ctx context.Context, userID string, labels []string, matchType string) ([]string, error) {
	if len(labels) == 0 {
		return nil, errors.Validation("at least one label is required")
	}
	return t.gw.BooksByLabel(ctx, userID, labels, matchType)
}

// PublicTags lists every public tag in the system. Passthrough, uncached.
func (t *Tags) PublicTags(ctx context.Context) ([]domain.Tag, error) {
	return t.gw.AllPublicTags(ctx)
}

// Reset clears both indexes.
func (t *Tags) Reset() {
	t.mu.Lock()
	t.byUser = nil
	t.byBook = make(map[string][]domain.Tag)
	t.mu.Unlock()
}

// ForUser returns a copy of the cached user tag list.
func (t *Tags) ForUser() []domain.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.byUser)
}

// ForBook returns a copy of the cached tags for one book.
func (t *Tags) ForBook(bookID string) []domain.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.byBook[bookID])
}

// TaggedBooks groups the user's cached tags by book, in the order books
// first appear in the tag list so repeated calls over the same cache
// produce the same layout.
func (t *Tags) TaggedBooks() []domain.TaggedBook {
	t.mu.RLock()
	defer t.mu.RUnlock()

	index := make(map[string]int)
	var out []domain.TaggedBook
	for _, tag := range t.byUser {
		i, ok := index[tag.Book]
		if !ok {
			i = len(out)
			index[tag.Book] = i
			out = append(out, domain.TaggedBook{BookID: tag.Book})
		}
		out[i].Tags = append(out[i].Tags, tag)
	}
	return out
}

// Labels returns the user's label-usage histogram, most used first. Labels
// with equal counts keep the order they first appeared in the tag list.
func (t *Tags) Labels() []domain.LabelCount {
	t.mu.RLock()
	defer t.mu.RUnlock()

	index := make(map[string]int)
	var out []domain.LabelCount
	for _, tag := range t.byUser {
		i, ok := index[tag.Label]
		if !ok {
			i = len(out)
			index[tag.Label] = i
			out = append(out, domain.LabelCount{Label: tag.Label})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
