package state

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/gateway"
)

// Shelves caches a user's shelved books under two redundant indexes that
// every mutation must keep in lockstep: status groups (status -> book ids,
// the shape the backend's grouped read endpoint returns) and a per-book map
// of full shelf entries. A mutation that updated one index but not the other
// would make the two views disagree, so all reconciliation for both indexes
// happens inside a single critical section.
type Shelves struct {
	op sync.Mutex
	mu sync.RWMutex

	gw     *gateway.Client
	logger *slog.Logger

	groups []domain.StatusGroup
	byBook map[string][]domain.ShelfEntry
}

// NewShelves creates the shelving container.
func NewShelves(gw *gateway.Client, logger *slog.Logger) *Shelves {
	return &Shelves{
		gw:     gw,
		logger: logger,
		byBook: make(map[string][]domain.ShelfEntry),
	}
}

// LoadUser replaces the status groups with the backend's grouped listing for
// one user. The per-book index is left alone; it is loaded per book.
func (s *Shelves) LoadUser(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.Validation("user id is required")
	}

	s.op.Lock()
	defer s.op.Unlock()

	fetched, err := s.gw.BooksByUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Warn("failed to load user shelves", "user", userID, "error", err)
		s.groups = nil
		return err
	}
	s.groups = fetched
	return nil
}

// LoadBook replaces the cached entries for one book with the backend's
// listing of every user's shelf entry for it.
func (s *Shelves) LoadBook(ctx context.Context, bookID string) ([]domain.ShelfEntry, error) {
	if bookID == "" {
		return nil, errors.Validation("book id is required")
	}

	s.op.Lock()
	defer s.op.Unlock()

	fetched, err := s.gw.ShelvesByBook(ctx, bookID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Warn("failed to load book shelves", "book", bookID, "error", err)
		s.byBook[bookID] = nil
		return nil, err
	}
	s.byBook[bookID] = fetched
	return slices.Clone(fetched), nil
}

// StatusFor queries which status one user filed one book under.
// The second return is false when the user has not shelved the book.
func (s *Shelves) StatusFor(ctx context.Context, userID, bookID string) (domain.ShelfStatus, bool, error) {
	entries, err := s.gw.UserShelfByBook(ctx, userID, bookID)
	if err != nil {
		s.logger.Warn("failed to get user shelf for book", "user", userID, "book", bookID, "error", err)
		return 0, false, err
	}
	if len(entries) == 0 {
		return 0, false, nil
	}
	return entries[0].Status, true, nil
}

// Add files a book on a user's shelf and inserts the confirmed entry into
// both indexes. An acknowledgment without an assigned shelf id is a
// BAD_RESPONSE failure and leaves the cache untouched.
func (s *Shelves) Add(ctx context.Context, userID string, status domain.ShelfStatus, bookID string) (string, error) {
	if !status.Valid() {
		return "", errors.Validationf("invalid shelf status %d", status)
	}
	if userID == "" || bookID == "" {
		return "", errors.Validation("user id and book id are required")
	}

	s.op.Lock()
	defer s.op.Unlock()

	shelfID, err := s.gw.AddBook(ctx, userID, status, bookID)
	if err != nil {
		s.logger.Warn("failed to add book to shelf", "user", userID, "book", bookID, "error", err)
		return "", err
	}

	entry := domain.ShelfEntry{ID: shelfID, User: userID, Book: bookID, Status: status}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertIntoGroup(status, bookID)
	s.byBook[bookID] = append(s.byBook[bookID], entry)

	s.logger.Debug("book shelved", "shelf", shelfID, "book", bookID, "status", status.Label())
	return shelfID, nil
}

// Remove deletes a shelf entry from the backend and drops it from both
// indexes. An entry unknown to the cache still counts as success; the cache
// was merely stale.
func (s *Shelves) Remove(ctx context.Context, shelfID string) error {
	s.op.Lock()
	defer s.op.Unlock()

	if err := s.gw.RemoveBook(ctx, shelfID); err != nil {
		s.logger.Warn("failed to remove book from shelf", "shelf", shelfID, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, found := s.findEntry(shelfID)
	if !found {
		s.logger.Debug("removed shelf entry was not cached", "shelf", shelfID)
		return nil
	}

	s.removeFromGroup(entry.Status, entry.Book)
	s.byBook[entry.Book] = slices.DeleteFunc(s.byBook[entry.Book], func(e domain.ShelfEntry) bool {
		return e.ID == shelfID
	})
	return nil
}

// ChangeStatus refiles an entry under a new status: out of its old group,
// into the (possibly new) target group, and the book-map record is updated
// in place. From the caller's perspective the move is atomic.
func (s *Shelves) ChangeStatus(ctx context.Context, shelfID string, newStatus domain.ShelfStatus) error {
	if !newStatus.Valid() {
		return errors.Validationf("invalid shelf status %d", newStatus)
	}

	s.op.Lock()
	defer s.op.Unlock()

	if err := s.gw.ChangeStatus(ctx, shelfID, newStatus); err != nil {
		s.logger.Warn("failed to change book status", "shelf", shelfID, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, found := s.findEntry(shelfID)
	if !found {
		s.logger.Debug("refiled shelf entry was not cached", "shelf", shelfID)
		return nil
	}

	s.removeFromGroup(entry.Status, entry.Book)
	s.insertIntoGroup(newStatus, entry.Book)

	for i, e := range s.byBook[entry.Book] {
		if e.ID == shelfID {
			s.byBook[entry.Book][i].Status = newStatus
			break
		}
	}
	return nil
}

// Reset clears both indexes.
func (s *Shelves) Reset() {
	s.mu.Lock()
	s.groups = nil
	s.byBook = make(map[string][]domain.ShelfEntry)
	s.mu.Unlock()
}

// Groups returns a copy of the status groups.
func (s *Shelves) Groups() []domain.StatusGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StatusGroup, len(s.groups))
	for i, g := range s.groups {
		out[i] = domain.StatusGroup{Status: g.Status, Shelves: slices.Clone(g.Shelves)}
	}
	return out
}

// BooksByStatus returns the book ids filed under each status.
func (s *Shelves) BooksByStatus() map[domain.ShelfStatus][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.ShelfStatus][]string, len(s.groups))
	for _, g := range s.groups {
		out[g.Status] = slices.Clone(g.Shelves)
	}
	return out
}

// Counts returns the number of books filed under each status.
func (s *Shelves) Counts() map[domain.ShelfStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.ShelfStatus]int, len(s.groups))
	for _, g := range s.groups {
		out[g.Status] = len(g.Shelves)
	}
	return out
}

// TotalShelved returns the total number of shelved books across statuses.
func (s *Shelves) TotalShelved() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, g := range s.groups {
		total += len(g.Shelves)
	}
	return total
}

// BookShelves returns a copy of the cached entries for one book.
func (s *Shelves) BookShelves(bookID string) []domain.ShelfEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byBook[bookID])
}

// insertIntoGroup appends a book id to the group for status, creating the
// group when absent. Callers hold mu.
func (s *Shelves) insertIntoGroup(status domain.ShelfStatus, bookID string) {
	for i := range s.groups {
		if s.groups[i].Status == status {
			s.groups[i].Shelves = append(s.groups[i].Shelves, bookID)
			return
		}
	}
	s.groups = append(s.groups, domain.StatusGroup{Status: status, Shelves: []string{bookID}})
}

// removeFromGroup deletes one occurrence of a book id from the group for
// status. Callers hold mu.
func (s *Shelves) removeFromGroup(status domain.ShelfStatus, bookID string) {
	for i := range s.groups {
		if s.groups[i].Status != status {
			continue
		}
		if idx := slices.Index(s.groups[i].Shelves, bookID); idx >= 0 {
			s.groups[i].Shelves = slices.Delete(s.groups[i].Shelves, idx, idx+1)
		}
		return
	}
}

// findEntry locates a shelf entry by id in the per-book index. Callers hold mu.
func (s *Shelves) findEntry(shelfID string) (domain.ShelfEntry, bool) {
	for _, entries := range s.byBook {
		for _, e := range entries {
			if e.ID == shelfID {
				return e, true
			}
		}
	}
	return domain.ShelfEntry{}, false
}
