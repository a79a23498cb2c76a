package gateway

import (
	"context"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
)

// Shelving endpoints.
const (
	epAddBook         = "/api/Shelving/addBook"
	epRemoveBook      = "/api/Shelving/removeBook"
	epChangeStatus    = "/api/Shelving/changeStatus"
	epUserShelfByBook = "/api/Shelving/_getUserShelfByBook"
	epShelvesByBook   = "/api/Shelving/_getShelvesByBook"
	epBooksByUser     = "/api/Shelving/_getBooksByUser"
	epAllShelves      = "/api/Shelving/_getAllShelves"
)

// AddBook files a book on a user's shelf, returning the assigned shelf id.
func (c *Client) AddBook(ctx context.Context, userID string, status domain.ShelfStatus, bookID string) (string, error) {
	var ack struct {
		Shelf string `json:"shelf"`
	}
	err := c.call(ctx, epAddBook, map[string]any{
		"user":   userID,
		"status": status,
		"book":   bookID,
	}, &ack)
	if err != nil {
		return "", err
	}
	if ack.Shelf == "" {
		return "", errors.BadResponse("shelve acknowledgment missing shelf id")
	}
	return ack.Shelf, nil
}

// RemoveBook deletes a shelf entry.
func (c *Client) RemoveBook(ctx context.Context, shelfID string) error {
	return c.call(ctx, epRemoveBook, map[string]string{"shelf": shelfID}, nil)
}

// ChangeStatus refiles a shelf entry under a new status.
func (c *Client) ChangeStatus(ctx context.Context, shelfID string, newStatus domain.ShelfStatus) error {
	return c.call(ctx, epChangeStatus, map[string]any{
		"shelf":     shelfID,
		"newStatus": newStatus,
	}, nil)
}

// UserShelfByBook returns the entries one user has for one book.
func (c *Client) UserShelfByBook(ctx context.Context, userID, bookID string) ([]domain.ShelfEntry, error) {
	var out []domain.ShelfEntry
	err := c.call(ctx, epUserShelfByBook, map[string]string{
		"user": userID,
		"book": bookID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShelvesByBook returns every user's entry for a book.
func (c *Client) ShelvesByBook(ctx context.Context, bookID string) ([]domain.ShelfEntry, error) {
	var out []domain.ShelfEntry
	if err := c.call(ctx, epShelvesByBook, map[string]string{"book": bookID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BooksByUser returns a user's shelves grouped by status.
func (c *Client) BooksByUser(ctx context.Context, userID string) ([]domain.StatusGroup, error) {
	var out []domain.StatusGroup
	if err := c.call(ctx, epBooksByUser, map[string]string{"user": userID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllShelves returns every shelf entry in the system.
func (c *Client) AllShelves(ctx context.Context) ([]domain.ShelfEntry, error) {
	var out []domain.ShelfEntry
	if err := c.call(ctx, epAllShelves, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
