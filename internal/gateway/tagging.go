package gateway

import (
	"context"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
)

// Tagging endpoints. Privacy is modeled as two verbs, not an update field.
const (
	epAddTag        = "/api/Tagging/addTag"
	epRemoveTag     = "/api/Tagging/removeTag"
	epMarkPrivate   = "/api/Tagging/markPrivate"
	epMarkPublic    = "/api/Tagging/markPublic"
	epTagsByBook    = "/api/Tagging/_getTagsByBook"
	epLabelsByBook  = "/api/Tagging/_getLabelsByBook"
	epBooksByLabel  = "/api/Tagging/_getBooksByLabel"
	epTagsByUser    = "/api/Tagging/_getTagsByUser"
	epLabelsByUser  = "/api/Tagging/_getLabelsByUser"
	epAllPublicTags = "/api/Tagging/_getAllPublicTags"
	epAllTags       = "/api/Tagging/_getAllTags"
)

// AddTag applies a label to a book, returning the assigned tag id.
func (c *Client) AddTag(ctx context.Context, userID, label, bookID string) (string, error) {
	var ack struct {
		Tag string `json:"tag"`
	}
	err := c.call(ctx, epAddTag, map[string]string{
		"user":  userID,
		"label": label,
		"book":  bookID,
	}, &ack)
	if err != nil {
		return "", err
	}
	if ack.Tag == "" {
		return "", errors.BadResponse("tag acknowledgment missing tag id")
	}
	return ack.Tag, nil
}

// RemoveTag deletes a tag.
func (c *Client) RemoveTag(ctx context.Context, tagID string) error {
	return c.call(ctx, epRemoveTag, map[string]string{"tag": tagID}, nil)
}

// MarkPrivate hides a tag from other users.
func (c *Client) MarkPrivate(ctx context.Context, tagID string) error {
	return c.call(ctx, epMarkPrivate, map[string]string{"tag": tagID}, nil)
}

// MarkPublic makes a tag visible to other users.
func (c *Client) MarkPublic(ctx context.Context, tagID string) error {
	return c.call(ctx, epMarkPublic, map[string]string{"tag": tagID}, nil)
}

// TagsByBook returns a user's tags on one book.
func (c *Client) TagsByBook(ctx context.Context, userID, bookID string) ([]domain.Tag, error) {
	var out []domain.Tag
	err := c.call(ctx, epTagsByBook, map[string]string{
		"user": userID,
		"book": bookID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LabelsByBook returns the label strings a user applied to one book.
func (c *Client) LabelsByBook(ctx context.Context, userID, bookID string) ([]string, error) {
	var out []string
	err := c.call(ctx, epLabelsByBook, map[string]string{
		"user": userID,
		"book": bookID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BooksByLabel returns book ids matching the given labels. matchType selects
// the backend's combination mode (e.g. "any" or "all").
func (c *Client) BooksByLabel(ctx context.Context, userID string, labels []string, matchType string) ([]string, error) {
	var out []string
	err := c.call(ctx, epBooksByLabel, map[string]any{
		"user":   userID,
		"labels": labels,
		"type":   matchType,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TagsByUser returns every tag a user has applied.
func (c *Client) TagsByUser(ctx context.Context, userID string) ([]domain.Tag, error) {
	var out []domain.Tag
	if err := c.call(ctx, epTagsByUser, map[string]string{"user": userID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LabelsByUser returns the distinct labels a user has used.
func (c *Client) LabelsByUser(ctx context.Context, userID string) ([]string, error) {
	var out []string
	if err := c.call(ctx, epLabelsByUser, map[string]string{"user": userID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllPublicTags returns every public tag in the system.
func (c *Client) AllPublicTags(ctx context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	if err := c.call(ctx, epAllPublicTags, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllTags returns every tag in the system, private ones included.
func (c *Client) AllTags(ctx context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	if err := c.call(ctx, epAllTags, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
