package gateway

import (
	"context"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

// Upvoting endpoints. The by-user read path is spelled with a double "s"
// on the backend; the client must match it.
const (
	epUpvote        = "/api/Upvoting/upvote"
	epUnvote        = "/api/Upvoting/unvote"
	epUpvotesByUser = "/api/Upvoting/_getUpvotessByUser"
	epUpvotesByItem = "/api/Upvoting/_getUpvotesByItem"
	epAllUpvotes    = "/api/Upvoting/_getAllUpvotes"
)

// Upvote records a user's vote on an item.
func (c *Client) Upvote(ctx context.Context, userID, itemID string) error {
	return c.call(ctx, epUpvote, map[string]string{
		"user": userID,
		"item": itemID,
	}, nil)
}

// Unvote withdraws a user's vote on an item.
func (c *Client) Unvote(ctx context.Context, userID, itemID string) error {
	return c.call(ctx, epUnvote, map[string]string{
		"user": userID,
		"item": itemID,
	}, nil)
}

// UpvotesByUser returns every vote cast by a user.
func (c *Client) UpvotesByUser(ctx context.Context, userID string) ([]domain.Vote, error) {
	var out []domain.Vote
	if err := c.call(ctx, epUpvotesByUser, map[string]string{"user": userID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpvotesByItem returns the full vote list for an item.
func (c *Client) UpvotesByItem(ctx context.Context, itemID string) ([]domain.Vote, error) {
	var out []domain.Vote
	if err := c.call(ctx, epUpvotesByItem, map[string]string{"item": itemID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllUpvotes returns every vote in the system.
func (c *Client) AllUpvotes(ctx context.Context) ([]domain.Vote, error) {
	var out []domain.Vote
	if err := c.call(ctx, epAllUpvotes, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
