package gateway

import (
	"context"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
)

// Commenting endpoints.
const (
	epCreateComment    = "/api/Commenting/createComment"
	epDeleteComment    = "/api/Commenting/deleteComment"
	epEditComment      = "/api/Commenting/editComment"
	epCommentsByAuthor = "/api/Commenting/_getCommentsByAuthor"
	epCommentsByParent = "/api/Commenting/_getCommentsByParent"
	epAllComments      = "/api/Commenting/_getAllComments"
)

// CreateComment attaches a comment to a parent item, returning the assigned
// comment id.
func (c *Client) CreateComment(ctx context.Context, userID, body, itemID string) (string, error) {
	var ack struct {
		Comment string `json:"comment"`
	}
	err := c.call(ctx, epCreateComment, map[string]string{
		"user": userID,
		"body": body,
		"item": itemID,
	}, &ack)
	if err != nil {
		return "", err
	}
	if ack.Comment == "" {
		return "", errors.BadResponse("comment acknowledgment missing comment id")
	}
	return ack.Comment, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.call(ctx, epDeleteComment, map[string]string{"comment": commentID}, nil)
}

// EditComment replaces a comment's body.
func (c *Client) EditComment(ctx context.Context, commentID, newBody string) error {
	return c.call(ctx, epEditComment, map[string]string{
		"comment": commentID,
		"newBody": newBody,
	}, nil)
}

// CommentsByAuthor returns every comment written by a user.
func (c *Client) CommentsByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error) {
	var out []domain.Comment
	if err := c.call(ctx, epCommentsByAuthor, map[string]string{"author": authorID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommentsByParent returns the comments attached to a parent item.
func (c *Client) CommentsByParent(ctx context.Context, parentID string) ([]domain.Comment, error) {
	var out []domain.Comment
	if err := c.call(ctx, epCommentsByParent, map[string]string{"parent": parentID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllComments returns every comment in the system.
func (c *Client) AllComments(ctx context.Context) ([]domain.Comment, error) {
	var out []domain.Comment
	if err := c.call(ctx, epAllComments, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
