package gateway

import (
	"context"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
)

// Posting endpoints.
const (
	epCreatePost    = "/api/Posting/createPost"
	epDeletePost    = "/api/Posting/deletePost"
	epEditPost      = "/api/Posting/editPost"
	epPostsByAuthor = "/api/Posting/_getPostsByAuthor"
	epAllPosts      = "/api/Posting/_getAllPosts"
)

// CreatePost publishes a new post, returning the assigned post id.
func (c *Client) CreatePost(ctx context.Context, userID, body string) (string, error) {
	var ack struct {
		Post string `json:"post"`
	}
	err := c.call(ctx, epCreatePost, map[string]string{
		"user": userID,
		"body": body,
	}, &ack)
	if err != nil {
		return "", err
	}
	if ack.Post == "" {
		return "", errors.BadResponse("post acknowledgment missing post id")
	}
	return ack.Post, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.call(ctx, epDeletePost, map[string]string{"post": postID}, nil)
}

// EditPost replaces a post's body.
func (c *Client) EditPost(ctx context.Context, postID, newBody string) error {
	return c.call(ctx, epEditPost, map[string]string{
		"post":    postID,
		"newBody": newBody,
	}, nil)
}

// PostsByAuthor returns every post written by a user.
func (c *Client) PostsByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	var out []domain.Post
	if err := c.call(ctx, epPostsByAuthor, map[string]string{"author": authorID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllPosts returns every post in the system.
func (c *Client) AllPosts(ctx context.Context) ([]domain.Post, error) {
	var out []domain.Post
	if err := c.call(ctx, epAllPosts, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
