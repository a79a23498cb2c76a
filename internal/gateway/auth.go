package gateway

import (
	"context"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
)

// Authentication endpoints.
const (
	epRegister       = "/api/Authentication/register"
	epAuthenticate   = "/api/Authentication/authenticate"
	epDeleteUser     = "/api/Authentication/deleteUser"
	epChangePassword = "/api/Authentication/changePassword"
	epAllUsers       = "/api/Authentication/_getAllUsers"
	epUserByID       = "/api/Authentication/_getUserById"
)

// authAck is the acknowledgment for register/authenticate: the assigned or
// matched user id.
type authAck struct {
	User string `json:"user"`
}

// Register creates a new account, returning the assigned user id.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var ack authAck
	err := c.call(ctx, epRegister, map[string]string{
		"username": username,
		"password": password,
	}, &ack)
	if err != nil {
		return "", err
	}
	if ack.User == "" {
		return "", errors.BadResponse("register acknowledgment missing user id")
	}
	return ack.User, nil
}

// Authenticate checks credentials, returning the user id on success.
func (c *Client) Authenticate(ctx context.Context, username, password string) (string, error) {
	var ack authAck
	err := c.call(ctx, epAuthenticate, map[string]string{
		"username": username,
		"password": password,
	}, &ack)
	if err != nil {
		return "", err
	}
	if ack.User == "" {
		return "", errors.BadResponse("authenticate acknowledgment missing user id")
	}
	return ack.User, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.call(ctx, epDeleteUser, map[string]string{"user": userID}, nil)
}

// ChangePassword sets a new password for the account.
func (c *Client) ChangePassword(ctx context.Context, userID, newPassword string) error {
	return c.call(ctx, epChangePassword, map[string]string{
		"user":        userID,
		"newPassword": newPassword,
	}, nil)
}

// AllUsers returns the full user directory.
func (c *Client) AllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.call(ctx, epAllUsers, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID performs a point lookup of one user.
func (c *Client) UserByID(ctx context.Context, userID string) (domain.User, error) {
	var user domain.User
	if err := c.call(ctx, epUserByID, map[string]string{"user": userID}, &user); err != nil {
		return domain.User{}, err
	}
	if user.ID == "" {
		user.ID = userID
	}
	return user, nil
}
