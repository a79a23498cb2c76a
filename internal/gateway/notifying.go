package gateway

import (
	"context"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

// Notifying endpoints.
const (
	epNotify                  = "/api/Notifying/notify"
	epReadNotification        = "/api/Notifying/read"
	epNotificationsByUser     = "/api/Notifying/_getNotificationsByUser"
	epReadNotificationsByUser = "/api/Notifying/_getReadNotificationsByUser"
	epUnreadNotificationsByUser = "/api/Notifying/_getUnreadNotificationsByUser"
	epAllNotifications        = "/api/Notifying/_getAllNotifications"
)

// Notify sends a notification to a user.
func (c *Client) Notify(ctx context.Context, userID, message string) error {
	return c.call(ctx, epNotify, map[string]string{
		"user":    userID,
		"message": message,
	}, nil)
}

// ReadNotification marks one notification read on the backend.
func (c *Client) ReadNotification(ctx context.Context, notificationID string) error {
	return c.call(ctx, epReadNotification, map[string]string{"notification": notificationID}, nil)
}

// NotificationsByUser returns every notification for a recipient.
func (c *Client) NotificationsByUser(ctx context.Context, recipient string) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.call(ctx, epNotificationsByUser, map[string]string{"recipient": recipient}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadNotificationsByUser returns only the unread notifications for a recipient.
func (c *Client) UnreadNotificationsByUser(ctx context.Context, recipient string) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.call(ctx, epUnreadNotificationsByUser, map[string]string{"recipient": recipient}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadNotificationsByUser returns only the read notifications for a recipient.
func (c *Client) ReadNotificationsByUser(ctx context.Context, recipient string) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.call(ctx, epReadNotificationsByUser, map[string]string{"recipient": recipient}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllNotifications returns every notification in the system.
func (c *Client) AllNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.call(ctx, epAllNotifications, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
