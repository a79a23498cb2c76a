package domain

// Notification is a message delivered to a user by the backend.
// Read state only moves one way: an unread notification can become read,
// never the reverse.
type Notification struct {
	ID        string `json:"_id"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
}
