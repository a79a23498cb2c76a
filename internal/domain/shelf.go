package domain

// ShelfStatus is the reading status a shelved book is filed under.
type ShelfStatus int

// Shelf statuses, wire-compatible with the backend's numeric encoding.
const (
	StatusWantToRead ShelfStatus = iota
	StatusCurrentlyReading
	StatusRead
	StatusDidNotFinish
)

// Valid reports whether the status is one the backend understands.
func (s ShelfStatus) Valid() bool {
	return s >= StatusWantToRead && s <= StatusDidNotFinish
}

// Label returns the display name for the status.
func (s ShelfStatus) Label() string {
	switch s {
	case StatusWantToRead:
		return "Want to Read"
	case StatusCurrentlyReading:
		return "Currently Reading"
	case StatusRead:
		return "Read"
	case StatusDidNotFinish:
		return "Did Not Finish"
	default:
		return "Unknown"
	}
}

// ShelfEntry records that a user filed a book under a status.
// Books are referenced by opaque catalog id only.
type ShelfEntry struct {
	ID     string      `json:"_id"`
	User   string      `json:"user"`
	Book   string      `json:"book"`
	Status ShelfStatus `json:"status"`
}

// StatusGroup is the grouped shape the backend returns for a user's shelves:
// one group per status, each listing the book ids filed there.
type StatusGroup struct {
	Status  ShelfStatus `json:"status"`
	Shelves []string    `json:"shelves"`
}
