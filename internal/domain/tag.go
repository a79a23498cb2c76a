package domain

// Tag is a user-applied label on a book. Private tags are visible only to
// their owner; the flag is flipped through two distinct backend verbs
// (markPrivate / markPublic), not a single update endpoint.
type Tag struct {
	ID      string `json:"_id"`
	User    string `json:"user"`
	Book    string `json:"book"`
	Label   string `json:"label"`
	Private bool   `json:"private"`
}

// TaggedBook groups a book with the tags applied to it.
type TaggedBook struct {
	BookID string `json:"book_id"`
	Tags   []Tag  `json:"tags"`
}

// LabelCount is one row of the label-usage histogram.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
