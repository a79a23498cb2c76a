package domain

// Post is a top-level forum post.
type Post struct {
	ID     string `json:"_id"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

// Comment is a reply attached to a parent item (a post or another comment).
type Comment struct {
	ID     string `json:"_id"`
	Author string `json:"author"`
	Body   string `json:"body"`
	Parent string `json:"parent"`
}
