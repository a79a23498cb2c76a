package domain

// Vote is one user's upvote of an item (a post or comment).
type Vote struct {
	ID   string `json:"_id"`
	User string `json:"user"`
	Item string `json:"item"`
}

// VoteSummary is the client-derived aggregate for an item, recomputed from
// the raw vote list. UserVoted is relative to whichever user id was supplied
// when the summary was loaded.
type VoteSummary struct {
	Count     int  `json:"count"`
	UserVoted bool `json:"user_voted"`
}
