package books

import "strings"

// Volume is the normalized catalog record the rest of the client consumes.
type Volume struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Description   string   `json:"description,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
}

// SearchResult is one page of catalog search results.
type SearchResult struct {
	TotalItems int      `json:"total_items"`
	Volumes    []Volume `json:"volumes"`
}

// Raw API response types (internal)

type rawVolumeList struct {
	TotalItems int         `json:"totalItems"`
	Items      []rawVolume `json:"items"`
}

type rawVolume struct {
	ID         string        `json:"id"`
	VolumeInfo rawVolumeInfo `json:"volumeInfo"`
}

type rawVolumeInfo struct {
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle"`
	Authors       []string      `json:"authors"`
	Publisher     string        `json:"publisher"`
	PublishedDate string        `json:"publishedDate"`
	Description   string        `json:"description"`
	PageCount     int           `json:"pageCount"`
	Categories    []string      `json:"categories"`
	ImageLinks    rawImageLinks `json:"imageLinks"`
}

type rawImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// toVolume converts a raw API record into the normalized form.
func (r rawVolume) toVolume() Volume {
	info := r.VolumeInfo
	return Volume{
		ID:            r.ID,
		Title:         info.Title,
		Subtitle:      info.Subtitle,
		Authors:       info.Authors,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		Description:   info.Description,
		PageCount:     info.PageCount,
		Categories:    info.Categories,
		CoverURL:      secureCoverURL(info.ImageLinks),
	}
}

// secureCoverURL picks the best available cover and upgrades the scheme;
// Google still hands out http:// links for thumbnails.
func secureCoverURL(links rawImageLinks) string {
	u := links.Thumbnail
	if u == "" {
		u = links.SmallThumbnail
	}
	if strings.HasPrefix(u, "http://") {
		u = "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}
