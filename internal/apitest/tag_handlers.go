package apitest

import (
	"net/http"
	"slices"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

func (s *Server) handleAddTag(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.User == "" || p.Label == "" || p.Book == "" {
		writeError(w, http.StatusBadRequest, "user, label and book are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	s.tags[id] = domain.Tag{ID: id, User: p.User, Book: p.Book, Label: p.Label}
	writeJSON(w, http.StatusOK, map[string]string{"tag": id})
}

func (s *Server) handleRemoveTag(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tags[p.Tag]; !exists {
		writeError(w, http.StatusNotFound, "no such tag")
		return
	}
	delete(s.tags, p.Tag)
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleMarkTag(private bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := decode(w, r)
		if !ok {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		t, exists := s.tags[p.Tag]
		if !exists {
			writeError(w, http.StatusNotFound, "no such tag")
			return
		}
		t.Private = private
		s.tags[p.Tag] = t
		writeJSON(w, http.StatusOK, map[string]string{})
	}
}

// visibleOn reports whether a tag on a book should be shown to the viewer:
// public tags always, private tags only to their owner.
func visibleOn(t domain.Tag, bookID, viewerID string) bool {
	if t.Book != bookID {
		return false
	}
	return !t.Private || t.User == viewerID
}

func (s *Server) handleTagsByBook(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Tag, 0)
	for _, t := range s.tags {
		if visibleOn(t, p.Book, p.User) {
			out = append(out, t)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLabelsByBook(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0)
	for _, t := range s.tags {
		if visibleOn(t, p.Book, p.User) && !slices.Contains(out, t.Label) {
			out = append(out, t.Label)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBooksByLabel(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Collect the viewer's labels per book, then filter by match mode.
	byBook := make(map[string][]string)
	for _, t := range s.tags {
		if t.User == p.User {
			byBook[t.Book] = append(byBook[t.Book], t.Label)
		}
	}

	out := make([]string, 0)
	for book, labels := range byBook {
		matched := 0
		for _, want := range p.Labels {
			if slices.Contains(labels, want) {
				matched++
			}
		}
		if p.Type == "all" && matched == len(p.Labels) || p.Type != "all" && matched > 0 {
			out = append(out, book)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTagsByUser(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Tag, 0)
	for _, t := range s.tags {
		if t.User == p.User {
			out = append(out, t)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLabelsByUser(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0)
	for _, t := range s.tags {
		if t.User == p.User && !slices.Contains(out, t.Label) {
			out = append(out, t.Label)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAllPublicTags(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Tag, 0)
	for _, t := range s.tags {
		if !t.Private {
			out = append(out, t)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAllTags(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	writeJSON(w, http.StatusOK, out)
}
