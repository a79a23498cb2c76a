package apitest

import (
	"net/http"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.User == "" || p.Book == "" || p.Status == nil {
		writeError(w, http.StatusBadRequest, "user, book and status are required")
		return
	}
	status := domain.ShelfStatus(*p.Status)
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.shelves {
		if e.User == p.User && e.Book == p.Book {
			writeError(w, http.StatusBadRequest, "book already shelved")
			return
		}
	}

	id := newID()
	s.shelves[id] = domain.ShelfEntry{ID: id, User: p.User, Book: p.Book, Status: status}
	writeJSON(w, http.StatusOK, map[string]string{"shelf": id})
}

func (s *Server) handleRemoveBook(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.shelves[p.Shelf]; !exists {
		writeError(w, http.StatusNotFound, "no such shelf entry")
		return
	}
	delete(s.shelves, p.Shelf)
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.NewStatus == nil || !domain.ShelfStatus(*p.NewStatus).Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.shelves[p.Shelf]
	if !exists {
		writeError(w, http.StatusNotFound, "no such shelf entry")
		return
	}
	e.Status = domain.ShelfStatus(*p.NewStatus)
	s.shelves[p.Shelf] = e
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleUserShelfByBook(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ShelfEntry, 0, 1)
	for _, e := range s.shelves {
		if e.User == p.User && e.Book == p.Book {
			out = append(out, e)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleShelvesByBook(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ShelfEntry, 0)
	for _, e := range s.shelves {
		if e.Book == p.Book {
			out = append(out, e)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBooksByUser(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grouped := make(map[domain.ShelfStatus][]string)
	for _, e := range s.shelves {
		if e.User == p.User {
			grouped[e.Status] = append(grouped[e.Status], e.Book)
		}
	}

	out := make([]domain.StatusGroup, 0, len(grouped))
	for status, books := range grouped {
		out = append(out, domain.StatusGroup{Status: status, Shelves: books})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAllShelves(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ShelfEntry, 0, len(s.shelves))
	for _, e := range s.shelves {
		out = append(out, e)
	}
	writeJSON(w, http.StatusOK, out)
}
