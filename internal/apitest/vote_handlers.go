package apitest

import (
	"net/http"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

func (s *Server) handleUpvote(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.User == "" || p.Item == "" {
		writeError(w, http.StatusBadRequest, "user and item are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.votes {
		if v.User == p.User && v.Item == p.Item {
			writeError(w, http.StatusBadRequest, "already voted")
			return
		}
	}

	id := newID()
	s.votes[id] = domain.Vote{ID: id, User: p.User, Item: p.Item}
	writeJSON(w, http.StatusOK, map[string]string{"vote": id})
}

func (s *Server) handleUnvote(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, v := range s.votes {
		if v.User == p.User && v.Item == p.Item {
			delete(s.votes, id)
			writeJSON(w, http.StatusOK, map[string]string{})
			return
		}
	}
	writeError(w, http.StatusNotFound, "no such vote")
}

func (s *Server) handleUpvotesByUser(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Vote, 0)
	for _, v := range s.votes {
		if v.User == p.User {
			out = append(out, v)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpvotesByItem(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Vote, 0)
	for _, v := range s.votes {
		if v.Item == p.Item {
			out = append(out, v)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAllUpvotes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Vote, 0, len(s.votes))
	for _, v := range s.votes {
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}
