package apitest

import (
	"net/http"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.Username == "" || p.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == p.Username {
			writeError(w, http.StatusBadRequest, "username already taken")
			return
		}
	}

	id := newID()
	s.users[id] = domain.User{ID: id, Username: p.Username}
	s.passwords[id] = p.Password
	writeJSON(w, http.StatusOK, map[string]string{"user": id})
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, u := range s.users {
		if u.Username == p.Username && s.passwords[id] == p.Password {
			writeJSON(w, http.StatusOK, map[string]string{"user": id})
			return
		}
	}
	writeError(w, http.StatusUnauthorized, "bad credentials")
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[p.User]; !exists {
		writeError(w, http.StatusNotFound, "no such user")
		return
	}
	delete(s.users, p.User)
	delete(s.passwords, p.User)
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[p.User]; !exists {
		writeError(w, http.StatusNotFound, "no such user")
		return
	}
	s.passwords[p.User] = p.NewPassword
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleGetAllUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetUserByID(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[p.User]
	if !exists {
		writeError(w, http.StatusNotFound, "no such user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}
