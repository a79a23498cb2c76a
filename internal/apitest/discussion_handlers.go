package apitest

import (
	"net/http"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.User == "" || p.Body == "" {
		writeError(w, http.StatusBadRequest, "user and body are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	s.posts[id] = domain.Post{ID: id, Author: p.User, Body: p.Body}
	writeJSON(w, http.StatusOK, map[string]string{"post": id})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[p.Post]; !exists {
		writeError(w, http.StatusNotFound, "no such post")
		return
	}
	delete(s.posts, p.Post)
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleEditPost(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[p.Post]
	if !exists {
		writeError(w, http.StatusNotFound, "no such post")
		return
	}
	post.Body = p.NewBody
	s.posts[p.Post] = post
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handlePostsByAuthor(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Post, 0)
	for _, post := range s.posts {
		if post.Author == p.Author {
			out = append(out, post)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAllPosts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Post, 0, len(s.posts))
	for _, post := range s.posts {
		out = append(out, post)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.User == "" || p.Body == "" || p.Item == "" {
		writeError(w, http.StatusBadRequest, "user, body and item are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	s.comments[id] = domain.Comment{ID: id, Author: p.User, Body: p.Body, Parent: p.Item}
	writeJSON(w, http.StatusOK, map[string]string{"comment": id})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.comments[p.Comment]; !exists {
		writeError(w, http.StatusNotFound, "no such comment")
		return
	}
	delete(s.comments, p.Comment)
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleEditComment(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.comments[p.Comment]
	if !exists {
		writeError(w, http.StatusNotFound, "no such comment")
		return
	}
	c.Body = p.NewBody
	s.comments[p.Comment] = c
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) handleCommentsByAuthor(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Comment, 0)
	for _, c := range s.comments {
		if c.Author == p.Author {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCommentsByParent(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Comment, 0)
	for _, c := range s.comments {
		if c.Parent == p.Parent {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAllComments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, out)
}
