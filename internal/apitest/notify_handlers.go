package apitest

import (
	"net/http"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}
	if p.User == "" || p.Message == "" {
		writeError(w, http.StatusBadRequest, "user and message are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	s.notifications[id] = domain.Notification{ID: id, Recipient: p.User, Message: p.Message}
	writeJSON(w, http.StatusOK, map[string]string{"notification": id})
}

func (s *Server) handleReadNotification(w http.ResponseWriter, r *http.Request) {
	p, ok := decode(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, exists := s.notifications[p.Notification]
	if !exists {
		writeError(w, http.StatusNotFound, "no such notification")
		return
	}
	n.Read = true
	s.notifications[p.Notification] = n
	writeJSON(w, http.StatusOK, map[string]string{})
}

// handleNotificationsByUser lists a recipient's notifications, optionally
// filtered. A nil filter keeps everything.
func (s *Server) handleNotificationsByUser(keep func(domain.Notification) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := decode(w, r)
		if !ok {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		out := make([]domain.Notification, 0)
		for _, n := range s.notifications {
			if n.Recipient != p.Recipient {
				continue
			}
			if keep != nil && !keep(n) {
				continue
			}
			out = append(out, n)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) handleAllNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, n)
	}
	writeJSON(w, http.StatusOK, out)
}
