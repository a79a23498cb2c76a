package state

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bookclubapp/bookclub-client/internal/gateway"
	"github.com/bookclubapp/bookclub-client/internal/logger"
)

// rpcStub is a fake BookClub backend: a map of endpoint path to handler.
// Unregistered endpoints 404 with the backend's error envelope.
type rpcStub struct {
	t        *testing.T
	handlers map[string]http.HandlerFunc

	mu sync.Mutex
	// calls counts hits per endpoint path. Guarded because the server
	// handles concurrent requests.
	calls map[string]int
}

func newStub(t *testing.T) *rpcStub {
	return &rpcStub{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
		calls:    make(map[string]int),
	}
}

// on registers a handler for one endpoint path.
func (s *rpcStub) on(path string, h http.HandlerFunc) *rpcStub {
	s.handlers[path] = h
	return s
}

// reply registers a handler that responds 200 with the given payload.
func (s *rpcStub) reply(path string, payload any) *rpcStub {
	return s.on(path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(s.t, w, http.StatusOK, payload)
	})
}

// fail registers a handler that responds with the backend error envelope.
func (s *rpcStub) fail(path string, status int, message string) *rpcStub {
	return s.on(path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(s.t, w, status, map[string]string{"error": message})
	})
}

func (s *rpcStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls[r.URL.Path]++
	s.mu.Unlock()
	if h, ok := s.handlers[r.URL.Path]; ok {
		h(w, r)
		return
	}
	writeJSON(s.t, w, http.StatusNotFound, map[string]string{"error": "no such endpoint " + r.URL.Path})
}

// gateway spins up the stub and returns a client pointed at it.
func (s *rpcStub) gateway(t *testing.T) *gateway.Client {
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return gateway.New(gateway.Config{
		BaseURL: srv.URL,
		RPS:     1000, // no throttling in tests
		Burst:   1000,
	}, logger.Discard().Logger)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Errorf("stub encode: %v", err)
	}
}

// decodeBody decodes a stub request body into out.
func decodeBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Fatalf("stub decode: %v", err)
	}
}
