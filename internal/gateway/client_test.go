package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Config{BaseURL: server.URL, RPS: 1000, Burst: 1000}, logger.Discard().Logger)
	return client, server
}

func TestClient_Authenticate_SendsCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/Authentication/authenticate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var params map[string]string
		if err := json.Unmarshal(body, &params); err != nil {
			t.Fatalf("request body not JSON: %v", err)
		}
		if params["username"] != "ada" || params["password"] != "hunter2" {
			t.Errorf("unexpected params: %v", params)
		}
		io.WriteString(w, `{"user":"user-1"}`)
	})

	userID, err := client.Authenticate(context.Background(), "ada", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("userID = %q, want user-1", userID)
	}
}

func TestClient_SurfacesBackendErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"username already taken"}`)
	})

	_, err := client.Register(context.Background(), "ada", "hunter2")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrValidation) {
		t.Errorf("expected validation code, got %v", err)
	}
	if !strings.Contains(err.Error(), "username already taken") {
		t.Errorf("expected backend message surfaced, got %q", err.Error())
	}
}

func TestClient_GenericStatusErrorEmbedsSnippet(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "<html>gateway timeout</html>")
	})

	err := client.RemoveBook(context.Background(), "shelf-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrRemote) {
		t.Errorf("expected remote code, got %v", err)
	}
	if !strings.Contains(err.Error(), "gateway timeout") {
		t.Errorf("expected raw snippet in message, got %q", err.Error())
	}
}

func TestClient_LongErrorBodyIsTruncated(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, strings.Repeat("x", 500))
	})

	err := client.RemoveTag(context.Background(), "tag-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "...") {
		t.Errorf("expected truncation marker, got %q", err.Error())
	}
	if len(err.Error()) > 250 {
		t.Errorf("error message too long: %d chars", len(err.Error()))
	}
}

func TestClient_InvalidJSONSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "definitely not json")
	})

	_, err := client.AllUsers(context.Background())
	if !errors.Is(err, errors.ErrBadResponse) {
		t.Errorf("expected bad response code, got %v", err)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // force connection refused

	err := client.Notify(context.Background(), "user-1", "hello")
	if !errors.Is(err, errors.ErrUnavailable) {
		t.Errorf("expected unavailable code, got %v", err)
	}
}

func TestClient_AddBook_MissingShelfID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	_, err := client.AddBook(context.Background(), "user-1", domain.StatusRead, "book-1")
	if !errors.Is(err, errors.ErrBadResponse) {
		t.Errorf("expected bad response for missing shelf id, got %v", err)
	}
}

func TestClient_BooksByUser_DecodesGroups(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"status":0,"shelves":["book-1","book-2"]},{"status":2,"shelves":["book-3"]}]`)
	})

	groups, err := client.BooksByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Status != domain.StatusWantToRead || len(groups[0].Shelves) != 2 {
		t.Errorf("unexpected first group: %+v", groups[0])
	}
}

func TestClient_UserByID_FallsBackToRequestedID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"username":"ada"}`)
	})

	user, err := client.UserByID(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-9" || user.Username != "ada" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestFamily(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"/api/Shelving/addBook", "Shelving"},
		{"/api/Authentication/_getAllUsers", "Authentication"},
		{"/ping", "/ping"},
	}
	for _, tt := range tests {
		if got := family(tt.endpoint); got != tt.want {
			t.Errorf("family(%q) = %q, want %q", tt.endpoint, got, tt.want)
		}
	}
}
