// Package apitest provides an in-memory stand-in for the BookClub backend.
// It speaks the same RPC-style JSON-over-HTTP dialect the real backend does,
// one POST endpoint per verb, so the gateway client can be exercised
// end-to-end without a running backend.
package apitest

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/bookclubapp/bookclub-client/internal/domain"
)

// Server is the in-memory backend. All state lives behind one mutex; this
// is a test double, not a database.
type Server struct {
	router *chi.Mux

	mu            sync.Mutex
	users         map[string]domain.User
	passwords     map[string]string
	notifications map[string]domain.Notification
	shelves       map[string]domain.ShelfEntry
	tags          map[string]domain.Tag
	votes         map[string]domain.Vote
	posts         map[string]domain.Post
	comments      map[string]domain.Comment
}

// NewServer creates a stub backend with all routes configured.
func NewServer() *Server {
	s := &Server{
		router:        chi.NewRouter(),
		users:         make(map[string]domain.User),
		passwords:     make(map[string]string),
		notifications: make(map[string]domain.Notification),
		shelves:       make(map[string]domain.ShelfEntry),
		tags:          make(map[string]domain.Tag),
		votes:         make(map[string]domain.Vote),
		posts:         make(map[string]domain.Post),
		comments:      make(map[string]domain.Comment),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	// The real backend serves a browser SPA from another origin, so the
	// stub honors preflights the same way.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/Authentication", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/authenticate", s.handleAuthenticate)
		r.Post("/deleteUser", s.handleDeleteUser)
		r.Post("/changePassword", s.handleChangePassword)
		r.Post("/_getAllUsers", s.handleGetAllUsers)
		r.Post("/_getUserById", s.handleGetUserByID)
	})

	s.router.Route("/api/Notifying", func(r chi.Router) {
		r.Post("/notify", s.handleNotify)
		r.Post("/read", s.handleReadNotification)
		r.Post("/_getNotificationsByUser", s.handleNotificationsByUser(nil))
		r.Post("/_getUnreadNotificationsByUser", s.handleNotificationsByUser(func(n domain.Notification) bool { return !n.Read }))
		r.Post("/_getReadNotificationsByUser", s.handleNotificationsByUser(func(n domain.Notification) bool { return n.Read }))
		r.Post("/_getAllNotifications", s.handleAllNotifications)
	})

	s.router.Route("/api/Shelving", func(r chi.Router) {
		r.Post("/addBook", s.handleAddBook)
		r.Post("/removeBook", s.handleRemoveBook)
		r.Post("/changeStatus", s.handleChangeStatus)
		r.Post("/_getUserShelfByBook", s.handleUserShelfByBook)
		r.Post("/_getShelvesByBook", s.handleShelvesByBook)
		r.Post("/_getBooksByUser", s.handleBooksByUser)
		r.Post("/_getAllShelves", s.handleAllShelves)
	})

	s.router.Route("/api/Tagging", func(r chi.Router) {
		r.Post("/addTag", s.handleAddTag)
		r.Post("/removeTag", s.handleRemoveTag)
		r.Post("/markPrivate", s.handleMarkTag(true))
		r.Post("/markPublic", s.handleMarkTag(false))
		r.Post("/_getTagsByBook", s.handleTagsByBook)
		r.Post("/_getLabelsByBook", s.handleLabelsByBook)
		r.Post("/_getBooksByLabel", s.handleBooksByLabel)
		r.Post("/_getTagsByUser", s.handleTagsByUser)
		r.Post("/_getLabelsByUser", s.handleLabelsByUser)
		r.Post("/_getAllPublicTags", s.handleAllPublicTags)
		r.Post("/_getAllTags", s.handleAllTags)
	})

	s.router.Route("/api/Upvoting", func(r chi.Router) {
		r.Post("/upvote", s.handleUpvote)
		r.Post("/unvote", s.handleUnvote)
		// The real backend spells this path with a double "s".
		r.Post("/_getUpvotessByUser", s.handleUpvotesByUser)
		r.Post("/_getUpvotesByItem", s.handleUpvotesByItem)
		r.Post("/_getAllUpvotes", s.handleAllUpvotes)
	})

	s.router.Route("/api/Posting", func(r chi.Router) {
		r.Post("/createPost", s.handleCreatePost)
		r.Post("/deletePost", s.handleDeletePost)
		r.Post("/editPost", s.handleEditPost)
		r.Post("/_getPostsByAuthor", s.handlePostsByAuthor)
		r.Post("/_getAllPosts", s.handleAllPosts)
	})

	s.router.Route("/api/Commenting", func(r chi.Router) {
		r.Post("/createComment", s.handleCreateComment)
		r.Post("/deleteComment", s.handleDeleteComment)
		r.Post("/editComment", s.handleEditComment)
		r.Post("/_getCommentsByAuthor", s.handleCommentsByAuthor)
		r.Post("/_getCommentsByParent", s.handleCommentsByParent)
		r.Post("/_getAllComments", s.handleAllComments)
	})
}

// params is the flat request body every endpoint accepts.
type params struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	NewPassword  string   `json:"newPassword"`
	User         string   `json:"user"`
	Recipient    string   `json:"recipient"`
	Message      string   `json:"message"`
	Notification string   `json:"notification"`
	Shelf        string   `json:"shelf"`
	Status       *int     `json:"status"`
	NewStatus    *int     `json:"newStatus"`
	Book         string   `json:"book"`
	Tag          string   `json:"tag"`
	Label        string   `json:"label"`
	Labels       []string `json:"labels"`
	Type         string   `json:"type"`
	Item         string   `json:"item"`
	Parent       string   `json:"parent"`
	Post         string   `json:"post"`
	Comment      string   `json:"comment"`
	Author       string   `json:"author"`
	Body         string   `json:"body"`
	NewBody      string   `json:"newBody"`
}

func decode(w http.ResponseWriter, r *http.Request) (params, bool) {
	var p params
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return p, false
	}
	return p, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func newID() string {
	return uuid.NewString()
}
