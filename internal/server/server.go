package server

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cgint/vscode-chat-extractor/internal"
)

// Server exposes the conversation catalog over HTTP. Every request performs
// its own full scan against the read-only store; there is no cache and no
// state shared between requests beyond the database handle, so concurrent
// requests need no locking.
type Server struct {
	db        *sql.DB
	keyPrefix string
}

// New creates a Server over an already-opened state database.
func New(db *sql.DB, keyPrefix string) *Server {
	if keyPrefix == "" {
		keyPrefix = internal.DefaultKeyPrefix
	}
	return &Server{db: db, keyPrefix: keyPrefix}
}

// Router builds the HTTP routing for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", s.handleHealth)
	r.Get("/conversations", s.handleListConversations)
	r.Get("/conversations/{id}", s.handleGetConversation)

	return r
}

func (s *Server) storage() *internal.Storage {
	return internal.NewStorage(s.db, s.keyPrefix)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListConversations returns the full catalog. An empty store yields an
// empty list, not an error.
func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.storage().Catalog()
	if err != nil {
		internal.LogError("catalog scan failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read conversations")
		return
	}
	if summaries == nil {
		summaries = []internal.ConversationSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// handleGetConversation returns one conversation with all its messages. An
// id with zero messages is a not-found condition, not a server error.
func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	conv, err := s.storage().Conversation(id)
	if err != nil {
		internal.LogError("conversation scan failed for %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to read conversation")
		return
	}
	if conv == nil {
		writeError(w, http.StatusNotFound, "conversation '"+id+"' not found or has no messages")
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		internal.LogWarn("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
