// Package mockapi runs a local stand-in for the public quote server.
//
// It mimics the two behaviors the gateway client depends on: GET /posts
// serves a fixed seeded page, and POST /posts echoes the submitted
// resource back with a freshly assigned id without persisting it. A
// later GET never includes posted records, which is exactly how the
// public API behaves and what the sync engine is written to tolerate.
package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"

	"gosyncquotes/internal/utils"
)

// DefaultAddr is where the mock server listens unless told otherwise.
const DefaultAddr = "localhost:3999"

// post mirrors the upstream wire shape: title carries the quote text,
// body the category.
type post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// seedPosts is the fixed page every GET serves. The set never changes
// while the server runs, which keeps sync cycles reproducible. One
// entry ships without a body so the client's default-category path gets
// exercised against this server too.
func seedPosts() []post {
	return []post{
		{UserID: 1, ID: 1, Title: "The obstacle is the way", Body: "Stoicism"},
		{UserID: 1, ID: 2, Title: "Well begun is half done", Body: "Proverbs"},
		{UserID: 1, ID: 3, Title: "Simplicity is the ultimate sophistication", Body: "Design"},
		{UserID: 1, ID: 4, Title: "What gets measured gets managed", Body: "Work"},
		{UserID: 1, ID: 5, Title: "No plan survives contact with reality", Body: "Work"},
		{UserID: 1, ID: 6, Title: "Talk is cheap, show me the code", Body: "Programming"},
		{UserID: 1, ID: 7, Title: "Premature optimization is the root of all evil", Body: "Programming"},
		{UserID: 1, ID: 8, Title: "Make it work, make it right, make it fast", Body: "Programming"},
		{UserID: 1, ID: 9, Title: "Fortune favors the prepared mind", Body: "Science"},
		{UserID: 1, ID: 10, Title: "The map is not the territory", Body: ""},
		{UserID: 1, ID: 11, Title: "Perfect is the enemy of good", Body: "Proverbs"},
		{UserID: 1, ID: 12, Title: "A ship in harbor is safe, but that is not what ships are for", Body: "Courage"},
	}
}

// Server is the stand-in HTTP server.
type Server struct {
	addr   string
	seed   []post
	nextID atomic.Int64
	server *http.Server
}

// NewServer creates a mock server for the given listen address.
// An empty address falls back to DefaultAddr.
func NewServer(addr string) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	s := &Server{
		addr: addr,
		seed: seedPosts(),
	}
	// Assigned ids start above the seeded range, like the real server.
	s.nextID.Store(int64(len(s.seed)) + 100)
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler returns the route table. Exposed separately so tests can
// drive the server through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", s.handlePosts)
	return mux
}

// Start begins listening in the background.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Errorf("Mock server stopped: %v", err)
		}
	}()

	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleList(w, r)
	case http.MethodPost:
		s.handleCreate(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleList serves the seeded page, honoring the _limit query
// parameter the way the real server does.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page := s.seed
	if raw := r.URL.Query().Get("_limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit >= 0 && limit < len(page) {
			page = page[:limit]
		}
	}
	writeJSON(w, http.StatusOK, page)
}

// handleCreate echoes the submitted resource with a fresh id. Nothing
// is stored: the next list request serves the same seed as before.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var submitted post
	if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	submitted.ID = int(s.nextID.Add(1))
	writeJSON(w, http.StatusCreated, submitted)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Errorf("Failed to encode mock response: %v", err)
	}
}
