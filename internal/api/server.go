package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Stats counts the requests served per operation
type Stats struct {
	Inserts       int64 `json:"inserts"`
	WordLookups   int64 `json:"word_lookups"`
	PrefixLookups int64 `json:"prefix_lookups"`
}

// LookupResponse is the body returned by the word and prefix endpoints
type LookupResponse struct {
	Word   *string `json:"word,omitempty"`
	Prefix *string `json:"prefix,omitempty"`
	Found  bool    `json:"found"`
}

// Server represents the HTTP API server
type Server struct {
	store  *Store
	server *http.Server
	addr   string
	logger zerolog.Logger

	inserts       *atomic.Int64
	wordLookups   *atomic.Int64
	prefixLookups *atomic.Int64
}

// NewServer creates a new API server
func NewServer(addr string, store *Store, logger zerolog.Logger) *Server {
	s := &Server{
		store:         store,
		addr:          addr,
		logger:        logger,
		inserts:       atomic.NewInt64(0),
		wordLookups:   atomic.NewInt64(0),
		prefixLookups: atomic.NewInt64(0),
	}

	r := mux.NewRouter()
	// Words may contain escaped slashes; handlers unescape the variables.
	r.UseEncodedPath()
	// "." and ".." are words too, not path segments to resolve.
	r.SkipClean(true)
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	r.HandleFunc("/words/{word:[^/]*}", s.insertWord).Methods(http.MethodPut)
	r.HandleFunc("/words/{word:[^/]*}", s.searchWord).Methods(http.MethodGet)
	r.HandleFunc("/prefixes/{prefix:[^/]*}", s.searchPrefix).Methods(http.MethodGet)

	// Router middleware only wraps matched routes.
	r.NotFoundHandler = s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	}))
	r.MethodNotAllowedHandler = s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed on %s", r.Method, r.URL.Path))
	}))

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.addr
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(listener)
}

// Serve serves requests on l until Shutdown. It returns nil after a
// graceful shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info().Str("addr", l.Addr().String()).Msg("Server listening")
	if err := s.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server")
	return s.server.Shutdown(ctx)
}

// Stats returns a snapshot of the request counters
func (s *Server) Stats() Stats {
	return Stats{
		Inserts:       s.inserts.Load(),
		WordLookups:   s.wordLookups.Load(),
		PrefixLookups: s.prefixLookups.Load(),
	}
}

// Helper functions for HTTP responses
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.Error().Err(err).Msg("Failed to encode response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

// pathVar returns the unescaped route variable name
func pathVar(r *http.Request, name string) (string, error) {
	raw := mux.Vars(r)[name]
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return v, nil
}

// HTTP Handlers
// health handles GET /health
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// stats handles GET /stats
func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.Stats())
}

// insertWord handles PUT /words/{word}
func (s *Server) insertWord(w http.ResponseWriter, r *http.Request) {
	word, err := pathVar(r, "word")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	s.store.Insert(word)
	s.inserts.Inc()
	s.logger.Debug().Str("word", word).Msg("Inserted word")

	w.WriteHeader(http.StatusNoContent)
}

// searchWord handles GET /words/{word}
func (s *Server) searchWord(w http.ResponseWriter, r *http.Request) {
	word, err := pathVar(r, "word")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	s.wordLookups.Inc()
	s.respond(w, http.StatusOK, LookupResponse{
		Word:  &word,
		Found: s.store.SearchFullWord(word),
	})
}

// searchPrefix handles GET /prefixes/{prefix}
func (s *Server) searchPrefix(w http.ResponseWriter, r *http.Request) {
	prefix, err := pathVar(r, "prefix")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	s.prefixLookups.Inc()
	s.respond(w, http.StatusOK, LookupResponse{
		Prefix: &prefix,
		Found:  s.store.SearchPrefix(prefix),
	})
}
