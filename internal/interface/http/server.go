// Package http implements the REST boundary of Pulseboard. It translates
// requests into use case inputs and domain errors into status codes; no
// business rules live here.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SERVER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config contains HTTP server configuration.
type Config struct {
	// Host - address to bind (default: "0.0.0.0").
	Host string

	// Port - port to listen on (default: 8080).
	Port int

	// ReadTimeout - maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout - maximum duration for writing the response.
	WriteTimeout time.Duration

	// IdleTimeout - maximum duration for idle connections.
	IdleTimeout time.Duration

	// EnableCORS - enable CORS headers.
	EnableCORS bool

	// AllowedOrigins - allowed origins for CORS.
	AllowedOrigins []string
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
	}
}

// Address returns the server address string.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TokenVerifier resolves bearer tokens into user ids.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Server is the HTTP server.
type Server struct {
	cfg  Config
	deps Dependencies
	log  *logger.Logger
	srv  *http.Server
}

// NewServer creates the server and mounts all routes.
func NewServer(cfg Config, deps Dependencies, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	s := &Server{cfg: cfg, deps: deps, log: log}

	mux := http.NewServeMux()
	s.routes(mux)

	var handler http.Handler = mux
	if cfg.EnableCORS {
		handler = s.corsMiddleware(handler)
	}
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)

	s.srv = &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("http server starting", logger.String("addr", s.cfg.Address()))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}

// ══════════════════════════════════════════════════════════════════════════════
// MIDDLEWARE
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic recovered",
					logger.Any("panic", rec),
					logger.String("path", r.URL.Path),
					logger.String("stack", string(debug.Stack())),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		s.log.Info("request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", rw.status),
			logger.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	origins := strings.Join(s.cfg.AllowedOrigins, ", ")
	if origins == "" {
		origins = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ctxUserKey carries the authenticated user id.
type ctxUserKey struct{}

// requireAuth rejects requests without a valid bearer token.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := s.bearerUser(r)
		if userID == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, userID)))
	}
}

// optionalAuth attaches the user id when a valid token is present, but never
// rejects. Read use cases use it to resolve per-viewer state.
func (s *Server) optionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userID := s.bearerUser(r); userID != "" {
			r = r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, userID))
		}
		next(w, r)
	}
}

func (s *Server) bearerUser(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return ""
	}
	userID, err := s.deps.Tokens.Verify(token)
	if err != nil {
		return ""
	}
	return userID
}

// userFrom returns the authenticated user id from the request context.
func userFrom(r *http.Request) string {
	id, _ := r.Context().Value(ctxUserKey{}).(string)
	return id
}

// ══════════════════════════════════════════════════════════════════════════════
// RESPONSE HELPERS
// ══════════════════════════════════════════════════════════════════════════════

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps the domain error taxonomy onto status codes. The two
// core kinds are Not-Found and Forbidden; the rest come from the supplemental
// account flows.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case shared.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, shared.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case shared.IsAlreadyExists(err):
		writeError(w, http.StatusConflict, err.Error())
	case shared.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
