package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logging"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/server/ratelimit"
)

const (
	maxBodyBytes   = 2 << 20
	maxUploadBytes = 10 << 20
)

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	svc             *screening.Service
	logger          *zap.Logger
	rateLimiter     *ratelimit.Limiter
	workers         *semaphore.Weighted
	corsOrigins     []string
	shutdownTimeout time.Duration
}

// New creates a new server instance
func New(cfg *config.Config, svc *screening.Service, logger *zap.Logger) *Server {
	s := &Server{
		svc:             svc,
		logger:          logging.OrNop(logger),
		rateLimiter:     ratelimit.NewLimiter(ratelimit.FromSettings(cfg.RateLimit.Enabled, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)),
		workers:         semaphore.NewWeighted(int64(max(cfg.MaxConcurrent, 1))),
		corsOrigins:     cfg.CORSOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
	}

	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /health/{$}", s.handleHealth)
	mux.HandleFunc("POST /parse/resume", s.handleParse)
	mux.HandleFunc("POST /parse/resume/file", s.handleParseFile)
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /score/{$}", s.handleScore)
	mux.HandleFunc("POST /questions/generate", s.handleGenerateQuestions)

	return middleware.RequestID(s.withRateLimit(mux, s.withLogging(s.withCORS(mux))))
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.allowedOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allowedOrigin returns the Access-Control-Allow-Origin value for a request origin, or "".
func (s *Server) allowedOrigin(origin string) string {
	if slices.Contains(s.corsOrigins, "*") {
		return "*"
	}
	if origin != "" && slices.Contains(s.corsOrigins, origin) {
		return origin
	}
	return ""
}

// Requests that match no route share one bucket per client.
const (
	unmatchedRoute  = "unmatched"
	unmatchedMethod = "*"
)

// rateLimitRoute names the bucket for a request by the route it will be served by,
// so path aliases share a bucket and unknown paths cannot mint new ones.
func rateLimitRoute(routes *http.ServeMux, r *http.Request) (path, method string) {
	_, pattern := routes.Handler(r)
	// redirects report a bare path rather than a registered "METHOD /path" pattern
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		return unmatchedRoute, unmatchedMethod
	}

	path = strings.TrimSuffix(path, "{$}")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path, method
}

func (s *Server) withRateLimit(routes *http.ServeMux, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		path, method := rateLimitRoute(routes, r)
		allowed, info := s.rateLimiter.Allow(clientID, path, method)
		if info.Limit > 0 {
			s.setRateLimitHeaders(w, info)
		}

		if !allowed {
			s.logger.Warn("rate limit exceeded",
				zap.String("client", clientID),
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetRequestID(r)))
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
			zap.String("request_id", middleware.GetRequestID(r)))
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID identifies the caller for rate limiting by remote IP.
func (s *Server) extractClientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"message":     "Too many requests. Please try again later.",
		"limit":       info.Limit,
		"remaining":   info.Remaining,
		"reset_at":    info.ResetTime.UTC().Format(time.RFC3339),
		"retry_after": retryAfter,
	})
}

// fail logs a failed operation and writes the mapped error response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status := HTTPStatus(err)
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Int("status", status),
		zap.String("request_id", middleware.GetRequestID(r)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("operation failed", fields...)
	} else {
		s.logger.Debug("request rejected", fields...)
	}
	s.errorResponse(w, status, errorMessage(operation, err))
}
