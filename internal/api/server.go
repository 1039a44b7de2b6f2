// Package api exposes the stored scorecards and questionnaire state over
// HTTP for the dashboard frontend. The server is transport only; it talks
// to the application layer through small service interfaces and never
// touches the repositories directly.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/posturescan/posture-cli/internal/api/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Scorecard is the wire form of a stored domain scorecard.
type Scorecard struct {
	ID           string          `json:"id"`
	Domain       string          `json:"domain"`
	GeneratedAt  time.Time       `json:"generated_at"`
	OverallScore float64         `json:"overall_score"`
	OverallGrade string          `json:"overall_grade"`
	Categories   []CategoryScore `json:"categories"`
}

// CategoryScore is one category row of a scorecard. Categories whose
// sources were all unavailable are omitted from the slice entirely.
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Grade    string  `json:"grade"`
	Color    string  `json:"color"`
	Stars    int     `json:"stars"`
}

// Submission is the wire form of one user's questionnaire state for a domain.
type Submission struct {
	ID              string      `json:"id"`
	User            string      `json:"user"`
	Domain          string      `json:"domain"`
	Answers         map[int]int `json:"answers"`
	Result          *Result     `json:"result,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Result is a scored questionnaire on the wire.
type Result struct {
	RawTotal     int                `json:"raw_total"`
	Percentage   int                `json:"percentage"`
	HealthStatus string             `json:"health_status"`
	Breakdown    []CategoryAnalysis `json:"breakdown"`
	TopIssues    []CategoryAnalysis `json:"top_issues"`
	TopStrengths []CategoryAnalysis `json:"top_strengths"`
}

// CategoryAnalysis is one questionnaire category's percentage.
type CategoryAnalysis struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// Question is one catalog entry served to the frontend.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// ScanRequest asks the server to rate a domain from live signal data.
type ScanRequest struct {
	Domain string `json:"domain"`
}

// AnswerRequest records one questionnaire answer.
type AnswerRequest struct {
	QuestionID int `json:"question_id"`
	Value      int `json:"value"`
}

// RatingService is the scorecard surface the server needs.
type RatingService interface {
	ListScorecards(ctx context.Context) ([]Scorecard, error)
	GetScorecard(ctx context.Context, domain string) (*Scorecard, error)
	ScoreDomain(ctx context.Context, domain string) (*Scorecard, error)
	DeleteScorecard(ctx context.Context, domain string) error
}

// QuestionnaireService is the self-assessment surface the server needs.
type QuestionnaireService interface {
	Questions() []Question
	GetSubmission(ctx context.Context, user, domain string) (*Submission, error)
	Answer(ctx context.Context, user, domain string, questionID, value int) (*Submission, error)
	ScoreSubmission(ctx context.Context, user, domain string) (*Submission, error)
	ClearSubmission(ctx context.Context, user, domain string) error
}

// HealthService reports liveness and readiness.
type HealthService interface {
	Check(ctx context.Context) error
	Ready(ctx context.Context) error
}

type Config struct {
	Rating        RatingService
	Questionnaire QuestionnaireService
	Health        HealthService
	AuthToken     string
	Logger        *zap.Logger
	CORSOrigins   []string // Allowed CORS origins (empty = allow all)
	RateLimit     int      // Requests per second per IP (0 = disabled)
	RateBurst     int      // Burst size for rate limiter
}

type Server struct {
	cfg      Config
	mux      *http.ServeMux
	limiters *rateLimiterMap
}

func NewServer(cfg Config) *Server {
	srv := &Server{
		cfg:      cfg,
		mux:      http.NewServeMux(),
		limiters: newRateLimiterMap(),
	}
	srv.routes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Middleware chain: RequestID -> Logging -> RateLimit -> CORS -> Handler
	handler := middleware.RequestID(s.withLogging(s.withRateLimit(s.withCORS(s.mux))))
	handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.Handle("/api/v1/health", s.withAuth(http.HandlerFunc(s.handleHealth)))
	s.mux.Handle("/api/v1/ready", s.withAuth(http.HandlerFunc(s.handleReady)))
	s.mux.Handle("/api/v1/questions", s.withAuth(http.HandlerFunc(s.handleQuestions)))
	s.mux.Handle("/api/v1/scorecards", s.withAuth(http.HandlerFunc(s.handleScorecards)))
	s.mux.Handle("/api/v1/scorecards/", s.withAuth(http.HandlerFunc(s.handleScorecardByDomain)))
	s.mux.Handle("/api/v1/questionnaires/", s.withAuth(http.HandlerFunc(s.handleQuestionnaire)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	if s.cfg.Health != nil {
		if err := s.cfg.Health.Check(r.Context()); err != nil {
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	if s.cfg.Health != nil {
		if err := s.cfg.Health.Ready(r.Context()); err != nil {
			s.writeError(w, r, http.StatusServiceUnavailable, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.cfg.Questionnaire.Questions())
}

func (s *Server) handleScorecards(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.cfg.Rating.ListScorecards(r.Context())
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, 1048576) // 1MB limit
		var req ScanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		if req.Domain == "" {
			s.writeError(w, r, http.StatusBadRequest, errors.New("domain required"))
			return
		}
		scorecard, err := s.cfg.Rating.ScoreDomain(r.Context(), req.Domain)
		if err != nil {
			s.writeError(w, r, http.StatusBadGateway, err)
			return
		}
		writeJSON(w, http.StatusCreated, scorecard)
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleScorecardByDomain(w http.ResponseWriter, r *http.Request) {
	domain := strings.TrimPrefix(r.URL.Path, "/api/v1/scorecards/")
	if domain == "" || strings.Contains(domain, "/") {
		s.writeError(w, r, http.StatusNotFound, errors.New("domain required"))
		return
	}
	switch r.Method {
	case http.MethodGet:
		scorecard, err := s.cfg.Rating.GetScorecard(r.Context(), domain)
		if err != nil {
			s.writeError(w, r, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, scorecard)
	case http.MethodDelete:
		if err := s.cfg.Rating.DeleteScorecard(r.Context(), domain); err != nil {
			s.writeError(w, r, http.StatusNotFound, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		s.methodNotAllowed(w, r)
	}
}

// handleQuestionnaire routes /api/v1/questionnaires/{user}/{domain} and its
// answers and score sub-resources.
func (s *Server) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/questionnaires/")
	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		s.writeError(w, r, http.StatusNotFound, errors.New("user and domain required"))
		return
	}
	user, domain := parts[0], parts[1]

	var action string
	if len(parts) == 3 {
		action = parts[2]
	} else if len(parts) > 3 {
		s.writeError(w, r, http.StatusNotFound, errors.New("unknown resource"))
		return
	}

	switch action {
	case "":
		switch r.Method {
		case http.MethodGet:
			submission, err := s.cfg.Questionnaire.GetSubmission(r.Context(), user, domain)
			if err != nil {
				s.writeError(w, r, http.StatusNotFound, err)
				return
			}
			writeJSON(w, http.StatusOK, submission)
		case http.MethodDelete:
			if err := s.cfg.Questionnaire.ClearSubmission(r.Context(), user, domain); err != nil {
				s.writeError(w, r, http.StatusNotFound, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			s.methodNotAllowed(w, r)
		}
	case "answers":
		if r.Method != http.MethodPut {
			s.methodNotAllowed(w, r)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, 1048576) // 1MB limit
		var req AnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		submission, err := s.cfg.Questionnaire.Answer(r.Context(), user, domain, req.QuestionID, req.Value)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, submission)
	case "score":
		if r.Method != http.MethodPost {
			s.methodNotAllowed(w, r)
			return
		}
		submission, err := s.cfg.Questionnaire.ScoreSubmission(r.Context(), user, domain)
		if err != nil {
			s.writeError(w, r, http.StatusUnprocessableEntity, err)
			return
		}
		writeJSON(w, http.StatusOK, submission)
	default:
		s.writeError(w, r, http.StatusNotFound, errors.New("unknown resource"))
	}
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.RateLimit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		// Extract client IP (handle X-Forwarded-For for proxied requests)
		clientIP := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			if idx := strings.Index(forwarded, ","); idx > 0 {
				clientIP = strings.TrimSpace(forwarded[:idx])
			} else {
				clientIP = strings.TrimSpace(forwarded)
			}
		}
		// Remove port if present
		if idx := strings.LastIndex(clientIP, ":"); idx > 0 {
			clientIP = clientIP[:idx]
		}

		limiter := s.limiters.getLimiter(clientIP, s.cfg.RateLimit, s.cfg.RateBurst)
		if !limiter.Allow() {
			if s.cfg.Logger != nil {
				s.requestLogger(r).Warn("rate_limit_exceeded",
					zap.String("client_ip", clientIP),
				)
			}
			s.writeError(w, r, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowOrigin := "*"
		if len(s.cfg.CORSOrigins) > 0 {
			allowed := false
			for _, allowedOrigin := range s.cfg.CORSOrigins {
				if allowedOrigin == origin {
					allowed = true
					allowOrigin = origin
					break
				}
			}
			if !allowed {
				allowOrigin = ""
			}
		}

		if allowOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Auth-Token")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		duration := time.Since(start)
		if s.cfg.Logger != nil {
			requestID := middleware.GetRequestID(r.Context())
			s.cfg.Logger.Info("http_request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status", lrw.statusCode),
				zap.Duration("duration", duration),
				zap.Int64("bytes", lrw.bytesWritten),
			)
		}
	})
}

func (s *Server) withAuth(next http.Handler) http.Handler {
	if s.cfg.AuthToken == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Auth-Token")
		// Constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AuthToken)) != 1 {
			s.writeError(w, r, http.StatusUnauthorized, errors.New("unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingResponseWriter wraps http.ResponseWriter to capture status code and
// bytes written for access logging.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytesWritten += int64(n)
	return n, err
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	msg := err.Error()

	// For 5xx errors, return a generic message and log details server-side.
	if status >= 500 {
		if s.cfg.Logger != nil {
			s.requestLogger(r).Error("internal_server_error",
				zap.Error(err),
				zap.Int("status", status),
			)
		}
		msg = "internal server error"
	}

	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger creates a logger with request context (request ID, method, path)
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	if s.cfg.Logger == nil {
		return zap.NewNop()
	}

	requestID := middleware.GetRequestID(r.Context())
	return s.cfg.Logger.With(
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

// rateLimiterMap manages per-IP rate limiters with automatic cleanup.
type rateLimiterMap struct {
	mu       sync.RWMutex
	limiters map[string]*ipLimiter
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiterMap() *rateLimiterMap {
	m := &rateLimiterMap{
		limiters: make(map[string]*ipLimiter),
	}
	go m.cleanupLoop()
	return m
}

func (m *rateLimiterMap) getLimiter(ip string, rps, burst int) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, exists := m.limiters[ip]
	if !exists {
		limiter = &ipLimiter{
			limiter:  rate.NewLimiter(rate.Limit(rps), burst),
			lastSeen: time.Now(),
		}
		m.limiters[ip] = limiter
	} else {
		limiter.lastSeen = time.Now()
	}

	return limiter.limiter
}

// cleanupLoop removes limiters that haven't been used in 5 minutes.
func (m *rateLimiterMap) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		for ip, limiter := range m.limiters {
			if time.Since(limiter.lastSeen) > 5*time.Minute {
				delete(m.limiters, ip)
			}
		}
		m.mu.Unlock()
	}
}
