// Package server - server.go wires the HTTP server, routes and middleware.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/extraction"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	cfg         *config.ServerConfig
	db          *db.DB
	catalog     *catalog.Catalog
	ranker      *matching.Ranker
	planner     *roadmap.Planner
	extractor   *extraction.Extractor
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance
func New(cfg *config.ServerConfig) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Load the career catalog, applying any configured file overrides
	cat, err := catalog.LoadWithOverrides(context.Background(), cfg.CatalogOverrides)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		db:        database,
		catalog:   cat,
		ranker:    matching.NewRanker(cat, matching.DefaultWeights()),
		planner:   roadmap.NewPlanner(cat),
		extractor: extraction.NewExtractor(cat),
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Setup router
	mux := http.NewServeMux()
	authMW := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protected := func(h http.HandlerFunc) http.Handler {
		return authMW(h)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth endpoints
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /auth/me", protected(s.handleMe))
	mux.Handle("PUT /auth/password", protected(s.handleUpdatePassword))

	// Analysis endpoints
	mux.Handle("POST /analyze/resume", protected(s.handleAnalyzeResume))
	mux.Handle("POST /analyze/text", protected(s.handleAnalyzeText))
	mux.HandleFunc("GET /analyze/skills/categories", s.handleSkillCategories)

	// Prediction endpoints
	mux.Handle("POST /predict/career", protected(s.handlePredictCareer))
	mux.HandleFunc("GET /predict/careers", s.handleListCareers)
	mux.HandleFunc("GET /predict/careers/{title}", s.handleGetCareer)
	mux.Handle("POST /predict/skill-gaps/{title}", protected(s.handleSkillGap))

	// Roadmap endpoints
	mux.Handle("POST /roadmaps", protected(s.handleCreateRoadmap))
	mux.Handle("GET /roadmaps", protected(s.handleListRoadmaps))
	mux.Handle("GET /roadmaps/{id}", protected(s.handleGetRoadmap))
	mux.Handle("DELETE /roadmaps/{id}", protected(s.handleDeleteRoadmap))
	mux.HandleFunc("GET /roadmaps/resources/{skill}", s.handleSkillResources)

	// User profile and history endpoints
	mux.Handle("PUT /users/profile", protected(s.handleUpsertProfile))
	mux.Handle("GET /users/profile", protected(s.handleGetProfile))
	mux.Handle("DELETE /users/profile", protected(s.handleDeleteProfile))
	mux.Handle("GET /users/analyses", protected(s.handleListAnalyses))
	mux.Handle("GET /users/analyses/{id}", protected(s.handleGetAnalysis))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleMe returns the authenticated user's account.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	s.authHandler.Me(w, r, userID)
}

// handleUpdatePassword updates the authenticated user's password.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// requireUser extracts the authenticated user ID set by the auth middleware.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed := s.corsOrigin(origin); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// corsOrigin returns the Access-Control-Allow-Origin value for a request
// origin, or empty if the origin is not allowed.
func (s *Server) corsOrigin(origin string) string {
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeError(w, status, message)
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr. Behind a trusted proxy this
// could use X-Forwarded-For instead.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
