// Package server provides the HTTP REST API for the candidate evaluation service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/skippr/growscore/internal/config"
	"github.com/skippr/growscore/internal/db"
	"github.com/skippr/growscore/internal/enrich"
	"github.com/skippr/growscore/internal/llm"
	"github.com/skippr/growscore/internal/matching"
	"github.com/skippr/growscore/internal/server/middleware"
	"github.com/skippr/growscore/internal/server/ratelimit"
)

// ProfileStore is the subset of profile storage the handlers need.
// *db.DB satisfies it; tests provide fakes.
type ProfileStore interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, name string, data []byte) (uuid.UUID, error)
	GetProfile(ctx context.Context, userID uuid.UUID, name string) (*db.ProfileRow, error)
	ListProfiles(ctx context.Context, userID uuid.UUID) ([]db.ProfileSummary, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID, name string) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	store       ProfileStore
	llmClient   llm.Client
	matcher     *matching.Service
	enricher    *enrich.Service
	useBrowser  bool
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	validator   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Addr        string
	DatabaseURL string
	APIKey      string
	UseBrowser  bool
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := &Server{
		db:         database,
		store:      database,
		useBrowser: cfg.UseBrowser,
		validator:  validator.New(),
	}

	// LLM client is optional: without an API key the service runs with
	// lexical matching only and no enrichment or roadmaps.
	if cfg.APIKey != "" {
		client, err := llm.NewClient(context.Background(), nil, cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.enricher = enrich.NewService(client)
	} else {
		log.Println("No API key configured; semantic matching, enrichment and roadmaps disabled")
	}
	s.matcher = matching.NewService(s.llmClient)

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for roadmap streaming
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Everything except health and the auth entry
// points requires a bearer token.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth endpoints
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /auth/me", auth(s.withUserID(s.authHandler.Me)))
	mux.Handle("PUT /auth/password", auth(s.withUserID(s.authHandler.UpdatePasswordWithUserID)))

	// Profile CRUD
	mux.Handle("GET /profiles", auth(s.withUserID(s.handleListProfiles)))
	mux.Handle("POST /profiles", auth(s.withUserID(s.handleCreateProfile)))
	mux.Handle("GET /profiles/{name}", auth(s.withUserID(s.handleGetProfile)))
	mux.Handle("PUT /profiles/{name}", auth(s.withUserID(s.handlePutProfile)))
	mux.Handle("DELETE /profiles/{name}", auth(s.withUserID(s.handleDeleteProfile)))

	// Wizard navigation
	mux.Handle("GET /profiles/{name}/wizard", auth(s.withUserID(s.handleGetWizard)))
	mux.Handle("POST /profiles/{name}/wizard/advance", auth(s.withUserID(s.handleWizardAdvance)))
	mux.Handle("POST /profiles/{name}/wizard/back", auth(s.withUserID(s.handleWizardBack)))

	// Evaluation step writes
	mux.Handle("PUT /profiles/{name}/skills", auth(s.withUserID(s.handlePutSkills)))
	mux.Handle("PUT /profiles/{name}/behavior", auth(s.withUserID(s.handlePutBehavior)))
	mux.Handle("PUT /profiles/{name}/references", auth(s.withUserID(s.handlePutReferences)))
	mux.Handle("PUT /profiles/{name}/education", auth(s.withUserID(s.handlePutEducation)))
	mux.Handle("PUT /profiles/{name}/hr-check", auth(s.withUserID(s.handlePutHRCheck)))

	// Resume ingestion, matching, scoring, roadmaps
	mux.Handle("POST /profiles/{name}/resume", auth(s.withUserID(s.handleUploadResume)))
	mux.Handle("POST /profiles/{name}/jd-match", auth(s.withUserID(s.handleJDMatch)))
	mux.Handle("POST /profiles/{name}/score", auth(s.withUserID(s.handleScore)))
	mux.Handle("POST /profiles/{name}/roadmap", auth(s.withUserID(s.handleRoadmap)))
	mux.Handle("POST /profiles/{name}/roadmap/stream", auth(s.withUserID(s.handleRoadmapStream)))

	// Recruiter ranking
	mux.Handle("POST /rankings", auth(s.withUserID(s.handleRankings)))

	return mux
}

// withUserID adapts a handler that needs the authenticated user ID.
func (s *Server) withUserID(fn func(http.ResponseWriter, *http.Request, uuid.UUID)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		fn(w, r, userID)
	})
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

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
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

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
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

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
