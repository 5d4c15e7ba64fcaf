// Package api provides the HTTP API server and handlers for the MediaTrack application.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mediatrackapp/mediatrack-server/internal/config"
	"github.com/mediatrackapp/mediatrack-server/internal/media/covers"
	"github.com/mediatrackapp/mediatrack-server/internal/ratelimit"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    store.Store
	services *Services
	covers   *covers.Storage
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, st store.Store, services *Services, coverStorage *covers.Storage, logger *slog.Logger) *Server {
	s := &Server{
		store:    st,
		services: services,
		covers:   coverStorage,
		router:   chi.NewRouter(),
		logger:   logger,
	}

	s.setupMiddleware(cfg)

	humaConfig := huma.DefaultConfig("MediaTrack API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerMediaRoutes()
	s.registerCategoryRoutes()
	s.registerTagRoutes()
	s.registerFieldValueRoutes()
	s.registerStatsRoutes()

	// Routes that stream bytes or parse multipart forms stay on chi.
	s.router.Post("/api/upload/cover", s.handleUploadCover)
	s.router.Get("/uploads/{filename}", s.handleServeUpload)
	s.setupWebRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(cfg *config.Config) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.RateLimit.Enabled {
		limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		s.router.Use(mutatingOnly(RateLimitMiddleware(limiter, s.logger)))
	}
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// mutatingOnly applies mw to write requests and passes reads through.
func mutatingOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				limited.ServeHTTP(w, r)
			}
		})
	}
}
