package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/service/asset"
	"github.com/secmon-lab/pregtrack/pkg/usecase"
)

// Config holds HTTP server configuration
type Config struct {
	Addr string
	// ImageDir is served under ImageURLPrefix when not empty
	ImageDir       string
	ImageURLPrefix string
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg Config, tracker usecase.TrackerUseCase) (*Server, error) {
	if tracker == nil {
		return nil, goerr.New("tracker use case is required")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	trackerHandler := NewTrackerHandler(tracker)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Use(CORS)
		r.Get("/status", trackerHandler.HandleStatus)
		r.Get("/weeks/{week}", trackerHandler.HandleWeek)
	})

	// Fetus images
	if cfg.ImageDir != "" {
		prefix := asset.NormalizePrefix(cfg.ImageURLPrefix)
		images := NewImageHandler(http.Dir(cfg.ImageDir))
		router.Handle(prefix+"/*", http.StripPrefix(prefix, images))
		ctxlog.From(ctx).Info("Serving images",
			"dir", cfg.ImageDir,
			"prefix", prefix,
		)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pregtrack",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
