// Package api assembles the HTTP router for the chat service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/scoracle-chat/internal/api/handler"
	"github.com/albapepper/scoracle-chat/internal/cache"
	"github.com/albapepper/scoracle-chat/internal/chat"
	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(engine *chat.Engine, v *vocab.Vocabulary, appCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "X-Request-Id", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	h := handler.New(engine, v, appCache, cfg, logger)

	// --- Routes ---
	r.Get("/", h.Root)
	r.Post("/chat", h.Chat)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/dataset", h.HealthCheckDataset)
		r.Get("/cache", h.HealthCheckCache)
	})

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", h.Chat)

		r.Get("/players", h.ListPlayers)
		r.Get("/players/{name}", h.GetPlayer)

		r.Get("/stats/vocabulary", h.GetVocabulary)
		r.Get("/leaders/{stat}", h.GetLeader)
	})

	return r
}
