// Package handler provides HTTP handlers for all API endpoints.
// The dataset is in memory and read-only, so GET responses are encoded once
// and served from the cache with ETags until their TTL runs out.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/cache"
	"github.com/albapepper/scoracle-chat/internal/chat"
	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/fuzzy"
	"github.com/albapepper/scoracle-chat/internal/query"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	engine  *chat.Engine
	query   *query.Engine
	vocab   *vocab.Vocabulary
	players *fuzzy.PlayerMatcher
	cache   *cache.Cache
	cfg     *config.Config
	logger  *slog.Logger
	started time.Time
}

// New creates a Handler over a ready chat engine.
func New(engine *chat.Engine, v *vocab.Vocabulary, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	q := engine.Query()
	return &Handler{
		engine:  engine,
		query:   q,
		vocab:   v,
		players: fuzzy.NewPlayerMatcher(q.Store().Names(), 1, cfg.PlayerMatchThreshold),
		cache:   c,
		cfg:     cfg,
		logger:  logger,
		started: time.Now(),
	}
}

// serveCached writes the cached payload for key, or builds, caches and
// writes it. build returning ok=false yields a 404 with notFound as message.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration,
	build func() (any, bool), notFound string) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, ok := build()
	if !ok {
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, notFound)
		return
	}
	data, err := respond.Marshal(v)
	if err != nil {
		h.logger.Error("Encode response failed", "key", key, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response")
		return
	}

	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the chat endpoint.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Scoracle Chat API",
		"version": Version,
		"status":  "running",
		"docs":    "/docs",
		"chat":    "/chat",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDataset reports the loaded dataset.
// @Summary Dataset health check
// @Description Reports where the player dataset was loaded from and how many players and teams it holds. Returns 503 when the dataset is empty.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} respond.ErrorResponse
// @Router /health/dataset [get]
func (h *Handler) HealthCheckDataset(w http.ResponseWriter, r *http.Request) {
	store := h.query.Store()
	if store.Len() == 0 {
		respond.WriteErrorDetail(w, http.StatusServiceUnavailable, respond.CodeUnavailable,
			"Player dataset is empty", "source: "+h.cfg.DatasetSource)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"source":     h.cfg.DatasetSource,
		"players":    store.Len(),
		"teams":      len(store.Teams()),
		"vocabulary": h.vocab.Len(),
		"uptime":     time.Since(h.started).Round(time.Second).String(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys, hits, misses).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
