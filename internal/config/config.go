// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Dataset sources
// --------------------------------------------------------------------------

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// PlayerRecordsTable holds the Postgres mirror of the dataset file.
const PlayerRecordsTable = "player_records"

// --------------------------------------------------------------------------
// Scrape targets: FBref Premier League tables, flattened in this order
// --------------------------------------------------------------------------

// Category is one stats table the scraper fetches.
type Category struct {
	Name string // prefix for flattened field names
	Path string // path under ScrapeBaseURL
}

var ScrapeCategories = []Category{
	{Name: "shooting", Path: "/en/comps/9/shooting/Premier-League-Stats"},
	{Name: "misc", Path: "/en/comps/9/misc/Premier-League-Stats"},
	{Name: "standard_stats", Path: "/en/comps/9/stats/Premier-League-Stats"},
	{Name: "keepers", Path: "/en/comps/9/keepers/Premier-League-Stats"},
}

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Dataset
	DatasetPath   string
	DatasetSource string // file or postgres

	// Database (optional mirror)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool

	// Matching thresholds (0–100)
	PlayerMatchLimit     int
	PlayerMatchThreshold int
	StatMatchThreshold   int
	TeamMatchThreshold   int

	// Scraper
	ScrapeBaseURL   string
	ScrapeDelay     time.Duration
	ScrapeUserAgent string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatasetPath:   envOr("DATASET_PATH", "data/player_stats.json"),
		DatasetSource: strings.ToLower(envOr("DATASET_SOURCE", SourceFile)),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 5000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		PlayerMatchLimit:     envInt("PLAYER_MATCH_LIMIT", 5),
		PlayerMatchThreshold: envInt("PLAYER_MATCH_THRESHOLD", 80),
		StatMatchThreshold:   envInt("STAT_MATCH_THRESHOLD", 85),
		TeamMatchThreshold:   envInt("TEAM_MATCH_THRESHOLD", 85),

		ScrapeBaseURL: strings.TrimRight(envOr("SCRAPE_BASE_URL", "https://fbref.com"), "/"),
		ScrapeDelay:   time.Duration(envFloat("SCRAPE_DELAY_SECONDS", 1.0) * float64(time.Second)),
		ScrapeUserAgent: envOr("SCRAPE_USER_AGENT",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DatasetSource {
	case SourceFile:
		if c.DatasetPath == "" {
			return fmt.Errorf("DATASET_PATH must be set when DATASET_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set when DATASET_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("DATASET_SOURCE must be %q or %q, got %q", SourceFile, SourcePostgres, c.DatasetSource)
	}
	for name, v := range map[string]int{
		"PLAYER_MATCH_THRESHOLD": c.PlayerMatchThreshold,
		"STAT_MATCH_THRESHOLD":   c.StatMatchThreshold,
		"TEAM_MATCH_THRESHOLD":   c.TeamMatchThreshold,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %d", name, v)
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
