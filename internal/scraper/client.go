// Package scraper builds the player dataset from FBref's Premier League stat
// tables: fetch each category page, parse its player table, flatten the
// categories per player, then prune, derive, rename and normalize fields.
//
// Requests are sequential and paced by a token bucket limiter.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// commentStripper exposes tables FBref ships inside HTML comments.
var commentStripper = strings.NewReplacer("<!--", "", "-->", "")

// Client fetches and parses stat pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client that waits delay between requests. A zero delay
// disables pacing.
func NewClient(baseURL, userAgent string, delay time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// Fetch performs a rate-limited GET of path and parses the page, including
// any tables hidden in comments.
func (c *Client) Fetch(ctx context.Context, path string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s returned %d: %s", u, resp.StatusCode, truncate(body, 200))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(commentStripper.Replace(string(body))))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", u, err)
	}
	c.logger.Debug("Fetched page", "url", u, "bytes", len(body))
	return doc, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
