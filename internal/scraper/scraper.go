package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

// Result tracks counts and errors from a scrape.
type Result struct {
	CategoriesScraped int
	RowsParsed        int
	PlayersWritten    int
	Errors            []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the scrape.
func (r *Result) Summary() string {
	return fmt.Sprintf("categories=%d rows=%d players=%d errors=%d",
		r.CategoriesScraped, r.RowsParsed, r.PlayersWritten, len(r.Errors))
}

// Scraper runs the category fetches and the record pipeline.
type Scraper struct {
	client     *Client
	categories []config.Category
	logger     *slog.Logger
}

// New creates a Scraper over categories.
func New(client *Client, categories []config.Category, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{client: client, categories: categories, logger: logger}
}

// Run fetches every category in order and returns the finished records.
// A failed category is logged and recorded in the result; the others still
// contribute. Only context cancellation stops the run early.
func (s *Scraper) Run(ctx context.Context) ([]dataset.Record, Result) {
	var result Result
	var scraped []CategoryRows

	for _, cat := range s.categories {
		if err := ctx.Err(); err != nil {
			result.AddErrorf("scrape cancelled before %s: %v", cat.Name, err)
			break
		}
		s.logger.Info("Scraping category", "category", cat.Name, "path", cat.Path)

		doc, err := s.client.Fetch(ctx, cat.Path)
		if err != nil {
			s.logger.Error("Category fetch failed", "category", cat.Name, "error", err)
			result.AddErrorf("scrape %s: %v", cat.Name, err)
			continue
		}
		rows, err := ExtractTable(doc)
		if err != nil {
			s.logger.Error("Category parse failed", "category", cat.Name, "error", err)
			result.AddErrorf("scrape %s: %v", cat.Name, err)
			continue
		}

		s.logger.Info("Category parsed", "category", cat.Name, "rows", len(rows))
		result.CategoriesScraped++
		result.RowsParsed += len(rows)
		scraped = append(scraped, CategoryRows{Name: cat.Name, Rows: rows})
	}

	records, errs := Build(scraped)
	for _, e := range errs {
		s.logger.Warn("Record derivation issue", "error", e)
	}
	result.Errors = append(result.Errors, errs...)
	result.PlayersWritten = len(records)
	return records, result
}

// Build turns parsed category rows into dataset records: flatten, prune,
// derive assists, rename, normalize nations, strip accents from names.
func Build(categories []CategoryRows) ([]dataset.Record, []string) {
	records := Flatten(categories)
	Prune(records)
	errs := DeriveAssists(records)
	ApplyRenames(records)
	NormalizeNations(records)
	StripPlayerAccents(records)
	return records, errs
}

// WriteFile saves records as an indented JSON array, creating parent
// directories as needed.
func WriteFile(path string, records []dataset.Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if records == nil {
		records = []dataset.Record{}
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return f.Close()
}

// UnreachableFields returns canonical fields the scraper produces that no
// vocabulary phrase resolves to.
func UnreachableFields(v *vocab.Vocabulary) []string {
	var missing []string
	for _, field := range CanonicalFields() {
		if len(v.Phrases(field)) == 0 {
			missing = append(missing, field)
		}
	}
	return missing
}
