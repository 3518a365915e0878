// Command ingest builds and publishes the player dataset the chat server
// reads.
//
// Usage:
//
//	scoracle-ingest scrape --out data/player_stats.json
//	scoracle-ingest scrape --out data/player_stats.json --load
//	scoracle-ingest load --file data/player_stats.json
//	scoracle-ingest vocab-check
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/db"
	"github.com/albapepper/scoracle-chat/internal/scraper"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "scoracle-ingest",
		Short:        "Scoracle dataset ingestion CLI",
		SilenceUsage: true,
	}

	root.AddCommand(scrapeCmd())
	root.AddCommand(loadCmd())
	root.AddCommand(vocabCheckCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// scrape command
// --------------------------------------------------------------------------

func scrapeCmd() *cobra.Command {
	var out string
	var load bool
	var only []string
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape FBref Premier League tables into a dataset file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				if out == "" {
					out = cfg.DatasetPath
				}
				categories, err := selectCategories(only)
				if err != nil {
					return err
				}

				client := scraper.NewClient(cfg.ScrapeBaseURL, cfg.ScrapeUserAgent, cfg.ScrapeDelay, logger)
				start := time.Now()
				records, result := scraper.New(client, categories, logger).Run(ctx)
				logger.Info("Scrape finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("scrape error", "error", e)
				}
				if len(records) == 0 {
					return fmt.Errorf("scrape produced no records")
				}

				if err := scraper.WriteFile(out, records); err != nil {
					return err
				}
				logger.Info("Dataset written", "path", out, "players", len(records))

				if !load {
					return nil
				}
				return loadStore(ctx, cfg, dataset.New(records))
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output path (default DATASET_PATH)")
	cmd.Flags().BoolVar(&load, "load", false, "Also load the result into Postgres")
	cmd.Flags().StringSliceVar(&only, "category", nil, "Restrict to these categories (shooting, misc, standard_stats, keepers)")
	return cmd
}

func selectCategories(names []string) ([]config.Category, error) {
	if len(names) == 0 {
		return config.ScrapeCategories, nil
	}
	var out []config.Category
	for _, cat := range config.ScrapeCategories {
		for _, n := range names {
			if strings.EqualFold(cat.Name, n) {
				out = append(out, cat)
				break
			}
		}
	}
	if len(out) != len(names) {
		return nil, fmt.Errorf("unknown category in %v", names)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// load command
// --------------------------------------------------------------------------

func loadCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Mirror a dataset file into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				if file == "" {
					file = cfg.DatasetPath
				}
				store, err := dataset.LoadFile(file)
				if err != nil {
					return err
				}
				return loadStore(ctx, cfg, store)
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Dataset file (default DATASET_PATH)")
	return cmd
}

func loadStore(ctx context.Context, cfg *config.Config, store *dataset.Store) error {
	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}

	start := time.Now()
	n, err := dataset.SavePostgres(ctx, pool, store)
	if err != nil {
		return err
	}
	logger.Info("Dataset loaded into Postgres",
		"table", config.PlayerRecordsTable,
		"players", n,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// --------------------------------------------------------------------------
// vocab-check command
// --------------------------------------------------------------------------

func vocabCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab-check",
		Short: "Verify every scraped stat field has at least one vocabulary phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := vocab.Default()
			missing := scraper.UnreachableFields(v)
			if len(missing) > 0 {
				return fmt.Errorf("%d fields have no vocabulary phrase: %s", len(missing), strings.Join(missing, ", "))
			}
			logger.Info("Vocabulary covers every scraped field",
				"fields", len(scraper.CanonicalFields()),
				"phrases", v.Len())
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func run(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return fn(ctx, cfg)
}
