// Package db provides a pgxpool-based connection pool for the Postgres copy
// of the player dataset, with schema bootstrap and prepared statements.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/scoracle-chat/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// Prepared statement names.
const (
	StmtHealthCheck  = "health_check"
	StmtListRecords  = "list_player_records"
	StmtUpsertRecord = "upsert_player_record"
	StmtPruneRecords = "prune_player_records"
)

const schema = `
CREATE TABLE IF NOT EXISTS ` + config.PlayerRecordsTable + ` (
	player     TEXT PRIMARY KEY,
	team       TEXT NOT NULL DEFAULT '',
	ord        INTEGER NOT NULL,
	record     JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Statements reference the records table, so create it first.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, schema); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	return healthCheck(ctx, p.Pool)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func healthCheck(ctx context.Context, q rowQuerier) error {
	var n int
	if err := q.QueryRow(ctx, StmtHealthCheck).Scan(&n); err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("%s returned %d", StmtHealthCheck, n)
	}
	return nil
}

func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		StmtHealthCheck: "SELECT 1",

		// API: dataset load at startup
		StmtListRecords: "SELECT record FROM " + config.PlayerRecordsTable + " ORDER BY ord",

		// Ingestion: mirror a dataset file
		StmtUpsertRecord: `INSERT INTO ` + config.PlayerRecordsTable + ` (player, team, ord, record)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (player) DO UPDATE SET
				team = EXCLUDED.team,
				ord = EXCLUDED.ord,
				record = EXCLUDED.record,
				updated_at = NOW()`,
		StmtPruneRecords: "DELETE FROM " + config.PlayerRecordsTable + " WHERE NOT (player = ANY($1))",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
