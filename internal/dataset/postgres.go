package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/scoracle-chat/internal/db"
)

// Querier is the read side of a pgx pool or connection.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Beginner starts transactions; satisfied by *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// LoadPostgres reads the dataset mirror in its stored order.
func LoadPostgres(ctx context.Context, q Querier) (*Store, error) {
	rows, err := q.Query(ctx, db.StmtListRecords)
	if err != nil {
		return nil, fmt.Errorf("query player records: %w", err)
	}
	raws, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("scan player records: %w", err)
	}

	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var r Record
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("decode player record %d: %w", i, err)
		}
		records = append(records, r)
	}

	s := New(records)
	if s.Len() == 0 {
		return nil, ErrNoRecords
	}
	return s, nil
}

// SavePostgres replaces the mirror's contents with s in one transaction.
// Returns the number of records written.
func SavePostgres(ctx context.Context, b Beginner, s *Store) (int, error) {
	batch := &pgx.Batch{}
	for i, r := range s.Records() {
		raw, err := json.Marshal(r)
		if err != nil {
			return 0, fmt.Errorf("encode %s: %w", r.Name(), err)
		}
		batch.Queue(db.StmtUpsertRecord, r.Name(), r.Team(), i, raw)
	}
	batch.Queue(db.StmtPruneRecords, s.Names())

	err := pgx.BeginFunc(ctx, b, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, fmt.Errorf("write player records: %w", err)
	}
	return s.Len(), nil
}
