package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-chat/internal/config"
)

func TestNewRequiresDatabaseURL(t *testing.T) {
	_, err := New(context.Background(), &config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewRejectsMalformedURL(t *testing.T) {
	_, err := New(context.Background(), &config.Config{DatabaseURL: "postgres://%zz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse database URL")
}

func TestSchemaTargetsRecordsTable(t *testing.T) {
	assert.Contains(t, schema, config.PlayerRecordsTable)
	assert.Contains(t, schema, "record     JSONB")
}

type fakeRow struct {
	n   int
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.n
	return nil
}

type fakeQuerier struct {
	row fakeRow
	sql string
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sql = sql
	return q.row
}

func TestHealthCheck(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{n: 1}}
	require.NoError(t, healthCheck(context.Background(), q))
	assert.Equal(t, StmtHealthCheck, q.sql)

	err := healthCheck(context.Background(), &fakeQuerier{row: fakeRow{err: errors.New("conn reset")}})
	assert.EqualError(t, err, "conn reset")

	err = healthCheck(context.Background(), &fakeQuerier{row: fakeRow{n: 0}})
	assert.EqualError(t, err, "health_check returned 0")
}
