package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUndefinedTable(t *testing.T) {
	wrapped := fmt.Errorf("query: %w", &pgconn.PgError{Code: "42P01"})
	assert.True(t, isUndefinedTable(wrapped))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("timeout")))
}

func TestUTCDate(t *testing.T) {
	assert.Nil(t, utcDate(nil))

	bogota := time.FixedZone("COT", -5*3600)
	in := time.Date(2025, 3, 9, 22, 30, 0, 0, bogota)
	got := utcDate(&in)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), *got)
}

func TestSchemaEmbebido(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS inventory_snapshots")
	assert.Contains(t, schemaSQL, "inventory_snapshot_transactions")
}
