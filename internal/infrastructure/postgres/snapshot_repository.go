package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/repository"
)

var _ repository.SnapshotArchive = (*SnapshotRepo)(nil)

// DefaultRetention snapshots conservados; los más antiguos se borran al guardar.
const DefaultRetention = 5

var (
	recordColumns = []string{
		"snapshot_id", "position", "site", "storage_location", "material",
		"material_description", "current_quantity", "total_value", "last_active", "unit",
	}
	transactionColumns = []string{
		"snapshot_id", "position", "material", "site", "storage_location",
		"posting_date", "movement_type", "quantity_delta", "value", "text",
	}
)

// SnapshotRepo archivo de snapshots sobre PostgreSQL. Las filas se insertan con COPY.
type SnapshotRepo struct {
	q         Querier
	tx        *TxRunner
	retention int
}

// NewSnapshotRepository construye el archivo. retention <= 0 usa DefaultRetention.
func NewSnapshotRepository(pool *pgxpool.Pool, retention int) *SnapshotRepo {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &SnapshotRepo{q: pool, tx: NewTxRunner(pool), retention: retention}
}

// Save guarda el snapshot completo en una sola transacción y poda los antiguos.
func (r *SnapshotRepo) Save(ctx context.Context, s *entity.Snapshot) error {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return fmt.Errorf("snapshot id %q: %w", s.ID, err)
	}
	return r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO inventory_snapshots (id, source, loaded_at, record_count, malformed_rows, missing_values)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, s.Source, s.LoadedAt, len(s.Records), s.Diagnostics.MalformedRows, s.Diagnostics.MissingValues)
		if err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}

		recs := s.Records
		if _, err := q.CopyFrom(ctx, pgx.Identifier{"inventory_snapshot_records"}, recordColumns,
			pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
				r := recs[i]
				return []any{id, i, r.Site, r.StorageLocation, r.Material, r.MaterialDescription,
					r.CurrentQuantity, r.TotalValue, r.LastActive, r.Unit}, nil
			})); err != nil {
			return fmt.Errorf("copy records: %w", err)
		}

		txs := s.Transactions
		if _, err := q.CopyFrom(ctx, pgx.Identifier{"inventory_snapshot_transactions"}, transactionColumns,
			pgx.CopyFromSlice(len(txs), func(i int) ([]any, error) {
				t := txs[i]
				return []any{id, i, t.Material, t.Site, t.StorageLocation, t.Date,
					t.Type, t.QuantityDelta, t.Value, t.Text}, nil
			})); err != nil {
			return fmt.Errorf("copy transactions: %w", err)
		}

		_, err = q.Exec(ctx, `
			DELETE FROM inventory_snapshots
			WHERE id NOT IN (SELECT id FROM inventory_snapshots ORDER BY loaded_at DESC LIMIT $1)`,
			r.retention)
		if err != nil {
			return fmt.Errorf("podar snapshots: %w", err)
		}
		return nil
	})
}

// LoadLatest reconstruye el snapshot más reciente. Devuelve domain.ErrDatasetUnavailable
// si no hay ninguno o el esquema aún no existe.
func (r *SnapshotRepo) LoadLatest(ctx context.Context) (*entity.Snapshot, error) {
	s := &entity.Snapshot{}
	err := r.q.QueryRow(ctx, `
		SELECT id::text, source, loaded_at, malformed_rows, missing_values
		FROM inventory_snapshots ORDER BY loaded_at DESC LIMIT 1`,
	).Scan(&s.ID, &s.Source, &s.LoadedAt, &s.Diagnostics.MalformedRows, &s.Diagnostics.MissingValues)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return nil, domain.ErrDatasetUnavailable
		}
		return nil, fmt.Errorf("snapshot más reciente: %w", err)
	}
	s.LoadedAt = s.LoadedAt.UTC()

	if s.Records, err = r.records(ctx, s.ID); err != nil {
		return nil, err
	}
	if s.Transactions, err = r.transactions(ctx, s.ID); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SnapshotRepo) records(ctx context.Context, id string) ([]entity.InventoryRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT site, storage_location, material, material_description,
		       current_quantity, total_value, last_active, unit
		FROM inventory_snapshot_records WHERE snapshot_id = $1::text::uuid ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	out := make([]entity.InventoryRecord, 0)
	for rows.Next() {
		var rec entity.InventoryRecord
		var qty, val decimal.Decimal
		var last *time.Time
		if err := rows.Scan(&rec.Site, &rec.StorageLocation, &rec.Material, &rec.MaterialDescription,
			&qty, &val, &last, &rec.Unit); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.CurrentQuantity, rec.TotalValue, rec.LastActive = qty, val, utcDate(last)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) transactions(ctx context.Context, id string) ([]entity.TransactionRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT material, site, storage_location, posting_date, movement_type, quantity_delta, value, text
		FROM inventory_snapshot_transactions WHERE snapshot_id = $1::text::uuid ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := make([]entity.TransactionRecord, 0)
	for rows.Next() {
		var t entity.TransactionRecord
		var date *time.Time
		if err := rows.Scan(&t.Material, &t.Site, &t.StorageLocation, &date, &t.Type,
			&t.QuantityDelta, &t.Value, &t.Text); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Date = utcDate(date)
		out = append(out, t)
	}
	return out, rows.Err()
}

func utcDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

//go:embed schema.sql
var schemaSQL string

// EnsureSchema crea las tablas del archivo si no existen.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
