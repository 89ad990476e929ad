package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
)

// RowIssue describe una fila descartada o corregida durante la ingesta.
type RowIssue struct {
	Row    int // fila de origen (1 = encabezado); 0 si no aplica
	Field  string
	Reason string
	Err    error
}

// Error implementa error.
func (i RowIssue) Error() string {
	if i.Row > 0 {
		return fmt.Sprintf("fila %d: %s: %s", i.Row, i.Field, i.Reason)
	}
	return fmt.Sprintf("%s: %s", i.Field, i.Reason)
}

// Unwrap permite errors.Is(issue, domain.ErrMalformedRecord).
func (i RowIssue) Unwrap() error { return i.Err }

// Diagnostics acumula los problemas no fatales de un dataset.
type Diagnostics struct {
	MalformedRows int
	MissingValues int
	Issues        []RowIssue
}

// AddMalformed registra una fila excluida de los agregados.
func (d *Diagnostics) AddMalformed(row int, field, reason string) {
	d.MalformedRows++
	d.Issues = append(d.Issues, RowIssue{Row: row, Field: field, Reason: reason, Err: domain.ErrMalformedRecord})
}

// AddMissing registra un valor numérico ausente tratado como cero.
func (d *Diagnostics) AddMissing(row int, field string) {
	d.MissingValues++
	d.Issues = append(d.Issues, RowIssue{Row: row, Field: field, Reason: "valor ausente, se usa 0"})
}

// Snapshot es una versión completa e inmutable del dataset. Se reemplaza entera
// en cada carga; los reportes nunca la modifican.
type Snapshot struct {
	ID           string
	Source       string
	LoadedAt     time.Time
	Records      []InventoryRecord
	Transactions []TransactionRecord
	Diagnostics  Diagnostics
}

// NewSnapshot construye un snapshot verificando la unicidad de
// (site, storage_location, material). Los duplicados posteriores se excluyen
// y se cuentan como filas mal formadas.
func NewSnapshot(source string, records []InventoryRecord, txs []TransactionRecord, diag Diagnostics) *Snapshot {
	seen := make(map[RecordKey]struct{}, len(records))
	unique := make([]InventoryRecord, 0, len(records))
	for _, r := range records {
		k := r.Key()
		if _, dup := seen[k]; dup {
			diag.AddMalformed(0, "material", fmt.Sprintf("duplicado %s/%s/%s", r.Site, r.StorageLocation, r.Material))
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, r)
	}
	return &Snapshot{
		ID:           uuid.New().String(),
		Source:       source,
		LoadedAt:     time.Now().UTC(),
		Records:      unique,
		Transactions: append([]TransactionRecord(nil), txs...),
		Diagnostics:  diag,
	}
}
