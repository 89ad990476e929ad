package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord es un movimiento del libro de inventario (append-only).
type TransactionRecord struct {
	Material        string
	Site            string
	StorageLocation string
	Date            *time.Time
	Type            string // clase de movimiento, ej. "261"
	QuantityDelta   decimal.Decimal
	Value           decimal.Decimal
	Text            string
}
