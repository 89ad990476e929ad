package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
)

// DateLayout formato de fecha expuesto por la API.
const DateLayout = "2006-01-02"

// InventoryRecordDTO fila del inventario consolidado. Los nombres JSON son contrato
// con el front-end.
type InventoryRecordDTO struct {
	Site                string          `json:"site"`
	StorageLocation     string          `json:"storage_location"`
	Material            string          `json:"material"`
	MaterialDescription string          `json:"material_description"`
	CurrentQuantity     decimal.Decimal `json:"current_quantity"`
	TotalValue          decimal.Decimal `json:"total_value"`
	LastActive          *string         `json:"last_active"` // YYYY-MM-DD o null
	Unit                string          `json:"unit"`
}

// ClassifiedRecordDTO fila con la etiqueta de clasificación que la incluyó en la lista.
type ClassifiedRecordDTO struct {
	InventoryRecordDTO
	ShortageLevel  string `json:"shortage_level,omitempty"`
	AbundanceLevel string `json:"abundance_level,omitempty"`
	Priority       string `json:"priority,omitempty"`
}

// TransactionRecordDTO movimiento del libro para el drill-down.
type TransactionRecordDTO struct {
	Material        string          `json:"material"`
	Site            string          `json:"site"`
	StorageLocation string          `json:"storage_location"`
	Date            *string         `json:"date"`
	Type            string          `json:"type"`
	QuantityDelta   decimal.Decimal `json:"quantity_delta"`
	Value           decimal.Decimal `json:"value"`
	Text            string          `json:"text"`
}

// MaterialDetailDTO respuesta de GET /api/material/:material/details.
type MaterialDetailDTO struct {
	Material            string                 `json:"material"`
	MaterialDescription string                 `json:"material_description"`
	TotalQuantity       decimal.Decimal        `json:"total_quantity"`
	TotalValue          decimal.Decimal        `json:"total_value"`
	Locations           []InventoryRecordDTO   `json:"locations"`
	Transactions        []TransactionRecordDTO `json:"transactions"` // máx. 10, más recientes primero
}

// UploadResultDTO resultado de una ingesta.
type UploadResultDTO struct {
	SnapshotID    string   `json:"snapshot_id"`
	Source        string   `json:"source"`
	Records       int      `json:"records"`
	Transactions  int      `json:"transactions"`
	MalformedRows int      `json:"malformed_rows"`
	MissingValues int      `json:"missing_values"`
	Issues        []string `json:"issues"`
}

// ToInventoryRecordDTO convierte la entidad a su forma JSON.
func ToInventoryRecordDTO(r entity.InventoryRecord) InventoryRecordDTO {
	return InventoryRecordDTO{
		Site:                r.Site,
		StorageLocation:     r.StorageLocation,
		Material:            r.Material,
		MaterialDescription: r.MaterialDescription,
		CurrentQuantity:     r.CurrentQuantity,
		TotalValue:          r.TotalValue,
		LastActive:          FormatDate(r.LastActive),
		Unit:                r.Unit,
	}
}

// ToTransactionRecordDTO convierte un movimiento a su forma JSON.
func ToTransactionRecordDTO(t entity.TransactionRecord) TransactionRecordDTO {
	return TransactionRecordDTO{
		Material:        t.Material,
		Site:            t.Site,
		StorageLocation: t.StorageLocation,
		Date:            FormatDate(t.Date),
		Type:            t.Type,
		QuantityDelta:   t.QuantityDelta,
		Value:           t.Value,
		Text:            t.Text,
	}
}

// FormatDate devuelve la fecha en DateLayout o nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
