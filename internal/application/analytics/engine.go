// Package analytics contiene el motor de análisis de inventario: agregación,
// recomendaciones de transferencia y ensamblado de reportes.
//
// Todas las operaciones reciben el snapshot como parámetro explícito, no guardan
// estado mutable y nunca modifican el snapshot; pueden llamarse concurrentemente.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/inventory"
)

const (
	DefaultTopShortages = 10
	DefaultInactive     = 20
	MaxLimit            = 500
	MaterialDetailTxs   = 10
)

// Etiquetas de áreas de foco (conjunto cerrado).
const (
	FocusHighValue        = "High Value Impact"
	FocusCriticalQuantity = "Critical Quantity Gap"
	FocusSiteIssues       = "Multiple Shortages"
	FocusLocationIssues   = "Location Issues"

	ActionUrgentReplenishment = "Urgent Replenishment Required"
	ActionImmediateTransfer   = "Immediate Stock Transfer"
	ActionSiteReview          = "Site-Level Review Required"
	ActionLocationAudit       = "Storage Location Audit"
)

// Tipos de cuello de botella.
const (
	BottleneckSite     = "Site"
	BottleneckLocation = "Storage Location"
	BottleneckMaterial = "Material"
)

// Engine ensambla los reportes a partir de un snapshot y los umbrales configurados.
type Engine struct {
	t inventory.Thresholds
}

// NewEngine valida los umbrales y construye el motor.
func NewEngine(t inventory.Thresholds) (*Engine, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Engine{t: t}, nil
}

// Thresholds devuelve los umbrales en uso.
func (e *Engine) Thresholds() inventory.Thresholds { return e.t }

// sortedRecords devuelve una copia filtrada de las filas, ordenada por less.
func sortedRecords(records []entity.InventoryRecord, keep func(entity.InventoryRecord) bool, less func(a, b entity.InventoryRecord) bool) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0)
	for _, r := range records {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byKey(a, b entity.InventoryRecord) bool { return a.Key().Less(b.Key()) }

// byQuantityAsc: más negativo primero; empates por llave.
func byQuantityAsc(a, b entity.InventoryRecord) bool {
	if c := inventory.CompareSeverity(a.CurrentQuantity, b.CurrentQuantity); c != 0 {
		return c < 0
	}
	return byKey(a, b)
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// absStats media y mediana de |current_quantity| sobre todo el snapshot.
func absStats(records []entity.InventoryRecord) (mean, median decimal.Decimal) {
	if len(records) == 0 {
		return decimal.Zero, decimal.Zero
	}
	abs := make([]decimal.Decimal, len(records))
	sum := decimal.Zero
	for i, r := range records {
		abs[i] = r.CurrentQuantity.Abs()
		sum = sum.Add(abs[i])
	}
	n := decimal.NewFromInt(int64(len(abs)))
	mean = sum.Div(n)

	sort.Slice(abs, func(i, j int) bool { return abs[i].LessThan(abs[j]) })
	mid := len(abs) / 2
	if len(abs)%2 == 1 {
		median = abs[mid]
	} else {
		median = abs[mid-1].Add(abs[mid]).Div(decimal.NewFromInt(2))
	}
	return mean, median
}

func toRecordDTOs(records []entity.InventoryRecord) []dto.InventoryRecordDTO {
	out := make([]dto.InventoryRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ToInventoryRecordDTO(r))
	}
	return out
}
