// Package inventory contiene las reglas de clasificación del inventario
// (servicios de dominio puros, sin estado).
package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/domain"
)

// Etiquetas de faltante.
const (
	ShortageCritical   = "Critical"
	ShortageOutOfStock = "Out of Stock"
)

// Etiquetas de abundancia.
const (
	AbundanceHigh     = "High"
	AbundanceModerate = "Moderate"
)

// Etiquetas de prioridad, comunes a faltantes, cuellos de botella y transferencias.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

var two = decimal.NewFromInt(2)

// Thresholds agrupa los umbrales configurables del análisis.
type Thresholds struct {
	AbundanceThreshold     decimal.Decimal // cantidad > umbral => "High"; > umbral/2 => "Moderate"
	SurplusBuffer          decimal.Decimal // cantidad mínima (exclusiva) para considerar excedente transferible
	PriorityHighValue      decimal.Decimal
	PriorityMediumValue    decimal.Decimal
	PriorityHighQuantity   decimal.Decimal
	PriorityMediumQuantity decimal.Decimal
	CriticalMultiplier     decimal.Decimal // vista "critical": |qty| >= media(|qty|) * multiplicador
	InactiveDays           int
	SiteIssueThreshold     int
	LocationIssueThreshold int
	FocusLimit             int
}

// DefaultThresholds devuelve los valores por defecto del análisis.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AbundanceThreshold:     decimal.NewFromInt(1000),
		SurplusBuffer:          decimal.Zero,
		PriorityHighValue:      decimal.NewFromInt(10000),
		PriorityMediumValue:    decimal.NewFromInt(1000),
		PriorityHighQuantity:   decimal.NewFromInt(500),
		PriorityMediumQuantity: decimal.NewFromInt(100),
		CriticalMultiplier:     two,
		InactiveDays:           90,
		SiteIssueThreshold:     0,
		LocationIssueThreshold: 0,
		FocusLimit:             20,
	}
}

// Validate verifica que los umbrales sean coherentes. Devuelve un error que envuelve
// domain.ErrInvalidConfiguration.
func (t Thresholds) Validate() error {
	named := []struct {
		name string
		v    decimal.Decimal
	}{
		{"abundance_threshold", t.AbundanceThreshold},
		{"surplus_buffer", t.SurplusBuffer},
		{"priority_high_value", t.PriorityHighValue},
		{"priority_medium_value", t.PriorityMediumValue},
		{"priority_high_quantity", t.PriorityHighQuantity},
		{"priority_medium_quantity", t.PriorityMediumQuantity},
		{"critical_multiplier", t.CriticalMultiplier},
	}
	for _, n := range named {
		if n.v.IsNegative() {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidConfiguration, n.name)
		}
	}
	if t.PriorityMediumValue.GreaterThan(t.PriorityHighValue) {
		return fmt.Errorf("%w: priority_medium_value mayor que priority_high_value", domain.ErrInvalidConfiguration)
	}
	if t.PriorityMediumQuantity.GreaterThan(t.PriorityHighQuantity) {
		return fmt.Errorf("%w: priority_medium_quantity mayor que priority_high_quantity", domain.ErrInvalidConfiguration)
	}
	if t.InactiveDays < 0 || t.SiteIssueThreshold < 0 || t.LocationIssueThreshold < 0 || t.FocusLimit < 0 {
		return fmt.Errorf("%w: los umbrales enteros no pueden ser negativos", domain.ErrInvalidConfiguration)
	}
	return nil
}

// ShortageLevel clasifica un faltante: negativo => "Critical", cero => "Out of Stock".
// Devuelve "" si la cantidad es positiva (no es faltante).
func ShortageLevel(qty decimal.Decimal) string {
	switch qty.Sign() {
	case -1:
		return ShortageCritical
	case 0:
		return ShortageOutOfStock
	default:
		return ""
	}
}

// IsShortage indica si la cantidad es un backorder (estrictamente negativa).
func IsShortage(qty decimal.Decimal) bool { return qty.IsNegative() }

// AbundanceLevel clasifica la abundancia respecto al umbral configurado.
// Devuelve "" si la cantidad no supera la mitad del umbral.
func AbundanceLevel(qty, threshold decimal.Decimal) string {
	if qty.GreaterThan(threshold) {
		return AbundanceHigh
	}
	if qty.GreaterThan(threshold.Div(two)) {
		return AbundanceModerate
	}
	return ""
}

// Priority combina el impacto en valor y la magnitud de la brecha de cantidad.
// Ambos se comparan en valor absoluto contra los cortes fijos de Thresholds.
func Priority(valueImpact, quantityGap decimal.Decimal, t Thresholds) string {
	v, q := valueImpact.Abs(), quantityGap.Abs()
	switch {
	case v.GreaterThanOrEqual(t.PriorityHighValue) || q.GreaterThanOrEqual(t.PriorityHighQuantity):
		return PriorityHigh
	case v.GreaterThanOrEqual(t.PriorityMediumValue) || q.GreaterThanOrEqual(t.PriorityMediumQuantity):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Impact clasifica sólo por valor (variante de Priority sin cantidad).
func Impact(value decimal.Decimal, t Thresholds) string {
	v := value.Abs()
	switch {
	case v.GreaterThanOrEqual(t.PriorityHighValue):
		return PriorityHigh
	case v.GreaterThanOrEqual(t.PriorityMediumValue):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// PriorityRank devuelve 0 para High, 1 para Medium y 2 para el resto.
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Inactive es true si lastActive es nil o anterior a now - days.
func Inactive(lastActive *time.Time, now time.Time, days int) bool {
	if lastActive == nil {
		return true
	}
	cutoff := now.AddDate(0, 0, -days)
	return lastActive.Before(cutoff)
}

// CompareSeverity ordena faltantes: la cantidad más negativa va primero.
// Devuelve <0 si a es más severo que b.
func CompareSeverity(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
