package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/inventory"
)

// ── Listas clasificadas ──────────────────────────────────────────────────────

func (e *Engine) classified(r entity.InventoryRecord) dto.ClassifiedRecordDTO {
	return dto.ClassifiedRecordDTO{
		InventoryRecordDTO: dto.ToInventoryRecordDTO(r),
		ShortageLevel:      inventory.ShortageLevel(r.CurrentQuantity),
		AbundanceLevel:     inventory.AbundanceLevel(r.CurrentQuantity, e.t.AbundanceThreshold),
		Priority:           inventory.Priority(r.TotalValue, r.CurrentQuantity, e.t),
	}
}

func (e *Engine) classifiedList(records []entity.InventoryRecord) []dto.ClassifiedRecordDTO {
	out := make([]dto.ClassifiedRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, e.classified(r))
	}
	return out
}

func hasShortageLevel(r entity.InventoryRecord) bool {
	return inventory.ShortageLevel(r.CurrentQuantity) != ""
}

// Shortages filas con nivel de faltante ("Critical" u "Out of Stock"), más negativas primero.
func (e *Engine) Shortages(s *entity.Snapshot) []dto.ClassifiedRecordDTO {
	return e.classifiedList(sortedRecords(s.Records, hasShortageLevel, byQuantityAsc))
}

// CriticalItems faltantes cuya magnitud alcanza media(|qty|) × multiplier.
// multiplier <= 0 usa el valor configurado.
func (e *Engine) CriticalItems(s *entity.Snapshot, multiplier decimal.Decimal) []dto.ClassifiedRecordDTO {
	if !multiplier.IsPositive() {
		multiplier = e.t.CriticalMultiplier
	}
	mean, _ := absStats(s.Records)
	cut := mean.Mul(multiplier)
	keep := func(r entity.InventoryRecord) bool {
		return inventory.IsShortage(r.CurrentQuantity) && r.CurrentQuantity.Abs().GreaterThanOrEqual(cut)
	}
	return e.classifiedList(sortedRecords(s.Records, keep, byQuantityAsc))
}

// AbundantItems filas con nivel de abundancia, mayor cantidad primero.
func (e *Engine) AbundantItems(s *entity.Snapshot) []dto.ClassifiedRecordDTO {
	keep := AbundancePredicate(e.t.AbundanceThreshold)
	less := func(a, b entity.InventoryRecord) bool {
		if c := a.CurrentQuantity.Cmp(b.CurrentQuantity); c != 0 {
			return c > 0
		}
		return byKey(a, b)
	}
	return e.classifiedList(sortedRecords(s.Records, keep, less))
}

// SiteInventory todas las filas, o sólo las de site si no es vacío.
func (e *Engine) SiteInventory(s *entity.Snapshot, site string) []dto.InventoryRecordDTO {
	var keep func(entity.InventoryRecord) bool
	if site != "" {
		keep = func(r entity.InventoryRecord) bool { return r.Site == site }
	}
	return toRecordDTOs(sortedRecords(s.Records, keep, byKey))
}

// TopShortages los limit faltantes más negativos.
func (e *Engine) TopShortages(s *entity.Snapshot, limit int) []dto.ClassifiedRecordDTO {
	limit = clampLimit(limit, DefaultTopShortages)
	return truncate(e.Shortages(s), limit)
}

// TopShortagesByValue los limit faltantes (qty < 0) con mayor |total_value|.
func (e *Engine) TopShortagesByValue(s *entity.Snapshot, limit int) []dto.ClassifiedRecordDTO {
	limit = clampLimit(limit, DefaultTopShortages)
	rows := sortedRecords(s.Records, ShortagePredicate, byValueImpact)
	return truncate(e.classifiedList(rows), limit)
}

func byValueImpact(a, b entity.InventoryRecord) bool {
	if c := a.TotalValue.Abs().Cmp(b.TotalValue.Abs()); c != 0 {
		return c > 0
	}
	return byQuantityAsc(a, b)
}

// InactiveStock filas sin movimiento en days días (o sin fecha), las más antiguas primero.
func (e *Engine) InactiveStock(s *entity.Snapshot, now time.Time, days, limit int) []dto.InventoryRecordDTO {
	if days <= 0 {
		days = e.t.InactiveDays
	}
	limit = clampLimit(limit, DefaultInactive)
	keep := func(r entity.InventoryRecord) bool { return inventory.Inactive(r.LastActive, now, days) }
	less := func(a, b entity.InventoryRecord) bool {
		switch {
		case a.LastActive == nil && b.LastActive != nil:
			return true
		case a.LastActive != nil && b.LastActive == nil:
			return false
		case a.LastActive != nil && !a.LastActive.Equal(*b.LastActive):
			return a.LastActive.Before(*b.LastActive)
		}
		return byKey(a, b)
	}
	return truncate(toRecordDTOs(sortedRecords(s.Records, keep, less)), limit)
}

// ── Recomendaciones ──────────────────────────────────────────────────────────

// ShippingRecommendations transferencias entre sitios (cantidades netas por sitio).
func (e *Engine) ShippingRecommendations(s *entity.Snapshot) dto.RecommendationsDTO {
	return toRecommendationsDTO(Recommend(s.Records, SiteLevel, e.t), SiteLevel)
}

// MovementRecommendations transferencias entre ubicaciones de almacenamiento.
func (e *Engine) MovementRecommendations(s *entity.Snapshot) dto.RecommendationsDTO {
	return toRecommendationsDTO(Recommend(s.Records, LocationLevel, e.t), LocationLevel)
}

func toRecommendationsDTO(res RecommendationResult, g Granularity) dto.RecommendationsDTO {
	out := dto.RecommendationsDTO{
		Granularity:     g.String(),
		Recommendations: make([]dto.TransferRecommendationDTO, 0, len(res.Recommendations)),
		Unresolved:      make([]dto.UnresolvedShortageDTO, 0, len(res.Unresolved)),
	}
	for _, r := range res.Recommendations {
		out.Recommendations = append(out.Recommendations, dto.TransferRecommendationDTO{
			Material:            r.Material,
			MaterialDescription: r.MaterialDescription,
			FromSite:            r.FromSite,
			FromStorageLocation: r.FromStorageLocation,
			ToSite:              r.ToSite,
			ToStorageLocation:   r.ToStorageLocation,
			AvailableQuantity:   r.AvailableQuantity,
			RequiredQuantity:    r.RequiredQuantity,
			RecommendedQuantity: r.RecommendedQuantity,
			EstimatedValue:      r.EstimatedValue,
			Priority:            r.Priority,
			Impact:              r.Impact,
		})
	}
	for _, u := range res.Unresolved {
		out.Unresolved = append(out.Unresolved, dto.UnresolvedShortageDTO{
			Material:            u.Material,
			Site:                u.Site,
			StorageLocation:     u.StorageLocation,
			RequiredQuantity:    u.RequiredQuantity,
			UnallocatedQuantity: u.UnallocatedQuantity,
			Reason:              u.Reason,
		})
	}
	return out
}

// ── Cuellos de botella ───────────────────────────────────────────────────────

// Bottlenecks agrega los faltantes por sitio, por ubicación y por material.
func (e *Engine) Bottlenecks(s *entity.Snapshot) dto.BottleneckReportDTO {
	return dto.BottleneckReportDTO{
		Sites:     e.bottlenecks(AggregateShortages(s.Records, BySite), BottleneckSite),
		Locations: e.bottlenecks(AggregateShortages(s.Records, BySiteLocation), BottleneckLocation),
		Materials: e.bottlenecks(AggregateShortages(s.Records, ByMaterial), BottleneckMaterial),
	}
}

func (e *Engine) bottlenecks(groups []Group, kind string) []dto.BottleneckDTO {
	out := make([]dto.BottleneckDTO, 0, len(groups))
	for _, g := range groups {
		b := dto.BottleneckDTO{
			Site:             g.Key.Site,
			StorageLocation:  g.Key.StorageLocation,
			Material:         g.Key.Material,
			ItemCount:        g.ItemCount,
			TotalShortageQty: g.TotalShortageQty,
			ValueImpact:      g.ValueImpact,
			BottleneckType:   kind,
			Priority:         inventory.Priority(g.ValueImpact, g.TotalShortageQty, e.t),
		}
		if kind == BottleneckMaterial {
			b.MaterialDescription = g.MaterialDescription
			b.AffectedSites = g.AffectedSites
			b.AffectedSiteCount = len(g.AffectedSites)
		}
		out = append(out, b)
	}
	return out
}

// ── Excedentes ───────────────────────────────────────────────────────────────

// Abundance agrega las filas abundantes por sitio, por ubicación y por material,
// mayor cantidad primero.
func (e *Engine) Abundance(s *entity.Snapshot) dto.AbundanceReportDTO {
	return dto.AbundanceReportDTO{
		Sites:     abundanceGroups(AggregateAbundance(s.Records, BySite, e.t.AbundanceThreshold), BottleneckSite),
		Locations: abundanceGroups(AggregateAbundance(s.Records, BySiteLocation, e.t.AbundanceThreshold), BottleneckLocation),
		Materials: abundanceGroups(AggregateAbundance(s.Records, ByMaterial, e.t.AbundanceThreshold), BottleneckMaterial),
	}
}

func abundanceGroups(groups []Group, kind string) []dto.AbundanceGroupDTO {
	out := make([]dto.AbundanceGroupDTO, 0, len(groups))
	for _, g := range groups {
		a := dto.AbundanceGroupDTO{
			Site:            g.Key.Site,
			StorageLocation: g.Key.StorageLocation,
			Material:        g.Key.Material,
			ItemCount:       g.ItemCount,
			TotalQuantity:   g.TotalQuantity,
			TotalValue:      g.TotalValue,
			GroupType:       kind,
		}
		if kind == BottleneckMaterial {
			a.MaterialDescription = g.MaterialDescription
			a.AffectedSites = g.AffectedSites
			a.AffectedSiteCount = len(g.AffectedSites)
		}
		out = append(out, a)
	}
	return out
}

// ── Áreas de foco ────────────────────────────────────────────────────────────

// FocusAreas prioriza dónde actuar: mayor impacto en valor, mayor brecha de cantidad,
// sitios y ubicaciones con varios faltantes.
func (e *Engine) FocusAreas(s *entity.Snapshot) dto.FocusAreasDTO {
	limit := e.t.FocusLimit
	mean, _ := absStats(s.Records)

	highValue := sortedRecords(s.Records, func(r entity.InventoryRecord) bool {
		return inventory.IsShortage(r.CurrentQuantity) && !r.TotalValue.IsZero()
	}, byValueImpact)

	criticalQty := sortedRecords(s.Records, func(r entity.InventoryRecord) bool {
		return inventory.IsShortage(r.CurrentQuantity) && r.CurrentQuantity.Abs().GreaterThan(mean)
	}, byQuantityAsc)

	return dto.FocusAreasDTO{
		HighValue:        e.focusItems(truncate(highValue, limit), FocusHighValue, ActionUrgentReplenishment),
		CriticalQuantity: e.focusItems(truncate(criticalQty, limit), FocusCriticalQuantity, ActionImmediateTransfer),
		SiteIssues:       e.focusGroups(s.Records, BySite, e.t.SiteIssueThreshold, 0, FocusSiteIssues, ActionSiteReview),
		LocationIssues:   e.focusGroups(s.Records, BySiteLocation, e.t.LocationIssueThreshold, limit, FocusLocationIssues, ActionLocationAudit),
	}
}

func (e *Engine) focusItems(records []entity.InventoryRecord, reason, action string) []dto.FocusItemDTO {
	out := make([]dto.FocusItemDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.FocusItemDTO{
			InventoryRecordDTO: dto.ToInventoryRecordDTO(r),
			Priority:           inventory.Priority(r.TotalValue, r.CurrentQuantity, e.t),
			FocusReason:        reason,
			RecommendedAction:  action,
		})
	}
	return out
}

// focusGroups grupos con más de threshold faltantes, por conteo descendente.
// limit 0 devuelve todos.
func (e *Engine) focusGroups(records []entity.InventoryRecord, keys GroupKeys, threshold, limit int, reason, action string) []dto.FocusGroupDTO {
	groups := AggregateShortages(records, keys)
	// AggregateShortages ya ordena por faltante; aquí manda el conteo.
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].ItemCount > groups[j].ItemCount })

	out := make([]dto.FocusGroupDTO, 0, len(groups))
	for _, g := range groups {
		if g.ItemCount <= threshold {
			continue
		}
		out = append(out, dto.FocusGroupDTO{
			Site:              g.Key.Site,
			StorageLocation:   g.Key.StorageLocation,
			ShortageCount:     g.ItemCount,
			TotalShortageQty:  g.TotalShortageQty,
			ValueImpact:       g.ValueImpact,
			Priority:          inventory.Priority(g.ValueImpact, g.TotalShortageQty, e.t),
			FocusReason:       reason,
			RecommendedAction: action,
		})
	}
	return truncate(out, limit)
}

// ── Drill-down por material ──────────────────────────────────────────────────

// MaterialDetail filas por ubicación del material y sus 10 movimientos más recientes.
// Devuelve domain.ErrMaterialNotFound si el material no existe en el snapshot.
func (e *Engine) MaterialDetail(s *entity.Snapshot, material string) (*dto.MaterialDetailDTO, error) {
	rows := sortedRecords(s.Records, func(r entity.InventoryRecord) bool { return r.Material == material }, byKey)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, material)
	}

	detail := &dto.MaterialDetailDTO{
		Material:      material,
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
		Locations:     toRecordDTOs(rows),
		Transactions:  make([]dto.TransactionRecordDTO, 0, MaterialDetailTxs),
	}
	for _, r := range rows {
		if detail.MaterialDescription == "" {
			detail.MaterialDescription = r.MaterialDescription
		}
		detail.TotalQuantity = detail.TotalQuantity.Add(r.CurrentQuantity)
		detail.TotalValue = detail.TotalValue.Add(r.TotalValue)
	}

	var txs []entity.TransactionRecord
	for _, t := range s.Transactions {
		if t.Material == material {
			txs = append(txs, t)
		}
	}
	// Más recientes primero; sin fecha al final; empates conservan el orden del libro.
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i].Date, txs[j].Date
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	for _, t := range truncate(txs, MaterialDetailTxs) {
		detail.Transactions = append(detail.Transactions, dto.ToTransactionRecordDTO(t))
	}
	return detail, nil
}

// MaterialAnalysis filas del material en todos los sitios.
func (e *Engine) MaterialAnalysis(s *entity.Snapshot, material string) ([]dto.InventoryRecordDTO, error) {
	rows := sortedRecords(s.Records, func(r entity.InventoryRecord) bool { return r.Material == material }, byKey)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, material)
	}
	return toRecordDTOs(rows), nil
}
