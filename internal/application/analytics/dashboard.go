package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
)

// DashboardStats calcula los contadores globales del snapshot.
func (e *Engine) DashboardStats(s *entity.Snapshot) dto.DashboardStatsDTO {
	sites := make(map[string]struct{})
	materials := make(map[string]struct{})
	stats := dto.DashboardStatsDTO{
		TotalItems:    len(s.Records),
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
		MalformedRows: s.Diagnostics.MalformedRows,
		SnapshotID:    s.ID,
		LoadedAt:      s.LoadedAt.Format(time.RFC3339),
	}
	for _, r := range s.Records {
		sites[r.Site] = struct{}{}
		materials[r.Material] = struct{}{}
		switch r.CurrentQuantity.Sign() {
		case -1:
			stats.NegativeItems++
		case 1:
			stats.PositiveItems++
		}
		stats.TotalQuantity = stats.TotalQuantity.Add(r.CurrentQuantity)
		stats.TotalValue = stats.TotalValue.Add(r.TotalValue)
	}
	stats.TotalSites = len(sites)
	stats.TotalMaterials = len(materials)

	mean, median := absStats(s.Records)
	stats.AvgQuantity = mean.Round(2)
	stats.MedianQuantity = median.Round(2)
	return stats
}

// SiteSummary totales por sitio, ordenados por sitio.
func (e *Engine) SiteSummary(s *entity.Snapshot) []dto.SiteSummaryDTO {
	type acc struct {
		materials map[string]struct{}
		qty, val  decimal.Decimal
	}
	bySite := make(map[string]*acc)
	for _, r := range s.Records {
		a, ok := bySite[r.Site]
		if !ok {
			a = &acc{materials: make(map[string]struct{})}
			bySite[r.Site] = a
		}
		a.materials[r.Material] = struct{}{}
		a.qty = a.qty.Add(r.CurrentQuantity)
		a.val = a.val.Add(r.TotalValue)
	}

	out := make([]dto.SiteSummaryDTO, 0, len(bySite))
	for site, a := range bySite {
		out = append(out, dto.SiteSummaryDTO{
			Site:            site,
			UniqueMaterials: len(a.materials),
			TotalQuantity:   a.qty,
			TotalValue:      a.val,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Site < out[j].Site })
	return out
}
