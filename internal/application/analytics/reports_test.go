package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-analytics/internal/application/analytics"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/inventory"
)

func newEngine(t *testing.T) *analytics.Engine {
	t.Helper()
	e, err := analytics.NewEngine(inventory.DefaultThresholds())
	require.NoError(t, err)
	return e
}

func TestNewEngine_ConfiguracionInvalida(t *testing.T) {
	th := inventory.DefaultThresholds()
	th.SurplusBuffer = d("-1")
	_, err := analytics.NewEngine(th)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestTopShortages(t *testing.T) {
	s := snapshotOf(
		rec("A", "1", "M1", "-5", "0"),
		rec("A", "1", "M2", "-80", "0"),
		rec("A", "1", "M3", "-20", "0"),
		rec("A", "1", "M4", "40", "0"),
	)
	top := newEngine(t).TopShortages(s, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "M2", top[0].Material)
	assert.Equal(t, "M3", top[1].Material)
	assert.Equal(t, inventory.ShortageCritical, top[0].ShortageLevel)
}

func TestShortages_IncluyeMaterialSinExcedente(t *testing.T) {
	s := snapshotOf(
		rec("SiteA", "L1", "Mat2", "-10", "0"),
		rec("SiteB", "L1", "Mat2", "0", "0"),
		rec("SiteB", "L1", "Mat9", "15", "0"),
	)
	e := newEngine(t)

	shortages := e.Shortages(s)
	require.Len(t, shortages, 2)
	assert.Equal(t, "Mat2", shortages[0].Material)
	assert.Equal(t, inventory.ShortageCritical, shortages[0].ShortageLevel)
	assert.Equal(t, inventory.ShortageOutOfStock, shortages[1].ShortageLevel)

	recs := e.ShippingRecommendations(s)
	assert.Empty(t, recs.Recommendations)
	require.Len(t, recs.Unresolved, 1)
	assert.Equal(t, "Mat2", recs.Unresolved[0].Material)
	assert.Equal(t, "site", recs.Granularity)
}

func TestAbundantItems(t *testing.T) {
	s := snapshotOf(
		rec("A", "1", "M1", "1200", "0"),
		rec("A", "1", "M2", "600", "0"),
		rec("A", "1", "M3", "400", "0"),
	)
	items := newEngine(t).AbundantItems(s)
	require.Len(t, items, 2)
	assert.Equal(t, inventory.AbundanceHigh, items[0].AbundanceLevel)
	assert.Equal(t, inventory.AbundanceModerate, items[1].AbundanceLevel)
	assert.Empty(t, items[0].ShortageLevel)
}

func TestCriticalItems(t *testing.T) {
	// media |qty| = (100 + 10 + 10 + 0) / 4 = 30
	s := snapshotOf(
		rec("A", "1", "M1", "-100", "0"),
		rec("A", "1", "M2", "-10", "0"),
		rec("A", "1", "M3", "10", "0"),
		rec("A", "1", "M4", "0", "0"),
	)
	e := newEngine(t)
	items := e.CriticalItems(s, decimal.Zero)
	require.Len(t, items, 1)
	assert.Equal(t, "M1", items[0].Material)

	assert.Len(t, e.CriticalItems(s, d("0.3")), 2)
}

func TestDashboardStats(t *testing.T) {
	s := snapshotOf(
		rec("A", "1", "M1", "-10", "-5"),
		rec("A", "2", "M2", "30", "60"),
		rec("B", "1", "M1", "0", "0"),
		rec("B", "1", "M3", "20", "10"),
	)
	stats := newEngine(t).DashboardStats(s)
	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.TotalSites)
	assert.Equal(t, 3, stats.TotalMaterials)
	assert.Equal(t, 1, stats.NegativeItems)
	assert.Equal(t, 2, stats.PositiveItems)
	assert.True(t, d("40").Equal(stats.TotalQuantity))
	assert.True(t, d("65").Equal(stats.TotalValue))
	assert.True(t, d("15").Equal(stats.AvgQuantity))
	assert.True(t, d("15").Equal(stats.MedianQuantity))
	assert.Equal(t, s.ID, stats.SnapshotID)
}

func TestSiteSummary(t *testing.T) {
	s := snapshotOf(
		rec("B", "1", "M1", "5", "1"),
		rec("A", "1", "M1", "-10", "2"),
		rec("A", "2", "M1", "4", "3"),
		rec("A", "2", "M2", "1", "4"),
	)
	summary := newEngine(t).SiteSummary(s)
	require.Len(t, summary, 2)
	assert.Equal(t, "A", summary[0].Site)
	assert.Equal(t, 2, summary[0].UniqueMaterials)
	assert.True(t, d("-5").Equal(summary[0].TotalQuantity))
	assert.True(t, d("9").Equal(summary[0].TotalValue))
}

func TestSiteInventory(t *testing.T) {
	s := snapshotOf(
		rec("B", "1", "M1", "5", "1"),
		rec("A", "2", "M1", "4", "3"),
		rec("A", "1", "M2", "1", "4"),
	)
	e := newEngine(t)
	all := e.SiteInventory(s, "")
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Site)
	assert.Equal(t, "1", all[0].StorageLocation)

	onlyB := e.SiteInventory(s, "B")
	require.Len(t, onlyB, 1)
	assert.Equal(t, "M1", onlyB[0].Material)

	assert.Empty(t, e.SiteInventory(s, "Z"))
}

func TestInactiveStock(t *testing.T) {
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	r1 := rec("A", "1", "M1", "5", "0")
	r1.LastActive = day("2025-01-10")
	r2 := rec("A", "1", "M2", "5", "0")
	r2.LastActive = nil
	r3 := rec("A", "1", "M3", "5", "0")
	r3.LastActive = day("2025-11-20")
	r4 := rec("A", "1", "M4", "5", "0")
	r4.LastActive = day("2025-06-01")

	items := newEngine(t).InactiveStock(snapshotOf(r1, r2, r3, r4), now, 90, 0)
	require.Len(t, items, 3)
	assert.Equal(t, "M2", items[0].Material, "sin fecha primero")
	assert.Nil(t, items[0].LastActive)
	assert.Equal(t, "M1", items[1].Material)
	assert.Equal(t, "M4", items[2].Material)
	assert.Equal(t, "2025-06-01", *items[2].LastActive)

	assert.Len(t, newEngine(t).InactiveStock(snapshotOf(r1, r2, r3, r4), now, 90, 1), 1)
}

func TestBottlenecks(t *testing.T) {
	s := snapshotOf(sampleRecords()...)
	report := newEngine(t).Bottlenecks(s)

	require.Len(t, report.Sites, 3)
	assert.Equal(t, analytics.BottleneckSite, report.Sites[0].BottleneckType)
	assert.Equal(t, "P200", report.Sites[0].Site)

	require.NotEmpty(t, report.Locations)
	assert.Equal(t, analytics.BottleneckLocation, report.Locations[0].BottleneckType)
	assert.NotEmpty(t, report.Locations[0].StorageLocation)

	require.NotEmpty(t, report.Materials)
	m := report.Materials[0]
	assert.Equal(t, "M1", m.Material)
	assert.Equal(t, 2, m.AffectedSiteCount)
	assert.True(t, d("-120").Equal(m.TotalShortageQty))
	assert.Equal(t, inventory.PriorityMedium, m.Priority)
}

func TestFocusAreas(t *testing.T) {
	s := snapshotOf(
		rec("A", "1", "M1", "-400", "-50"),
		rec("A", "1", "M2", "-2", "-9000"),
		rec("A", "2", "M3", "-1", "0"),
		rec("B", "1", "M4", "-3", "-10"),
		rec("B", "1", "M5", "100", "10"),
	)
	focus := newEngine(t).FocusAreas(s)

	require.Len(t, focus.HighValue, 3, "filas con valor cero no entran en high_value")
	assert.Equal(t, "M2", focus.HighValue[0].Material)
	assert.Equal(t, analytics.FocusHighValue, focus.HighValue[0].FocusReason)
	assert.Equal(t, analytics.ActionUrgentReplenishment, focus.HighValue[0].RecommendedAction)

	// media |qty| = 506 / 5 = 101.2
	require.Len(t, focus.CriticalQuantity, 1)
	assert.Equal(t, "M1", focus.CriticalQuantity[0].Material)
	assert.Equal(t, analytics.ActionImmediateTransfer, focus.CriticalQuantity[0].RecommendedAction)

	require.Len(t, focus.SiteIssues, 2)
	assert.Equal(t, "A", focus.SiteIssues[0].Site)
	assert.Equal(t, 3, focus.SiteIssues[0].ShortageCount)
	assert.Equal(t, analytics.FocusSiteIssues, focus.SiteIssues[0].FocusReason)

	require.Len(t, focus.LocationIssues, 3)
	assert.Equal(t, "A", focus.LocationIssues[0].Site)
	assert.Equal(t, "1", focus.LocationIssues[0].StorageLocation)
	assert.Equal(t, analytics.ActionLocationAudit, focus.LocationIssues[0].RecommendedAction)
}

func TestFocusAreas_UmbralDeConteo(t *testing.T) {
	th := inventory.DefaultThresholds()
	th.SiteIssueThreshold = 1
	th.LocationIssueThreshold = 2
	e, err := analytics.NewEngine(th)
	require.NoError(t, err)

	s := snapshotOf(
		rec("A", "1", "M1", "-1", "0"),
		rec("A", "1", "M2", "-1", "0"),
		rec("B", "1", "M1", "-9", "0"),
	)
	focus := e.FocusAreas(s)
	require.Len(t, focus.SiteIssues, 1, "solo conteos estrictamente mayores al umbral")
	assert.Equal(t, "A", focus.SiteIssues[0].Site)
	assert.Empty(t, focus.LocationIssues, "2 faltantes no superan un umbral de 2")
}

func TestFocusAreas_SitiosSinTruncar(t *testing.T) {
	th := inventory.DefaultThresholds()
	th.FocusLimit = 1
	e, err := analytics.NewEngine(th)
	require.NoError(t, err)

	s := snapshotOf(
		rec("A", "1", "M1", "-1", "-5"),
		rec("A", "2", "M2", "-1", "-5"),
		rec("B", "1", "M1", "-2", "-5"),
		rec("C", "1", "M1", "-3", "-5"),
	)
	focus := e.FocusAreas(s)
	require.Len(t, focus.SiteIssues, 3, "site_issues devuelve todos los sitios")
	assert.Equal(t, "A", focus.SiteIssues[0].Site)
	assert.Equal(t, 2, focus.SiteIssues[0].ShortageCount)
	assert.Len(t, focus.LocationIssues, 1)
	assert.Len(t, focus.HighValue, 1)
}

func TestMaterialDetail(t *testing.T) {
	records := []entity.InventoryRecord{
		rec("A", "1", "M1", "-10", "-5"),
		rec("B", "2", "M1", "25", "50"),
		rec("B", "2", "M2", "1", "1"),
	}
	var txs []entity.TransactionRecord
	for i := 1; i <= 12; i++ {
		txs = append(txs, entity.TransactionRecord{
			Material: "M1", Site: "A", StorageLocation: "1",
			Date: day(time.Date(2025, 7, i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")),
			Type: "261", QuantityDelta: decimal.NewFromInt(int64(-i)),
		})
	}
	txs = append(txs, entity.TransactionRecord{Material: "M1", Type: "101"})
	txs = append(txs, entity.TransactionRecord{Material: "M2", Date: day("2025-12-01")})
	s := entity.NewSnapshot("test", records, txs, entity.Diagnostics{})

	detail, err := newEngine(t).MaterialDetail(s, "M1")
	require.NoError(t, err)
	assert.Len(t, detail.Locations, 2)
	assert.True(t, d("15").Equal(detail.TotalQuantity))
	require.Len(t, detail.Transactions, 10)
	assert.Equal(t, "2025-07-12", *detail.Transactions[0].Date)
	assert.Equal(t, "2025-07-03", *detail.Transactions[9].Date)
}

func TestMaterialDetail_NoEncontrado(t *testing.T) {
	s := snapshotOf(rec("A", "1", "M1", "1", "1"))
	_, err := newEngine(t).MaterialDetail(s, "NOPE")
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)

	_, err = newEngine(t).MaterialAnalysis(s, "NOPE")
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}

// Ensamblar reportes no modifica el snapshot.
func TestReportes_NoMutanElSnapshot(t *testing.T) {
	s := snapshotOf(sampleRecords()...)
	before := append([]entity.InventoryRecord(nil), s.Records...)
	e := newEngine(t)

	e.DashboardStats(s)
	e.SiteSummary(s)
	e.Shortages(s)
	e.AbundantItems(s)
	e.Bottlenecks(s)
	e.FocusAreas(s)
	e.ShippingRecommendations(s)
	e.MovementRecommendations(s)
	e.TopShortages(s, 3)
	e.InactiveStock(s, time.Now(), 30, 5)

	assert.Equal(t, before, s.Records)
}

func TestAbundance(t *testing.T) {
	s := snapshotOf(append(sampleRecords(), rec("P300", "0002", "M4", "800", "400"))...)
	report := newEngine(t).Abundance(s)

	require.Len(t, report.Sites, 2)
	assert.Equal(t, "P200", report.Sites[0].Site)
	assert.True(t, d("1500").Equal(report.Sites[0].TotalQuantity))
	assert.Equal(t, analytics.BottleneckSite, report.Sites[0].GroupType)
	assert.Equal(t, "P300", report.Sites[1].Site)
	assert.Equal(t, 1, report.Sites[1].ItemCount, "filas sin abundancia no cuentan")

	require.Len(t, report.Locations, 2)
	assert.Equal(t, "0003", report.Locations[0].StorageLocation)

	require.Len(t, report.Materials, 1)
	m := report.Materials[0]
	assert.Equal(t, "M4", m.Material)
	assert.Equal(t, "desc M4", m.MaterialDescription)
	assert.Equal(t, 2, m.ItemCount)
	assert.True(t, d("2300").Equal(m.TotalQuantity))
	assert.True(t, d("3400").Equal(m.TotalValue))
	assert.Equal(t, []string{"P200", "P300"}, m.AffectedSites)
	assert.Equal(t, 2, m.AffectedSiteCount)
}
