package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/application/analytics"
	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/repository"
)

const pdfTopShortages = 15

// AnalyticsUseCase resuelve el snapshot vigente una sola vez por llamada y
// delega el cálculo en el motor de análisis. Si no hay dataset cargado todas
// las operaciones devuelven domain.ErrDatasetUnavailable.
type AnalyticsUseCase struct {
	store    repository.SnapshotStore
	engine   *analytics.Engine
	pdf      ReportPDFGenerator
	workbook WorkbookExporter
	now      func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. pdf y workbook pueden ser nil
// si esas salidas no se exponen.
func NewAnalyticsUseCase(store repository.SnapshotStore, engine *analytics.Engine, pdf ReportPDFGenerator, workbook WorkbookExporter) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		store:    store,
		engine:   engine,
		pdf:      pdf,
		workbook: workbook,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests de stock inactivo).
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

func (uc *AnalyticsUseCase) snapshot() (*entity.Snapshot, error) {
	return uc.store.Current()
}

func (uc *AnalyticsUseCase) DashboardStats() (*dto.DashboardStatsDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	stats := uc.engine.DashboardStats(s)
	return &stats, nil
}

func (uc *AnalyticsUseCase) SiteSummary() ([]dto.SiteSummaryDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.SiteSummary(s), nil
}

func (uc *AnalyticsUseCase) Shortages() ([]dto.ClassifiedRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.Shortages(s), nil
}

// CriticalItems multiplier <= 0 usa el configurado.
func (uc *AnalyticsUseCase) CriticalItems(multiplier decimal.Decimal) ([]dto.ClassifiedRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.CriticalItems(s, multiplier), nil
}

func (uc *AnalyticsUseCase) AbundantItems() ([]dto.ClassifiedRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.AbundantItems(s), nil
}

// SiteInventory site vacío devuelve todo el inventario.
func (uc *AnalyticsUseCase) SiteInventory(site string) ([]dto.InventoryRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.SiteInventory(s, site), nil
}

func (uc *AnalyticsUseCase) ShippingRecommendations() (*dto.RecommendationsDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	recs := uc.engine.ShippingRecommendations(s)
	return &recs, nil
}

func (uc *AnalyticsUseCase) MovementRecommendations() (*dto.RecommendationsDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	recs := uc.engine.MovementRecommendations(s)
	return &recs, nil
}

// MovementsWorkbook exporta las recomendaciones entre ubicaciones a .xlsx.
func (uc *AnalyticsUseCase) MovementsWorkbook() ([]byte, error) {
	if uc.workbook == nil {
		return nil, fmt.Errorf("exportación a Excel no configurada")
	}
	recs, err := uc.MovementRecommendations()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := uc.workbook.ExportRecommendations(&buf, *recs); err != nil {
		return nil, fmt.Errorf("exportar recomendaciones: %w", err)
	}
	return buf.Bytes(), nil
}

func (uc *AnalyticsUseCase) Bottlenecks() (*dto.BottleneckReportDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	report := uc.engine.Bottlenecks(s)
	return &report, nil
}

func (uc *AnalyticsUseCase) Abundance() (*dto.AbundanceReportDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	report := uc.engine.Abundance(s)
	return &report, nil
}

func (uc *AnalyticsUseCase) FocusAreas() (*dto.FocusAreasDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	focus := uc.engine.FocusAreas(s)
	return &focus, nil
}

func (uc *AnalyticsUseCase) TopShortages(req dto.LimitRequest) ([]dto.ClassifiedRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.TopShortages(s, req.Limit), nil
}

func (uc *AnalyticsUseCase) TopShortagesByValue(req dto.LimitRequest) ([]dto.ClassifiedRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.TopShortagesByValue(s, req.Limit), nil
}

// InactiveStock Days <= 0 usa el umbral configurado.
func (uc *AnalyticsUseCase) InactiveStock(req dto.LimitRequest) ([]dto.InventoryRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.InactiveStock(s, uc.now(), req.Days, req.Limit), nil
}

func (uc *AnalyticsUseCase) MaterialDetail(material string) (*dto.MaterialDetailDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.MaterialDetail(s, material)
}

func (uc *AnalyticsUseCase) MaterialAnalysis(material string) ([]dto.InventoryRecordDTO, error) {
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return uc.engine.MaterialAnalysis(s, material)
}

// ReportPDF arma el reporte de análisis (estadísticas, áreas de foco, cuellos de
// botella, principales faltantes) sobre un único snapshot y lo renderiza.
func (uc *AnalyticsUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generador PDF no configurado")
	}
	s, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	report := dto.AnalysisReportDTO{
		GeneratedAt:  uc.now().UTC().Format(time.RFC3339),
		SnapshotID:   s.ID,
		Source:       s.Source,
		Stats:        uc.engine.DashboardStats(s),
		FocusAreas:   uc.engine.FocusAreas(s),
		Bottlenecks:  uc.engine.Bottlenecks(s),
		TopShortages: uc.engine.TopShortages(s, pdfTopShortages),
	}
	return uc.pdf.GenerateAnalysisPDF(ctx, report)
}
