package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
)

// ReportPDFGenerator genera el reporte de análisis en PDF (implementado en infrastructure/pdf).
type ReportPDFGenerator interface {
	GenerateAnalysisPDF(ctx context.Context, report dto.AnalysisReportDTO) ([]byte, error)
}

// WorkbookExporter escribe recomendaciones a un libro .xlsx (implementado en infrastructure/spreadsheet).
type WorkbookExporter interface {
	ExportRecommendations(w io.Writer, recs dto.RecommendationsDTO) error
}
