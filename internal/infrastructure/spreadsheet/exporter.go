package spreadsheet

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
)

const (
	sheetRecommendations = "Recommendations"
	sheetUnresolved      = "Unresolved"
)

var recommendationHeaders = []string{
	"Material", "Material Description", "From Site", "From Storage Location",
	"To Site", "To Storage Location", "Available Qty", "Required Qty",
	"Recommended Qty", "Estimated Value", "Priority", "Impact",
}

var unresolvedHeaders = []string{
	"Material", "Site", "Storage Location", "Required Qty", "Unallocated Qty", "Reason",
}

// Exporter adapta ExportRecommendations a la interfaz del caso de uso.
type Exporter struct{}

// ExportRecommendations implementa usecase.WorkbookExporter.
func (Exporter) ExportRecommendations(w io.Writer, recs dto.RecommendationsDTO) error {
	return ExportRecommendations(w, recs)
}

// ExportRecommendations escribe un .xlsx con las transferencias y los faltantes sin resolver.
func ExportRecommendations(w io.Writer, recs dto.RecommendationsDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRecommendations); err != nil {
		return fmt.Errorf("renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetUnresolved); err != nil {
		return fmt.Errorf("crear hoja: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	rows := make([][]any, 0, len(recs.Recommendations))
	for _, r := range recs.Recommendations {
		rows = append(rows, []any{
			r.Material, r.MaterialDescription, r.FromSite, r.FromStorageLocation,
			r.ToSite, r.ToStorageLocation, num(r.AvailableQuantity), num(r.RequiredQuantity),
			num(r.RecommendedQuantity), num(r.EstimatedValue), r.Priority, r.Impact,
		})
	}
	if err := writeTable(f, sheetRecommendations, recommendationHeaders, rows, headerStyle); err != nil {
		return err
	}

	rows = rows[:0]
	for _, u := range recs.Unresolved {
		rows = append(rows, []any{
			u.Material, u.Site, u.StorageLocation, num(u.RequiredQuantity), num(u.UnallocatedQuantity), u.Reason,
		})
	}
	if err := writeTable(f, sheetUnresolved, unresolvedHeaders, rows, headerStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("escribir xlsx: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle int) error {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s encabezado: %w", sheet, err)
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("%s estilo de encabezado: %w", sheet, err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s fila %d: %w", sheet, i+2, err)
		}
	}
	if err := f.SetColWidth(sheet, "A", last, 16); err != nil {
		return fmt.Errorf("%s ancho de columnas: %w", sheet, err)
	}
	return nil
}

func num(d decimal.Decimal) float64 { return d.InexactFloat64() }
