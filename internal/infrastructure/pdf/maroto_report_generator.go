// Package pdf genera el reporte imprimible de análisis de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + origen del dataset │ fecha + snapshot     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ítems / sitios / faltantes / valor total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÁREAS DE FOCO: alto valor, brecha crítica, sitios, ubic.   │
//	│  CUELLOS DE BOTELLA: sitios y materiales                    │
//	│  PRINCIPALES FALTANTES                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/application/usecase"
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// Filas máximas por tabla para que el reporte quepa en pocas páginas.
const maxTableRows = 10

// MarotoReportGenerator implementa usecase.ReportPDFGenerator con Maroto v2.
type MarotoReportGenerator struct {
	Author string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{Author: author}
}

// GenerateAnalysisPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAnalysisPDF(_ context.Context, r dto.AnalysisReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de análisis de inventario", true).
		WithAuthor(nonEmpty(g.Author, "inventario-analytics"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r.Stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("ÁREAS DE FOCO"))
	m.AddRows(focusItemTable("Alto impacto en valor", r.FocusAreas.HighValue)...)
	m.AddRows(focusItemTable("Brecha crítica de cantidad", r.FocusAreas.CriticalQuantity)...)
	m.AddRows(focusGroupTable("Sitios con varios faltantes", r.FocusAreas.SiteIssues)...)
	m.AddRows(focusGroupTable("Ubicaciones con faltantes", r.FocusAreas.LocationIssues)...)

	m.AddRows(sectionTitle("CUELLOS DE BOTELLA"))
	m.AddRows(bottleneckTable("Por sitio", r.Bottlenecks.Sites, func(b dto.BottleneckDTO) string { return b.Site })...)
	m.AddRows(bottleneckTable("Por material", r.Bottlenecks.Materials, func(b dto.BottleneckDTO) string {
		return fmt.Sprintf("%s (%d sitios)", b.Material, b.AffectedSiteCount)
	})...)

	m.AddRows(sectionTitle("PRINCIPALES FALTANTES"))
	m.AddRows(shortageTable(r.TopShortages)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r dto.AnalysisReportDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ANÁLISIS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Origen: "+nonEmpty(r.Source, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+r.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Snapshot: "+r.SnapshotID, props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRow(s dto.DashboardStatsDTO) core.Row {
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 6}),
		)
	}
	return row.New(16).Add(
		cell("Ítems", fmt.Sprintf("%d", s.TotalItems), colorPrimary),
		cell("Sitios / Materiales", fmt.Sprintf("%d / %d", s.TotalSites, s.TotalMaterials), colorPrimary),
		cell("Ítems con faltante", fmt.Sprintf("%d", s.NegativeItems), colorAlert),
		cell("Valor total", formatAmount(s.TotalValue), colorPrimary),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

func subTitle(title string, n int) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s (%d)", title, n), props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
	))
}

type colSpec struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow cabecera con fondo del color primario.
func tableHeaderRow(cols []colSpec) core.Row {
	r := row.New(7)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: c.align,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	r.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	return r
}

func tableRow(cols []colSpec, values []string) core.Row {
	r := row.New(6)
	for i, c := range cols {
		r.Add(col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 7, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin registros", props.Text{Size: 7, Color: colorGray, Top: 1, Left: 1}),
	))
}

func table(title string, cols []colSpec, values [][]string) []core.Row {
	rows := []core.Row{subTitle(title, len(values))}
	if len(values) == 0 {
		return append(rows, emptyRow())
	}
	rows = append(rows, tableHeaderRow(cols))
	for i, v := range values {
		if i == maxTableRows {
			break
		}
		rows = append(rows, tableRow(cols, v))
	}
	return append(rows, row.New(3))
}

var focusItemCols = []colSpec{
	{"Sitio", 2, align.Left}, {"Ubicación", 2, align.Left}, {"Material", 4, align.Left},
	{"Cantidad", 2, align.Right}, {"Valor", 1, align.Right}, {"Prior.", 1, align.Center},
}

func focusItemTable(title string, items []dto.FocusItemDTO) []core.Row {
	values := make([][]string, 0, len(items))
	for _, it := range items {
		values = append(values, []string{
			it.Site, it.StorageLocation, material(it.Material, it.MaterialDescription),
			formatAmount(it.CurrentQuantity), formatAmount(it.TotalValue), it.Priority,
		})
	}
	return table(title, focusItemCols, values)
}

var focusGroupCols = []colSpec{
	{"Sitio", 3, align.Left}, {"Ubicación", 2, align.Left}, {"Faltantes", 2, align.Right},
	{"Cantidad", 2, align.Right}, {"Valor", 2, align.Right}, {"Prior.", 1, align.Center},
}

func focusGroupTable(title string, groups []dto.FocusGroupDTO) []core.Row {
	values := make([][]string, 0, len(groups))
	for _, g := range groups {
		values = append(values, []string{
			g.Site, nonEmpty(g.StorageLocation, "-"), fmt.Sprintf("%d", g.ShortageCount),
			formatAmount(g.TotalShortageQty), formatAmount(g.ValueImpact), g.Priority,
		})
	}
	return table(title, focusGroupCols, values)
}

var bottleneckCols = []colSpec{
	{"Grupo", 5, align.Left}, {"Ítems", 1, align.Right}, {"Faltante", 2, align.Right},
	{"Valor", 3, align.Right}, {"Prior.", 1, align.Center},
}

func bottleneckTable(title string, items []dto.BottleneckDTO, label func(dto.BottleneckDTO) string) []core.Row {
	values := make([][]string, 0, len(items))
	for _, b := range items {
		values = append(values, []string{
			label(b), fmt.Sprintf("%d", b.ItemCount), formatAmount(b.TotalShortageQty),
			formatAmount(b.ValueImpact), b.Priority,
		})
	}
	return table(title, bottleneckCols, values)
}

func shortageTable(items []dto.ClassifiedRecordDTO) []core.Row {
	values := make([][]string, 0, len(items))
	for _, it := range items {
		values = append(values, []string{
			it.Site, it.StorageLocation, material(it.Material, it.MaterialDescription),
			formatAmount(it.CurrentQuantity), formatAmount(it.TotalValue), it.Priority,
		})
	}
	return table("Más negativos", focusItemCols, values)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func material(code, desc string) string {
	if desc == "" {
		return code
	}
	return truncateText(code+" · "+desc, 40)
}

func truncateText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// formatAmount redondea a entero e inserta puntos de miles, conservando el signo.
// Ej: -1234567.8 → "-1.234.568"
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(0)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
