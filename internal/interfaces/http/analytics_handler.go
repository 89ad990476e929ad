package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/application/usecase"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// AnalyticsHandler expone las vistas de inventario, recomendaciones y reportes
// calculadas sobre el snapshot vigente.
type AnalyticsHandler struct {
	uc  *usecase.AnalyticsUseCase
	log zerolog.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// respond serializa v o traduce err al contrato de errores.
func (h *AnalyticsHandler) respond(c *fiber.Ctx, v any, err error) error {
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(v)
}

// limitParams lee limit y days de la query.
func (h *AnalyticsHandler) limitParams(c *fiber.Ctx) (req dto.LimitRequest, ok bool) {
	if err := c.QueryParser(&req); err != nil {
		return req, false
	}
	return req, true
}

// GetDashboardStats godoc
// @Summary      Estadísticas generales del inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *AnalyticsHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.uc.DashboardStats()
	return h.respond(c, stats, err)
}

// GetSiteSummary godoc
// @Summary      Resumen por sitio
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.SiteSummaryDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sites/summary [get]
func (h *AnalyticsHandler) GetSiteSummary(c *fiber.Ctx) error {
	summary, err := h.uc.SiteSummary()
	return h.respond(c, summary, err)
}

// GetShortages godoc
// @Summary      Artículos con faltante
// @Description  Filas con cantidad negativa o en cero ("Out of Stock"), más negativas primero.
// @Tags         items
// @Produce      json
// @Success      200  {array}   dto.ClassifiedRecordDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/items/shortages [get]
func (h *AnalyticsHandler) GetShortages(c *fiber.Ctx) error {
	items, err := h.uc.Shortages()
	return h.respond(c, items, err)
}

// GetCriticalItems godoc
// @Summary      Faltantes críticos
// @Tags         items
// @Produce      json
// @Param        multiplier  query  number  false  "Múltiplo de la media |cantidad|. Default: configurado."
// @Success      200  {array}   dto.ClassifiedRecordDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/items/critical [get]
func (h *AnalyticsHandler) GetCriticalItems(c *fiber.Ctx) error {
	multiplier := decimal.Zero
	if raw := c.Query("multiplier"); raw != "" {
		m, err := decimal.NewFromString(raw)
		if err != nil || m.IsNegative() {
			return badParams(c, "multiplier debe ser un número no negativo")
		}
		multiplier = m
	}
	items, err := h.uc.CriticalItems(multiplier)
	return h.respond(c, items, err)
}

// GetAbundantItems godoc
// @Summary      Artículos con exceso de stock
// @Tags         items
// @Produce      json
// @Success      200  {array}   dto.ClassifiedRecordDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/items/abundant [get]
func (h *AnalyticsHandler) GetAbundantItems(c *fiber.Ctx) error {
	items, err := h.uc.AbundantItems()
	return h.respond(c, items, err)
}

// GetAllInventory godoc
// @Summary      Inventario completo
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.InventoryRecordDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/all [get]
func (h *AnalyticsHandler) GetAllInventory(c *fiber.Ctx) error {
	rows, err := h.uc.SiteInventory("")
	return h.respond(c, rows, err)
}

// GetSiteInventory godoc
// @Summary      Inventario de un sitio
// @Tags         inventory
// @Produce      json
// @Param        site  path  string  true  "Sitio"
// @Success      200  {array}   dto.InventoryRecordDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/site/{site}/inventory [get]
func (h *AnalyticsHandler) GetSiteInventory(c *fiber.Ctx) error {
	site, err := url.PathUnescape(c.Params("site"))
	if err != nil || site == "" {
		return badParams(c, "sitio inválido")
	}
	rows, err := h.uc.SiteInventory(site)
	return h.respond(c, rows, err)
}

// GetShippingRecommendations godoc
// @Summary      Recomendaciones de envío entre sitios
// @Tags         recommendations
// @Produce      json
// @Success      200  {object}  dto.RecommendationsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/recommendations/shipping [get]
func (h *AnalyticsHandler) GetShippingRecommendations(c *fiber.Ctx) error {
	recs, err := h.uc.ShippingRecommendations()
	return h.respond(c, recs, err)
}

// GetMovementRecommendations godoc
// @Summary      Recomendaciones de movimiento entre ubicaciones
// @Tags         recommendations
// @Produce      json
// @Success      200  {object}  dto.RecommendationsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/recommendations/movements [get]
func (h *AnalyticsHandler) GetMovementRecommendations(c *fiber.Ctx) error {
	recs, err := h.uc.MovementRecommendations()
	return h.respond(c, recs, err)
}

// ExportMovementRecommendations godoc
// @Summary      Exportar recomendaciones de movimiento a Excel
// @Tags         recommendations
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/recommendations/movements/export [get]
func (h *AnalyticsHandler) ExportMovementRecommendations(c *fiber.Ctx) error {
	b, err := h.uc.MovementsWorkbook()
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movement_recommendations.xlsx"`)
	return c.Send(b)
}

// GetBottlenecks godoc
// @Summary      Cuellos de botella por sitio, ubicación y material
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  dto.BottleneckReportDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analysis/bottlenecks [get]
func (h *AnalyticsHandler) GetBottlenecks(c *fiber.Ctx) error {
	report, err := h.uc.Bottlenecks()
	return h.respond(c, report, err)
}

// GetAbundance godoc
// @Summary      Excedentes agregados por sitio, ubicación y material
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  dto.AbundanceReportDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analysis/abundance [get]
func (h *AnalyticsHandler) GetAbundance(c *fiber.Ctx) error {
	report, err := h.uc.Abundance()
	return h.respond(c, report, err)
}

// GetFocusAreas godoc
// @Summary      Áreas de foco con acción sugerida
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  dto.FocusAreasDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analysis/focus-areas [get]
func (h *AnalyticsHandler) GetFocusAreas(c *fiber.Ctx) error {
	focus, err := h.uc.FocusAreas()
	return h.respond(c, focus, err)
}

// GetTopShortages godoc
// @Summary      Principales faltantes por cantidad
// @Tags         analysis
// @Produce      json
// @Param        limit  query  int  false  "Máx. filas (default 10, max 500)."
// @Success      200  {array}   dto.ClassifiedRecordDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analysis/top-shortages [get]
func (h *AnalyticsHandler) GetTopShortages(c *fiber.Ctx) error {
	req, ok := h.limitParams(c)
	if !ok {
		return badParams(c, "limit y days deben ser enteros")
	}
	rows, err := h.uc.TopShortages(req)
	return h.respond(c, rows, err)
}

// GetTopShortagesByValue godoc
// @Summary      Principales faltantes por valor
// @Tags         analysis
// @Produce      json
// @Param        limit  query  int  false  "Máx. filas (default 10, max 500)."
// @Success      200  {array}   dto.ClassifiedRecordDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analysis/top-shortages-by-value [get]
func (h *AnalyticsHandler) GetTopShortagesByValue(c *fiber.Ctx) error {
	req, ok := h.limitParams(c)
	if !ok {
		return badParams(c, "limit y days deben ser enteros")
	}
	rows, err := h.uc.TopShortagesByValue(req)
	return h.respond(c, rows, err)
}

// GetInactiveStock godoc
// @Summary      Stock sin movimiento
// @Tags         analysis
// @Produce      json
// @Param        days   query  int  false  "Días sin actividad. Default: configurado."
// @Param        limit  query  int  false  "Máx. filas (default 20, max 500)."
// @Success      200  {array}   dto.InventoryRecordDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analysis/inactive-stock [get]
func (h *AnalyticsHandler) GetInactiveStock(c *fiber.Ctx) error {
	req, ok := h.limitParams(c)
	if !ok {
		return badParams(c, "limit y days deben ser enteros")
	}
	rows, err := h.uc.InactiveStock(req)
	return h.respond(c, rows, err)
}

// GetReportPDF godoc
// @Summary      Reporte de análisis en PDF
// @Tags         analysis
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analysis/report.pdf [get]
func (h *AnalyticsHandler) GetReportPDF(c *fiber.Ctx) error {
	b, err := h.uc.ReportPDF(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, contentTypePDF)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory_analysis.pdf"`)
	return c.Send(b)
}

// GetMaterialDetails godoc
// @Summary      Detalle de un material
// @Description  Filas del material, totales y las 10 transacciones más recientes.
// @Tags         material
// @Produce      json
// @Param        material  path  string  true  "Código de material"
// @Success      200  {object}  dto.MaterialDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/material/{material}/details [get]
func (h *AnalyticsHandler) GetMaterialDetails(c *fiber.Ctx) error {
	material, err := url.PathUnescape(c.Params("material"))
	if err != nil || material == "" {
		return badParams(c, "material inválido")
	}
	detail, err := h.uc.MaterialDetail(material)
	return h.respond(c, detail, err)
}

// GetMaterialAnalysis godoc
// @Summary      Distribución de un material por sitio y ubicación
// @Tags         material
// @Produce      json
// @Param        material  path  string  true  "Código de material"
// @Success      200  {array}   dto.InventoryRecordDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/material/{material}/analysis [get]
func (h *AnalyticsHandler) GetMaterialAnalysis(c *fiber.Ctx) error {
	material, err := url.PathUnescape(c.Params("material"))
	if err != nil || material == "" {
		return badParams(c, "material inválido")
	}
	rows, err := h.uc.MaterialAnalysis(material)
	return h.respond(c, rows, err)
}
