package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-analytics/internal/application/auth"
	"github.com/jhoicas/Inventario-analytics/internal/application/inventory"
	"github.com/jhoicas/Inventario-analytics/internal/application/usecase"
	"github.com/jhoicas/Inventario-analytics/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalyticsUC   *usecase.AnalyticsUseCase
	DatasetUC     *inventory.DatasetUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string // vacío: upload sin autenticación
	UploadLimiter *IPRateLimiter
	AppName       string
	Log           zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Upload: JWT admin (si hay secreto) + límite por IP
	uploadChain := []fiber.Handler{}
	if deps.UploadLimiter != nil {
		uploadChain = append(uploadChain, deps.UploadLimiter.Middleware())
	}
	if deps.JWTSecret != "" {
		uploadChain = append(uploadChain, AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
	} else {
		deps.Log.Warn().Msg("JWT_SECRET vacío: /api/upload sin autenticación")
	}
	datasetHandler := NewDatasetHandler(deps.DatasetUC, deps.Log)
	api.Post("/upload", append(uploadChain, datasetHandler.Upload)...)

	// Lecturas (públicas) sobre el snapshot vigente
	h := NewAnalyticsHandler(deps.AnalyticsUC, deps.Log)
	api.Get("/dashboard/stats", h.GetDashboardStats)
	api.Get("/sites/summary", h.GetSiteSummary)

	items := api.Group("/items")
	items.Get("/shortages", h.GetShortages)
	items.Get("/critical", h.GetCriticalItems)
	items.Get("/abundant", h.GetAbundantItems)

	api.Get("/inventory/all", h.GetAllInventory)
	api.Get("/site/:site/inventory", h.GetSiteInventory)

	recs := api.Group("/recommendations")
	recs.Get("/shipping", h.GetShippingRecommendations)
	recs.Get("/movements", h.GetMovementRecommendations)
	recs.Get("/movements/export", h.ExportMovementRecommendations)

	analysis := api.Group("/analysis")
	analysis.Get("/bottlenecks", h.GetBottlenecks)
	analysis.Get("/abundance", h.GetAbundance)
	analysis.Get("/focus-areas", h.GetFocusAreas)
	analysis.Get("/top-shortages", h.GetTopShortages)
	analysis.Get("/top-shortages-by-value", h.GetTopShortagesByValue)
	analysis.Get("/inactive-stock", h.GetInactiveStock)
	analysis.Get("/report.pdf", h.GetReportPDF)

	material := api.Group("/material")
	material.Get("/:material/details", h.GetMaterialDetails)
	material.Get("/:material/analysis", h.GetMaterialAnalysis)
}
