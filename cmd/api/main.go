package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Inventario-analytics/docs"
	"github.com/jhoicas/Inventario-analytics/internal/application/analytics"
	"github.com/jhoicas/Inventario-analytics/internal/application/auth"
	"github.com/jhoicas/Inventario-analytics/internal/application/inventory"
	"github.com/jhoicas/Inventario-analytics/internal/application/usecase"
	"github.com/jhoicas/Inventario-analytics/internal/domain/repository"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Inventario-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/scheduler"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/Inventario-analytics/internal/interfaces/http"
	"github.com/jhoicas/Inventario-analytics/pkg/config"
	"github.com/jhoicas/Inventario-analytics/pkg/logger"
)

// @title                      Inventario Analytics API
// @version                    1.0
// @description                Análisis de inventario: faltantes, excedentes, recomendaciones de transferencia y reportes.
// @BasePath                   /
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
// @description                Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	engine, err := analytics.NewEngine(cfg.Analysis.Thresholds())
	if err != nil {
		log.Fatal().Err(err).Msg("umbrales de análisis")
	}
	store := memory.NewSnapshotStore()

	ctx := context.Background()

	// Archivo de snapshots en PostgreSQL (opcional)
	var archive repository.SnapshotArchive
	if cfg.DB.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		repo := postgres.NewSnapshotRepository(pool, postgres.DefaultRetention)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de snapshots")
		}
		archive = repo
	}

	datasetUC := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, archive, log.Component("dataset"))
	if err := datasetUC.Restore(ctx); err != nil {
		log.Error().Err(err).Msg("restaurar último snapshot archivado")
	}

	// Archivo fuente: carga inicial y recarga programada
	var reloader *scheduler.Reloader
	if cfg.Source.File != "" {
		if _, err := datasetUC.LoadFile(ctx, cfg.Source.File); err != nil {
			log.Error().Err(err).Str("path", cfg.Source.File).Msg("carga inicial del archivo fuente")
		}
		if cfg.Source.ReloadCron != "" {
			reloader, err = scheduler.NewReloader(cfg.Source.ReloadCron, cfg.Source.File, datasetUC, log.Component("reloader"))
			if err != nil {
				log.Fatal().Err(err).Msg("programar recarga")
			}
			reloader.MarkLoaded()
			reloader.Start()
		}
	}

	analyticsUC := usecase.NewAnalyticsUseCase(store, engine, infrapdf.NewMarotoReportGenerator(cfg.App.Name), spreadsheet.Exporter{})
	authUC := auth.NewAuthUseCase(auth.AdminCredentials{
		Username:     cfg.Auth.AdminUser,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if !authUC.Enabled() {
		log.Warn().Msg("login deshabilitado: falta ADMIN_PASSWORD_HASH o JWT_SECRET")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Analytics API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AnalyticsUC:   analyticsUC,
		DatasetUC:     datasetUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		UploadLimiter: httpRouter.NewIPRateLimiter(cfg.Upload.RatePerMinute, cfg.Upload.Burst),
		AppName:       cfg.App.Name,
		Log:           log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if reloader != nil {
		reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
