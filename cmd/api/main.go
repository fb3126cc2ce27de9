package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/stok-takip/internal/application/reports"
	"github.com/tu-usuario/stok-takip/internal/application/usecase"
	httpRouter "github.com/tu-usuario/stok-takip/internal/interfaces/http"
	"github.com/tu-usuario/stok-takip/internal/store"
	"github.com/tu-usuario/stok-takip/pkg/config"
	"github.com/tu-usuario/stok-takip/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado en memoria: única fuente de verdad, efímero por proceso.
	st := store.New()
	if cfg.App.Seed {
		st.Seed(time.Now())
		log.Info().
			Int("items", len(st.StockItems())).
			Int("movements", len(st.Movements())).
			Msg("datos de demostración cargados")
	}
	st.Subscribe(func() {
		log.Debug().Msg("estado actualizado")
	})

	stockItemUC := usecase.NewStockItemUseCase(st)
	movementUC := usecase.NewMovementUseCase(st)
	catalogUC := usecase.NewCatalogUseCase(st)
	reportUC := reports.NewReportUseCase(st)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockItemUC: stockItemUC,
		MovementUC:  movementUC,
		CatalogUC:   catalogUC,
		ReportUC:    reportUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
