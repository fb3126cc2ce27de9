package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stok-takip/internal/application/reports"
	"github.com/tu-usuario/stok-takip/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockItemUC *usecase.StockItemUseCase
	MovementUC  *usecase.MovementUseCase
	CatalogUC   *usecase.CatalogUseCase
	ReportUC    *reports.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	items := api.Group("/items")
	itemHandler := NewStockItemHandler(deps.StockItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Movimientos de stock
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)

	// Datos de referencia
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	units := api.Group("/units")
	units.Get("/", catalogHandler.ListUnits)
	units.Post("/", catalogHandler.CreateUnit)
	units.Delete("/:id", catalogHandler.DeleteUnit)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/top-items", reportHandler.TopItems)
	reportsGroup.Get("/categories", reportHandler.Categories)
	reportsGroup.Get("/movements", reportHandler.Movements)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
}
