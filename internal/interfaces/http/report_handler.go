package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stok-takip/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes y dashboard.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TopItems godoc
// @Summary      Productos de mayor valor de stock
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Cantidad de productos"  default(10)
// @Success      200  {array}  dto.ValueSliceDTO
// @Router       /api/reports/top-items [get]
func (h *ReportHandler) TopItems(c *fiber.Ctx) error {
	return c.JSON(h.uc.TopValueItems(c.QueryInt("limit", 0)))
}

// Categories godoc
// @Summary      Valor de stock por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ValueSliceDTO
// @Router       /api/reports/categories [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.CategoryValues())
}

// Movements godoc
// @Summary      Serie diaria de entradas/salidas (últimos 30 días)
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.MovementPointDTO
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	return c.JSON(h.uc.MovementSeries(time.Now()))
}

// Dashboard godoc
// @Summary      Resumen general del stock
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary(time.Now()))
}
