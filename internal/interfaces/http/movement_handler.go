package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stok-takip/internal/application/dto"
	"github.com/tu-usuario/stok-takip/internal/application/usecase"
	"github.com/tu-usuario/stok-takip/internal/domain"
	"github.com/tu-usuario/stok-takip/internal/domain/view"
)

// MovementHandler maneja las peticiones HTTP para movimientos de stock.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  Registra una entrada o salida y ajusta la cantidad del producto en la misma operación.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock_item_id, type (in|out), quantity > 0, reason y performed_by son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto referenciado no existe"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "la salida supera el stock actual"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (vista derivada)
// @Tags         movements
// @Produce      json
// @Param        search     query  string  false  "Búsqueda en producto, razón y notas"
// @Param        type       query  string  false  "all | in | out"               default(all)
// @Param        range      query  string  false  "all | today | week | month"   default(all)
// @Param        sort_by    query  string  false  "Campo de ordenamiento"        default(date)
// @Param        sort_dir   query  string  false  "asc | desc"                   default(desc)
// @Param        page       query  int     false  "Página (1-based)"             default(1)
// @Param        page_size  query  int     false  "Tamaño de página"             default(10)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	q := view.MovementQuery{
		Search:   c.Query("search"),
		Type:     view.TypeFilter(c.Query("type", string(view.TypeAll))),
		Range:    view.DateRange(c.Query("range", string(view.RangeAll))),
		SortKey:  view.MovementSortKey(c.Query("sort_by", string(view.MovementSortDate))),
		SortDir:  view.Direction(c.Query("sort_dir", string(view.Desc))),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", view.DefaultPageSize),
	}
	if !q.Type.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser all, in u out"})
	}
	if !q.Range.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "range debe ser all, today, week o month"})
	}
	if !q.SortKey.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sort_by no reconocido"})
	}
	if q.SortDir != view.Asc && q.SortDir != view.Desc {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sort_dir debe ser asc o desc"})
	}
	return c.JSON(h.uc.List(q))
}
