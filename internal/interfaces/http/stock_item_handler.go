package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stok-takip/internal/application/dto"
	"github.com/tu-usuario/stok-takip/internal/application/usecase"
	"github.com/tu-usuario/stok-takip/internal/domain"
	"github.com/tu-usuario/stok-takip/internal/domain/view"
)

// StockItemHandler maneja las peticiones HTTP para StockItem.
type StockItemHandler struct {
	uc *usecase.StockItemUseCase
}

// NewStockItemHandler construye el handler.
func NewStockItemHandler(uc *usecase.StockItemUseCase) *StockItemHandler {
	return &StockItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "Datos del producto"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *StockItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, category, unit y stock_code son requeridos; cantidades y precios no negativos"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el stock_code ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *StockItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out := h.uc.GetByID(id)
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos (vista derivada)
// @Tags         items
// @Produce      json
// @Param        search     query  string  false  "Búsqueda en name, stock_code y description"
// @Param        category   query  string  false  "Filtro exacto por categoría"
// @Param        sort_by    query  string  false  "Campo de ordenamiento"  default(name)
// @Param        sort_dir   query  string  false  "asc | desc"             default(asc)
// @Param        page       query  int     false  "Página (1-based)"       default(1)
// @Param        page_size  query  int     false  "Tamaño de página"       default(10)
// @Success      200  {object}  dto.StockItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *StockItemHandler) List(c *fiber.Ctx) error {
	q := view.StockItemQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		SortKey:  view.StockItemSortKey(c.Query("sort_by", string(view.ItemSortName))),
		SortDir:  view.Direction(c.Query("sort_dir", string(view.Asc))),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", view.DefaultPageSize),
	}
	if !q.SortKey.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sort_by no reconocido"})
	}
	if q.SortDir != view.Asc && q.SortDir != view.Desc {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sort_dir debe ser asc o desc"})
	}
	return c.JSON(h.uc.List(q))
}

// Update godoc
// @Summary      Actualizar producto (patch parcial)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateStockItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *StockItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos en el patch"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el stock_code ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         items
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Router       /api/items/{id} [delete]
func (h *StockItemHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
