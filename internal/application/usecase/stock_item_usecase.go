package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stok-takip/internal/application/dto"
	"github.com/tu-usuario/stok-takip/internal/domain"
	"github.com/tu-usuario/stok-takip/internal/domain/entity"
	"github.com/tu-usuario/stok-takip/internal/domain/view"
	"github.com/tu-usuario/stok-takip/internal/store"
)

// StockItemUseCase casos de uso CRUD para productos. La cantidad solo cambia
// vía movimientos o edición explícita; el valor derivado (stock crítico) se
// calcula al responder.
type StockItemUseCase struct {
	store *store.Store
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(s *store.Store) *StockItemUseCase {
	return &StockItemUseCase{store: s}
}

// Create crea un producto nuevo. Name, Category, Unit y StockCode son
// obligatorios; cantidades y precios no pueden ser negativos.
func (uc *StockItemUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Unit) == "" || strings.TrimSpace(in.StockCode) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.CriticalLevel < 0 ||
		in.PurchasePrice.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := entity.StockItem{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		Unit:          in.Unit,
		StockCode:     in.StockCode,
		Quantity:      in.Quantity,
		CriticalLevel: in.CriticalLevel,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.store.AddStockItem(item); err != nil {
		return nil, err
	}
	resp := dto.NewStockItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (uc *StockItemUseCase) GetByID(id string) *dto.StockItemResponse {
	item, ok := uc.store.GetStockItem(id)
	if !ok {
		return nil
	}
	resp := dto.NewStockItemResponse(item)
	return &resp
}

// Update aplica un patch parcial: solo los campos presentes cambian, el resto
// queda idéntico; UpdatedAt se refresca siempre. El merge corre dentro del
// lock de escritura del Store, sobre el registro vigente: un movimiento
// aplicado en paralelo nunca se pisa con una cantidad vieja.
func (uc *StockItemUseCase) Update(id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	updated, err := uc.store.MutateStockItem(id, func(item entity.StockItem) (entity.StockItem, error) {
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return entity.StockItem{}, domain.ErrInvalidInput
			}
			item.Name = *in.Name
		}
		if in.Category != nil {
			item.Category = *in.Category
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		if in.StockCode != nil {
			if strings.TrimSpace(*in.StockCode) == "" {
				return entity.StockItem{}, domain.ErrInvalidInput
			}
			item.StockCode = *in.StockCode
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return entity.StockItem{}, domain.ErrInvalidInput
			}
			item.Quantity = *in.Quantity
		}
		if in.CriticalLevel != nil {
			if *in.CriticalLevel < 0 {
				return entity.StockItem{}, domain.ErrInvalidInput
			}
			item.CriticalLevel = *in.CriticalLevel
		}
		if in.PurchasePrice != nil {
			if in.PurchasePrice.LessThan(decimal.Zero) {
				return entity.StockItem{}, domain.ErrInvalidInput
			}
			item.PurchasePrice = *in.PurchasePrice
		}
		if in.SalePrice != nil {
			if in.SalePrice.LessThan(decimal.Zero) {
				return entity.StockItem{}, domain.ErrInvalidInput
			}
			item.SalePrice = *in.SalePrice
		}
		if in.Description != nil {
			item.Description = *in.Description
		}
		item.UpdatedAt = time.Now()
		return item, nil
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	resp := dto.NewStockItemResponse(updated)
	return &resp, nil
}

// Delete elimina un producto; borrar un id inexistente es un no-op.
// Los movimientos históricos del producto no se tocan.
func (uc *StockItemUseCase) Delete(id string) {
	uc.store.DeleteStockItem(id)
}

// List devuelve la vista derivada (filtrada, ordenada, paginada) de productos.
func (uc *StockItemUseCase) List(q view.StockItemQuery) *dto.StockItemListResponse {
	if q.PageSize <= 0 {
		q.PageSize = view.DefaultPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	page := view.QueryStockItems(uc.store.StockItems(), q)
	items := make([]dto.StockItemResponse, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, dto.NewStockItemResponse(it))
	}
	return &dto.StockItemListResponse{
		Items: items,
		Page: dto.PageResponse{
			Page:       q.Page,
			PageSize:   q.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
}
