package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest entrada para crear un producto.
type CreateStockItemRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      string          `json:"category" validate:"required"`
	Unit          string          `json:"unit" validate:"required"`
	StockCode     string          `json:"stock_code" validate:"required,min=1,max=100"`
	Quantity      int64           `json:"quantity"`
	CriticalLevel int64           `json:"critical_level"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Description   string          `json:"description"`
}

// UpdateStockItemRequest entrada para actualización parcial: solo los campos
// presentes se aplican sobre el producto existente.
type UpdateStockItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	Unit          *string          `json:"unit"`
	StockCode     *string          `json:"stock_code"`
	Quantity      *int64           `json:"quantity"`
	CriticalLevel *int64           `json:"critical_level"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Description   *string          `json:"description"`
}

// StockItemResponse salida de un producto.
type StockItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	StockCode     string          `json:"stock_code"`
	Quantity      int64           `json:"quantity"`
	CriticalLevel int64           `json:"critical_level"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Description   string          `json:"description"`
	IsCritical    bool            `json:"is_critical"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockItemListResponse lista paginada de productos.
type StockItemListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
