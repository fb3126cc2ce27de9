package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa un producto rastreable del inventario.
// Category y Unit son referencias débiles por nombre (no por id): borrar la
// categoría o la unidad no afecta a los productos que la usan.
type StockItem struct {
	ID            string
	Name          string
	Category      string // nombre de la categoría
	Unit          string // nombre de la unidad de medida
	StockCode     string // código único (case-insensitive)
	Quantity      int64
	CriticalLevel int64 // umbral de stock crítico
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsCritical indica si el producto está en o por debajo del nivel crítico.
func (s *StockItem) IsCritical() bool {
	return s.Quantity <= s.CriticalLevel
}

// StockValue devuelve el valor del stock actual (cantidad × precio de compra).
func (s *StockItem) StockValue() decimal.Decimal {
	return decimal.NewFromInt(s.Quantity).Mul(s.PurchasePrice)
}
