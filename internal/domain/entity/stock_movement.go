package entity

import "time"

// MovementType tipo cerrado de movimiento de stock.
type MovementType string

const (
	MovementTypeIn  MovementType = "in"  // entrada
	MovementTypeOut MovementType = "out" // salida
)

// Valid indica si el tipo es uno de los dos valores permitidos.
func (t MovementType) Valid() bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// StockMovement representa una entrada o salida registrada contra un producto.
// StockItemName es una copia del nombre del producto al momento de crear el
// movimiento: si el producto se renombra después, el histórico conserva el
// nombre antiguo.
type StockMovement struct {
	ID            string
	StockItemID   string // referencia débil a StockItem.ID
	StockItemName string // snapshot del nombre al crear
	Type          MovementType
	Quantity      int64 // siempre positivo; el signo lo da Type
	Reason        string
	Date          time.Time
	PerformedBy   string
	Notes         string
}
