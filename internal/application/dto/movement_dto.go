package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// Date en RFC 3339; si se omite se usa la hora del servidor.
type RegisterMovementRequest struct {
	StockItemID string    `json:"stock_item_id" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=in out"`
	Quantity    int64     `json:"quantity" validate:"required,gt=0"`
	Reason      string    `json:"reason" validate:"required"`
	Date        time.Time `json:"date"`
	PerformedBy string    `json:"performed_by" validate:"required"`
	Notes       string    `json:"notes"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            string    `json:"id"`
	StockItemID   string    `json:"stock_item_id"`
	StockItemName string    `json:"stock_item_name"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	Reason        string    `json:"reason"`
	Date          time.Time `json:"date"`
	PerformedBy   string    `json:"performed_by"`
	Notes         string    `json:"notes"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
