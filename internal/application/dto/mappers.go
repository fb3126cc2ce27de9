package dto

import "github.com/tu-usuario/stok-takip/internal/domain/entity"

// NewStockItemResponse construye la respuesta a partir de la entidad.
func NewStockItemResponse(it entity.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Unit:          it.Unit,
		StockCode:     it.StockCode,
		Quantity:      it.Quantity,
		CriticalLevel: it.CriticalLevel,
		PurchasePrice: it.PurchasePrice,
		SalePrice:     it.SalePrice,
		Description:   it.Description,
		IsCritical:    it.IsCritical(),
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

// NewMovementResponse construye la respuesta a partir de la entidad.
func NewMovementResponse(m entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		StockItemID:   m.StockItemID,
		StockItemName: m.StockItemName,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		Date:          m.Date,
		PerformedBy:   m.PerformedBy,
		Notes:         m.Notes,
	}
}
