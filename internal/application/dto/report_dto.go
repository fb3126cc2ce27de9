package dto

import "github.com/shopspring/decimal"

// ValueSliceDTO un punto de los reportes de valor: nombre (producto o
// categoría) y valor total del stock asociado.
type ValueSliceDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// MovementPointDTO totales diarios de entradas y salidas para la serie de
// movimientos. Date en formato YYYY-MM-DD.
type MovementPointDTO struct {
	Date string `json:"date"`
	In   int64  `json:"in"`
	Out  int64  `json:"out"`
}

// DashboardSummaryDTO resumen general del estado del stock.
type DashboardSummaryDTO struct {
	TotalProducts   int                 `json:"total_products"`
	TotalStockValue decimal.Decimal     `json:"total_stock_value"` // Σ cantidad × precio de compra
	WeekInflow      int64               `json:"week_inflow"`       // entradas últimos 7 días
	WeekOutflow     int64               `json:"week_outflow"`      // salidas últimos 7 días
	CriticalItems   []StockItemResponse `json:"critical_items"`    // cantidad ≤ nivel crítico
	RecentMovements []MovementResponse  `json:"recent_movements"`  // últimos 5 por fecha
}
