// Package reports contiene los agregados de reporte sobre el estado actual
// del Store: valuación, desglose por categoría, serie de movimientos y el
// resumen del dashboard. Todo se recalcula bajo demanda; con colecciones en
// memoria de un solo inquilino no hace falta memoizar.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stok-takip/internal/application/dto"
	"github.com/tu-usuario/stok-takip/internal/domain/entity"
	"github.com/tu-usuario/stok-takip/internal/store"
)

const (
	defaultTopItems    = 10 // productos en el reporte de valuación
	movementWindowDays = 30 // ventana de la serie de movimientos
	recentMovements    = 5  // movimientos recientes en el dashboard
)

// ReportUseCase genera series listas para graficar a partir del Store.
type ReportUseCase struct {
	store *store.Store
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(s *store.Store) *ReportUseCase {
	return &ReportUseCase{store: s}
}

// TopValueItems devuelve los productos de mayor valor de stock
// (cantidad × precio de compra), de mayor a menor. limit ≤ 0 usa el
// tope por defecto (10).
func (uc *ReportUseCase) TopValueItems(limit int) []dto.ValueSliceDTO {
	if limit <= 0 {
		limit = defaultTopItems
	}
	items := uc.store.StockItems()
	out := make([]dto.ValueSliceDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ValueSliceDTO{Name: it.Name, Value: it.StockValue()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CategoryValues devuelve el valor total de stock por categoría, de mayor a
// menor. Suma sobre los productos cuyo nombre de categoría coincide; las
// categorías sin productos aparecen con valor cero.
func (uc *ReportUseCase) CategoryValues() []dto.ValueSliceDTO {
	items := uc.store.StockItems()
	categories := uc.store.Categories()

	out := make([]dto.ValueSliceDTO, 0, len(categories))
	for _, cat := range categories {
		total := decimal.Zero
		for _, it := range items {
			if it.Category == cat.Name {
				total = total.Add(it.StockValue())
			}
		}
		out = append(out, dto.ValueSliceDTO{Name: cat.Name, Value: total})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

// MovementSeries devuelve los totales diarios de entradas y salidas de los
// últimos 30 días, en orden cronológico ascendente. Los días sin movimientos
// no generan punto.
func (uc *ReportUseCase) MovementSeries(now time.Time) []dto.MovementPointDTO {
	since := now.AddDate(0, 0, -movementWindowDays)

	byDate := make(map[string]*dto.MovementPointDTO)
	for _, m := range uc.store.Movements() {
		if m.Date.Before(since) {
			continue
		}
		key := m.Date.Format("2006-01-02")
		point, ok := byDate[key]
		if !ok {
			point = &dto.MovementPointDTO{Date: key}
			byDate[key] = point
		}
		if m.Type == entity.MovementTypeIn {
			point.In += m.Quantity
		} else {
			point.Out += m.Quantity
		}
	}

	out := make([]dto.MovementPointDTO, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	// YYYY-MM-DD ordena cronológicamente como texto
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Summary construye el resumen del dashboard: totales, productos en nivel
// crítico, flujos de los últimos 7 días y los movimientos más recientes.
func (uc *ReportUseCase) Summary(now time.Time) *dto.DashboardSummaryDTO {
	items := uc.store.StockItems()
	movements := uc.store.Movements()

	totalValue := decimal.Zero
	critical := make([]dto.StockItemResponse, 0)
	for _, it := range items {
		totalValue = totalValue.Add(it.StockValue())
		if it.IsCritical() {
			critical = append(critical, dto.NewStockItemResponse(it))
		}
	}

	weekAgo := now.AddDate(0, 0, -7)
	var inflow, outflow int64
	for _, m := range movements {
		if m.Date.Before(weekAgo) {
			continue
		}
		if m.Type == entity.MovementTypeIn {
			inflow += m.Quantity
		} else {
			outflow += m.Quantity
		}
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[j].Date.Before(movements[i].Date)
	})
	if len(movements) > recentMovements {
		movements = movements[:recentMovements]
	}
	recent := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		recent = append(recent, dto.NewMovementResponse(m))
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:   len(items),
		TotalStockValue: totalValue,
		WeekInflow:      inflow,
		WeekOutflow:     outflow,
		CriticalItems:   critical,
		RecentMovements: recent,
	}
}
