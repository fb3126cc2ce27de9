package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/tu-usuario/stok-takip/internal/domain/entity"
)

// Pipeline fijo: filtrar → ordenar → paginar. Cada etapa opera sobre copias;
// las colecciones de entrada nunca se mutan.

var folder = cases.Fold()

// containsFold substring match case-insensitive (fold Unicode, no solo ASCII).
func containsFold(s, substr string) bool {
	return strings.Contains(folder.String(s), folder.String(substr))
}

// QueryStockItems aplica la configuración de vista sobre la colección de
// productos y devuelve la página solicitada más el total filtrado.
func QueryStockItems(items []entity.StockItem, q StockItemQuery) Page[entity.StockItem] {
	filtered := make([]entity.StockItem, 0, len(items))
	for _, it := range items {
		if q.Search != "" &&
			!containsFold(it.Name, q.Search) &&
			!containsFold(it.StockCode, q.Search) &&
			!containsFold(it.Description, q.Search) {
			continue
		}
		if q.Category != "" && it.Category != q.Category {
			continue
		}
		filtered = append(filtered, it)
	}

	sortStockItems(filtered, q.SortKey, q.SortDir)
	return paginate(filtered, q.Page, q.PageSize)
}

// QueryMovements aplica la configuración de vista sobre los movimientos.
// now ancla los rangos de fecha (hoy / 7 días / 30 días) para mantener la
// función pura y testeable.
func QueryMovements(movements []entity.StockMovement, q MovementQuery, now time.Time) Page[entity.StockMovement] {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, -1, 0)

	filtered := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if q.Search != "" &&
			!containsFold(m.StockItemName, q.Search) &&
			!containsFold(m.Reason, q.Search) &&
			!containsFold(m.Notes, q.Search) {
			continue
		}
		if q.Type != "" && q.Type != TypeAll && string(m.Type) != string(q.Type) {
			continue
		}
		switch q.Range {
		case RangeToday:
			if m.Date.Before(today) {
				continue
			}
		case RangeWeek:
			if m.Date.Before(weekAgo) {
				continue
			}
		case RangeMonth:
			if m.Date.Before(monthAgo) {
				continue
			}
		}
		filtered = append(filtered, m)
	}

	sortMovements(filtered, q.SortKey, q.SortDir)
	return paginate(filtered, q.Page, q.PageSize)
}

// sortStockItems ordena in-place con comparadores explícitos por clave.
// SliceStable garantiza que los empates conserven el orden de inserción.
func sortStockItems(items []entity.StockItem, key StockItemSortKey, dir Direction) {
	if key == "" {
		key = ItemSortName
	}
	less := func(a, b entity.StockItem) bool {
		switch key {
		case ItemSortStockCode:
			return a.StockCode < b.StockCode
		case ItemSortCategory:
			return a.Category < b.Category
		case ItemSortUnit:
			return a.Unit < b.Unit
		case ItemSortQuantity:
			return a.Quantity < b.Quantity
		case ItemSortCriticalLevel:
			return a.CriticalLevel < b.CriticalLevel
		case ItemSortPurchasePrice:
			return a.PurchasePrice.LessThan(b.PurchasePrice)
		case ItemSortSalePrice:
			return a.SalePrice.LessThan(b.SalePrice)
		case ItemSortCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		case ItemSortUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.Name < b.Name
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if dir == Desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func sortMovements(movements []entity.StockMovement, key MovementSortKey, dir Direction) {
	if key == "" {
		key = MovementSortDate
	}
	less := func(a, b entity.StockMovement) bool {
		switch key {
		case MovementSortItemName:
			return a.StockItemName < b.StockItemName
		case MovementSortType:
			return a.Type < b.Type
		case MovementSortQuantity:
			return a.Quantity < b.Quantity
		case MovementSortReason:
			return a.Reason < b.Reason
		case MovementSortPerformedBy:
			return a.PerformedBy < b.PerformedBy
		default:
			return a.Date.Before(b.Date)
		}
	}
	sort.SliceStable(movements, func(i, j int) bool {
		if dir == Desc {
			return less(movements[j], movements[i])
		}
		return less(movements[i], movements[j])
	})
}

// paginate recorta la ventana 1-based. Una página fuera de rango devuelve
// una ventana vacía con el total real; el motor no ajusta la página.
func paginate[T any](xs []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	total := len(xs)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start >= total {
		return Page[T]{Items: []T{}, Total: total, TotalPages: totalPages}
	}
	end := start + size
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, xs[start:end])
	return Page[T]{Items: out, Total: total, TotalPages: totalPages}
}
