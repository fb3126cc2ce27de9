// Package view implementa las vistas derivadas: filtrado, ordenamiento y
// paginación puros sobre las colecciones en memoria. Las funciones no mutan
// sus entradas; cada llamada produce una secuencia nueva.
package view

// Direction dirección de ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize tamaño de página por defecto en todos los listados.
const DefaultPageSize = 10

// StockItemSortKey enumeración cerrada de campos ordenables de StockItem.
// Claves fuera de la lista se rechazan en la capa HTTP, no por lookup dinámico.
type StockItemSortKey string

const (
	ItemSortName          StockItemSortKey = "name"
	ItemSortStockCode     StockItemSortKey = "stock_code"
	ItemSortCategory      StockItemSortKey = "category"
	ItemSortUnit          StockItemSortKey = "unit"
	ItemSortQuantity      StockItemSortKey = "quantity"
	ItemSortCriticalLevel StockItemSortKey = "critical_level"
	ItemSortPurchasePrice StockItemSortKey = "purchase_price"
	ItemSortSalePrice     StockItemSortKey = "sale_price"
	ItemSortCreatedAt     StockItemSortKey = "created_at"
	ItemSortUpdatedAt     StockItemSortKey = "updated_at"
)

// Valid indica si la clave pertenece a la enumeración.
func (k StockItemSortKey) Valid() bool {
	switch k {
	case ItemSortName, ItemSortStockCode, ItemSortCategory, ItemSortUnit,
		ItemSortQuantity, ItemSortCriticalLevel, ItemSortPurchasePrice,
		ItemSortSalePrice, ItemSortCreatedAt, ItemSortUpdatedAt:
		return true
	}
	return false
}

// MovementSortKey enumeración cerrada de campos ordenables de StockMovement.
type MovementSortKey string

const (
	MovementSortDate        MovementSortKey = "date"
	MovementSortItemName    MovementSortKey = "stock_item_name"
	MovementSortType        MovementSortKey = "type"
	MovementSortQuantity    MovementSortKey = "quantity"
	MovementSortReason      MovementSortKey = "reason"
	MovementSortPerformedBy MovementSortKey = "performed_by"
)

// Valid indica si la clave pertenece a la enumeración.
func (k MovementSortKey) Valid() bool {
	switch k {
	case MovementSortDate, MovementSortItemName, MovementSortType,
		MovementSortQuantity, MovementSortReason, MovementSortPerformedBy:
		return true
	}
	return false
}

// TypeFilter filtro por tipo de movimiento en listados.
type TypeFilter string

const (
	TypeAll TypeFilter = "all"
	TypeIn  TypeFilter = "in"
	TypeOut TypeFilter = "out"
)

// Valid indica si el filtro es uno de los valores permitidos.
func (f TypeFilter) Valid() bool {
	return f == TypeAll || f == TypeIn || f == TypeOut
}

// DateRange filtro por rango de fecha en listados de movimientos.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today" // desde la medianoche local de hoy
	RangeWeek  DateRange = "week"  // últimos 7 días
	RangeMonth DateRange = "month" // últimos 30 días (un mes calendario)
)

// Valid indica si el rango es uno de los valores permitidos.
func (r DateRange) Valid() bool {
	return r == RangeAll || r == RangeToday || r == RangeWeek || r == RangeMonth
}

// StockItemQuery configuración de vista para el listado de productos.
type StockItemQuery struct {
	Search   string // substring case-insensitive sobre name, stockCode y description
	Category string // filtro exacto por nombre de categoría; vacío = todas
	SortKey  StockItemSortKey
	SortDir  Direction
	Page     int // 1-based; fuera de rango no se ajusta (responsabilidad del caller)
	PageSize int
}

// MovementQuery configuración de vista para el listado de movimientos.
type MovementQuery struct {
	Search   string // substring case-insensitive sobre stockItemName, reason y notes
	Type     TypeFilter
	Range    DateRange
	SortKey  MovementSortKey
	SortDir  Direction
	Page     int
	PageSize int
}

// Page resultado paginado: la ventana actual más el total filtrado
// (el total permite a la UI deshabilitar la navegación en los bordes).
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

// ToggleItemSort aplica la semántica de alternado: repetir la misma clave
// invierte la dirección; una clave nueva reinicia en ascendente.
func ToggleItemSort(key StockItemSortKey, cur StockItemSortKey, dir Direction) (StockItemSortKey, Direction) {
	if key == cur && dir == Asc {
		return key, Desc
	}
	return key, Asc
}

// ToggleMovementSort igual que ToggleItemSort para movimientos.
func ToggleMovementSort(key MovementSortKey, cur MovementSortKey, dir Direction) (MovementSortKey, Direction) {
	if key == cur && dir == Asc {
		return key, Desc
	}
	return key, Asc
}
