package view_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stok-takip/internal/domain/entity"
	"github.com/tu-usuario/stok-takip/internal/domain/view"
)

func item(name, code, category string, qty int64) entity.StockItem {
	return entity.StockItem{
		ID:            code,
		Name:          name,
		Category:      category,
		Unit:          "Adet",
		StockCode:     code,
		Quantity:      qty,
		PurchasePrice: decimal.NewFromInt(qty * 10),
		SalePrice:     decimal.NewFromInt(qty * 15),
	}
}

func TestQueryStockItems_OrdenPorNombre(t *testing.T) {
	items := []entity.StockItem{
		item("Teclado", "ELK-002", "Elektronik", 8),
		item("Mouse", "ELK-001", "Elektronik", 42),
		item("Kalem", "KRT-002", "Kırtasiye", 100),
	}

	page := view.QueryStockItems(items, view.StockItemQuery{
		SortKey: view.ItemSortName, SortDir: view.Asc, Page: 1, PageSize: 10,
	})
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Kalem", page.Items[0].Name)
	assert.Equal(t, "Mouse", page.Items[1].Name)
	assert.Equal(t, "Teclado", page.Items[2].Name)

	page = view.QueryStockItems(items, view.StockItemQuery{
		SortKey: view.ItemSortName, SortDir: view.Desc, Page: 1, PageSize: 10,
	})
	assert.Equal(t, "Teclado", page.Items[0].Name, "invertir la dirección invierte el orden")
	assert.Equal(t, "Kalem", page.Items[2].Name)
}

func TestQueryStockItems_NoMutaLaEntrada(t *testing.T) {
	items := []entity.StockItem{
		item("Teclado", "ELK-002", "Elektronik", 8),
		item("Mouse", "ELK-001", "Elektronik", 42),
	}

	_ = view.QueryStockItems(items, view.StockItemQuery{
		SortKey: view.ItemSortName, SortDir: view.Asc, Page: 1, PageSize: 10,
	})

	assert.Equal(t, "Teclado", items[0].Name, "la colección original conserva su orden")
	assert.Equal(t, "Mouse", items[1].Name)
}

func TestQueryStockItems_BusquedaEnDescripcion(t *testing.T) {
	a := item("Mouse", "ELK-001", "Elektronik", 42)
	a.Description = "inalámbrico ergonómico"
	b := item("Teclado", "ELK-002", "Elektronik", 8)

	page := view.QueryStockItems([]entity.StockItem{a, b}, view.StockItemQuery{
		Search: "ERGONÓMICO", Page: 1, PageSize: 10,
	})
	require.Len(t, page.Items, 1, "la búsqueda cubre la descripción, case-insensitive")
	assert.Equal(t, "Mouse", page.Items[0].Name)
}

func TestQueryStockItems_FiltroPorCategoria(t *testing.T) {
	items := []entity.StockItem{
		item("Mouse", "ELK-001", "Elektronik", 42),
		item("Kalem", "KRT-002", "Kırtasiye", 100),
	}

	page := view.QueryStockItems(items, view.StockItemQuery{
		Category: "Kırtasiye", Page: 1, PageSize: 10,
	})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Kalem", page.Items[0].Name)
	assert.Equal(t, 1, page.Total)
}

func TestQueryStockItems_Paginacion(t *testing.T) {
	items := make([]entity.StockItem, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, item(fmt.Sprintf("Producto %02d", i), fmt.Sprintf("P-%03d", i), "Elektronik", int64(i)))
	}

	page1 := view.QueryStockItems(items, view.StockItemQuery{
		SortKey: view.ItemSortName, Page: 1, PageSize: 10,
	})
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, 25, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)

	page3 := view.QueryStockItems(items, view.StockItemQuery{
		SortKey: view.ItemSortName, Page: 3, PageSize: 10,
	})
	assert.Len(t, page3.Items, 5, "la última página lleva el resto")

	page4 := view.QueryStockItems(items, view.StockItemQuery{
		SortKey: view.ItemSortName, Page: 4, PageSize: 10,
	})
	assert.Empty(t, page4.Items, "fuera de rango: ventana vacía, sin ajustar la página")
	assert.Equal(t, 25, page4.Total, "el total sigue siendo el filtrado real")
}

func TestQueryStockItems_EmpateEstable(t *testing.T) {
	// mismo quantity: el orden de inserción decide
	items := []entity.StockItem{
		item("Primero", "A-001", "Elektronik", 7),
		item("Segundo", "A-002", "Elektronik", 7),
		item("Tercero", "A-003", "Elektronik", 7),
	}

	page := view.QueryStockItems(items, view.StockItemQuery{
		SortKey: view.ItemSortQuantity, SortDir: view.Asc, Page: 1, PageSize: 10,
	})
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Primero", page.Items[0].Name, "los empates conservan el orden de inserción")
	assert.Equal(t, "Segundo", page.Items[1].Name)
	assert.Equal(t, "Tercero", page.Items[2].Name)
}

func movement(id string, typ entity.MovementType, qty int64, date time.Time) entity.StockMovement {
	return entity.StockMovement{
		ID:            id,
		StockItemID:   "i1",
		StockItemName: "Mouse",
		Type:          typ,
		Quantity:      qty,
		Reason:        "Sayım",
		Date:          date,
		PerformedBy:   "Ahmet",
	}
}

func TestQueryMovements_RangosDeFecha(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.Local)
	movs := []entity.StockMovement{
		movement("hoy", entity.MovementTypeIn, 1, now.Add(-2*time.Hour)),
		movement("ayer", entity.MovementTypeIn, 2, now.AddDate(0, 0, -1)),
		movement("hace5", entity.MovementTypeOut, 3, now.AddDate(0, 0, -5)),
		movement("hace20", entity.MovementTypeOut, 4, now.AddDate(0, 0, -20)),
		movement("hace60", entity.MovementTypeIn, 5, now.AddDate(0, 0, -60)),
	}

	cases := []struct {
		rng  view.DateRange
		want int
	}{
		{view.RangeAll, 5},
		{view.RangeToday, 1},
		{view.RangeWeek, 3},
		{view.RangeMonth, 4},
	}
	for _, tc := range cases {
		page := view.QueryMovements(movs, view.MovementQuery{
			Range: tc.rng, Page: 1, PageSize: 10,
		}, now)
		assert.Equal(t, tc.want, page.Total, "rango %s", tc.rng)
	}
}

func TestQueryMovements_FiltroPorTipo(t *testing.T) {
	now := time.Now()
	movs := []entity.StockMovement{
		movement("m1", entity.MovementTypeIn, 1, now),
		movement("m2", entity.MovementTypeOut, 2, now),
		movement("m3", entity.MovementTypeIn, 3, now),
	}

	page := view.QueryMovements(movs, view.MovementQuery{
		Type: view.TypeIn, Page: 1, PageSize: 10,
	}, now)
	assert.Equal(t, 2, page.Total)

	page = view.QueryMovements(movs, view.MovementQuery{
		Type: view.TypeAll, Page: 1, PageSize: 10,
	}, now)
	assert.Equal(t, 3, page.Total, "all no filtra nada")
}

func TestQueryMovements_OrdenPorFechaDescendente(t *testing.T) {
	now := time.Now()
	movs := []entity.StockMovement{
		movement("viejo", entity.MovementTypeIn, 1, now.AddDate(0, 0, -3)),
		movement("nuevo", entity.MovementTypeIn, 2, now),
		movement("medio", entity.MovementTypeOut, 3, now.AddDate(0, 0, -1)),
	}

	page := view.QueryMovements(movs, view.MovementQuery{
		SortKey: view.MovementSortDate, SortDir: view.Desc, Page: 1, PageSize: 10,
	}, now)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "nuevo", page.Items[0].ID)
	assert.Equal(t, "medio", page.Items[1].ID)
	assert.Equal(t, "viejo", page.Items[2].ID)
}

func TestToggleItemSort(t *testing.T) {
	// repetir la misma clave alterna asc → desc
	key, dir := view.ToggleItemSort(view.ItemSortName, view.ItemSortName, view.Asc)
	assert.Equal(t, view.ItemSortName, key)
	assert.Equal(t, view.Desc, dir)

	// y de vuelta
	key, dir = view.ToggleItemSort(view.ItemSortName, view.ItemSortName, view.Desc)
	assert.Equal(t, view.Asc, dir)

	// una clave nueva reinicia en ascendente
	key, dir = view.ToggleItemSort(view.ItemSortQuantity, view.ItemSortName, view.Desc)
	assert.Equal(t, view.ItemSortQuantity, key)
	assert.Equal(t, view.Asc, dir)
}

func TestSortKeys_EnumeracionCerrada(t *testing.T) {
	assert.True(t, view.StockItemSortKey("name").Valid())
	assert.False(t, view.StockItemSortKey("id").Valid(), "claves fuera de la enumeración se rechazan")
	assert.False(t, view.StockItemSortKey("__proto__").Valid())

	assert.True(t, view.MovementSortKey("date").Valid())
	assert.False(t, view.MovementSortKey("stockItemId").Valid())
}
