package reports_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stok-takip/internal/application/reports"
	"github.com/tu-usuario/stok-takip/internal/domain/entity"
	"github.com/tu-usuario/stok-takip/internal/store"
)

func seedItem(t *testing.T, s *store.Store, name, category string, qty, price int64) entity.StockItem {
	t.Helper()
	now := time.Now()
	it := entity.StockItem{
		ID:            name,
		Name:          name,
		Category:      category,
		Unit:          "Adet",
		StockCode:     "C-" + name,
		Quantity:      qty,
		CriticalLevel: 5,
		PurchasePrice: decimal.NewFromInt(price),
		SalePrice:     decimal.NewFromInt(price * 2),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, s.AddStockItem(it))
	return it
}

func seedMovement(t *testing.T, s *store.Store, itemID string, typ entity.MovementType, qty int64, date time.Time) {
	t.Helper()
	_, err := s.ApplyMovement(entity.StockMovement{
		ID:          fmt.Sprintf("%s-%s-%d-%d", itemID, typ, qty, date.UnixNano()),
		StockItemID: itemID,
		Type:        typ,
		Quantity:    qty,
		Reason:      "Sayım",
		Date:        date,
		PerformedBy: "Ahmet",
	}, date)
	require.NoError(t, err)
}

func TestTopValueItems(t *testing.T) {
	s := store.New()
	seedItem(t, s, "Barato", "Elektronik", 10, 1)    // valor 10
	seedItem(t, s, "Caro", "Elektronik", 10, 100)    // valor 1000
	seedItem(t, s, "Medio", "Kırtasiye", 10, 50)     // valor 500

	uc := reports.NewReportUseCase(s)
	top := uc.TopValueItems(0)
	require.Len(t, top, 3)
	assert.Equal(t, "Caro", top[0].Name, "ordenado por valor descendente")
	assert.Equal(t, "Medio", top[1].Name)
	assert.True(t, top[0].Value.Equal(decimal.NewFromInt(1000)))

	top = uc.TopValueItems(2)
	assert.Len(t, top, 2, "limit recorta la lista")
	assert.Equal(t, "Caro", top[0].Name)
}

func TestCategoryValues(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddCategory(entity.Category{ID: "c1", Name: "Elektronik"}))
	require.NoError(t, s.AddCategory(entity.Category{ID: "c2", Name: "Kırtasiye"}))
	require.NoError(t, s.AddCategory(entity.Category{ID: "c3", Name: "Gıda"}))
	seedItem(t, s, "Mouse", "Elektronik", 10, 100)  // 1000
	seedItem(t, s, "Teclado", "Elektronik", 5, 40)  // 200
	seedItem(t, s, "Kalem", "Kırtasiye", 100, 2)    // 200

	uc := reports.NewReportUseCase(s)
	values := uc.CategoryValues()
	require.Len(t, values, 3)

	assert.Equal(t, "Elektronik", values[0].Name)
	assert.True(t, values[0].Value.Equal(decimal.NewFromInt(1200)), "suma de todos los productos de la categoría")
	assert.Equal(t, "Kırtasiye", values[1].Name)
	assert.Equal(t, "Gıda", values[2].Name, "categoría sin productos aparece con valor cero")
	assert.True(t, values[2].Value.IsZero())
}

func TestMovementSeries(t *testing.T) {
	s := store.New()
	seedItem(t, s, "Mouse", "Elektronik", 100, 10)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)

	seedMovement(t, s, "Mouse", entity.MovementTypeIn, 5, now.AddDate(0, 0, -1))
	seedMovement(t, s, "Mouse", entity.MovementTypeOut, 2, now.AddDate(0, 0, -1))
	seedMovement(t, s, "Mouse", entity.MovementTypeIn, 7, now.AddDate(0, 0, -10))
	seedMovement(t, s, "Mouse", entity.MovementTypeIn, 9, now.AddDate(0, 0, -45)) // fuera de la ventana

	uc := reports.NewReportUseCase(s)
	series := uc.MovementSeries(now)
	require.Len(t, series, 2, "solo los últimos 30 días; un punto por día con actividad")

	assert.Equal(t, "2026-03-05", series[0].Date, "orden cronológico ascendente")
	assert.Equal(t, int64(7), series[0].In)

	assert.Equal(t, "2026-03-14", series[1].Date)
	assert.Equal(t, int64(5), series[1].In, "entradas y salidas del mismo día se agregan por separado")
	assert.Equal(t, int64(2), series[1].Out)
}

func TestSummary(t *testing.T) {
	s := store.New()
	seedItem(t, s, "Mouse", "Elektronik", 50, 10)  // 500
	seedItem(t, s, "Teclado", "Elektronik", 3, 20) // 60, crítico (3 ≤ 5)
	now := time.Now()

	seedMovement(t, s, "Mouse", entity.MovementTypeIn, 5, now.AddDate(0, 0, -2))
	seedMovement(t, s, "Mouse", entity.MovementTypeOut, 3, now.AddDate(0, 0, -1))
	seedMovement(t, s, "Mouse", entity.MovementTypeIn, 4, now.AddDate(0, 0, -20)) // fuera de la semana

	uc := reports.NewReportUseCase(s)
	sum := uc.Summary(now)

	assert.Equal(t, 2, sum.TotalProducts)
	// cantidades tras los movimientos: Mouse 50+5-3+4=56, Teclado 3
	assert.True(t, sum.TotalStockValue.Equal(decimal.NewFromInt(56*10+3*20)))
	assert.Equal(t, int64(5), sum.WeekInflow, "solo los últimos 7 días cuentan en el flujo")
	assert.Equal(t, int64(3), sum.WeekOutflow)

	require.Len(t, sum.CriticalItems, 1)
	assert.Equal(t, "Teclado", sum.CriticalItems[0].Name)

	require.Len(t, sum.RecentMovements, 3)
	assert.Equal(t, int64(3), sum.RecentMovements[0].Quantity, "el más reciente primero")
}

func TestSummary_RecentesLimitadosACinco(t *testing.T) {
	s := store.New()
	seedItem(t, s, "Mouse", "Elektronik", 100, 10)
	now := time.Now()
	for i := 0; i < 8; i++ {
		seedMovement(t, s, "Mouse", entity.MovementTypeIn, int64(i+1), now.Add(-time.Duration(i)*time.Hour))
	}

	uc := reports.NewReportUseCase(s)
	sum := uc.Summary(now)
	require.Len(t, sum.RecentMovements, 5)
	assert.Equal(t, int64(1), sum.RecentMovements[0].Quantity, "ordenados por fecha descendente")
}
