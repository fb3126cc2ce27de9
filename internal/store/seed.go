package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stok-takip/internal/domain/entity"
)

// Seed carga un conjunto de datos de demostración. Pensado para entornos de
// desarrollo (APP_SEED=true); el estado es efímero, así que sin seed la
// aplicación arranca con las colecciones vacías.
func (s *Store) Seed(now time.Time) {
	categories := []entity.Category{
		{ID: uuid.New().String(), Name: "Elektronik"},
		{ID: uuid.New().String(), Name: "Kırtasiye"},
		{ID: uuid.New().String(), Name: "Gıda"},
	}
	units := []entity.Unit{
		{ID: uuid.New().String(), Name: "Adet", Abbreviation: "ad"},
		{ID: uuid.New().String(), Name: "Kutu", Abbreviation: "kt"},
		{ID: uuid.New().String(), Name: "Kilogram", Abbreviation: "kg"},
	}

	items := []entity.StockItem{
		{
			Name: "Kablosuz Mouse", Category: "Elektronik", Unit: "Adet",
			StockCode: "ELK-001", Quantity: 42, CriticalLevel: 10,
			PurchasePrice: decimal.NewFromInt(350), SalePrice: decimal.NewFromInt(520),
			Description: "2.4 GHz kablosuz mouse",
		},
		{
			Name: "Mekanik Klavye", Category: "Elektronik", Unit: "Adet",
			StockCode: "ELK-002", Quantity: 8, CriticalLevel: 12,
			PurchasePrice: decimal.NewFromInt(1200), SalePrice: decimal.NewFromInt(1750),
		},
		{
			Name: "A4 Fotokopi Kağıdı", Category: "Kırtasiye", Unit: "Kutu",
			StockCode: "KRT-001", Quantity: 120, CriticalLevel: 30,
			PurchasePrice: decimal.NewFromInt(180), SalePrice: decimal.NewFromInt(240),
			Description: "500 yaprak, 80 gr",
		},
		{
			Name: "Tükenmez Kalem", Category: "Kırtasiye", Unit: "Adet",
			StockCode: "KRT-002", Quantity: 300, CriticalLevel: 50,
			PurchasePrice: decimal.NewFromFloat(7.5), SalePrice: decimal.NewFromInt(12),
		},
		{
			Name: "Filtre Kahve", Category: "Gıda", Unit: "Kilogram",
			StockCode: "GDA-001", Quantity: 25, CriticalLevel: 5,
			PurchasePrice: decimal.NewFromInt(420), SalePrice: decimal.NewFromInt(560),
		},
	}

	s.mu.Lock()
	s.categories = append(s.categories, categories...)
	s.units = append(s.units, units...)
	for i := range items {
		items[i].ID = uuid.New().String()
		items[i].CreatedAt = now.AddDate(0, -2, 0)
		items[i].UpdatedAt = now.AddDate(0, -2, 0)
		s.items = append(s.items, items[i])
	}
	s.mu.Unlock()

	// Movimientos de los últimos días contra los productos recién creados;
	// pasan por ApplyMovement para que las cantidades queden consistentes.
	seedMovements := []struct {
		item     int
		typ      entity.MovementType
		qty      int64
		reason   string
		daysAgo  int
		operator string
	}{
		{0, entity.MovementTypeIn, 20, "Satın alma", 9, "Ahmet Yılmaz"},
		{2, entity.MovementTypeIn, 40, "Satın alma", 7, "Ahmet Yılmaz"},
		{0, entity.MovementTypeOut, 6, "Satış", 5, "Zeynep Kaya"},
		{3, entity.MovementTypeOut, 45, "Departman talebi", 3, "Zeynep Kaya"},
		{4, entity.MovementTypeIn, 10, "Satın alma", 2, "Ahmet Yılmaz"},
		{1, entity.MovementTypeOut, 2, "Satış", 1, "Zeynep Kaya"},
	}
	for _, sm := range seedMovements {
		mov := entity.StockMovement{
			ID:          uuid.New().String(),
			StockItemID: items[sm.item].ID,
			Type:        sm.typ,
			Quantity:    sm.qty,
			Reason:      sm.reason,
			Date:        now.AddDate(0, 0, -sm.daysAgo),
			PerformedBy: sm.operator,
		}
		// el seed construye cantidades que nunca fallan
		_, _ = s.ApplyMovement(mov, now)
	}
}
