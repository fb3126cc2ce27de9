package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stok-takip/internal/application/dto"
	"github.com/tu-usuario/stok-takip/internal/application/usecase"
	"github.com/tu-usuario/stok-takip/internal/domain"
	"github.com/tu-usuario/stok-takip/internal/domain/view"
	"github.com/tu-usuario/stok-takip/internal/store"
)

func setupWithItem(t *testing.T) (*store.Store, *usecase.MovementUseCase, string) {
	t.Helper()
	s := store.New()
	itemUC := usecase.NewStockItemUseCase(s)
	created, err := itemUC.Create(createReq("Mouse", "ELK-001", 10))
	require.NoError(t, err)
	return s, usecase.NewMovementUseCase(s), created.ID
}

func TestMovementRegister_Entrada(t *testing.T) {
	s, uc, itemID := setupWithItem(t)

	resp, err := uc.Register(dto.RegisterMovementRequest{
		StockItemID: itemID,
		Type:        "in",
		Quantity:    5,
		Reason:      "Satın alma",
		PerformedBy: "Ahmet Yılmaz",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Mouse", resp.StockItemName, "el nombre se copia al registrar")
	assert.False(t, resp.Date.IsZero(), "fecha omitida: se usa el instante del registro")

	item, ok := s.GetStockItem(itemID)
	require.True(t, ok)
	assert.Equal(t, int64(15), item.Quantity)
}

func TestMovementRegister_SalidaInsuficiente(t *testing.T) {
	s, uc, itemID := setupWithItem(t)

	_, err := uc.Register(dto.RegisterMovementRequest{
		StockItemID: itemID,
		Type:        "out",
		Quantity:    11,
		Reason:      "Satış",
		PerformedBy: "Ahmet Yılmaz",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, _ := s.GetStockItem(itemID)
	assert.Equal(t, int64(10), item.Quantity, "el rechazo no toca la cantidad")
	assert.Empty(t, s.Movements(), "el rechazo no registra el movimiento")
}

func TestMovementRegister_Validaciones(t *testing.T) {
	_, uc, itemID := setupWithItem(t)

	cases := []struct {
		name string
		req  dto.RegisterMovementRequest
	}{
		{"tipo inválido", dto.RegisterMovementRequest{StockItemID: itemID, Type: "transfer", Quantity: 1, Reason: "x", PerformedBy: "y"}},
		{"cantidad cero", dto.RegisterMovementRequest{StockItemID: itemID, Type: "in", Quantity: 0, Reason: "x", PerformedBy: "y"}},
		{"cantidad negativa", dto.RegisterMovementRequest{StockItemID: itemID, Type: "in", Quantity: -2, Reason: "x", PerformedBy: "y"}},
		{"sin motivo", dto.RegisterMovementRequest{StockItemID: itemID, Type: "in", Quantity: 1, Reason: "  ", PerformedBy: "y"}},
		{"sin responsable", dto.RegisterMovementRequest{StockItemID: itemID, Type: "in", Quantity: 1, Reason: "x", PerformedBy: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestMovementRegister_ProductoInexistente(t *testing.T) {
	s := store.New()
	uc := usecase.NewMovementUseCase(s)

	_, err := uc.Register(dto.RegisterMovementRequest{
		StockItemID: "fantasma",
		Type:        "in",
		Quantity:    1,
		Reason:      "Satın alma",
		PerformedBy: "Ahmet Yılmaz",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementList_FiltroYPaginacion(t *testing.T) {
	_, uc, itemID := setupWithItem(t)

	for i := 0; i < 3; i++ {
		_, err := uc.Register(dto.RegisterMovementRequest{
			StockItemID: itemID, Type: "in", Quantity: 1,
			Reason: "Satın alma", PerformedBy: "Ahmet", Date: time.Now(),
		})
		require.NoError(t, err)
	}
	_, err := uc.Register(dto.RegisterMovementRequest{
		StockItemID: itemID, Type: "out", Quantity: 2,
		Reason: "Satış", PerformedBy: "Zeynep", Date: time.Now(),
	})
	require.NoError(t, err)

	list := uc.List(view.MovementQuery{Type: view.TypeOut})
	require.Len(t, list.Items, 1)
	assert.Equal(t, "out", list.Items[0].Type)
	assert.Equal(t, 1, list.Page.Total)

	list = uc.List(view.MovementQuery{})
	assert.Equal(t, 4, list.Page.Total)
	assert.Equal(t, view.DefaultPageSize, list.Page.PageSize)
}
