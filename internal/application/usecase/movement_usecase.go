package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stok-takip/internal/application/dto"
	"github.com/tu-usuario/stok-takip/internal/domain"
	"github.com/tu-usuario/stok-takip/internal/domain/entity"
	"github.com/tu-usuario/stok-takip/internal/domain/view"
	"github.com/tu-usuario/stok-takip/internal/store"
)

// MovementUseCase registra y lista movimientos de stock. El registro ajusta
// la cantidad del producto en la misma mutación del Store: o se aplica todo
// (movimiento + cantidad) o nada.
type MovementUseCase struct {
	store *store.Store
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(s *store.Store) *MovementUseCase {
	return &MovementUseCase{store: s}
}

// Register valida y aplica un movimiento. Un producto inexistente devuelve
// ErrNotFound (no un no-op silencioso) y una salida mayor al stock actual
// devuelve ErrInsufficientStock: la verificación vive aquí y no en la UI.
func (uc *MovementUseCase) Register(in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	movType := entity.MovementType(in.Type)
	if !movType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.StockItemID == "" || in.Quantity <= 0 ||
		strings.TrimSpace(in.Reason) == "" || strings.TrimSpace(in.PerformedBy) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	mov := entity.StockMovement{
		ID:          uuid.New().String(),
		StockItemID: in.StockItemID,
		Type:        movType,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Date:        date,
		PerformedBy: in.PerformedBy,
		Notes:       in.Notes,
	}
	applied, err := uc.store.ApplyMovement(mov, now)
	if err != nil {
		return nil, err
	}
	resp := dto.NewMovementResponse(applied)
	return &resp, nil
}

// List devuelve la vista derivada (filtrada, ordenada, paginada) de movimientos.
func (uc *MovementUseCase) List(q view.MovementQuery) *dto.MovementListResponse {
	if q.PageSize <= 0 {
		q.PageSize = view.DefaultPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	page := view.QueryMovements(uc.store.Movements(), q, time.Now())
	items := make([]dto.MovementResponse, 0, len(page.Items))
	for _, m := range page.Items {
		items = append(items, dto.NewMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page: dto.PageResponse{
			Page:       q.Page,
			PageSize:   q.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
}
