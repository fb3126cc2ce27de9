package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/stok-takip/internal/application/dto"
	"github.com/tu-usuario/stok-takip/internal/domain"
	"github.com/tu-usuario/stok-takip/internal/domain/entity"
	"github.com/tu-usuario/stok-takip/internal/store"
)

// CatalogUseCase administra los datos de referencia: categorías y unidades.
// La unicidad de nombres (case-insensitive) la garantiza el Store.
type CatalogUseCase struct {
	store *store.Store
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(s *store.Store) *CatalogUseCase {
	return &CatalogUseCase{store: s}
}

// AddCategory crea una categoría nueva.
func (uc *CatalogUseCase) AddCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat := entity.Category{ID: uuid.New().String(), Name: name}
	if err := uc.store.AddCategory(cat); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: cat.ID, Name: cat.Name}, nil
}

// DeleteCategory elimina una categoría. Sin cascada sobre los productos.
func (uc *CatalogUseCase) DeleteCategory(id string) {
	uc.store.DeleteCategory(id)
}

// ListCategories devuelve todas las categorías.
func (uc *CatalogUseCase) ListCategories() []dto.CategoryResponse {
	cats := uc.store.Categories()
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

// AddUnit crea una unidad de medida nueva.
func (uc *CatalogUseCase) AddUnit(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	name := strings.TrimSpace(in.Name)
	abbr := strings.TrimSpace(in.Abbreviation)
	if name == "" || abbr == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := entity.Unit{ID: uuid.New().String(), Name: name, Abbreviation: abbr}
	if err := uc.store.AddUnit(unit); err != nil {
		return nil, err
	}
	return &dto.UnitResponse{ID: unit.ID, Name: unit.Name, Abbreviation: unit.Abbreviation}, nil
}

// DeleteUnit elimina una unidad.
func (uc *CatalogUseCase) DeleteUnit(id string) {
	uc.store.DeleteUnit(id)
}

// ListUnits devuelve todas las unidades.
func (uc *CatalogUseCase) ListUnits() []dto.UnitResponse {
	units := uc.store.Units()
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, dto.UnitResponse{ID: u.ID, Name: u.Name, Abbreviation: u.Abbreviation})
	}
	return out
}
