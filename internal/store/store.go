// Package store mantiene el estado en memoria de la aplicación: las cuatro
// colecciones (productos, movimientos, categorías y unidades) viven aquí y
// toda escritura pasa por el Store. El estado es efímero por proceso; no hay
// capa de persistencia.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/stok-takip/internal/domain"
	"github.com/tu-usuario/stok-takip/internal/domain/entity"
)

// Subscriber se invoca de forma síncrona después de cada mutación aplicada.
type Subscriber func()

// Store única fuente de verdad de las colecciones. Las lecturas devuelven
// copias (snapshots); las mutaciones aplican los invariantes de dominio:
// unicidad case-insensitive de stockCode y nombres de categoría/unidad,
// existencia del producto referenciado por un movimiento y no-negatividad
// del stock resultante.
type Store struct {
	mu          sync.RWMutex
	items       []entity.StockItem
	movements   []entity.StockMovement
	categories  []entity.Category
	units       []entity.Unit
	subscribers []Subscriber
}

// New crea un Store vacío.
func New() *Store {
	return &Store{}
}

// Subscribe registra un callback de cambio. La notificación es síncrona y
// se entrega al terminar la mutación, ya fuera del lock.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// ── Lecturas (snapshots) ──────────────────────────────────────────────────────

// StockItems devuelve una copia de la colección de productos.
func (s *Store) StockItems() []entity.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.StockItem, len(s.items))
	copy(out, s.items)
	return out
}

// Movements devuelve una copia de la colección de movimientos.
func (s *Store) Movements() []entity.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.StockMovement, len(s.movements))
	copy(out, s.movements)
	return out
}

// Categories devuelve una copia de la colección de categorías.
func (s *Store) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Units devuelve una copia de la colección de unidades.
func (s *Store) Units() []entity.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Unit, len(s.units))
	copy(out, s.units)
	return out
}

// GetStockItem busca un producto por id.
func (s *Store) GetStockItem(id string) (entity.StockItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.StockItem{}, false
}

// ── Mutaciones de productos ───────────────────────────────────────────────────

// AddStockItem agrega un producto. El stockCode debe ser único
// (case-insensitive) dentro de la colección.
func (s *Store) AddStockItem(it entity.StockItem) error {
	s.mu.Lock()
	if s.stockCodeTaken(it.StockCode, "") {
		s.mu.Unlock()
		return domain.ErrDuplicate
	}
	s.items = append(s.items, it)
	s.mu.Unlock()
	s.notify()
	return nil
}

// MutateStockItem aplica fn sobre el registro actual del producto, dentro
// del lock de escritura, y guarda el resultado. fn recibe el estado vigente
// (no un snapshot previo del caller): una edición concurrente con un
// movimiento nunca pisa la cantidad ya ajustada. Si fn devuelve error la
// mutación se descarta y ninguna colección cambia.
func (s *Store) MutateStockItem(id string, fn func(entity.StockItem) (entity.StockItem, error)) (entity.StockItem, error) {
	s.mu.Lock()
	idx := s.indexOfItem(id)
	if idx < 0 {
		s.mu.Unlock()
		return entity.StockItem{}, domain.ErrNotFound
	}
	updated, err := fn(s.items[idx])
	if err != nil {
		s.mu.Unlock()
		return entity.StockItem{}, err
	}
	updated.ID = id
	if s.stockCodeTaken(updated.StockCode, id) {
		s.mu.Unlock()
		return entity.StockItem{}, domain.ErrDuplicate
	}
	s.items[idx] = updated
	s.mu.Unlock()
	s.notify()
	return updated, nil
}

// DeleteStockItem elimina el producto con el id dado. Borrar un id
// inexistente es un no-op. No hay cascada: los movimientos históricos del
// producto se conservan.
func (s *Store) DeleteStockItem(id string) {
	s.mu.Lock()
	idx := s.indexOfItem(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.mu.Unlock()
	s.notify()
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// ApplyMovement registra un movimiento y ajusta atómicamente la cantidad del
// producto referenciado (+quantity en entradas, -quantity en salidas).
// Devuelve el movimiento con el nombre del producto ya copiado.
// Falla con ErrInvalidInput si el tipo no es in/out, con ErrNotFound si el
// producto no existe y con ErrInsufficientStock si una salida supera el
// stock actual; en todos los casos ninguna colección cambia.
func (s *Store) ApplyMovement(m entity.StockMovement, now time.Time) (entity.StockMovement, error) {
	if !m.Type.Valid() {
		return entity.StockMovement{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	idx := s.indexOfItem(m.StockItemID)
	if idx < 0 {
		s.mu.Unlock()
		return entity.StockMovement{}, domain.ErrNotFound
	}
	item := s.items[idx]
	if m.Type == entity.MovementTypeOut && m.Quantity > item.Quantity {
		s.mu.Unlock()
		return entity.StockMovement{}, domain.ErrInsufficientStock
	}

	m.StockItemName = item.Name
	if m.Type == entity.MovementTypeIn {
		item.Quantity += m.Quantity
	} else {
		item.Quantity -= m.Quantity
	}
	item.UpdatedAt = now

	s.movements = append(s.movements, m)
	s.items[idx] = item
	s.mu.Unlock()
	s.notify()
	return m, nil
}

// ── Categorías y unidades ─────────────────────────────────────────────────────

// AddCategory agrega una categoría; el nombre es único case-insensitive.
func (s *Store) AddCategory(c entity.Category) error {
	s.mu.Lock()
	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			s.mu.Unlock()
			return domain.ErrDuplicate
		}
	}
	s.categories = append(s.categories, c)
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteCategory elimina la categoría por id. Sin cascada: los productos que
// referencian el nombre quedan intactos.
func (s *Store) DeleteCategory(id string) {
	s.mu.Lock()
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return
		}
	}
	s.mu.Unlock()
}

// AddUnit agrega una unidad; el nombre es único case-insensitive.
func (s *Store) AddUnit(u entity.Unit) error {
	s.mu.Lock()
	for _, existing := range s.units {
		if strings.EqualFold(existing.Name, u.Name) {
			s.mu.Unlock()
			return domain.ErrDuplicate
		}
	}
	s.units = append(s.units, u)
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteUnit elimina la unidad por id.
func (s *Store) DeleteUnit(id string) {
	s.mu.Lock()
	for i, u := range s.units {
		if u.ID == id {
			s.units = append(s.units[:i], s.units[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return
		}
	}
	s.mu.Unlock()
}

// ── helpers (requieren lock tomado) ───────────────────────────────────────────

func (s *Store) indexOfItem(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) stockCodeTaken(code, excludeID string) bool {
	for _, it := range s.items {
		if it.ID != excludeID && strings.EqualFold(it.StockCode, code) {
			return true
		}
	}
	return false
}
