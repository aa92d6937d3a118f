package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/pedidoflow/backend/internal/domain/ordering"
	"github.com/pedidoflow/backend/internal/domain/shared"
)

// MemoryOrderRepository implements ordering.OrderRepository with a
// mutex-guarded map. It is selected at startup when no database DSN is
// configured and honors the same contract as the durable repository.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*ordering.Order
	ids    []string // insertion order for FindAll
}

// NewMemoryOrderRepository creates an empty in-memory order store
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]*ordering.Order),
	}
}

// Create stores a copy of the order, rejecting duplicate identifiers
func (r *MemoryOrderRepository) Create(ctx context.Context, order *ordering.Order) (*ordering.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.OrderID]; exists {
		return nil, shared.ErrAlreadyExists
	}

	stored := cloneOrder(order)
	r.orders[order.OrderID] = stored
	r.ids = append(r.ids, order.OrderID)
	return cloneOrder(stored), nil
}

// FindByID returns a copy of the stored order or shared.ErrNotFound
func (r *MemoryOrderRepository) FindByID(ctx context.Context, orderID string) (*ordering.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.orders[orderID]
	if !exists {
		return nil, shared.ErrNotFound
	}
	return cloneOrder(stored), nil
}

// FindAll returns copies of every stored order in insertion order
func (r *MemoryOrderRepository) FindAll(ctx context.Context) ([]ordering.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]ordering.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orders = append(orders, *cloneOrder(r.orders[id]))
	}
	return orders, nil
}

// Replace overwrites the stored order wholesale, keeping its creation
// timestamp and its position in the listing
func (r *MemoryOrderRepository) Replace(ctx context.Context, orderID string, order *ordering.Order) (*ordering.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.orders[orderID]
	if !exists {
		return nil, shared.ErrNotFound
	}

	stored := cloneOrder(order)
	stored.OrderID = orderID
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	r.orders[orderID] = stored
	return cloneOrder(stored), nil
}

// Delete removes the order, reporting whether it existed
func (r *MemoryOrderRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[orderID]; !exists {
		return false, nil
	}

	delete(r.orders, orderID)
	for i, id := range r.ids {
		if id == orderID {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return true, nil
}

// cloneOrder copies the order and its items so callers can never
// mutate the stored state through a returned pointer
func cloneOrder(o *ordering.Order) *ordering.Order {
	clone := *o
	clone.Items = make([]ordering.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	return &clone
}
