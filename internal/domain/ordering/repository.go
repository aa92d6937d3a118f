package ordering

import "context"

// OrderRepository defines the persistence contract for orders. Both the
// durable and the in-memory backend implement it; call sites must not
// care which one is active.
type OrderRepository interface {
	// Create persists a new order and its items atomically. It returns
	// shared.ErrAlreadyExists when the order ID is already taken.
	Create(ctx context.Context, order *Order) (*Order, error)

	// FindByID returns the order with its items, or shared.ErrNotFound.
	FindByID(ctx context.Context, orderID string) (*Order, error)

	// FindAll returns every stored order with items populated.
	FindAll(ctx context.Context) ([]Order, error)

	// Replace atomically overwrites value, creation date and the entire
	// items collection of an existing order and returns the updated
	// record. It returns shared.ErrNotFound when no such order exists.
	Replace(ctx context.Context, orderID string, order *Order) (*Order, error)

	// Delete removes the order and all of its items. It reports whether
	// a record existed; deleting an absent order is not an error.
	Delete(ctx context.Context, orderID string) (bool, error)
}
