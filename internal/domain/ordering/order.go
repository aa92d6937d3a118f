package ordering

import (
	"time"

	"github.com/pedidoflow/backend/internal/domain/shared"
)

// OrderItem represents a line item owned by an Order. Items have no
// identity of their own and are never addressed outside their order.
type OrderItem struct {
	ProductID int64
	Quantity  float64
	Price     float64
}

// Order represents a persisted purchase record keyed by its normalized
// order identifier.
type Order struct {
	OrderID      string
	Value        float64
	CreationDate time.Time
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOrder creates a new order, enforcing the aggregate invariants:
// a non-empty identifier and at least one line item.
func NewOrder(orderID string, value float64, creationDate time.Time, items []OrderItem) (*Order, error) {
	if orderID == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must have at least one item")
	}

	now := time.Now()
	order := &Order{
		OrderID:      orderID,
		Value:        value,
		CreationDate: creationDate,
		Items:        make([]OrderItem, len(items)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	copy(order.Items, items)
	return order, nil
}

// Replace overwrites the mutable fields of the order wholesale. The
// previous items are discarded, never merged.
func (o *Order) Replace(value float64, creationDate time.Time, items []OrderItem) {
	o.Value = value
	o.CreationDate = creationDate
	o.Items = make([]OrderItem, len(items))
	copy(o.Items, items)
	o.UpdatedAt = time.Now()
}
