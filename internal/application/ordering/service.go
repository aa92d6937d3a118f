package ordering

import (
	"context"

	"github.com/pedidoflow/backend/internal/domain/ordering"
)

// Service handles order intake business operations
type Service struct {
	orders ordering.OrderRepository
}

// NewService creates a new order intake Service
func NewService(orders ordering.OrderRepository) *Service {
	return &Service{orders: orders}
}

// Create validates, normalizes and persists an inbound order
func (s *Service) Create(ctx context.Context, payload OrderPayload) (*OrderResponse, error) {
	normalized := Normalize(payload)
	if violations := normalized.Violations(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	order, err := ordering.NewOrder(normalized.OrderID, *normalized.Value, *normalized.CreationDate, toDomainItems(normalized.Items))
	if err != nil {
		return nil, err
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// Get returns a single order by its normalized identifier
func (s *Service) Get(ctx context.Context, orderID string) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List returns every stored order
func (s *Service) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderResponse(&orders[i]))
	}
	return out, nil
}

// Replace validates the payload and overwrites the order addressed by
// the path identifier wholesale. The identifier inside the payload is
// still validated but never used for targeting.
func (s *Service) Replace(ctx context.Context, orderID string, payload OrderPayload) (*OrderResponse, error) {
	normalized := Normalize(payload)
	if violations := normalized.Violations(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	replacement, err := ordering.NewOrder(orderID, *normalized.Value, *normalized.CreationDate, toDomainItems(normalized.Items))
	if err != nil {
		return nil, err
	}

	updated, err := s.orders.Replace(ctx, orderID, replacement)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// Delete removes an order and its items, reporting whether it existed
func (s *Service) Delete(ctx context.Context, orderID string) (bool, error) {
	return s.orders.Delete(ctx, orderID)
}

func toDomainItems(items []NormalizedItem) []ordering.OrderItem {
	out := make([]ordering.OrderItem, len(items))
	for i, item := range items {
		out[i] = ordering.OrderItem{
			ProductID: *item.ProductID,
			Quantity:  *item.Quantity,
			Price:     *item.Price,
		}
	}
	return out
}
