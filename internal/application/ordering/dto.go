package ordering

import (
	"github.com/pedidoflow/backend/internal/domain/ordering"
)

// OrderPayload represents an inbound order document in its source-system
// field naming. Binding tags cover presence and basic typing; the
// post-mapping completeness check covers coercion.
type OrderPayload struct {
	NumeroPedido string        `json:"numeroPedido" binding:"required,min=1"`
	ValorTotal   Numeric       `json:"valorTotal" binding:"required"`
	DataCriacao  string        `json:"dataCriacao" binding:"required"`
	Items        []ItemPayload `json:"items" binding:"required,min=1,dive"`
}

// ItemPayload represents a line item of the inbound document
type ItemPayload struct {
	IDItem         Numeric `json:"idItem" binding:"required"`
	QuantidadeItem Numeric `json:"quantidadeItem" binding:"required"`
	ValorItem      Numeric `json:"valorItem" binding:"required"`
}

// OrderResponse represents an order in the normalized outward shape
type OrderResponse struct {
	OrderID      string         `json:"orderId"`
	Value        float64        `json:"value"`
	CreationDate string         `json:"creationDate"`
	Items        []ItemResponse `json:"items"`
}

// ItemResponse represents a normalized line item
type ItemResponse struct {
	ProductID int64   `json:"productId"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

func toOrderResponse(order *ordering.Order) *OrderResponse {
	resp := &OrderResponse{
		OrderID:      order.OrderID,
		Value:        order.Value,
		CreationDate: order.CreationDate.UTC().Format(CanonicalTimeLayout),
		Items:        make([]ItemResponse, len(order.Items)),
	}
	for i, item := range order.Items {
		resp.Items[i] = ItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return resp
}
