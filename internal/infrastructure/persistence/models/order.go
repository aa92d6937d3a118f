package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedidoflow/backend/internal/domain/ordering"
)

// OrderModel is the persistence model for the Order aggregate root.
// Money and quantity columns are stored as decimals; the domain works
// with float64 because the wire contract speaks JSON numbers.
type OrderModel struct {
	OrderID      string           `gorm:"type:varchar(64);primaryKey"`
	Value        decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	CreationDate time.Time        `gorm:"not null"`
	Items        []OrderItemModel `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for an order line item
type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   string          `gorm:"type:varchar(64);not null;index"`
	ProductID int64           `gorm:"not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order entity
func (m *OrderModel) ToDomain() *ordering.Order {
	order := &ordering.Order{
		OrderID:      m.OrderID,
		Value:        m.Value.InexactFloat64(),
		CreationDate: m.CreationDate.UTC(),
		Items:        make([]ordering.OrderItem, len(m.Items)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for i, item := range m.Items {
		order.Items[i] = ordering.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity.InexactFloat64(),
			Price:     item.Price.InexactFloat64(),
		}
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.OrderID = o.OrderID
	m.Value = decimal.NewFromFloat(o.Value)
	m.CreationDate = o.CreationDate.UTC()
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			OrderID:   o.OrderID,
			ProductID: item.ProductID,
			Quantity:  decimal.NewFromFloat(item.Quantity),
			Price:     decimal.NewFromFloat(item.Price),
		}
	}
}
