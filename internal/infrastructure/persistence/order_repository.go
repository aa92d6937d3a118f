package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pedidoflow/backend/internal/domain/ordering"
	"github.com/pedidoflow/backend/internal/domain/shared"
	"github.com/pedidoflow/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order header and its items in one transaction
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) (*ordering.Order, error) {
	var model models.OrderModel
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrAlreadyExists
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByID returns the order with its items preloaded
func (r *GormOrderRepository) FindByID(ctx context.Context, orderID string) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every stored order in insertion order
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]ordering.Order, error) {
	var records []models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at").
		Find(&records).Error; err != nil {
		return nil, err
	}

	orders := make([]ordering.Order, len(records))
	for i := range records {
		orders[i] = *records[i].ToDomain()
	}
	return orders, nil
}

// Replace overwrites the order header and swaps the entire items
// collection inside one transaction. The old items are deleted, never
// merged with the new ones.
func (r *GormOrderRepository) Replace(ctx context.Context, orderID string, order *ordering.Order) (*ordering.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("order_id = ?", orderID).
			Updates(map[string]any{
				"value":         decimalValue(order.Value),
				"creation_date": order.CreationDate.UTC(),
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if err := tx.Where("order_id = ?", orderID).
			Delete(&models.OrderItemModel{}).Error; err != nil {
			return err
		}

		items := make([]models.OrderItemModel, len(order.Items))
		for i, item := range order.Items {
			items[i] = models.OrderItemModel{
				OrderID:   orderID,
				ProductID: item.ProductID,
				Quantity:  decimalValue(item.Quantity),
				Price:     decimalValue(item.Price),
			}
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, orderID)
}

// Delete removes the order and its items, reporting whether a record
// existed. Items go first so the delete also works on engines without
// enforced foreign keys.
func (r *GormOrderRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	existed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).
			Delete(&models.OrderItemModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("order_id = ?", orderID).Delete(&models.OrderModel{})
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}

func decimalValue(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
