package ordering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	created := time.Date(2023, 7, 20, 12, 0, 0, 0, time.UTC)
	items := []OrderItem{{ProductID: 2434, Quantity: 1, Price: 100.5}}

	t.Run("valid order", func(t *testing.T) {
		order, err := NewOrder("v10089015", 100.5, created, items)
		require.NoError(t, err)
		assert.Equal(t, "v10089015", order.OrderID)
		assert.Equal(t, 100.5, order.Value)
		assert.Equal(t, created, order.CreationDate)
		assert.Len(t, order.Items, 1)
		assert.False(t, order.CreatedAt.IsZero())
	})

	t.Run("empty order ID", func(t *testing.T) {
		_, err := NewOrder("", 100.5, created, items)
		assert.Error(t, err)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := NewOrder("v10089015", 100.5, created, nil)
		assert.Error(t, err)
	})

	t.Run("items slice is copied", func(t *testing.T) {
		src := []OrderItem{{ProductID: 1, Quantity: 2, Price: 3}}
		order, err := NewOrder("abc", 6, created, src)
		require.NoError(t, err)
		src[0].ProductID = 99
		assert.Equal(t, int64(1), order.Items[0].ProductID)
	})
}

func TestOrderReplace(t *testing.T) {
	created := time.Date(2023, 7, 20, 12, 0, 0, 0, time.UTC)
	order, err := NewOrder("v10089015", 100.5, created, []OrderItem{
		{ProductID: 2434, Quantity: 1, Price: 100.5},
	})
	require.NoError(t, err)

	newDate := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	order.Replace(250, newDate, []OrderItem{
		{ProductID: 111, Quantity: 2, Price: 50},
		{ProductID: 222, Quantity: 3, Price: 50},
	})

	assert.Equal(t, float64(250), order.Value)
	assert.Equal(t, newDate, order.CreationDate)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(111), order.Items[0].ProductID)
	assert.Equal(t, "v10089015", order.OrderID)
}
