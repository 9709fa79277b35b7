// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstream/storefront/internal/models"
)

func placedOrder(number string, age time.Duration) models.Order {
	return models.Order{
		Number:    number,
		CreatedAt: time.Now().Add(-age),
		Subtotal:  dec("100.00"),
		Total:     dec("108.00"),
		Status:    models.OrderStatusPlaced,
	}
}

func TestOrderHistoryNewestFirst(t *testing.T) {
	svc := NewOrderService()
	sess := testSessionStore().Create()

	sess.Lock()
	sess.Orders = []models.Order{
		placedOrder("ORD-1", 48*time.Hour),
		placedOrder("ORD-2", 24*time.Hour),
		placedOrder("ORD-3", time.Hour),
	}
	sess.Unlock()

	history := svc.History(sess)
	require.Len(t, history, 3)
	assert.Equal(t, "ORD-3", history[0].Number)
	assert.Equal(t, "ORD-1", history[2].Number)
}

func TestOrderGet(t *testing.T) {
	svc := NewOrderService()
	sess := testSessionStore().Create()

	sess.Lock()
	sess.Orders = []models.Order{placedOrder("ORD-1", time.Hour)}
	sess.Unlock()

	order, ok := svc.Get(sess, "ORD-1")
	require.True(t, ok)
	assert.Equal(t, "ORD-1", order.Number)

	_, ok = svc.Get(sess, "ORD-404")
	assert.False(t, ok)
}

func TestTrackingTimeline(t *testing.T) {
	svc := NewOrderService()
	sess := testSessionStore().Create()

	// Placed 30 hours ago: placed, packed and shipped have happened;
	// out-for-delivery and delivered are projections.
	sess.Lock()
	sess.Orders = []models.Order{placedOrder("ORD-1", 30*time.Hour)}
	sess.Unlock()

	events, ok := svc.Tracking(sess, "ORD-1")
	require.True(t, ok)
	require.Len(t, events, 5)

	assert.Equal(t, models.OrderStatusPlaced, events[0].Status)
	assert.True(t, events[0].Completed)
	assert.True(t, events[1].Completed)
	assert.True(t, events[2].Completed)
	assert.False(t, events[3].Completed)
	assert.False(t, events[4].Completed)

	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].At.After(events[i-1].At))
	}
}

func TestTrackingUnknownOrder(t *testing.T) {
	svc := NewOrderService()
	sess := testSessionStore().Create()

	_, ok := svc.Tracking(sess, "ORD-404")
	assert.False(t, ok)
}
