package desk

import (
	"context"

	"frontdesk/models"
)

// CreateOrder records a food order. When items are present their sum
// replaces any client-supplied total; a zero sum keeps the client total so
// manually priced or item-less orders survive.
func (s *DefaultDeskService) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	if order.Type == "" {
		order.Type = models.OrderTypeInhouse
	}
	if order.Status == "" {
		order.Status = models.OrderStatusUnpaid
	}
	if order.Mode == "" {
		order.Mode = defaultPaymentMode
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now()
	}

	if len(order.Items) > 0 {
		var sum float64
		for _, item := range order.Items {
			sum += float64(item.Qty) * item.Price
		}
		if sum != 0 {
			order.Total = sum
		}
	}

	return s.Orders.Create(ctx, order)
}

// ListOrders returns every order record.
func (s *DefaultDeskService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Orders.List(ctx)
}
