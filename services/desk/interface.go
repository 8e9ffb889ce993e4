package desk

import (
	"context"
	"time"

	billRepo "frontdesk/database/repository/bill"
	checkinRepo "frontdesk/database/repository/checkin"
	orderRepo "frontdesk/database/repository/order"
	"frontdesk/models"
)

// Service defines the front-desk operations: check-in management, food
// orders, billing, and the checkout flow that ties them together.
type Service interface {
	CreateCheckin(ctx context.Context, checkin models.Checkin) (string, error)
	ListCheckins(ctx context.Context) ([]models.Checkin, error)
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListBills(ctx context.Context) ([]models.Bill, error)
	PayBill(ctx context.Context, billID, mode string) error
	Checkout(ctx context.Context, room, phone string) (string, error)
}

// DefaultDeskService is the production implementation backed by the mongo
// repositories. Now overrides the clock in tests; nil means time.Now.
type DefaultDeskService struct {
	Checkins checkinRepo.Repository
	Orders   orderRepo.Repository
	Bills    billRepo.Repository
	Now      func() time.Time
}

func (s *DefaultDeskService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
