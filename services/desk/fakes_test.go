package desk

import (
	"context"
	"errors"
	"time"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the three repositories. They keep the same semantics
// as the mongo implementations: FindOccupiedByRoom/FindActive return nil on
// no match, MarkPaid reports whether anything matched, and FinalizeCheckout
// applies all three writes or none.

type fakeCheckinRepo struct {
	checkins []models.Checkin
}

func (f *fakeCheckinRepo) Create(ctx context.Context, checkin models.Checkin) (string, error) {
	checkin.ID = primitive.NewObjectID()
	f.checkins = append(f.checkins, checkin)
	return checkin.ID.Hex(), nil
}

func (f *fakeCheckinRepo) List(ctx context.Context) ([]models.Checkin, error) {
	return append([]models.Checkin(nil), f.checkins...), nil
}

func (f *fakeCheckinRepo) FindOccupiedByRoom(ctx context.Context, room string) (*models.Checkin, error) {
	for i := range f.checkins {
		if f.checkins[i].Room == room && f.checkins[i].Status == models.CheckinStatusOccupied {
			c := f.checkins[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckinRepo) FindActive(ctx context.Context, room, phone string) (*models.Checkin, error) {
	for i := range f.checkins {
		c := f.checkins[i]
		if c.Room == room && c.Phone == phone && c.Status == models.CheckinStatusOccupied {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckinRepo) MarkCheckedOut(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.checkins {
		if f.checkins[i].ID == id {
			f.checkins[i].Status = models.CheckinStatusCheckedOut
			f.checkins[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return errors.New("check-in not found")
}

type fakeOrderRepo struct {
	orders []models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, order)
	return order.ID.Hex(), nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeOrderRepo) FindUnpaidInhouse(ctx context.Context, room string) ([]models.Order, error) {
	var matched []models.Order
	for _, o := range f.orders {
		if o.Type == models.OrderTypeInhouse && o.Room == room && o.Status == models.OrderStatusUnpaid {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (f *fakeOrderRepo) MarkSynced(ctx context.Context, ids []primitive.ObjectID) error {
	for _, id := range ids {
		for i := range f.orders {
			if f.orders[i].ID == id {
				f.orders[i].Synced = true
				f.orders[i].UpdatedAt = time.Now().UTC()
			}
		}
	}
	return nil
}

type fakeBillRepo struct {
	bills    []models.Bill
	orders   *fakeOrderRepo
	checkins *fakeCheckinRepo

	failFinalize bool
}

func (f *fakeBillRepo) List(ctx context.Context) ([]models.Bill, error) {
	return append([]models.Bill(nil), f.bills...), nil
}

func (f *fakeBillRepo) MarkPaid(ctx context.Context, billID, mode string) (bool, error) {
	for i := range f.bills {
		if f.bills[i].BillID == billID {
			f.bills[i].Status = models.BillStatusPaid
			f.bills[i].Mode = mode
			f.bills[i].UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBillRepo) FinalizeCheckout(ctx context.Context, bill models.Bill, orderIDs []primitive.ObjectID, checkinID primitive.ObjectID) error {
	if f.failFinalize {
		return errors.New("checkout transaction failed: simulated abort")
	}
	f.bills = append(f.bills, bill)
	if err := f.orders.MarkSynced(ctx, orderIDs); err != nil {
		return err
	}
	return f.checkins.MarkCheckedOut(ctx, checkinID)
}

// newTestService wires a DefaultDeskService to fresh fakes with a fixed clock.
func newTestService(now time.Time) (*DefaultDeskService, *fakeCheckinRepo, *fakeOrderRepo, *fakeBillRepo) {
	checkins := &fakeCheckinRepo{}
	orders := &fakeOrderRepo{}
	bills := &fakeBillRepo{orders: orders, checkins: checkins}
	svc := &DefaultDeskService{
		Checkins: checkins,
		Orders:   orders,
		Bills:    bills,
		Now:      func() time.Time { return now },
	}
	return svc, checkins, orders, bills
}
