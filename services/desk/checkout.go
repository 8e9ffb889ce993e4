package desk

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"frontdesk/models"
	"frontdesk/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// taxRate is the fixed tax applied to the room-plus-food subtotal.
const taxRate = 0.12

// Checkout closes a guest's stay: it computes the final bill from nights
// stayed and unpaid in-house orders, persists it, flags those orders as
// synced, and frees the room. Room and phone together locate the stay, a
// lightweight check that the caller knows both.
//
// The bill insert, order sync, and room release are committed in a single
// transaction, so a failure leaves nothing half-applied.
func (s *DefaultDeskService) Checkout(ctx context.Context, room, phone string) (string, error) {
	logger := utils.GetLogger()

	checkin, err := s.Checkins.FindActive(ctx, room, phone)
	if err != nil {
		return "", err
	}
	if checkin == nil {
		return "", ErrActiveCheckinNotFound
	}

	now := s.now()
	start := checkin.CreatedAt.Time
	if start.IsZero() {
		// Legacy documents occasionally carry unusable createdAt values.
		// Billing from "now" keeps checkout working but charges a single
		// night, so flag it instead of passing silently.
		logger.Warn("check-in createdAt unusable, using current time as stay start",
			zap.String("room", room), zap.String("phone", phone))
		start = now
	}

	// Elapsed whole days plus one, minimum one night: a partial day counts
	// as a full night.
	nights := int(now.Sub(start).Hours()/24) + 1
	if nights < 1 {
		nights = 1
	}
	roomCharges := float64(nights) * checkin.Rate

	// Every unpaid in-house order for the room is billed, regardless of who
	// placed it.
	orders, err := s.Orders.FindUnpaidInhouse(ctx, room)
	if err != nil {
		return "", err
	}
	var foodTotal float64
	orderIDs := make([]primitive.ObjectID, 0, len(orders))
	for _, o := range orders {
		foodTotal += o.Total
		orderIDs = append(orderIDs, o.ID)
	}

	subtotal := roomCharges + foodTotal
	// math.Round is half-away-from-zero, i.e. round-half-up for the
	// positive amounts this produces.
	tax := math.Round(subtotal * taxRate)
	grand := subtotal + tax - checkin.Advance

	billID, err := newBillID()
	if err != nil {
		return "", err
	}

	bill := models.Bill{
		BillID:      billID,
		Guest:       checkin.Name,
		Phone:       checkin.Phone,
		Room:        checkin.Room,
		Nights:      nights,
		RoomCharges: roomCharges,
		FoodTotal:   foodTotal,
		Advance:     checkin.Advance,
		Tax:         tax,
		Total:       grand,
		Status:      models.BillStatusUnpaid,
		Mode:        defaultPaymentMode,
		CreatedAt:   now,
	}

	if err := s.Bills.FinalizeCheckout(ctx, bill, orderIDs, checkin.ID); err != nil {
		return "", err
	}

	logger.Info("checkout complete",
		zap.String("room", room),
		zap.String("billId", billID),
		zap.Int("nights", nights),
		zap.Float64("total", grand))

	return billID, nil
}

// newBillID returns "BILL-" plus 8 uppercase hex characters from a
// cryptographic source. Uniqueness is probabilistic, not checked against
// existing bills.
func newBillID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate bill id: %w", err)
	}
	return "BILL-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
