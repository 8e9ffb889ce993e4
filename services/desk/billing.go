package desk

import (
	"context"

	"frontdesk/models"
)

// ListBills returns every bill record.
func (s *DefaultDeskService) ListBills(ctx context.Context) ([]models.Bill, error) {
	return s.Bills.List(ctx)
}

// PayBill settles a bill by its business id and records the payment mode.
// Re-paying an already paid bill succeeds and overwrites mode and timestamp.
func (s *DefaultDeskService) PayBill(ctx context.Context, billID, mode string) error {
	matched, err := s.Bills.MarkPaid(ctx, billID, mode)
	if err != nil {
		return err
	}
	if !matched {
		return ErrBillNotFound
	}
	return nil
}
