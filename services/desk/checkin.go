package desk

import (
	"context"

	"frontdesk/models"
)

// defaultPaymentMode is applied wherever a payment mode is omitted. The
// legacy desk treated empty strings and omissions alike, so zero values
// default too.
const defaultPaymentMode = "Cash"

// CreateCheckin registers a guest's stay. The only invariant enforced at
// write time is room uniqueness: a room with an occupied check-in rejects a
// second one. The check is read-then-write with no transactional guard, a
// known race accepted at front-desk write volume.
func (s *DefaultDeskService) CreateCheckin(ctx context.Context, checkin models.Checkin) (string, error) {
	if checkin.Status == "" {
		checkin.Status = models.CheckinStatusOccupied
	}
	if checkin.Mode == "" {
		checkin.Mode = defaultPaymentMode
	}
	if checkin.Adults == 0 {
		checkin.Adults = 1
	}
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = models.FlexTime{Time: s.now()}
	}

	existing, err := s.Checkins.FindOccupiedByRoom(ctx, checkin.Room)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrRoomOccupied
	}

	return s.Checkins.Create(ctx, checkin)
}

// ListCheckins returns every check-in, historical ones included.
func (s *DefaultDeskService) ListCheckins(ctx context.Context) ([]models.Checkin, error) {
	return s.Checkins.List(ctx)
}
