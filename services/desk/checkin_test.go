package desk

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/models"
)

func TestCreateCheckin_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, checkins, _, _ := newTestService(now)

	id, err := svc.CreateCheckin(context.Background(), models.Checkin{
		Name:  "Asha Verma",
		Phone: "9876543210",
		Room:  "101",
		Rate:  1200,
	})
	if err != nil {
		t.Fatalf("expected check-in to succeed, got: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty id")
	}

	got := checkins.checkins[0]
	if got.Status != models.CheckinStatusOccupied {
		t.Errorf("status = %q, want %q", got.Status, models.CheckinStatusOccupied)
	}
	if got.Mode != "Cash" {
		t.Errorf("mode = %q, want Cash", got.Mode)
	}
	if got.Adults != 1 {
		t.Errorf("adults = %d, want 1", got.Adults)
	}
	if !got.CreatedAt.Time.Equal(now) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt.Time, now)
	}
}

func TestCreateCheckin_RoomConflict(t *testing.T) {
	svc, checkins, _, _ := newTestService(time.Now().UTC())
	ctx := context.Background()

	if _, err := svc.CreateCheckin(ctx, models.Checkin{Name: "Asha Verma", Phone: "9876543210", Room: "101"}); err != nil {
		t.Fatalf("first check-in failed: %v", err)
	}

	_, err := svc.CreateCheckin(ctx, models.Checkin{Name: "Rohit Nair", Phone: "9123456780", Room: "101"})
	if !errors.Is(err, ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied, got: %v", err)
	}
	if len(checkins.checkins) != 1 {
		t.Fatalf("conflicting check-in must not be persisted, have %d records", len(checkins.checkins))
	}
}

func TestCreateCheckin_RoomFreeAfterCheckout(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, _, _, _ := newTestService(start)
	ctx := context.Background()

	if _, err := svc.CreateCheckin(ctx, models.Checkin{Name: "Asha Verma", Phone: "9876543210", Room: "101"}); err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if _, err := svc.Checkout(ctx, "101", "9876543210"); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// The room is free again once the stay is closed.
	if _, err := svc.CreateCheckin(ctx, models.Checkin{Name: "Rohit Nair", Phone: "9123456780", Room: "101"}); err != nil {
		t.Fatalf("check-in after checkout failed: %v", err)
	}
}

func TestListCheckins_Idempotent(t *testing.T) {
	svc, _, _, _ := newTestService(time.Now().UTC())
	ctx := context.Background()

	for _, room := range []string{"101", "102"} {
		if _, err := svc.CreateCheckin(ctx, models.Checkin{Name: "Guest " + room, Phone: "9" + room, Room: room}); err != nil {
			t.Fatalf("check-in failed: %v", err)
		}
	}

	first, err := svc.ListCheckins(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	second, err := svc.ListCheckins(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("want 2 records from both lists, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("list results differ at %d without intervening writes", i)
		}
	}
}
