package billRepo

import (
	"context"

	"frontdesk/database"
	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository abstracts bill persistence. Bills are created only through
// FinalizeCheckout, which also settles the consumed orders and frees the
// room in the same transaction.
type Repository interface {
	List(ctx context.Context) ([]models.Bill, error)
	// MarkPaid settles the bill with the given business id. The returned
	// bool reports whether any bill matched.
	MarkPaid(ctx context.Context, billID, mode string) (bool, error)
	// FinalizeCheckout atomically inserts the bill, flags the consumed
	// orders as synced, and marks the check-in as checked out.
	FinalizeCheckout(ctx context.Context, bill models.Bill, orderIDs []primitive.ObjectID, checkinID primitive.ObjectID) error
}

type mongoBillRepo struct {
	billColl    *mongo.Collection
	orderColl   *mongo.Collection
	checkinColl *mongo.Collection
}

// NewMongoBillRepo returns a new Repository instance using MongoDB.
func NewMongoBillRepo() Repository {
	db := database.DB()
	return &mongoBillRepo{
		billColl:    db.Collection("bill"),
		orderColl:   db.Collection("order"),
		checkinColl: db.Collection("checkin"),
	}
}
