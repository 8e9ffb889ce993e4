package billRepo

import (
	"context"
	"time"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// List returns every bill record.
func (r *mongoBillRepo) List(ctx context.Context) ([]models.Bill, error) {
	cursor, err := r.billColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bills []models.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// MarkPaid settles a bill by its business id. Re-paying a paid bill
// succeeds and overwrites mode and timestamp; there is no double-payment
// guard.
func (r *mongoBillRepo) MarkPaid(ctx context.Context, billID, mode string) (bool, error) {
	update := bson.M{"$set": bson.M{
		"status":    models.BillStatusPaid,
		"mode":      mode,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.billColl.UpdateOne(ctx, bson.M{"id": billID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
