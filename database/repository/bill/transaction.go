package billRepo

import (
	"context"
	"fmt"
	"time"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FinalizeCheckout writes the checkout result in a single transaction: the
// bill insert, the synced flag on every folded order, and the room release.
// An abort leaves no partial writes, so a failed checkout can simply be
// retried. The order id set is the one fetched by the caller; orders whose
// status changed since that read are still flagged.
//
// Requires a transaction-capable deployment (replica set).
func (r *mongoBillRepo) FinalizeCheckout(
	ctx context.Context,
	bill models.Bill,
	orderIDs []primitive.ObjectID,
	checkinID primitive.ObjectID,
) error {
	client := r.billColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now().UTC()

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.billColl.InsertOne(sc, bill); err != nil {
			return fmt.Errorf("insert bill failed: %w", err)
		}

		if len(orderIDs) > 0 {
			update := bson.M{"$set": bson.M{"synced": true, "updatedAt": now}}
			if _, err := r.orderColl.UpdateMany(sc, bson.M{"_id": bson.M{"$in": orderIDs}}, update); err != nil {
				return fmt.Errorf("mark orders synced failed: %w", err)
			}
		}

		update := bson.M{"$set": bson.M{
			"status":    models.CheckinStatusCheckedOut,
			"updatedAt": now,
		}}
		res, err := r.checkinColl.UpdateOne(sc, bson.M{"_id": checkinID}, update)
		if err != nil {
			return fmt.Errorf("free room failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("check-in %s vanished before checkout completed", checkinID.Hex())
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("checkout transaction failed: %w", err)
	}

	return nil
}
