package orderRepo

import (
	"context"
	"time"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Create inserts a new order and returns its store id as a hex string.
func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns every order record.
func (r *mongoOrderRepo) List(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindUnpaidInhouse returns the unpaid in-house orders for a room. The
// checkout flow folds these into the final bill; the filter deliberately
// ignores phone so every unpaid order for the room is billed.
func (r *mongoOrderRepo) FindUnpaidInhouse(ctx context.Context, room string) ([]models.Order, error) {
	filter := bson.M{
		"type":   models.OrderTypeInhouse,
		"room":   room,
		"status": models.OrderStatusUnpaid,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkSynced flags the given orders as folded into a bill. Operates on the
// exact id set the caller fetched earlier, not a re-evaluated filter.
func (r *mongoOrderRepo) MarkSynced(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	update := bson.M{"$set": bson.M{
		"synced":    true,
		"updatedAt": time.Now().UTC(),
	}}
	_, err := r.coll.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, update)
	return err
}
