package checkinRepo

import (
	"context"
	"time"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new check-in and returns its store id as a hex string.
func (r *mongoCheckinRepo) Create(ctx context.Context, checkin models.Checkin) (string, error) {
	res, err := r.coll.InsertOne(ctx, checkin)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns every check-in record, historical ones included.
func (r *mongoCheckinRepo) List(ctx context.Context) ([]models.Checkin, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkins []models.Checkin
	if err := cursor.All(ctx, &checkins); err != nil {
		return nil, err
	}
	return checkins, nil
}

// FindOccupiedByRoom returns the active check-in for a room, or nil if the
// room is free.
func (r *mongoCheckinRepo) FindOccupiedByRoom(ctx context.Context, room string) (*models.Checkin, error) {
	var checkin models.Checkin
	err := r.coll.FindOne(ctx, bson.M{"room": room, "status": models.CheckinStatusOccupied}).Decode(&checkin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

// FindActive returns the occupied check-in matching both room and phone, or
// nil when no such stay exists.
func (r *mongoCheckinRepo) FindActive(ctx context.Context, room, phone string) (*models.Checkin, error) {
	var checkin models.Checkin
	filter := bson.M{"room": room, "phone": phone, "status": models.CheckinStatusOccupied}
	err := r.coll.FindOne(ctx, filter).Decode(&checkin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

// MarkCheckedOut frees the room held by the given check-in.
func (r *mongoCheckinRepo) MarkCheckedOut(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"status":    models.CheckinStatusCheckedOut,
		"updatedAt": time.Now().UTC(),
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
