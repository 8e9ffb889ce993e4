package checkinRepo

import (
	"context"

	"frontdesk/database"
	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository abstracts check-in persistence so the desk service can run
// against an in-memory fake in tests.
type Repository interface {
	Create(ctx context.Context, checkin models.Checkin) (string, error)
	List(ctx context.Context) ([]models.Checkin, error)
	FindOccupiedByRoom(ctx context.Context, room string) (*models.Checkin, error)
	FindActive(ctx context.Context, room, phone string) (*models.Checkin, error)
	MarkCheckedOut(ctx context.Context, id primitive.ObjectID) error
}

type mongoCheckinRepo struct {
	coll *mongo.Collection
}

// NewMongoCheckinRepo returns a new Repository instance using MongoDB.
func NewMongoCheckinRepo() Repository {
	return &mongoCheckinRepo{
		coll: database.DB().Collection("checkin"),
	}
}
