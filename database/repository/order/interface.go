package orderRepo

import (
	"context"

	"frontdesk/database"
	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository abstracts order persistence.
type Repository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	List(ctx context.Context) ([]models.Order, error)
	FindUnpaidInhouse(ctx context.Context, room string) ([]models.Order, error)
	MarkSynced(ctx context.Context, ids []primitive.ObjectID) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns a new Repository instance using MongoDB.
func NewMongoOrderRepo() Repository {
	return &mongoOrderRepo{
		coll: database.DB().Collection("order"),
	}
}
