package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill statuses.
const (
	BillStatusUnpaid = "Unpaid"
	BillStatusPaid   = "Paid"
)

// Bill is the final statement produced at checkout. BillID is the
// human-readable business identifier ("BILL-XXXXXXXX") used by clients;
// the store id stays internal. Total = RoomCharges + FoodTotal + Tax −
// Advance, computed once at creation and never recomputed.
type Bill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BillID      string             `bson:"id" json:"id"`
	Guest       string             `bson:"guest" json:"guest"`
	Phone       string             `bson:"phone" json:"phone"`
	Room        string             `bson:"room" json:"room"`
	Nights      int                `bson:"nights" json:"nights"`
	RoomCharges float64            `bson:"roomCharges" json:"roomCharges"`
	FoodTotal   float64            `bson:"foodTotal" json:"foodTotal"`
	Advance     float64            `bson:"advance" json:"advance"`
	Tax         float64            `bson:"tax" json:"tax"`
	Total       float64            `bson:"total" json:"total"`
	Status      string             `bson:"status" json:"status"`
	Mode        string             `bson:"mode" json:"mode"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
