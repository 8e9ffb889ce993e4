package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Check-in statuses. Stored as plain strings for compatibility with
// documents written by the legacy front-desk service.
const (
	CheckinStatusOccupied   = "Occupied"
	CheckinStatusCheckedOut = "Checked-out"
)

// Checkin is a guest's occupancy record for a room. At most one Occupied
// check-in may exist per room at any time.
type Checkin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Phone     string             `bson:"phone" json:"phone" binding:"required"`
	IDType    string             `bson:"idtype,omitempty" json:"idtype,omitempty"`    // e.g. "Passport", "Driving License"
	IDNumber  string             `bson:"idnumber,omitempty" json:"idnumber,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Room      string             `bson:"room" json:"room" binding:"required"`
	RoomType  string             `bson:"roomType,omitempty" json:"roomType,omitempty"`
	Rate      float64            `bson:"rate" json:"rate"`       // nightly rate
	Adults    int                `bson:"adults" json:"adults"`   // defaults to 1
	Children  int                `bson:"children" json:"children"`
	Advance   float64            `bson:"advance" json:"advance"` // advance payment, deducted at checkout
	Mode      string             `bson:"mode" json:"mode"`       // payment mode of the advance
	Remarks   string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	CreatedAt FlexTime           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Status    string             `bson:"status" json:"status"` // Occupied or Checked-out
}
