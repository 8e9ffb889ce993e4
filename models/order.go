package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order types and statuses.
const (
	OrderTypeInhouse = "inhouse"
	OrderTypeOutside = "outside"

	OrderStatusUnpaid = "Unpaid"
	OrderStatusPaid   = "Paid"
)

// OrderItem is a single line of a food order. It has no identity of its own.
type OrderItem struct {
	Name  string  `bson:"name" json:"name"`
	Qty   int     `bson:"qty" json:"qty" binding:"min=0"`
	Price float64 `bson:"price" json:"price" binding:"min=0"`
}

// Order is a food order, either attributed to an occupied room (inhouse) or
// placed by a walk-in customer (outside). Unpaid inhouse orders are folded
// into the final bill at checkout and flagged as synced.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Type      string             `bson:"type" json:"type"` // inhouse | outside
	Room      string             `bson:"room,omitempty" json:"room,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string             `bson:"phone" json:"phone" binding:"required"`
	Items     []OrderItem        `bson:"items" json:"items" binding:"dive"`
	Total     float64            `bson:"total" json:"total"`
	Status    string             `bson:"status" json:"status"` // Unpaid | Paid (free text, not enforced)
	Mode      string             `bson:"mode" json:"mode"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Synced    bool               `bson:"synced" json:"synced"`
}
