package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexTime decodes both native BSON datetimes and the ISO-8601 strings that
// some legacy front-desk documents carry in createdAt. Values that cannot be
// parsed decode to the zero time; callers decide how to fall back.
type FlexTime struct {
	time.Time
}

func (t FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

func (t *FlexTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	switch bt {
	case bsontype.DateTime:
		var parsed time.Time
		if err := bson.UnmarshalValue(bt, data, &parsed); err != nil {
			return err
		}
		t.Time = parsed
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(bt, data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			// ISO-8601 without a zone offset.
			parsed, err = time.Parse("2006-01-02T15:04:05", s)
		}
		if err != nil {
			t.Time = time.Time{}
			return nil
		}
		t.Time = parsed
	default:
		t.Time = time.Time{}
	}
	return nil
}
