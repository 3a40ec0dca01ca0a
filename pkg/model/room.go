package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Room is the external room service's wire representation. This service never
// persists rooms itself; the type exists for the create-forwarding payload and
// for decoding mirror reads.
type Room struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Number      string             `json:"number" bson:"number"`
	Type        string             `json:"type" bson:"type"`
	Price       float64            `json:"price" bson:"price"`
	Available   bool               `json:"available" bson:"available"`
	BookedBy    *string            `json:"bookedBy" bson:"bookedBy"`
	Maintenance bool               `json:"maintenance" bson:"maintenance"`
}

// RoomSummary is the trimmed view attached to booking listings and the
// newBooking event.
type RoomSummary struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id"`
	Number string             `json:"number" bson:"number"`
	Type   string             `json:"type" bson:"type"`
	Price  float64            `json:"price" bson:"price"`
}

// NewRoomRequest is the admin create-room payload. Any client-supplied _id is
// dropped; the room service assigns identifiers.
type NewRoomRequest struct {
	Number string  `json:"number" validate:"required"`
	Type   string  `json:"type" validate:"required"`
	Price  float64 `json:"price" validate:"gte=0"`
}
