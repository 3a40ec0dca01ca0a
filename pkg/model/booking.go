package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is the stored record linking a guest to a room reservation.
// The room reference points into the external room service's inventory;
// it is never validated against it at write time.
type Booking struct {
	ID        primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	RoomID    *primitive.ObjectID `json:"room,omitempty" bson:"room,omitempty"`
	GuestName string              `json:"guestName" bson:"guestName"`
	Date      time.Time           `json:"date" bson:"date"`
}

// BookingWithRoom is the admin listing view: a booking joined with the room
// summary resolved from the local mirror. Room is null when the referenced
// room no longer exists.
type BookingWithRoom struct {
	ID        primitive.ObjectID `json:"_id"`
	GuestName string             `json:"guestName"`
	Date      time.Time          `json:"date"`
	Room      *RoomSummary       `json:"room"`
}

// BookRequest is the public booking-creation payload. The room* fields are
// optional display hints used for the newBooking event when the mirror has
// no record of the room yet.
type BookRequest struct {
	RoomID     string  `json:"roomId" validate:"required,mongodb"`
	GuestName  string  `json:"guestName" validate:"required,min=1,max=100"`
	RoomNumber string  `json:"roomNumber,omitempty"`
	RoomType   string  `json:"roomType,omitempty"`
	RoomPrice  float64 `json:"roomPrice,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
