package domain

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

// Guest is the nested traveller sub-record embedded in a booking.
type Guest struct {
	Name  string `json:"name" bson:"name"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
	Email string `json:"email" bson:"email"`
}

// Booking is a reservation record. Room, host and guest details are
// denormalized copies taken from the submitted payload; nothing here is
// verified against the rooms collection.
type Booking struct {
	ID            string `json:"_id,omitempty" bson:"-"`
	Guest         Guest  `json:"guest" bson:"guest"`
	Host          string `json:"host" bson:"host"`
	RoomID        string `json:"room_id" bson:"room_id"`
	Location      string `json:"location,omitempty" bson:"location,omitempty"`
	Title         string `json:"title,omitempty" bson:"title,omitempty"`
	Image         string `json:"image,omitempty" bson:"image,omitempty"`
	Price         string `json:"price,omitempty" bson:"price,omitempty"`
	From          string `json:"from,omitempty" bson:"from,omitempty"`
	To            string `json:"to,omitempty" bson:"to,omitempty"`
	TransactionID string `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
}
