package domain

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrInvalidID    = errors.New("invalid document id")
)

// Host is the nested owner sub-record embedded in a room listing.
type Host struct {
	Name  string `json:"name" bson:"name"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
	Email string `json:"email" bson:"email"`
}

// Room is a rental listing. The id is generated by the persistence layer at
// insert time and exposed as its hex form.
type Room struct {
	ID          string `json:"_id,omitempty" bson:"-"`
	Location    string `json:"location" bson:"location"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Title       string `json:"title" bson:"title"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	Price       string `json:"price" bson:"price"`
	TotalGuest  int    `json:"total_guest,omitempty" bson:"total_guest,omitempty"`
	Bedrooms    int    `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms   int    `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	From        string `json:"from,omitempty" bson:"from,omitempty"`
	To          string `json:"to,omitempty" bson:"to,omitempty"`
	Booked      bool   `json:"booked" bson:"booked"`
	Host        Host   `json:"host" bson:"host"`
}
