package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")

// User is a marketplace account. Email is the natural key: PUT /users/:email
// upserts, so there is never more than one document per address.
type User struct {
	Email  string `json:"email" bson:"email"`
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	Image  string `json:"image,omitempty" bson:"image,omitempty"`
	Role   string `json:"role,omitempty" bson:"role,omitempty"`
	Status string `json:"status,omitempty" bson:"status,omitempty"`
}
