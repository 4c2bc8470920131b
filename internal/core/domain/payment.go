package domain

import "errors"

var ErrInvalidPrice = errors.New("invalid price")

// ErrMissingEmailClaim is returned when a token issuance request carries no
// email claim; every authorization decision in the system keys off it.
var ErrMissingEmailClaim = errors.New("claim must contain an email")
