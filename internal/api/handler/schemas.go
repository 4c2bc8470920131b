package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// insertedResponse reports the generated id of a newly created document.
type insertedResponse struct {
	InsertedID string `json:"insertedId"`
}

// --- Users ---

type upsertUserRequest struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// --- Rooms ---

type hostRequest struct {
	Name  string `json:"name"  validate:"required"`
	Image string `json:"image"`
	Email string `json:"email" validate:"required,email"`
}

type roomRequest struct {
	Location    string      `json:"location" validate:"required"`
	Category    string      `json:"category"`
	Title       string      `json:"title"    validate:"required"`
	Image       string      `json:"image"`
	Price       string      `json:"price"    validate:"required"`
	TotalGuest  int         `json:"total_guest"`
	Bedrooms    int         `json:"bedrooms"`
	Bathrooms   int         `json:"bathrooms"`
	Description string      `json:"description"`
	From        string      `json:"from"`
	To          string      `json:"to"`
	Booked      bool        `json:"booked"`
	Host        hostRequest `json:"host" validate:"required"`
}

// updateRoomStatusRequest carries the new booked flag. A pointer
// distinguishes an explicit false from a missing field.
type updateRoomStatusRequest struct {
	Status *bool `json:"status" validate:"required"`
}

// --- Bookings ---

type guestRequest struct {
	Name  string `json:"name"  validate:"required"`
	Image string `json:"image"`
	Email string `json:"email" validate:"required,email"`
}

type createBookingRequest struct {
	Guest         guestRequest `json:"guest"   validate:"required"`
	Host          string       `json:"host"    validate:"required,email"`
	RoomID        string       `json:"room_id" validate:"required"`
	Location      string       `json:"location"`
	Title         string       `json:"title"`
	Image         string       `json:"image"`
	Price         string       `json:"price"`
	From          string       `json:"from"`
	To            string       `json:"to"`
	TransactionID string       `json:"transaction_id"`
}

// --- Tokens & payments ---

type tokenResponse struct {
	Token string `json:"token"`
}

type createPaymentIntentRequest struct {
	Price string `json:"price" validate:"required"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
