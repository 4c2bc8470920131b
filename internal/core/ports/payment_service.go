package ports

import "context"

// PaymentProvider is the outbound port to the payment processor.
type PaymentProvider interface {
	// CreateIntent requests a payment intent for amount in minor currency
	// units and returns the client-usable secret.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// PaymentService turns a client-submitted decimal price into a payment
// intent client secret.
type PaymentService interface {
	CreateIntent(ctx context.Context, price string) (string, error)
}
