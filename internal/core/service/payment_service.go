package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SantoSarker101/airbnb-server/internal/api/metrics"
	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// PaymentService converts a decimal price string into a payment intent.
type PaymentService struct {
	provider ports.PaymentProvider
	currency string
	logger   zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, currency string, logger zerolog.Logger) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{provider: provider, currency: currency, logger: logger}
}

// CreateIntent parses the price, converts it to minor currency units and
// requests an intent from the processor. Absent or non-numeric prices are
// rejected with ErrInvalidPrice rather than silently dropped.
func (s *PaymentService) CreateIntent(ctx context.Context, price string) (string, error) {
	amount, err := parseAmount(price)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("rejected").Inc()
		return "", err
	}

	secret, err := s.provider.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Int64("amount", amount).Msg("payment intent creation failed")
		return "", err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Int64("amount", amount).Str("currency", s.currency).Msg("payment intent created")
	return secret, nil
}

// parseAmount converts a decimal price string to integer minor units.
func parseAmount(price string) (int64, error) {
	price = strings.TrimSpace(price)
	if price == "" {
		return 0, domain.ErrInvalidPrice
	}

	f, err := strconv.ParseFloat(price, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, domain.ErrInvalidPrice
	}

	return int64(math.Round(f * 100)), nil
}
