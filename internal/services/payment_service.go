package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"luxe/internal/models"

	"github.com/google/uuid"
)

// PaymentService simulates a card payment provider. Intents always succeed
// after a fixed confirmation delay; there is no real gateway behind this.
type PaymentService struct {
	confirmDelay time.Duration
}

// NewPaymentService creates a new PaymentService. confirmDelay is how long
// a confirmation takes before the simulated provider answers.
func NewPaymentService(confirmDelay time.Duration) *PaymentService {
	return &PaymentService{
		confirmDelay: confirmDelay,
	}
}

// PaymentIntent mirrors the provider-side payment object.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"` // in cents
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CreateIntent registers a payment for the given amount and hands back the
// client secret the storefront needs to confirm it.
func (s *PaymentService) CreateIntent(amount float64) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", models.ErrInvalidInput)
	}

	ref := strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	return &PaymentIntent{
		ID:           "pi_" + ref,
		ClientSecret: "pi_secret_" + ref,
		Amount:       int64(math.Round(amount * 100)),
		Currency:     "usd",
		Status:       "requires_payment_method",
	}, nil
}

// ConfirmPayment waits out the simulated provider delay and reports
// success. If the caller's context expires first the confirmation is
// abandoned with a retryable error instead of leaving the client hanging.
func (s *PaymentService) ConfirmPayment(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	if paymentIntentID == "" {
		return nil, fmt.Errorf("paymentIntentId is required: %w", models.ErrInvalidInput)
	}

	select {
	case <-time.After(s.confirmDelay):
		return &PaymentIntent{
			ID:     paymentIntentID,
			Status: "succeeded",
		}, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("payment confirmation for %s abandoned, retry: %w", paymentIntentID, ctx.Err())
	}
}
