package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"luxe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// confirmTimeout bounds how long a confirmation request may wait on the
// simulated provider before the client gets a retryable failure.
const confirmTimeout = 10 * time.Second

// PaymentHandler handles HTTP requests for the simulated payment provider.
// All routes require authentication.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	paymentRoutes := router.Group("/payment", auth)
	paymentRoutes.Post("/create-payment-intent", h.HandleCreateIntent)
	paymentRoutes.Post("/confirm-payment", h.HandleConfirmPayment)
}

// CreateIntentRequest represents the request body for a payment intent.
type CreateIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// HandleCreateIntent registers a simulated payment intent.
func (h *PaymentHandler) HandleCreateIntent(c *fiber.Ctx) error {
	var req CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment intent body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	intent, err := h.service.CreateIntent(req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"clientSecret": intent.ClientSecret,
	})
}

// ConfirmPaymentRequest represents the request body for confirmation.
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

// HandleConfirmPayment waits for the simulated provider to confirm. A
// provider that takes too long yields 503 so the client can retry instead
// of hanging.
func (h *PaymentHandler) HandleConfirmPayment(c *fiber.Ctx) error {
	var req ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment confirm body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), confirmTimeout)
	defer cancel()

	intent, err := h.service.ConfirmPayment(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": "Payment confirmation timed out, please retry",
			})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"paymentIntent": intent,
	})
}
