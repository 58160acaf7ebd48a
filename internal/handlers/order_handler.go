package handlers

import (
	"log"

	"luxe/internal/models"
	"luxe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders. All routes require
// authentication.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/my-orders", h.HandleMyOrders)
	orderRoutes.Get("/seller-orders", h.HandleSellerOrders)
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Put("/:id/cancel", h.HandleCancelOrder)
}

// CheckoutItem is one line of a checkout request. The client may send a
// price but it is ignored; the order service snapshots the catalog price.
type CheckoutItem struct {
	ProductID string  `json:"product" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Price     float64 `json:"price"`
}

// CreateOrderRequest represents the checkout request body.
type CreateOrderRequest struct {
	Items           []CheckoutItem         `json:"items" validate:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress" validate:"required"`
}

// HandleCreateOrder converts the caller's cart into an order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	buyerID, _ := c.Locals("user_id").(string)
	order, err := h.service.CreateOrder(buyerID, items, req.ShippingAddress)
	if err != nil {
		log.Printf("Error creating order for buyer %s: %v", buyerID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleMyOrders retrieves the caller's orders, newest first.
func (h *OrderHandler) HandleMyOrders(c *fiber.Ctx) error {
	buyerID, _ := c.Locals("user_id").(string)
	orders, err := h.service.GetMyOrders(buyerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleSellerOrders retrieves orders containing the caller's products.
// Sellers only.
func (h *OrderHandler) HandleSellerOrders(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != models.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	sellerID, _ := c.Locals("user_id").(string)
	orders, err := h.service.GetSellerOrders(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// UpdateStatusRequest represents the request body for a status update.
type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus moves an order forward along the fulfilment
// chain. Sellers only; the order service additionally checks the caller
// owns at least one line item.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != models.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	sellerID, _ := c.Locals("user_id").(string)
	order, err := h.service.UpdateOrderStatus(sellerID, c.Params("id"), req.Status)
	if err != nil {
		log.Printf("Error updating status for order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleCancelOrder cancels an order on behalf of the owning buyer.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	buyerID, _ := c.Locals("user_id").(string)
	order, err := h.service.CancelOrder(buyerID, c.Params("id"))
	if err != nil {
		log.Printf("Error cancelling order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(order)
}
