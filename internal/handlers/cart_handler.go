package handlers

import (
	"log"

	"luxe/internal/models"
	"luxe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the buyer's cart. All routes
// require authentication.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cartRoutes := router.Group("/cart", auth)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddItem)
	cartRoutes.Delete("/remove/:itemId", h.HandleRemoveItem)
	cartRoutes.Delete("/clear", h.HandleClearCart)
}

// AddToCartRequest represents the request body for adding a cart line.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// HandleGetCart returns the caller's cart items with product details
// resolved. A missing cart is an empty list.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	items, err := h.service.GetCart(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
	})
}

// HandleAddItem adds a product to the caller's cart, merging with an
// existing (product, size, color) line when present. Buyers only.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != models.RoleBuyer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Only buyers can modify a cart",
		})
	}

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart add request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	userID, _ := c.Locals("user_id").(string)
	items, err := h.service.AddItem(userID, req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
	})
}

// HandleRemoveItem deletes a single line item from the caller's cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != models.RoleBuyer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Only buyers can modify a cart",
		})
	}

	userID, _ := c.Locals("user_id").(string)
	if err := h.service.RemoveItem(userID, c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleClearCart empties the caller's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != models.RoleBuyer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Only buyers can modify a cart",
		})
	}

	userID, _ := c.Locals("user_id").(string)
	if err := h.service.ClearCart(userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
