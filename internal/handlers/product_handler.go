package handlers

import (
	"log"

	"luxe/internal/models"
	"luxe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app. Reads are
// public, mutations go through the auth middleware. The static
// /seller/my-products route must be registered before /:id so the param
// route does not capture it.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/seller/my-products", auth, h.HandleMyProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", auth, h.HandleCreateProduct)
	productRoutes.Put("/:id", auth, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", auth, h.HandleDeleteProduct)
}

// HandleListProducts retrieves products, optionally filtered by exact
// category and a case-insensitive name search.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	products, err := h.service.ListProducts(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleMyProducts retrieves the authenticated seller's own listings.
func (h *ProductHandler) HandleMyProducts(c *fiber.Ctx) error {
	sellerID, _ := c.Locals("user_id").(string)
	products, err := h.service.GetSellerProducts(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a new listing. Sellers only.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != models.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Only sellers can add products",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(product); err != nil {
		return respondValidationError(c, err)
	}

	sellerID, _ := c.Locals("user_id").(string)
	if err := h.service.CreateProduct(sellerID, &product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a listing. Only the
// owning seller may update.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var updates models.ProductUpdate
	if err := c.BodyParser(&updates); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(updates); err != nil {
		return respondValidationError(c, err)
	}

	sellerID, _ := c.Locals("user_id").(string)
	product, err := h.service.UpdateProduct(sellerID, c.Params("id"), updates)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a listing. Only the owning seller may delete.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	sellerID, _ := c.Locals("user_id").(string)
	if err := h.service.DeleteProduct(sellerID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
