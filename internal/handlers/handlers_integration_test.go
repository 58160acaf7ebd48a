package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"luxe/internal/handlers"
	"luxe/internal/middleware"
	"luxe/internal/models"
	"luxe/internal/repositories"
	"luxe/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp sets up a Fiber app with in-memory SQLite and all handlers and
// services wired the same way as in main. The database is named after the
// test so parallel tests do not share state.
func setupApp(t *testing.T) *fiber.App {
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, nil) // nil for RabbitMQ client
	paymentService := services.NewPaymentService(5 * time.Millisecond)

	app := fiber.New()
	api := app.Group("/api")
	auth := middleware.AuthRequired(authService)

	handlers.NewAuthHandler(authService).RegisterRoutes(api, auth)
	handlers.NewProductHandler(productService).RegisterRoutes(api, auth)
	handlers.NewCartHandler(cartService).RegisterRoutes(api, auth)
	handlers.NewOrderHandler(orderService).RegisterRoutes(api, auth)
	handlers.NewPaymentHandler(paymentService).RegisterRoutes(api, auth)

	return app
}

// doJSON performs a request against the app, JSON-encoding body when present
// and attaching the bearer token when non-empty.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1) // -1 for no timeout
	assert.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerUser registers an account and returns its token.
func registerUser(t *testing.T, app *fiber.App, name, email, role string) string {
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.Empty(t, body.User.Password)
	return body.Token
}

// createListing creates a product as the given seller and returns it.
func createListing(t *testing.T, app *fiber.App, sellerToken string, product fiber.Map) models.Product {
	resp := doJSON(t, app, http.MethodPost, "/api/products", sellerToken, product)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Product
	decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	return created
}

var testAddress = fiber.Map{
	"street":  "1 Fifth Ave",
	"city":    "New York",
	"state":   "NY",
	"zipCode": "10003",
	"country": "USA",
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	// Register a buyer
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Test Buyer",
		"email":    "buyer@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var registerResp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, resp, &registerResp)
	assert.NotEmpty(t, registerResp.Token)
	assert.Equal(t, models.RoleBuyer, registerResp.User.Role)
	assert.Empty(t, registerResp.User.Password)

	// Duplicate registration
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Test Buyer",
		"email":    "buyer@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Login
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "buyer@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, "buyer@example.com", loginResp.User.Email)

	// Wrong password
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "buyer@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Current account
	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", loginResp.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.User
	decode(t, resp, &me)
	assert.Equal(t, "buyer@example.com", me.Email)
	assert.Empty(t, me.Password)

	// No token
	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProductEndpoints(t *testing.T) {
	app := setupApp(t)

	seller1 := registerUser(t, app, "Seller One", "seller1@example.com", models.RoleSeller)
	seller2 := registerUser(t, app, "Seller Two", "seller2@example.com", models.RoleSeller)
	buyer := registerUser(t, app, "Buyer", "buyer@example.com", models.RoleBuyer)

	// Buyers cannot create listings
	resp := doJSON(t, app, http.MethodPost, "/api/products", buyer, fiber.Map{
		"name": "Sneaky Listing", "price": 10.0, "category": "Men",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	jacket := createListing(t, app, seller1, fiber.Map{
		"name":        "Leather Jacket",
		"description": "Handcrafted from full-grain leather",
		"price":       299.0,
		"category":    "Men",
		"size":        []string{"S", "M", "L"},
		"color":       []string{"Black", "Brown"},
		"stock":       50,
		"badge":       models.BadgeNew,
	})
	assert.Equal(t, "Leather Jacket", jacket.Name)
	createListing(t, app, seller1, fiber.Map{
		"name": "Silk Shirt", "price": 159.0, "category": "Women", "stock": 45,
	})
	createListing(t, app, seller2, fiber.Map{
		"name": "Denim Jacket", "price": 129.0, "category": "Men", "stock": 30,
	})

	// Catalog reads are public
	resp = doJSON(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decode(t, resp, &products)
	assert.Len(t, products, 3)

	// Category filter matches exactly
	resp = doJSON(t, app, http.MethodGet, "/api/products?category=Women", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	assert.Len(t, products, 1)
	assert.Equal(t, "Silk Shirt", products[0].Name)

	// Name search is case-insensitive
	resp = doJSON(t, app, http.MethodGet, "/api/products?search=jacket", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	assert.Len(t, products, 2)

	// Single product
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+jacket.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Product
	decode(t, resp, &fetched)
	assert.Equal(t, jacket.ID, fetched.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/products/no-such-id", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Seller dashboard listings
	resp = doJSON(t, app, http.MethodGet, "/api/products/seller/my-products", seller1, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	assert.Len(t, products, 2)

	// Only the owner may update
	resp = doJSON(t, app, http.MethodPut, "/api/products/"+jacket.ID, seller2, fiber.Map{
		"price": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Partial update keeps absent fields
	resp = doJSON(t, app, http.MethodPut, "/api/products/"+jacket.ID, seller1, fiber.Map{
		"price": 279.0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decode(t, resp, &updated)
	assert.Equal(t, 279.0, updated.Price)
	assert.Equal(t, "Leather Jacket", updated.Name)
	assert.Equal(t, 50, updated.Stock)

	// Only the owner may delete
	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+jacket.ID, seller2, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+jacket.ID, seller1, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+jacket.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCartEndpoints(t *testing.T) {
	app := setupApp(t)

	seller := registerUser(t, app, "Seller", "seller@example.com", models.RoleSeller)
	buyer := registerUser(t, app, "Buyer", "buyer@example.com", models.RoleBuyer)

	jacket := createListing(t, app, seller, fiber.Map{
		"name": "Leather Jacket", "price": 299.0, "category": "Men", "stock": 10,
	})

	// Cart requires auth
	resp := doJSON(t, app, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Cart mutations are buyer-only
	resp = doJSON(t, app, http.MethodPost, "/api/cart/add", seller, fiber.Map{
		"productId": jacket.ID, "quantity": 1,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// First add creates the cart implicitly
	resp = doJSON(t, app, http.MethodPost, "/api/cart/add", buyer, fiber.Map{
		"productId": jacket.ID, "quantity": 2, "size": "M", "color": "Black",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cartResp struct {
		Items []models.CartItem `json:"items"`
	}
	decode(t, resp, &cartResp)
	assert.Len(t, cartResp.Items, 1)
	assert.Equal(t, 2, cartResp.Items[0].Quantity)
	if assert.NotNil(t, cartResp.Items[0].Product) {
		assert.Equal(t, "Leather Jacket", cartResp.Items[0].Product.Name)
	}

	// Same product, size and color merges into the existing line
	resp = doJSON(t, app, http.MethodPost, "/api/cart/add", buyer, fiber.Map{
		"productId": jacket.ID, "quantity": 1, "size": "M", "color": "Black",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cartResp)
	assert.Len(t, cartResp.Items, 1)
	assert.Equal(t, 3, cartResp.Items[0].Quantity)

	// A different size is a new line
	resp = doJSON(t, app, http.MethodPost, "/api/cart/add", buyer, fiber.Map{
		"productId": jacket.ID, "quantity": 1, "size": "L", "color": "Black",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cartResp)
	assert.Len(t, cartResp.Items, 2)

	// Invalid quantity and unknown product
	resp = doJSON(t, app, http.MethodPost, "/api/cart/add", buyer, fiber.Map{
		"productId": jacket.ID, "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/cart/add", buyer, fiber.Map{
		"productId": "no-such-id", "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Remove one line
	resp = doJSON(t, app, http.MethodDelete, "/api/cart/remove/"+cartResp.Items[0].ID, buyer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodGet, "/api/cart", buyer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cartResp)
	assert.Len(t, cartResp.Items, 1)

	// Clear empties the cart
	resp = doJSON(t, app, http.MethodDelete, "/api/cart/clear", buyer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodGet, "/api/cart", buyer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cartResp)
	assert.Empty(t, cartResp.Items)
}

func TestCheckoutFlow(t *testing.T) {
	app := setupApp(t)

	seller := registerUser(t, app, "Seller", "seller@example.com", models.RoleSeller)
	buyer := registerUser(t, app, "Buyer", "buyer@example.com", models.RoleBuyer)

	jacket := createListing(t, app, seller, fiber.Map{
		"name": "Leather Jacket", "price": 299.0, "category": "Men", "stock": 10,
	})
	shirt := createListing(t, app, seller, fiber.Map{
		"name": "Silk Shirt", "price": 159.0, "category": "Women", "stock": 5,
	})

	addToCart := func(token, productID string, quantity int) {
		resp := doJSON(t, app, http.MethodPost, "/api/cart/add", token, fiber.Map{
			"productId": productID, "quantity": quantity,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	addToCart(buyer, jacket.ID, 2)
	addToCart(buyer, shirt.ID, 1)

	checkout := fiber.Map{
		"items": []fiber.Map{
			{"product": jacket.ID, "quantity": 2},
			// The client-sent price must be ignored.
			{"product": shirt.ID, "quantity": 1, "price": 1.0},
		},
		"shippingAddress": testAddress,
	}
	resp := doJSON(t, app, http.MethodPost, "/api/orders", buyer, checkout)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	decode(t, resp, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 2*299.0+159.0, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	for _, item := range order.Items {
		if item.ProductID == shirt.ID {
			assert.Equal(t, 159.0, item.Price)
		}
	}
	assert.Equal(t, "10003", order.ShippingAddress.ZipCode)

	// Stock was reserved
	stockOf := func(productID string) int {
		resp := doJSON(t, app, http.MethodGet, "/api/products/"+productID, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var p models.Product
		decode(t, resp, &p)
		return p.Stock
	}
	assert.Equal(t, 8, stockOf(jacket.ID))
	assert.Equal(t, 4, stockOf(shirt.ID))

	// The cart was cleared, so resubmitting the same checkout fails instead
	// of creating a second order.
	var cartResp struct {
		Items []models.CartItem `json:"items"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/cart", buyer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cartResp)
	assert.Empty(t, cartResp.Items)

	resp = doJSON(t, app, http.MethodPost, "/api/orders", buyer, checkout)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/orders/my-orders", buyer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	decode(t, resp, &orders)
	assert.Len(t, orders, 1)

	// Insufficient stock fails the checkout and releases what was already
	// reserved for earlier lines.
	buyer2 := registerUser(t, app, "Second Buyer", "buyer2@example.com", models.RoleBuyer)
	addToCart(buyer2, shirt.ID, 2)
	addToCart(buyer2, jacket.ID, 100)
	resp = doJSON(t, app, http.MethodPost, "/api/orders", buyer2, fiber.Map{
		"items": []fiber.Map{
			{"product": shirt.ID, "quantity": 2},
			{"product": jacket.ID, "quantity": 100},
		},
		"shippingAddress": testAddress,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 8, stockOf(jacket.ID))
	assert.Equal(t, 4, stockOf(shirt.ID))
}

func TestOrderLifecycle(t *testing.T) {
	app := setupApp(t)

	seller1 := registerUser(t, app, "Seller One", "seller1@example.com", models.RoleSeller)
	seller2 := registerUser(t, app, "Seller Two", "seller2@example.com", models.RoleSeller)
	buyer1 := registerUser(t, app, "Buyer One", "buyer1@example.com", models.RoleBuyer)
	buyer2 := registerUser(t, app, "Buyer Two", "buyer2@example.com", models.RoleBuyer)

	jacket := createListing(t, app, seller1, fiber.Map{
		"name": "Leather Jacket", "price": 299.0, "category": "Men", "stock": 10,
	})

	placeOrder := func(buyerToken string, quantity int) models.Order {
		resp := doJSON(t, app, http.MethodPost, "/api/cart/add", buyerToken, fiber.Map{
			"productId": jacket.ID, "quantity": quantity,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, app, http.MethodPost, "/api/orders", buyerToken, fiber.Map{
			"items":           []fiber.Map{{"product": jacket.ID, "quantity": quantity}},
			"shippingAddress": testAddress,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var order models.Order
		decode(t, resp, &order)
		return order
	}
	order := placeOrder(buyer1, 2)

	// Seller order listing is scoped to role and ownership
	resp := doJSON(t, app, http.MethodGet, "/api/orders/seller-orders", buyer1, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	var orders []models.Order
	resp = doJSON(t, app, http.MethodGet, "/api/orders/seller-orders", seller2, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &orders)
	assert.Empty(t, orders)

	resp = doJSON(t, app, http.MethodGet, "/api/orders/seller-orders", seller1, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &orders)
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// Status updates: sellers only, owning seller only, forward only
	statusURL := "/api/orders/" + order.ID + "/status"
	resp = doJSON(t, app, http.MethodPut, statusURL, buyer1, fiber.Map{"status": "shipped"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, statusURL, seller2, fiber.Map{"status": "shipped"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, statusURL, seller1, fiber.Map{"status": "shipped"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Order
	decode(t, resp, &updated)
	assert.Equal(t, models.StatusShipped, updated.Status)

	resp = doJSON(t, app, http.MethodPut, statusURL, seller1, fiber.Map{"status": "processing"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPut, statusURL, seller1, fiber.Map{"status": "misplaced"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPut, statusURL, seller1, fiber.Map{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, statusURL, seller1, fiber.Map{"status": "delivered"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &updated)
	assert.Equal(t, models.StatusDelivered, updated.Status)

	// Delivered is terminal, even for the owning buyer
	resp = doJSON(t, app, http.MethodPut, "/api/orders/"+order.ID+"/cancel", buyer1, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Cancellation restores stock and is buyer-owned
	order2 := placeOrder(buyer1, 3)

	resp = doJSON(t, app, http.MethodPut, "/api/orders/"+order2.ID+"/cancel", buyer2, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/orders/"+order2.ID+"/cancel", buyer1, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cancelled models.Order
	decode(t, resp, &cancelled)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+jacket.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var p models.Product
	decode(t, resp, &p)
	assert.Equal(t, 8, p.Stock) // 10 - 2 for the delivered order, the 3 came back

	// Cancelling twice fails
	resp = doJSON(t, app, http.MethodPut, "/api/orders/"+order2.ID+"/cancel", buyer1, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPaymentEndpoints(t *testing.T) {
	app := setupApp(t)
	buyer := registerUser(t, app, "Buyer", "buyer@example.com", models.RoleBuyer)

	// Payment requires auth
	resp := doJSON(t, app, http.MethodPost, "/api/payment/create-payment-intent", "", fiber.Map{
		"amount": 100.0,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/payment/create-payment-intent", buyer, fiber.Map{
		"amount": 757.0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var intentResp map[string]string
	decode(t, resp, &intentResp)
	assert.Contains(t, intentResp["clientSecret"], "pi_secret_")

	resp = doJSON(t, app, http.MethodPost, "/api/payment/create-payment-intent", buyer, fiber.Map{
		"amount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/payment/confirm-payment", buyer, fiber.Map{
		"paymentIntentId": "pi_test123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var confirmResp struct {
		Success       bool                   `json:"success"`
		PaymentIntent services.PaymentIntent `json:"paymentIntent"`
	}
	decode(t, resp, &confirmResp)
	assert.True(t, confirmResp.Success)
	assert.Equal(t, "succeeded", confirmResp.PaymentIntent.Status)
}
