package services

import (
	"fmt"

	"luxe/internal/models"
	"luxe/internal/repositories"
)

// ProductService handles business logic for the catalog. Create, update and
// delete are scoped to the owning seller.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts retrieves products matching the filter.
func (s *ProductService) ListProducts(filter models.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetSellerProducts retrieves all listings owned by a seller.
func (s *ProductService) GetSellerProducts(sellerID string) ([]models.Product, error) {
	return s.repo.GetBySeller(sellerID)
}

// CreateProduct creates a new listing owned by the given seller.
func (s *ProductService) CreateProduct(sellerID string, product *models.Product) error {
	product.SellerID = sellerID
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update to an existing listing. Absent
// fields keep their current value. Only the owning seller may update.
func (s *ProductService) UpdateProduct(sellerID, id string, updates models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, fmt.Errorf("product %s belongs to another seller: %w", id, models.ErrForbidden)
	}

	if updates.Name != "" {
		product.Name = updates.Name
	}
	if updates.Description != "" {
		product.Description = updates.Description
	}
	if updates.Price > 0 {
		product.Price = updates.Price
	}
	if updates.Category != "" {
		product.Category = updates.Category
	}
	if updates.Size != nil {
		product.Size = updates.Size
	}
	if updates.Color != nil {
		product.Color = updates.Color
	}
	if updates.Stock != nil {
		product.Stock = *updates.Stock
	}
	if updates.Badge != "" {
		product.Badge = updates.Badge
	}
	if updates.Discount != nil {
		product.Discount = *updates.Discount
	}
	if updates.Image != "" {
		product.Image = updates.Image
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a listing. Only the owning seller may delete.
func (s *ProductService) DeleteProduct(sellerID, id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product.SellerID != sellerID {
		return fmt.Errorf("product %s belongs to another seller: %w", id, models.ErrForbidden)
	}
	return s.repo.Delete(id)
}
