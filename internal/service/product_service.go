package service

import (
	"context"
	"errors"
	"fmt"

	"products-api/internal/domain"
	"products-api/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductService defines the product transitions exposed over HTTP
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, name string, price float64) (*domain.Product, error)
	Update(ctx context.Context, id int64, name string, price float64, availability bool) (*domain.Product, error)
	ToggleAvailability(ctx context.Context, id int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get product")
	}
	return product, nil
}

// Create persists a new product; availability always starts as true
func (s *productService) Create(ctx context.Context, name string, price float64) (*domain.Product, error) {
	product := domain.NewProduct(name, price)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update replaces every mutable field of an existing product
func (s *productService) Update(ctx context.Context, id int64, name string, price float64, availability bool) (*domain.Product, error) {
	product := &domain.Product{ID: id}
	product.Replace(name, price, availability)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, translate(err, "failed to update product")
	}
	return product, nil
}

// ToggleAvailability negates the stored availability
func (s *productService) ToggleAvailability(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.ToggleAvailability(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to toggle availability")
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return translate(err, "failed to delete product")
	}
	return nil
}

func translate(err error, action string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return fmt.Errorf("%s: %w", action, err)
}
