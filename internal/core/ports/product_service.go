package ports

import (
	"context"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// ProductInput carries the fields of a product create or full update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

// ProductService defines the CRUD use-cases for the product catalogue.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
