package repositories

import (
	"context"
	"errors"

	"catalog/internal/models"
)

// ErrProductNotFound is returned when no document matches the requested ID.
var ErrProductNotFound = errors.New("product not found")

// WriteResult reports how the store handled a write.
// Acknowledged is false when the write concern did not request an acknowledgement.
type WriteResult struct {
	Acknowledged bool
	MatchedCount int64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Find(ctx context.Context, skip, limit int64) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) (string, error)
	Update(ctx context.Context, product *models.Product) (*WriteResult, error)
	Delete(ctx context.Context, id string) (*WriteResult, error)
	Ping(ctx context.Context) error
}
