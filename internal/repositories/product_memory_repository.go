package repositories

import (
	"context"
	"sync"

	"catalog/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order, like a collection without a sort.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

// Find returns a page of products.
func (r *MemoryProductRepository) Find(_ context.Context, skip, limit int64) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.products))
	if skip < 0 {
		skip = 0
	}
	if skip >= total {
		return []models.Product{}, nil
	}
	end := total
	if limit > 0 && skip+limit < total {
		end = skip + limit
	}

	page := make([]models.Product, 0, end-skip)
	for _, p := range r.products[skip:end] {
		page = append(page, clone(p))
	}
	return page, nil
}

// FindByID returns a product by its ID.
func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	product := clone(r.products[i])
	return &product, nil
}

// Insert appends a product under a freshly generated ObjectID.
func (r *MemoryProductRepository) Insert(_ context.Context, product *models.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(*product)
	stored.ID = bson.NewObjectID().Hex()
	r.products = append(r.products, stored)
	return stored.ID, nil
}

// Update overwrites the mutable fields of an existing product.
// A missing product is still an acknowledged write with no match.
func (r *MemoryProductRepository) Update(_ context.Context, product *models.Product) (*WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return &WriteResult{Acknowledged: true}, nil
	}
	updated := clone(*product)
	updated.ID = r.products[i].ID
	r.products[i] = updated
	return &WriteResult{Acknowledged: true, MatchedCount: 1}, nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) (*WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return &WriteResult{Acknowledged: true}, nil
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return &WriteResult{Acknowledged: true, MatchedCount: 1}, nil
}

// Ping always succeeds.
func (r *MemoryProductRepository) Ping(context.Context) error {
	return nil
}

func (r *MemoryProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func clone(p models.Product) models.Product {
	if p.Reviews != nil {
		p.Reviews = append([]models.Review(nil), p.Reviews...)
	}
	return p
}
