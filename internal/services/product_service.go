package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"catalog/internal/mapper"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"

	"github.com/rs/zerolog"
)

// ProductEventPublisher sends product change notifications.
type ProductEventPublisher interface {
	PublishProductEvent(event rabbitmq.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher ProductEventPublisher
	logger    zerolog.Logger
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher ProductEventPublisher, logger zerolog.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateProduct stores product and returns the identifier assigned by the store.
// The identifier is also written back to product.ID.
// Store failures are returned as-is.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (string, error) {
	product.ID = ""
	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		return "", err
	}
	product.ID = id

	s.publish(rabbitmq.ProductCreated, id)
	return id, nil
}

// ListProducts returns page number page (1-based) of size products in store order.
func (s *ProductService) ListProducts(ctx context.Context, page, size int) ([]models.ProductDTO, error) {
	if page < 1 || size < 1 {
		return nil, ErrInvalidPagination
	}
	// The offset must fit in an int64 or the store would see a negative skip.
	if int64(page-1) > math.MaxInt64/int64(size) {
		return nil, ErrInvalidPagination
	}

	skip := int64(page-1) * int64(size)
	products, err := s.repo.Find(ctx, skip, int64(size))
	if err != nil {
		return nil, err
	}
	return mapper.ToProductDTOs(products), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	dto := mapper.ToProductDTO(*product)
	return &dto, nil
}

// UpdateProduct overwrites name, category, price and reviews of product.ID.
// Only an unacknowledged write is a failure; an acknowledged write that
// matched nothing succeeds.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := s.repo.Update(ctx, product)
	if err != nil {
		return err
	}
	if !res.Acknowledged {
		return ErrUpdateFailed
	}

	s.publish(rabbitmq.ProductUpdated, product.ID)
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !res.Acknowledged {
		return ErrDeleteFailed
	}

	s.publish(rabbitmq.ProductDeleted, id)
	return nil
}

// Ping reports whether the product store is reachable.
func (s *ProductService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("product store unavailable: %w", err)
	}
	return nil
}

func (s *ProductService) publish(eventType, productID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(rabbitmq.NewProductEvent(eventType, productID)); err != nil {
		s.logger.Warn().Err(err).Str("type", eventType).Str("product_id", productID).Msg("failed to publish product event")
	}
}
