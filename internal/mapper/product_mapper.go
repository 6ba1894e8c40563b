// Package mapper copies persisted catalog entities into their transport shapes.
package mapper

import "catalog/internal/models"

// ToProductDTO maps a Product to a ProductDTO, reviews included.
// A nil review list becomes an empty one so clients always receive an array.
func ToProductDTO(product models.Product) models.ProductDTO {
	reviews := make([]models.ReviewDTO, 0, len(product.Reviews))
	for _, r := range product.Reviews {
		reviews = append(reviews, ToReviewDTO(r))
	}
	return models.ProductDTO{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Category: product.Category,
		Reviews:  reviews,
	}
}

// ToReviewDTO maps a Review to a ReviewDTO.
func ToReviewDTO(review models.Review) models.ReviewDTO {
	return models.ReviewDTO{
		Name:        review.Name,
		Description: review.Description,
		Rating:      review.Rating,
	}
}

// ToProductDTOs maps a slice of products, keeping their order.
func ToProductDTOs(products []models.Product) []models.ProductDTO {
	dtos := make([]models.ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ToProductDTO(p))
	}
	return dtos
}
