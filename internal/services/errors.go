package services

import "errors"

// Domain errors returned by ProductService. Their messages are shown to API clients.
var (
	ErrProductNotFound   = errors.New("Product not found")
	ErrUpdateFailed      = errors.New("Failed to update product")
	ErrDeleteFailed      = errors.New("Failed to delete product")
	ErrInvalidPagination = errors.New("page and size must be greater than zero and within range")
)
