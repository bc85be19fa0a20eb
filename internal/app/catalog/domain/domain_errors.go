package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price cannot be negative")
	ErrInvalidRating   = errors.New("product rating must be between 0 and 5")
	ErrInvalidReviews  = errors.New("product review count cannot be negative")
	ErrInvalidCategory = errors.New("unknown product category")
)
