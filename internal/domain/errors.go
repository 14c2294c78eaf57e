package domain

import "errors"

var (
	// ErrNotFound is returned when a product is not part of the store
	ErrNotFound = errors.New("product not found")

	// ErrAlreadyExists is returned when a product with the same name is already stocked
	ErrAlreadyExists = errors.New("product already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfStock is returned when a purchase exceeds the available stock
	ErrOutOfStock = errors.New("not enough stock available")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)
