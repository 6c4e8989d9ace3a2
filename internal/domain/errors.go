package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrInvalidCatalog    = errors.New("invalid content catalog")
	ErrInvalidSubmission = errors.New("invalid contact submission")
)
