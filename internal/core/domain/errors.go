package domain

import "errors"

var (
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrNotInCart             = errors.New("item not in cart")
	ErrDuplicateUser         = errors.New("username already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrItemNotFound          = errors.New("item not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrEnrichmentUnavailable = errors.New("recipe enrichment unavailable")
)
