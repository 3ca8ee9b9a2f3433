package port

import (
	"context"

	"github.com/bakeryshop/cart-service/internal/core/domain"
)

type DatabaseRepository interface {
	// CreateUser persists a new account; returns domain.ErrDuplicateUser
	// when the username is already taken.
	CreateUser(ctx context.Context, user domain.User) error

	// GetUserByUsername retrieves an account or domain.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetInventory retrieves an inventory row or domain.ErrItemNotFound.
	GetInventory(ctx context.Context, itemName string) (*domain.InventoryItem, error)

	// ReleaseStock increments inventory, creating the row when absent.
	ReleaseStock(ctx context.Context, itemName string, quantity int) error

	// AddItemToCart moves quantity from inventory into the user's cart in a
	// single transaction. Returns domain.ErrInsufficientStock when the
	// reservation cannot be satisfied; nothing is mutated in that case.
	AddItemToCart(ctx context.Context, userID, itemName string, quantity int) error

	// RemoveItemFromCart moves up to quantity units from the user's cart back
	// into inventory in a single transaction, keeping the zeroed cart row.
	// Returns the amount actually removed, or domain.ErrNotInCart when the
	// cart line is absent or already empty.
	RemoveItemFromCart(ctx context.Context, userID, itemName string, quantity int) (int, error)

	// GetCart returns the user's cart lines in insertion order.
	GetCart(ctx context.Context, userID string) ([]domain.CartItem, error)
}
