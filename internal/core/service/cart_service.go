package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bakeryshop/cart-service/internal/core/domain"
	"github.com/bakeryshop/cart-service/internal/port"
)

// CartService moves stock between the inventory ledger and per-user carts.
// Both directions run inside a single store transaction, so the total amount
// of an item across inventory and carts is conserved.
type CartService struct {
	db     port.DatabaseRepository
	logger *zap.Logger
}

func NewCartService(db port.DatabaseRepository, logger *zap.Logger) *CartService {
	return &CartService{db: db, logger: logger}
}

func (s *CartService) AddItem(ctx context.Context, username, itemName string, quantity int) ([]domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.db.AddItemToCart(ctx, user.ID, itemName, quantity); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return nil, err
		}
		return nil, fmt.Errorf("add %q to cart: %w", itemName, err)
	}

	s.logger.Info("item added to cart",
		zap.String("username", username),
		zap.String("item", itemName),
		zap.Int("quantity", quantity),
	)

	return s.db.GetCart(ctx, user.ID)
}

// RemoveItem releases quantity units of an item back into inventory. A
// non-positive quantity means one unit. Amounts above the held quantity are
// clamped, so a large quantity empties the cart line.
func (s *CartService) RemoveItem(ctx context.Context, username, itemName string, quantity int) ([]domain.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	removed, err := s.db.RemoveItemFromCart(ctx, user.ID, itemName, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotInCart) {
			return nil, err
		}
		return nil, fmt.Errorf("remove %q from cart: %w", itemName, err)
	}

	s.logger.Info("item removed from cart",
		zap.String("username", username),
		zap.String("item", itemName),
		zap.Int("quantity", removed),
	)

	return s.db.GetCart(ctx, user.ID)
}
