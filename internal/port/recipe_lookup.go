package port

import (
	"context"

	"github.com/bakeryshop/cart-service/internal/core/domain"
)

type RecipeLookup interface {
	// Lookup queries the external recipe search API for an item name.
	Lookup(ctx context.Context, itemName string) (*domain.RecipeResult, error)
}
