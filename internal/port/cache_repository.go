package port

import (
	"context"

	"github.com/bakeryshop/cart-service/internal/core/domain"
)

type CacheRepository interface {
	// GetRecipes returns a cached enrichment summary, or ok=false on a miss.
	GetRecipes(ctx context.Context, itemName string) (*domain.RecipeSummary, bool, error)

	// SetRecipes stores an enrichment summary under the item name.
	SetRecipes(ctx context.Context, itemName string, summary domain.RecipeSummary) error
}
