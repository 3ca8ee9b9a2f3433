package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bakeryshop/cart-service/internal/core/domain"
	"github.com/bakeryshop/cart-service/internal/port"
)

// RecipeService enriches item names with externally sourced recipe data.
// Lookups have no side effects on the store; results are cached with a TTL
// and cache faults degrade to a direct lookup.
type RecipeService struct {
	lookup port.RecipeLookup
	cache  port.CacheRepository
	logger *zap.Logger
}

// NewRecipeService builds the enrichment service. cache may be nil, in which
// case every call hits the external API.
func NewRecipeService(lookup port.RecipeLookup, cache port.CacheRepository, logger *zap.Logger) *RecipeService {
	return &RecipeService{lookup: lookup, cache: cache, logger: logger}
}

func (s *RecipeService) Enrich(ctx context.Context, itemName string) (*domain.RecipeSummary, error) {
	if s.cache != nil {
		summary, ok, err := s.cache.GetRecipes(ctx, itemName)
		if err != nil {
			s.logger.Warn("recipe cache read failed", zap.String("item", itemName), zap.Error(err))
		} else if ok {
			return summary, nil
		}
	}

	result, err := s.lookup.Lookup(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEnrichmentUnavailable, err)
	}

	summary := &domain.RecipeSummary{
		Info:    fmt.Sprintf("Data obtained from %s - %s", result.Title, result.Href),
		Recipes: result.Results,
	}

	if s.cache != nil {
		if err := s.cache.SetRecipes(ctx, itemName, *summary); err != nil {
			s.logger.Warn("recipe cache write failed", zap.String("item", itemName), zap.Error(err))
		}
	}
	return summary, nil
}
