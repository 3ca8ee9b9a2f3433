package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bakeryshop/cart-service/internal/core/domain"
	"github.com/bakeryshop/cart-service/internal/port"
)

// InventoryService serves inventory reads merged with recipe enrichment.
type InventoryService struct {
	db      port.DatabaseRepository
	recipes *RecipeService
	logger  *zap.Logger
}

func NewInventoryService(db port.DatabaseRepository, recipes *RecipeService, logger *zap.Logger) *InventoryService {
	return &InventoryService{db: db, recipes: recipes, logger: logger}
}

func (s *InventoryService) Get(ctx context.Context, itemName string) (*domain.InventoryDetail, error) {
	item, err := s.db.GetInventory(ctx, itemName)
	if err != nil {
		return nil, err
	}

	summary, err := s.recipes.Enrich(ctx, itemName)
	if err != nil {
		return nil, err
	}

	return &domain.InventoryDetail{
		InventoryItem: *item,
		RecipeSummary: *summary,
	}, nil
}
