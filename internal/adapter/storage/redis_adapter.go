package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bakeryshop/cart-service/internal/core/domain"
)

const (
	recipeKeyPrefix  = "recipes:"
	defaultRecipeTTL = 1 * time.Hour
)

type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	if ttl <= 0 {
		ttl = defaultRecipeTTL
	}
	return &RedisAdapter{client: client, ttl: ttl}
}

func (r *RedisAdapter) GetRecipes(ctx context.Context, itemName string) (*domain.RecipeSummary, bool, error) {
	raw, err := r.client.Get(ctx, recipeKeyPrefix+itemName).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var summary domain.RecipeSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

func (r *RedisAdapter) SetRecipes(ctx context.Context, itemName string, summary domain.RecipeSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, recipeKeyPrefix+itemName, raw, r.ttl).Err()
}
