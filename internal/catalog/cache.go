package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour            = 60 * 60
	catalogCacheExpire = oneHour // seconds

	foodsCacheKey     = "catalog::foods"
	exercisesCacheKey = "catalog::exercises"
)

// CachedRepo is a read-through cache in front of the catalog repo.
// The catalog changes rarely, so whole listings are cached as JSON
// blobs with a one hour TTL; single-entity lookups go through the
// cached listings too.
type CachedRepo struct {
	repo  catalogSource
	cache *freecache.Cache
}

type catalogSource interface {
	ListFoods(ctx context.Context) ([]FoodItem, error)
	PopularFoods(ctx context.Context, limit int) ([]FoodItem, error)
	GetFood(ctx context.Context, id string) (*FoodItem, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	GetExercise(ctx context.Context, id string) (*Exercise, error)
}

func NewCachedRepo(repo catalogSource) *CachedRepo {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &CachedRepo{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (c *CachedRepo) ListFoods(ctx context.Context) ([]FoodItem, error) {
	if cachedBytes, err := c.cache.Get([]byte(foodsCacheKey)); err == nil {
		var foods []FoodItem
		unmarshalErr := json.Unmarshal(cachedBytes, &foods)
		if unmarshalErr == nil {
			return foods, nil
		}
		log.Errorf("failed to unmarshal cached foods: %s", unmarshalErr)
	}

	foods, err := c.repo.ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	foodsJson, err := json.Marshal(foods)
	if err != nil {
		log.Errorf("failed to marshal foods for cache: %s", err)
		return foods, nil
	}
	if err := c.cache.Set([]byte(foodsCacheKey), foodsJson, catalogCacheExpire); err != nil {
		log.Debugf("failed to cache foods: %s", err)
	}

	return foods, nil
}

func (c *CachedRepo) PopularFoods(ctx context.Context, limit int) ([]FoodItem, error) {
	foods, err := c.ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	var popular []FoodItem
	for _, f := range foods {
		if !f.IsPopular {
			continue
		}
		popular = append(popular, f)
		if len(popular) == limit {
			break
		}
	}

	return popular, nil
}

func (c *CachedRepo) GetFood(ctx context.Context, id string) (*FoodItem, error) {
	foods, err := c.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	for i := range foods {
		if foods[i].ID == id {
			return &foods[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFoodNotFound, id)
}

func (c *CachedRepo) ListExercises(ctx context.Context) ([]Exercise, error) {
	if cachedBytes, err := c.cache.Get([]byte(exercisesCacheKey)); err == nil {
		var exercises []Exercise
		unmarshalErr := json.Unmarshal(cachedBytes, &exercises)
		if unmarshalErr == nil {
			return exercises, nil
		}
		log.Errorf("failed to unmarshal cached exercises: %s", unmarshalErr)
	}

	exercises, err := c.repo.ListExercises(ctx)
	if err != nil {
		return nil, err
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises for cache: %s", err)
		return exercises, nil
	}
	if err := c.cache.Set([]byte(exercisesCacheKey), exercisesJson, catalogCacheExpire); err != nil {
		log.Debugf("failed to cache exercises: %s", err)
	}

	return exercises, nil
}

func (c *CachedRepo) GetExercise(ctx context.Context, id string) (*Exercise, error) {
	exercises, err := c.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ID == id {
			return &exercises[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
}

// Clear drops all cached catalog data.
func (c *CachedRepo) Clear() {
	c.cache.Clear()
}
