package services

import (
	"context"
	"time"

	"gamereviews/internal/models"
	"gamereviews/internal/store"
	"gamereviews/internal/utils"
)

const categoriesCacheKey = "categories:all"

// CategoryService lists categories. Categories are never written by this
// service, so the list is cached for ttl when a cache is supplied.
type CategoryService struct {
	store store.Store
	cache *utils.Cache[[]models.Category]
	ttl   time.Duration
}

func NewCategoryService(s store.Store, cache *utils.Cache[[]models.Category], ttl time.Duration) *CategoryService {
	if ttl <= 0 {
		cache = nil
	}
	return &CategoryService{store: s, cache: cache, ttl: ttl}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if categories, ok := s.cache.Get(categoriesCacheKey); ok {
			return categories, nil
		}
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}

	if s.cache != nil {
		s.cache.Set(categoriesCacheKey, categories, s.ttl)
	}
	return categories, nil
}
