package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/repositories"
	"github.com/kaito/ideahub/internal/pkg/cache"
)

// Cache keys for discovery lookups
const (
	cacheKeyCategories = "discovery:categories"
	cacheKeyTags       = "discovery:tags"
)

// DiscoveryService serves the category and popular-tag listings. Results are
// cached in Redis when a cache is configured; both lookups aggregate over the
// whole ideas table.
type DiscoveryService struct {
	ideaRepo repositories.IIdeaRepository
	cache    *cache.Cache
	logger   zerolog.Logger
}

// NewDiscoveryService creates a new DiscoveryService
func NewDiscoveryService(ideaRepo repositories.IIdeaRepository, cache *cache.Cache, logger zerolog.Logger) *DiscoveryService {
	return &DiscoveryService{
		ideaRepo: ideaRepo,
		cache:    cache,
		logger:   logger,
	}
}

// GetCategories returns the distinct categories in use.
func (s *DiscoveryService) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if s.cache.Get(ctx, cacheKeyCategories, &categories) {
		return categories, nil
	}

	categories, err := s.ideaRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKeyCategories, categories)
	return categories, nil
}

// GetPopularTags returns the most used hashtags, most frequent first.
func (s *DiscoveryService) GetPopularTags(ctx context.Context) ([]dto.TagCount, error) {
	var tags []dto.TagCount
	if s.cache.Get(ctx, cacheKeyTags, &tags) {
		return tags, nil
	}

	tags, err := s.ideaRepo.TopTags(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKeyTags, tags)
	return tags, nil
}
