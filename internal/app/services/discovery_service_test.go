package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kaito/ideahub/internal/app/models/dto"
)

func TestGetCategories_NoCacheConfigured(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := NewDiscoveryService(ideaRepo, nil, zerolog.Nop())

	ideaRepo.On("Categories", mock.Anything).Return([]string{"health", "technology"}, nil)

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"health", "technology"}, categories)
}

func TestGetPopularTags(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := NewDiscoveryService(ideaRepo, nil, zerolog.Nop())

	ideaRepo.On("TopTags", mock.Anything).Return([]dto.TagCount{
		{Tag: "solar", Count: 12},
		{Tag: "ai", Count: 7},
	}, nil)

	tags, err := svc.GetPopularTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "solar", tags[0].Tag)
	assert.Equal(t, int64(12), tags[0].Count)
}
