package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIdeaListQuery_Defaults(t *testing.T) {
	sql, args, err := BuildIdeaListQuery(IdeaFilter{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM ideas i")
	assert.Contains(t, sql, "ORDER BY i.created_at DESC, i.id DESC")
	assert.Contains(t, sql, "LIMIT 10 OFFSET 0")
	assert.Empty(t, args)
}

func TestBuildIdeaListQuery_SortKeys(t *testing.T) {
	tests := []struct {
		sortBy  string
		orderBy string
	}{
		{SortNewest, "ORDER BY i.created_at DESC"},
		{SortMostLiked, "ORDER BY likes_count DESC"},
		{SortHighestRated, "ORDER BY i.average_rating DESC"},
		{SortMostCommented, "ORDER BY comments_count DESC"},
		{"garbage", "ORDER BY i.created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			sql, _, err := BuildIdeaListQuery(IdeaFilter{SortBy: tt.sortBy, Page: 1, Limit: 10})
			require.NoError(t, err)
			assert.Contains(t, sql, tt.orderBy)
		})
	}
}

func TestBuildIdeaListQuery_Filters(t *testing.T) {
	category := "technology"
	text := "solar"
	minRating := 3.5

	filter := IdeaFilter{
		Category:  &category,
		Tags:      []string{"energy", "climate"},
		Text:      &text,
		MinRating: &minRating,
		Page:      2,
		Limit:     20,
	}

	sql, args, err := BuildIdeaListQuery(filter)
	require.NoError(t, err)

	assert.Contains(t, sql, "i.category = $1")
	assert.Contains(t, sql, "i.hash_tags && $2")
	assert.Contains(t, sql, "i.title ILIKE $3")
	assert.Contains(t, sql, "i.content ILIKE $4")
	assert.Contains(t, sql, "i.average_rating >= $5")
	assert.Contains(t, sql, "OFFSET 20")

	require.Len(t, args, 5)
	assert.Equal(t, "technology", args[0])
	assert.Equal(t, []string{"energy", "climate"}, args[1])
	assert.Equal(t, "%solar%", args[2])
	assert.Equal(t, 3.5, args[4])
}

func TestBuildIdeaListQuery_MembershipFilters(t *testing.T) {
	userID := int64(42)

	sql, args, err := BuildIdeaListQuery(IdeaFilter{LikedBy: &userID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM idea_likes l WHERE l.idea_id = i.id AND l.user_id = $1)")
	assert.Equal(t, []interface{}{userID}, args)

	sql, _, err = BuildIdeaListQuery(IdeaFilter{SavedBy: &userID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, sql, "user_saved_ideas")
}

func TestBuildIdeaCountQuery(t *testing.T) {
	category := "health"
	sql, args, err := BuildIdeaCountQuery(IdeaFilter{Category: &category})
	require.NoError(t, err)

	assert.Contains(t, sql, "SELECT COUNT(*) FROM ideas i")
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []interface{}{"health"}, args)
}

func TestIdeaFilterHasSearchCriteria(t *testing.T) {
	assert.False(t, IdeaFilter{}.HasSearchCriteria())
	assert.False(t, IdeaFilter{SortBy: SortMostLiked, Page: 3}.HasSearchCriteria())

	text := "robot"
	assert.True(t, IdeaFilter{Text: &text}.HasSearchCriteria())
	assert.True(t, IdeaFilter{Tags: []string{"ai"}}.HasSearchCriteria())
}
