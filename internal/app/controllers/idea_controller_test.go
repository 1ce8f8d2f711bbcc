package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaito/ideahub/internal/pkg/helpers"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/api/ideas/search?"+rawQuery, nil)
	return ctx
}

func TestListFilter_ReadsParameters(t *testing.T) {
	ctx := queryContext(t, "query=solar&tags=ai,Energy&category=technology&sort=mostLiked&minRating=3.5&page=2&limit=5")

	filter := listFilter(ctx, helpers.DefaultSearchPageSize)

	require.NotNil(t, filter.Text)
	assert.Equal(t, "solar", *filter.Text)
	assert.Equal(t, []string{"ai", "energy"}, filter.Tags)
	require.NotNil(t, filter.Category)
	assert.Equal(t, "technology", *filter.Category)
	assert.Equal(t, "mostLiked", filter.SortBy)
	require.NotNil(t, filter.MinRating)
	assert.Equal(t, 3.5, *filter.MinRating)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 5, filter.Limit)
}

func TestListFilter_ShortAliases(t *testing.T) {
	ctx := queryContext(t, "q=solar&tag=ai")

	filter := listFilter(ctx, helpers.DefaultSearchPageSize)

	require.NotNil(t, filter.Text)
	assert.Equal(t, "solar", *filter.Text)
	assert.Equal(t, []string{"ai"}, filter.Tags)
	assert.True(t, filter.HasSearchCriteria())
}

func TestListFilter_LongFormsWinOverAliases(t *testing.T) {
	ctx := queryContext(t, "query=solar&q=wind&tags=ai&tag=ml")

	filter := listFilter(ctx, helpers.DefaultSearchPageSize)

	require.NotNil(t, filter.Text)
	assert.Equal(t, "solar", *filter.Text)
	assert.Equal(t, []string{"ai"}, filter.Tags)
}

func TestListFilter_Empty(t *testing.T) {
	ctx := queryContext(t, "")

	filter := listFilter(ctx, helpers.DefaultSearchPageSize)

	assert.Nil(t, filter.Text)
	assert.Empty(t, filter.Tags)
	assert.False(t, filter.HasSearchCriteria())
	assert.Equal(t, helpers.DefaultPage, filter.Page)
	assert.Equal(t, helpers.DefaultSearchPageSize, filter.Limit)
}
