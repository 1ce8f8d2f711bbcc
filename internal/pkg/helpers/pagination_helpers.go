package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaito/ideahub/internal/app/models/dto"
)

const (
	DefaultPageSize       = 10
	DefaultSearchPageSize = 20
	MaxPageSize           = 100
	DefaultPage           = 1 // 1-based
)

// NormalizePageParams clamps page and limit to valid values. A limit outside
// (0, MaxPageSize] falls back to the given default.
func NormalizePageParams(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 || limit > MaxPageSize {
		limit = defaultLimit
	}
	return page, limit
}

// GetPageParams reads the page and limit query parameters from a request,
// applying defaults and bounds.
func GetPageParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	return NormalizePageParams(page, limit, defaultLimit)
}

// NewPaginationInfo creates a standard PaginationInfo DTO. page is 1-based.
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	page, limit = NormalizePageParams(page, limit, DefaultPageSize)
	return dto.PaginationInfo{
		Page:  page,
		Limit: limit,
		Total: total,
	}
}
