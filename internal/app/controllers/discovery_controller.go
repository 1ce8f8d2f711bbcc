package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/services"
	"github.com/kaito/ideahub/internal/middleware"
)

// DiscoveryController serves the category and popular-tag listings
type DiscoveryController struct {
	discoveryService *services.DiscoveryService
}

// NewDiscoveryController creates a new DiscoveryController
func NewDiscoveryController(discoveryService *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{
		discoveryService: discoveryService,
	}
}

// GetCategories lists the categories currently in use
// @Summary List categories
// @Tags discovery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Categories"
// @Router /categories [get]
func (c *DiscoveryController) GetCategories(ctx *gin.Context) {
	categories, err := c.discoveryService.GetCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(categories))
}

// GetPopularTags lists the most used hashtags
// @Summary List popular tags
// @Tags discovery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TagCount} "Tags, most used first"
// @Router /tags [get]
func (c *DiscoveryController) GetPopularTags(ctx *gin.Context) {
	tags, err := c.discoveryService.GetPopularTags(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tags))
}
