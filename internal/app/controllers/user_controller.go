package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/services"
	"github.com/kaito/ideahub/internal/middleware"
	"github.com/kaito/ideahub/internal/pkg/helpers"
)

// UserController handles profile, follow and saved idea operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// GetMyProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /users/me [get]
func (c *UserController) GetMyProfile(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	profile, err := c.userService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateMyProfile applies a partial update to the authenticated user's profile
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Updated profile"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /users/me [put]
func (c *UserController) UpdateMyProfile(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid profile data: "+err.Error()))
		return
	}

	profile, err := c.userService.UpdateProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetUserProfile returns another user's public profile
// @Summary Get a user's profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.userService.GetProfile(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetUserIdeas lists a user's ideas, newest first
// @Summary List a user's ideas
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse "Ideas"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id}/ideas [get]
func (c *UserController) GetUserIdeas(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	page, limit := helpers.GetPageParams(ctx, helpers.DefaultPageSize)
	ideas, pagination, err := c.userService.GetUserIdeas(ctx, id, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(ideas, pagination))
}

// GetLikedIdeas lists the ideas the authenticated user has liked
// @Summary List liked ideas
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse "Ideas"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /users/me/liked-ideas [get]
func (c *UserController) GetLikedIdeas(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	page, limit := helpers.GetPageParams(ctx, helpers.DefaultPageSize)
	ideas, pagination, err := c.userService.GetLikedIdeas(ctx, userID, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(ideas, pagination))
}

// GetSavedIdeas lists the ideas the authenticated user has bookmarked
// @Summary List saved ideas
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse "Ideas"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /users/me/saved-ideas [get]
func (c *UserController) GetSavedIdeas(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	page, limit := helpers.GetPageParams(ctx, helpers.DefaultPageSize)
	ideas, pagination, err := c.userService.GetSavedIdeas(ctx, userID, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(ideas, pagination))
}

// FollowUser makes the authenticated user follow another user
// @Summary Follow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID to follow"
// @Success 200 {object} dto.APIResponse "Followed"
// @Failure 400 {object} dto.APIResponse "Cannot follow yourself"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id}/follow [post]
func (c *UserController) FollowUser(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Follow(ctx, userID, targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("user followed"))
}

// UnfollowUser removes a follow relation
// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID to unfollow"
// @Success 200 {object} dto.APIResponse "Unfollowed"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id}/follow [delete]
func (c *UserController) UnfollowUser(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Unfollow(ctx, userID, targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("user unfollowed"))
}
