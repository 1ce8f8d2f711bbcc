package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/repositories"
	"github.com/kaito/ideahub/internal/app/services"
	"github.com/kaito/ideahub/internal/middleware"
	"github.com/kaito/ideahub/internal/pkg/helpers"
)

// IdeaController handles the idea lifecycle endpoints
type IdeaController struct {
	ideaService *services.IdeaService
	userService *services.UserService
}

// NewIdeaController creates a new IdeaController
func NewIdeaController(ideaService *services.IdeaService, userService *services.UserService) *IdeaController {
	return &IdeaController{
		ideaService: ideaService,
		userService: userService,
	}
}

// listFilter reads the common listing query parameters.
func listFilter(ctx *gin.Context, defaultLimit int) repositories.IdeaFilter {
	filter := repositories.IdeaFilter{
		SortBy: ctx.Query("sort"),
	}
	filter.Page, filter.Limit = helpers.GetPageParams(ctx, defaultLimit)

	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}
	// tag and q are accepted as aliases for tags and query.
	tags := ctx.Query("tags")
	if tags == "" {
		tags = ctx.Query("tag")
	}
	if tags != "" {
		filter.Tags = helpers.NormalizeTags(strings.Split(tags, ","))
	}
	text := ctx.Query("query")
	if text == "" {
		text = ctx.Query("q")
	}
	if text != "" {
		filter.Text = &text
	}
	if raw := ctx.Query("minRating"); raw != "" {
		if minRating, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinRating = &minRating
		}
	}
	return filter
}

// ListIdeas lists ideas with optional filtering and sorting
// @Summary List ideas
// @Tags ideas
// @Produce json
// @Param category query string false "Filter by category"
// @Param tags query string false "Comma-separated tag filter"
// @Param sort query string false "Sort key" Enums(newest, mostLiked, highestRated, mostCommented)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse "Ideas"
// @Failure 400 {object} dto.APIResponse "Invalid category"
// @Router /ideas [get]
func (c *IdeaController) ListIdeas(ctx *gin.Context) {
	ideas, pagination, err := c.ideaService.ListIdeas(ctx, listFilter(ctx, helpers.DefaultPageSize))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(ideas, pagination))
}

// SearchIdeas searches ideas; at least one filter parameter is required
// @Summary Search ideas
// @Tags ideas
// @Produce json
// @Param query query string false "Free text over title and content (q is accepted as an alias)"
// @Param category query string false "Filter by category"
// @Param tags query string false "Comma-separated tag filter (tag is accepted as an alias)"
// @Param minRating query number false "Minimum average rating"
// @Param sort query string false "Sort key" Enums(newest, mostLiked, highestRated, mostCommented)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListResponse "Matching ideas"
// @Failure 400 {object} dto.APIResponse "No search filter given"
// @Router /ideas/search [get]
func (c *IdeaController) SearchIdeas(ctx *gin.Context) {
	ideas, pagination, err := c.ideaService.SearchIdeas(ctx, listFilter(ctx, helpers.DefaultSearchPageSize))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(ideas, pagination))
}

// GetIdea returns one idea with its likes, comments, evaluations and branches
// @Summary Get idea details
// @Tags ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {object} dto.APIResponse{data=models.Idea} "Idea"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id} [get]
func (c *IdeaController) GetIdea(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	idea, err := c.ideaService.GetIdea(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(idea))
}

// CreateIdea creates a new idea
// @Summary Create an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateIdeaRequest true "Idea content"
// @Success 201 {object} dto.APIResponse{data=models.Idea} "Created idea"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /ideas [post]
func (c *IdeaController) CreateIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateIdeaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid idea data: "+err.Error()))
		return
	}

	idea, err := c.ideaService.CreateIdea(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(idea))
}

// UpdateIdea updates an idea; author only
// @Summary Update an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Param request body dto.UpdateIdeaRequest true "New idea content"
// @Success 200 {object} dto.APIResponse{data=models.Idea} "Updated idea"
// @Failure 403 {object} dto.APIResponse "Not the author"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id} [put]
func (c *IdeaController) UpdateIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateIdeaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid idea data: "+err.Error()))
		return
	}

	idea, err := c.ideaService.UpdateIdea(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(idea))
}

// DeleteIdea removes an idea; author or admin only
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 403 {object} dto.APIResponse "Not the author or an admin"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id} [delete]
func (c *IdeaController) DeleteIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.ideaService.DeleteIdea(ctx, userID, middleware.GetUserRole(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("idea deleted"))
}

// LikeIdea toggles the caller's like on an idea
// @Summary Like or unlike an idea
// @Description Adds a like, or removes it when the idea is already liked
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} dto.LikeResponse "Like state"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id}/like [post]
func (c *IdeaController) LikeIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.ideaService.ToggleLike(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UnlikeIdea removes the caller's like on an idea
// @Summary Unlike an idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} dto.LikeResponse "Like state"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id}/like [delete]
func (c *IdeaController) UnlikeIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.ideaService.Unlike(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CommentIdea adds a comment to an idea
// @Summary Comment on an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Param request body dto.CommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=models.Comment} "Created comment"
// @Failure 400 {object} dto.APIResponse "Empty comment"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id}/comment [post]
func (c *IdeaController) CommentIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid comment data: "+err.Error()))
		return
	}

	comment, err := c.ideaService.AddComment(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// EvaluateIdea records or replaces the caller's evaluation of an idea
// @Summary Evaluate an idea
// @Description Scores the idea on the fixed criteria; a repeat submission replaces the previous evaluation
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Param request body dto.EvaluateRequest true "Criterion scores"
// @Success 200 {object} dto.EvaluateResponse "Recomputed rating"
// @Failure 400 {object} dto.APIResponse "Invalid scores"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id}/evaluate [post]
func (c *IdeaController) EvaluateIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid evaluation data: "+err.Error()))
		return
	}

	resp, err := c.ideaService.Evaluate(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// BranchIdea forks an idea into a new child idea
// @Summary Branch an idea
// @Description Creates a new idea derived from an existing one; category and hashtags default to the parent's
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Parent idea ID"
// @Param request body dto.BranchRequest true "Branch content"
// @Success 201 {object} dto.APIResponse{data=models.Idea} "Created branch"
// @Failure 404 {object} dto.APIResponse "Parent idea not found"
// @Router /ideas/{id}/branch [post]
func (c *IdeaController) BranchIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.BranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid branch data: "+err.Error()))
		return
	}

	child, err := c.ideaService.Branch(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(child))
}

// SaveIdea bookmarks an idea for the caller
// @Summary Save an idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} dto.APIResponse "Saved"
// @Failure 404 {object} dto.APIResponse "Idea not found"
// @Router /ideas/{id}/save [post]
func (c *IdeaController) SaveIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.SaveIdea(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("idea saved"))
}

// UnsaveIdea removes a bookmark
// @Summary Unsave an idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} dto.APIResponse "Removed"
// @Router /ideas/{id}/save [delete]
func (c *IdeaController) UnsaveIdea(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.UnsaveIdea(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("idea removed from saved"))
}
