package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/repositories"
	"github.com/kaito/ideahub/internal/pkg/apperrors"
	"github.com/kaito/ideahub/internal/pkg/cache"
	"github.com/kaito/ideahub/internal/pkg/helpers"
)

// IdeaService handles the idea lifecycle: creation, updates, likes, comments,
// evaluations and branches.
type IdeaService struct {
	ideaRepo repositories.IIdeaRepository
	userRepo repositories.IUserRepository
	cache    *cache.Cache
	logger   zerolog.Logger
}

// NewIdeaService creates a new IdeaService
func NewIdeaService(ideaRepo repositories.IIdeaRepository, userRepo repositories.IUserRepository, cache *cache.Cache, logger zerolog.Logger) *IdeaService {
	return &IdeaService{
		ideaRepo: ideaRepo,
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

// invalidateDiscovery drops the cached category and tag aggregates. Called on
// every write that can change them.
func (s *IdeaService) invalidateDiscovery(ctx context.Context) {
	s.cache.Invalidate(ctx, cacheKeyCategories, cacheKeyTags)
}

// resolveTags returns the normalized hashtags for an idea. When none were
// submitted, tags are extracted from #tokens in the content.
func resolveTags(tags []string, content string) []string {
	if len(tags) > 0 {
		return helpers.NormalizeTags(tags)
	}
	return helpers.ExtractHashtags(content)
}

// CreateIdea creates a new idea authored by userID.
func (s *IdeaService) CreateIdea(ctx context.Context, userID int64, req *dto.CreateIdeaRequest) (*models.Idea, error) {
	category := models.Category(req.Category)
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idea := &models.Idea{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Category:  category,
		HashTags:  resolveTags(req.HashTags, req.Content),
		CreatedBy: author.ID,
		UserName:  author.Name,
		UserImage: author.Image,
	}

	if _, err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("ideaId", idea.ID).Int64("userId", userID).Msg("Idea created")
	s.invalidateDiscovery(ctx)
	idea.Likes = []int64{}
	idea.Comments = []*models.Comment{}
	idea.Evaluations = []*models.Evaluation{}
	idea.Branches = []*models.BranchSummary{}
	return idea, nil
}

// GetIdea returns an idea with all its relations loaded.
func (s *IdeaService) GetIdea(ctx context.Context, ideaID int64) (*models.Idea, error) {
	return s.ideaRepo.GetByID(ctx, ideaID)
}

// UpdateIdea rewrites an idea's content. Only the author may update.
func (s *IdeaService) UpdateIdea(ctx context.Context, userID, ideaID int64, req *dto.UpdateIdeaRequest) (*models.Idea, error) {
	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea.CreatedBy != userID {
		return nil, apperrors.NewForbiddenError("only the author can update this idea")
	}

	category := models.Category(req.Category)
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	idea.Title = strings.TrimSpace(req.Title)
	idea.Content = req.Content
	idea.Category = category
	idea.HashTags = resolveTags(req.HashTags, req.Content)

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, err
	}
	s.invalidateDiscovery(ctx)
	return s.ideaRepo.GetByID(ctx, ideaID)
}

// DeleteIdea removes an idea. The author or an admin may delete.
func (s *IdeaService) DeleteIdea(ctx context.Context, userID int64, role models.RoleType, ideaID int64) error {
	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		return err
	}
	if idea.CreatedBy != userID && role != models.RoleAdmin {
		return apperrors.NewForbiddenError("only the author or an admin can delete this idea")
	}

	if err := s.ideaRepo.Delete(ctx, ideaID); err != nil {
		return err
	}
	s.logger.Info().Int64("ideaId", ideaID).Int64("userId", userID).Msg("Idea deleted")
	s.invalidateDiscovery(ctx)
	return nil
}

// ToggleLike likes an idea, or removes the like when one already exists.
func (s *IdeaService) ToggleLike(ctx context.Context, ideaID, userID int64) (*dto.LikeResponse, error) {
	exists, err := s.ideaRepo.Exists(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrIdeaNotFound
	}

	liked, count, err := s.ideaRepo.ToggleLike(ctx, ideaID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{Success: true, LikesCount: int(count), IsLiked: liked}, nil
}

// Unlike removes a like regardless of current state.
func (s *IdeaService) Unlike(ctx context.Context, ideaID, userID int64) (*dto.LikeResponse, error) {
	exists, err := s.ideaRepo.Exists(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrIdeaNotFound
	}

	count, err := s.ideaRepo.Unlike(ctx, ideaID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{Success: true, LikesCount: int(count), IsLiked: false}, nil
}

// AddComment adds a comment to an idea.
func (s *IdeaService) AddComment(ctx context.Context, ideaID, userID int64, req *dto.CommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.ErrEmptyComment
	}

	exists, err := s.ideaRepo.Exists(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrIdeaNotFound
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		IdeaID:    ideaID,
		Content:   content,
		CreatedBy: author.ID,
		UserName:  author.Name,
		UserImage: author.Image,
		Tags:      helpers.NormalizeTags(req.Tags),
	}
	if err := s.ideaRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Evaluate records or replaces the caller's multi-criterion evaluation of an
// idea and returns the recomputed average.
func (s *IdeaService) Evaluate(ctx context.Context, ideaID, userID int64, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	scores := make(map[models.Criterion]int, len(req.Scores))
	for name, score := range req.Scores {
		scores[models.Criterion(name)] = score
	}

	eval := &models.Evaluation{
		IdeaID:    ideaID,
		Evaluator: userID,
		Scores:    scores,
		Feedback:  req.Feedback,
	}
	if !eval.ValidateScores() {
		return nil, apperrors.ErrInvalidScores
	}

	exists, err := s.ideaRepo.Exists(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrIdeaNotFound
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	eval.UserName = author.Name

	average, count, err := s.ideaRepo.UpsertEvaluation(ctx, eval)
	if err != nil {
		return nil, err
	}

	// Re-read the stored row so the response carries the persisted id and
	// timestamps rather than the request-built struct.
	stored, err := s.ideaRepo.GetEvaluation(ctx, ideaID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("ideaId", ideaID).
		Int64("userId", userID).
		Float64("averageRating", average).
		Msg("Idea evaluated")

	return &dto.EvaluateResponse{
		Success:          true,
		AverageRating:    average,
		EvaluationsCount: int(count),
		UserEvaluation:   stored,
	}, nil
}

// Branch forks an idea into a new child idea. Category and hashtags default
// to the parent's values when the request leaves them empty.
func (s *IdeaService) Branch(ctx context.Context, parentID, userID int64, req *dto.BranchRequest) (*models.Idea, error) {
	parent, err := s.ideaRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrIdeaNotFound) {
			return nil, apperrors.ErrParentIdeaNotFound
		}
		return nil, err
	}

	category := parent.Category
	if req.Category != "" {
		category = models.Category(req.Category)
		if !category.IsValid() {
			return nil, apperrors.ErrInvalidCategory
		}
	}

	tags := helpers.NormalizeTags(req.HashTags)
	if len(tags) == 0 {
		tags = parent.HashTags
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	child := &models.Idea{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Category:  category,
		HashTags:  tags,
		CreatedBy: author.ID,
		UserName:  author.Name,
		UserImage: author.Image,
		ParentID:  &parent.ID,
		Changes:   req.Changes,
	}

	if _, err := s.ideaRepo.CreateBranch(ctx, child); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("parentId", parent.ID).
		Int64("childId", child.ID).
		Int64("userId", userID).
		Msg("Idea branched")
	s.invalidateDiscovery(ctx)

	child.Likes = []int64{}
	child.Comments = []*models.Comment{}
	child.Evaluations = []*models.Evaluation{}
	child.Branches = []*models.BranchSummary{}
	return child, nil
}

// ListIdeas returns a filtered, sorted page of ideas.
func (s *IdeaService) ListIdeas(ctx context.Context, filter repositories.IdeaFilter) ([]*models.Idea, dto.PaginationInfo, error) {
	if filter.Category != nil && !models.Category(*filter.Category).IsValid() {
		return nil, dto.PaginationInfo{}, apperrors.ErrInvalidCategory
	}

	ideas, total, err := s.ideaRepo.List(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return ideas, helpers.NewPaginationInfo(total, filter.Page, filter.Limit), nil
}

// SearchIdeas is ListIdeas with at least one filter required.
func (s *IdeaService) SearchIdeas(ctx context.Context, filter repositories.IdeaFilter) ([]*models.Idea, dto.PaginationInfo, error) {
	if !filter.HasSearchCriteria() {
		return nil, dto.PaginationInfo{}, apperrors.ErrNoSearchFilter
	}
	if filter.MinRating != nil && (*filter.MinRating < 0 || *filter.MinRating > float64(models.MaxScore)) {
		return nil, dto.PaginationInfo{}, apperrors.NewBadRequestError(
			fmt.Sprintf("minRating must be between 0 and %d", models.MaxScore))
	}
	return s.ListIdeas(ctx, filter)
}
