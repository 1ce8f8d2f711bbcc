package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/repositories"
	"github.com/kaito/ideahub/internal/pkg/apperrors"
	"github.com/kaito/ideahub/internal/pkg/helpers"
)

// UserService handles profile, follow and saved idea operations
type UserService struct {
	userRepo repositories.IUserRepository
	ideaRepo repositories.IIdeaRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, ideaRepo repositories.IIdeaRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		ideaRepo: ideaRepo,
		logger:   logger,
	}
}

func profileResponse(user *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Bio:       user.Bio,
		Image:     user.Image,
		Expertise: user.Expertise,
		Interests: user.Interests,
		Followers: len(user.Followers),
		Following: len(user.Following),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// GetProfile returns the full profile of a user.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profileResponse(user), nil
}

// UpdateProfile applies a partial update to the caller's profile and returns
// the updated profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	update := repositories.UserProfileUpdate{
		Name:      req.Name,
		Bio:       req.Bio,
		Image:     req.Image,
		Expertise: req.Expertise,
		Interests: req.Interests,
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, update); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Msg("Profile updated")
	return s.GetProfile(ctx, userID)
}

// GetSavedIdeaIDs returns the ids of the ideas a user has bookmarked.
func (s *UserService) GetSavedIdeaIDs(ctx context.Context, userID int64) ([]int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.SavedIdeas, nil
}

// Follow makes follower follow followee. Following yourself is rejected.
func (s *UserService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return apperrors.NewBadRequestError("you cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	return s.userRepo.Follow(ctx, followerID, followeeID)
}

// Unfollow removes a follow relation.
func (s *UserService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return apperrors.NewBadRequestError("you cannot unfollow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	return s.userRepo.Unfollow(ctx, followerID, followeeID)
}

// SaveIdea bookmarks an idea for the user.
func (s *UserService) SaveIdea(ctx context.Context, userID, ideaID int64) error {
	exists, err := s.ideaRepo.Exists(ctx, ideaID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrIdeaNotFound
	}
	return s.userRepo.SaveIdea(ctx, userID, ideaID)
}

// UnsaveIdea removes a bookmark.
func (s *UserService) UnsaveIdea(ctx context.Context, userID, ideaID int64) error {
	return s.userRepo.UnsaveIdea(ctx, userID, ideaID)
}

// GetUserIdeas returns a page of ideas created by a user, newest first.
func (s *UserService) GetUserIdeas(ctx context.Context, userID int64, page, limit int) ([]*models.Idea, dto.PaginationInfo, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	filter := repositories.IdeaFilter{
		AuthorID: &userID,
		SortBy:   repositories.SortNewest,
		Page:     page,
		Limit:    limit,
	}
	ideas, total, err := s.ideaRepo.List(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return ideas, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetLikedIdeas returns a page of ideas the user has liked.
func (s *UserService) GetLikedIdeas(ctx context.Context, userID int64, page, limit int) ([]*models.Idea, dto.PaginationInfo, error) {
	filter := repositories.IdeaFilter{
		LikedBy: &userID,
		SortBy:  repositories.SortNewest,
		Page:    page,
		Limit:   limit,
	}
	ideas, total, err := s.ideaRepo.List(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return ideas, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetSavedIdeas returns a page of ideas the user has bookmarked.
func (s *UserService) GetSavedIdeas(ctx context.Context, userID int64, page, limit int) ([]*models.Idea, dto.PaginationInfo, error) {
	filter := repositories.IdeaFilter{
		SavedBy: &userID,
		SortBy:  repositories.SortNewest,
		Page:    page,
		Limit:   limit,
	}
	ideas, total, err := s.ideaRepo.List(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return ideas, helpers.NewPaginationInfo(total, page, limit), nil
}
