package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/repositories"
	"github.com/kaito/ideahub/internal/pkg/apperrors"
)

func newUserService(userRepo *mockUserRepo, ideaRepo *mockIdeaRepo) *UserService {
	return NewUserService(userRepo, ideaRepo, zerolog.Nop())
}

func TestGetProfile(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newUserService(userRepo, new(mockIdeaRepo))

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.User{
		ID:        7,
		Name:      "Ada",
		Email:     "ada@example.com",
		Role:      models.RoleUser,
		Expertise: []string{"hardware"},
		Followers: []int64{1, 2, 3},
		Following: []int64{4},
	}, nil)

	profile, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, 3, profile.Followers)
	assert.Equal(t, 1, profile.Following)
}

func TestUpdateProfile(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newUserService(userRepo, new(mockIdeaRepo))

	name := "Ada L."
	userRepo.On("UpdateProfile", mock.Anything, int64(7), repositories.UserProfileUpdate{Name: &name}).Return(nil)
	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.User{ID: 7, Name: "Ada L."}, nil)

	profile, err := svc.UpdateProfile(context.Background(), 7, &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", profile.Name)
	userRepo.AssertExpectations(t)
}

func TestFollow_SelfRejected(t *testing.T) {
	svc := newUserService(new(mockUserRepo), new(mockIdeaRepo))

	err := svc.Follow(context.Background(), 7, 7)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestFollow_UnknownUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newUserService(userRepo, new(mockIdeaRepo))

	userRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrUserNotFound)

	err := svc.Follow(context.Background(), 7, 404)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestFollow(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newUserService(userRepo, new(mockIdeaRepo))

	userRepo.On("GetByID", mock.Anything, int64(8)).Return(&models.User{ID: 8}, nil)
	userRepo.On("Follow", mock.Anything, int64(7), int64(8)).Return(nil)

	require.NoError(t, svc.Follow(context.Background(), 7, 8))
	userRepo.AssertExpectations(t)
}

func TestSaveIdea_IdeaNotFound(t *testing.T) {
	userRepo := new(mockUserRepo)
	ideaRepo := new(mockIdeaRepo)
	svc := newUserService(userRepo, ideaRepo)

	ideaRepo.On("Exists", mock.Anything, int64(404)).Return(false, nil)

	err := svc.SaveIdea(context.Background(), 7, 404)
	assert.ErrorIs(t, err, apperrors.ErrIdeaNotFound)
	userRepo.AssertNotCalled(t, "SaveIdea", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUserIdeas(t *testing.T) {
	userRepo := new(mockUserRepo)
	ideaRepo := new(mockIdeaRepo)
	svc := newUserService(userRepo, ideaRepo)

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.User{ID: 7}, nil)
	ideaRepo.On("List", mock.Anything, mock.MatchedBy(func(f repositories.IdeaFilter) bool {
		return f.AuthorID != nil && *f.AuthorID == 7 && f.SortBy == repositories.SortNewest
	})).Return([]*models.Idea{{ID: 1}, {ID: 2}}, int64(2), nil)

	ideas, pagination, err := svc.GetUserIdeas(context.Background(), 7, 1, 10)
	require.NoError(t, err)
	assert.Len(t, ideas, 2)
	assert.Equal(t, int64(2), pagination.Total)
}
