package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/app/repositories"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, userID int64, update repositories.UserProfileUpdate) error {
	args := m.Called(ctx, userID, update)
	return args.Error(0)
}

func (m *mockUserRepo) Follow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *mockUserRepo) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *mockUserRepo) SaveIdea(ctx context.Context, userID, ideaID int64) error {
	args := m.Called(ctx, userID, ideaID)
	return args.Error(0)
}

func (m *mockUserRepo) UnsaveIdea(ctx context.Context, userID, ideaID int64) error {
	args := m.Called(ctx, userID, ideaID)
	return args.Error(0)
}

type mockIdeaRepo struct {
	mock.Mock
}

func (m *mockIdeaRepo) Create(ctx context.Context, idea *models.Idea) (int64, error) {
	args := m.Called(ctx, idea)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockIdeaRepo) GetByID(ctx context.Context, id int64) (*models.Idea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Idea), args.Error(1)
}

func (m *mockIdeaRepo) Update(ctx context.Context, idea *models.Idea) error {
	args := m.Called(ctx, idea)
	return args.Error(0)
}

func (m *mockIdeaRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockIdeaRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdeaRepo) GetLikes(ctx context.Context, ideaID int64) ([]int64, error) {
	args := m.Called(ctx, ideaID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockIdeaRepo) ToggleLike(ctx context.Context, ideaID, userID int64) (bool, int64, error) {
	args := m.Called(ctx, ideaID, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockIdeaRepo) Unlike(ctx context.Context, ideaID, userID int64) (int64, error) {
	args := m.Called(ctx, ideaID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockIdeaRepo) AddComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockIdeaRepo) GetComments(ctx context.Context, ideaID int64) ([]*models.Comment, error) {
	args := m.Called(ctx, ideaID)
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *mockIdeaRepo) GetEvaluations(ctx context.Context, ideaID int64) ([]*models.Evaluation, error) {
	args := m.Called(ctx, ideaID)
	return args.Get(0).([]*models.Evaluation), args.Error(1)
}

func (m *mockIdeaRepo) GetEvaluation(ctx context.Context, ideaID, evaluatorID int64) (*models.Evaluation, error) {
	args := m.Called(ctx, ideaID, evaluatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Evaluation), args.Error(1)
}

func (m *mockIdeaRepo) UpsertEvaluation(ctx context.Context, eval *models.Evaluation) (float64, int64, error) {
	args := m.Called(ctx, eval)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *mockIdeaRepo) GetBranches(ctx context.Context, parentID int64) ([]*models.BranchSummary, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BranchSummary), args.Error(1)
}

func (m *mockIdeaRepo) CreateBranch(ctx context.Context, child *models.Idea) (int64, error) {
	args := m.Called(ctx, child)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockIdeaRepo) List(ctx context.Context, filter repositories.IdeaFilter) ([]*models.Idea, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Idea), args.Get(1).(int64), args.Error(2)
}

func (m *mockIdeaRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockIdeaRepo) TopTags(ctx context.Context) ([]dto.TagCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.TagCount), args.Error(1)
}
