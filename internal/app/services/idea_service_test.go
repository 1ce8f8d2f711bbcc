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

func newIdeaService(ideaRepo *mockIdeaRepo, userRepo *mockUserRepo) *IdeaService {
	return NewIdeaService(ideaRepo, userRepo, nil, zerolog.Nop())
}

func testAuthor() *models.User {
	return &models.User{ID: 1, Name: "Ada", Email: "ada@example.com", Role: models.RoleUser}
}

func TestCreateIdea_ExtractsHashtagsFromContent(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	userRepo := new(mockUserRepo)
	svc := newIdeaService(ideaRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(testAuthor(), nil)
	ideaRepo.On("Create", mock.Anything, mock.MatchedBy(func(idea *models.Idea) bool {
		return assert.ObjectsAreEqual([]string{"solar", "offgrid"}, idea.HashTags)
	})).Return(int64(10), nil)

	idea, err := svc.CreateIdea(context.Background(), 1, &dto.CreateIdeaRequest{
		Title:    "Solar charger",
		Content:  "A #solar charger for #offgrid use",
		Category: "technology",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"solar", "offgrid"}, idea.HashTags)
	assert.Equal(t, "Ada", idea.UserName)
	ideaRepo.AssertExpectations(t)
}

func TestCreateIdea_InvalidCategory(t *testing.T) {
	svc := newIdeaService(new(mockIdeaRepo), new(mockUserRepo))

	_, err := svc.CreateIdea(context.Background(), 1, &dto.CreateIdeaRequest{
		Title:    "x",
		Content:  "y",
		Category: "astrology",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestUpdateIdea_OnlyAuthor(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	ideaRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Idea{ID: 5, CreatedBy: 1}, nil)

	_, err := svc.UpdateIdea(context.Background(), 99, 5, &dto.UpdateIdeaRequest{
		Title: "t", Content: "c", Category: "technology",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	ideaRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteIdea_AdminMayDelete(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	ideaRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Idea{ID: 5, CreatedBy: 1}, nil)
	ideaRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := svc.DeleteIdea(context.Background(), 99, models.RoleAdmin, 5)
	require.NoError(t, err)
	ideaRepo.AssertExpectations(t)
}

func TestDeleteIdea_StrangerForbidden(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	ideaRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Idea{ID: 5, CreatedBy: 1}, nil)

	err := svc.DeleteIdea(context.Background(), 99, models.RoleUser, 5)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestToggleLike(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	ideaRepo.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	ideaRepo.On("ToggleLike", mock.Anything, int64(5), int64(1)).Return(true, int64(3), nil)

	resp, err := svc.ToggleLike(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.IsLiked)
	assert.Equal(t, 3, resp.LikesCount)
}

func TestToggleLike_IdeaNotFound(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	ideaRepo.On("Exists", mock.Anything, int64(404)).Return(false, nil)

	_, err := svc.ToggleLike(context.Background(), 404, 1)
	assert.ErrorIs(t, err, apperrors.ErrIdeaNotFound)
}

func TestAddComment_EmptyContent(t *testing.T) {
	svc := newIdeaService(new(mockIdeaRepo), new(mockUserRepo))

	_, err := svc.AddComment(context.Background(), 5, 1, &dto.CommentRequest{Content: "   "})
	assert.ErrorIs(t, err, apperrors.ErrEmptyComment)
}

func TestAddComment_DenormalizesAuthor(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	userRepo := new(mockUserRepo)
	svc := newIdeaService(ideaRepo, userRepo)

	ideaRepo.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	userRepo.On("GetByID", mock.Anything, int64(1)).Return(testAuthor(), nil)
	ideaRepo.On("AddComment", mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.AddComment(context.Background(), 5, 1, &dto.CommentRequest{Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", comment.UserName)
	assert.Equal(t, int64(5), comment.IdeaID)
}

func TestEvaluate_RejectsBadScores(t *testing.T) {
	svc := newIdeaService(new(mockIdeaRepo), new(mockUserRepo))

	tests := []struct {
		name   string
		scores map[string]int
	}{
		{"empty", map[string]int{}},
		{"unknown criterion", map[string]int{"vibes": 3}},
		{"too low", map[string]int{"feasibility": 0}},
		{"too high", map[string]int{"innovation": 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Evaluate(context.Background(), 5, 1, &dto.EvaluateRequest{Scores: tt.scores})
			assert.ErrorIs(t, err, apperrors.ErrInvalidScores)
		})
	}
}

func TestEvaluate_UpsertsAndReturnsAverage(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	userRepo := new(mockUserRepo)
	svc := newIdeaService(ideaRepo, userRepo)

	ideaRepo.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	userRepo.On("GetByID", mock.Anything, int64(1)).Return(testAuthor(), nil)
	ideaRepo.On("UpsertEvaluation", mock.Anything, mock.MatchedBy(func(e *models.Evaluation) bool {
		return e.IdeaID == 5 && e.Evaluator == 1 && e.Scores[models.CriterionFeasibility] == 4
	})).Return(3.4, int64(2), nil)
	stored := &models.Evaluation{
		ID:        7,
		IdeaID:    5,
		Evaluator: 1,
		UserName:  "Ada",
		Scores:    map[models.Criterion]int{models.CriterionFeasibility: 4, models.CriterionInnovation: 3},
	}
	ideaRepo.On("GetEvaluation", mock.Anything, int64(5), int64(1)).Return(stored, nil)

	resp, err := svc.Evaluate(context.Background(), 5, 1, &dto.EvaluateRequest{
		Scores: map[string]int{"feasibility": 4, "innovation": 3},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 3.4, resp.AverageRating)
	assert.Equal(t, 2, resp.EvaluationsCount)
	// The response carries the persisted row, not the request-built struct.
	require.NotNil(t, resp.UserEvaluation)
	assert.Equal(t, int64(7), resp.UserEvaluation.ID)
	ideaRepo.AssertExpectations(t)
}

func TestGetIdea_SurfacesBranchSummaries(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	parent := &models.Idea{
		ID:    5,
		Title: "Solar charger",
		Branches: []*models.BranchSummary{
			{ID: 20, Title: "Better version", Category: models.CategoryTechnology, UserName: "Ada"},
			{ID: 21, Title: "Cheaper version", Category: models.CategoryTechnology, UserName: "Grace"},
		},
	}
	ideaRepo.On("GetByID", mock.Anything, int64(5)).Return(parent, nil)

	idea, err := svc.GetIdea(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, idea.Branches, 2)
	assert.Equal(t, int64(20), idea.Branches[0].ID)
	assert.Equal(t, "Better version", idea.Branches[0].Title)
	assert.Equal(t, "Grace", idea.Branches[1].UserName)
}

func TestBranch_DefaultsFromParent(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	userRepo := new(mockUserRepo)
	svc := newIdeaService(ideaRepo, userRepo)

	parent := &models.Idea{
		ID:       5,
		Category: models.CategoryEnvironment,
		HashTags: []string{"climate"},
	}
	ideaRepo.On("GetByID", mock.Anything, int64(5)).Return(parent, nil)
	userRepo.On("GetByID", mock.Anything, int64(1)).Return(testAuthor(), nil)
	ideaRepo.On("CreateBranch", mock.Anything, mock.MatchedBy(func(child *models.Idea) bool {
		return child.ParentID != nil && *child.ParentID == 5 &&
			child.Category == models.CategoryEnvironment &&
			assert.ObjectsAreEqual([]string{"climate"}, child.HashTags)
	})).Return(int64(20), nil)

	child, err := svc.Branch(context.Background(), 5, 1, &dto.BranchRequest{
		Title:   "Better version",
		Content: "with batteries",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryEnvironment, child.Category)
	ideaRepo.AssertExpectations(t)
}

func TestBranch_ParentNotFound(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	ideaRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrIdeaNotFound)

	_, err := svc.Branch(context.Background(), 404, 1, &dto.BranchRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, apperrors.ErrParentIdeaNotFound)
}

func TestSearchIdeas_RequiresFilter(t *testing.T) {
	svc := newIdeaService(new(mockIdeaRepo), new(mockUserRepo))

	_, _, err := svc.SearchIdeas(context.Background(), repositories.IdeaFilter{Page: 1, Limit: 20})
	assert.ErrorIs(t, err, apperrors.ErrNoSearchFilter)
}

func TestSearchIdeas_WithFilter(t *testing.T) {
	ideaRepo := new(mockIdeaRepo)
	svc := newIdeaService(ideaRepo, new(mockUserRepo))

	text := "solar"
	filter := repositories.IdeaFilter{Text: &text, Page: 1, Limit: 20}
	ideaRepo.On("List", mock.Anything, filter).Return([]*models.Idea{{ID: 1}}, int64(1), nil)

	ideas, pagination, err := svc.SearchIdeas(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, ideas, 1)
	assert.Equal(t, int64(1), pagination.Total)
	assert.Equal(t, 20, pagination.Limit)
}

func TestListIdeas_InvalidCategory(t *testing.T) {
	svc := newIdeaService(new(mockIdeaRepo), new(mockUserRepo))

	bad := "astrology"
	_, _, err := svc.ListIdeas(context.Background(), repositories.IdeaFilter{Category: &bad, Page: 1, Limit: 10})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}
