package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/app/models/dto"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, update UserProfileUpdate) error
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	SaveIdea(ctx context.Context, userID, ideaID int64) error
	UnsaveIdea(ctx context.Context, userID, ideaID int64) error
}

// IIdeaRepository defines the interface for idea-related database operations
type IIdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Idea, error)
	Update(ctx context.Context, idea *models.Idea) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	GetLikes(ctx context.Context, ideaID int64) ([]int64, error)
	ToggleLike(ctx context.Context, ideaID, userID int64) (bool, int64, error)
	Unlike(ctx context.Context, ideaID, userID int64) (int64, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	GetComments(ctx context.Context, ideaID int64) ([]*models.Comment, error)
	GetEvaluations(ctx context.Context, ideaID int64) ([]*models.Evaluation, error)
	GetEvaluation(ctx context.Context, ideaID, evaluatorID int64) (*models.Evaluation, error)
	UpsertEvaluation(ctx context.Context, eval *models.Evaluation) (float64, int64, error)
	GetBranches(ctx context.Context, parentID int64) ([]*models.BranchSummary, error)
	CreateBranch(ctx context.Context, child *models.Idea) (int64, error)
	List(ctx context.Context, filter IdeaFilter) ([]*models.Idea, int64, error)
	Categories(ctx context.Context) ([]string, error)
	TopTags(ctx context.Context) ([]dto.TagCount, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository *UserRepository
	IdeaRepository *IdeaRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db),
		IdeaRepository: NewIdeaRepository(db),
	}
}
