package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/db"
	"github.com/kaito/ideahub/internal/pkg/apperrors"
	"github.com/kaito/ideahub/internal/pkg/dberrors"
	"github.com/kaito/ideahub/internal/pkg/logger"
)

// UserProfileUpdate holds the optional fields of a profile update. Nil fields
// keep their current value.
type UserProfileUpdate struct {
	Name      *string
	Bio       *string
	Expertise []string
	Interests []string
	Image     *string
}

// UserRepository handles database operations for users, follows and saved ideas.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new user and returns the assigned ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sqlStr, args, err := r.sb.Insert("users").
		Columns("name", "email", "password", "role", "bio", "expertise", "interests", "image").
		Values(user.Name, user.Email, user.Password, user.Role, user.Bio, user.Expertise, user.Interests, user.Image).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building create user SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error executing create user query: %w", err)
	}
	return user.ID, nil
}

const userSelectColumns = `
	u.id, u.name, u.email, u.password, u.role, u.bio, u.expertise, u.interests, u.image,
	u.created_at, u.updated_at,
	COALESCE(ARRAY(SELECT f.follower_id FROM user_follows f WHERE f.followee_id = u.id ORDER BY f.created_at), '{}') AS followers,
	COALESCE(ARRAY(SELECT f.followee_id FROM user_follows f WHERE f.follower_id = u.id ORDER BY f.created_at), '{}') AS following,
	COALESCE(ARRAY(SELECT s.idea_id FROM user_saved_ideas s WHERE s.user_id = u.id ORDER BY s.created_at), '{}') AS saved_ideas`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Bio,
		&user.Expertise, &user.Interests, &user.Image,
		&user.CreatedAt, &user.UpdatedAt,
		&user.Followers, &user.Following, &user.SavedIdeas,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by ID together with follow and saved idea relations.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := "SELECT" + userSelectColumns + " FROM users u WHERE u.id = $1"
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := "SELECT" + userSelectColumns + " FROM users u WHERE u.email = $1"
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// EmailExists checks if an email is already registered.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile applies a partial profile update. When the name or profile
// image changes, the author columns denormalized onto the user's ideas are
// refreshed in the same transaction.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, update UserProfileUpdate) error {
	qb := r.sb.Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID})

	if update.Name != nil {
		qb = qb.Set("name", *update.Name)
	}
	if update.Bio != nil {
		qb = qb.Set("bio", *update.Bio)
	}
	if update.Expertise != nil {
		qb = qb.Set("expertise", update.Expertise)
	}
	if update.Interests != nil {
		qb = qb.Set("interests", update.Interests)
	}
	if update.Image != nil {
		qb = qb.Set("image", *update.Image)
	}

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("error building update profile SQL: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sqlStr, args...)
		if err != nil {
			return fmt.Errorf("error executing update profile query: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		if update.Name != nil || update.Image != nil {
			_, err = tx.Exec(ctx, `
				UPDATE ideas SET user_name = u.name, user_image = u.image
				FROM users u
				WHERE ideas.created_by = u.id AND u.id = $1`, userID)
			if err != nil {
				return fmt.Errorf("error propagating author info to ideas: %w", err)
			}
		}
		return nil
	})
}

// Follow records that follower follows followee. Following an already followed
// user is a no-op.
func (r *UserRepository) Follow(ctx context.Context, followerID, followeeID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING`, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("error executing follow query: %w", err)
	}
	return nil
}

// Unfollow removes a follow relation if present.
func (r *UserRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM user_follows WHERE follower_id = $1 AND followee_id = $2`, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("error executing unfollow query: %w", err)
	}
	return nil
}

// SaveIdea bookmarks an idea for a user. Saving twice is a no-op.
func (r *UserRepository) SaveIdea(ctx context.Context, userID, ideaID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_saved_ideas (user_id, idea_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, idea_id) DO NOTHING`, userID, ideaID)
	if err != nil {
		return fmt.Errorf("error executing save idea query: %w", err)
	}
	return nil
}

// UnsaveIdea removes a bookmark if present.
func (r *UserRepository) UnsaveIdea(ctx context.Context, userID, ideaID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM user_saved_ideas WHERE user_id = $1 AND idea_id = $2`, userID, ideaID)
	if err != nil {
		return fmt.Errorf("error executing unsave idea query: %w", err)
	}
	return nil
}
