package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaito/ideahub/internal/app/models"
	"github.com/kaito/ideahub/internal/app/models/dto"
	"github.com/kaito/ideahub/internal/db"
	"github.com/kaito/ideahub/internal/pkg/apperrors"
	"github.com/kaito/ideahub/internal/pkg/logger"
)

// criterionColumns maps evaluation criteria to their table columns, in the
// order they are selected and inserted.
var criterionColumns = []struct {
	criterion models.Criterion
	column    string
}{
	{models.CriterionFeasibility, "feasibility"},
	{models.CriterionInnovation, "innovation"},
	{models.CriterionUsefulness, "usefulness"},
	{models.CriterionMarketability, "marketability"},
	{models.CriterionCostEfficiency, "cost_efficiency"},
	{models.CriterionSocialImpact, "social_impact"},
}

// averageRatingSQL recomputes the stored average from every non-null
// criterion score across an idea's evaluations. The denominator counts
// individual scores, not evaluations.
const averageRatingSQL = `
	UPDATE ideas SET average_rating = COALESCE((
		SELECT AVG(v)
		FROM idea_evaluations e,
		LATERAL unnest(ARRAY[e.feasibility, e.innovation, e.usefulness, e.marketability, e.cost_efficiency, e.social_impact]) AS v
		WHERE e.idea_id = $1 AND v IS NOT NULL
	), 0)
	WHERE id = $1
	RETURNING average_rating`

// IdeaRepository handles database operations for ideas and their likes,
// comments, evaluations and branches.
type IdeaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewIdeaRepository creates a new IdeaRepository
func NewIdeaRepository(db *pgxpool.Pool) *IdeaRepository {
	return &IdeaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new idea and returns the assigned ID.
func (r *IdeaRepository) Create(ctx context.Context, idea *models.Idea) (int64, error) {
	sqlStr, args, err := r.sb.Insert("ideas").
		Columns("title", "content", "category", "hash_tags", "created_by", "user_name", "user_image", "parent_id", "changes").
		Values(idea.Title, idea.Content, idea.Category, idea.HashTags, idea.CreatedBy, idea.UserName, idea.UserImage, idea.ParentID, idea.Changes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building create idea SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(&idea.ID, &idea.CreatedAt, &idea.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create idea query")
		return 0, fmt.Errorf("error executing create idea query: %w", err)
	}
	return idea.ID, nil
}

func scanIdeaRow(row pgx.Row, idea *models.Idea) error {
	err := row.Scan(
		&idea.ID, &idea.Title, &idea.Content, &idea.Category, &idea.HashTags,
		&idea.CreatedBy, &idea.UserName, &idea.UserImage,
		&idea.AverageRating, &idea.ParentID, &idea.Changes,
		&idea.CreatedAt, &idea.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrIdeaNotFound
		}
		return fmt.Errorf("error scanning idea row: %w", err)
	}
	return nil
}

// GetByID retrieves an idea with its likes, comments, evaluations and branches.
func (r *IdeaRepository) GetByID(ctx context.Context, id int64) (*models.Idea, error) {
	query := `
		SELECT id, title, content, category, hash_tags,
			created_by, user_name, user_image,
			average_rating, parent_id, changes,
			created_at, updated_at
		FROM ideas WHERE id = $1`

	var idea models.Idea
	if err := scanIdeaRow(r.db.QueryRow(ctx, query, id), &idea); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *IdeaRepository) loadRelations(ctx context.Context, idea *models.Idea) error {
	likes, err := r.GetLikes(ctx, idea.ID)
	if err != nil {
		return err
	}
	idea.Likes = likes
	idea.LikesCount = len(likes)

	comments, err := r.GetComments(ctx, idea.ID)
	if err != nil {
		return err
	}
	idea.Comments = comments

	evaluations, err := r.GetEvaluations(ctx, idea.ID)
	if err != nil {
		return err
	}
	idea.Evaluations = evaluations

	branches, err := r.GetBranches(ctx, idea.ID)
	if err != nil {
		return err
	}
	idea.Branches = branches
	return nil
}

// Update rewrites the mutable columns of an idea.
func (r *IdeaRepository) Update(ctx context.Context, idea *models.Idea) error {
	sqlStr, args, err := r.sb.Update("ideas").
		Set("title", idea.Title).
		Set("content", idea.Content).
		Set("category", idea.Category).
		Set("hash_tags", idea.HashTags).
		Set("changes", idea.Changes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": idea.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update idea SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update idea query")
		return fmt.Errorf("error executing update idea query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIdeaNotFound
	}
	return nil
}

// Delete removes an idea. Likes, comments, evaluations and branch links go
// with it through ON DELETE CASCADE.
func (r *IdeaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing delete idea query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIdeaNotFound
	}
	return nil
}

// Exists reports whether an idea row exists.
func (r *IdeaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ideas WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking idea existence: %w", err)
	}
	return exists, nil
}

// GetLikes returns the IDs of users who liked an idea.
func (r *IdeaRepository) GetLikes(ctx context.Context, ideaID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id FROM idea_likes WHERE idea_id = $1 ORDER BY created_at`, ideaID)
	if err != nil {
		return nil, fmt.Errorf("error executing get likes query: %w", err)
	}
	defer rows.Close()

	likes := []int64{}
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("error scanning like row: %w", err)
		}
		likes = append(likes, userID)
	}
	return likes, rows.Err()
}

// ToggleLike likes the idea for the user, or removes the like if one already
// exists. The insert races safely: ON CONFLICT DO NOTHING reports zero rows,
// which routes to the delete branch.
func (r *IdeaRepository) ToggleLike(ctx context.Context, ideaID, userID int64) (bool, int64, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO idea_likes (idea_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (idea_id, user_id) DO NOTHING`, ideaID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("error executing like insert: %w", err)
	}

	liked := tag.RowsAffected() > 0
	if !liked {
		if _, err := r.db.Exec(ctx, `
			DELETE FROM idea_likes WHERE idea_id = $1 AND user_id = $2`, ideaID, userID); err != nil {
			return false, 0, fmt.Errorf("error executing like delete: %w", err)
		}
	}

	count, err := r.countLikes(ctx, ideaID)
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// Unlike removes a like if present, regardless of current state.
func (r *IdeaRepository) Unlike(ctx context.Context, ideaID, userID int64) (int64, error) {
	_, err := r.db.Exec(ctx, `
		DELETE FROM idea_likes WHERE idea_id = $1 AND user_id = $2`, ideaID, userID)
	if err != nil {
		return 0, fmt.Errorf("error executing unlike query: %w", err)
	}
	return r.countLikes(ctx, ideaID)
}

func (r *IdeaRepository) countLikes(ctx context.Context, ideaID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM idea_likes WHERE idea_id = $1`, ideaID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}
	return count, nil
}

// AddComment inserts a new comment and fills in its ID and timestamp.
func (r *IdeaRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	sqlStr, args, err := r.sb.Insert("idea_comments").
		Columns("idea_id", "content", "created_by", "user_name", "user_image", "tags").
		Values(comment.IdeaID, comment.Content, comment.CreatedBy, comment.UserName, comment.UserImage, comment.Tags).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building add comment SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing add comment query")
		return fmt.Errorf("error executing add comment query: %w", err)
	}
	return nil
}

// GetComments returns an idea's comments, newest first.
func (r *IdeaRepository) GetComments(ctx context.Context, ideaID int64) ([]*models.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, idea_id, content, created_by, user_name, user_image, tags, created_at
		FROM idea_comments
		WHERE idea_id = $1
		ORDER BY created_at DESC, id DESC`, ideaID)
	if err != nil {
		return nil, fmt.Errorf("error executing get comments query: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.IdeaID, &c.Content, &c.CreatedBy, &c.UserName, &c.UserImage, &c.Tags, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

func evaluationSelectColumns() string {
	cols := "id, idea_id, evaluator_id, user_name, feedback, created_at, updated_at"
	for _, cc := range criterionColumns {
		cols += ", " + cc.column
	}
	return cols
}

func scanEvaluation(row pgx.Row) (*models.Evaluation, error) {
	var eval models.Evaluation
	scores := make([]*int16, len(criterionColumns))
	dest := []interface{}{
		&eval.ID, &eval.IdeaID, &eval.Evaluator, &eval.UserName,
		&eval.Feedback, &eval.CreatedAt, &eval.UpdatedAt,
	}
	for i := range scores {
		dest = append(dest, &scores[i])
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	eval.Scores = make(map[models.Criterion]int)
	for i, cc := range criterionColumns {
		if scores[i] != nil {
			eval.Scores[cc.criterion] = int(*scores[i])
		}
	}
	return &eval, nil
}

// GetEvaluations returns every evaluation left on an idea, oldest first.
func (r *IdeaRepository) GetEvaluations(ctx context.Context, ideaID int64) ([]*models.Evaluation, error) {
	query := "SELECT " + evaluationSelectColumns() + " FROM idea_evaluations WHERE idea_id = $1 ORDER BY created_at, id"
	rows, err := r.db.Query(ctx, query, ideaID)
	if err != nil {
		return nil, fmt.Errorf("error executing get evaluations query: %w", err)
	}
	defer rows.Close()

	evaluations := []*models.Evaluation{}
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning evaluation row: %w", err)
		}
		evaluations = append(evaluations, eval)
	}
	return evaluations, rows.Err()
}

// GetEvaluation returns a single evaluator's evaluation of an idea, or
// apperrors.ErrResourceNotFound when none exists.
func (r *IdeaRepository) GetEvaluation(ctx context.Context, ideaID, evaluatorID int64) (*models.Evaluation, error) {
	query := "SELECT " + evaluationSelectColumns() + " FROM idea_evaluations WHERE idea_id = $1 AND evaluator_id = $2"
	eval, err := scanEvaluation(r.db.QueryRow(ctx, query, ideaID, evaluatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error scanning evaluation row: %w", err)
	}
	return eval, nil
}

// UpsertEvaluation inserts or replaces one evaluator's evaluation of an idea
// and recomputes the stored average rating, all in one transaction. A repeat
// evaluation overwrites the previous scores entirely: criteria absent from
// the new submission become unscored. Returns the new average and the total
// evaluation count.
func (r *IdeaRepository) UpsertEvaluation(ctx context.Context, eval *models.Evaluation) (float64, int64, error) {
	columns := []string{"idea_id", "evaluator_id", "user_name", "feedback"}
	values := []interface{}{eval.IdeaID, eval.Evaluator, eval.UserName, eval.Feedback}
	updates := "user_name = EXCLUDED.user_name, feedback = EXCLUDED.feedback, updated_at = NOW()"
	for _, cc := range criterionColumns {
		columns = append(columns, cc.column)
		if score, ok := eval.Scores[cc.criterion]; ok {
			values = append(values, score)
		} else {
			values = append(values, nil)
		}
		updates += fmt.Sprintf(", %s = EXCLUDED.%s", cc.column, cc.column)
	}

	sqlStr, args, err := r.sb.Insert("idea_evaluations").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (idea_id, evaluator_id) DO UPDATE SET " + updates + " RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("error building upsert evaluation SQL: %w", err)
	}

	var average float64
	var count int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, sqlStr, args...).Scan(&eval.ID, &eval.CreatedAt, &eval.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error executing upsert evaluation query: %w", err)
		}

		if err := tx.QueryRow(ctx, averageRatingSQL, eval.IdeaID).Scan(&average); err != nil {
			return fmt.Errorf("error recomputing average rating: %w", err)
		}

		err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM idea_evaluations WHERE idea_id = $1`, eval.IdeaID).Scan(&count)
		if err != nil {
			return fmt.Errorf("error counting evaluations: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return average, count, nil
}

// GetBranches returns the ideas branched from the given idea, in creation
// order, as summaries for lineage display.
func (r *IdeaRepository) GetBranches(ctx context.Context, parentID int64) ([]*models.BranchSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.title, i.category, i.user_name, i.created_at
		FROM idea_branches b
		JOIN ideas i ON i.id = b.child_id
		WHERE b.parent_id = $1
		ORDER BY b.id`, parentID)
	if err != nil {
		return nil, fmt.Errorf("error executing get branches query: %w", err)
	}
	defer rows.Close()

	branches := []*models.BranchSummary{}
	for rows.Next() {
		var b models.BranchSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.Category, &b.UserName, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning branch row: %w", err)
		}
		branches = append(branches, &b)
	}
	return branches, rows.Err()
}

// CreateBranch inserts a child idea and links it to its parent in one
// transaction. Either both rows land or neither does.
func (r *IdeaRepository) CreateBranch(ctx context.Context, child *models.Idea) (int64, error) {
	if child.ParentID == nil {
		return 0, apperrors.ErrParentIdeaNotFound
	}

	sqlStr, args, err := r.sb.Insert("ideas").
		Columns("title", "content", "category", "hash_tags", "created_by", "user_name", "user_image", "parent_id", "changes").
		Values(child.Title, child.Content, child.Category, child.HashTags, child.CreatedBy, child.UserName, child.UserImage, child.ParentID, child.Changes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building create branch SQL: %w", err)
	}

	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, sqlStr, args...).Scan(&child.ID, &child.CreatedAt, &child.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error executing create branch query: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO idea_branches (parent_id, child_id) VALUES ($1, $2)`, *child.ParentID, child.ID)
		if err != nil {
			return fmt.Errorf("error linking branch to parent: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return child.ID, nil
}

// List returns a filtered, sorted page of ideas plus the total match count.
// Comments and evaluations are not loaded in list views.
func (r *IdeaRepository) List(ctx context.Context, filter IdeaFilter) ([]*models.Idea, int64, error) {
	sqlStr, args, err := BuildIdeaListQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error building idea list SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing idea list query")
		return nil, 0, fmt.Errorf("error executing idea list query: %w", err)
	}
	defer rows.Close()

	ideas := []*models.Idea{}
	for rows.Next() {
		var idea models.Idea
		var commentsCount int64
		var likesCount int64
		err := rows.Scan(
			&idea.ID, &idea.Title, &idea.Content, &idea.Category, &idea.HashTags,
			&idea.CreatedBy, &idea.UserName, &idea.UserImage,
			&idea.AverageRating, &idea.ParentID, &idea.Changes,
			&idea.CreatedAt, &idea.UpdatedAt,
			&likesCount, &commentsCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning idea list row: %w", err)
		}
		idea.LikesCount = int(likesCount)
		ideas = append(ideas, &idea)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating idea list rows: %w", err)
	}

	countSQL, countArgs, err := BuildIdeaCountQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error building idea count SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing idea count query: %w", err)
	}

	return ideas, total, nil
}

// Categories returns the distinct categories currently in use.
func (r *IdeaRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM ideas ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("error executing categories query: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// TopTags returns the most frequent hashtags across all ideas, capped at 100.
func (r *IdeaRepository) TopTags(ctx context.Context) ([]dto.TagCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tag, COUNT(*) AS uses
		FROM ideas, LATERAL unnest(hash_tags) AS tag
		GROUP BY tag
		ORDER BY uses DESC, tag
		LIMIT 100`)
	if err != nil {
		return nil, fmt.Errorf("error executing top tags query: %w", err)
	}
	defer rows.Close()

	tags := []dto.TagCount{}
	for rows.Next() {
		var tc dto.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, fmt.Errorf("error scanning tag row: %w", err)
		}
		tags = append(tags, tc)
	}
	return tags, rows.Err()
}
