package repositories

import (
	"github.com/Masterminds/squirrel"
)

// Sort keys accepted by idea listing endpoints.
const (
	SortNewest        = "newest"
	SortMostLiked     = "mostLiked"
	SortHighestRated  = "highestRated"
	SortMostCommented = "mostCommented"
)

// IdeaFilter holds filtering, sorting and pagination parameters for idea listings.
type IdeaFilter struct {
	Category  *string
	Tags      []string
	Text      *string
	MinRating *float64
	AuthorID  *int64
	LikedBy   *int64
	SavedBy   *int64
	SortBy    string
	Page      int
	Limit     int
}

// HasSearchCriteria reports whether at least one search filter is set.
func (f IdeaFilter) HasSearchCriteria() bool {
	return f.Category != nil || len(f.Tags) > 0 || f.Text != nil || f.MinRating != nil
}

// selectIdeaListQuery builds the base listing query. Likes and comments are
// counted with correlated subqueries so the sort keys can reference them.
func selectIdeaListQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"i.id", "i.title", "i.content", "i.category", "i.hash_tags",
		"i.created_by", "i.user_name", "i.user_image",
		"i.average_rating", "i.parent_id", "i.changes",
		"i.created_at", "i.updated_at",
		"(SELECT COUNT(*) FROM idea_likes l WHERE l.idea_id = i.id) AS likes_count",
		"(SELECT COUNT(*) FROM idea_comments c WHERE c.idea_id = i.id) AS comments_count",
	).From("ideas i").
		PlaceholderFormat(squirrel.Dollar)
}

// applyIdeaFilter adds the filter conditions to a listing query.
func applyIdeaFilter(qb squirrel.SelectBuilder, filter IdeaFilter) squirrel.SelectBuilder {
	if filter.Category != nil {
		qb = qb.Where(squirrel.Eq{"i.category": *filter.Category})
	}
	if len(filter.Tags) > 0 {
		// Array overlap: match ideas carrying any of the requested tags.
		qb = qb.Where("i.hash_tags && ?", filter.Tags)
	}
	if filter.Text != nil && *filter.Text != "" {
		pattern := "%" + *filter.Text + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"i.title": pattern},
			squirrel.ILike{"i.content": pattern},
		})
	}
	if filter.MinRating != nil {
		qb = qb.Where(squirrel.GtOrEq{"i.average_rating": *filter.MinRating})
	}
	if filter.AuthorID != nil {
		qb = qb.Where(squirrel.Eq{"i.created_by": *filter.AuthorID})
	}
	if filter.LikedBy != nil {
		qb = qb.Where("EXISTS (SELECT 1 FROM idea_likes l WHERE l.idea_id = i.id AND l.user_id = ?)", *filter.LikedBy)
	}
	if filter.SavedBy != nil {
		qb = qb.Where("EXISTS (SELECT 1 FROM user_saved_ideas s WHERE s.idea_id = i.id AND s.user_id = ?)", *filter.SavedBy)
	}
	return qb
}

// applyIdeaSort maps a sort key to its ORDER BY clause. Unknown keys fall back
// to newest first. Every ordering carries id DESC as a tiebreaker so pages are
// stable.
func applyIdeaSort(qb squirrel.SelectBuilder, sortBy string) squirrel.SelectBuilder {
	switch sortBy {
	case SortMostLiked:
		return qb.OrderBy("likes_count DESC", "i.id DESC")
	case SortHighestRated:
		return qb.OrderBy("i.average_rating DESC", "i.id DESC")
	case SortMostCommented:
		return qb.OrderBy("comments_count DESC", "i.id DESC")
	default:
		return qb.OrderBy("i.created_at DESC", "i.id DESC")
	}
}

// BuildIdeaListQuery assembles the full listing SQL for a filter.
func BuildIdeaListQuery(filter IdeaFilter) (string, []interface{}, error) {
	qb := applyIdeaFilter(selectIdeaListQuery(), filter)
	qb = applyIdeaSort(qb, filter.SortBy)

	offset := (filter.Page - 1) * filter.Limit
	qb = qb.Limit(uint64(filter.Limit)).Offset(uint64(offset))

	return qb.ToSql()
}

// BuildIdeaCountQuery assembles the matching COUNT(*) SQL for a filter.
func BuildIdeaCountQuery(filter IdeaFilter) (string, []interface{}, error) {
	qb := squirrel.Select("COUNT(*)").
		From("ideas i").
		PlaceholderFormat(squirrel.Dollar)
	return applyIdeaFilter(qb, filter).ToSql()
}
