package models

import "time"

// Idea defines the idea model based on the 'ideas' table
type Idea struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	HashTags      []string  `json:"hashTags" db:"hash_tags"`
	Category      Category  `json:"category" db:"category"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	UserName      string    `json:"userName" db:"user_name"`
	UserImage     *string   `json:"userImage,omitempty" db:"user_image"`
	AverageRating float64   `json:"averageRating" db:"average_rating"`
	ParentID      *int64    `json:"parentId,omitempty" db:"parent_id"`
	Changes       *string   `json:"changes,omitempty" db:"changes"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Likes       []int64          `json:"likes"`
	Comments    []*Comment       `json:"comments,omitempty"`    // newest first
	Evaluations []*Evaluation    `json:"evaluations,omitempty"` // at most one per evaluator
	Branches    []*BranchSummary `json:"branches"`              // child ideas, creation order
	LikesCount  int              `json:"likesCount"`
}

// BranchSummary is the child-idea view embedded in a parent idea, enough to
// render the lineage without fetching each child.
type BranchSummary struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Category  Category  `json:"category" db:"category"`
	UserName  string    `json:"userName" db:"user_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Comment is a single comment left on an idea, newest first in storage order.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	IdeaID    int64     `json:"-" db:"idea_id"`
	Content   string    `json:"content" db:"content"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	UserName  string    `json:"userName" db:"user_name"`
	UserImage *string   `json:"userImage,omitempty" db:"user_image"`
	Tags      []string  `json:"tags" db:"tags"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Evaluation is one user's multi-criterion rating of an idea.
type Evaluation struct {
	ID        int64             `json:"id" db:"id"`
	IdeaID    int64             `json:"-" db:"idea_id"`
	Evaluator int64             `json:"evaluator" db:"evaluator_id"`
	UserName  string            `json:"userName" db:"user_name"`
	Scores    map[Criterion]int `json:"scores"`
	Feedback  *string           `json:"feedback,omitempty" db:"feedback"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time        `json:"updatedAt,omitempty" db:"updated_at"`
}

// ValidateScores checks that every provided score names a known criterion and
// lies within [MinScore, MaxScore]. An empty map is rejected: an evaluation
// must score at least one criterion.
func (e *Evaluation) ValidateScores() bool {
	if len(e.Scores) == 0 {
		return false
	}
	for criterion, score := range e.Scores {
		if !criterion.IsValid() {
			return false
		}
		if score < MinScore || score > MaxScore {
			return false
		}
	}
	return true
}

// AverageRating computes the flattened mean of every criterion score across
// the given evaluations: the denominator is the total count of scored
// criterion entries, not the number of evaluations. Returns 0 when no scores
// exist.
func AverageRating(evaluations []*Evaluation) float64 {
	sum, count := 0, 0
	for _, eval := range evaluations {
		for _, score := range eval.Scores {
			sum += score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
