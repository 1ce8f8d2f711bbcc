package dto

import "github.com/kaito/ideahub/internal/app/models"

// CreateIdeaRequest represents a new idea submission. HashTags may be empty,
// in which case tags are extracted from #tokens in the content.
type CreateIdeaRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	HashTags []string `json:"hashTags"`
	Category string   `json:"category" binding:"required"`
}

// UpdateIdeaRequest represents an idea update by its author
type UpdateIdeaRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	HashTags []string `json:"hashTags"`
	Category string   `json:"category" binding:"required"`
}

// CommentRequest represents a new comment on an idea
type CommentRequest struct {
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// EvaluateRequest represents an evaluation submission. Keys must belong to the
// fixed criterion set and every score must lie in [1,5].
type EvaluateRequest struct {
	Scores   map[string]int `json:"scores" binding:"required"`
	Feedback *string        `json:"feedback,omitempty"`
}

// BranchRequest represents a fork of an existing idea. Category and hashTags
// default to the parent's values when absent.
type BranchRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Changes  *string  `json:"changes,omitempty"`
	HashTags []string `json:"hashTags"`
	Category string   `json:"category"`
}

// LikeResponse reports the outcome of a like toggle or explicit unlike
type LikeResponse struct {
	Success    bool `json:"success"`
	LikesCount int  `json:"likesCount"`
	IsLiked    bool `json:"isLiked"`
}

// EvaluateResponse reports the recomputed rating after an evaluation upsert
type EvaluateResponse struct {
	Success          bool               `json:"success"`
	AverageRating    float64            `json:"averageRating"`
	EvaluationsCount int                `json:"evaluationsCount"`
	UserEvaluation   *models.Evaluation `json:"userEvaluation"`
}

// TagCount is one entry of the popular-tags listing
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}
