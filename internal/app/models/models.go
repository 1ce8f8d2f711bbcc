package models

// RoleType defines the user role type
type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

// Category is the fixed set of idea categories
type Category string

const (
	CategoryTechnology  Category = "technology"
	CategoryBusiness    Category = "business"
	CategoryEducation   Category = "education"
	CategoryHealth      Category = "health"
	CategoryEnvironment Category = "environment"
	CategoryOther       Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryTechnology,
	CategoryBusiness,
	CategoryEducation,
	CategoryHealth,
	CategoryEnvironment,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Criterion identifies one axis of an idea evaluation
type Criterion string

const (
	CriterionFeasibility    Criterion = "feasibility"
	CriterionInnovation     Criterion = "innovation"
	CriterionUsefulness     Criterion = "usefulness"
	CriterionMarketability  Criterion = "marketability"
	CriterionCostEfficiency Criterion = "costEfficiency"
	CriterionSocialImpact   Criterion = "socialImpact"
)

// EvaluationCriteria lists every scored criterion. An evaluation may cover any
// subset of the fixed set, but nothing outside it.
var EvaluationCriteria = []Criterion{
	CriterionFeasibility,
	CriterionInnovation,
	CriterionUsefulness,
	CriterionMarketability,
	CriterionCostEfficiency,
	CriterionSocialImpact,
}

// IsValid reports whether c is one of the known evaluation criteria.
func (c Criterion) IsValid() bool {
	for _, known := range EvaluationCriteria {
		if c == known {
			return true
		}
	}
	return false
}

// Score bounds for a single criterion
const (
	MinScore = 1
	MaxScore = 5
)
