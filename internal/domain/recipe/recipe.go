// Package recipe contains the core domain types for recipe records.
// Recipes arrive from an external source and are read-only inputs;
// optional fields are defaulted once, here, rather than at every call site.
package recipe

import (
	"strings"
)

// Defaults applied to missing recipe fields.
const (
	DefaultHealthScore = 50
	DefaultPopularity  = 50

	// DefaultPrepMinutes is used when scoring time fit.
	DefaultPrepMinutes = 60

	// DefaultComplexityPrepMinutes is used when estimating complexity.
	DefaultComplexityPrepMinutes = 30
)

// Recipe represents a recipe record as consumed by the recommendation
// engine. Pointer fields are optional in the upstream API.
type Recipe struct {
	ID          string
	Title       string
	Ingredients []string

	HealthScore    *float64 // 0-100
	Popularity     *float64 // 0-100
	ReadyInMinutes *int
	Instructions   string

	Vegetarian bool
	Vegan      bool
	GlutenFree bool

	ImageURL  string
	SourceURL string
}

// EffectiveHealthScore returns the health score, defaulted when absent.
func (r Recipe) EffectiveHealthScore() float64 {
	if r.HealthScore == nil {
		return DefaultHealthScore
	}
	return *r.HealthScore
}

// EffectivePopularity returns the popularity score, defaulted when absent.
func (r Recipe) EffectivePopularity() float64 {
	if r.Popularity == nil {
		return DefaultPopularity
	}
	return *r.Popularity
}

// PrepMinutes returns the preparation time in minutes, falling back to
// the given default when the record carries none.
func (r Recipe) PrepMinutes(fallback int) int {
	if r.ReadyInMinutes == nil || *r.ReadyInMinutes <= 0 {
		return fallback
	}
	return *r.ReadyInMinutes
}

// Complexity classifies how involved a recipe is to cook.
type Complexity string

const (
	ComplexityEasy   Complexity = "easy"
	ComplexityMedium Complexity = "medium"
	ComplexityHard   Complexity = "hard"
)

// EstimatedComplexity buckets a recipe into easy/medium/hard from its
// preparation time, instruction length and ingredient count. Recipes
// without instruction text cannot be classified and count as medium.
func (r Recipe) EstimatedComplexity() Complexity {
	if strings.TrimSpace(r.Instructions) == "" {
		return ComplexityMedium
	}

	value := float64(r.PrepMinutes(DefaultComplexityPrepMinutes))/10 +
		float64(len(r.Instructions))/100 +
		float64(len(r.Ingredients))

	switch {
	case value < 15:
		return ComplexityEasy
	case value < 30:
		return ComplexityMedium
	default:
		return ComplexityHard
	}
}

// RecipeScore pairs a recipe with its computed recommendation score.
// Scores are ephemeral and recomputed on every ranking request.
type RecipeScore struct {
	Recipe  Recipe
	Score   float64 // 0-100
	Reasons []string
}
