// Package preference defines the user preference and cooking history
// domain types used by the recommendation engine.
package preference

import (
	"time"
)

// SkillLevel represents the user's declared cooking skill
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Valid reports whether the skill level is a known value
func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// DietaryRestriction represents a dietary restriction tag
type DietaryRestriction string

const (
	DietaryVegetarian DietaryRestriction = "vegetarian"
	DietaryVegan      DietaryRestriction = "vegan"
	DietaryGlutenFree DietaryRestriction = "glutenFree"
)

// DefaultMaxCookingTime is the fallback cooking-time budget in minutes
const DefaultMaxCookingTime = 60

// UserPreferences holds everything the engine knows about a user's taste.
// There is one record per device; there is no authentication layer.
type UserPreferences struct {
	DietaryRestrictions []DietaryRestriction `json:"dietaryRestrictions"`
	FavoriteIngredients []string             `json:"favoriteIngredients"`
	DislikedIngredients []string             `json:"dislikedIngredients"`

	// CuisinePreferences is reserved; scoring does not consume it yet.
	CuisinePreferences []string `json:"cuisinePreferences"`

	MaxCookingTime int        `json:"maxCookingTime"` // minutes
	SkillLevel     SkillLevel `json:"skillLevel"`
}

// DefaultPreferences returns the documented defaults used whenever no
// record exists or the store cannot be read.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		DietaryRestrictions: []DietaryRestriction{},
		FavoriteIngredients: []string{},
		DislikedIngredients: []string{},
		CuisinePreferences:  []string{},
		MaxCookingTime:      DefaultMaxCookingTime,
		SkillLevel:          SkillBeginner,
	}
}

// Update carries a partial preference update. Nil fields are left
// untouched; set fields replace the stored value wholesale (sets are not
// deep-merged).
type Update struct {
	DietaryRestrictions *[]DietaryRestriction
	FavoriteIngredients *[]string
	DislikedIngredients *[]string
	CuisinePreferences  *[]string
	MaxCookingTime      *int
	SkillLevel          *SkillLevel
}

// CookingHistoryEntry records the most recent cook event for a recipe.
// At most one entry exists per recipe id.
type CookingHistoryEntry struct {
	RecipeID string    `json:"recipeId"`
	CookedAt time.Time `json:"cookedAt"`
	Rating   *int      `json:"rating,omitempty"` // 1-5
	Notes    string    `json:"notes,omitempty"`
}
