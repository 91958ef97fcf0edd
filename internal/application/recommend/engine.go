// Package recommend implements the personalized recipe scoring and
// recommendation engine.
//
// Scoring is pure computation: the engine holds no mutable state, does
// no I/O, and is safe for concurrent use. Preferences and history are
// passed in by the caller; malformed recipe records never raise, missing
// fields use the documented defaults.
package recommend

import (
	"math"
	"sort"

	"github.com/fridgechef/v2/internal/domain/preference"
	"github.com/fridgechef/v2/internal/domain/recipe"
)

// Scoring weights and bonuses. The final score is the clamped sum of
// independent weighted terms.
const (
	healthWeight     = 0.3
	popularityWeight = 0.2

	availabilityWeight = 20.0

	timeFitBonus    = 15.0
	quickBonus      = 10.0 // extra when prep <= quickMinutes
	quickMinutes    = 30
	overTimePenalty = 10.0

	favoriteBonus   = 8.0
	dislikedPenalty = 15.0

	ratingWeight = 5.0

	dietaryBonus = 10.0
)

// skillBonus maps (skill level, complexity) to a flat bonus or penalty
var skillBonus = map[preference.SkillLevel]map[recipe.Complexity]float64{
	preference.SkillBeginner: {
		recipe.ComplexityEasy:   10,
		recipe.ComplexityMedium: 0,
		recipe.ComplexityHard:   -10,
	},
	preference.SkillIntermediate: {
		recipe.ComplexityEasy:   5,
		recipe.ComplexityMedium: 10,
		recipe.ComplexityHard:   5,
	},
	preference.SkillAdvanced: {
		recipe.ComplexityEasy:   8,
		recipe.ComplexityMedium: 8,
		recipe.ComplexityHard:   15,
	},
}

// Engine computes personalized recipe scores
type Engine struct{}

// NewEngine creates a new scoring engine
func NewEngine() *Engine {
	return &Engine{}
}

// Score computes the recommendation score for a single recipe, in
// [0,100]. See ScoreWithReasons for the term breakdown.
func (e *Engine) Score(
	rec recipe.Recipe,
	prefs preference.UserPreferences,
	history []preference.CookingHistoryEntry,
	available []string,
) float64 {
	score, _ := e.ScoreWithReasons(rec, prefs, history, available)
	return score
}

// ScoreWithReasons computes the score together with human-readable
// reason tags explaining which terms fired.
func (e *Engine) ScoreWithReasons(
	rec recipe.Recipe,
	prefs preference.UserPreferences,
	history []preference.CookingHistoryEntry,
	available []string,
) (float64, []string) {
	var reasons []string

	// Base quality from upstream health and popularity indices
	score := rec.EffectiveHealthScore()*healthWeight + rec.EffectivePopularity()*popularityWeight
	if rec.EffectiveHealthScore() >= 70 {
		reasons = append(reasons, "healthy choice")
	}

	// Ingredient availability: fraction of recipe ingredients on hand
	if fraction := availabilityFraction(rec.Ingredients, available); fraction > 0 {
		score += fraction * availabilityWeight
		if fraction >= 0.75 {
			reasons = append(reasons, "most ingredients on hand")
		} else {
			reasons = append(reasons, "some ingredients on hand")
		}
	}

	// Time fit against the user's cooking-time budget
	maxTime := prefs.MaxCookingTime
	if maxTime <= 0 {
		maxTime = preference.DefaultMaxCookingTime
	}
	prep := rec.PrepMinutes(recipe.DefaultPrepMinutes)
	if prep <= maxTime {
		score += timeFitBonus
		if prep <= quickMinutes {
			score += quickBonus
			reasons = append(reasons, "quick to make")
		} else {
			reasons = append(reasons, "fits your schedule")
		}
	} else {
		score -= overTimePenalty
	}

	// Favorite and disliked ingredient matches
	if favorites := countMatches(rec.Ingredients, prefs.FavoriteIngredients); favorites > 0 {
		score += float64(favorites) * favoriteBonus
		reasons = append(reasons, "uses ingredients you love")
	}
	if disliked := countMatches(rec.Ingredients, prefs.DislikedIngredients); disliked > 0 {
		score -= float64(disliked) * dislikedPenalty
		reasons = append(reasons, "contains ingredients you dislike")
	}

	// History: a past rating for this recipe weighs in directly
	if rating, ok := pastRating(history, rec.ID); ok {
		score += float64(rating) * ratingWeight
		reasons = append(reasons, "you cooked this before")
	}

	// Dietary compliance: only rewarded when restrictions are active
	// and the recipe satisfies every one of them
	if len(prefs.DietaryRestrictions) > 0 && satisfiesAll(rec, prefs.DietaryRestrictions) {
		score += dietaryBonus
		reasons = append(reasons, "fits your dietary needs")
	}

	// Skill-level fit from estimated complexity
	if bonus := skillBonus[prefs.SkillLevel][rec.EstimatedComplexity()]; bonus != 0 {
		score += bonus
		if bonus > 0 {
			reasons = append(reasons, "matches your skill level")
		}
	}

	return clamp(score, 0, 100), reasons
}

// Rank scores every candidate and returns them sorted by descending
// score. The result is recomputed on each call; ties keep input order.
func (e *Engine) Rank(
	recipes []recipe.Recipe,
	prefs preference.UserPreferences,
	history []preference.CookingHistoryEntry,
	available []string,
) []recipe.RecipeScore {
	scored := make([]recipe.RecipeScore, len(recipes))
	for i, rec := range recipes {
		score, reasons := e.ScoreWithReasons(rec, prefs, history, available)
		scored[i] = recipe.RecipeScore{Recipe: rec, Score: score, Reasons: reasons}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// MissingIngredients returns the recipe ingredients not matched by
// anything currently available, in recipe order. This feeds the grocery
// checkout for whatever the fridge lacks.
func (e *Engine) MissingIngredients(rec recipe.Recipe, available []string) []string {
	var missing []string
	for _, ingredient := range rec.Ingredients {
		if !recipe.ContainsIngredient(available, ingredient) {
			missing = append(missing, ingredient)
		}
	}
	return missing
}

// availabilityFraction returns the fraction of recipe ingredients found
// among the available ones. Zero for an empty ingredient list.
func availabilityFraction(ingredients, available []string) float64 {
	if len(ingredients) == 0 {
		return 0
	}
	matched := 0
	for _, ingredient := range ingredients {
		if recipe.ContainsIngredient(available, ingredient) {
			matched++
		}
	}
	return float64(matched) / float64(len(ingredients))
}

// countMatches counts recipe ingredients that match any name in the set
func countMatches(ingredients, set []string) int {
	count := 0
	for _, ingredient := range ingredients {
		if recipe.ContainsIngredient(set, ingredient) {
			count++
		}
	}
	return count
}

// pastRating finds a rated history entry for the recipe
func pastRating(history []preference.CookingHistoryEntry, recipeID string) (int, bool) {
	if recipeID == "" {
		return 0, false
	}
	for _, entry := range history {
		if entry.RecipeID == recipeID && entry.Rating != nil {
			return *entry.Rating, true
		}
	}
	return 0, false
}

// satisfiesAll reports whether the recipe's dietary tags satisfy every
// active restriction. Unknown restriction tags are never satisfied.
func satisfiesAll(rec recipe.Recipe, restrictions []preference.DietaryRestriction) bool {
	for _, restriction := range restrictions {
		switch restriction {
		case preference.DietaryVegetarian:
			if !rec.Vegetarian {
				return false
			}
		case preference.DietaryVegan:
			if !rec.Vegan {
				return false
			}
		case preference.DietaryGlutenFree:
			if !rec.GlutenFree {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func clamp(value, min, max float64) float64 {
	return math.Min(max, math.Max(min, value))
}
