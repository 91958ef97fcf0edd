package recommend

import (
	"github.com/fridgechef/v2/internal/domain/preference"
	"github.com/fridgechef/v2/internal/domain/recipe"
)

// MaxSuggestions caps the number of suggested ingredient names
const MaxSuggestions = 8

// pairing maps a base ingredient to ingredients commonly cooked with it.
// Order matters: suggestions follow table-definition order.
type pairing struct {
	base        string
	complements []string
}

// complementaryPairings is a static lookup of classic combinations.
// Keys are matched by substring containment against what is on hand.
var complementaryPairings = []pairing{
	{"tomato", []string{"basil", "mozzarella", "garlic", "olive oil"}},
	{"chicken", []string{"rosemary", "thyme", "lemon", "garlic"}},
	{"pasta", []string{"parmesan", "basil", "olive oil", "black pepper"}},
	{"egg", []string{"chives", "cheese", "spinach", "bacon"}},
	{"potato", []string{"rosemary", "butter", "sour cream", "chives"}},
	{"beef", []string{"onion", "mushroom", "thyme", "red wine"}},
	{"fish", []string{"lemon", "dill", "capers", "butter"}},
	{"rice", []string{"soy sauce", "ginger", "scallion", "sesame oil"}},
	{"mushroom", []string{"garlic", "thyme", "cream", "parsley"}},
	{"onion", []string{"garlic", "celery", "carrot", "butter"}},
}

// SuggestIngredients proposes up to MaxSuggestions ingredients to add to
// what the user currently has: their favorites first, then complementary
// pairings for ingredients already on hand. Anything already present or
// disliked is excluded.
func (e *Engine) SuggestIngredients(prefs preference.UserPreferences, current []string) []string {
	suggestions := make([]string, 0, MaxSuggestions)
	seen := make(map[string]bool)

	add := func(name string) bool {
		normalized := recipe.NormalizeIngredient(name)
		if normalized == "" || seen[normalized] {
			return len(suggestions) < MaxSuggestions
		}
		if recipe.ContainsIngredient(current, normalized) {
			return true
		}
		if recipe.ContainsIngredient(prefs.DislikedIngredients, normalized) {
			return true
		}
		seen[normalized] = true
		suggestions = append(suggestions, normalized)
		return len(suggestions) < MaxSuggestions
	}

	for _, favorite := range prefs.FavoriteIngredients {
		if !add(favorite) {
			return suggestions
		}
	}

	for _, p := range complementaryPairings {
		if !recipe.ContainsIngredient(current, p.base) {
			continue
		}
		for _, complement := range p.complements {
			if !add(complement) {
				return suggestions
			}
		}
	}

	return suggestions
}
