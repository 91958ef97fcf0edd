package recipe

import "strings"

// NormalizeIngredient canonicalizes an ingredient name for storage and
// comparison: lowercased and trimmed. All persisted ingredient names go
// through this so set membership and matching agree on case.
func NormalizeIngredient(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IngredientsMatch reports whether two ingredient names refer to the same
// ingredient. The check is a case-insensitive substring test in either
// direction, which tolerates plural and qualifier variation such as
// "tomato" against "tomatoes, diced". Short tokens can false-positive;
// that trade-off is deliberate.
func IngredientsMatch(a, b string) bool {
	a = NormalizeIngredient(a)
	b = NormalizeIngredient(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ContainsIngredient reports whether any name in the list matches the
// candidate under IngredientsMatch.
func ContainsIngredient(list []string, candidate string) bool {
	for _, name := range list {
		if IngredientsMatch(name, candidate) {
			return true
		}
	}
	return false
}
