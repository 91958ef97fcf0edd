// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/fridgechef/v2/internal/domain/preference"
	"github.com/fridgechef/v2/internal/domain/recipe"
)

// commonIngredients keeps generated recipes within a realistic pantry
var commonIngredients = []string{
	"tomatoes", "garlic", "onion", "olive oil", "butter", "chicken breast",
	"ground beef", "salmon fillet", "pasta", "rice", "eggs", "milk",
	"parmesan", "mozzarella", "basil", "thyme", "lemon", "spinach",
	"mushrooms", "potatoes", "bell pepper", "cream",
}

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
	next  int
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Recipe generates a fully populated recipe record
func (f *RecipeFactory) Recipe() recipe.Recipe {
	f.next++

	health := f.faker.Float64Range(10, 95)
	popularity := f.faker.Float64Range(10, 95)
	minutes := f.faker.Number(10, 120)

	count := f.faker.Number(3, 7)
	ingredients := make([]string, 0, count)
	for len(ingredients) < count {
		name := commonIngredients[f.faker.Number(0, len(commonIngredients)-1)]
		if !contains(ingredients, name) {
			ingredients = append(ingredients, name)
		}
	}

	return recipe.Recipe{
		ID:             strconv.Itoa(100000 + f.next),
		Title:          f.faker.Dinner(),
		Ingredients:    ingredients,
		HealthScore:    &health,
		Popularity:     &popularity,
		ReadyInMinutes: &minutes,
		Instructions:   f.faker.Paragraph(1, 3, 12, " "),
		Vegetarian:     f.faker.Bool(),
		GlutenFree:     f.faker.Bool(),
	}
}

// Recipes generates n recipes
func (f *RecipeFactory) Recipes(n int) []recipe.Recipe {
	recipes := make([]recipe.Recipe, n)
	for i := range recipes {
		recipes[i] = f.Recipe()
	}
	return recipes
}

// BareRecipe generates a recipe with every optional field absent
func (f *RecipeFactory) BareRecipe() recipe.Recipe {
	f.next++
	return recipe.Recipe{
		ID:    strconv.Itoa(100000 + f.next),
		Title: f.faker.Dinner(),
	}
}

// HistoryEntry generates a cooking history entry for the given recipe id
func (f *RecipeFactory) HistoryEntry(recipeID string, rating int) preference.CookingHistoryEntry {
	return preference.CookingHistoryEntry{
		RecipeID: recipeID,
		CookedAt: time.Now().Add(-time.Duration(f.faker.Number(1, 240)) * time.Hour),
		Rating:   &rating,
		Notes:    f.faker.Sentence(6),
	}
}

// PreferencesBuilder provides a fluent interface for building test preferences
type PreferencesBuilder struct {
	prefs preference.UserPreferences
}

// NewPreferencesBuilder starts from the documented defaults
func NewPreferencesBuilder() *PreferencesBuilder {
	return &PreferencesBuilder{prefs: preference.DefaultPreferences()}
}

// WithFavorites sets the favorite ingredient set
func (b *PreferencesBuilder) WithFavorites(names ...string) *PreferencesBuilder {
	b.prefs.FavoriteIngredients = names
	return b
}

// WithDislikes sets the disliked ingredient set
func (b *PreferencesBuilder) WithDislikes(names ...string) *PreferencesBuilder {
	b.prefs.DislikedIngredients = names
	return b
}

// WithRestrictions sets the dietary restrictions
func (b *PreferencesBuilder) WithRestrictions(restrictions ...preference.DietaryRestriction) *PreferencesBuilder {
	b.prefs.DietaryRestrictions = restrictions
	return b
}

// WithMaxCookingTime sets the cooking-time budget
func (b *PreferencesBuilder) WithMaxCookingTime(minutes int) *PreferencesBuilder {
	b.prefs.MaxCookingTime = minutes
	return b
}

// WithSkillLevel sets the declared skill level
func (b *PreferencesBuilder) WithSkillLevel(level preference.SkillLevel) *PreferencesBuilder {
	b.prefs.SkillLevel = level
	return b
}

// Build returns the assembled preferences
func (b *PreferencesBuilder) Build() preference.UserPreferences {
	return b.prefs
}

func contains(list []string, name string) bool {
	for _, existing := range list {
		if existing == name {
			return true
		}
	}
	return false
}
