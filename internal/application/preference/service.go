// Package preference provides the application layer for user preferences
// and cooking history on top of the key-value persistence port.
//
// Every operation is best-effort by contract: storage failures are
// absorbed here and never propagate to the recommendation engine or its
// callers. Reads fall back to documented defaults; writes are logged and
// dropped.
package preference

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fridgechef/v2/internal/domain/preference"
	"github.com/fridgechef/v2/internal/domain/recipe"
	"github.com/fridgechef/v2/internal/ports/outbound"
	"go.uber.org/zap"
)

// Storage keys for the two logical records
const (
	preferencesKey = "userPreferences"
	historyKey     = "cookingHistory"
)

// Service implements the preference store contract
type Service struct {
	store  outbound.KeyValueStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new preference service backed by the given store
func NewService(store outbound.KeyValueStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.Named("preference-service"),
		now:    time.Now,
	}
}

// GetPreferences returns the persisted preferences, or the documented
// defaults when no record exists or the store cannot be read.
func (s *Service) GetPreferences(ctx context.Context) preference.UserPreferences {
	data, err := s.store.Get(ctx, preferencesKey)
	if err != nil {
		if err != outbound.ErrKeyNotFound {
			s.logger.Warn("Failed to read preferences, using defaults", zap.Error(err))
		}
		return preference.DefaultPreferences()
	}

	var prefs preference.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.logger.Warn("Stored preferences are corrupt, using defaults", zap.Error(err))
		return preference.DefaultPreferences()
	}

	return sanitize(prefs)
}

// UpdatePreferences merges the given partial update over the current
// preferences and persists the result. Shallow field replacement: a set
// field replaces the stored set wholesale. Best-effort; errors are
// logged, not surfaced.
//
// The read-modify-write is not atomic: two concurrent updates race and
// the later write wins. Acceptable for the single-device model.
func (s *Service) UpdatePreferences(ctx context.Context, update preference.Update) {
	prefs := s.GetPreferences(ctx)

	if update.DietaryRestrictions != nil {
		prefs.DietaryRestrictions = *update.DietaryRestrictions
	}
	if update.FavoriteIngredients != nil {
		prefs.FavoriteIngredients = normalizeAll(*update.FavoriteIngredients)
	}
	if update.DislikedIngredients != nil {
		prefs.DislikedIngredients = normalizeAll(*update.DislikedIngredients)
	}
	if update.CuisinePreferences != nil {
		prefs.CuisinePreferences = *update.CuisinePreferences
	}
	if update.MaxCookingTime != nil {
		if *update.MaxCookingTime > 0 {
			prefs.MaxCookingTime = *update.MaxCookingTime
		} else {
			s.logger.Warn("Ignoring non-positive max cooking time",
				zap.Int("max_cooking_time", *update.MaxCookingTime))
		}
	}
	if update.SkillLevel != nil {
		if update.SkillLevel.Valid() {
			prefs.SkillLevel = *update.SkillLevel
		} else {
			s.logger.Warn("Ignoring unknown skill level",
				zap.String("skill_level", string(*update.SkillLevel)))
		}
	}

	s.savePreferences(ctx, prefs)
}

// RecordIngredientPreference marks an ingredient as liked or disliked.
// The name is added to one set and stripped from the other, so an
// ingredient is never in both. Names are normalized to lowercase at this
// boundary so stored membership and matching cannot diverge.
func (s *Service) RecordIngredientPreference(ctx context.Context, name string, liked bool) {
	normalized := recipe.NormalizeIngredient(name)
	if normalized == "" {
		s.logger.Warn("Ignoring empty ingredient name")
		return
	}

	prefs := s.GetPreferences(ctx)
	prefs.FavoriteIngredients = removeName(prefs.FavoriteIngredients, normalized)
	prefs.DislikedIngredients = removeName(prefs.DislikedIngredients, normalized)

	if liked {
		prefs.FavoriteIngredients = append(prefs.FavoriteIngredients, normalized)
	} else {
		prefs.DislikedIngredients = append(prefs.DislikedIngredients, normalized)
	}

	s.savePreferences(ctx, prefs)
}

// GetCookingHistory returns past cook events, most recent first. Empty
// on absence or read failure.
func (s *Service) GetCookingHistory(ctx context.Context) []preference.CookingHistoryEntry {
	data, err := s.store.Get(ctx, historyKey)
	if err != nil {
		if err != outbound.ErrKeyNotFound {
			s.logger.Warn("Failed to read cooking history", zap.Error(err))
		}
		return []preference.CookingHistoryEntry{}
	}

	var history []preference.CookingHistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		s.logger.Warn("Stored cooking history is corrupt", zap.Error(err))
		return []preference.CookingHistoryEntry{}
	}

	return history
}

// RecordCookingEvent upserts a cook event by recipe id. Recording a
// recipe that is already present replaces the old entry and moves it to
// the most-recent position. An out-of-range rating is dropped, the event
// itself is still recorded.
func (s *Service) RecordCookingEvent(ctx context.Context, recipeID string, rating *int, notes string) {
	if recipeID == "" {
		s.logger.Warn("Ignoring cooking event without recipe id")
		return
	}

	if rating != nil && (*rating < 1 || *rating > 5) {
		s.logger.Warn("Dropping out-of-range rating",
			zap.String("recipe_id", recipeID),
			zap.Int("rating", *rating),
		)
		rating = nil
	}

	entry := preference.CookingHistoryEntry{
		RecipeID: recipeID,
		CookedAt: s.now(),
		Rating:   rating,
		Notes:    notes,
	}

	history := s.GetCookingHistory(ctx)
	updated := make([]preference.CookingHistoryEntry, 0, len(history)+1)
	updated = append(updated, entry)
	for _, existing := range history {
		if existing.RecipeID != recipeID {
			updated = append(updated, existing)
		}
	}

	data, err := json.Marshal(updated)
	if err != nil {
		s.logger.Error("Failed to encode cooking history", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, historyKey, data, 0); err != nil {
		s.logger.Error("Failed to persist cooking history", zap.Error(err))
	}
}

// savePreferences persists preferences, absorbing any failure
func (s *Service) savePreferences(ctx context.Context, prefs preference.UserPreferences) {
	data, err := json.Marshal(prefs)
	if err != nil {
		s.logger.Error("Failed to encode preferences", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, preferencesKey, data, 0); err != nil {
		s.logger.Error("Failed to persist preferences", zap.Error(err))
	}
}

// sanitize fills zero values on records written by older versions
func sanitize(prefs preference.UserPreferences) preference.UserPreferences {
	if prefs.DietaryRestrictions == nil {
		prefs.DietaryRestrictions = []preference.DietaryRestriction{}
	}
	if prefs.FavoriteIngredients == nil {
		prefs.FavoriteIngredients = []string{}
	}
	if prefs.DislikedIngredients == nil {
		prefs.DislikedIngredients = []string{}
	}
	if prefs.CuisinePreferences == nil {
		prefs.CuisinePreferences = []string{}
	}
	if prefs.MaxCookingTime <= 0 {
		prefs.MaxCookingTime = preference.DefaultMaxCookingTime
	}
	if !prefs.SkillLevel.Valid() {
		prefs.SkillLevel = preference.SkillBeginner
	}
	return prefs
}

func normalizeAll(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		normalized := recipe.NormalizeIngredient(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

func removeName(names []string, target string) []string {
	out := names[:0]
	for _, name := range names {
		if name != target {
			out = append(out, name)
		}
	}
	return out
}
