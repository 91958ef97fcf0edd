package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fridgechef/v2/internal/domain/preference"
	"github.com/fridgechef/v2/internal/domain/recipe"
	"github.com/fridgechef/v2/internal/ports/outbound"
	"github.com/fridgechef/v2/pkg/errors"
	"go.uber.org/zap"
)

// dailyPickTTL keeps the recipe-of-the-day stable for a calendar day
const dailyPickTTL = 24 * time.Hour

// PreferenceReader exposes the preference data the service needs.
// Implemented by the preference application service.
type PreferenceReader interface {
	GetPreferences(ctx context.Context) preference.UserPreferences
	GetCookingHistory(ctx context.Context) []preference.CookingHistoryEntry
}

// Service orchestrates the pure engine with the recipe source and the
// preference store on behalf of the UI layer.
type Service struct {
	engine *Engine
	source outbound.RecipeSource
	prefs  PreferenceReader
	cache  outbound.KeyValueStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new recommendation service
func NewService(
	engine *Engine,
	source outbound.RecipeSource,
	prefs PreferenceReader,
	cache outbound.KeyValueStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		engine: engine,
		source: source,
		prefs:  prefs,
		cache:  cache,
		logger: logger.Named("recommend-service"),
		now:    time.Now,
	}
}

// Recommend fetches candidate recipes for the available ingredients and
// returns them ranked by personalized score.
func (s *Service) Recommend(ctx context.Context, available []string, limit int) ([]recipe.RecipeScore, error) {
	candidates, err := s.source.FindByIngredients(ctx, available, limit)
	if err != nil {
		return nil, errors.NewRecipeSourceError("fetch candidate recipes", err)
	}

	prefs := s.prefs.GetPreferences(ctx)
	history := s.prefs.GetCookingHistory(ctx)

	ranked := s.engine.Rank(candidates, prefs, history, available)

	s.logger.Info("Ranked candidate recipes",
		zap.Int("candidates", len(candidates)),
		zap.Int("available_ingredients", len(available)),
	)

	return ranked, nil
}

// SuggestIngredients proposes ingredients to add to the fridge, based on
// the user's favorites and complementary pairings.
func (s *Service) SuggestIngredients(ctx context.Context, current []string) []string {
	return s.engine.SuggestIngredients(s.prefs.GetPreferences(ctx), current)
}

// RecipeOfTheDay returns the top-ranked recipe for today's fridge
// contents, cached per calendar day so the pick stays stable across
// repeated visits. Cache failures fall through to a fresh computation.
func (s *Service) RecipeOfTheDay(ctx context.Context, available []string) (*recipe.RecipeScore, error) {
	key := fmt.Sprintf("recipeOfTheDay:%s", s.now().Format("2006-01-02"))

	if data, err := s.cache.Get(ctx, key); err == nil {
		var pick recipe.RecipeScore
		if err := json.Unmarshal(data, &pick); err == nil {
			return &pick, nil
		}
		s.logger.Warn("Cached daily pick is corrupt, recomputing", zap.Error(err))
	}

	ranked, err := s.Recommend(ctx, available, 10)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, errors.NewNotFoundError("recipe of the day")
	}

	pick := ranked[0]
	if data, err := json.Marshal(pick); err == nil {
		if err := s.cache.Set(ctx, key, data, dailyPickTTL); err != nil {
			s.logger.Warn("Failed to cache daily pick", zap.Error(err))
		}
	}

	return &pick, nil
}
