package preference

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/fridgechef/v2/internal/domain/preference"
	"github.com/fridgechef/v2/internal/infrastructure/persistence/memory"
)

// brokenStore fails every operation, standing in for exhausted device
// storage or a wedged backend.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, assert.AnError
}

func (brokenStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return assert.AnError
}

func (brokenStore) Delete(ctx context.Context, key string) error { return assert.AnError }

func (brokenStore) Exists(ctx context.Context, key string) (bool, error) {
	return false, assert.AnError
}

// ServiceTestSuite provides a test suite for the preference service
type ServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service *Service
	ctx     context.Context
}

// SetupSubTest gives every subtest a fresh store
func (suite *ServiceTestSuite) SetupSubTest() {
	suite.store = memory.NewStore()
	suite.service = NewService(suite.store, zap.NewNop())
	suite.ctx = context.Background()
}

func (suite *ServiceTestSuite) TearDownSubTest() {
	suite.store.Close()
}

func (suite *ServiceTestSuite) TestGetPreferences() {
	suite.Run("EmptyStore_ReturnsDefaults", func() {
		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), preference.DefaultPreferences(), prefs)
	})

	suite.Run("FailingStore_ReturnsDefaults", func() {
		service := NewService(brokenStore{}, zap.NewNop())

		prefs := service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), preference.DefaultPreferences(), prefs)
	})

	suite.Run("CorruptRecord_ReturnsDefaults", func() {
		err := suite.store.Set(suite.ctx, "userPreferences", []byte("{not json"), 0)
		require.NoError(suite.T(), err)

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), preference.DefaultPreferences(), prefs)
	})

	suite.Run("PartialRecord_MissingFieldsFilledWithDefaults", func() {
		err := suite.store.Set(suite.ctx, "userPreferences", []byte(`{"favoriteIngredients":["basil"]}`), 0)
		require.NoError(suite.T(), err)

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), []string{"basil"}, prefs.FavoriteIngredients)
		assert.Equal(suite.T(), preference.DefaultMaxCookingTime, prefs.MaxCookingTime)
		assert.Equal(suite.T(), preference.SkillBeginner, prefs.SkillLevel)
		assert.NotNil(suite.T(), prefs.DislikedIngredients)
	})
}

func (suite *ServiceTestSuite) TestUpdatePreferences() {
	suite.Run("PartialUpdate_OnlySetFieldsChange", func() {
		maxTime := 45
		suite.service.UpdatePreferences(suite.ctx, preference.Update{MaxCookingTime: &maxTime})

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), 45, prefs.MaxCookingTime)
		assert.Equal(suite.T(), preference.SkillBeginner, prefs.SkillLevel)
	})

	suite.Run("SetField_ReplacesStoredSetWholesale", func() {
		favorites := []string{"Basil", "garlic", "basil"}
		suite.service.UpdatePreferences(suite.ctx, preference.Update{FavoriteIngredients: &favorites})

		replacement := []string{"thyme"}
		suite.service.UpdatePreferences(suite.ctx, preference.Update{FavoriteIngredients: &replacement})

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), []string{"thyme"}, prefs.FavoriteIngredients)
	})

	suite.Run("IngredientNames_NormalizedAndDeduplicated", func() {
		favorites := []string{"  Basil ", "garlic", "BASIL"}
		suite.service.UpdatePreferences(suite.ctx, preference.Update{FavoriteIngredients: &favorites})

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), []string{"basil", "garlic"}, prefs.FavoriteIngredients)
	})

	suite.Run("InvalidValues_IgnoredFieldwise", func() {
		badTime := -5
		badSkill := preference.SkillLevel("wizard")
		goodCuisines := []string{"italian"}
		suite.service.UpdatePreferences(suite.ctx, preference.Update{
			MaxCookingTime:     &badTime,
			SkillLevel:         &badSkill,
			CuisinePreferences: &goodCuisines,
		})

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), preference.DefaultMaxCookingTime, prefs.MaxCookingTime)
		assert.Equal(suite.T(), preference.SkillBeginner, prefs.SkillLevel)
		assert.Equal(suite.T(), []string{"italian"}, prefs.CuisinePreferences)
	})

	suite.Run("FailingStore_DoesNotPanic", func() {
		service := NewService(brokenStore{}, zap.NewNop())
		level := preference.SkillAdvanced

		assert.NotPanics(suite.T(), func() {
			service.UpdatePreferences(suite.ctx, preference.Update{SkillLevel: &level})
		})
	})
}

func (suite *ServiceTestSuite) TestRecordIngredientPreference() {
	suite.Run("LikeThenDislike_NameInExactlyOneSet", func() {
		suite.service.RecordIngredientPreference(suite.ctx, "Cilantro", true)

		prefs := suite.service.GetPreferences(suite.ctx)
		assert.Contains(suite.T(), prefs.FavoriteIngredients, "cilantro")
		assert.NotContains(suite.T(), prefs.DislikedIngredients, "cilantro")

		suite.service.RecordIngredientPreference(suite.ctx, "cilantro", false)

		prefs = suite.service.GetPreferences(suite.ctx)
		assert.NotContains(suite.T(), prefs.FavoriteIngredients, "cilantro")
		assert.Contains(suite.T(), prefs.DislikedIngredients, "cilantro")
	})

	suite.Run("RepeatedLike_NoDuplicate", func() {
		suite.service.RecordIngredientPreference(suite.ctx, "garlic", true)
		suite.service.RecordIngredientPreference(suite.ctx, "garlic", true)

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Equal(suite.T(), []string{"garlic"}, prefs.FavoriteIngredients)
	})

	suite.Run("EmptyName_Ignored", func() {
		suite.service.RecordIngredientPreference(suite.ctx, "   ", true)

		prefs := suite.service.GetPreferences(suite.ctx)

		assert.Empty(suite.T(), prefs.FavoriteIngredients)
	})
}

func (suite *ServiceTestSuite) TestCookingHistory() {
	suite.Run("EmptyStore_ReturnsEmptyHistory", func() {
		history := suite.service.GetCookingHistory(suite.ctx)

		assert.NotNil(suite.T(), history)
		assert.Empty(suite.T(), history)
	})

	suite.Run("RecordEvent_MostRecentFirst", func() {
		rating := 4
		suite.service.RecordCookingEvent(suite.ctx, "111", &rating, "good")
		suite.service.RecordCookingEvent(suite.ctx, "222", nil, "")

		history := suite.service.GetCookingHistory(suite.ctx)

		require.Len(suite.T(), history, 2)
		assert.Equal(suite.T(), "222", history[0].RecipeID)
		assert.Equal(suite.T(), "111", history[1].RecipeID)
		require.NotNil(suite.T(), history[1].Rating)
		assert.Equal(suite.T(), 4, *history[1].Rating)
	})

	suite.Run("SameRecipeTwice_SingleEntryMovedToFront", func() {
		first := 2
		second := 5
		suite.service.RecordCookingEvent(suite.ctx, "111", &first, "meh")
		suite.service.RecordCookingEvent(suite.ctx, "222", nil, "")
		suite.service.RecordCookingEvent(suite.ctx, "111", &second, "much better")

		history := suite.service.GetCookingHistory(suite.ctx)

		require.Len(suite.T(), history, 2)
		assert.Equal(suite.T(), "111", history[0].RecipeID)
		require.NotNil(suite.T(), history[0].Rating)
		assert.Equal(suite.T(), 5, *history[0].Rating)
		assert.Equal(suite.T(), "much better", history[0].Notes)
	})

	suite.Run("OutOfRangeRating_DroppedButEventRecorded", func() {
		rating := 11
		suite.service.RecordCookingEvent(suite.ctx, "333", &rating, "")

		history := suite.service.GetCookingHistory(suite.ctx)

		require.Len(suite.T(), history, 1)
		assert.Equal(suite.T(), "333", history[0].RecipeID)
		assert.Nil(suite.T(), history[0].Rating)
	})

	suite.Run("MissingRecipeID_Ignored", func() {
		suite.service.RecordCookingEvent(suite.ctx, "", nil, "")

		assert.Empty(suite.T(), suite.service.GetCookingHistory(suite.ctx))
	})

	suite.Run("FailingStore_DoesNotPanic", func() {
		service := NewService(brokenStore{}, zap.NewNop())

		assert.NotPanics(suite.T(), func() {
			service.RecordCookingEvent(suite.ctx, "111", nil, "")
		})
		assert.Empty(suite.T(), service.GetCookingHistory(suite.ctx))
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
