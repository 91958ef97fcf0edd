package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fridgechef", cfg.App.Name)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "https://api.spoonacular.com", cfg.RecipeAPI.BaseURL)
	assert.Equal(t, 10, cfg.RecipeAPI.MaxResults)
	assert.Equal(t, "USD", cfg.Grocery.Currency)
	assert.InDelta(t, 0.1, cfg.Grocery.FailureRate, 0.001)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FRIDGECHEF_STORE_BACKEND", "redis")
	t.Setenv("FRIDGECHEF_REDIS_HOST", "cache.internal")
	t.Setenv("FRIDGECHEF_RECIPE_API_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
	assert.Equal(t, "secret", cfg.RecipeAPI.APIKey)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Run("UnknownStoreBackend", func(t *testing.T) {
		t.Setenv("FRIDGECHEF_STORE_BACKEND", "sqlite")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("FailureRateOutOfRange", func(t *testing.T) {
		t.Setenv("FRIDGECHEF_GROCERY_FAILURE_RATE", "1.5")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("NonPositiveMaxResults", func(t *testing.T) {
		t.Setenv("FRIDGECHEF_RECIPE_API_MAX_RESULTS", "0")

		_, err := Load()

		assert.Error(t, err)
	})
}
