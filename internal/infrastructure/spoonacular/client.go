// Package spoonacular implements the recipe source port against a
// Spoonacular-compatible HTTP API.
package spoonacular

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fridgechef/v2/internal/domain/recipe"
	"github.com/fridgechef/v2/internal/ports/outbound"
	"github.com/fridgechef/v2/pkg/errors"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Spoonacular API endpoint
const DefaultBaseURL = "https://api.spoonacular.com"

// Config holds client configuration
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the recipe API. It implements outbound.RecipeSource.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a new recipe API client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetQueryParam("apiKey", cfg.APIKey).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   http,
		logger: logger.Named("spoonacular"),
	}
}

// apiRecipe mirrors the wire shape of a Spoonacular recipe record.
// Numeric fields are pointers so absent values stay distinguishable and
// defaulting can happen once, at the domain boundary.
type apiRecipe struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	HealthScore      *float64 `json:"healthScore"`
	SpoonacularScore *float64 `json:"spoonacularScore"`
	ReadyInMinutes   *int     `json:"readyInMinutes"`
	Instructions     string   `json:"instructions"`
	Vegetarian       bool     `json:"vegetarian"`
	Vegan            bool     `json:"vegan"`
	GlutenFree       bool     `json:"glutenFree"`
	Image            string   `json:"image"`
	SourceURL        string   `json:"sourceUrl"`

	ExtendedIngredients []struct {
		Name string `json:"name"`
	} `json:"extendedIngredients"`
}

// findByIngredientsResult is the slim record returned by the
// find-by-ingredients endpoint; full details come from a bulk lookup.
type findByIngredientsResult struct {
	ID int `json:"id"`
}

// complexSearchResponse wraps complex search results
type complexSearchResponse struct {
	Results []apiRecipe `json:"results"`
}

// FindByIngredients returns recipes cookable from the given ingredients
func (c *Client) FindByIngredients(ctx context.Context, ingredients []string, limit int) ([]recipe.Recipe, error) {
	if limit <= 0 {
		limit = 10
	}

	var slim []findByIngredientsResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ingredients": strings.Join(ingredients, ","),
			"number":      strconv.Itoa(limit),
			"ranking":     "2", // minimize missing ingredients
		}).
		SetResult(&slim).
		Get("/recipes/findByIngredients")
	if err != nil {
		return nil, errors.NewExternalServiceError("spoonacular", err)
	}
	if resp.IsError() {
		return nil, c.statusError("findByIngredients", resp)
	}
	if len(slim) == 0 {
		return []recipe.Recipe{}, nil
	}

	ids := make([]string, len(slim))
	for i, r := range slim {
		ids[i] = strconv.Itoa(r.ID)
	}

	var full []apiRecipe
	resp, err = c.http.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(ids, ",")).
		SetResult(&full).
		Get("/recipes/informationBulk")
	if err != nil {
		return nil, errors.NewExternalServiceError("spoonacular", err)
	}
	if resp.IsError() {
		return nil, c.statusError("informationBulk", resp)
	}

	c.logger.Debug("Fetched recipes by ingredients",
		zap.Int("requested", limit),
		zap.Int("returned", len(full)),
	)

	return mapRecipes(full), nil
}

// Search runs a complex search against the API
func (c *Client) Search(ctx context.Context, query outbound.RecipeQuery) ([]recipe.Recipe, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	params := map[string]string{
		"query":                query.Text,
		"number":               strconv.Itoa(limit),
		"addRecipeInformation": "true",
		"instructionsRequired": "true",
	}
	if query.Diet != "" {
		params["diet"] = query.Diet
	}
	if query.MaxReadyTime > 0 {
		params["maxReadyTime"] = strconv.Itoa(query.MaxReadyTime)
	}

	var result complexSearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/recipes/complexSearch")
	if err != nil {
		return nil, errors.NewExternalServiceError("spoonacular", err)
	}
	if resp.IsError() {
		return nil, c.statusError("complexSearch", resp)
	}

	return mapRecipes(result.Results), nil
}

func (c *Client) statusError(operation string, resp *resty.Response) error {
	c.logger.Warn("Recipe API returned an error status",
		zap.String("operation", operation),
		zap.Int("status", resp.StatusCode()),
	)
	return errors.NewExternalServiceError(
		"spoonacular",
		fmt.Errorf("%s: unexpected status %d", operation, resp.StatusCode()),
	)
}

// mapRecipes converts wire records to domain recipes
func mapRecipes(records []apiRecipe) []recipe.Recipe {
	recipes := make([]recipe.Recipe, len(records))
	for i, record := range records {
		ingredients := make([]string, 0, len(record.ExtendedIngredients))
		for _, ingredient := range record.ExtendedIngredients {
			if name := strings.TrimSpace(ingredient.Name); name != "" {
				ingredients = append(ingredients, name)
			}
		}

		recipes[i] = recipe.Recipe{
			ID:             strconv.Itoa(record.ID),
			Title:          record.Title,
			Ingredients:    ingredients,
			HealthScore:    record.HealthScore,
			Popularity:     record.SpoonacularScore,
			ReadyInMinutes: record.ReadyInMinutes,
			Instructions:   record.Instructions,
			Vegetarian:     record.Vegetarian,
			Vegan:          record.Vegan,
			GlutenFree:     record.GlutenFree,
			ImageURL:       record.Image,
			SourceURL:      record.SourceURL,
		}
	}
	return recipes
}
