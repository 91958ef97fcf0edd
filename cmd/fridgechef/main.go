// Package main runs a local FridgeChef session: it wires the stores and
// services together, ranks recipes against the fridge contents, and
// walks one simulated grocery checkout. There is no network server; the
// UI layer lives in the mobile app.
package main

import (
	"context"
	"fmt"
	"os"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fridgechef/v2/internal/application/fridge"
	"github.com/fridgechef/v2/internal/application/preference"
	"github.com/fridgechef/v2/internal/application/recommend"
	"github.com/fridgechef/v2/internal/domain/recipe"
	"github.com/fridgechef/v2/internal/infrastructure/config"
	"github.com/fridgechef/v2/internal/infrastructure/grocery"
	"github.com/fridgechef/v2/internal/infrastructure/persistence/memory"
	"github.com/fridgechef/v2/internal/infrastructure/persistence/redis"
	"github.com/fridgechef/v2/internal/infrastructure/spoonacular"
	"github.com/fridgechef/v2/internal/ports/outbound"
	"github.com/fridgechef/v2/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.App.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	store := buildStore(cfg, log)

	prefService := preference.NewService(store, log)
	fridgeService := fridge.NewService(store, log)
	engine := recommend.NewEngine()

	var source outbound.RecipeSource = spoonacular.NewClient(spoonacular.Config{
		BaseURL: cfg.RecipeAPI.BaseURL,
		APIKey:  cfg.RecipeAPI.APIKey,
		Timeout: cfg.RecipeAPI.Timeout,
	}, log)
	if cfg.RecipeAPI.APIKey == "" {
		log.Warn("No recipe API key configured, using bundled sample recipes")
		source = sampleSource{}
	}

	recommender := recommend.NewService(engine, source, prefService, store, log)

	provider := grocery.NewSimulator(grocery.Config{
		FailureRate: cfg.Grocery.FailureRate,
		DeliveryFee: cfg.Grocery.DeliveryFee,
		Currency:    cfg.Grocery.Currency,
	}, log)

	available := fridgeService.List(ctx)
	if len(available) == 0 {
		for _, name := range []string{"tomatoes", "garlic", "pasta", "olive oil"} {
			fridgeService.Add(ctx, name)
		}
		available = fridgeService.List(ctx)
	}
	fmt.Printf("In the fridge: %v\n\n", available)

	ranked, err := recommender.Recommend(ctx, available, cfg.RecipeAPI.MaxResults)
	if err != nil {
		log.Fatal("Recommendation failed", zap.Error(err))
	}

	fmt.Println("Tonight's picks:")
	for i, scored := range ranked {
		if i == 3 {
			break
		}
		fmt.Printf("  %d. %s (%.0f) %v\n", i+1, scored.Recipe.Title, scored.Score, scored.Reasons)
	}

	if suggestions := recommender.SuggestIngredients(ctx, available); len(suggestions) > 0 {
		fmt.Printf("\nWorth picking up: %v\n", suggestions)
	}

	if len(ranked) > 0 {
		checkout(ctx, engine, provider, ranked[0], available, log)
	}
}

// checkout quotes and orders whatever the top recipe still needs
func checkout(
	ctx context.Context,
	engine *recommend.Engine,
	provider outbound.GroceryProvider,
	top recipe.RecipeScore,
	available []string,
	log *zap.Logger,
) {
	missing := engine.MissingIngredients(top.Recipe, available)
	if len(missing) == 0 {
		fmt.Printf("\nYou have everything for %s. Get cooking!\n", top.Recipe.Title)
		return
	}

	quote, err := provider.Quote(ctx, missing)
	if err != nil {
		log.Error("Quote failed", zap.Error(err))
		return
	}
	fmt.Printf("\nMissing for %s: %v\n", top.Recipe.Title, missing)
	fmt.Printf("Delivery quote: %.2f %s (incl. %.2f delivery)\n", quote.Total, quote.Currency, quote.DeliveryFee)

	order, err := provider.PlaceOrder(ctx, quote)
	if err != nil {
		fmt.Printf("Order failed: %v\n", err)
		return
	}
	fmt.Printf("Order %s placed, arriving around %s\n", order.ID, order.EstimatedAt.Format("15:04"))
}

// buildStore picks the configured persistence backend
func buildStore(cfg *config.Config, log *zap.Logger) outbound.KeyValueStore {
	if cfg.Store.Backend == "redis" {
		client := goredis.NewClient(&goredis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Database,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
		})
		return redis.NewStore(client, log)
	}
	return memory.NewStore()
}

// sampleSource serves a few bundled recipes when no API key is set
type sampleSource struct{}

func (sampleSource) FindByIngredients(ctx context.Context, ingredients []string, limit int) ([]recipe.Recipe, error) {
	return sampleRecipes(), nil
}

func (sampleSource) Search(ctx context.Context, query outbound.RecipeQuery) ([]recipe.Recipe, error) {
	return sampleRecipes(), nil
}

func sampleRecipes() []recipe.Recipe {
	health := func(v float64) *float64 { return &v }
	minutes := func(v int) *int { return &v }

	return []recipe.Recipe{
		{
			ID:             "655573",
			Title:          "Penne Arrabbiata",
			Ingredients:    []string{"penne pasta", "tomatoes", "garlic", "olive oil", "chili flakes"},
			HealthScore:    health(62),
			Popularity:     health(81),
			ReadyInMinutes: minutes(25),
			Instructions:   "Cook the penne. Simmer garlic and chili in olive oil, add tomatoes, toss with pasta.",
			Vegetarian:     true,
			Vegan:          true,
			GlutenFree:     false,
		},
		{
			ID:             "715415",
			Title:          "Slow Braised Beef Ragu",
			Ingredients:    []string{"beef chuck", "tomatoes", "red wine", "onion", "carrot", "celery"},
			HealthScore:    health(48),
			Popularity:     health(93),
			ReadyInMinutes: minutes(180),
			Instructions:   "Sear the beef. Soften the vegetables, deglaze with wine, add tomatoes and braise low for three hours. Shred and serve over pappardelle.",
			Vegetarian:     false,
		},
		{
			ID:             "782601",
			Title:          "Caprese Salad",
			Ingredients:    []string{"tomatoes", "mozzarella", "basil", "olive oil"},
			HealthScore:    health(74),
			Popularity:     health(68),
			ReadyInMinutes: minutes(10),
			Instructions:   "Slice tomatoes and mozzarella, layer with basil, dress with oil.",
			Vegetarian:     true,
			GlutenFree:     true,
		},
	}
}
