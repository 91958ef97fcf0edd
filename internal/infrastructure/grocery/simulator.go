// Package grocery provides a simulated grocery-delivery provider.
// Pricing comes from a static table and order placement fails at a
// configurable random rate; no real provider is integrated.
package grocery

import (
	"context"
	"math/rand"
	"time"

	"github.com/fridgechef/v2/internal/domain/recipe"
	"github.com/fridgechef/v2/internal/ports/outbound"
	"github.com/fridgechef/v2/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const providerName = "QuickCart (simulated)"

// basePrices is the mock per-ingredient pricing table. Lookup is by
// the usual substring ingredient matching, so "cherry tomatoes" prices
// as "tomato".
var basePrices = map[string]float64{
	"tomato":     1.20,
	"basil":      2.10,
	"garlic":     0.80,
	"olive oil":  6.50,
	"chicken":    7.90,
	"beef":       9.40,
	"fish":       8.80,
	"pasta":      1.60,
	"rice":       2.30,
	"egg":        3.20,
	"cheese":     4.50,
	"mozzarella": 3.80,
	"butter":     3.40,
	"onion":      0.90,
	"potato":     1.10,
	"mushroom":   2.70,
	"lemon":      0.70,
	"milk":       1.50,
	"cream":      2.20,
	"spinach":    2.40,
}

// defaultItemPrice covers anything not in the table
const defaultItemPrice = 2.50

// Config holds simulator configuration
type Config struct {
	FailureRate float64 // 0..1 probability that order placement fails
	DeliveryFee float64
	Currency    string
}

// Simulator implements outbound.GroceryProvider
type Simulator struct {
	cfg    Config
	logger *zap.Logger
	rand   func() float64
}

// NewSimulator creates a new simulated grocery provider
func NewSimulator(cfg Config, logger *zap.Logger) *Simulator {
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.DeliveryFee <= 0 {
		cfg.DeliveryFee = 4.99
	}
	return &Simulator{
		cfg:    cfg,
		logger: logger.Named("grocery-simulator"),
		rand:   rand.Float64,
	}
}

// Quote prices a basket of ingredient names
func (s *Simulator) Quote(ctx context.Context, items []string) (*outbound.GroceryQuote, error) {
	if len(items) == 0 {
		return nil, errors.NewAppError(errors.CodeEmptyGroceryOrder, "Nothing to order", "")
	}

	quote := &outbound.GroceryQuote{
		DeliveryFee: s.cfg.DeliveryFee,
		Currency:    s.cfg.Currency,
	}
	for _, name := range items {
		price := priceFor(name)
		quote.Items = append(quote.Items, outbound.GroceryLineItem{
			Name:  recipe.NormalizeIngredient(name),
			Price: price,
		})
		quote.Total += price
	}
	quote.Total += quote.DeliveryFee

	return quote, nil
}

// PlaceOrder places a simulated order for a previously obtained quote.
// A configurable fraction of orders fails to mimic provider outages.
func (s *Simulator) PlaceOrder(ctx context.Context, quote *outbound.GroceryQuote) (*outbound.GroceryOrder, error) {
	if quote == nil || len(quote.Items) == 0 {
		return nil, errors.NewAppError(errors.CodeEmptyGroceryOrder, "Nothing to order", "")
	}

	if s.rand() < s.cfg.FailureRate {
		s.logger.Warn("Simulated order placement failure",
			zap.Float64("failure_rate", s.cfg.FailureRate),
		)
		return nil, errors.NewDeliveryUnavailableError(providerName)
	}

	now := time.Now()
	order := &outbound.GroceryOrder{
		ID:          uuid.New().String(),
		Quote:       *quote,
		PlacedAt:    now,
		EstimatedAt: now.Add(time.Duration(30+rand.Intn(31)) * time.Minute),
	}

	s.logger.Info("Placed simulated grocery order",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Quote.Items)),
		zap.Float64("total", order.Quote.Total),
	)

	return order, nil
}

// priceFor looks up the mock price for an ingredient name
func priceFor(name string) float64 {
	for base, price := range basePrices {
		if recipe.IngredientsMatch(base, name) {
			return price
		}
	}
	return defaultItemPrice
}
