// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/fridgechef/v2/internal/domain/recipe"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when no value exists
// for the requested key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore defines the interface for local persistent key-value
// storage. The preference store and fridge inventory sit on top of it;
// values are opaque serialized blobs. A ttl of zero means no expiry.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RecipeSource defines the interface for the upstream recipe data API.
// The engine never fetches recipes itself; callers pull candidates
// through this port and feed them in.
type RecipeSource interface {
	FindByIngredients(ctx context.Context, ingredients []string, limit int) ([]recipe.Recipe, error)
	Search(ctx context.Context, query RecipeQuery) ([]recipe.Recipe, error)
}

// RecipeQuery defines search parameters for the recipe source
type RecipeQuery struct {
	Text         string
	Diet         string
	MaxReadyTime int // minutes, 0 means no limit
	Limit        int
}

// GroceryProvider defines the interface for grocery-delivery checkout.
// The shipped implementation is a simulator; no real provider exists.
type GroceryProvider interface {
	Quote(ctx context.Context, items []string) (*GroceryQuote, error)
	PlaceOrder(ctx context.Context, quote *GroceryQuote) (*GroceryOrder, error)
}

// GroceryLineItem is one priced item in a quote
type GroceryLineItem struct {
	Name  string
	Price float64
}

// GroceryQuote is a priced basket for a set of missing ingredients
type GroceryQuote struct {
	Items       []GroceryLineItem
	DeliveryFee float64
	Total       float64
	Currency    string
}

// GroceryOrder is a placed (simulated) delivery order
type GroceryOrder struct {
	ID          string
	Quote       GroceryQuote
	PlacedAt    time.Time
	EstimatedAt time.Time
}
