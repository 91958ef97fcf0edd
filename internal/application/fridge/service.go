// Package fridge provides the application layer for the user's fridge
// inventory, persisted through the key-value port.
package fridge

import (
	"context"
	"encoding/json"

	"github.com/fridgechef/v2/internal/domain/recipe"
	"github.com/fridgechef/v2/internal/ports/outbound"
	"go.uber.org/zap"
)

const inventoryKey = "fridgeContents"

// Service manages the list of ingredients currently on hand. Names are
// normalized to lowercase and de-duplicated; order of insertion is kept.
// Like the preference store, reads fall back to empty and write failures
// are logged, not surfaced.
type Service struct {
	store  outbound.KeyValueStore
	logger *zap.Logger
}

// NewService creates a new fridge inventory service
func NewService(store outbound.KeyValueStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.Named("fridge-service"),
	}
}

// List returns the ingredients currently in the fridge
func (s *Service) List(ctx context.Context) []string {
	data, err := s.store.Get(ctx, inventoryKey)
	if err != nil {
		if err != outbound.ErrKeyNotFound {
			s.logger.Warn("Failed to read fridge contents", zap.Error(err))
		}
		return []string{}
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("Stored fridge contents are corrupt", zap.Error(err))
		return []string{}
	}
	return items
}

// Add puts an ingredient into the fridge. Exact duplicates (after
// normalization) are ignored.
func (s *Service) Add(ctx context.Context, name string) {
	normalized := recipe.NormalizeIngredient(name)
	if normalized == "" {
		s.logger.Warn("Ignoring empty ingredient name")
		return
	}

	items := s.List(ctx)
	for _, existing := range items {
		if existing == normalized {
			return
		}
	}

	s.save(ctx, append(items, normalized))
}

// Remove takes an ingredient out of the fridge
func (s *Service) Remove(ctx context.Context, name string) {
	normalized := recipe.NormalizeIngredient(name)
	items := s.List(ctx)

	kept := make([]string, 0, len(items))
	for _, existing := range items {
		if existing != normalized {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(items) {
		return
	}

	s.save(ctx, kept)
}

func (s *Service) save(ctx context.Context, items []string) {
	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("Failed to encode fridge contents", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, inventoryKey, data, 0); err != nil {
		s.logger.Error("Failed to persist fridge contents", zap.Error(err))
	}
}
