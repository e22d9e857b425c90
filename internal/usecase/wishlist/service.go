// Package wishlist manages per-user saved items and suggests pieces that
// pair with them.
package wishlist

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/usecase/match"
)

// Service coordinates the wishlist repository with the catalog and matcher.
type Service struct {
	repo    Repository
	catalog CatalogReader
	matcher Matcher
	logger  *zap.Logger
}

// New creates a wishlist service.
func New(repo Repository, catalog CatalogReader, matcher Matcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, catalog: catalog, matcher: matcher, logger: logger}
}

// Add saves a catalog item to the user's wishlist. Unknown item IDs are
// rejected with domain.ErrItemNotFound before anything is written.
func (s *Service) Add(ctx context.Context, userID, itemID string) error {
	if _, err := s.catalog.GetByID(itemID); err != nil {
		return fmt.Errorf("wishlist add %s: %w", itemID, err)
	}
	if err := s.repo.Add(ctx, userID, itemID); err != nil {
		return fmt.Errorf("wishlist add %s: %w", itemID, err)
	}
	return nil
}

// Remove deletes an item from the user's wishlist. Removing an item that
// was never saved is not an error.
func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.repo.Remove(ctx, userID, itemID); err != nil {
		return fmt.Errorf("wishlist remove %s: %w", itemID, err)
	}
	return nil
}

// List resolves the user's saved IDs into catalog items, preserving the
// order they were saved in. IDs that no longer resolve (the item left the
// catalog) are skipped, not errored.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Item, error) {
	ids, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wishlist list: %w", err)
	}

	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.catalog.GetByID(id)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				s.logger.Debug("skipping stale wishlist entry", zap.String("item_id", id))
				continue
			}
			return nil, fmt.Errorf("wishlist list resolve %s: %w", id, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Pairings suggests items that complement a saved item, using the anchor
// matching flow. The item must be on the user's wishlist.
func (s *Service) Pairings(ctx context.Context, userID, itemID string, limit int) ([]domain.ScoredItem, error) {
	ids, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wishlist pairings: %w", err)
	}
	if !contains(ids, itemID) {
		return nil, fmt.Errorf("wishlist pairings %s: %w", itemID, domain.ErrItemNotFound)
	}

	results, err := s.matcher.Match(ctx, domain.AnchorRequest{ItemID: itemID}, match.Options{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("wishlist pairings %s: %w", itemID, err)
	}
	return results, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
