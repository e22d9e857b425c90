package wishlist

import (
	"context"

	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/usecase/match"
)

// Repository persists per-user saved item IDs.
type Repository interface {
	Add(ctx context.Context, userID, itemID string) error
	Remove(ctx context.Context, userID, itemID string) error
	List(ctx context.Context, userID string) ([]string, error)
}

// CatalogReader resolves item IDs against the catalog.
type CatalogReader interface {
	GetByID(id string) (domain.Item, error)
}

// Matcher finds items pairing with an anchor.
type Matcher interface {
	Match(ctx context.Context, req domain.Request, opts match.Options) ([]domain.ScoredItem, error)
}
