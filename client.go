package stylist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/styleloom/stylist/internal/catalog"
	"github.com/styleloom/stylist/internal/db"
	dbMemory "github.com/styleloom/stylist/internal/db/memory"
	dbRedis "github.com/styleloom/stylist/internal/db/redis"
	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/repository/closet"
	"github.com/styleloom/stylist/internal/usecase/extract"
	matchuc "github.com/styleloom/stylist/internal/usecase/match"
	outfituc "github.com/styleloom/stylist/internal/usecase/outfit"
	wishlistuc "github.com/styleloom/stylist/internal/usecase/wishlist"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the stylist SDK entry point. It runs the matching engine
// in-process against a loaded catalog.
type Client struct {
	store        db.Store
	catalog      *catalog.Catalog
	matchSvc     *matchuc.Service
	outfitSvc    *outfituc.Service
	wishlistSvc  *wishlistuc.Service
	defaultLimit int
}

// New creates a stylist Client. A catalog source is required (WithItems or
// WithCatalogFile); the wishlist store defaults to process memory.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{driver: "memory"}
	for _, o := range opts {
		o.apply(cfg)
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("stylist: store not ready: %w", err)
	}

	return wireClient(store, cat, cfg), nil
}

func buildCatalog(cfg *clientConfig) (*catalog.Catalog, error) {
	if len(cfg.items) > 0 {
		items := make([]domain.Item, len(cfg.items))
		for i, it := range cfg.items {
			items[i] = itemToDomain(it)
		}
		c, err := catalog.New(items)
		if err != nil {
			return nil, fmt.Errorf("stylist: build catalog: %w", err)
		}
		return c, nil
	}
	if cfg.catalogPath != "" {
		c, err := catalog.LoadFile(cfg.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("stylist: load catalog: %w", err)
		}
		return c, nil
	}
	return nil, errors.New("stylist: catalog required (use WithItems or WithCatalogFile)")
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return dbMemory.NewStore(), nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Username: cfg.username,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("stylist: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("stylist: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cat *catalog.Catalog, cfg *clientConfig) *Client {
	weights := matchuc.DefaultWeights()
	if cfg.weights != nil {
		weights = *cfg.weights
	}

	extractor := extract.New(cat)
	scorer := matchuc.NewScorer(weights)
	matchSvc := matchuc.New(cat, extractor, scorer, cfg.logger)
	outfitSvc := outfituc.New(cat, scorer, cfg.logger)
	wishlistSvc := wishlistuc.New(closet.New(store), cat, matchSvc, cfg.logger)

	limit := cfg.defaultLimit
	if limit <= 0 {
		limit = matchuc.DefaultLimit
	}

	return &Client{
		store:        store,
		catalog:      cat,
		matchSvc:     matchSvc,
		outfitSvc:    outfitSvc,
		wishlistSvc:  wishlistSvc,
		defaultLimit: limit,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Items returns every catalog item in load order.
func (c *Client) Items() []Item {
	return itemsFromDomain(c.catalog.GetAll())
}

// Item returns a catalog item by ID.
func (c *Client) Item(id string) (Item, error) {
	it, err := c.catalog.GetByID(id)
	if err != nil {
		return Item{}, fmt.Errorf("item %s: %w", id, err)
	}
	return itemFromDomain(it), nil
}

// MatchOccasion returns items suiting a free-text occasion, best first.
func (c *Client) MatchOccasion(ctx context.Context, occasion string, limit int) ([]Match, error) {
	return c.match(ctx, domain.OccasionRequest{Occasion: occasion}, limit)
}

// MatchChat returns items matching a natural-language request, best first.
func (c *Client) MatchChat(ctx context.Context, message string, limit int) ([]Match, error) {
	return c.match(ctx, domain.ChatRequest{Text: message}, limit)
}

// MatchFilters returns items matching explicit attribute filters, best first.
func (c *Client) MatchFilters(ctx context.Context, f Filters, limit int) ([]Match, error) {
	cats := make([]domain.Category, len(f.Categories))
	for i, cat := range f.Categories {
		cats[i] = domain.Category(cat)
	}
	return c.match(ctx, domain.FiltersRequest{
		Categories: cats,
		Colors:     f.Colors,
		Style:      f.Style,
		Occasion:   f.Occasion,
	}, limit)
}

// Similar returns items resembling an existing catalog item. Weak
// resemblances are cut by a minimum-score threshold.
func (c *Client) Similar(ctx context.Context, itemID string, limit int) ([]Match, error) {
	results, err := c.matchSvc.Similar(ctx, itemID, c.limitOr(limit))
	if err != nil {
		return nil, fmt.Errorf("similar %s: %w", itemID, err)
	}
	return matchesFromDomain(results), nil
}

// Outfits curates complete outfits for an occasion.
func (c *Client) Outfits(ctx context.Context, occasion string, count int) []Outfit {
	outfits := c.outfitSvc.Curate(ctx, occasion, count)
	out := make([]Outfit, len(outfits))
	for i, o := range outfits {
		out[i] = outfitFromDomain(o)
	}
	return out
}

// Wishlist returns the wishlist handle for a user.
func (c *Client) Wishlist(userID string) *Wishlist {
	return &Wishlist{userID: userID, svc: c.wishlistSvc, defaultLimit: c.defaultLimit}
}

func (c *Client) match(ctx context.Context, req domain.Request, limit int) ([]Match, error) {
	results, err := c.matchSvc.Match(ctx, req, matchuc.Options{Limit: c.limitOr(limit)})
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	return matchesFromDomain(results), nil
}

func (c *Client) limitOr(limit int) int {
	if limit <= 0 {
		return c.defaultLimit
	}
	return limit
}

// Wishlist manages one user's saved items.
type Wishlist struct {
	userID       string
	svc          *wishlistuc.Service
	defaultLimit int
}

// Add saves a catalog item.
func (w *Wishlist) Add(ctx context.Context, itemID string) error {
	return w.svc.Add(ctx, w.userID, itemID)
}

// Remove deletes a saved item. Removing an absent item is not an error.
func (w *Wishlist) Remove(ctx context.Context, itemID string) error {
	return w.svc.Remove(ctx, w.userID, itemID)
}

// Items returns the saved items in insertion order.
func (w *Wishlist) Items(ctx context.Context) ([]Item, error) {
	items, err := w.svc.List(ctx, w.userID)
	if err != nil {
		return nil, err
	}
	return itemsFromDomain(items), nil
}

// Pairings suggests items that complement a saved item.
func (w *Wishlist) Pairings(ctx context.Context, itemID string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = w.defaultLimit
	}
	results, err := w.svc.Pairings(ctx, w.userID, itemID, limit)
	if err != nil {
		return nil, err
	}
	return matchesFromDomain(results), nil
}
