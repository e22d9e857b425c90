// Package match implements the deterministic scoring engine and ranker: it
// scores every catalog item against a normalized query with a fixed additive
// rule set and returns the ordered, limited result. A call touches no shared
// mutable state, so the service is safe under arbitrary concurrent use.
package match

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/metrics"
)

// Options tune a single match call.
type Options struct {
	// Limit is the maximum result size; zero or negative falls back to
	// DefaultLimit.
	Limit int
	// MinScore drops items scoring below it; zero keeps everything.
	MinScore int
}

// Service runs match requests end to end: normalize, score, rank.
type Service struct {
	catalog   CatalogReader
	extractor QueryExtractor
	scorer    *Scorer
	logger    *zap.Logger
}

// New creates a match service.
func New(catalog CatalogReader, extractor QueryExtractor, scorer *Scorer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, extractor: extractor, scorer: scorer, logger: logger}
}

// Match resolves the request into a query and returns the ranked matches.
// An empty catalog yields an empty result, not an error.
func (s *Service) Match(ctx context.Context, req domain.Request, opts Options) ([]domain.ScoredItem, error) {
	q, err := s.extractor.Normalize(req)
	if err != nil {
		return nil, fmt.Errorf("normalize request: %w", err)
	}

	results := s.MatchQuery(ctx, q, opts)
	metrics.ObserveMatch(domain.Kind(req), results)
	return results, nil
}

// MatchQuery runs an already-normalized query.
func (s *Service) MatchQuery(ctx context.Context, q domain.Query, opts Options) []domain.ScoredItem {
	var excludeID string
	if q.Anchor != nil {
		excludeID = q.Anchor.ID
	}
	return s.matchExcluding(ctx, q, opts, excludeID)
}

func (s *Service) matchExcluding(_ context.Context, q domain.Query, opts Options, excludeID string) []domain.ScoredItem {
	items := s.catalog.GetAll()
	if len(items) == 0 {
		return []domain.ScoredItem{}
	}

	limit := clampLimit(opts.Limit, len(items))

	if q.IsEmpty() {
		return s.curatedDefault(items, limit)
	}

	scored := make([]domain.ScoredItem, 0, len(items))
	for _, it := range items {
		if excludeID != "" && it.ID == excludeID {
			continue
		}
		score, reason := s.scorer.Score(q, it)
		scored = append(scored, domain.ScoredItem{Item: it, Score: score, Reason: reason})
	}

	scored = applyMinScore(scored, opts.MinScore)
	Rank(scored)
	return truncate(scored, limit)
}

// Similar finds items resembling an existing catalog item: same category,
// overlapping colors, style and occasion tags. Weak resemblances are cut by
// the SimilarMinScore threshold.
func (s *Service) Similar(ctx context.Context, itemID string, limit int) ([]domain.ScoredItem, error) {
	item, err := s.catalog.GetByID(itemID)
	if err != nil {
		return nil, fmt.Errorf("similar: %w", err)
	}

	q := domain.Query{
		Categories: []domain.Category{item.Category},
		Colors:     item.Colors,
	}
	if len(item.Styles) > 0 {
		q.Style = item.Styles[0]
	}
	if len(item.Occasions) > 0 {
		q.Occasion = item.Occasions[0]
	}

	results := s.matchExcluding(ctx, q, Options{Limit: limit, MinScore: SimilarMinScore}, itemID)
	metrics.ObserveMatch("similar", results)
	return results, nil
}

// curatedDefault answers filterless queries with the top-rated items.
func (s *Service) curatedDefault(items []domain.Item, limit int) []domain.ScoredItem {
	scored := make([]domain.ScoredItem, len(items))
	for i, it := range items {
		score, _ := s.scorer.Score(domain.Query{}, it)
		scored[i] = domain.ScoredItem{
			Item:   it,
			Score:  score,
			Reason: "a top-rated pick from our curated collection",
		}
	}
	rankByRating(scored)
	s.logger.Debug("curated default fallback", zap.Int("limit", limit))
	return truncate(scored, limit)
}
