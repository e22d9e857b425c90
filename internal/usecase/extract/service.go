// Package extract normalizes the caller-facing request shapes into the
// engine's Query type. Extraction is total and deterministic: the same input
// always yields the same Query, and unmatched input yields an empty Query
// rather than an error.
package extract

import (
	"fmt"
	"strings"

	"github.com/styleloom/stylist/internal/domain"
)

// ItemReader resolves anchor item ids against the catalog.
type ItemReader interface {
	GetByID(id string) (domain.Item, error)
}

// Service turns requests into normalized queries.
type Service struct {
	items ItemReader
}

// New creates an extractor backed by the given catalog reader.
func New(items ItemReader) *Service {
	return &Service{items: items}
}

// Normalize maps a request to a Query. The only error condition is an anchor
// id that does not exist in the catalog; everything else degrades to an empty
// Query.
func (s *Service) Normalize(req domain.Request) (domain.Query, error) {
	switch r := req.(type) {
	case domain.OccasionRequest:
		return s.FromOccasion(r.Occasion), nil
	case domain.AnchorRequest:
		item, err := s.items.GetByID(r.ItemID)
		if err != nil {
			return domain.Query{}, fmt.Errorf("resolve anchor: %w", err)
		}
		return s.FromAnchor(item), nil
	case domain.ChatRequest:
		return s.FromChat(r.Text), nil
	case domain.FiltersRequest:
		return s.FromFilters(r), nil
	default:
		return domain.Query{}, fmt.Errorf("%w: %T", domain.ErrUnknownRequest, req)
	}
}

// FromOccasion maps a free-text occasion to a Query. Text that matches no
// keyword yields an empty Query, which the ranker answers with the curated
// default.
func (s *Service) FromOccasion(text string) domain.Query {
	return domain.Query{Occasion: Occasion(text)}
}

// FromAnchor builds a pairing Query: the anchor itself plus the complementary
// categories for its category.
func (s *Service) FromAnchor(item domain.Item) domain.Query {
	comps := Complements(item.Category)
	cats := make([]domain.Category, len(comps))
	copy(cats, comps)
	anchor := item
	return domain.Query{
		Categories: cats,
		Anchor:     &anchor,
	}
}

// FromChat tokenizes a natural-language message against the fixed keyword
// tables: zero-or-more categories, zero-or-one occasion, zero-or-more colors,
// zero-or-one style. Token order decides ties, never map iteration order.
func (s *Service) FromChat(text string) domain.Query {
	var q domain.Query
	seenCats := make(map[domain.Category]bool)

	for _, tok := range tokenize(text) {
		for _, cat := range categoryKeywords[tok] {
			if !seenCats[cat] {
				seenCats[cat] = true
				q.Categories = append(q.Categories, cat)
			}
		}
		if occ, ok := occasionKeywords[tok]; ok && q.Occasion == "" {
			q.Occasion = occ
		}
		if style, ok := styleKeywords[tok]; ok && q.Style == "" {
			q.Style = style
		}
	}

	lower := strings.ToLower(text)
	for _, color := range colorKeywords {
		if strings.Contains(lower, color) {
			q.Colors = append(q.Colors, color)
		}
	}

	return q
}

// FromFilters passes explicit filters through, dropping unknown categories
// (InvalidRequest recovery: ignore, never fail).
func (s *Service) FromFilters(r domain.FiltersRequest) domain.Query {
	var q domain.Query
	for _, c := range r.Categories {
		c = domain.Category(strings.ToLower(string(c)))
		if domain.ValidCategory(c) {
			q.Categories = append(q.Categories, c)
		}
	}
	q.Colors = r.Colors
	q.Style = strings.ToLower(r.Style)
	if occ, ok := occasionKeywords[strings.ToLower(strings.TrimSpace(r.Occasion))]; ok {
		q.Occasion = occ
	}
	return q
}

// tokenize lower-cases and splits on any non-letter rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
}
