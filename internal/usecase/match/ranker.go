package match

import (
	"sort"

	"github.com/styleloom/stylist/internal/domain"
)

// DefaultLimit is the result-size limit used when the caller passes none, or
// an invalid (zero or negative) one.
const DefaultLimit = 6

// SimilarMinScore is the minimum score threshold for "find similar" queries.
// Pairing and occasion queries carry no threshold.
const SimilarMinScore = 40

// Rank orders scored items: score descending, then rating descending, then id
// ascending so equal items always come back in the same order.
func Rank(items []domain.ScoredItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if items[i].Item.Rating != items[j].Item.Rating {
			return items[i].Item.Rating > items[j].Item.Rating
		}
		return items[i].Item.ID < items[j].Item.ID
	})
}

// rankByRating orders items rating descending, then id ascending. Used for
// the curated-default fallback when the query carries no filters.
func rankByRating(items []domain.ScoredItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Item.Rating != items[j].Item.Rating {
			return items[i].Item.Rating > items[j].Item.Rating
		}
		return items[i].Item.ID < items[j].Item.ID
	})
}

// clampLimit recovers invalid limits to the default and caps at size.
func clampLimit(limit, size int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > size {
		limit = size
	}
	return limit
}

// truncate cuts the slice to limit.
func truncate(items []domain.ScoredItem, limit int) []domain.ScoredItem {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// applyMinScore drops items scoring below min. min <= 0 keeps everything,
// including zero-score items.
func applyMinScore(items []domain.ScoredItem, min int) []domain.ScoredItem {
	if min <= 0 {
		return items
	}
	kept := items[:0]
	for _, it := range items {
		if it.Score >= min {
			kept = append(kept, it)
		}
	}
	return kept
}
