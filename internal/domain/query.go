package domain

// Query is a normalized match request. Built fresh per call, never persisted.
type Query struct {
	// Categories the caller wants, in request order. Empty means "any".
	Categories []Category
	// Occasion tag, empty when unspecified.
	Occasion string
	// Colors the caller wants, empty when unspecified.
	Colors []string
	// Style tag, empty when unspecified.
	Style string
	// Anchor is the item being paired against, nil for non-pairing queries.
	Anchor *Item
}

// IsEmpty reports whether the query carries no filters at all. Empty queries
// trigger the curated-default fallback in the ranker.
func (q Query) IsEmpty() bool {
	return len(q.Categories) == 0 &&
		q.Occasion == "" &&
		len(q.Colors) == 0 &&
		q.Style == "" &&
		q.Anchor == nil
}

// WantsCategory reports whether the query accepts the given category.
// An empty category list accepts everything.
func (q Query) WantsCategory(c Category) bool {
	if len(q.Categories) == 0 {
		return true
	}
	for _, want := range q.Categories {
		if want == c {
			return true
		}
	}
	return false
}
