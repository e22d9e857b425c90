package domain

// ScoredItem is a catalog item with its computed match score and the
// human-readable reason the score was awarded. Scores are always recomputed
// from the query, never stored.
type ScoredItem struct {
	Item   Item
	Score  int // 0..100
	Reason string
}
