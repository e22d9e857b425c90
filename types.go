package stylist

import (
	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/usecase/match"
)

// Item is a catalog entry.
type Item struct {
	ID        string
	Title     string
	Category  string
	Colors    []string
	Styles    []string
	Occasions []string
	Price     float64
	Rating    float64
	ImageURL  string
}

// Match is a catalog item with its computed score and reason.
type Match struct {
	Item   Item
	Score  int // 0..100
	Reason string
}

// Outfit is a curated multi-item bundle.
type Outfit struct {
	Items       []Item
	Occasion    string
	Description string
	TotalPrice  float64
	Confidence  int // 0..100
}

// Filters carries explicit match attributes, e.g. from an external image
// analysis.
type Filters struct {
	Categories []string
	Colors     []string
	Style      string
	Occasion   string
}

// Weights are the additive scoring weights. Zero values disable a rule.
type Weights match.Weights

// DefaultWeights returns the documented default weights.
func DefaultWeights() Weights {
	return Weights(match.DefaultWeights())
}

// Sentinel errors returned by the client.
var (
	// ErrItemNotFound signals an unknown item ID.
	ErrItemNotFound = domain.ErrItemNotFound
	// ErrInvalidItem signals a catalog entry missing required attributes.
	ErrInvalidItem = domain.ErrInvalidItem
	// ErrDuplicateItemID signals two catalog entries sharing an ID.
	ErrDuplicateItemID = domain.ErrDuplicateItemID
)

func itemToDomain(it Item) domain.Item {
	return domain.Item{
		ID:        it.ID,
		Title:     it.Title,
		Category:  domain.Category(it.Category),
		Colors:    it.Colors,
		Styles:    it.Styles,
		Occasions: it.Occasions,
		Price:     it.Price,
		Rating:    it.Rating,
		ImageURL:  it.ImageURL,
	}
}

func itemFromDomain(it domain.Item) Item {
	return Item{
		ID:        it.ID,
		Title:     it.Title,
		Category:  string(it.Category),
		Colors:    it.Colors,
		Styles:    it.Styles,
		Occasions: it.Occasions,
		Price:     it.Price,
		Rating:    it.Rating,
		ImageURL:  it.ImageURL,
	}
}

func itemsFromDomain(items []domain.Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = itemFromDomain(it)
	}
	return out
}

func matchesFromDomain(scored []domain.ScoredItem) []Match {
	out := make([]Match, len(scored))
	for i, s := range scored {
		out[i] = Match{Item: itemFromDomain(s.Item), Score: s.Score, Reason: s.Reason}
	}
	return out
}

func outfitFromDomain(o domain.Outfit) Outfit {
	return Outfit{
		Items:       itemsFromDomain(o.Items),
		Occasion:    o.Occasion,
		Description: o.Description,
		TotalPrice:  o.TotalPrice(),
		Confidence:  o.Confidence(),
	}
}
