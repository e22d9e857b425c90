package domain

// MinOutfitItems is the smallest item count a returnable outfit may have.
const MinOutfitItems = 2

// Outfit is a multi-item bundle assembled across categories: one main piece
// (a dress, or a top plus a bottom) plus optional footwear, accessory and
// outerwear.
type Outfit struct {
	Items       []Item
	Occasion    string
	Description string
}

// TotalPrice is the sum of the item prices. Derived, never stored.
func (o Outfit) TotalPrice() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price
	}
	return total
}

// Confidence is an aggregate 0..100 value derived from item ratings.
func (o Outfit) Confidence() int {
	if len(o.Items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range o.Items {
		sum += it.Rating
	}
	avg := sum / float64(len(o.Items))
	return int(avg / 5.0 * 100)
}

// Valid reports whether the outfit is complete enough to return.
func (o Outfit) Valid() bool {
	return len(o.Items) >= MinOutfitItems
}
