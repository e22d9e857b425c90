package extract

import "github.com/styleloom/stylist/internal/domain"

// complements is the static many-to-many pairing table: which categories are
// stylistically paired with a given category. Symmetry is not assumed by the
// data structure, so both directions are listed explicitly.
var complements = map[domain.Category][]domain.Category{
	domain.Tops:      {domain.Bottoms, domain.Outerwear, domain.Jewelry},
	domain.Bottoms:   {domain.Tops, domain.Footwear, domain.Outerwear},
	domain.Dresses:   {domain.Footwear, domain.Jewelry, domain.Bags, domain.Outerwear},
	domain.Footwear:  {domain.Bottoms, domain.Dresses},
	domain.Jewelry:   {domain.Tops, domain.Dresses},
	domain.Bags:      {domain.Dresses, domain.Outerwear},
	domain.Outerwear: {domain.Tops, domain.Bottoms, domain.Dresses, domain.Bags},
}

// Complements returns the categories paired with c, in table order.
// The returned slice must not be mutated.
func Complements(c domain.Category) []domain.Category {
	return complements[c]
}

// AreComplementary reports whether b is a registered complement of a.
func AreComplementary(a, b domain.Category) bool {
	for _, c := range complements[a] {
		if c == b {
			return true
		}
	}
	return false
}
