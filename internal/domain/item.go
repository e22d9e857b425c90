package domain

import (
	"fmt"
	"strings"
)

// Category is a closed set of catalog categories.
type Category string

const (
	Tops      Category = "tops"
	Bottoms   Category = "bottoms"
	Dresses   Category = "dresses"
	Footwear  Category = "footwear"
	Jewelry   Category = "jewelry"
	Bags      Category = "bags"
	Outerwear Category = "outerwear"
)

// Categories lists all valid categories in a stable order.
func Categories() []Category {
	return []Category{Tops, Bottoms, Dresses, Footwear, Jewelry, Bags, Outerwear}
}

// ValidCategory reports whether c is a member of the closed category set.
func ValidCategory(c Category) bool {
	switch c {
	case Tops, Bottoms, Dresses, Footwear, Jewelry, Bags, Outerwear:
		return true
	}
	return false
}

// Item is an immutable catalog record. Loaded once at startup, never mutated;
// safe for arbitrary concurrent reads.
type Item struct {
	ID        string
	Title     string
	Category  Category
	Colors    []string
	Styles    []string
	Occasions []string
	Price     float64
	Rating    float64
	ImageURL  string // opaque external asset reference
}

// Validate checks the item for load-time configuration errors.
func (it Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidItem)
	}
	if it.Title == "" {
		return fmt.Errorf("%w: item %q has no title", ErrInvalidItem, it.ID)
	}
	if !ValidCategory(it.Category) {
		return fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidItem, it.ID, it.Category)
	}
	if it.Price < 0 {
		return fmt.Errorf("%w: item %q has negative price", ErrInvalidItem, it.ID)
	}
	if it.Rating < 0 || it.Rating > 5 {
		return fmt.Errorf("%w: item %q rating %v outside [0,5]", ErrInvalidItem, it.ID, it.Rating)
	}
	return nil
}

// HasColor reports whether the item carries the given color, case-insensitive.
func (it Item) HasColor(color string) bool {
	for _, c := range it.Colors {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// HasStyle reports whether the item carries the given style tag, case-insensitive.
func (it Item) HasStyle(style string) bool {
	for _, s := range it.Styles {
		if strings.EqualFold(s, style) {
			return true
		}
	}
	return false
}

// SuitsOccasion reports whether the item is tagged for the given occasion.
func (it Item) SuitsOccasion(occasion string) bool {
	for _, o := range it.Occasions {
		if strings.EqualFold(o, occasion) {
			return true
		}
	}
	return false
}
