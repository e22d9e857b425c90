package domain

import "testing"

func TestOutfitTotalPrice(t *testing.T) {
	o := Outfit{Items: []Item{
		{ID: "a", Price: 129.99},
		{ID: "b", Price: 70.01},
	}}
	if got := o.TotalPrice(); got != 200.00 {
		t.Errorf("TotalPrice = %v, want 200.00", got)
	}
}

func TestOutfitValid(t *testing.T) {
	tests := []struct {
		name  string
		items int
		want  bool
	}{
		{"empty", 0, false},
		{"single item", 1, false},
		{"two items", 2, true},
		{"four items", 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Outfit{Items: make([]Item, tt.items)}
			if got := o.Valid(); got != tt.want {
				t.Errorf("Valid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutfitConfidence(t *testing.T) {
	o := Outfit{Items: []Item{
		{ID: "a", Rating: 5.0},
		{ID: "b", Rating: 4.0},
	}}
	if got := o.Confidence(); got != 90 {
		t.Errorf("Confidence = %d, want 90", got)
	}

	if got := (Outfit{}).Confidence(); got != 0 {
		t.Errorf("empty outfit Confidence = %d, want 0", got)
	}
}

func TestItemValidate(t *testing.T) {
	valid := Item{ID: "blazer-1", Title: "Blazer", Category: Outerwear, Price: 99, Rating: 4.5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	tests := []struct {
		name string
		item Item
	}{
		{"missing id", Item{Title: "x", Category: Tops}},
		{"missing title", Item{ID: "x", Category: Tops}},
		{"unknown category", Item{ID: "x", Title: "x", Category: "hats"}},
		{"negative price", Item{ID: "x", Title: "x", Category: Tops, Price: -1}},
		{"rating too high", Item{ID: "x", Title: "x", Category: Tops, Rating: 5.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.item.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestQueryIsEmpty(t *testing.T) {
	if !(Query{}).IsEmpty() {
		t.Error("zero query should be empty")
	}
	if (Query{Occasion: "wedding"}).IsEmpty() {
		t.Error("query with occasion should not be empty")
	}
	anchor := Item{ID: "a"}
	if (Query{Anchor: &anchor}).IsEmpty() {
		t.Error("query with anchor should not be empty")
	}
}

func TestQueryWantsCategory(t *testing.T) {
	q := Query{Categories: []Category{Tops, Footwear}}
	if !q.WantsCategory(Tops) {
		t.Error("expected Tops to be wanted")
	}
	if q.WantsCategory(Dresses) {
		t.Error("expected Dresses to be unwanted")
	}
	if !(Query{}).WantsCategory(Dresses) {
		t.Error("empty category list should accept everything")
	}
}
