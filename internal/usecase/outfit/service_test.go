package outfit

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/styleloom/stylist/internal/catalog"
	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/usecase/match"
)

func fullCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.Item{
		{ID: "dress-1", Title: "Evening Gown", Category: domain.Dresses, Price: 199.99, Rating: 4.8,
			Occasions: []string{"wedding", "party"}},
		{ID: "dress-2", Title: "Midi Dress", Category: domain.Dresses, Price: 59.99, Rating: 4.4,
			Occasions: []string{"casual", "date"}},
		{ID: "top-1", Title: "Silk Blouse", Category: domain.Tops, Price: 39.99, Rating: 4.5,
			Occasions: []string{"work", "party"}},
		{ID: "top-2", Title: "Cotton Tee", Category: domain.Tops, Price: 9.99, Rating: 4.3,
			Occasions: []string{"casual"}},
		{ID: "jeans-1", Title: "Dark Jeans", Category: domain.Bottoms, Price: 27.99, Rating: 4.7,
			Occasions: []string{"casual", "date"}},
		{ID: "skirt-1", Title: "Pencil Skirt", Category: domain.Bottoms, Price: 24.99, Rating: 4.2,
			Occasions: []string{"work"}},
		{ID: "heel-1", Title: "Block Heels", Category: domain.Footwear, Price: 34.99, Rating: 4.3,
			Occasions: []string{"work", "party", "wedding"}},
		{ID: "neck-1", Title: "Gold Necklace", Category: domain.Jewelry, Price: 24.99, Rating: 4.4,
			Occasions: []string{"wedding", "party"}},
		{ID: "blazer-1", Title: "Tailored Blazer", Category: domain.Outerwear, Price: 59.99, Rating: 4.8,
			Occasions: []string{"work", "wedding"}},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func newService(t *testing.T, c *catalog.Catalog) *Service {
	t.Helper()
	return New(c, match.NewScorer(match.DefaultWeights()), nil)
}

func TestCurateWeddingOutfits(t *testing.T) {
	svc := newService(t, fullCatalog(t))

	outfits := svc.Curate(context.Background(), "wedding", 3)
	if len(outfits) != 3 {
		t.Fatalf("got %d outfits, want 3", len(outfits))
	}

	// Candidate 0 anchors on the best-scoring dress for the occasion.
	if outfits[0].Items[0].ID != "dress-1" {
		t.Errorf("first outfit anchored on %s, want dress-1", outfits[0].Items[0].ID)
	}
	// Candidate 2 has exhausted dresses and falls back to separates.
	third := outfits[2]
	if third.Items[0].Category != domain.Tops || third.Items[1].Category != domain.Bottoms {
		t.Errorf("third outfit should anchor on top+bottom, got %v", categoriesOf(third))
	}

	for i, o := range outfits {
		if !o.Valid() {
			t.Errorf("outfit %d has %d items, want >= 2", i, len(o.Items))
		}
		// Wedding is a formal occasion: outerwear joins the look.
		if !hasCategory(o, domain.Outerwear) {
			t.Errorf("outfit %d missing outerwear for a formal occasion", i)
		}
	}
}

func TestCurateCasualSkipsOuterwear(t *testing.T) {
	svc := newService(t, fullCatalog(t))

	outfits := svc.Curate(context.Background(), "casual", 2)
	if len(outfits) == 0 {
		t.Fatal("no outfits for casual occasion")
	}
	for i, o := range outfits {
		if hasCategory(o, domain.Outerwear) {
			t.Errorf("outfit %d carries outerwear for a casual occasion", i)
		}
	}
}

func TestCurateTotalPriceInvariant(t *testing.T) {
	svc := newService(t, fullCatalog(t))

	for _, o := range svc.Curate(context.Background(), "party", 3) {
		var sum float64
		for _, it := range o.Items {
			sum += it.Price
		}
		if math.Abs(o.TotalPrice()-sum) > 1e-9 {
			t.Errorf("TotalPrice %v != item sum %v", o.TotalPrice(), sum)
		}
	}
}

func TestCurateDeterministic(t *testing.T) {
	svc := newService(t, fullCatalog(t))

	first := svc.Curate(context.Background(), "wedding", 3)
	for i := 0; i < 20; i++ {
		if again := svc.Curate(context.Background(), "wedding", 3); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestCurateUnrecognizedOccasion(t *testing.T) {
	svc := newService(t, fullCatalog(t))

	outfits := svc.Curate(context.Background(), "birthday", 0)
	if len(outfits) == 0 {
		t.Fatal("unrecognized occasion should still assemble outfits")
	}
	if outfits[0].Description != "A perfectly curated outfit for your occasion" {
		t.Errorf("unexpected description %q", outfits[0].Description)
	}
}

func TestCurateEmptyCatalog(t *testing.T) {
	c, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	svc := newService(t, c)

	if outfits := svc.Curate(context.Background(), "wedding", 3); len(outfits) != 0 {
		t.Errorf("empty catalog produced %d outfits", len(outfits))
	}
}

func TestCurateDiscardsSingleItemCandidates(t *testing.T) {
	// Only a dress in the catalog: the candidate would have one item and must
	// be discarded, not returned.
	c, err := catalog.New([]domain.Item{
		{ID: "dress-1", Title: "Gown", Category: domain.Dresses, Rating: 4.8,
			Occasions: []string{"wedding"}},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	svc := newService(t, c)

	if outfits := svc.Curate(context.Background(), "wedding", 3); len(outfits) != 0 {
		t.Errorf("got %d outfits from a one-item catalog, want 0", len(outfits))
	}
}

func hasCategory(o domain.Outfit, c domain.Category) bool {
	for _, it := range o.Items {
		if it.Category == c {
			return true
		}
	}
	return false
}

func categoriesOf(o domain.Outfit) []domain.Category {
	out := make([]domain.Category, len(o.Items))
	for i, it := range o.Items {
		out[i] = it.Category
	}
	return out
}
