package match

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/styleloom/stylist/internal/catalog"
	"github.com/styleloom/stylist/internal/domain"
	"github.com/styleloom/stylist/internal/usecase/extract"
)

func newService(t *testing.T, items []domain.Item) *Service {
	t.Helper()
	cat, err := catalog.New(items)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return New(cat, extract.New(cat), NewScorer(DefaultWeights()), nil)
}

func TestMatchOccasionScenario(t *testing.T) {
	// Scenario A: one wedding dress, occasion query puts it at rank 0 with at
	// least the occasion bonus plus the quality bonus.
	svc := newService(t, []domain.Item{
		{ID: "gown-1", Title: "Red Evening Gown", Category: domain.Dresses,
			Occasions: []string{"wedding"}, Rating: 4.8, Price: 199.99},
	})

	results, err := svc.Match(context.Background(), domain.OccasionRequest{Occasion: "wedding"}, Options{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Item.ID != "gown-1" {
		t.Errorf("rank 0 is %s", results[0].Item.ID)
	}
	if results[0].Score < 30 {
		t.Errorf("score %d, want at least 30", results[0].Score)
	}
}

func TestMatchAnchorPairingScenario(t *testing.T) {
	// Scenario B: anchor in Tops; three Bottoms rank by score with id
	// tie-break for equals.
	svc := newService(t, []domain.Item{
		{ID: "top-1", Title: "Blouse", Category: domain.Tops, Rating: 4.0},
		{ID: "jeans-a", Title: "Jeans A", Category: domain.Bottoms, Rating: 4.9}, // 30+20+8 = 58
		{ID: "jeans-b", Title: "Jeans B", Category: domain.Bottoms, Rating: 4.5}, // 30+20+5 = 55
		{ID: "jeans-c", Title: "Jeans C", Category: domain.Bottoms, Rating: 4.0}, // 30+20   = 50
		{ID: "gown-1", Title: "Gown", Category: domain.Dresses, Rating: 4.0},     // not complementary
	})

	results, err := svc.Match(context.Background(), domain.AnchorRequest{ItemID: "top-1"}, Options{Limit: 3})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantIDs := []string{"jeans-a", "jeans-b", "jeans-c"}
	wantScores := []int{58, 55, 50}
	for i := range wantIDs {
		if results[i].Item.ID != wantIDs[i] {
			t.Errorf("rank %d: got %s, want %s", i, results[i].Item.ID, wantIDs[i])
		}
		if results[i].Score != wantScores[i] {
			t.Errorf("rank %d: score %d, want %d", i, results[i].Score, wantScores[i])
		}
	}
}

func TestMatchAnchorExcludesItself(t *testing.T) {
	svc := newService(t, []domain.Item{
		{ID: "top-1", Title: "Blouse", Category: domain.Tops, Rating: 4.0},
		{ID: "jeans-a", Title: "Jeans", Category: domain.Bottoms, Rating: 4.0},
	})

	results, err := svc.Match(context.Background(), domain.AnchorRequest{ItemID: "top-1"}, Options{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	for _, r := range results {
		if r.Item.ID == "top-1" {
			t.Error("anchor item leaked into its own pairings")
		}
	}
}

func TestMatchEmptyQueryFallback(t *testing.T) {
	// Scenario C: ratings [4.9, 4.2, 4.9, 3.0, 4.5], limit 3 -> the two
	// 4.9-rated items by id, then the 4.5-rated one.
	svc := newService(t, []domain.Item{
		{ID: "i1", Title: "One", Category: domain.Tops, Rating: 4.9},
		{ID: "i2", Title: "Two", Category: domain.Tops, Rating: 4.2},
		{ID: "i3", Title: "Three", Category: domain.Tops, Rating: 4.9},
		{ID: "i4", Title: "Four", Category: domain.Tops, Rating: 3.0},
		{ID: "i5", Title: "Five", Category: domain.Tops, Rating: 4.5},
	})

	// Scenario D: an unrecognized occasion keyword degrades to the curated
	// default, not an error.
	results, err := svc.Match(context.Background(), domain.OccasionRequest{Occasion: "birthday"}, Options{Limit: 3})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	wantIDs := []string{"i1", "i3", "i5"}
	if len(results) != len(wantIDs) {
		t.Fatalf("got %d results, want %d", len(results), len(wantIDs))
	}
	for i, id := range wantIDs {
		if results[i].Item.ID != id {
			t.Errorf("rank %d: got %s, want %s", i, results[i].Item.ID, id)
		}
	}
}

func TestMatchIdempotent(t *testing.T) {
	svc := newService(t, []domain.Item{
		{ID: "a", Title: "A", Category: domain.Tops, Rating: 4.5, Occasions: []string{"party"}},
		{ID: "b", Title: "B", Category: domain.Dresses, Rating: 4.5, Occasions: []string{"party"}},
		{ID: "c", Title: "C", Category: domain.Footwear, Rating: 4.1, Occasions: []string{"work"}},
	})
	req := domain.ChatRequest{Text: "something elegant for a party"}

	first, err := svc.Match(context.Background(), req, Options{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := svc.Match(context.Background(), req, Options{})
		if err != nil {
			t.Fatalf("Match: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestMatchEmptyCatalog(t *testing.T) {
	svc := newService(t, nil)

	results, err := svc.Match(context.Background(), domain.OccasionRequest{Occasion: "wedding"}, Options{})
	if err != nil {
		t.Fatalf("empty catalog must not error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results from empty catalog", len(results))
	}
}

func TestMatchLimitBoundaries(t *testing.T) {
	items := make([]domain.Item, 10)
	for i := range items {
		items[i] = domain.Item{
			ID: string(rune('a' + i)), Title: "Item", Category: domain.Tops, Rating: 4.0,
		}
	}
	svc := newService(t, items)
	ctx := context.Background()
	req := domain.OccasionRequest{Occasion: "wedding"}

	t.Run("zero limit uses default", func(t *testing.T) {
		results, _ := svc.Match(ctx, req, Options{Limit: 0})
		if len(results) != DefaultLimit {
			t.Errorf("got %d, want %d", len(results), DefaultLimit)
		}
	})
	t.Run("negative limit uses default", func(t *testing.T) {
		results, _ := svc.Match(ctx, req, Options{Limit: -1})
		if len(results) != DefaultLimit {
			t.Errorf("got %d, want %d", len(results), DefaultLimit)
		}
	})
	t.Run("limit above catalog size capped", func(t *testing.T) {
		results, _ := svc.Match(ctx, req, Options{Limit: 99})
		if len(results) != len(items) {
			t.Errorf("got %d, want %d", len(results), len(items))
		}
	})
}

func TestSimilar(t *testing.T) {
	svc := newService(t, []domain.Item{
		{ID: "dress-1", Title: "LBD", Category: domain.Dresses, Colors: []string{"black"},
			Styles: []string{"elegant"}, Occasions: []string{"party"}, Rating: 4.6},
		{ID: "dress-2", Title: "Midi", Category: domain.Dresses, Colors: []string{"black", "pink"},
			Styles: []string{"elegant"}, Occasions: []string{"party"}, Rating: 4.4},
		{ID: "bag-1", Title: "Clutch", Category: domain.Bags, Colors: []string{"gold"},
			Styles: []string{"statement"}, Occasions: []string{"wedding"}, Rating: 4.4},
	})

	results, err := svc.Similar(context.Background(), "dress-1", 6)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (threshold should cut the bag)", len(results))
	}
	if results[0].Item.ID != "dress-2" {
		t.Errorf("got %s, want dress-2", results[0].Item.ID)
	}
	if results[0].Score < SimilarMinScore {
		t.Errorf("score %d below threshold", results[0].Score)
	}

	_, err = svc.Similar(context.Background(), "missing", 6)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}
