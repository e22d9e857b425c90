package stylist

import (
	"context"
	"errors"
	"testing"
)

func demoItems() []Item {
	return []Item{
		{ID: "dress-1", Title: "Satin Evening Gown", Category: "dresses", Colors: []string{"emerald"}, Styles: []string{"elegant"}, Occasions: []string{"wedding", "party"}, Price: 245, Rating: 4.8},
		{ID: "top-1", Title: "Silk Blouse", Category: "tops", Colors: []string{"white"}, Styles: []string{"elegant"}, Occasions: []string{"work"}, Price: 89, Rating: 4.6},
		{ID: "bottom-1", Title: "Pleated Skirt", Category: "bottoms", Colors: []string{"black"}, Styles: []string{"elegant"}, Occasions: []string{"work", "party"}, Price: 68, Rating: 4.4},
		{ID: "shoe-1", Title: "Leather Heels", Category: "footwear", Colors: []string{"black"}, Styles: []string{"elegant"}, Occasions: []string{"party", "wedding"}, Price: 135, Rating: 4.6},
		{ID: "jewelry-1", Title: "Pearl Earrings", Category: "jewelry", Colors: []string{"white"}, Styles: []string{"elegant"}, Occasions: []string{"wedding"}, Price: 65, Rating: 4.8},
	}
}

func newClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(WithItems(demoItems()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestNew_NoCatalog(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error when no catalog provided")
	}
}

func TestNew_InvalidItem(t *testing.T) {
	_, err := New(WithItems([]Item{{ID: "x"}}))
	if !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestItems(t *testing.T) {
	client := newClient(t)

	items := client.Items()
	if len(items) != len(demoItems()) {
		t.Fatalf("items: got %d, want %d", len(items), len(demoItems()))
	}
	if items[0].ID != "dress-1" {
		t.Errorf("load order broken: first item %s", items[0].ID)
	}
}

func TestItem_NotFound(t *testing.T) {
	client := newClient(t)

	_, err := client.Item("ghost")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestMatchOccasion(t *testing.T) {
	client := newClient(t)

	matches, err := client.MatchOccasion(context.Background(), "wedding", 3)
	if err != nil {
		t.Fatalf("MatchOccasion: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected wedding matches")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Error("matches not sorted by score")
		}
	}
}

func TestMatchChat_Deterministic(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	first, err := client.MatchChat(ctx, "elegant black heels for a party", 6)
	if err != nil {
		t.Fatalf("MatchChat: %v", err)
	}
	if len(first) == 0 || first[0].Item.ID != "shoe-1" {
		t.Fatalf("expected shoe-1 on top, got %+v", first)
	}

	for n := 0; n < 5; n++ {
		again, err := client.MatchChat(ctx, "elegant black heels for a party", 6)
		if err != nil {
			t.Fatalf("MatchChat: %v", err)
		}
		if len(again) != len(first) {
			t.Fatal("result size changed between identical calls")
		}
		for i := range first {
			if again[i].Item.ID != first[i].Item.ID || again[i].Score != first[i].Score {
				t.Fatal("ranking changed between identical calls")
			}
		}
	}
}

func TestMatchFilters(t *testing.T) {
	client := newClient(t)

	matches, err := client.MatchFilters(context.Background(),
		Filters{Categories: []string{"tops"}, Occasion: "work"}, 6)
	if err != nil {
		t.Fatalf("MatchFilters: %v", err)
	}
	if len(matches) == 0 || matches[0].Item.ID != "top-1" {
		t.Fatalf("expected top-1 first, got %+v", matches)
	}
}

func TestOutfits(t *testing.T) {
	client := newClient(t)

	outfits := client.Outfits(context.Background(), "wedding", 2)
	if len(outfits) == 0 {
		t.Fatal("expected at least one wedding outfit")
	}
	for _, o := range outfits {
		if len(o.Items) < 2 {
			t.Errorf("outfit with %d items", len(o.Items))
		}
		if o.TotalPrice <= 0 {
			t.Error("outfit without a total price")
		}
	}
}

func TestWishlistFlow(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()
	wl := client.Wishlist("u1")

	if err := wl.Add(ctx, "top-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items, err := wl.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].ID != "top-1" {
		t.Fatalf("wishlist: %+v", items)
	}

	pairings, err := wl.Pairings(ctx, "top-1", 6)
	if err != nil {
		t.Fatalf("Pairings: %v", err)
	}
	for _, p := range pairings {
		if p.Item.ID == "top-1" {
			t.Error("item must not pair with itself")
		}
	}

	if err := wl.Remove(ctx, "top-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	items, _ = wl.Items(ctx)
	if len(items) != 0 {
		t.Fatalf("wishlist after remove: %+v", items)
	}
}

func TestCreateStore_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "postgres"}
	_, err := createStore(cfg)
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
