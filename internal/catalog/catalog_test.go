package catalog

import (
	"errors"
	"testing"

	"github.com/styleloom/stylist/internal/domain"
)

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "top-1", Title: "Silk Blouse", Category: domain.Tops, Price: 39.99, Rating: 4.5},
		{ID: "dress-1", Title: "Little Black Dress", Category: domain.Dresses, Price: 34.99, Rating: 4.6},
		{ID: "shoe-1", Title: "Block Heels", Category: domain.Footwear, Price: 34.99, Rating: 4.3},
	}
}

func TestNewPreservesInsertionOrder(t *testing.T) {
	c, err := New(testItems())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	all := c.GetAll()
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	wantOrder := []string{"top-1", "dress-1", "shoe-1"}
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	items := testItems()
	items = append(items, domain.Item{ID: "top-1", Title: "Copy", Category: domain.Tops})

	_, err := New(items)
	if !errors.Is(err, domain.ErrDuplicateItemID) {
		t.Fatalf("expected ErrDuplicateItemID, got %v", err)
	}
}

func TestNewRejectsInvalidItems(t *testing.T) {
	items := []domain.Item{{ID: "x", Title: "No Category"}}
	_, err := New(items)
	if !errors.Is(err, domain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	c, err := New(testItems())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	it, err := c.GetByID("dress-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if it.Title != "Little Black Dress" {
		t.Errorf("got title %q", it.Title)
	}

	_, err = c.GetByID("missing")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestEmptyCatalogIsValid(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
	if got := c.GetAll(); len(got) != 0 {
		t.Errorf("GetAll returned %d items", len(got))
	}
}

func TestGetAllCopyIsIsolated(t *testing.T) {
	c, err := New(testItems())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	all := c.GetAll()
	all[0].Title = "mutated"

	again, _ := c.GetByID("top-1")
	if again.Title != "Silk Blouse" {
		t.Error("mutating GetAll result leaked into the catalog")
	}
}
