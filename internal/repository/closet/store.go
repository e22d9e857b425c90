// Package closet persists per-user saved item lists (wishlists) as a
// JSON-encoded ID slice under a single key per user.
package closet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/styleloom/stylist/internal/db"
)

// keyPrefix namespaces wishlist keys in the shared store.
const keyPrefix = "stylist:wishlist:"

// store is the consumer interface for wishlist operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Store implements wishlist.Repository on top of the KV store.
type Store struct {
	store store
}

// New creates a wishlist store.
func New(s store) *Store {
	return &Store{store: s}
}

// Add appends itemID to the user's wishlist. Adding an already-saved
// item is a no-op so the list stays duplicate-free.
func (s *Store) Add(ctx context.Context, userID, itemID string) error {
	ids, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == itemID {
			return nil
		}
	}
	return s.save(ctx, userID, append(ids, itemID))
}

// Remove deletes itemID from the user's wishlist. Removing an absent
// item is a no-op.
func (s *Store) Remove(ctx context.Context, userID, itemID string) error {
	ids, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != itemID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	if len(kept) == 0 {
		return s.clear(ctx, userID)
	}
	return s.save(ctx, userID, kept)
}

// List returns the user's saved item IDs in insertion order. A user
// with no wishlist gets an empty slice, not an error.
func (s *Store) List(ctx context.Context, userID string) ([]string, error) {
	return s.load(ctx, userID)
}

func (s *Store) load(ctx context.Context, userID string) ([]string, error) {
	data, err := s.store.Get(ctx, key(userID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("wishlist GET %s: %w", userID, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("wishlist GET %s decode: %w", userID, err)
	}
	return ids, nil
}

func (s *Store) save(ctx context.Context, userID string, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("wishlist encode %s: %w", userID, err)
	}
	if err := s.store.Set(ctx, key(userID), data); err != nil {
		return fmt.Errorf("wishlist SET %s: %w", userID, err)
	}
	return nil
}

func (s *Store) clear(ctx context.Context, userID string) error {
	if err := s.store.Del(ctx, key(userID)); err != nil {
		return fmt.Errorf("wishlist DEL %s: %w", userID, err)
	}
	return nil
}

func key(userID string) string {
	return keyPrefix + userID
}
