// Package store holds the user's favorites and notes. Values are immutable:
// every mutation returns a new value which the caller persists and publishes.
package store

import (
	"slices"

	"roast/internal/kv"
)

// FavoritesKey is the durable-store key for the favorites list.
const FavoritesKey = "atl-coffee-favorites"

// Favorites is a set of shop IDs kept in insertion order.
type Favorites struct {
	ids []string
}

// NewFavorites builds a set from ids, dropping repeats after their first occurrence.
func NewFavorites(ids ...string) Favorites {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return Favorites{ids: out}
}

// LoadFavorites reads the favorites list, empty when absent or corrupt.
func LoadFavorites(s *kv.Store) Favorites {
	return NewFavorites(kv.Read(s, FavoritesKey, []string{})...)
}

// SaveFavorites persists f as a JSON array.
func SaveFavorites(s *kv.Store, f Favorites) {
	s.Write(FavoritesKey, f.IDs())
}

// Toggle removes id when present and appends it otherwise.
func (f Favorites) Toggle(id string) Favorites {
	if i := slices.Index(f.ids, id); i >= 0 {
		return Favorites{ids: slices.Delete(slices.Clone(f.ids), i, i+1)}
	}
	return Favorites{ids: append(slices.Clone(f.ids), id)}
}

// Has reports whether id is a favorite.
func (f Favorites) Has(id string) bool {
	return slices.Contains(f.ids, id)
}

// Len returns the number of favorites, including IDs no longer in the catalog.
func (f Favorites) Len() int {
	return len(f.ids)
}

// IDs returns a copy of the favorite IDs in insertion order.
func (f Favorites) IDs() []string {
	if f.ids == nil {
		return []string{}
	}
	return slices.Clone(f.ids)
}
