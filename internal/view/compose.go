// Package view derives what to render from the catalog and the user's state.
// Everything here is a pure function of its arguments.
package view

import (
	"slices"

	"roast/internal/model"
	"roast/internal/store"
)

// Entry is one shop annotated with the user's state.
type Entry struct {
	Shop       model.CoffeeShop
	IsFavorite bool
	Note       string
}

// Compose returns the shops matching filter (all shops when filter is nil), in
// catalog order, annotated with favorite and note state. Favorites or notes for
// IDs not in the catalog never appear.
func Compose(shops []model.CoffeeShop, filter *string, favorites store.Favorites, notes store.Notes) []Entry {
	entries := make([]Entry, 0, len(shops))
	for _, s := range shops {
		if filter != nil && s.Neighborhood != *filter {
			continue
		}
		entries = append(entries, Entry{
			Shop:       s,
			IsFavorite: favorites.Has(s.ID),
			Note:       notes.Get(s.ID),
		})
	}
	return entries
}

// DistinctNeighborhoods returns each neighborhood once, in ascending order.
func DistinctNeighborhoods(shops []model.CoffeeShop) []string {
	seen := make(map[string]struct{}, len(shops))
	names := make([]string, 0)
	for _, s := range shops {
		if _, ok := seen[s.Neighborhood]; ok {
			continue
		}
		seen[s.Neighborhood] = struct{}{}
		names = append(names, s.Neighborhood)
	}
	slices.Sort(names)
	return names
}

// CountByNeighborhood returns how many shops are in name.
func CountByNeighborhood(shops []model.CoffeeShop, name string) int {
	n := 0
	for _, s := range shops {
		if s.Neighborhood == name {
			n++
		}
	}
	return n
}

// NeighborhoodCounts returns the filter menu: every neighborhood with its count.
func NeighborhoodCounts(shops []model.CoffeeShop) []model.NeighborhoodCount {
	names := DistinctNeighborhoods(shops)
	counts := make([]model.NeighborhoodCount, 0, len(names))
	for _, name := range names {
		counts = append(counts, model.NeighborhoodCount{
			Name:  name,
			Count: CountByNeighborhood(shops, name),
		})
	}
	return counts
}

// FindShop returns the catalog record with id.
func FindShop(shops []model.CoffeeShop, id string) (model.CoffeeShop, bool) {
	for _, s := range shops {
		if s.ID == id {
			return s, true
		}
	}
	return model.CoffeeShop{}, false
}
