package view

import (
	"testing"

	"roast/internal/model"
	"roast/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func scenarioShops() []model.CoffeeShop {
	return []model.CoffeeShop{
		{ID: "A", Name: "Alpha", Neighborhood: "X"},
		{ID: "B", Name: "Bravo", Neighborhood: "Y"},
		{ID: "C", Name: "Charlie", Neighborhood: "X"},
	}
}

func ids(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Shop.ID)
	}
	return out
}

func TestComposeFilterKeepsCatalogOrder(t *testing.T) {
	got := Compose(scenarioShops(), ptr("X"), store.NewFavorites(), store.NewNotes(nil))
	assert.Equal(t, []string{"A", "C"}, ids(got))
}

func TestComposeFavoriteFlags(t *testing.T) {
	favs := store.NewFavorites().Toggle("B")

	got := Compose(scenarioShops(), nil, favs, store.NewNotes(nil))
	require.Len(t, got, 3)
	assert.False(t, got[0].IsFavorite)
	assert.True(t, got[1].IsFavorite)
	assert.False(t, got[2].IsFavorite)
}

func TestComposeNotes(t *testing.T) {
	notes := store.NewNotes(nil).Set("C", "flat white")

	got := Compose(scenarioShops(), nil, store.NewFavorites(), notes)
	assert.Equal(t, "", got[0].Note)
	assert.Equal(t, "flat white", got[2].Note)
}

func TestComposeIgnoresUnknownIDs(t *testing.T) {
	favs := store.NewFavorites("ghost")
	notes := store.NewNotes(map[string]string{"ghost": "closed down"})

	got := Compose(scenarioShops(), nil, favs, notes)
	assert.Equal(t, []string{"A", "B", "C"}, ids(got))
	for _, e := range got {
		assert.False(t, e.IsFavorite)
		assert.Empty(t, e.Note)
	}
}

func TestComposeFilterIsCaseSensitive(t *testing.T) {
	got := Compose(scenarioShops(), ptr("x"), store.NewFavorites(), store.NewNotes(nil))
	assert.Empty(t, got)
}

func TestComposeFilterMatchesCount(t *testing.T) {
	shops := append(scenarioShops(),
		model.CoffeeShop{ID: "D", Neighborhood: "Z"},
		model.CoffeeShop{ID: "E", Neighborhood: "X"},
		model.CoffeeShop{ID: "F", Neighborhood: ""},
	)
	filters := append(DistinctNeighborhoods(shops), "nowhere")
	for _, f := range filters {
		got := Compose(shops, ptr(f), store.NewFavorites(), store.NewNotes(nil))
		assert.Len(t, got, CountByNeighborhood(shops, f), "filter %q", f)
		for _, e := range got {
			assert.Equal(t, f, e.Shop.Neighborhood)
		}
	}
}

func TestComposeNilFilterReturnsAll(t *testing.T) {
	shops := scenarioShops()
	assert.Len(t, Compose(shops, nil, store.NewFavorites(), store.NewNotes(nil)), len(shops))
}

func TestEmptyCatalog(t *testing.T) {
	assert.Empty(t, Compose(nil, nil, store.NewFavorites(), store.NewNotes(nil)))
	assert.Empty(t, Compose(nil, ptr("X"), store.NewFavorites(), store.NewNotes(nil)))
	assert.Empty(t, DistinctNeighborhoods(nil))
	assert.Zero(t, CountByNeighborhood(nil, "X"))
	assert.Empty(t, NeighborhoodCounts(nil))
}

func TestDistinctNeighborhoodsSorted(t *testing.T) {
	shops := []model.CoffeeShop{
		{Neighborhood: "West End"},
		{Neighborhood: "Decatur"},
		{Neighborhood: "Midtown"},
		{Neighborhood: "Decatur"},
		{Neighborhood: "Inman Park"},
	}
	assert.Equal(t, []string{"Decatur", "Inman Park", "Midtown", "West End"}, DistinctNeighborhoods(shops))
}

func TestNeighborhoodCounts(t *testing.T) {
	got := NeighborhoodCounts(scenarioShops())
	assert.Equal(t, []model.NeighborhoodCount{
		{Name: "X", Count: 2},
		{Name: "Y", Count: 1},
	}, got)
}

func TestFindShop(t *testing.T) {
	s, ok := FindShop(scenarioShops(), "C")
	require.True(t, ok)
	assert.Equal(t, "Charlie", s.Name)

	_, ok = FindShop(scenarioShops(), "missing")
	assert.False(t, ok)
}
