package session

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"roast/internal/kv"
	"roast/internal/model"
	"roast/internal/store"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testShops() []model.CoffeeShop {
	return []model.CoffeeShop{
		{ID: "A", Name: "Alpha", Neighborhood: "X"},
		{ID: "B", Name: "Bravo", Neighborhood: "Y"},
		{ID: "C", Name: "Charlie", Neighborhood: "X"},
	}
}

func newSession(t *testing.T) (*Session, *kv.Memory) {
	t.Helper()
	m := kv.NewMemory()
	return New(testShops(), kv.New(m, quietLogger()), quietLogger()), m
}

func entryIDs(s *Session) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.Shop.ID)
	}
	return out
}

func TestScenarioFilterThenFavorite(t *testing.T) {
	s, _ := newSession(t)

	x := "X"
	s.OnSelectNeighborhood(&x)
	assert.Equal(t, []string{"A", "C"}, entryIDs(s))

	s.OnToggleFavorite("B")
	s.OnSelectNeighborhood(nil)

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.False(t, entries[0].IsFavorite)
	assert.True(t, entries[1].IsFavorite)
	assert.False(t, entries[2].IsFavorite)
}

func TestSelectNeighborhoodCopiesName(t *testing.T) {
	s, _ := newSession(t)

	name := "X"
	s.OnSelectNeighborhood(&name)
	name = "Y"

	require.NotNil(t, s.Selected())
	assert.Equal(t, "X", *s.Selected())
}

func TestToggleUnknownShopPersistsButNeverRenders(t *testing.T) {
	s, m := newSession(t)

	assert.True(t, s.OnToggleFavorite("ghost"))

	raw, found, err := m.Get(store.FavoritesKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `["ghost"]`, raw)

	for _, e := range s.Entries() {
		assert.False(t, e.IsFavorite)
	}
	assert.Equal(t, 1, s.Favorites().Len())
}

func TestStatePersistsAcrossSessions(t *testing.T) {
	m := kv.NewMemory()
	first := New(testShops(), kv.New(m, quietLogger()), quietLogger())
	first.OnToggleFavorite("C")
	first.OnToggleFavorite("A")
	first.OnToggleFavorite("C")
	first.OnNoteChange("B", "great oat milk")

	second := New(testShops(), kv.New(m, quietLogger()), quietLogger())
	assert.Equal(t, []string{"A"}, second.Favorites().IDs())
	assert.Equal(t, "great oat milk", second.Notes().Get("B"))
	assert.Equal(t, "", second.Notes().Get("A"))
	assert.Nil(t, second.Selected())
	assert.False(t, second.Detail().IsOpen())
}

func TestNoteEveryKeystrokePersists(t *testing.T) {
	s, m := newSession(t)

	for _, text := range []string{"g", "gr", "gre", "great"} {
		s.OnNoteChange("A", text)
		raw, _, err := m.Get(store.NotesKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"A":"`+text+`"}`, raw)
	}
}

type brokenMedium struct{}

func (brokenMedium) Get(string) (string, bool, error) { return "", false, errors.New("no storage") }
func (brokenMedium) Set(string, string) error         { return errors.New("no storage") }

func TestStorageFailureKeepsMemoryState(t *testing.T) {
	s := New(testShops(), kv.New(brokenMedium{}, quietLogger()), quietLogger())

	assert.Zero(t, s.Favorites().Len())
	assert.True(t, s.OnToggleFavorite("A"))
	s.OnNoteChange("A", "still here")

	assert.True(t, s.Favorites().Has("A"))
	assert.Equal(t, "still here", s.Notes().Get("A"))
	assert.True(t, s.Entries()[0].IsFavorite)
}

func TestNewWithoutStoreKeepsMemoryState(t *testing.T) {
	s := New(testShops(), nil, quietLogger())
	assert.Equal(t, 0, s.Favorites().Len())

	s.OnToggleFavorite("A")
	s.OnNoteChange("A", "hi")
	assert.True(t, s.Favorites().Has("A"))
	assert.Equal(t, "hi", s.Notes().Get("A"))
}

func TestCorruptStorageStartsEmpty(t *testing.T) {
	m := kv.NewMemory()
	require.NoError(t, m.Set(store.FavoritesKey, "nope"))
	require.NoError(t, m.Set(store.NotesKey, "[1,2"))

	s := New(testShops(), kv.New(m, quietLogger()), quietLogger())
	assert.Zero(t, s.Favorites().Len())
	assert.Zero(t, s.Notes().Len())
}

func TestNeighborhoodMenu(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, []model.NeighborhoodCount{{Name: "X", Count: 2}, {Name: "Y", Count: 1}}, s.Neighborhoods())
}

func TestDetailTransitions(t *testing.T) {
	s, _ := newSession(t)

	_, ok := s.ActiveShop()
	assert.False(t, ok)

	s.OnOpenDetail("A")
	s.OnOpenDetail("B")
	id, open := s.Detail().ShopID()
	assert.True(t, open)
	assert.Equal(t, "B", id)

	s.OnToggleFavorite("B")
	s.OnNoteChange("B", "cold brew")
	active, ok := s.ActiveShop()
	require.True(t, ok)
	assert.Equal(t, "Bravo", active.Shop.Name)
	assert.True(t, active.IsFavorite)
	assert.Equal(t, "cold brew", active.Note)

	s.OnCloseDetail()
	s.OnCloseDetail()
	assert.False(t, s.Detail().IsOpen())
}

func TestDetailUnknownShopRendersNothing(t *testing.T) {
	s, _ := newSession(t)

	s.OnOpenDetail("ghost")
	assert.True(t, s.Detail().IsOpen())
	_, ok := s.ActiveShop()
	assert.False(t, ok)
}

func TestAuthTransitions(t *testing.T) {
	s, _ := newSession(t)

	s.SwitchAuth(model.AuthSignup)
	assert.Equal(t, model.AuthClosed, s.Auth().View())

	s.OpenAuth(model.AuthLogin)
	assert.Equal(t, model.AuthLogin, s.Auth().View())
	s.SwitchAuth(model.AuthSignup)
	assert.Equal(t, model.AuthSignup, s.Auth().View())
	s.CloseAuth()
	assert.False(t, s.Auth().IsOpen())
}

func TestSubmitLogin(t *testing.T) {
	s, m := newSession(t)

	s.OpenAuth(model.AuthLogin)
	err := s.SubmitLogin(model.LoginForm{Email: "not-an-email", Password: "x"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "Email")
	assert.True(t, s.Auth().IsOpen())

	require.NoError(t, s.SubmitLogin(model.LoginForm{Email: "me@example.com", Password: "x"}))
	assert.False(t, s.Auth().IsOpen())

	_, found, _ := m.Get("auth")
	assert.False(t, found)
}

func TestSubmitSignupPasswordMismatch(t *testing.T) {
	s, _ := newSession(t)
	s.OpenAuth(model.AuthSignup)

	form := model.SignupForm{Name: "Sam", Email: "sam@example.com", Password: "hunter22", Confirm: "hunter23"}
	assert.ErrorIs(t, s.SubmitSignup(form), ErrPasswordMismatch)
	assert.Equal(t, model.AuthSignup, s.Auth().View())

	form.Confirm = "hunter22"
	require.NoError(t, s.SubmitSignup(form))
	assert.Equal(t, model.AuthClosed, s.Auth().View())
}

func TestSubmitSignupRequiresFields(t *testing.T) {
	s, _ := newSession(t)
	s.OpenAuth(model.AuthSignup)

	err := s.SubmitSignup(model.SignupForm{})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)
}

func TestSubmitWrongFormIsRejected(t *testing.T) {
	s, _ := newSession(t)

	assert.ErrorIs(t, s.SubmitLogin(model.LoginForm{Email: "a@b.co", Password: "x"}), ErrAuthClosed)

	s.OpenAuth(model.AuthLogin)
	assert.ErrorIs(t, s.SubmitSignup(model.SignupForm{}), ErrAuthClosed)
	assert.True(t, s.Auth().IsOpen())
}
