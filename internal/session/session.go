// Package session is the surface the presentation layer calls into. It owns the
// live favorites and notes, the ephemeral selection state, and persists every
// mutation before returning.
package session

import (
	"log/slog"
	"slices"

	"roast/internal/kv"
	"roast/internal/model"
	"roast/internal/store"
	"roast/internal/view"
)

// Session is the state of one run. It is not safe for concurrent use; callers
// drive it from a single event loop.
type Session struct {
	shops  []model.CoffeeShop
	kv     *kv.Store
	logger *slog.Logger

	favorites store.Favorites
	notes     store.Notes

	neighborhood *string
	detail       Detail
	auth         Auth
}

// New loads favorites and notes from kvStore and returns a session with nothing
// selected.
func New(shops []model.CoffeeShop, kvStore *kv.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if kvStore == nil {
		kvStore = kv.New(nil, logger)
	}
	s := &Session{
		shops:     slices.Clip(shops),
		kv:        kvStore,
		logger:    logger,
		favorites: store.LoadFavorites(kvStore),
		notes:     store.LoadNotes(kvStore),
	}
	logger.Info("session: loaded",
		slog.Int("shops", len(shops)),
		slog.Int("favorites", s.favorites.Len()),
		slog.Int("notes", s.notes.Len()))
	return s
}

// OnSelectNeighborhood sets the filter. nil selects all shops.
func (s *Session) OnSelectNeighborhood(name *string) {
	if name == nil {
		s.neighborhood = nil
		return
	}
	n := *name
	s.neighborhood = &n
}

// OnToggleFavorite flips id and persists the new set. It returns whether id is
// now a favorite. IDs outside the catalog are accepted.
func (s *Session) OnToggleFavorite(id string) bool {
	next := s.favorites.Toggle(id)
	store.SaveFavorites(s.kv, next)
	s.favorites = next
	s.logger.Debug("session: favorite toggled", slog.String("shop_id", id), slog.Bool("favorite", next.Has(id)))
	return next.Has(id)
}

// OnNoteChange replaces the note for id and persists the map.
func (s *Session) OnNoteChange(id, text string) {
	next := s.notes.Set(id, text)
	store.SaveNotes(s.kv, next)
	s.notes = next
}

// OnOpenDetail moves the detail view to Open(id) from any state.
func (s *Session) OnOpenDetail(id string) {
	s.detail = s.detail.Open(id)
}

// OnCloseDetail moves the detail view to Closed from any state.
func (s *Session) OnCloseDetail() {
	s.detail = s.detail.Close()
}

// Favorites returns the live favorite set.
func (s *Session) Favorites() store.Favorites { return s.favorites }

// Notes returns the live note map.
func (s *Session) Notes() store.Notes { return s.notes }

// Shops returns the catalog.
func (s *Session) Shops() []model.CoffeeShop { return s.shops }

// Selected returns the neighborhood filter, nil for all shops.
func (s *Session) Selected() *string {
	if s.neighborhood == nil {
		return nil
	}
	n := *s.neighborhood
	return &n
}

// Entries returns the composed view for the current filter.
func (s *Session) Entries() []view.Entry {
	return view.Compose(s.shops, s.neighborhood, s.favorites, s.notes)
}

// Neighborhoods returns the filter menu with counts.
func (s *Session) Neighborhoods() []model.NeighborhoodCount {
	return view.NeighborhoodCounts(s.shops)
}

// Detail returns the detail view state.
func (s *Session) Detail() Detail { return s.detail }

// ActiveShop resolves the open detail against the catalog. ok is false when the
// detail is closed or names a shop the catalog does not have.
func (s *Session) ActiveShop() (view.Entry, bool) {
	id, open := s.detail.ShopID()
	if !open {
		return view.Entry{}, false
	}
	shop, found := view.FindShop(s.shops, id)
	if !found {
		return view.Entry{}, false
	}
	return view.Entry{
		Shop:       shop,
		IsFavorite: s.favorites.Has(id),
		Note:       s.notes.Get(id),
	}, true
}

// Auth returns the auth modal state.
func (s *Session) Auth() Auth { return s.auth }

// OpenAuth opens the auth modal on v.
func (s *Session) OpenAuth(v model.AuthView) { s.auth = s.auth.Open(v) }

// SwitchAuth changes the open modal to v. It does nothing while closed.
func (s *Session) SwitchAuth(v model.AuthView) { s.auth = s.auth.Switch(v) }

// CloseAuth closes the auth modal.
func (s *Session) CloseAuth() { s.auth = s.auth.Close() }

// SubmitLogin validates the form and closes the modal. No account is checked.
func (s *Session) SubmitLogin(form model.LoginForm) error {
	next, err := s.auth.SubmitLogin(form)
	s.auth = next
	if err == nil {
		s.logger.Debug("session: mock login submitted")
	}
	return err
}

// SubmitSignup validates the form and closes the modal. No account is created.
func (s *Session) SubmitSignup(form model.SignupForm) error {
	next, err := s.auth.SubmitSignup(form)
	s.auth = next
	if err == nil {
		s.logger.Debug("session: mock signup submitted")
	}
	return err
}
