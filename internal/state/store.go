package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/five82/marquee/internal/catalog"
)

// Nav is one of the top-level view modes.
type Nav string

const (
	NavHome      Nav = "home"
	NavTrending  Nav = "trending"
	NavFavorites Nav = "favorites"
	NavProfile   Nav = "profile"
)

var (
	// ErrUnknownNav reports a navigation target outside the four tabs.
	ErrUnknownNav = errors.New("unknown navigation target")
	// ErrMovieNotFound reports a movie id the loaded catalog does not know.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrNoMovieSelected reports a player action while nothing is playing.
	ErrNoMovieSelected = errors.New("no movie selected")
)

// Navs returns the tabs in display order.
func Navs() []Nav {
	return []Nav{NavHome, NavTrending, NavFavorites, NavProfile}
}

// Valid reports whether n is one of the four tabs.
func (n Nav) Valid() bool {
	switch n {
	case NavHome, NavTrending, NavFavorites, NavProfile:
		return true
	}
	return false
}

// ParseNav converts user input to a Nav.
func ParseNav(value string) (Nav, error) {
	n := Nav(strings.ToLower(strings.TrimSpace(value)))
	if !n.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownNav, value)
	}
	return n, nil
}

// MovieFinder resolves movie ids.
type MovieFinder interface {
	FindByID(id string) (catalog.Movie, bool)
}

// Session is a point-in-time copy of the transient UI state.
type Session struct {
	Nav             Nav
	CurrentCategory string // empty outside home
	LastCategory    string // last explicit selection
	Playing         *catalog.Movie
	Fullscreen      bool
	UserID          string
}

// PlayerVisible reports whether the video player is shown. It is hidden only
// on the profile tab.
func (s Session) PlayerVisible() bool {
	return s.Nav != NavProfile
}

// Store guards the session. The zero value starts on home with no category.
type Store struct {
	mu       sync.RWMutex
	session  Session
	fallback string
}

// NewStore returns a session on the home tab showing fallbackCategory.
func NewStore(userID, fallbackCategory string) *Store {
	s := &Store{fallback: fallbackCategory}
	s.session = Session{
		Nav:             NavHome,
		CurrentCategory: fallbackCategory,
		UserID:          userID,
	}
	return s
}

// SetFallbackCategory changes the category home shows before any explicit
// selection. If home is showing the previous fallback it switches over.
func (s *Store) SetFallbackCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = name
	if s.nav() == NavHome && s.session.LastCategory == "" {
		s.session.CurrentCategory = name
	}
}

// Navigate switches tab. Leaving home clears the category; returning restores
// the last explicit selection or the fallback.
func (s *Store) Navigate(target Nav) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownNav, string(target))
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Nav = target
	if target == NavHome {
		s.session.CurrentCategory = s.homeCategory()
	} else {
		s.session.CurrentCategory = ""
	}
	if target == NavProfile {
		s.session.Fullscreen = false
	}
	return nil
}

// SelectCategory records an explicit category selection and shows it on home.
func (s *Store) SelectCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Nav = NavHome
	s.session.CurrentCategory = name
	s.session.LastCategory = name
}

// Play sets the playing movie. An unknown id leaves the current movie alone.
func (s *Store) Play(f MovieFinder, id string) (catalog.Movie, error) {
	movie, ok := f.FindByID(id)
	if !ok {
		return catalog.Movie{}, fmt.Errorf("%w: %q", ErrMovieNotFound, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Playing = &movie
	return movie, nil
}

// ToggleFullscreen flips the player's fullscreen mode and returns the new
// value. It requires a visible player with a movie loaded.
func (s *Store) ToggleFullscreen() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Playing == nil || !s.session.PlayerVisible() {
		return false, ErrNoMovieSelected
	}
	s.session.Fullscreen = !s.session.Fullscreen
	return s.session.Fullscreen, nil
}

// Snapshot returns a copy of the session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.session
	snap.Nav = s.nav()
	if s.session.Playing != nil {
		movie := *s.session.Playing
		snap.Playing = &movie
	}
	return snap
}

func (s *Store) nav() Nav {
	if s.session.Nav == "" {
		return NavHome
	}
	return s.session.Nav
}

func (s *Store) homeCategory() string {
	if s.session.LastCategory != "" {
		return s.session.LastCategory
	}
	return s.fallback
}
