package prefs

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/five82/marquee/internal/storage"
)

// Store keeps the in-memory copy of preferences and favorites and writes
// through to durable storage. In-memory state only changes after a write
// succeeds.
type Store struct {
	mu        sync.Mutex
	kv        storage.KV
	prefs     Preferences
	favorites []string
	userID    string
}

// Open loads preferences, favorites and the user id from kv.
func Open(kv storage.KV) *Store {
	userID, err := LoadUserID(kv)
	if err != nil {
		log.Printf("prefs: user id not persisted: %v", err)
	}
	return &Store{
		kv:        kv,
		prefs:     LoadPreferences(kv),
		favorites: LoadFavorites(kv),
		userID:    userID,
	}
}

// Preferences returns the current settings.
func (s *Store) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Favorites returns the favorite ids in the order they were added.
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// IsFavorite reports whether id is a favorite.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.favorites, id) >= 0
}

// UserID returns the local user id.
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Save replaces the settings wholesale. On failure the previous settings are
// kept.
func (s *Store) Save(p Preferences) error {
	normalized, err := Normalize(p)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Put(KeySettings, payload); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, KeySettings, err)
	}
	s.prefs = normalized
	return nil
}

// ToggleFavorite removes id when present and appends it otherwise, then
// persists the list. It returns the new membership.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.favorites)+1)
	member := false
	if i := indexOf(s.favorites, id); i >= 0 {
		next = append(next, s.favorites[:i]...)
		next = append(next, s.favorites[i+1:]...)
	} else {
		next = append(next, s.favorites...)
		next = append(next, id)
		member = true
	}

	payload, err := json.Marshal(next)
	if err != nil {
		return !member, fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.kv.Put(KeyFavorites, payload); err != nil {
		return !member, fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, KeyFavorites, err)
	}
	s.favorites = next
	return member, nil
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}
