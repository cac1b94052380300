package catalog

import (
	"context"
	"sync"
)

// Store holds the catalog and translation table of the current session. Both
// stay empty until a Load succeeds and are read-only afterwards.
type Store struct {
	mu           sync.RWMutex
	catalog      *Catalog
	translations Translations
	loaded       bool
}

// Load fetches a document, assigns movie ids and publishes the result. On
// failure the store is reset to an empty catalog and the error is returned.
func (s *Store) Load(ctx context.Context, f Fetcher) error {
	c, tr, err := f.Fetch(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.catalog = New()
		s.translations = Translations{}
		s.loaded = false
		return err
	}
	AssignIDs(c)
	if tr == nil {
		tr = Translations{}
	}
	s.catalog = c
	s.translations = tr
	s.loaded = true
	return nil
}

// Catalog returns the loaded catalog, or an empty one before a successful Load.
func (s *Store) Catalog() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return New()
	}
	return s.catalog
}

// Translations returns the loaded translation table.
func (s *Store) Translations() Translations {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.translations == nil {
		return Translations{}
	}
	return s.translations
}

// Loaded reports whether the last Load succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
