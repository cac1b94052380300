package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/i18n"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/view"
)

var (
	// ErrNotReady is returned by every command until Load has finished.
	ErrNotReady = errors.New("catalog not loaded yet")
	// ErrUnknownCategory reports a category name that is not a catalog key.
	ErrUnknownCategory = errors.New("unknown category")
)

// Config tunes an App.
type Config struct {
	DefaultCategory string // home category before any selection
	TrendingLimit   int
	Player          string // external player command, empty disables it
}

// App owns the application state and implements the user commands. Each
// command returns the reconciled view model together with an error from the
// package sentinels or those of catalog, prefs and state. Failures never
// leave the state half-applied; they are reported through the model's notice.
type App struct {
	mu         sync.Mutex
	cfg        Config
	fetcher    catalog.Fetcher
	catalog    *catalog.Store
	prefs      *prefs.Store
	session    *state.Store
	translator *i18n.Translator
	ready      bool
	notice     view.Notice
}

// New returns an App that will load its catalog from fetcher. Preferences,
// favorites and the user id come from p, which is already loaded.
func New(fetcher catalog.Fetcher, p *prefs.Store, cfg Config) *App {
	if cfg.TrendingLimit <= 0 {
		cfg.TrendingLimit = view.DefaultTrendingLimit
	}
	return &App{
		cfg:     cfg,
		fetcher: fetcher,
		catalog: &catalog.Store{},
		prefs:   p,
		session: state.NewStore(p.UserID(), ""),
	}
}

// Load fetches the catalog once. A failed fetch leaves an empty catalog and a
// notice; the App is usable either way. Later calls are no-ops.
func (a *App) Load(ctx context.Context) (view.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ready {
		return a.viewLocked(), nil
	}

	err := a.catalog.Load(ctx, a.fetcher)
	a.translator = i18n.New(a.catalog.Translations())
	a.session.SetFallbackCategory(a.fallbackCategory())
	a.ready = true
	a.notice = view.Notice{}
	if err != nil {
		log.Printf("catalog load failed: %v", err)
		a.notice = view.Notice{Kind: view.NoticeError, Key: i18n.KeyDataUnavailable}
		return a.viewLocked(), fmt.Errorf("load catalog: %w", err)
	}
	return a.viewLocked(), nil
}

// Ready reports whether Load has completed.
func (a *App) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ready
}

// View reconciles the current state without changing it.
func (a *App) View() view.Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.viewLocked()
}

// Navigate switches to another tab.
func (a *App) Navigate(target state.Nav) (view.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.begin(); err != nil {
		return a.viewLocked(), err
	}
	if err := a.session.Navigate(target); err != nil {
		return a.viewLocked(), err
	}
	return a.viewLocked(), nil
}

// SelectCategory shows name on the home tab. A category without movies is
// valid.
func (a *App) SelectCategory(name string) (view.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.begin(); err != nil {
		return a.viewLocked(), err
	}
	if !a.catalog.Catalog().HasCategory(name) {
		a.fail(i18n.KeyUnknownCategory)
		return a.viewLocked(), fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	a.session.SelectCategory(name)
	return a.viewLocked(), nil
}

// PlayMovie loads the movie with id into the player. An unknown id keeps the
// current movie.
func (a *App) PlayMovie(id string) (view.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.begin(); err != nil {
		return a.viewLocked(), err
	}
	if _, err := a.session.Play(a.catalog.Catalog(), id); err != nil {
		a.fail(i18n.KeyMovieNotFound)
		return a.viewLocked(), err
	}
	return a.viewLocked(), nil
}

// ToggleFavorite adds the playing movie to favorites or removes it.
func (a *App) ToggleFavorite() (view.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.begin(); err != nil {
		return a.viewLocked(), err
	}
	playing := a.session.Snapshot().Playing
	if playing == nil {
		a.inform(i18n.KeyNoMovieSelected)
		return a.viewLocked(), state.ErrNoMovieSelected
	}
	added, err := a.prefs.ToggleFavorite(playing.ID)
	if err != nil {
		log.Printf("toggle favorite %s: %v", playing.ID, err)
		a.fail(i18n.KeyStorageFailed)
		return a.viewLocked(), err
	}
	if added {
		a.inform(i18n.KeyAddedFavorite)
	} else {
		a.inform(i18n.KeyRemovedFavorite)
	}
	return a.viewLocked(), nil
}

// SaveSettings replaces the preferences with f. On success the user is taken
// back to home; on failure the tab and the previous settings stay.
func (a *App) SaveSettings(f view.Form) (view.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.begin(); err != nil {
		return a.viewLocked(), err
	}
	err := a.prefs.Save(prefs.Preferences{
		Language: f.Language,
		Theme:    f.Theme,
		Name:     f.Name,
		Email:    f.Email,
	})
	switch {
	case errors.Is(err, prefs.ErrInvalidSettings):
		a.fail(i18n.KeyInvalidSettings)
		return a.viewLocked(), err
	case err != nil:
		log.Printf("save settings: %v", err)
		a.fail(i18n.KeyStorageFailed)
		return a.viewLocked(), err
	}
	if err := a.session.Navigate(state.NavHome); err != nil {
		return a.viewLocked(), err
	}
	a.inform(i18n.KeySettingsSaved)
	return a.viewLocked(), nil
}

// ToggleFullscreen flips the player between windowed and fullscreen.
func (a *App) ToggleFullscreen() (view.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.begin(); err != nil {
		return a.viewLocked(), err
	}
	on, err := a.session.ToggleFullscreen()
	if err != nil {
		a.inform(i18n.KeyNoMovieSelected)
		return a.viewLocked(), err
	}
	if on {
		a.inform(i18n.KeyFullscreenOn)
	} else {
		a.inform(i18n.KeyFullscreenOff)
	}
	return a.viewLocked(), nil
}

// DismissNotice clears the current notice.
func (a *App) DismissNotice() view.Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notice = view.Notice{}
	return a.viewLocked()
}

// begin rejects commands before Load and clears the previous notice.
func (a *App) begin() error {
	if !a.ready {
		return ErrNotReady
	}
	a.notice = view.Notice{}
	return nil
}

func (a *App) inform(key string) {
	a.notice = view.Notice{Kind: view.NoticeInfo, Key: key}
}

func (a *App) fail(key string) {
	a.notice = view.Notice{Kind: view.NoticeError, Key: key}
}

// fallbackCategory is the configured default when the catalog has it, else
// the first category.
func (a *App) fallbackCategory() string {
	c := a.catalog.Catalog()
	if a.cfg.DefaultCategory != "" && c.HasCategory(a.cfg.DefaultCategory) {
		return a.cfg.DefaultCategory
	}
	if categories := c.Categories(); len(categories) > 0 {
		return categories[0]
	}
	return ""
}

func (a *App) viewLocked() view.Model {
	return view.Reconcile(view.Input{
		Loaded:        a.ready,
		Catalog:       a.catalog.Catalog(),
		Translator:    a.translator,
		Preferences:   a.prefs.Preferences(),
		Favorites:     a.prefs.Favorites(),
		Session:       a.session.Snapshot(),
		TrendingLimit: a.cfg.TrendingLimit,
		Notice:        a.notice,
	})
}
