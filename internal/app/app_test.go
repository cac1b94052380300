package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/i18n"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/storage"
	"github.com/five82/marquee/internal/view"
)

type fetchFunc func(ctx context.Context) (*catalog.Catalog, catalog.Translations, error)

func (f fetchFunc) Fetch(ctx context.Context) (*catalog.Catalog, catalog.Translations, error) {
	return f(ctx)
}

func scenarioFetcher() catalog.Fetcher {
	return fetchFunc(func(context.Context) (*catalog.Catalog, catalog.Translations, error) {
		c := catalog.New()
		c.Set("action", []catalog.Movie{{Title: "A", Src: "a.mp4"}, {Title: "B", Src: "b.mp4"}})
		c.Set("drama", []catalog.Movie{{Title: "C", Src: "c.mp4"}})
		c.Set("comedy", nil)
		return c, catalog.Translations{"english": {"settings_saved": "Saved!"}}, nil
	})
}

// failingKV fails every write once failPut is set.
type failingKV struct {
	*storage.Memory
	failPut bool
}

func (f *failingKV) Put(key string, value []byte) error {
	if f.failPut {
		return errors.New("disk full")
	}
	return f.Memory.Put(key, value)
}

func newApp(t *testing.T, kv storage.KV, cfg Config) *App {
	t.Helper()
	a := New(scenarioFetcher(), prefs.Open(kv), cfg)
	if _, err := a.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return a
}

func cardIDs(m view.Model) []string {
	ids := make([]string, 0, len(m.Cards))
	for _, c := range m.Cards {
		ids = append(ids, c.Movie.ID)
	}
	return ids
}

func TestApp_CommandsRejectedBeforeLoad(t *testing.T) {
	a := New(scenarioFetcher(), prefs.Open(storage.NewMemory()), Config{})

	checks := map[string]func() (view.Model, error){
		"navigate":   func() (view.Model, error) { return a.Navigate(state.NavTrending) },
		"category":   func() (view.Model, error) { return a.SelectCategory("action") },
		"play":       func() (view.Model, error) { return a.PlayMovie("action-0") },
		"favorite":   a.ToggleFavorite,
		"save":       func() (view.Model, error) { return a.SaveSettings(view.Form{}) },
		"fullscreen": a.ToggleFullscreen,
	}
	for name, run := range checks {
		m, err := run()
		if !errors.Is(err, ErrNotReady) {
			t.Fatalf("%s before Load: error = %v, want ErrNotReady", name, err)
		}
		if !m.Loading {
			t.Fatalf("%s before Load: model not loading", name)
		}
	}
	if _, err := a.PlayerCommand(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("PlayerCommand before Load: error = %v, want ErrNotReady", err)
	}
	if a.Ready() {
		t.Fatalf("Ready before Load")
	}
}

func TestApp_LoadStartsOnFirstCategory(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{})
	m := a.View()
	if m.Loading || m.ListTitle != "action" {
		t.Fatalf("after Load: Loading=%v ListTitle=%q", m.Loading, m.ListTitle)
	}
	if got, want := cardIDs(m), []string{"action-0", "action-1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cards = %v, want %v", got, want)
	}
	if m.Profile.UserID == "" {
		t.Fatalf("user id missing")
	}
}

func TestApp_LoadUsesConfiguredCategory(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{DefaultCategory: "drama"})
	if got := a.View().ListTitle; got != "drama" {
		t.Fatalf("ListTitle = %q, want drama", got)
	}

	a = newApp(t, storage.NewMemory(), Config{DefaultCategory: "horror"})
	if got := a.View().ListTitle; got != "action" {
		t.Fatalf("ListTitle = %q, want first category for unknown default", got)
	}
}

func TestApp_LoadFailureShowsNotice(t *testing.T) {
	failing := fetchFunc(func(context.Context) (*catalog.Catalog, catalog.Translations, error) {
		return nil, nil, fmt.Errorf("%w: boom", catalog.ErrDataUnavailable)
	})
	a := New(failing, prefs.Open(storage.NewMemory()), Config{})
	m, err := a.Load(context.Background())
	if !errors.Is(err, catalog.ErrDataUnavailable) {
		t.Fatalf("Load error = %v, want ErrDataUnavailable", err)
	}
	if m.Notice.Kind != view.NoticeError || m.Notice.Key != i18n.KeyDataUnavailable {
		t.Fatalf("notice = %#v", m.Notice)
	}
	if len(m.Cards) != 0 || m.Loading {
		t.Fatalf("cards=%d Loading=%v, want empty and loaded", len(m.Cards), m.Loading)
	}

	m, err = a.Navigate(state.NavTrending)
	if err != nil || len(m.Cards) != 0 {
		t.Fatalf("Navigate after failed load = %d cards, %v", len(m.Cards), err)
	}
}

func TestApp_LoadRunsOnce(t *testing.T) {
	calls := 0
	f := fetchFunc(func(ctx context.Context) (*catalog.Catalog, catalog.Translations, error) {
		calls++
		return scenarioFetcher().Fetch(ctx)
	})
	a := New(f, prefs.Open(storage.NewMemory()), Config{})
	for i := 0; i < 3; i++ {
		if _, err := a.Load(context.Background()); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", calls)
	}
}

func TestApp_TrendingScenario(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{})
	m, err := a.Navigate(state.NavTrending)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got, want := cardIDs(m), []string{"action-0", "action-1", "drama-0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("trending = %v, want %v", got, want)
	}
}

func TestApp_SelectCategory(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{})
	if _, err := a.Navigate(state.NavFavorites); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	m, err := a.SelectCategory("comedy")
	if err != nil {
		t.Fatalf("SelectCategory(comedy): %v", err)
	}
	if m.ListTitle != "comedy" || len(m.Cards) != 0 || !m.Notice.Empty() {
		t.Fatalf("empty category: title=%q cards=%d notice=%#v", m.ListTitle, len(m.Cards), m.Notice)
	}

	m, err = a.SelectCategory("horror")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("SelectCategory(horror) error = %v, want ErrUnknownCategory", err)
	}
	if m.ListTitle != "comedy" || m.Notice.Key != i18n.KeyUnknownCategory {
		t.Fatalf("after unknown category: title=%q notice=%#v", m.ListTitle, m.Notice)
	}
}

func TestApp_NavigateUnknownRejected(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{})
	m, err := a.Navigate(state.Nav("settings"))
	if !errors.Is(err, state.ErrUnknownNav) {
		t.Fatalf("error = %v, want ErrUnknownNav", err)
	}
	if m.Nav[0].Nav != state.NavHome || !m.Nav[0].Active {
		t.Fatalf("nav changed after rejected target")
	}
}

func TestApp_ToggleFavoriteWithoutMovie(t *testing.T) {
	kv := storage.NewMemory()
	a := newApp(t, kv, Config{})

	m, err := a.ToggleFavorite()
	if !errors.Is(err, state.ErrNoMovieSelected) {
		t.Fatalf("ToggleFavorite error = %v, want ErrNoMovieSelected", err)
	}
	if m.Notice.Key != i18n.KeyNoMovieSelected {
		t.Fatalf("notice = %#v", m.Notice)
	}
	if got := a.prefs.Favorites(); len(got) != 0 {
		t.Fatalf("favorites = %v, want []", got)
	}
	if _, found, _ := kv.Get(prefs.KeyFavorites); found {
		t.Fatalf("favorites written without a movie")
	}
}

func TestApp_ToggleFavoriteRoundTrip(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{})
	if _, err := a.PlayMovie("drama-0"); err != nil {
		t.Fatalf("PlayMovie: %v", err)
	}

	m, err := a.ToggleFavorite()
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !m.Player.Favorited || m.Notice.Key != i18n.KeyAddedFavorite {
		t.Fatalf("after add: favorited=%v notice=%#v", m.Player.Favorited, m.Notice)
	}

	m, err = a.Navigate(state.NavFavorites)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got := cardIDs(m); !reflect.DeepEqual(got, []string{"drama-0"}) {
		t.Fatalf("favorites view = %v", got)
	}

	m, err = a.ToggleFavorite()
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if m.Player.Favorited || len(m.Cards) != 0 {
		t.Fatalf("after remove: favorited=%v cards=%v", m.Player.Favorited, cardIDs(m))
	}
}

func TestApp_ToggleFavoriteStorageFailure(t *testing.T) {
	kv := &failingKV{Memory: storage.NewMemory()}
	a := newApp(t, kv, Config{})
	if _, err := a.PlayMovie("action-0"); err != nil {
		t.Fatalf("PlayMovie: %v", err)
	}
	kv.failPut = true

	m, err := a.ToggleFavorite()
	if !errors.Is(err, prefs.ErrStorageUnavailable) {
		t.Fatalf("error = %v, want ErrStorageUnavailable", err)
	}
	if m.Player.Favorited || m.Notice.Kind != view.NoticeError || m.Notice.Key != i18n.KeyStorageFailed {
		t.Fatalf("after failure: favorited=%v notice=%#v", m.Player.Favorited, m.Notice)
	}

	kv.failPut = false
	m, err = a.ToggleFavorite()
	if err != nil || !m.Player.Favorited {
		t.Fatalf("retry: favorited=%v err=%v", m.Player.Favorited, err)
	}
}

func TestApp_PlayMissingKeepsCurrent(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{})
	if _, err := a.PlayMovie("action-1"); err != nil {
		t.Fatalf("PlayMovie: %v", err)
	}
	m, err := a.PlayMovie("missing-99")
	if !errors.Is(err, state.ErrMovieNotFound) {
		t.Fatalf("error = %v, want ErrMovieNotFound", err)
	}
	if m.Player.Movie == nil || m.Player.Movie.ID != "action-1" {
		t.Fatalf("player = %#v, want action-1 kept", m.Player.Movie)
	}
	if m.Notice.Key != i18n.KeyMovieNotFound {
		t.Fatalf("notice = %#v", m.Notice)
	}
}

func TestApp_SaveSettingsScenario(t *testing.T) {
	kv := storage.NewMemory()
	a := newApp(t, kv, Config{})
	if _, err := a.Navigate(state.NavProfile); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	m, err := a.SaveSettings(view.Form{Language: "english", Theme: "light", Name: "", Email: ""})
	if err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if !m.Nav[0].Active {
		t.Fatalf("nav after save is not home")
	}
	if m.Notice.Text != "Saved!" {
		t.Fatalf("notice text = %q, want the english table entry", m.Notice.Text)
	}
	if m.Theme != "light" || m.Language != "english" {
		t.Fatalf("model theme/language = %q/%q", m.Theme, m.Language)
	}

	want := prefs.Preferences{Language: "english", Theme: "light"}
	if got := prefs.LoadPreferences(kv); got != want {
		t.Fatalf("LoadPreferences = %#v, want %#v", got, want)
	}
}

func TestApp_SaveSettingsFailureKeepsNav(t *testing.T) {
	kv := &failingKV{Memory: storage.NewMemory()}
	a := newApp(t, kv, Config{})
	if _, err := a.Navigate(state.NavProfile); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	kv.failPut = true

	m, err := a.SaveSettings(view.Form{Language: "english", Theme: "light", Name: "Su"})
	if !errors.Is(err, prefs.ErrStorageUnavailable) {
		t.Fatalf("error = %v, want ErrStorageUnavailable", err)
	}
	if !m.Settings.Visible || m.Settings.Name != "" || m.Theme != "dark" {
		t.Fatalf("after failed save: settings=%#v theme=%q", m.Settings, m.Theme)
	}
	if m.Notice.Key != i18n.KeyStorageFailed {
		t.Fatalf("notice = %#v", m.Notice)
	}

	m, err = a.SaveSettings(view.Form{Language: "klingon", Theme: "light"})
	if !errors.Is(err, prefs.ErrInvalidSettings) {
		t.Fatalf("error = %v, want ErrInvalidSettings", err)
	}
	if m.Notice.Key != i18n.KeyInvalidSettings {
		t.Fatalf("notice = %#v", m.Notice)
	}
}

func TestApp_ToggleFullscreen(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{})
	if _, err := a.ToggleFullscreen(); !errors.Is(err, state.ErrNoMovieSelected) {
		t.Fatalf("error = %v, want ErrNoMovieSelected", err)
	}
	if _, err := a.PlayMovie("action-0"); err != nil {
		t.Fatalf("PlayMovie: %v", err)
	}
	m, err := a.ToggleFullscreen()
	if err != nil || !m.Player.Fullscreen || m.Notice.Key != i18n.KeyFullscreenOn {
		t.Fatalf("ToggleFullscreen = fullscreen %v notice %#v err %v", m.Player.Fullscreen, m.Notice, err)
	}
	m = a.DismissNotice()
	if !m.Notice.Empty() {
		t.Fatalf("notice after dismiss = %#v", m.Notice)
	}
}

func TestApp_UserIDPersists(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	first := newApp(t, db, Config{}).View().Profile.UserID
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = storage.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	if second := newApp(t, db, Config{}).View().Profile.UserID; second != first {
		t.Fatalf("user id changed across runs: %q -> %q", first, second)
	}
}

func TestApp_PlayerCommand(t *testing.T) {
	a := newApp(t, storage.NewMemory(), Config{Player: ""})
	if _, err := a.PlayerCommand(); !errors.Is(err, state.ErrNoMovieSelected) {
		t.Fatalf("error = %v, want ErrNoMovieSelected", err)
	}
	if _, err := a.PlayMovie("action-0"); err != nil {
		t.Fatalf("PlayMovie: %v", err)
	}
	if _, err := a.PlayerCommand(); !errors.Is(err, ErrPlayerUnavailable) {
		t.Fatalf("error = %v, want ErrPlayerUnavailable", err)
	}
	if got := a.View().Notice.Key; got != i18n.KeyPlayerUnavailable {
		t.Fatalf("notice = %q", got)
	}

	dir := t.TempDir()
	player := filepath.Join(dir, "fakeplayer")
	if err := os.WriteFile(player, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	a.cfg.Player = player + " --fs"
	cmd, err := a.PlayerCommand()
	if err != nil {
		t.Fatalf("PlayerCommand: %v", err)
	}
	if want := []string{player, "--fs", "a.mp4"}; !reflect.DeepEqual(cmd.Args, want) {
		t.Fatalf("Args = %v, want %v", cmd.Args, want)
	}

	m := a.PlayerExited(errors.New("exit status 1"))
	if m.Notice.Key != i18n.KeyPlayerUnavailable {
		t.Fatalf("notice after failed exit = %#v", m.Notice)
	}
}
