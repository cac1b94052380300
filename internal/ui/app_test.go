package ui

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/view"
)

// fakeCommands is a small in-memory stand-in for the application core.
type fakeCommands struct {
	catalog   *catalog.Catalog
	session   *state.Store
	prefs     prefs.Preferences
	loaded    bool
	calls     []string
	saved     *view.Form
	playerErr error
}

func newFakeCommands() *fakeCommands {
	c := catalog.New()
	c.Set("action", []catalog.Movie{{Title: "A", Src: "a.mp4"}, {Title: "B", Src: "b.mp4"}})
	c.Set("drama", []catalog.Movie{{Title: "C", Src: "c.mp4"}})
	catalog.AssignIDs(c)
	return &fakeCommands{
		catalog: c,
		session: state.NewStore("user-1", "action"),
		prefs:   prefs.Defaults(),
	}
}

func (f *fakeCommands) model() view.Model {
	return view.Reconcile(view.Input{
		Loaded:      f.loaded,
		Catalog:     f.catalog,
		Preferences: f.prefs,
		Session:     f.session.Snapshot(),
	})
}

func (f *fakeCommands) Load(context.Context) (view.Model, error) {
	f.calls = append(f.calls, "load")
	f.loaded = true
	return f.model(), nil
}

func (f *fakeCommands) View() view.Model { return f.model() }

func (f *fakeCommands) Navigate(target state.Nav) (view.Model, error) {
	f.calls = append(f.calls, "navigate "+string(target))
	err := f.session.Navigate(target)
	return f.model(), err
}

func (f *fakeCommands) SelectCategory(name string) (view.Model, error) {
	f.calls = append(f.calls, "category "+name)
	f.session.SelectCategory(name)
	return f.model(), nil
}

func (f *fakeCommands) PlayMovie(id string) (view.Model, error) {
	f.calls = append(f.calls, "play "+id)
	_, err := f.session.Play(f.catalog, id)
	return f.model(), err
}

func (f *fakeCommands) ToggleFavorite() (view.Model, error) {
	f.calls = append(f.calls, "favorite")
	return f.model(), nil
}

func (f *fakeCommands) SaveSettings(form view.Form) (view.Model, error) {
	f.calls = append(f.calls, "save")
	f.saved = &form
	f.prefs = prefs.Preferences(form)
	_ = f.session.Navigate(state.NavHome)
	return f.model(), nil
}

func (f *fakeCommands) ToggleFullscreen() (view.Model, error) {
	f.calls = append(f.calls, "fullscreen")
	_, err := f.session.ToggleFullscreen()
	return f.model(), err
}

func (f *fakeCommands) DismissNotice() view.Model {
	f.calls = append(f.calls, "dismiss")
	return f.model()
}

func (f *fakeCommands) PlayerCommand() (*exec.Cmd, error) {
	f.calls = append(f.calls, "player")
	if f.playerErr != nil {
		return nil, f.playerErr
	}
	return exec.Command("true"), nil
}

func (f *fakeCommands) PlayerExited(err error) view.Model {
	f.calls = append(f.calls, "player exited")
	return f.model()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func loadedModel(t *testing.T, f *fakeCommands) Model {
	t.Helper()
	m := New(Options{Commands: f})
	vm, err := f.Load(context.Background())
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, catalogLoadedMsg{model: vm, err: err})
	f.calls = nil
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_IgnoresKeysUntilLoaded(t *testing.T) {
	f := newFakeCommands()
	m := New(Options{Commands: f})
	m = press(t, m, runes("2"), tea.KeyMsg{Type: tea.KeyEnter}, runes("f"))
	if len(f.calls) != 0 {
		t.Fatalf("commands before load: %v", f.calls)
	}
	if !m.vm.Loading {
		t.Fatalf("view model should report loading")
	}
	if _, cmd := m.Update(runes("q")); !isQuit(cmd) {
		t.Fatalf("q before load should quit")
	}
}

func TestModel_InitLoadsCatalog(t *testing.T) {
	f := newFakeCommands()
	m := New(Options{Commands: f})
	cmd := loadCatalogCmd(context.Background(), f)
	msg, ok := cmd().(catalogLoadedMsg)
	if !ok {
		t.Fatalf("load command returned %T, want catalogLoadedMsg", cmd())
	}
	m = press(t, m, msg)
	if !m.loaded || m.vm.Loading {
		t.Fatalf("model not loaded after catalogLoadedMsg")
	}
	if m.Init() == nil {
		t.Fatalf("Init returned nil command")
	}
}

func TestModel_NavigationKeys(t *testing.T) {
	f := newFakeCommands()
	m := loadedModel(t, f)

	m = press(t, m, runes("2"), runes("3"), tea.KeyMsg{Type: tea.KeyTab}, runes("1"))
	want := []string{"navigate trending", "navigate favorites", "navigate profile", "navigate home"}
	if !reflect.DeepEqual(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	if activeNav(m.vm) != state.NavHome {
		t.Fatalf("active nav = %s, want home", activeNav(m.vm))
	}
}

func TestModel_CategoryAndPlay(t *testing.T) {
	f := newFakeCommands()
	m := loadedModel(t, f)

	m = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := f.calls; !reflect.DeepEqual(got, []string{"play action-1"}) {
		t.Fatalf("calls = %v, want play action-1", got)
	}
	if m.vm.Player.Movie == nil || m.vm.Player.Movie.ID != "action-1" {
		t.Fatalf("player = %#v", m.vm.Player.Movie)
	}

	f.calls = nil
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := f.calls; !reflect.DeepEqual(got, []string{"category drama"}) {
		t.Fatalf("calls = %v, want category drama", got)
	}
	if m.selected != 0 || m.vm.ListTitle != "drama" {
		t.Fatalf("selected = %d ListTitle = %q after category change", m.selected, m.vm.ListTitle)
	}

	f.calls = nil
	press(t, m, runes("l"))
	if got := f.calls; !reflect.DeepEqual(got, []string{"category action"}) {
		t.Fatalf("calls = %v, want wrap to action", got)
	}
}

func TestModel_SelectionClamps(t *testing.T) {
	f := newFakeCommands()
	m := loadedModel(t, f)
	m = press(t, m, runes("k"), runes("k"))
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}
	m = press(t, m, runes("G"), runes("j"))
	if m.selected != 1 {
		t.Fatalf("selected = %d, want last card", m.selected)
	}
}

func TestModel_ProfileFormSaves(t *testing.T) {
	f := newFakeCommands()
	m := loadedModel(t, f)
	m = press(t, m, runes("4"))
	if !m.onProfile() {
		t.Fatalf("not on profile")
	}

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight}, // language -> english
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight}, // theme -> light
		tea.KeyMsg{Type: tea.KeyTab},
		runes("Su q"), // text input takes q
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)
	if f.saved == nil {
		t.Fatalf("SaveSettings not called; calls = %v", f.calls)
	}
	want := view.Form{Language: prefs.LanguageEnglish, Theme: prefs.ThemeLight, Name: "Su q"}
	if *f.saved != want {
		t.Fatalf("saved = %#v, want %#v", *f.saved, want)
	}
	if activeNav(m.vm) != state.NavHome {
		t.Fatalf("nav after save = %s, want home", activeNav(m.vm))
	}
	if m.theme.Name != prefs.ThemeLight {
		t.Fatalf("theme = %q, want light after save", m.theme.Name)
	}
}

func TestModel_ProfileEscapeReturnsHome(t *testing.T) {
	f := newFakeCommands()
	m := loadedModel(t, f)
	m = press(t, m, runes("4"), tea.KeyMsg{Type: tea.KeyEsc})
	if activeNav(m.vm) != state.NavHome {
		t.Fatalf("nav = %s, want home", activeNav(m.vm))
	}
	if f.saved != nil {
		t.Fatalf("escape should not save")
	}
}

func TestModel_ExternalPlayer(t *testing.T) {
	f := newFakeCommands()
	m := loadedModel(t, f)

	f.playerErr = errors.New("no player")
	_, cmd := m.Update(runes("o"))
	if cmd != nil {
		t.Fatalf("failed PlayerCommand should not return a command")
	}

	f.playerErr = nil
	_, cmd = m.Update(runes("o"))
	if cmd == nil {
		t.Fatalf("PlayerCommand success should return an exec command")
	}

	f.calls = nil
	press(t, m, playerExitedMsg{err: errors.New("exit 1")})
	if !reflect.DeepEqual(f.calls, []string{"player exited"}) {
		t.Fatalf("calls = %v, want player exited", f.calls)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	f := newFakeCommands()
	m := loadedModel(t, f)
	m = press(t, m, runes("?"))
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	m = press(t, m, runes("2"))
	if m.showHelp || len(f.calls) != 0 {
		t.Fatalf("key while help open should only close it; calls = %v", f.calls)
	}
}

func TestModel_ViewRenders(t *testing.T) {
	f := newFakeCommands()
	m := New(Options{Commands: f})
	if m.View() == "" {
		t.Fatalf("loading view is empty")
	}
	m = loadedModel(t, f)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("F"))
	if !m.vm.Player.Fullscreen {
		t.Fatalf("fullscreen not set")
	}
	if m.View() == "" {
		t.Fatalf("fullscreen view is empty")
	}
	m = press(t, m, runes("4"))
	if m.View() == "" {
		t.Fatalf("profile view is empty")
	}
}
