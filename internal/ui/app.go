package ui

import (
	"context"
	"os/exec"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/view"
)

// Commands is the application core the UI drives. Every command returns the
// freshly reconciled view model; errors are already reflected in its notice.
type Commands interface {
	Load(ctx context.Context) (view.Model, error)
	View() view.Model
	Navigate(target state.Nav) (view.Model, error)
	SelectCategory(name string) (view.Model, error)
	PlayMovie(id string) (view.Model, error)
	ToggleFavorite() (view.Model, error)
	SaveSettings(f view.Form) (view.Model, error)
	ToggleFullscreen() (view.Model, error)
	DismissNotice() view.Model
	PlayerCommand() (*exec.Cmd, error)
	PlayerExited(err error) view.Model
}

// Options configures the UI.
type Options struct {
	Context  context.Context
	Commands Commands
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx  context.Context
	cmds Commands
	keys keyMap

	// UI state
	vm       view.Model
	theme    Theme
	loaded   bool
	width    int
	height   int
	showHelp bool

	// Browsing
	selected int
	list     viewport.Model

	// Profile form
	form formState

	spinner spinner.Model
	help    help.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vm := opts.Commands.View()
	return Model{
		ctx:     ctx,
		cmds:    opts.Commands,
		keys:    DefaultKeyMap(),
		vm:      vm,
		theme:   GetTheme(vm.Theme),
		list:    viewport.New(0, 0),
		form:    newFormState(),
		spinner: sp,
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalogCmd(m.ctx, m.cmds), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncList()
		return m, nil

	case catalogLoadedMsg:
		m.loaded = true
		m.apply(msg.model)
		return m, nil

	case playerExitedMsg:
		m.apply(m.cmds.PlayerExited(msg.err))
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.onProfile() {
		return m.updateFormInput(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.loaded {
		return m.renderLoading()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.vm.Player.Visible && m.vm.Player.Fullscreen && m.vm.Player.Movie != nil {
		return m.renderFullscreen()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	// Nothing but quit until the catalog is in.
	if !m.loaded {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.onProfile() {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Escape):
		m.apply(m.cmds.DismissNotice())
	case key.Matches(msg, m.keys.Home):
		m.navigate(state.NavHome)
	case key.Matches(msg, m.keys.Trending):
		m.navigate(state.NavTrending)
	case key.Matches(msg, m.keys.Favorites):
		m.navigate(state.NavFavorites)
	case key.Matches(msg, m.keys.Profile):
		m.navigate(state.NavProfile)
	case key.Matches(msg, m.keys.NextTab):
		m.navigate(m.tabAt(1))
	case key.Matches(msg, m.keys.PrevTab):
		m.navigate(m.tabAt(-1))
	case key.Matches(msg, m.keys.PrevCategory):
		m.stepCategory(-1)
	case key.Matches(msg, m.keys.NextCategory):
		m.stepCategory(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(m.selected + 1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(m.vm.Cards) - 1)
	case key.Matches(msg, m.keys.Play):
		if len(m.vm.Cards) > 0 {
			m.apply(m.cmds.PlayMovie(m.vm.Cards[m.selected].Movie.ID))
		}
	case key.Matches(msg, m.keys.Favorite):
		m.apply(m.cmds.ToggleFavorite())
	case key.Matches(msg, m.keys.Fullscreen):
		m.apply(m.cmds.ToggleFullscreen())
	case key.Matches(msg, m.keys.External):
		return m.openExternal()
	}
	return m, nil
}

func (m *Model) navigate(target state.Nav) {
	m.apply(m.cmds.Navigate(target))
}

// tabAt returns the tab delta steps away from the active one.
func (m Model) tabAt(delta int) state.Nav {
	navs := state.Navs()
	current := 0
	for i, item := range m.vm.Nav {
		if item.Active {
			current = i
		}
	}
	return navs[cycle(current, delta, len(navs))]
}

// stepCategory moves the home category selection by delta, wrapping around.
func (m *Model) stepCategory(delta int) {
	if len(m.vm.Categories) == 0 {
		return
	}
	current := -1
	for i, tab := range m.vm.Categories {
		if tab.Active {
			current = i
		}
	}
	next := cycle(current, delta, len(m.vm.Categories))
	if current < 0 && delta > 0 {
		next = 0
	}
	m.apply(m.cmds.SelectCategory(m.vm.Categories[next].Name))
}

func (m *Model) moveSelection(i int) {
	m.selected = clamp(i, len(m.vm.Cards))
	m.syncList()
}

func (m Model) openExternal() (tea.Model, tea.Cmd) {
	cmd, err := m.cmds.PlayerCommand()
	if err != nil {
		m.apply(m.cmds.View(), err)
		return m, nil
	}
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return playerExitedMsg{err: err}
	})
}

// apply installs a new view model. It accepts the command results directly,
// so apply(m.cmds.PlayMovie(id)) works; the error is already in the notice.
func (m *Model) apply(vm view.Model, _ ...error) {
	prevNav := activeNav(m.vm)
	prevList := m.vm.ListTitle
	m.vm = vm
	m.theme = GetTheme(vm.Theme)

	nav := activeNav(vm)
	if nav != prevNav || vm.ListTitle != prevList {
		m.selected = 0
		m.list.SetYOffset(0)
	}
	if nav == state.NavProfile && prevNav != state.NavProfile {
		m.form.load(vm.Settings)
	}
	m.selected = clamp(m.selected, len(vm.Cards))
	m.syncList()
}

func (m Model) onProfile() bool {
	return m.loaded && activeNav(m.vm) == state.NavProfile
}

func activeNav(vm view.Model) state.Nav {
	for _, item := range vm.Nav {
		if item.Active {
			return item.Nav
		}
	}
	return state.NavHome
}

// Messages

type catalogLoadedMsg struct {
	model view.Model
	err   error
}

type playerExitedMsg struct {
	err error
}

// Commands

func loadCatalogCmd(ctx context.Context, cmds Commands) tea.Cmd {
	return func() tea.Msg {
		vm, err := cmds.Load(ctx)
		return catalogLoadedMsg{model: vm, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
