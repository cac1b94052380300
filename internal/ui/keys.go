package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Tabs
	Home      key.Binding
	Trending  key.Binding
	Favorites key.Binding
	Profile   key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding

	// Browsing
	PrevCategory key.Binding
	NextCategory key.Binding
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding

	// Player
	Play       key.Binding
	Favorite   key.Binding
	Fullscreen key.Binding
	External   key.Binding

	// Profile form
	NextField key.Binding
	PrevField key.Binding
	PrevValue key.Binding
	NextValue key.Binding
	Save      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Dismiss / back"),
		),

		// Tabs
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		Trending: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Trending"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Favorites"),
		),
		Profile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Profile"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),

		// Browsing
		PrevCategory: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Next category"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Player
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Play"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle favorite"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Toggle fullscreen"),
		),
		External: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open in player"),
		),

		// Profile form
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		PrevValue: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous option"),
		),
		NextValue: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next option"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save settings"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Play, k.Favorite, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Trending, k.Favorites, k.Profile, k.NextTab},
		{k.PrevCategory, k.NextCategory, k.Up, k.Down, k.Top, k.Bottom},
		{k.Play, k.Favorite, k.Fullscreen, k.External},
		{k.Escape, k.Help, k.Quit},
	}
}

// formKeyMap is the binding set shown while the profile form has focus.
type formKeyMap keyMap

// ShortHelp returns key bindings for the short help view.
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextValue, k.Save, k.Escape, k.ForceQuit}
}

// FullHelp returns key bindings for the full help view.
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.PrevValue, k.NextValue},
		{k.Save, k.Escape, k.ForceQuit},
	}
}
