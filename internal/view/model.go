// Package view turns application state into a render-ready model.
package view

import (
	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

// NoticeKind classifies a transient message.
type NoticeKind string

const (
	NoticeInfo  NoticeKind = "info"
	NoticeError NoticeKind = "error"
)

// Notice is a transient message for the user. Key names the translation; Text
// is filled in by Reconcile.
type Notice struct {
	Kind NoticeKind
	Key  string
	Text string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool {
	return n.Key == "" && n.Text == ""
}

// Model is everything the renderer needs to draw one frame.
type Model struct {
	Title    string
	Greeting string // empty when no name is set
	Theme    string
	Language string

	Loading     bool
	LoadingText string

	Nav             []NavItem
	CategoriesLabel string
	Categories      []CategoryTab // home only
	ListTitle       string
	Cards           []Card
	EmptyText       string // set when Cards is empty outside profile

	Player   Player
	Settings Settings
	Profile  Profile
	Notice   Notice
}

// NavItem is one top-level tab.
type NavItem struct {
	Nav    state.Nav
	Label  string
	Active bool
}

// CategoryTab is one category selector on the home tab.
type CategoryTab struct {
	Name   string
	Active bool
}

// Card is one movie in the list region.
type Card struct {
	Movie     catalog.Movie
	Favorited bool
	Playing   bool
}

// Player describes the video panel.
type Player struct {
	Visible       bool
	Label         string
	Movie         *catalog.Movie
	Placeholder   string // shown when Movie is nil
	Favorited     bool
	FavoriteLabel string
	Fullscreen    bool
}

// Settings holds the form values and labels of the profile tab.
type Settings struct {
	Visible bool
	Heading string

	Language        string
	LanguageLabel   string
	LanguageOptions []Option
	Theme           string
	ThemeLabel      string
	ThemeOptions    []Option
	Name            string
	NameLabel       string
	Email           string
	EmailLabel      string
	SaveLabel       string
}

// Option is one choice of an enum field.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Profile holds the read-only profile fields.
type Profile struct {
	UserID      string
	UserIDLabel string
}

// Form holds the profile form values submitted by the user.
type Form struct {
	Language string
	Theme    string
	Name     string
	Email    string
}
