// Package ui implements Marquee's terminal interface with Bubble Tea.
//
// The UI is a thin adapter. It owns only presentation state (terminal size,
// the highlighted card, the help overlay and the unsaved profile form) and
// forwards every user command to a Commands implementation, normally
// *app.App. Each command hands back a complete view.Model which replaces the
// previous one; the card list is redrawn from it in full.
//
// # Startup
//
// Init starts the catalog load as a tea.Cmd and a spinner. Until the
// catalogLoadedMsg arrives only quit keys are honoured.
//
// # Layout
//
//	┌ marquee  Movie Catalog                      Welcome, Su ┐
//	 1 Home  2 Trending  3 Favorites  4 Profile
//	 Categories: action  drama
//	╭ action ──────────────────╮ ╭ Now playing ──────────────╮
//	│ > * A                    │ │ A                         │
//	│     B                    │ │ [f] Remove from favorites │
//	╰──────────────────────────╯ ╰───────────────────────────╯
//	 notice
//	 help
//
// The player panel is hidden on the profile tab, where the settings form
// takes its place. Fullscreen replaces the whole layout with the player.
//
// # External player
//
// The "o" key suspends the program with tea.ExecProcess and runs the command
// built by Commands.PlayerCommand. Its exit status comes back as a
// playerExitedMsg.
package ui
