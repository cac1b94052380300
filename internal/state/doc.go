// Package state holds the transient session of the Marquee browser.
//
// # Overview
//
// The session is everything the user changes that is not persisted: the
// active tab, the category shown on home, the movie loaded in the player and
// whether the player is fullscreen. It also carries the local user id so a
// single snapshot is enough to render the profile tab.
//
// # Navigation
//
// There are four tabs: home, trending, favorites and profile. Category tabs
// belong to home, so leaving home clears the current category and coming back
// restores the last explicit selection:
//
//	home(action) --Navigate(trending)--> trending()
//	trending()   --Navigate(home)------> home(action)
//	favorites()  --SelectCategory(drama)-> home(drama)
//
// Before the user has picked anything, home shows the fallback category set
// with NewStore or SetFallbackCategory.
//
// # Player
//
// Play resolves an id through a MovieFinder (normally *catalog.Catalog). An
// id the finder does not know returns ErrMovieNotFound and leaves the current
// movie in place. The player is hidden on the profile tab; hiding it also
// leaves fullscreen.
//
// # Concurrency
//
// Store guards the session with a sync.RWMutex. Snapshot returns a copy,
// including a copy of the playing movie, so callers can hold it while other
// goroutines mutate the store.
package state
