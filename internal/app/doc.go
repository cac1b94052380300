// Package app is the composition root and command layer of Marquee.
//
// # Overview
//
// App owns every piece of application state: the catalog store, the
// preference store, the session store and the translator built from the
// catalog's translation table. There are no package-level variables, so
// several Apps can run side by side in tests.
//
// # Commands
//
// Each user command is a method returning the reconciled view.Model and an
// error:
//
//   - Navigate(target)       switch tab
//   - SelectCategory(name)   show a catalog category on home
//   - PlayMovie(id)          load a movie into the player
//   - ToggleFavorite()       add or remove the playing movie
//   - SaveSettings(form)     persist preferences and return home
//   - ToggleFullscreen()     flip the player mode
//   - PlayerCommand()        build the external player command
//
// Failures are never fatal. Each one leaves the previous state in place and
// sets a localized notice on the returned model. The error is returned as
// well so headless callers can branch with errors.Is.
//
// # Loading
//
// Load fetches the catalog exactly once. Until it returns every command is
// rejected with ErrNotReady. A failed fetch still completes the load: the
// catalog is empty, a data_unavailable notice is shown and the rest of the
// app keeps working.
//
// # Startup
//
// Run performs the wiring:
//
//  1. Load ~/.config/marquee/config.toml and apply flag overrides
//  2. Route the standard logger to the log file
//  3. Open the bbolt store in the data directory (or memory with -ephemeral)
//  4. Load preferences, favorites and the local user id
//  5. Start the Bubble Tea UI, which triggers Load in the background
package app
