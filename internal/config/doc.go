// Package config loads Marquee's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Fields
//
//	catalog = "~/.config/marquee/catalog.json"   # file path or http(s) URL
//	data_dir = "~/.local/share/marquee"          # holds marquee.db
//	default_category = ""                        # home category before any selection
//	trending_limit = 10
//	player = "mpv"                               # external player for the "o" key
//	log_file = ""                                # defaults to <data_dir>/marquee.log
//	fetch_attempts = 3                           # catalog download attempts
//
// Paths are tilde-expanded and made absolute. Catalog URLs are kept as
// written. When default_category is empty or not in the catalog, home starts
// on the first category of the document.
//
// # Overrides
//
// Command-line flags are applied after Load through SetCatalog and
// SetDataDir. Moving the data directory moves the log file with it unless
// log_file was set explicitly.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
