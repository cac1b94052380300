package i18n

// Keys rendered by the application itself.
const (
	KeyAppTitle          = "app_title"
	KeyGreeting          = "greeting"
	KeyLoading           = "loading"
	KeyNavHome           = "home"
	KeyNavTrending       = "trending"
	KeyNavFavorites      = "favorites"
	KeyNavProfile        = "profile"
	KeyCategories        = "categories"
	KeyEmptyCategory     = "empty_category"
	KeyNoCatalog         = "no_catalog"
	KeyNoFavorites       = "no_favorites"
	KeyNowPlaying        = "now_playing"
	KeyNothingPlaying    = "nothing_playing"
	KeyAddFavorite       = "add_favorite"
	KeyRemoveFavorite    = "remove_favorite"
	KeyAddedFavorite     = "added_favorite"
	KeyRemovedFavorite   = "removed_favorite"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyTheme             = "theme"
	KeyName              = "name"
	KeyEmail             = "email"
	KeySave              = "save"
	KeyUserID            = "user_id"
	KeyThemeDark         = "theme_dark"
	KeyThemeLight        = "theme_light"
	KeyLangMyanmar       = "lang_myanmar"
	KeyLangEnglish       = "lang_english"
	KeySettingsSaved     = "settings_saved"
	KeyDataUnavailable   = "error_loading"
	KeyStorageFailed     = "storage_error"
	KeyMovieNotFound     = "movie_not_found"
	KeyNoMovieSelected   = "no_movie_selected"
	KeyInvalidSettings   = "invalid_settings"
	KeyUnknownCategory   = "unknown_category"
	KeyFullscreenOn      = "fullscreen_on"
	KeyFullscreenOff     = "fullscreen_off"
	KeyPlayerUnavailable = "player_unavailable"
)

var defaults = map[string]string{
	KeyAppTitle:          "Movie Catalog",
	KeyGreeting:          "Welcome, {{.Name}}",
	KeyLoading:           "Loading catalog...",
	KeyNavHome:           "Home",
	KeyNavTrending:       "Trending",
	KeyNavFavorites:      "Favorites",
	KeyNavProfile:        "Profile",
	KeyCategories:        "Categories",
	KeyEmptyCategory:     "No movies in this category yet.",
	KeyNoCatalog:         "The catalog is empty.",
	KeyNoFavorites:       "You have no favorites yet.",
	KeyNowPlaying:        "Now playing",
	KeyNothingPlaying:    "Select a movie to start playing.",
	KeyAddFavorite:       "Add to favorites",
	KeyRemoveFavorite:    "Remove from favorites",
	KeyAddedFavorite:     "Added to favorites.",
	KeyRemovedFavorite:   "Removed from favorites.",
	KeySettings:          "Settings",
	KeyLanguage:          "Language",
	KeyTheme:             "Theme",
	KeyName:              "Name",
	KeyEmail:             "Email",
	KeySave:              "Save",
	KeyUserID:            "User ID",
	KeyThemeDark:         "Dark",
	KeyThemeLight:        "Light",
	KeyLangMyanmar:       "Myanmar",
	KeyLangEnglish:       "English",
	KeySettingsSaved:     "Settings saved.",
	KeyDataUnavailable:   "Could not load the movie catalog.",
	KeyStorageFailed:     "Could not save your changes. Please try again.",
	KeyMovieNotFound:     "That movie is no longer available.",
	KeyNoMovieSelected:   "Play a movie first.",
	KeyInvalidSettings:   "Those settings are not valid.",
	KeyUnknownCategory:   "That category does not exist.",
	KeyFullscreenOn:      "Fullscreen on.",
	KeyFullscreenOff:     "Fullscreen off.",
	KeyPlayerUnavailable: "No external player is configured.",
}

// Default returns the built-in English text for key.
func Default(key string) (string, bool) {
	text, ok := defaults[key]
	return text, ok
}
