package view

import (
	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/i18n"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// DefaultTrendingLimit is used when Input.TrendingLimit is not positive.
const DefaultTrendingLimit = 10

// Input is the state Reconcile reads. Nothing in it is modified.
type Input struct {
	Loaded        bool
	Catalog       *catalog.Catalog
	Translator    *i18n.Translator
	Preferences   prefs.Preferences
	Favorites     []string
	Session       state.Session
	TrendingLimit int
	Notice        Notice
}

var (
	navKeys = map[state.Nav]string{
		state.NavHome:      i18n.KeyNavHome,
		state.NavTrending:  i18n.KeyNavTrending,
		state.NavFavorites: i18n.KeyNavFavorites,
		state.NavProfile:   i18n.KeyNavProfile,
	}
	languageKeys = map[string]string{
		prefs.LanguageMyanmar: i18n.KeyLangMyanmar,
		prefs.LanguageEnglish: i18n.KeyLangEnglish,
	}
	themeKeys = map[string]string{
		prefs.ThemeDark:  i18n.KeyThemeDark,
		prefs.ThemeLight: i18n.KeyThemeLight,
	}
)

// Reconcile derives the view model from in. It has no state of its own, so
// calling it twice with the same input yields equal models. The card list is
// rebuilt from scratch every time.
func Reconcile(in Input) Model {
	lang := in.Preferences.Language
	t := func(key string) string { return in.Translator.T(lang, key, nil) }

	nav := in.Session.Nav
	if !nav.Valid() {
		nav = state.NavHome
	}
	favorites := make(map[string]struct{}, len(in.Favorites))
	for _, id := range in.Favorites {
		favorites[id] = struct{}{}
	}
	playingID := ""
	if in.Session.Playing != nil {
		playingID = in.Session.Playing.ID
	}

	m := Model{
		Title:       t(i18n.KeyAppTitle),
		Theme:       in.Preferences.Theme,
		Language:    lang,
		Loading:     !in.Loaded,
		LoadingText: t(i18n.KeyLoading),
	}
	if in.Preferences.Name != "" {
		m.Greeting = in.Translator.T(lang, i18n.KeyGreeting, map[string]any{"Name": in.Preferences.Name})
	}

	for _, n := range state.Navs() {
		m.Nav = append(m.Nav, NavItem{Nav: n, Label: t(navKeys[n]), Active: n == nav})
	}

	var movies []catalog.Movie
	switch nav {
	case state.NavHome:
		m.CategoriesLabel = t(i18n.KeyCategories)
		current := in.Session.CurrentCategory
		for _, name := range in.Catalog.Categories() {
			m.Categories = append(m.Categories, CategoryTab{
				Name:   name,
				Active: name == current,
			})
		}
		if current != "" {
			m.ListTitle = current
		}
		movies, _ = in.Catalog.Movies(current)
		if in.Catalog.Len() == 0 {
			m.EmptyText = t(i18n.KeyNoCatalog)
		} else {
			m.EmptyText = t(i18n.KeyEmptyCategory)
		}
	case state.NavTrending:
		m.ListTitle = t(i18n.KeyNavTrending)
		movies = in.Catalog.Trending(trendingLimit(in.TrendingLimit))
		m.EmptyText = t(i18n.KeyNoCatalog)
	case state.NavFavorites:
		m.ListTitle = t(i18n.KeyNavFavorites)
		movies = resolveFavorites(in.Catalog, in.Favorites)
		m.EmptyText = t(i18n.KeyNoFavorites)
	case state.NavProfile:
		m.ListTitle = t(i18n.KeySettings)
	}

	m.Cards = make([]Card, 0, len(movies))
	for _, movie := range movies {
		_, fav := favorites[movie.ID]
		m.Cards = append(m.Cards, Card{
			Movie:     movie,
			Favorited: fav,
			Playing:   movie.ID == playingID,
		})
	}
	if len(m.Cards) > 0 || nav == state.NavProfile {
		m.EmptyText = ""
	}

	m.Player = Player{
		Visible:     in.Session.PlayerVisible(),
		Label:       t(i18n.KeyNowPlaying),
		Placeholder: t(i18n.KeyNothingPlaying),
		Fullscreen:  in.Session.Fullscreen,
	}
	if in.Session.Playing != nil {
		movie := *in.Session.Playing
		_, fav := favorites[movie.ID]
		m.Player.Movie = &movie
		m.Player.Favorited = fav
		if fav {
			m.Player.FavoriteLabel = t(i18n.KeyRemoveFavorite)
		} else {
			m.Player.FavoriteLabel = t(i18n.KeyAddFavorite)
		}
	}

	m.Settings = Settings{
		Visible:         nav == state.NavProfile,
		Heading:         t(i18n.KeySettings),
		Language:        in.Preferences.Language,
		LanguageLabel:   t(i18n.KeyLanguage),
		LanguageOptions: options(prefs.Languages(), in.Preferences.Language, languageKeys, t),
		Theme:           in.Preferences.Theme,
		ThemeLabel:      t(i18n.KeyTheme),
		ThemeOptions:    options(prefs.Themes(), in.Preferences.Theme, themeKeys, t),
		Name:            in.Preferences.Name,
		NameLabel:       t(i18n.KeyName),
		Email:           in.Preferences.Email,
		EmailLabel:      t(i18n.KeyEmail),
		SaveLabel:       t(i18n.KeySave),
	}
	m.Profile = Profile{
		UserID:      in.Session.UserID,
		UserIDLabel: t(i18n.KeyUserID),
	}

	if !in.Notice.Empty() {
		m.Notice = in.Notice
		if m.Notice.Kind == "" {
			m.Notice.Kind = NoticeInfo
		}
		if m.Notice.Key != "" {
			m.Notice.Text = t(m.Notice.Key)
		}
	}
	return m
}

// resolveFavorites keeps insertion order and skips ids the catalog no longer
// has.
func resolveFavorites(c *catalog.Catalog, ids []string) []catalog.Movie {
	movies := make([]catalog.Movie, 0, len(ids))
	for _, id := range ids {
		if movie, ok := c.FindByID(id); ok {
			movies = append(movies, movie)
		}
	}
	return movies
}

func options(values []string, selected string, keys map[string]string, t func(string) string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: t(keys[v]), Selected: v == selected})
	}
	return out
}

func trendingLimit(n int) int {
	if n <= 0 {
		return DefaultTrendingLimit
	}
	return n
}
