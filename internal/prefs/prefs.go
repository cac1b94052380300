// Package prefs owns the user's persisted preferences, favorites and local
// user id. It is the single writer of those keys in durable storage.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/five82/marquee/internal/storage"
)

// Durable storage keys.
const (
	KeyUserID    = "localUserId"
	KeySettings  = "userSettings"
	KeyFavorites = "favorites"
)

// Preference values.
const (
	LanguageMyanmar = "myanmar"
	LanguageEnglish = "english"
	ThemeDark       = "dark"
	ThemeLight      = "light"
)

var (
	// ErrStorageUnavailable reports a failed durable write. The in-memory
	// state is unchanged and the operation can be retried.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidSettings reports an unknown language or theme value.
	ErrInvalidSettings = errors.New("invalid settings")
)

// Preferences holds user-chosen settings.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Defaults returns the settings used when nothing is stored.
func Defaults() Preferences {
	return Preferences{Language: LanguageMyanmar, Theme: ThemeDark}
}

// Languages lists the supported language values in display order.
func Languages() []string {
	return []string{LanguageMyanmar, LanguageEnglish}
}

// Themes lists the supported theme values in display order.
func Themes() []string {
	return []string{ThemeDark, ThemeLight}
}

// Normalize trims every field and fills empty enum fields with defaults. It
// fails with ErrInvalidSettings when language or theme is unknown.
func Normalize(p Preferences) (Preferences, error) {
	def := Defaults()
	p.Language = strings.ToLower(strings.TrimSpace(p.Language))
	p.Theme = strings.ToLower(strings.TrimSpace(p.Theme))
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	if p.Language == "" {
		p.Language = def.Language
	}
	if p.Theme == "" {
		p.Theme = def.Theme
	}
	if !contains(Languages(), p.Language) {
		return Preferences{}, fmt.Errorf("%w: language %q", ErrInvalidSettings, p.Language)
	}
	if !contains(Themes(), p.Theme) {
		return Preferences{}, fmt.Errorf("%w: theme %q", ErrInvalidSettings, p.Theme)
	}
	return p, nil
}

// LoadPreferences reads the stored settings overlaid on the defaults. Missing
// or malformed data yields the defaults; an unknown stored language or theme
// falls back to the default for that field only.
func LoadPreferences(kv storage.KV) Preferences {
	def := Defaults()
	raw, found, err := kv.Get(KeySettings)
	if err != nil {
		log.Printf("prefs: read %s: %v", KeySettings, err)
		return def
	}
	if !found {
		return def
	}

	p := def
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Printf("prefs: ignoring malformed %s: %v", KeySettings, err)
		return def
	}
	p.Language = strings.ToLower(strings.TrimSpace(p.Language))
	if !contains(Languages(), p.Language) {
		p.Language = def.Language
	}
	p.Theme = strings.ToLower(strings.TrimSpace(p.Theme))
	if !contains(Themes(), p.Theme) {
		p.Theme = def.Theme
	}
	return p
}

// LoadFavorites reads the stored favorites. Missing data, malformed JSON or a
// value that is not a list yields an empty set. Non-string entries and
// duplicates are dropped.
func LoadFavorites(kv storage.KV) []string {
	raw, found, err := kv.Get(KeyFavorites)
	if err != nil {
		log.Printf("prefs: read %s: %v", KeyFavorites, err)
		return []string{}
	}
	if !found {
		return []string{}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		log.Printf("prefs: ignoring malformed %s: %v", KeyFavorites, err)
		return []string{}
	}
	list, ok := decoded.([]any)
	if !ok {
		log.Printf("prefs: ignoring %s: not a list", KeyFavorites)
		return []string{}
	}

	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		id, ok := v.(string)
		if !ok || id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
