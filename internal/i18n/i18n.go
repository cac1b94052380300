// Package i18n resolves UI strings from the catalog's translation table.
//
// The table arrives with the catalog document and is keyed by the language
// codes stored in preferences ("myanmar", "english"). Those codes are mapped
// to BCP-47 tags and loaded into a go-i18n bundle. Lookups fall back from the
// requested language to English, then to the built-in English default for
// keys the application renders itself, and finally to the key.
package i18n

import (
	"log"
	"strings"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/five82/marquee/internal/catalog"
)

// Language codes as stored in preferences.
const (
	LangMyanmar = "myanmar"
	LangEnglish = "english"
)

var codeTags = map[string]language.Tag{
	LangMyanmar: language.Make("my"),
	LangEnglish: language.English,
}

// Translator looks up localized strings. The zero value is not usable; build
// one with New.
type Translator struct {
	bundle *goi18n.Bundle

	mu         sync.Mutex
	localizers map[string]*goi18n.Localizer
}

// New builds a translator from a translation table. Languages whose code
// cannot be mapped to a tag are skipped.
func New(table catalog.Translations) *Translator {
	bundle := goi18n.NewBundle(language.English)
	for code, entries := range table {
		tag, ok := TagFor(code)
		if !ok {
			log.Printf("i18n: skipping unknown language %q", code)
			continue
		}
		msgs := make([]*goi18n.Message, 0, len(entries))
		for key, text := range entries {
			msgs = append(msgs, &goi18n.Message{ID: key, Other: text})
		}
		if err := bundle.AddMessages(tag, msgs...); err != nil {
			log.Printf("i18n: load %q: %v", code, err)
		}
	}
	return &Translator{
		bundle:     bundle,
		localizers: make(map[string]*goi18n.Localizer),
	}
}

// TagFor maps a preference language code, or any BCP-47 code, to a tag.
func TagFor(code string) (language.Tag, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if tag, ok := codeTags[code]; ok {
		return tag, true
	}
	if code == "" {
		return language.Und, false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// T returns the text for key in lang. data feeds {{.Field}} placeholders.
func (t *Translator) T(lang, key string, data map[string]any) string {
	if t == nil {
		return fallback(key, data)
	}
	cfg := &goi18n.LocalizeConfig{MessageID: key, TemplateData: data}
	if text, ok := defaults[key]; ok {
		cfg.DefaultMessage = &goi18n.Message{ID: key, Other: text}
	}
	msg, err := t.localizer(lang).Localize(cfg)
	if msg != "" {
		return msg
	}
	if err != nil {
		log.Printf("i18n: %q in %q: %v", key, lang, err)
	}
	return key
}

func (t *Translator) localizer(lang string) *goi18n.Localizer {
	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.localizers[lang]; ok {
		return l
	}
	langs := []string{language.English.String()}
	if tag, ok := TagFor(lang); ok {
		langs = append([]string{tag.String()}, langs...)
	}
	l := goi18n.NewLocalizer(t.bundle, langs...)
	t.localizers[lang] = l
	return l
}

func fallback(key string, data map[string]any) string {
	text, ok := defaults[key]
	if !ok {
		return key
	}
	if name, ok := data["Name"].(string); ok {
		text = strings.ReplaceAll(text, "{{.Name}}", name)
	}
	return text
}
