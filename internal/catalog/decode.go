package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrDataUnavailable reports that the catalog document could not be fetched or
// did not have the expected shape.
var ErrDataUnavailable = errors.New("catalog data unavailable")

// titlePolicy strips any markup the document author left in display strings.
var titlePolicy = bluemonday.StrictPolicy()

type rawMovie struct {
	Title string `json:"title"`
	Thumb string `json:"thumb"`
	Src   string `json:"src"`
	Type  string `json:"type"`
}

// Decode parses a catalog document of the form
//
//	{"videos": {"<category>": [{"title", "thumb", "src", "type"}]},
//	 "translations": {"<lang>": {"<key>": "<text>"}}}
//
// keeping the category key order of the source. Ids are not assigned.
func Decode(r io.Reader) (*Catalog, Translations, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, nil, unavailable("decode document", err)
	}

	c := New()
	translations := Translations{}
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, nil, unavailable("decode document", err)
		}
		switch key {
		case "videos":
			if err := decodeVideos(dec, c); err != nil {
				return nil, nil, unavailable("decode videos", err)
			}
		case "translations":
			if err := dec.Decode(&translations); err != nil {
				return nil, nil, unavailable("decode translations", err)
			}
			if translations == nil {
				translations = Translations{}
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, nil, unavailable("decode document", err)
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, nil, unavailable("decode document", err)
	}
	return c, translations, nil
}

func decodeVideos(dec *json.Decoder, c *Catalog) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		category, err := objectKey(dec)
		if err != nil {
			return err
		}
		var raw []rawMovie
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("category %q: %w", category, err)
		}
		if raw == nil {
			return fmt.Errorf("category %q: not a list", category)
		}
		movies := make([]Movie, len(raw))
		for i, m := range raw {
			movies[i] = Movie{
				Title: cleanTitle(m.Title),
				Thumb: strings.TrimSpace(m.Thumb),
				Src:   strings.TrimSpace(m.Src),
				Type:  strings.TrimSpace(m.Type),
			}
		}
		c.Set(category, movies)
	}
	return expectDelim(dec, '}')
}

func cleanTitle(title string) string {
	return strings.TrimSpace(html.UnescapeString(titlePolicy.Sanitize(title)))
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataUnavailable, op, err)
}
