package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

// Fetcher retrieves and decodes one catalog document.
type Fetcher interface {
	Fetch(ctx context.Context) (*Catalog, Translations, error)
}

// Ensure Source implements Fetcher at compile time.
var _ Fetcher = (*Source)(nil)

// Source fetches the catalog document from an http(s) URL or a local file.
type Source struct {
	location  string
	remote    *url.URL
	http      *http.Client
	userAgent string
	attempts  uint
	delay     time.Duration
}

const (
	defaultUserAgent = "marquee/0.1"
	defaultAttempts  = 3
	requestTimeout   = 10 * time.Second
	retryDelay       = 500 * time.Millisecond
)

// NewSource builds a Source for location. attempts bounds remote retries; zero
// uses the default.
func NewSource(location string, attempts uint) (*Source, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog location is empty")
	}
	if attempts == 0 {
		attempts = defaultAttempts
	}
	src := &Source{
		location:  trimmed,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		attempts:  attempts,
		delay:     retryDelay,
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse catalog url %q: %w", location, err)
		}
		src.remote = u
	} else {
		src.location = strings.TrimPrefix(trimmed, "file://")
	}
	return src, nil
}

// Location returns the URL or path the source reads from.
func (s *Source) Location() string {
	if s.remote != nil {
		return s.remote.String()
	}
	return s.location
}

// Fetch reads and decodes the document. Every failure wraps ErrDataUnavailable.
func (s *Source) Fetch(ctx context.Context) (*Catalog, Translations, error) {
	if s == nil {
		return nil, nil, fmt.Errorf("%w: source is nil", ErrDataUnavailable)
	}
	if s.remote == nil {
		return s.readFile()
	}

	var (
		c  *Catalog
		tr Translations
	)
	err := retry.Do(
		func() error {
			var err error
			c, tr, err = s.fetchRemote(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
	if err != nil {
		if !errors.Is(err, ErrDataUnavailable) {
			err = fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		}
		return nil, nil, err
	}
	return c, tr, nil
}

func (s *Source) readFile() (*Catalog, Translations, error) {
	file, err := os.Open(s.location)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open catalog: %w", ErrDataUnavailable, err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file)
}

func (s *Source) fetchRemote(ctx context.Context) (*Catalog, Translations, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.remote.String(), nil)
	if err != nil {
		return nil, nil, permanent{fmt.Errorf("%w: create request: %w", ErrDataUnavailable, err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: execute request: %w", ErrDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		err := fmt.Errorf("%w: catalog %s returned status %d", ErrDataUnavailable, s.remote.Path, resp.StatusCode)
		if resp.StatusCode < 500 {
			return nil, nil, permanent{err}
		}
		return nil, nil, err
	}

	c, tr, err := Decode(resp.Body)
	if err != nil {
		return nil, nil, permanent{err}
	}
	return c, tr, nil
}

// permanent marks failures that a retry cannot fix (4xx, malformed body).
type permanent struct{ err error }

func (p permanent) Error() string { return p.err.Error() }
func (p permanent) Unwrap() error { return p.err }

func isTransient(err error) bool {
	var p permanent
	return !errors.As(err, &p)
}
