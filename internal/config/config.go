package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds Marquee's runtime settings.
type Config struct {
	Catalog         string
	DataDir         string
	DefaultCategory string
	TrendingLimit   int
	Player          string
	LogFile         string
	FetchAttempts   uint
}

const (
	defaultConfigPath    = "~/.config/marquee/config.toml"
	defaultCatalog       = "~/.config/marquee/catalog.json"
	defaultDataDir       = "~/.local/share/marquee"
	defaultPlayer        = "mpv"
	defaultTrendingLimit = 10
	defaultFetchAttempts = 3
	logFileName          = "marquee.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{
		Catalog:       mustExpand(defaultCatalog),
		DataDir:       mustExpand(defaultDataDir),
		TrendingLimit: defaultTrendingLimit,
		Player:        defaultPlayer,
		FetchAttempts: defaultFetchAttempts,
	}
	cfg.LogFile = filepath.Join(cfg.DataDir, logFileName)
	return cfg
}

// Load locates and parses the Marquee config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog         string `toml:"catalog"`
		DataDir         string `toml:"data_dir"`
		DefaultCategory string `toml:"default_category"`
		TrendingLimit   int    `toml:"trending_limit"`
		Player          string `toml:"player"`
		LogFile         string `toml:"log_file"`
		FetchAttempts   int    `toml:"fetch_attempts"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		DefaultCategory: strings.TrimSpace(raw.DefaultCategory),
		TrendingLimit:   raw.TrendingLimit,
		Player:          strings.TrimSpace(raw.Player),
	}
	cfg.SetCatalog(raw.Catalog)
	cfg.SetDataDir(raw.DataDir)
	if cfg.TrendingLimit <= 0 {
		cfg.TrendingLimit = defaultTrendingLimit
	}
	if cfg.Player == "" {
		cfg.Player = defaultPlayer
	}
	if raw.FetchAttempts > 0 {
		cfg.FetchAttempts = uint(raw.FetchAttempts)
	} else {
		cfg.FetchAttempts = defaultFetchAttempts
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

// SetCatalog overrides the catalog location. URLs are kept verbatim, file
// paths are expanded. An empty value restores the default.
func (c *Config) SetCatalog(location string) {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		c.Catalog = mustExpand(defaultCatalog)
	case isURL(location):
		c.Catalog = location
	default:
		c.Catalog = mustExpand(location)
	}
}

// SetDataDir overrides the data directory. The log file follows it unless it
// was configured explicitly.
func (c *Config) SetDataDir(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultDataDir
	}
	derived := c.LogFile == "" || c.LogFile == filepath.Join(c.DataDir, logFileName)
	c.DataDir = mustExpand(dir)
	if derived {
		c.LogFile = filepath.Join(c.DataDir, logFileName)
	}
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	for _, scheme := range []string{"http://", "https://", "file://"} {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
