// Package config loads the client configuration from TOML with environment overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	envAPIURL   = "REVIEWS_API_URL"
	envToken    = "REVIEWS_TOKEN"
	envLogLevel = "REVIEWS_LOG_LEVEL"
)

// API describes how to reach the analysis service.
type API struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Token          string `toml:"token"`
}

// Notifications holds the per-kind auto-dismiss delays in milliseconds.
// Zero keeps that kind on screen until dismissed.
type Notifications struct {
	InfoTimeoutMS    int `toml:"info_timeout_ms"`
	SuccessTimeoutMS int `toml:"success_timeout_ms"`
	ErrorTimeoutMS   int `toml:"error_timeout_ms"`
}

// UI controls line-mode rendering.
type UI struct {
	Theme string `toml:"theme"`
	Color string `toml:"color"`
}

// Logging controls log output. An empty File logs to stderr in line mode and
// nowhere in the interactive view.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

type Config struct {
	API           API           `toml:"api"`
	Notifications Notifications `toml:"notifications"`
	UI            UI            `toml:"ui"`
	Logging       Logging       `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 15,
		},
		Notifications: Notifications{
			InfoTimeoutMS:    4000,
			SuccessTimeoutMS: 4000,
			ErrorTimeoutMS:   6000,
		},
		UI: UI{
			Theme: "classic",
			Color: "auto",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "reviews", "config.toml"), nil
}

// Load reads path (or the default locations), applies env overrides and
// validates the result. It returns the resolved path and whether a file was found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolvePath(path)
	if err != nil {
		return nil, "", false, err
	}
	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		dec := toml.NewDecoder(file)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

func resolvePath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		return statPath(expanded)
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return "", false, err
	}
	if p, ok, err := statPath(defaultPath); err != nil || ok {
		return p, ok, err
	}
	projectPath, err := filepath.Abs("reviews.toml")
	if err != nil {
		return "", false, err
	}
	if p, ok, err := statPath(projectPath); err != nil || ok {
		return p, ok, err
	}
	return defaultPath, false, nil
}

func statPath(p string) (string, bool, error) {
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", p)
	}
	return p, true, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(envAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envToken)); v != "" {
		c.API.Token = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) normalize() {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	c.API.Token = stripBearer(strings.TrimSpace(c.API.Token))
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.UI.Color = strings.ToLower(strings.TrimSpace(c.UI.Color))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.File != "" {
		if p, err := expandPath(c.Logging.File); err == nil {
			c.Logging.File = p
		}
	}
}

// Timeout is the HTTP request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// NotificationTimeouts converts the millisecond settings.
func (c *Config) NotificationTimeouts() (info, success, errTimeout time.Duration) {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return ms(c.Notifications.InfoTimeoutMS), ms(c.Notifications.SuccessTimeoutMS), ms(c.Notifications.ErrorTimeoutMS)
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.API.Token != "" {
		c.API.Token = "********"
	}
	return c
}

// Encode renders the config as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// CreateSample writes a commented sample configuration file.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// stripBearer drops a pasted "Bearer " prefix; the client adds its own.
func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}

func expandPath(p string) (string, error) {
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if p == "~" {
			p = home
		} else if len(p) > 1 && (p[1] == '/' || p[1] == '\\') {
			p = filepath.Join(home, p[2:])
		}
	}
	abs, err := filepath.Abs(filepath.Clean(p))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", p, err)
	}
	return abs, nil
}
