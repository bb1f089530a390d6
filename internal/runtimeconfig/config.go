package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-sitenav/internal/language"
)

var ErrLanguageUnsupported = errors.New("sitenav config: default language is not in the supported set")
var ErrStorageDriverUnknown = errors.New("sitenav config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("sitenav config: storage DSN is required when a driver is set")
var ErrAPIBaseURLRequired = errors.New("sitenav config: API base URL is required when the API source is enabled")
var ErrMarkdownContentDirRequired = errors.New("sitenav config: markdown content directory is required when markdown is enabled")
var ErrAdvancedCacheRequiresEnabledCache = errors.New("sitenav config: advanced cache feature requires cache to be enabled")
var ErrLoggingProviderRequired = errors.New("sitenav config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("sitenav config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("sitenav config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("sitenav config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	DefaultLanguage string
	Languages       []string
	Media           MediaConfig
	API             APIConfig
	Storage         StorageConfig
	Cache           CacheConfig
	Markdown        MarkdownConfig
	Logging         LoggingConfig
	Features        Features
}

// MediaConfig controls how relative media paths become absolute URLs.
type MediaConfig struct {
	BaseURL string
}

// APIConfig points at the collaborator that owns the tree and the content
// collections.
type APIConfig struct {
	Enabled bool
	BaseURL string
	Token   string
	Timeout time.Duration
}

// StorageConfig selects the local database backing, if any.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// MarkdownConfig captures filesystem behaviour for Markdown seeding.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	AdvancedCache bool
	Markdown      bool
	Logger        bool
}

// DefaultConfig returns opinionated defaults: Uzbek-first languages, sqlite
// storage, cache on, console logging.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage: language.Default,
		Languages:       append([]string(nil), language.Codes...),
		Media:           MediaConfig{},
		API: APIConfig{
			Timeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file::memory:?cache=shared",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if lang := strings.TrimSpace(cfg.DefaultLanguage); lang != "" && !language.Supported(lang) {
		return fmt.Errorf("%w: %s", ErrLanguageUnsupported, lang)
	}
	if cfg.API.Enabled && strings.TrimSpace(cfg.API.BaseURL) == "" {
		return ErrAPIBaseURLRequired
	}
	if driver := normalizeDriver(cfg.Storage.Driver); driver != "" {
		if !isSupportedDriver(driver) {
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if cfg.Markdown.Enabled || cfg.Features.Markdown {
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "sqlite", "sqlite3", "postgres", "pg":
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
