package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitenav/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RejectsUnsupportedDefaultLanguage(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLanguage = "fr"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLanguageUnsupported) {
		t.Fatalf("expected ErrLanguageUnsupported, got %v", err)
	}
}

func TestConfigValidate_RequiresAPIBaseURLWhenEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.API.Enabled = true
	cfg.API.BaseURL = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrAPIBaseURLRequired) {
		t.Fatalf("expected ErrAPIBaseURLRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStorageDriver(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = "oracle"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestConfigValidate_RequiresDSNWithDriver(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.DSN = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestConfigValidate_AllowsNoStorage(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage = runtimeconfig.StorageConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_AdvancedCacheRequiresCache(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.AdvancedCache = true
	cfg.Cache.Enabled = false

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrAdvancedCacheRequiresEnabledCache) {
		t.Fatalf("expected ErrAdvancedCacheRequiresEnabledCache, got %v", err)
	}
}

func TestConfigValidate_MarkdownRequiresContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.ContentDir = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrMarkdownContentDirRequired) {
		t.Fatalf("expected ErrMarkdownContentDirRequired, got %v", err)
	}
}

func TestConfigValidate_LoggingProviderChecks(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	err = cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "json"
	cfg.Logging.Level = "verbose"
	err = cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}
