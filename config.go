package sitenav

import "github.com/goliatone/go-sitenav/internal/runtimeconfig"

var (
	ErrLanguageUnsupported               = runtimeconfig.ErrLanguageUnsupported
	ErrStorageDriverUnknown              = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired                = runtimeconfig.ErrStorageDSNRequired
	ErrAPIBaseURLRequired                = runtimeconfig.ErrAPIBaseURLRequired
	ErrMarkdownContentDirRequired        = runtimeconfig.ErrMarkdownContentDirRequired
	ErrAdvancedCacheRequiresEnabledCache = runtimeconfig.ErrAdvancedCacheRequiresEnabledCache
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	MediaConfig    = runtimeconfig.MediaConfig
	APIConfig      = runtimeconfig.APIConfig
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
