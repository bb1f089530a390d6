package logging

import (
	"context"

	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const (
	rootModule       = "sitenav"
	pagesModule      = "sitenav.pages"
	contentModule    = "sitenav.content"
	dispatchModule   = "sitenav.dispatch"
	renderModule     = "sitenav.render"
	navigationModule = "sitenav.navigation"
	clientModule     = "sitenav.client"
	markdownModule   = "sitenav.markdown"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PagesLogger returns the logger namespace reserved for tree repositories and
// the slug resolver.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// ContentLogger returns the logger namespace reserved for record stores.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// DispatchLogger returns the logger namespace reserved for the dispatch router.
func DispatchLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, dispatchModule)
}

// RenderLogger returns the logger namespace reserved for presentation adapters.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// NavigationLogger returns the logger namespace reserved for the navigator.
func NavigationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, navigationModule)
}

// ClientLogger returns the logger namespace reserved for the collaborator client.
func ClientLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, clientModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown seeding.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
