package commands

import (
	"strings"

	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const commandModuleRoot = "sitenav.commands"

// CommandLogger returns a module-scoped logger for command handlers, with
// consistent structured fields so command executions can be filtered.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
