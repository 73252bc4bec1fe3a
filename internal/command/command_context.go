// Where: internal/command/command_context.go
// What: Per-invocation state shared by command handlers.
// Why: Resolve config, output, and logging once in Run.
package command

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/poruru-code/hostenv/internal/infra/config"
	"github.com/poruru-code/hostenv/internal/infra/ui"
)

type commandContext struct {
	cli    CLI
	deps   Dependencies
	ui     ui.UserInterface
	cfg    config.Config
	dir    string
	logger zerolog.Logger
}

// registryPath returns the flag override or the configured registry file.
func (c commandContext) registryPath(flag string) string {
	if strings.TrimSpace(flag) != "" {
		return absPath(c.dir, flag)
	}
	return c.cfg.Registry
}

// resolveHostname applies the lookup order: argument, HOSTENV_HOSTNAME,
// interactive prompt. Every miss falls back to "", which still derives.
func (c commandContext) resolveHostname(arg string) string {
	if arg != "" {
		return arg
	}
	if value, ok := c.deps.LookupHostname(); ok {
		return value
	}
	if c.deps.Prompter != nil && c.deps.Interactive() {
		value, err := c.deps.Prompter.Input("Hostname", nil)
		if err != nil {
			c.logger.Warn().Err(err).Msg("hostname prompt failed")
			return ""
		}
		return strings.TrimSpace(value)
	}
	return ""
}
