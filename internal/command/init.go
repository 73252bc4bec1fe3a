// Where: internal/command/init.go
// What: init command handler.
// Why: Scaffold hostenv.yaml so namespaces and paths are explicit per site.
package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/poruru-code/hostenv/internal/infra/config"
	"github.com/poruru-code/hostenv/internal/meta"
)

func runInit(ctx commandContext) int {
	opts := ctx.cli.Init
	path := absPath(ctx.dir, ctx.cli.Config)
	if path == "" {
		path = absPath(ctx.dir, meta.ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return exitWithError(ctx.deps.Out, fmt.Errorf("%s already exists (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return exitWithError(ctx.deps.Out, fmt.Errorf("stat config: %w", err))
	}

	cfg := config.Config{
		Plugin:   opts.Plugin,
		Feature:  opts.Feature,
		Registry: opts.Registry,
		Template: opts.Template,
	}.WithDefaults()
	if err := config.Save(path, cfg); err != nil {
		return exitWithError(ctx.deps.Out, err)
	}
	ctx.logger.Debug().Str("config", path).Str("template", cfg.Template).Msg("config written")
	ctx.ui.Success(fmt.Sprintf("Wrote %s (%s)", path, cfg.Path()))
	return 0
}
