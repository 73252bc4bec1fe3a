// Where: internal/command/render.go
// What: render command handler.
// Why: Feed registry data to a template the way the site plugin consumes it.
package command

import (
	"fmt"
	"strings"

	"github.com/poruru-code/hostenv/internal/infra/logging"
	"github.com/poruru-code/hostenv/internal/infra/render"
	"github.com/poruru-code/hostenv/internal/infra/store"
	"github.com/poruru-code/hostenv/internal/infra/watch"
	"github.com/poruru-code/hostenv/internal/usecase/describe"
)

func runRender(ctx commandContext) int {
	opts := ctx.cli.Render
	registryFile := ctx.registryPath(opts.Registry)
	// A --template flag resolves against the working directory, the
	// configured template against the config file's directory.
	templateRef := strings.TrimSpace(opts.Template)
	switch {
	case templateRef == "":
		templateRef = ctx.cfg.TemplatePath(render.IsBuiltin)
	case !render.IsBuiltin(templateRef):
		templateRef = absPath(ctx.dir, templateRef)
	}
	output := absPath(ctx.dir, opts.Output)

	renderOnce := func() error {
		reg, err := store.Load(registryFile)
		if err != nil {
			return err
		}
		if opts.Hostname != "" {
			describe.NewBuilder(reg, ctx.cfg.Path(), logging.Component(ctx.logger, "describe")).Run(opts.Hostname)
		}
		content, err := render.Render(templateRef, render.NewData(reg, ctx.cfg.Path()))
		if err != nil {
			return err
		}
		if output == "" {
			ctx.ui.Raw(content)
			return nil
		}
		if err := store.WriteFile(output, []byte(content)); err != nil {
			return err
		}
		ctx.logger.Info().Str("output", output).Str("template", templateRef).Msg("rendered")
		return nil
	}

	if err := renderOnce(); err != nil {
		return exitWithError(ctx.deps.Out, err)
	}
	if !opts.Watch {
		return 0
	}

	files := []string{registryFile}
	if !render.IsBuiltin(templateRef) {
		files = append(files, templateRef)
	}
	sigCtx, cancel := ctx.deps.SignalContext()
	defer cancel()
	ctx.logger.Info().Strs("files", files).Msg("watching for changes")
	onError := func(err error) {
		ctx.ui.Warn(fmt.Sprintf("render failed: %v", err))
	}
	if err := ctx.deps.Watch(sigCtx, files, watch.DefaultDebounce, renderOnce, onError); err != nil {
		return exitWithError(ctx.deps.Out, err)
	}
	return 0
}

func runTemplates(ctx commandContext) int {
	for _, name := range render.Builtins() {
		ctx.ui.Info(name)
	}
	return 0
}
