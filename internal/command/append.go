// Where: internal/command/append.go
// What: append command handler.
// Why: Persist descriptors so later renders see every appended entry.
package command

import (
	"fmt"

	"github.com/poruru-code/hostenv/internal/infra/logging"
	"github.com/poruru-code/hostenv/internal/infra/store"
	"github.com/poruru-code/hostenv/internal/usecase/describe"
)

func runAppend(ctx commandContext) int {
	path := ctx.registryPath(ctx.cli.Append.Registry)
	hostnames := ctx.cli.Append.Hostnames
	if len(hostnames) == 0 {
		hostnames = []string{ctx.resolveHostname("")}
	}

	reg, err := store.Load(path)
	if err != nil {
		return exitWithError(ctx.deps.Out, err)
	}
	builder := describe.NewBuilder(reg, ctx.cfg.Path(), logging.Component(ctx.logger, "describe"))
	for _, hostname := range hostnames {
		builder.Run(hostname)
	}
	if err := store.Save(path, reg); err != nil {
		return exitWithError(ctx.deps.Out, err)
	}

	total := reg.Len(builder.Path)
	ctx.ui.Success(fmt.Sprintf("Appended %d descriptor(s) to %s in %s (%d total)", len(hostnames), builder.Path, path, total))
	return 0
}
