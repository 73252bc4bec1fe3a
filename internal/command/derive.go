// Where: internal/command/derive.go
// What: derive command handler.
// Why: Print a descriptor without touching the registry file.
package command

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/hostenv/internal/domain/hostctx"
	"github.com/poruru-code/hostenv/internal/infra/ui"
)

func runDerive(ctx commandContext) int {
	hostname := ctx.resolveHostname(ctx.cli.Derive.Hostname)
	desc := hostctx.Derive(hostname)
	ctx.logger.Debug().Str("hostname", desc.Hostname).Msg("derived environment descriptor")

	switch ctx.cli.Derive.Format {
	case "json":
		payload, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return exitWithError(ctx.deps.Out, fmt.Errorf("encode descriptor: %w", err))
		}
		ctx.ui.Raw(string(payload) + "\n")
	case "yaml":
		payload, err := yaml.Marshal(desc)
		if err != nil {
			return exitWithError(ctx.deps.Out, fmt.Errorf("encode descriptor: %w", err))
		}
		ctx.ui.Raw(string(payload))
	default:
		ctx.ui.Block("🔎", "Environment descriptor", []ui.KeyValue{
			{Key: "hostname", Value: desc.Hostname},
			{Key: "isBrev", Value: desc.IsBrev},
			{Key: "brevId", Value: desc.BrevID},
		})
	}
	return 0
}
