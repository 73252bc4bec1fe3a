// Where: internal/usecase/describe/describe.go
// What: Environment descriptor builder.
// Why: Derive the hostname descriptor and append it to an owned registry.
package describe

import (
	"github.com/rs/zerolog"

	"github.com/poruru-code/hostenv/internal/domain/hostctx"
	"github.com/poruru-code/hostenv/internal/domain/registry"
)

// Builder appends one descriptor per Run to Registry at Path.
type Builder struct {
	Registry *registry.Registry
	Path     registry.Path
	Logger   zerolog.Logger
}

// NewBuilder returns a builder targeting path on reg. A nil reg gets a fresh registry.
func NewBuilder(reg *registry.Registry, path registry.Path, logger zerolog.Logger) *Builder {
	if reg == nil {
		reg = registry.New()
	}
	return &Builder{Registry: reg, Path: path.WithDefaults(), Logger: logger}
}

// Run derives the descriptor for hostname and appends it. Each call appends.
func (b *Builder) Run(hostname string) hostctx.HostnameContext {
	if b.Registry == nil {
		b.Registry = registry.New()
	}
	ctx := hostctx.Derive(hostname)
	if repairs := b.Registry.Ensure(b.Path); repairs > 0 {
		b.Logger.Warn().
			Str("path", b.Path.String()).
			Int("repairs", repairs).
			Msg("replaced malformed registry levels")
	}
	n := b.Registry.Append(b.Path, ctx)
	b.Logger.Debug().
		Str("hostname", ctx.Hostname).
		Bool("isBrev", ctx.IsBrev).
		Str("brevId", ctx.BrevID).
		Int("entries", n).
		Msg("appended environment descriptor")
	return ctx
}

// Initialize builds a fresh registry holding one descriptor per hostname,
// ready to hand to the templating consumer.
func Initialize(path registry.Path, logger zerolog.Logger, hostnames ...string) *registry.Registry {
	b := NewBuilder(registry.New(), path, logger)
	for _, hostname := range hostnames {
		b.Run(hostname)
	}
	return b.Registry
}
