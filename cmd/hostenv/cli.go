// Where: cmd/hostenv/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/hostenv/internal/command"
	"github.com/poruru-code/hostenv/internal/infra/interaction"
	"github.com/poruru-code/hostenv/internal/infra/watch"
)

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		Prompter: interaction.HuhPrompter{},
		Getwd:    os.Getwd,
		Watch:    watch.Files,
	}
}
